// Package gorm holds the migration-side models. GORM owns the schema (DDL);
// the sqlx store owns the query path. Keep column names in sync with the
// db tags in models/entities.
package gorm

import "time"

type User struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Username     string    `gorm:"column:username;uniqueIndex;size:100"`
	PasswordHash string    `gorm:"column:password_hash;size:200"`
	Email        *string   `gorm:"column:email;size:200"`
	FirstName    *string   `gorm:"column:first_name;size:100"`
	LastName     *string   `gorm:"column:last_name;size:100"`
	AvatarURL    *string   `gorm:"column:avatar_url;size:500"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}

type Event struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;size:200"`
	Date      string    `gorm:"column:date;size:300"`
	RawDates  string    `gorm:"column:raw_dates;size:1000"`
	Time      string    `gorm:"column:time;size:100"`
	Location  string    `gorm:"column:location;size:300"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`

	Volunteers []Volunteer `gorm:"foreignKey:EventID"`
	Shifts     []Shift     `gorm:"foreignKey:EventID"`
	Roles      []Role      `gorm:"foreignKey:EventID"`
}

func (Event) TableName() string {
	return "events"
}

type Volunteer struct {
	ID           int64      `gorm:"column:id;primaryKey;autoIncrement"`
	EventID      int64      `gorm:"column:event_id;index"`
	Name         string     `gorm:"column:name;size:200"`
	Email        string     `gorm:"column:email;size:200"`
	Phone        *string    `gorm:"column:phone;size:50"`
	Role         *string    `gorm:"column:role;size:100"`
	Team         *string    `gorm:"column:team;size:100"`
	ShirtSize    *string    `gorm:"column:shirt_size;size:10"`
	DietaryNeeds *string    `gorm:"column:dietary_needs;size:300"`
	CheckedIn    bool       `gorm:"column:checked_in;default:false"`
	CheckInTime  *time.Time `gorm:"column:check_in_time"`
	CheckedInBy  *string    `gorm:"column:checked_in_by;size:200"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (Volunteer) TableName() string {
	return "volunteers"
}

type Shift struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	EventID       int64     `gorm:"column:event_id;index"`
	ShiftDate     time.Time `gorm:"column:shift_date"`
	StartTime     string    `gorm:"column:start_time;size:50"`
	EndTime       string    `gorm:"column:end_time;size:50"`
	Title         string    `gorm:"column:title;size:200"`
	Description   *string   `gorm:"column:description;size:1000"`
	MaxVolunteers int       `gorm:"column:max_volunteers;default:0"`
}

func (Shift) TableName() string {
	return "shifts"
}

type Role struct {
	ID          int64   `gorm:"column:id;primaryKey;autoIncrement"`
	EventID     int64   `gorm:"column:event_id;index"`
	Name        string  `gorm:"column:name;size:200"`
	Description *string `gorm:"column:description;size:1000"`
}

func (Role) TableName() string {
	return "roles"
}

type ShiftRole struct {
	ID      int64 `gorm:"column:id;primaryKey;autoIncrement"`
	ShiftID int64 `gorm:"column:shift_id;uniqueIndex:idx_shift_role"`
	RoleID  int64 `gorm:"column:role_id;uniqueIndex:idx_shift_role"`
}

func (ShiftRole) TableName() string {
	return "shift_roles"
}
