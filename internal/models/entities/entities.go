package entities

import "time"

// User is an organizer/admin account. Passwords are stored as bcrypt hashes
// and never leave the storage layer in API responses.
type User struct {
	ID           int64     `db:"id" json:"id"`
	Username     string    `db:"username" json:"username"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Email        *string   `db:"email" json:"email"`
	FirstName    *string   `db:"first_name" json:"firstName"`
	LastName     *string   `db:"last_name" json:"lastName"`
	AvatarURL    *string   `db:"avatar_url" json:"avatarUrl"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// DisplayName is what appears in checkedInBy when a session user performs
// a check-in.
func (u *User) DisplayName() string {
	if u.FirstName != nil && *u.FirstName != "" {
		if u.LastName != nil && *u.LastName != "" {
			return *u.FirstName + " " + *u.LastName
		}
		return *u.FirstName
	}
	return u.Username
}

// Event is an organizer-defined occasion spanning one or more dates.
// RawDates is the canonical pipe-separated list of ISO dates; Date is the
// derived human-readable form and is never parsed back.
type Event struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Date      string    `db:"date" json:"date"`
	RawDates  string    `db:"raw_dates" json:"rawDates"`
	Time      string    `db:"time" json:"time"`
	Location  string    `db:"location" json:"location"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Volunteer belongs to exactly one event. checkedIn=false implies
// CheckInTime and CheckedInBy are both nil; check-in sets all three fields
// together.
type Volunteer struct {
	ID           int64      `db:"id" json:"id"`
	EventID      int64      `db:"event_id" json:"eventId"`
	Name         string     `db:"name" json:"name"`
	Email        string     `db:"email" json:"email"`
	Phone        *string    `db:"phone" json:"phone"`
	Role         *string    `db:"role" json:"role"`
	Team         *string    `db:"team" json:"team"`
	ShirtSize    *string    `db:"shirt_size" json:"shirtSize"`
	DietaryNeeds *string    `db:"dietary_needs" json:"dietaryNeeds"`
	CheckedIn    bool       `db:"checked_in" json:"checkedIn"`
	CheckInTime  *time.Time `db:"check_in_time" json:"checkInTime"`
	CheckedInBy  *string    `db:"checked_in_by" json:"checkedInBy"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
}

// Shift is a bounded time window within an event's dates. StartTime and
// EndTime are display labels; ordering normalizes them to minutes since
// midnight (see store.StartMinutes). MaxVolunteers of 0 means unlimited.
type Shift struct {
	ID            int64     `db:"id" json:"id"`
	EventID       int64     `db:"event_id" json:"eventId"`
	ShiftDate     time.Time `db:"shift_date" json:"shiftDate"`
	StartTime     string    `db:"start_time" json:"startTime"`
	EndTime       string    `db:"end_time" json:"endTime"`
	Title         string    `db:"title" json:"title"`
	Description   *string   `db:"description" json:"description"`
	MaxVolunteers int       `db:"max_volunteers" json:"maxVolunteers"`
}

// Role is a labeled responsibility scoped to one event.
type Role struct {
	ID          int64   `db:"id" json:"id"`
	EventID     int64   `db:"event_id" json:"eventId"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
}

// ShiftRole associates one shift with one role. A (ShiftID, RoleID) pair
// exists at most once.
type ShiftRole struct {
	ID      int64 `db:"id" json:"id"`
	ShiftID int64 `db:"shift_id" json:"shiftId"`
	RoleID  int64 `db:"role_id" json:"roleId"`
}
