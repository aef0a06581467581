package dtos

// CreateEventReq carries the canonical list of ISO dates; the display date
// string is derived server-side, never the other way around.
type CreateEventReq struct {
	Name     string   `json:"name" validate:"required,max=200"`
	RawDates []string `json:"rawDates" validate:"required,min=1,dive,datetime=2006-01-02"`
	Time     string   `json:"time" validate:"required,max=100"`
	Location string   `json:"location" validate:"required,max=300"`
}

// UpdateEventReq merges non-nil fields into the stored event.
type UpdateEventReq struct {
	Name     *string  `json:"name" validate:"omitempty,max=200"`
	RawDates []string `json:"rawDates" validate:"omitempty,min=1,dive,datetime=2006-01-02"`
	Time     *string  `json:"time" validate:"omitempty,max=100"`
	Location *string  `json:"location" validate:"omitempty,max=300"`
}

type CreateVolunteerReq struct {
	Name         string  `json:"name" validate:"required,max=200"`
	Email        string  `json:"email" validate:"required,email"`
	Phone        *string `json:"phone" validate:"omitempty,max=50"`
	Role         *string `json:"role" validate:"omitempty,max=100"`
	Team         *string `json:"team" validate:"omitempty,max=100"`
	ShirtSize    *string `json:"shirtSize" validate:"omitempty,max=10"`
	DietaryNeeds *string `json:"dietaryNeeds" validate:"omitempty,max=300"`
}

type UpdateVolunteerReq struct {
	Name         *string `json:"name" validate:"omitempty,max=200"`
	Email        *string `json:"email" validate:"omitempty,email"`
	Phone        *string `json:"phone" validate:"omitempty,max=50"`
	Role         *string `json:"role" validate:"omitempty,max=100"`
	Team         *string `json:"team" validate:"omitempty,max=100"`
	ShirtSize    *string `json:"shirtSize" validate:"omitempty,max=10"`
	DietaryNeeds *string `json:"dietaryNeeds" validate:"omitempty,max=300"`
}

// CheckInReq names the person performing a check-in. Required when the
// server runs without sessions; ignored when a session user is present.
type CheckInReq struct {
	CheckedInBy string `json:"checkedInBy" validate:"omitempty,max=200"`
}

// QRCheckInReq carries the signed token embedded in a volunteer's QR code.
type QRCheckInReq struct {
	Token       string `json:"token" validate:"required"`
	CheckedInBy string `json:"checkedInBy" validate:"omitempty,max=200"`
}

type CreateShiftReq struct {
	ShiftDate   string  `json:"shiftDate" validate:"required,datetime=2006-01-02"`
	StartTime   string  `json:"startTime" validate:"required,max=50"`
	EndTime     string  `json:"endTime" validate:"required,max=50"`
	Title       string  `json:"title" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
	// 0 means unlimited
	MaxVolunteers int `json:"maxVolunteers" validate:"min=0"`
}

type UpdateShiftReq struct {
	ShiftDate     *string `json:"shiftDate" validate:"omitempty,datetime=2006-01-02"`
	StartTime     *string `json:"startTime" validate:"omitempty,max=50"`
	EndTime       *string `json:"endTime" validate:"omitempty,max=50"`
	Title         *string `json:"title" validate:"omitempty,max=200"`
	Description   *string `json:"description" validate:"omitempty,max=1000"`
	MaxVolunteers *int    `json:"maxVolunteers" validate:"omitempty,min=0"`
}

type CreateRoleReq struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

type UpdateRoleReq struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// AssignShiftRoleReq creates a single shift-role association.
type AssignShiftRoleReq struct {
	ShiftID int64 `json:"shiftId" validate:"required,min=1"`
	RoleID  int64 `json:"roleId" validate:"required,min=1"`
}

// ReplaceShiftRolesReq replaces a shift's full role set in one call.
type ReplaceShiftRolesReq struct {
	RoleIDs []int64 `json:"roleIds" validate:"dive,min=1"`
}

type RegisterReq struct {
	Username  string  `json:"username" validate:"required,min=3,max=100"`
	Password  string  `json:"password" validate:"required,min=8,max=200"`
	Email     *string `json:"email" validate:"omitempty,email"`
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
}

type LoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateProfileReq struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	FirstName *string `json:"firstName" validate:"omitempty,max=100"`
	LastName  *string `json:"lastName" validate:"omitempty,max=100"`
	AvatarURL *string `json:"avatarUrl" validate:"omitempty,url"`
}
