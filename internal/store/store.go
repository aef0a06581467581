// Package store defines the single authoritative CRUD and query surface over
// all entities. Two implementations exist: memstore (map-based, single
// process) and dbstore (Postgres via sqlx); both are selected by
// configuration and behave identically.
//
// Absence is a normal outcome, not an error: lookups return (nil, nil) and
// deletes report whether a record was actually removed. Errors are reserved
// for backend failures.
package store

import (
	"context"
	"time"

	"eventcrew/rollcall/internal/models/dtos"
	"eventcrew/rollcall/internal/models/entities"
)

type Store interface {
	// Users
	GetUser(ctx context.Context, id int64) (*entities.User, error)
	GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
	CreateUser(ctx context.Context, user *entities.User) error
	UpdateUser(ctx context.Context, id int64, patch UserPatch) (*entities.User, error)

	// Events
	GetEvent(ctx context.Context, id int64) (*entities.Event, error)
	GetEvents(ctx context.Context) ([]entities.Event, error)
	CreateEvent(ctx context.Context, event *entities.Event) error
	UpdateEvent(ctx context.Context, id int64, patch EventPatch) (*entities.Event, error)

	// Volunteers
	GetVolunteer(ctx context.Context, id int64) (*entities.Volunteer, error)
	GetVolunteersByEvent(ctx context.Context, eventID int64) ([]entities.Volunteer, error)
	CreateVolunteer(ctx context.Context, volunteer *entities.Volunteer) error
	UpdateVolunteer(ctx context.Context, id int64, patch VolunteerPatch) (*entities.Volunteer, error)
	DeleteVolunteer(ctx context.Context, id int64) (bool, error)
	CheckInVolunteer(ctx context.Context, id int64, checkedInBy string) (*entities.Volunteer, error)
	CountVolunteers(ctx context.Context, eventID int64) (int, error)
	GetEventStats(ctx context.Context, eventID int64) (*dtos.EventStats, error)

	// Shifts
	GetShift(ctx context.Context, id int64) (*entities.Shift, error)
	GetShiftsByEvent(ctx context.Context, eventID int64) ([]entities.Shift, error)
	GetShiftsByDate(ctx context.Context, eventID int64, date time.Time) ([]entities.Shift, error)
	CreateShift(ctx context.Context, shift *entities.Shift) error
	UpdateShift(ctx context.Context, id int64, patch ShiftPatch) (*entities.Shift, error)
	DeleteShift(ctx context.Context, id int64) (bool, error)

	// Roles. DeleteRole cascades: all shift-role rows referencing the role
	// are removed first.
	GetRole(ctx context.Context, id int64) (*entities.Role, error)
	GetRolesByEvent(ctx context.Context, eventID int64) ([]entities.Role, error)
	CreateRole(ctx context.Context, role *entities.Role) error
	UpdateRole(ctx context.Context, id int64, patch RolePatch) (*entities.Role, error)
	DeleteRole(ctx context.Context, id int64) (bool, error)

	// ShiftRoles. AssignRoleToShift is idempotent: an existing pair is
	// returned unchanged. ReplaceShiftRoles swaps a shift's full role set
	// atomically.
	GetShiftRoles(ctx context.Context, shiftID int64) ([]dtos.ShiftRoleWithRole, error)
	AssignRoleToShift(ctx context.Context, shiftID, roleID int64) (*entities.ShiftRole, error)
	RemoveRoleFromShift(ctx context.Context, shiftID, roleID int64) (bool, error)
	ReplaceShiftRoles(ctx context.Context, shiftID int64, roleIDs []int64) ([]entities.ShiftRole, error)

	// Ping verifies the backend is reachable, for health checks.
	Ping(ctx context.Context) error
}

// Patch structs merge non-nil fields into the stored record. Updates never
// create on a missing id.

type UserPatch struct {
	Email     *string
	FirstName *string
	LastName  *string
	AvatarURL *string
}

type EventPatch struct {
	Name     *string
	Date     *string
	RawDates *string
	Time     *string
	Location *string
}

type VolunteerPatch struct {
	Name         *string
	Email        *string
	Phone        *string
	Role         *string
	Team         *string
	ShirtSize    *string
	DietaryNeeds *string
}

type ShiftPatch struct {
	ShiftDate     *time.Time
	StartTime     *string
	EndTime       *string
	Title         *string
	Description   *string
	MaxVolunteers *int
}

type RolePatch struct {
	Name        *string
	Description *string
}
