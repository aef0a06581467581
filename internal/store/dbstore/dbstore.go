// Package dbstore is the Postgres-backed Store implementation, querying
// through sqlx. The schema itself is created by GORM AutoMigrate at startup
// (see internal/db).
package dbstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"eventcrew/rollcall/internal/constants"
	"eventcrew/rollcall/internal/models/dtos"
	"eventcrew/rollcall/internal/models/entities"
	"eventcrew/rollcall/internal/store"
)

type DBStore struct {
	db *sqlx.DB
}

var _ store.Store = (*DBStore)(nil)

func New(db *sqlx.DB) *DBStore {
	return &DBStore{db: db}
}

// ---- Users ----

func (s *DBStore) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	var user entities.User
	err := s.db.QueryRowxContext(ctx, constants.GetUserByID, id).StructScan(&user)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (s *DBStore) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	err := s.db.QueryRowxContext(ctx, constants.GetUserByUsername, username).StructScan(&user)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (s *DBStore) CreateUser(ctx context.Context, user *entities.User) error {
	err := s.db.QueryRowxContext(ctx, constants.InsertUser,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.FirstName,
		user.LastName,
		user.AvatarURL,
		time.Now(),
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *DBStore) UpdateUser(ctx context.Context, id int64, patch store.UserPatch) (*entities.User, error) {
	existing, err := s.GetUser(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	if patch.Email != nil {
		existing.Email = patch.Email
	}
	if patch.FirstName != nil {
		existing.FirstName = patch.FirstName
	}
	if patch.LastName != nil {
		existing.LastName = patch.LastName
	}
	if patch.AvatarURL != nil {
		existing.AvatarURL = patch.AvatarURL
	}

	var user entities.User
	err = s.db.QueryRowxContext(ctx, constants.UpdateUser,
		id, existing.Email, existing.FirstName, existing.LastName, existing.AvatarURL, time.Now(),
	).StructScan(&user)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}

// ---- Events ----

func (s *DBStore) GetEvent(ctx context.Context, id int64) (*entities.Event, error) {
	var event entities.Event
	err := s.db.QueryRowxContext(ctx, constants.GetEventByID, id).StructScan(&event)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch event: %w", err)
	}
	return &event, nil
}

func (s *DBStore) GetEvents(ctx context.Context) ([]entities.Event, error) {
	events := make([]entities.Event, 0)
	if err := s.db.SelectContext(ctx, &events, constants.GetAllEvents); err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *DBStore) CreateEvent(ctx context.Context, event *entities.Event) error {
	err := s.db.QueryRowxContext(ctx, constants.InsertEvent,
		event.Name,
		event.Date,
		event.RawDates,
		event.Time,
		event.Location,
		time.Now(),
	).Scan(&event.ID, &event.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

func (s *DBStore) UpdateEvent(ctx context.Context, id int64, patch store.EventPatch) (*entities.Event, error) {
	existing, err := s.GetEvent(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Date != nil {
		existing.Date = *patch.Date
	}
	if patch.RawDates != nil {
		existing.RawDates = *patch.RawDates
	}
	if patch.Time != nil {
		existing.Time = *patch.Time
	}
	if patch.Location != nil {
		existing.Location = *patch.Location
	}

	var event entities.Event
	err = s.db.QueryRowxContext(ctx, constants.UpdateEvent,
		id, existing.Name, existing.Date, existing.RawDates, existing.Time, existing.Location,
	).StructScan(&event)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return &event, nil
}

// ---- Volunteers ----

func (s *DBStore) GetVolunteer(ctx context.Context, id int64) (*entities.Volunteer, error) {
	var volunteer entities.Volunteer
	err := s.db.QueryRowxContext(ctx, constants.GetVolunteerByID, id).StructScan(&volunteer)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch volunteer: %w", err)
	}
	return &volunteer, nil
}

func (s *DBStore) GetVolunteersByEvent(ctx context.Context, eventID int64) ([]entities.Volunteer, error) {
	volunteers := make([]entities.Volunteer, 0)
	if err := s.db.SelectContext(ctx, &volunteers, constants.GetVolunteersByEvent, eventID); err != nil {
		return nil, fmt.Errorf("failed to list volunteers: %w", err)
	}
	return volunteers, nil
}

func (s *DBStore) CreateVolunteer(ctx context.Context, volunteer *entities.Volunteer) error {
	err := s.db.QueryRowxContext(ctx, constants.InsertVolunteer,
		volunteer.EventID,
		volunteer.Name,
		volunteer.Email,
		volunteer.Phone,
		volunteer.Role,
		volunteer.Team,
		volunteer.ShirtSize,
		volunteer.DietaryNeeds,
		time.Now(),
	).Scan(&volunteer.ID, &volunteer.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert volunteer: %w", err)
	}
	volunteer.CheckedIn = false
	volunteer.CheckInTime = nil
	volunteer.CheckedInBy = nil
	return nil
}

func (s *DBStore) UpdateVolunteer(ctx context.Context, id int64, patch store.VolunteerPatch) (*entities.Volunteer, error) {
	existing, err := s.GetVolunteer(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Email != nil {
		existing.Email = *patch.Email
	}
	if patch.Phone != nil {
		existing.Phone = patch.Phone
	}
	if patch.Role != nil {
		existing.Role = patch.Role
	}
	if patch.Team != nil {
		existing.Team = patch.Team
	}
	if patch.ShirtSize != nil {
		existing.ShirtSize = patch.ShirtSize
	}
	if patch.DietaryNeeds != nil {
		existing.DietaryNeeds = patch.DietaryNeeds
	}

	var volunteer entities.Volunteer
	err = s.db.QueryRowxContext(ctx, constants.UpdateVolunteer,
		id, existing.Name, existing.Email, existing.Phone, existing.Role,
		existing.Team, existing.ShirtSize, existing.DietaryNeeds,
	).StructScan(&volunteer)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update volunteer: %w", err)
	}
	return &volunteer, nil
}

func (s *DBStore) DeleteVolunteer(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, constants.DeleteVolunteerByID, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete volunteer: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (s *DBStore) CheckInVolunteer(ctx context.Context, id int64, checkedInBy string) (*entities.Volunteer, error) {
	var volunteer entities.Volunteer
	err := s.db.QueryRowxContext(ctx, constants.CheckInVolunteer, id, time.Now(), checkedInBy).StructScan(&volunteer)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check in volunteer: %w", err)
	}
	return &volunteer, nil
}

func (s *DBStore) CountVolunteers(ctx context.Context, eventID int64) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, constants.CountVolunteersByEvent, eventID); err != nil {
		return 0, fmt.Errorf("failed to count volunteers: %w", err)
	}
	return count, nil
}

func (s *DBStore) GetEventStats(ctx context.Context, eventID int64) (*dtos.EventStats, error) {
	var row struct {
		Total     int `db:"total"`
		CheckedIn int `db:"checked_in"`
	}
	if err := s.db.QueryRowxContext(ctx, constants.GetEventStats, eventID).StructScan(&row); err != nil {
		return nil, fmt.Errorf("failed to compute event stats: %w", err)
	}
	return &dtos.EventStats{
		Total:     row.Total,
		CheckedIn: row.CheckedIn,
		Pending:   row.Total - row.CheckedIn,
	}, nil
}

// ---- Shifts ----

func (s *DBStore) GetShift(ctx context.Context, id int64) (*entities.Shift, error) {
	var shift entities.Shift
	err := s.db.QueryRowxContext(ctx, constants.GetShiftByID, id).StructScan(&shift)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift: %w", err)
	}
	return &shift, nil
}

func (s *DBStore) GetShiftsByEvent(ctx context.Context, eventID int64) ([]entities.Shift, error) {
	shifts := make([]entities.Shift, 0)
	if err := s.db.SelectContext(ctx, &shifts, constants.GetShiftsByEvent, eventID); err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	// ordering by normalized start time lives in Go, not SQL: the labels
	// are free text
	store.SortShifts(shifts)
	return shifts, nil
}

func (s *DBStore) GetShiftsByDate(ctx context.Context, eventID int64, date time.Time) ([]entities.Shift, error) {
	shifts := make([]entities.Shift, 0)
	if err := s.db.SelectContext(ctx, &shifts, constants.GetShiftsByDate, eventID, date); err != nil {
		return nil, fmt.Errorf("failed to list shifts by date: %w", err)
	}
	store.SortShifts(shifts)
	return shifts, nil
}

func (s *DBStore) CreateShift(ctx context.Context, shift *entities.Shift) error {
	err := s.db.QueryRowxContext(ctx, constants.InsertShift,
		shift.EventID,
		shift.ShiftDate,
		shift.StartTime,
		shift.EndTime,
		shift.Title,
		shift.Description,
		shift.MaxVolunteers,
	).Scan(&shift.ID)
	if err != nil {
		return fmt.Errorf("failed to insert shift: %w", err)
	}
	return nil
}

func (s *DBStore) UpdateShift(ctx context.Context, id int64, patch store.ShiftPatch) (*entities.Shift, error) {
	existing, err := s.GetShift(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	if patch.ShiftDate != nil {
		existing.ShiftDate = *patch.ShiftDate
	}
	if patch.StartTime != nil {
		existing.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		existing.EndTime = *patch.EndTime
	}
	if patch.Title != nil {
		existing.Title = *patch.Title
	}
	if patch.Description != nil {
		existing.Description = patch.Description
	}
	if patch.MaxVolunteers != nil {
		existing.MaxVolunteers = *patch.MaxVolunteers
	}

	var shift entities.Shift
	err = s.db.QueryRowxContext(ctx, constants.UpdateShift,
		id, existing.ShiftDate, existing.StartTime, existing.EndTime,
		existing.Title, existing.Description, existing.MaxVolunteers,
	).StructScan(&shift)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update shift: %w", err)
	}
	return &shift, nil
}

func (s *DBStore) DeleteShift(ctx context.Context, id int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, constants.DeleteShiftByID, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete shift: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// ---- Roles ----

func (s *DBStore) GetRole(ctx context.Context, id int64) (*entities.Role, error) {
	var role entities.Role
	err := s.db.QueryRowxContext(ctx, constants.GetRoleByID, id).StructScan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch role: %w", err)
	}
	return &role, nil
}

func (s *DBStore) GetRolesByEvent(ctx context.Context, eventID int64) ([]entities.Role, error) {
	roles := make([]entities.Role, 0)
	if err := s.db.SelectContext(ctx, &roles, constants.GetRolesByEvent, eventID); err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	return roles, nil
}

func (s *DBStore) CreateRole(ctx context.Context, role *entities.Role) error {
	err := s.db.QueryRowxContext(ctx, constants.InsertRole,
		role.EventID,
		role.Name,
		role.Description,
	).Scan(&role.ID)
	if err != nil {
		return fmt.Errorf("failed to insert role: %w", err)
	}
	return nil
}

func (s *DBStore) UpdateRole(ctx context.Context, id int64, patch store.RolePatch) (*entities.Role, error) {
	existing, err := s.GetRole(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}

	if patch.Name != nil {
		existing.Name = *patch.Name
	}
	if patch.Description != nil {
		existing.Description = patch.Description
	}

	var role entities.Role
	err = s.db.QueryRowxContext(ctx, constants.UpdateRole,
		id, existing.Name, existing.Description,
	).StructScan(&role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	return &role, nil
}

// DeleteRole removes the role's shift-role rows and the role itself in one
// transaction, so a mid-sequence failure can't leave orphaned associations.
func (s *DBStore) DeleteRole(ctx context.Context, id int64) (bool, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, constants.DeleteShiftRolesByRole, id); err != nil {
		return false, fmt.Errorf("failed to delete shift roles for role: %w", err)
	}

	res, err := tx.ExecContext(ctx, constants.DeleteRoleByID, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete role: %w", err)
	}
	n, _ := res.RowsAffected()

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit role deletion: %w", err)
	}
	return n > 0, nil
}

// ---- ShiftRoles ----

type shiftRoleRow struct {
	SrID         int64   `db:"sr_id"`
	SrShiftID    int64   `db:"sr_shift_id"`
	SrRoleID     int64   `db:"sr_role_id"`
	RID          int64   `db:"r_id"`
	REventID     int64   `db:"r_event_id"`
	RName        string  `db:"r_name"`
	RDescription *string `db:"r_description"`
}

func (s *DBStore) GetShiftRoles(ctx context.Context, shiftID int64) ([]dtos.ShiftRoleWithRole, error) {
	rows := make([]shiftRoleRow, 0)
	if err := s.db.SelectContext(ctx, &rows, constants.GetShiftRolesWithRole, shiftID); err != nil {
		return nil, fmt.Errorf("failed to list shift roles: %w", err)
	}

	result := make([]dtos.ShiftRoleWithRole, 0, len(rows))
	for _, row := range rows {
		result = append(result, dtos.ShiftRoleWithRole{
			ShiftRole: entities.ShiftRole{ID: row.SrID, ShiftID: row.SrShiftID, RoleID: row.SrRoleID},
			Role: entities.Role{
				ID:          row.RID,
				EventID:     row.REventID,
				Name:        row.RName,
				Description: row.RDescription,
			},
		})
	}
	return result, nil
}

func (s *DBStore) AssignRoleToShift(ctx context.Context, shiftID, roleID int64) (*entities.ShiftRole, error) {
	var existing entities.ShiftRole
	err := s.db.QueryRowxContext(ctx, constants.GetShiftRolePair, shiftID, roleID).StructScan(&existing)
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to look up shift role: %w", err)
	}

	sr := entities.ShiftRole{ShiftID: shiftID, RoleID: roleID}
	if err := s.db.QueryRowxContext(ctx, constants.InsertShiftRole, shiftID, roleID).Scan(&sr.ID); err != nil {
		return nil, fmt.Errorf("failed to insert shift role: %w", err)
	}
	return &sr, nil
}

func (s *DBStore) RemoveRoleFromShift(ctx context.Context, shiftID, roleID int64) (bool, error) {
	res, err := s.db.ExecContext(ctx, constants.DeleteShiftRolePair, shiftID, roleID)
	if err != nil {
		return false, fmt.Errorf("failed to remove shift role: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

// ReplaceShiftRoles swaps out a shift's role set in one transaction. The
// brief all-deleted intermediate state of the old delete-then-recreate loop
// is never visible to other readers.
func (s *DBStore) ReplaceShiftRoles(ctx context.Context, shiftID int64, roleIDs []int64) ([]entities.ShiftRole, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, constants.DeleteShiftRolesByShift, shiftID); err != nil {
		return nil, fmt.Errorf("failed to clear shift roles: %w", err)
	}

	result := make([]entities.ShiftRole, 0, len(roleIDs))
	seen := make(map[int64]bool, len(roleIDs))
	for _, roleID := range roleIDs {
		if seen[roleID] {
			continue
		}
		seen[roleID] = true

		sr := entities.ShiftRole{ShiftID: shiftID, RoleID: roleID}
		if err := tx.QueryRowxContext(ctx, constants.InsertShiftRole, shiftID, roleID).Scan(&sr.ID); err != nil {
			return nil, fmt.Errorf("failed to insert shift role: %w", err)
		}
		result = append(result, sr)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit shift role replacement: %w", err)
	}
	return result, nil
}

func (s *DBStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
