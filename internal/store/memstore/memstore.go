// Package memstore is the map-backed Store implementation. It assumes a
// single process; a mutex keeps individual operations atomic, which also
// gives the role-delete cascade and bulk resync all-or-nothing behavior
// for free.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"eventcrew/rollcall/internal/models/dtos"
	"eventcrew/rollcall/internal/models/entities"
	"eventcrew/rollcall/internal/store"
)

type MemStore struct {
	mu sync.RWMutex

	users      map[int64]entities.User
	events     map[int64]entities.Event
	volunteers map[int64]entities.Volunteer
	shifts     map[int64]entities.Shift
	roles      map[int64]entities.Role
	shiftRoles map[int64]entities.ShiftRole

	nextID map[string]int64
}

var _ store.Store = (*MemStore)(nil)

func New() *MemStore {
	return &MemStore{
		users:      make(map[int64]entities.User),
		events:     make(map[int64]entities.Event),
		volunteers: make(map[int64]entities.Volunteer),
		shifts:     make(map[int64]entities.Shift),
		roles:      make(map[int64]entities.Role),
		shiftRoles: make(map[int64]entities.ShiftRole),
		nextID:     make(map[string]int64),
	}
}

func (m *MemStore) nextFor(entity string) int64 {
	m.nextID[entity]++
	return m.nextID[entity]
}

// ---- Users ----

func (m *MemStore) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if u, ok := m.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (m *MemStore) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (m *MemStore) CreateUser(ctx context.Context, user *entities.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	user.ID = m.nextFor("users")
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	m.users[user.ID] = *user
	return nil
}

func (m *MemStore) UpdateUser(ctx context.Context, id int64, patch store.UserPatch) (*entities.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, nil
	}

	if patch.Email != nil {
		u.Email = patch.Email
	}
	if patch.FirstName != nil {
		u.FirstName = patch.FirstName
	}
	if patch.LastName != nil {
		u.LastName = patch.LastName
	}
	if patch.AvatarURL != nil {
		u.AvatarURL = patch.AvatarURL
	}
	u.UpdatedAt = time.Now()

	m.users[id] = u
	return &u, nil
}

// ---- Events ----

func (m *MemStore) GetEvent(ctx context.Context, id int64) (*entities.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if e, ok := m.events[id]; ok {
		return &e, nil
	}
	return nil, nil
}

func (m *MemStore) GetEvents(ctx context.Context) ([]entities.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := make([]entities.Event, 0, len(m.events))
	for _, e := range m.events {
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
	return events, nil
}

func (m *MemStore) CreateEvent(ctx context.Context, event *entities.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	event.ID = m.nextFor("events")
	event.CreatedAt = time.Now()
	m.events[event.ID] = *event
	return nil
}

func (m *MemStore) UpdateEvent(ctx context.Context, id int64, patch store.EventPatch) (*entities.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.events[id]
	if !ok {
		return nil, nil
	}

	if patch.Name != nil {
		e.Name = *patch.Name
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.RawDates != nil {
		e.RawDates = *patch.RawDates
	}
	if patch.Time != nil {
		e.Time = *patch.Time
	}
	if patch.Location != nil {
		e.Location = *patch.Location
	}

	m.events[id] = e
	return &e, nil
}

// ---- Volunteers ----

func (m *MemStore) GetVolunteer(ctx context.Context, id int64) (*entities.Volunteer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if v, ok := m.volunteers[id]; ok {
		return &v, nil
	}
	return nil, nil
}

func (m *MemStore) GetVolunteersByEvent(ctx context.Context, eventID int64) ([]entities.Volunteer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	volunteers := make([]entities.Volunteer, 0)
	for _, v := range m.volunteers {
		if v.EventID == eventID {
			volunteers = append(volunteers, v)
		}
	}
	sort.Slice(volunteers, func(i, j int) bool { return volunteers[i].ID < volunteers[j].ID })
	return volunteers, nil
}

func (m *MemStore) CreateVolunteer(ctx context.Context, volunteer *entities.Volunteer) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	volunteer.ID = m.nextFor("volunteers")
	volunteer.CreatedAt = time.Now()
	// a new volunteer is never checked in
	volunteer.CheckedIn = false
	volunteer.CheckInTime = nil
	volunteer.CheckedInBy = nil
	m.volunteers[volunteer.ID] = *volunteer
	return nil
}

func (m *MemStore) UpdateVolunteer(ctx context.Context, id int64, patch store.VolunteerPatch) (*entities.Volunteer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.volunteers[id]
	if !ok {
		return nil, nil
	}

	if patch.Name != nil {
		v.Name = *patch.Name
	}
	if patch.Email != nil {
		v.Email = *patch.Email
	}
	if patch.Phone != nil {
		v.Phone = patch.Phone
	}
	if patch.Role != nil {
		v.Role = patch.Role
	}
	if patch.Team != nil {
		v.Team = patch.Team
	}
	if patch.ShirtSize != nil {
		v.ShirtSize = patch.ShirtSize
	}
	if patch.DietaryNeeds != nil {
		v.DietaryNeeds = patch.DietaryNeeds
	}

	m.volunteers[id] = v
	return &v, nil
}

func (m *MemStore) DeleteVolunteer(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.volunteers[id]; !ok {
		return false, nil
	}
	delete(m.volunteers, id)
	return true, nil
}

func (m *MemStore) CheckInVolunteer(ctx context.Context, id int64, checkedInBy string) (*entities.Volunteer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.volunteers[id]
	if !ok {
		return nil, nil
	}

	now := time.Now()
	v.CheckedIn = true
	v.CheckInTime = &now
	v.CheckedInBy = &checkedInBy

	m.volunteers[id] = v
	return &v, nil
}

func (m *MemStore) CountVolunteers(ctx context.Context, eventID int64) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	count := 0
	for _, v := range m.volunteers {
		if v.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (m *MemStore) GetEventStats(ctx context.Context, eventID int64) (*dtos.EventStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := dtos.EventStats{}
	for _, v := range m.volunteers {
		if v.EventID != eventID {
			continue
		}
		stats.Total++
		if v.CheckedIn {
			stats.CheckedIn++
		}
	}
	stats.Pending = stats.Total - stats.CheckedIn
	return &stats, nil
}

// ---- Shifts ----

func (m *MemStore) GetShift(ctx context.Context, id int64) (*entities.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if s, ok := m.shifts[id]; ok {
		return &s, nil
	}
	return nil, nil
}

func (m *MemStore) GetShiftsByEvent(ctx context.Context, eventID int64) ([]entities.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	shifts := make([]entities.Shift, 0)
	for _, s := range m.shifts {
		if s.EventID == eventID {
			shifts = append(shifts, s)
		}
	}
	store.SortShifts(shifts)
	return shifts, nil
}

func (m *MemStore) GetShiftsByDate(ctx context.Context, eventID int64, date time.Time) ([]entities.Shift, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	shifts := make([]entities.Shift, 0)
	for _, s := range m.shifts {
		if s.EventID == eventID && store.SameDay(s.ShiftDate, date) {
			shifts = append(shifts, s)
		}
	}
	store.SortShifts(shifts)
	return shifts, nil
}

func (m *MemStore) CreateShift(ctx context.Context, shift *entities.Shift) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	shift.ID = m.nextFor("shifts")
	m.shifts[shift.ID] = *shift
	return nil
}

func (m *MemStore) UpdateShift(ctx context.Context, id int64, patch store.ShiftPatch) (*entities.Shift, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.shifts[id]
	if !ok {
		return nil, nil
	}

	if patch.ShiftDate != nil {
		s.ShiftDate = *patch.ShiftDate
	}
	if patch.StartTime != nil {
		s.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		s.EndTime = *patch.EndTime
	}
	if patch.Title != nil {
		s.Title = *patch.Title
	}
	if patch.Description != nil {
		s.Description = patch.Description
	}
	if patch.MaxVolunteers != nil {
		s.MaxVolunteers = *patch.MaxVolunteers
	}

	m.shifts[id] = s
	return &s, nil
}

func (m *MemStore) DeleteShift(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.shifts[id]; !ok {
		return false, nil
	}
	delete(m.shifts, id)
	return true, nil
}

// ---- Roles ----

func (m *MemStore) GetRole(ctx context.Context, id int64) (*entities.Role, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if r, ok := m.roles[id]; ok {
		return &r, nil
	}
	return nil, nil
}

func (m *MemStore) GetRolesByEvent(ctx context.Context, eventID int64) ([]entities.Role, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	roles := make([]entities.Role, 0)
	for _, r := range m.roles {
		if r.EventID == eventID {
			roles = append(roles, r)
		}
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].ID < roles[j].ID })
	return roles, nil
}

func (m *MemStore) CreateRole(ctx context.Context, role *entities.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	role.ID = m.nextFor("roles")
	m.roles[role.ID] = *role
	return nil
}

func (m *MemStore) UpdateRole(ctx context.Context, id int64, patch store.RolePatch) (*entities.Role, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.roles[id]
	if !ok {
		return nil, nil
	}

	if patch.Name != nil {
		r.Name = *patch.Name
	}
	if patch.Description != nil {
		r.Description = patch.Description
	}

	m.roles[id] = r
	return &r, nil
}

// DeleteRole removes the role's shift-role rows first, then the role. The
// single lock makes the cascade atomic.
func (m *MemStore) DeleteRole(ctx context.Context, id int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.roles[id]; !ok {
		return false, nil
	}

	for srID, sr := range m.shiftRoles {
		if sr.RoleID == id {
			delete(m.shiftRoles, srID)
		}
	}
	delete(m.roles, id)
	return true, nil
}

// ---- ShiftRoles ----

func (m *MemStore) GetShiftRoles(ctx context.Context, shiftID int64) ([]dtos.ShiftRoleWithRole, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]dtos.ShiftRoleWithRole, 0)
	for _, sr := range m.shiftRoles {
		if sr.ShiftID != shiftID {
			continue
		}
		role, ok := m.roles[sr.RoleID]
		if !ok {
			// orphaned association, skip
			continue
		}
		result = append(result, dtos.ShiftRoleWithRole{ShiftRole: sr, Role: role})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MemStore) AssignRoleToShift(ctx context.Context, shiftID, roleID int64) (*entities.ShiftRole, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing := m.findPair(shiftID, roleID); existing != nil {
		return existing, nil
	}

	sr := entities.ShiftRole{
		ID:      m.nextFor("shift_roles"),
		ShiftID: shiftID,
		RoleID:  roleID,
	}
	m.shiftRoles[sr.ID] = sr
	return &sr, nil
}

func (m *MemStore) RemoveRoleFromShift(ctx context.Context, shiftID, roleID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing := m.findPair(shiftID, roleID); existing != nil {
		delete(m.shiftRoles, existing.ID)
		return true, nil
	}
	return false, nil
}

func (m *MemStore) ReplaceShiftRoles(ctx context.Context, shiftID int64, roleIDs []int64) ([]entities.ShiftRole, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for srID, sr := range m.shiftRoles {
		if sr.ShiftID == shiftID {
			delete(m.shiftRoles, srID)
		}
	}

	result := make([]entities.ShiftRole, 0, len(roleIDs))
	seen := make(map[int64]bool, len(roleIDs))
	for _, roleID := range roleIDs {
		if seen[roleID] {
			continue
		}
		seen[roleID] = true
		sr := entities.ShiftRole{
			ID:      m.nextFor("shift_roles"),
			ShiftID: shiftID,
			RoleID:  roleID,
		}
		m.shiftRoles[sr.ID] = sr
		result = append(result, sr)
	}
	return result, nil
}

func (m *MemStore) findPair(shiftID, roleID int64) *entities.ShiftRole {
	for _, sr := range m.shiftRoles {
		if sr.ShiftID == shiftID && sr.RoleID == roleID {
			return &sr
		}
	}
	return nil
}

func (m *MemStore) Ping(ctx context.Context) error {
	return nil
}
