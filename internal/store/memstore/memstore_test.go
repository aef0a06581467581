package memstore

import (
	"context"
	"testing"
	"time"

	"eventcrew/rollcall/internal/models/entities"
	"eventcrew/rollcall/internal/store"
)

func seedEvent(t *testing.T, m *MemStore) *entities.Event {
	t.Helper()
	event := entities.Event{
		Name:     "Spring Fair",
		Date:     "May 1, 2026",
		RawDates: "2026-05-01",
		Location: "Town Square",
	}
	if err := m.CreateEvent(context.Background(), &event); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	return &event
}

func seedVolunteer(t *testing.T, m *MemStore, eventID int64, name string) *entities.Volunteer {
	t.Helper()
	v := entities.Volunteer{EventID: eventID, Name: name, Email: name + "@example.com"}
	if err := m.CreateVolunteer(context.Background(), &v); err != nil {
		t.Fatalf("CreateVolunteer: %v", err)
	}
	return &v
}

func TestCreateVolunteerStartsNotCheckedIn(t *testing.T) {
	m := New()
	event := seedEvent(t, m)

	now := time.Now()
	by := "sneaky"
	v := entities.Volunteer{
		EventID:     event.ID,
		Name:        "Ada",
		Email:       "ada@example.com",
		CheckedIn:   true,
		CheckInTime: &now,
		CheckedInBy: &by,
	}
	if err := m.CreateVolunteer(context.Background(), &v); err != nil {
		t.Fatalf("CreateVolunteer: %v", err)
	}

	got, err := m.GetVolunteer(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("GetVolunteer: %v", err)
	}
	if got.CheckedIn || got.CheckInTime != nil || got.CheckedInBy != nil {
		t.Errorf("new volunteer must start not checked in, got %+v", got)
	}
}

func TestCheckInVolunteerSetsAllFields(t *testing.T) {
	m := New()
	event := seedEvent(t, m)
	v := seedVolunteer(t, m, event.ID, "Ada")

	got, err := m.CheckInVolunteer(context.Background(), v.ID, "Front Desk")
	if err != nil {
		t.Fatalf("CheckInVolunteer: %v", err)
	}
	if got == nil {
		t.Fatal("expected volunteer, got nil")
	}
	if !got.CheckedIn {
		t.Error("CheckedIn should be true")
	}
	if got.CheckInTime == nil {
		t.Error("CheckInTime should be set")
	}
	if got.CheckedInBy == nil || *got.CheckedInBy != "Front Desk" {
		t.Errorf("CheckedInBy = %v, want Front Desk", got.CheckedInBy)
	}
}

func TestCheckInUnknownVolunteer(t *testing.T) {
	m := New()

	got, err := m.CheckInVolunteer(context.Background(), 42, "Front Desk")
	if err != nil {
		t.Fatalf("CheckInVolunteer: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unknown volunteer, got %+v", got)
	}
}

func TestGetEventStats(t *testing.T) {
	m := New()
	event := seedEvent(t, m)
	other := seedEvent(t, m)

	v1 := seedVolunteer(t, m, event.ID, "a")
	seedVolunteer(t, m, event.ID, "b")
	seedVolunteer(t, m, event.ID, "c")
	seedVolunteer(t, m, other.ID, "elsewhere")

	if _, err := m.CheckInVolunteer(context.Background(), v1.ID, "desk"); err != nil {
		t.Fatalf("CheckInVolunteer: %v", err)
	}

	stats, err := m.GetEventStats(context.Background(), event.ID)
	if err != nil {
		t.Fatalf("GetEventStats: %v", err)
	}
	if stats.Total != 3 || stats.CheckedIn != 1 || stats.Pending != 2 {
		t.Errorf("stats = %+v, want total 3, checked in 1, pending 2", stats)
	}
}

func TestGetEventStatsEmptyEvent(t *testing.T) {
	m := New()
	event := seedEvent(t, m)

	stats, err := m.GetEventStats(context.Background(), event.ID)
	if err != nil {
		t.Fatalf("GetEventStats: %v", err)
	}
	if stats.Total != 0 || stats.CheckedIn != 0 || stats.Pending != 0 {
		t.Errorf("stats for empty event = %+v, want all zeros", stats)
	}
}

func TestUpdateVolunteerNeverCreates(t *testing.T) {
	m := New()

	name := "ghost"
	got, err := m.UpdateVolunteer(context.Background(), 99, store.VolunteerPatch{Name: &name})
	if err != nil {
		t.Fatalf("UpdateVolunteer: %v", err)
	}
	if got != nil {
		t.Errorf("update on missing id must not create, got %+v", got)
	}

	vols, err := m.GetVolunteersByEvent(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetVolunteersByEvent: %v", err)
	}
	if len(vols) != 0 {
		t.Errorf("expected no volunteers, got %d", len(vols))
	}
}

func TestDeleteVolunteerReportsMissing(t *testing.T) {
	m := New()
	event := seedEvent(t, m)
	v := seedVolunteer(t, m, event.ID, "Ada")

	deleted, err := m.DeleteVolunteer(context.Background(), v.ID)
	if err != nil || !deleted {
		t.Fatalf("DeleteVolunteer = %v, %v, want true, nil", deleted, err)
	}

	deleted, err = m.DeleteVolunteer(context.Background(), v.ID)
	if err != nil {
		t.Fatalf("DeleteVolunteer: %v", err)
	}
	if deleted {
		t.Error("second delete should report false")
	}
}

func TestAssignRoleToShiftIdempotent(t *testing.T) {
	m := New()
	event := seedEvent(t, m)

	role := entities.Role{EventID: event.ID, Name: "Greeter"}
	if err := m.CreateRole(context.Background(), &role); err != nil {
		t.Fatalf("CreateRole: %v", err)
	}
	shift := entities.Shift{EventID: event.ID, ShiftDate: time.Now(), StartTime: "9:00 AM", EndTime: "noon", Title: "setup"}
	if err := m.CreateShift(context.Background(), &shift); err != nil {
		t.Fatalf("CreateShift: %v", err)
	}

	first, err := m.AssignRoleToShift(context.Background(), shift.ID, role.ID)
	if err != nil {
		t.Fatalf("AssignRoleToShift: %v", err)
	}
	second, err := m.AssignRoleToShift(context.Background(), shift.ID, role.ID)
	if err != nil {
		t.Fatalf("AssignRoleToShift: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("repeated assignment created a new row: %d then %d", first.ID, second.ID)
	}

	srs, err := m.GetShiftRoles(context.Background(), shift.ID)
	if err != nil {
		t.Fatalf("GetShiftRoles: %v", err)
	}
	if len(srs) != 1 {
		t.Errorf("expected 1 shift role, got %d", len(srs))
	}
}

func TestDeleteRoleCascades(t *testing.T) {
	m := New()
	event := seedEvent(t, m)

	doomed := entities.Role{EventID: event.ID, Name: "Doomed"}
	kept := entities.Role{EventID: event.ID, Name: "Kept"}
	for _, r := range []*entities.Role{&doomed, &kept} {
		if err := m.CreateRole(context.Background(), r); err != nil {
			t.Fatalf("CreateRole: %v", err)
		}
	}

	s1 := entities.Shift{EventID: event.ID, ShiftDate: time.Now(), Title: "s1"}
	s2 := entities.Shift{EventID: event.ID, ShiftDate: time.Now(), Title: "s2"}
	for _, s := range []*entities.Shift{&s1, &s2} {
		if err := m.CreateShift(context.Background(), s); err != nil {
			t.Fatalf("CreateShift: %v", err)
		}
	}

	for _, pair := range [][2]int64{{s1.ID, doomed.ID}, {s2.ID, doomed.ID}, {s1.ID, kept.ID}} {
		if _, err := m.AssignRoleToShift(context.Background(), pair[0], pair[1]); err != nil {
			t.Fatalf("AssignRoleToShift: %v", err)
		}
	}

	deleted, err := m.DeleteRole(context.Background(), doomed.ID)
	if err != nil || !deleted {
		t.Fatalf("DeleteRole = %v, %v, want true, nil", deleted, err)
	}

	srs1, _ := m.GetShiftRoles(context.Background(), s1.ID)
	if len(srs1) != 1 || srs1[0].RoleID != kept.ID {
		t.Errorf("shift 1 should keep only the surviving role, got %+v", srs1)
	}
	srs2, _ := m.GetShiftRoles(context.Background(), s2.ID)
	if len(srs2) != 0 {
		t.Errorf("shift 2 should have no roles left, got %+v", srs2)
	}
}

func TestReplaceShiftRolesSwapsAndDedupes(t *testing.T) {
	m := New()
	event := seedEvent(t, m)

	old := entities.Role{EventID: event.ID, Name: "Old"}
	r1 := entities.Role{EventID: event.ID, Name: "One"}
	r2 := entities.Role{EventID: event.ID, Name: "Two"}
	for _, r := range []*entities.Role{&old, &r1, &r2} {
		if err := m.CreateRole(context.Background(), r); err != nil {
			t.Fatalf("CreateRole: %v", err)
		}
	}
	shift := entities.Shift{EventID: event.ID, ShiftDate: time.Now(), Title: "floor"}
	if err := m.CreateShift(context.Background(), &shift); err != nil {
		t.Fatalf("CreateShift: %v", err)
	}
	if _, err := m.AssignRoleToShift(context.Background(), shift.ID, old.ID); err != nil {
		t.Fatalf("AssignRoleToShift: %v", err)
	}

	result, err := m.ReplaceShiftRoles(context.Background(), shift.ID, []int64{r1.ID, r2.ID, r1.ID})
	if err != nil {
		t.Fatalf("ReplaceShiftRoles: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 associations after dedupe, got %d", len(result))
	}

	srs, _ := m.GetShiftRoles(context.Background(), shift.ID)
	roleIDs := map[int64]bool{}
	for _, sr := range srs {
		roleIDs[sr.RoleID] = true
	}
	if roleIDs[old.ID] || !roleIDs[r1.ID] || !roleIDs[r2.ID] {
		t.Errorf("replacement did not swap the set, got %+v", srs)
	}
}

func TestReplaceShiftRolesEmptyClears(t *testing.T) {
	m := New()
	event := seedEvent(t, m)

	role := entities.Role{EventID: event.ID, Name: "Greeter"}
	if err := m.CreateRole(context.Background(), &role); err != nil {
		t.Fatalf("CreateRole: %v", err)
	}
	shift := entities.Shift{EventID: event.ID, ShiftDate: time.Now(), Title: "floor"}
	if err := m.CreateShift(context.Background(), &shift); err != nil {
		t.Fatalf("CreateShift: %v", err)
	}
	if _, err := m.AssignRoleToShift(context.Background(), shift.ID, role.ID); err != nil {
		t.Fatalf("AssignRoleToShift: %v", err)
	}

	result, err := m.ReplaceShiftRoles(context.Background(), shift.ID, nil)
	if err != nil {
		t.Fatalf("ReplaceShiftRoles: %v", err)
	}
	if len(result) != 0 {
		t.Errorf("expected empty set, got %+v", result)
	}
}

func TestGetShiftsByDateIsDayGranular(t *testing.T) {
	m := New()
	event := seedEvent(t, m)

	day1Morning := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	day1Evening := time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 5, 2, 8, 0, 0, 0, time.UTC)

	shifts := []entities.Shift{
		{EventID: event.ID, ShiftDate: day1Evening, StartTime: "6:00 PM", Title: "evening"},
		{EventID: event.ID, ShiftDate: day1Morning, StartTime: "8:00 AM", Title: "morning"},
		{EventID: event.ID, ShiftDate: day2, StartTime: "8:00 AM", Title: "next day"},
	}
	for i := range shifts {
		if err := m.CreateShift(context.Background(), &shifts[i]); err != nil {
			t.Fatalf("CreateShift: %v", err)
		}
	}

	got, err := m.GetShiftsByDate(context.Background(), event.ID, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("GetShiftsByDate: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both May 1 shifts regardless of time of day, got %d", len(got))
	}
	if got[0].Title != "morning" || got[1].Title != "evening" {
		t.Errorf("shifts not in start-time order: %s, %s", got[0].Title, got[1].Title)
	}
}

func TestGetShiftsByEventOrdered(t *testing.T) {
	m := New()
	event := seedEvent(t, m)

	day := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	shifts := []entities.Shift{
		{EventID: event.ID, ShiftDate: day, StartTime: "10:00 AM", Title: "late"},
		{EventID: event.ID, ShiftDate: day, StartTime: "9:00 AM", Title: "early"},
	}
	for i := range shifts {
		if err := m.CreateShift(context.Background(), &shifts[i]); err != nil {
			t.Fatalf("CreateShift: %v", err)
		}
	}

	got, err := m.GetShiftsByEvent(context.Background(), event.ID)
	if err != nil {
		t.Fatalf("GetShiftsByEvent: %v", err)
	}
	if got[0].Title != "early" {
		t.Errorf("expected 9:00 AM shift first, got %s", got[0].Title)
	}
}

func TestGetShiftRolesSkipsOrphans(t *testing.T) {
	m := New()
	event := seedEvent(t, m)

	role := entities.Role{EventID: event.ID, Name: "Greeter"}
	if err := m.CreateRole(context.Background(), &role); err != nil {
		t.Fatalf("CreateRole: %v", err)
	}
	shift := entities.Shift{EventID: event.ID, ShiftDate: time.Now(), Title: "floor"}
	if err := m.CreateShift(context.Background(), &shift); err != nil {
		t.Fatalf("CreateShift: %v", err)
	}
	if _, err := m.AssignRoleToShift(context.Background(), shift.ID, role.ID); err != nil {
		t.Fatalf("AssignRoleToShift: %v", err)
	}

	srs, err := m.GetShiftRoles(context.Background(), shift.ID)
	if err != nil {
		t.Fatalf("GetShiftRoles: %v", err)
	}
	if len(srs) != 1 || srs[0].Role.Name != "Greeter" {
		t.Fatalf("expected association joined with its role, got %+v", srs)
	}
}

func TestUserLookupByUsername(t *testing.T) {
	m := New()

	u := entities.User{Username: "organizer", PasswordHash: "x"}
	if err := m.CreateUser(context.Background(), &u); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	got, err := m.GetUserByUsername(context.Background(), "organizer")
	if err != nil {
		t.Fatalf("GetUserByUsername: %v", err)
	}
	if got == nil || got.ID != u.ID {
		t.Errorf("lookup by username failed, got %+v", got)
	}

	missing, err := m.GetUserByUsername(context.Background(), "nobody")
	if err != nil || missing != nil {
		t.Errorf("unknown username should be (nil, nil), got %+v, %v", missing, err)
	}
}
