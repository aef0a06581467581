package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"eventcrew/rollcall/internal/models/dtos"
	"eventcrew/rollcall/internal/models/entities"
)

func seedShiftAndRoles(t *testing.T, deps *Dependencies) (*entities.Shift, []entities.Role) {
	t.Helper()
	event := createTestEvent(t, deps)

	shift := entities.Shift{EventID: event.ID, ShiftDate: time.Now(), StartTime: "9:00 AM", EndTime: "noon", Title: "setup"}
	if err := deps.Store.CreateShift(context.Background(), &shift); err != nil {
		t.Fatalf("CreateShift: %v", err)
	}

	roles := []entities.Role{
		{EventID: event.ID, Name: "Greeter"},
		{EventID: event.ID, Name: "Runner"},
	}
	for i := range roles {
		if err := deps.Store.CreateRole(context.Background(), &roles[i]); err != nil {
			t.Fatalf("CreateRole: %v", err)
		}
	}
	return &shift, roles
}

func TestAssignShiftRole(t *testing.T) {
	deps := newTestDeps()
	router := testRouter(NewHandlers(deps))
	shift, roles := seedShiftAndRoles(t, deps)

	rr := doJSON(t, router, "POST", "/api/shift-roles", dtos.AssignShiftRoleReq{
		ShiftID: shift.ID,
		RoleID:  roles[0].ID,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	// assigning the same pair again must not duplicate
	rr = doJSON(t, router, "POST", "/api/shift-roles", dtos.AssignShiftRoleReq{
		ShiftID: shift.ID,
		RoleID:  roles[0].ID,
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201 on repeat, got %d", rr.Code)
	}

	srs, err := deps.Store.GetShiftRoles(context.Background(), shift.ID)
	if err != nil {
		t.Fatalf("GetShiftRoles: %v", err)
	}
	if len(srs) != 1 {
		t.Errorf("expected 1 association after repeat assign, got %d", len(srs))
	}
}

func TestAssignShiftRoleUnknownTargets(t *testing.T) {
	deps := newTestDeps()
	router := testRouter(NewHandlers(deps))
	shift, roles := seedShiftAndRoles(t, deps)

	rr := doJSON(t, router, "POST", "/api/shift-roles", dtos.AssignShiftRoleReq{
		ShiftID: 99,
		RoleID:  roles[0].ID,
	})
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown shift, got %d", rr.Code)
	}

	rr = doJSON(t, router, "POST", "/api/shift-roles", dtos.AssignShiftRoleReq{
		ShiftID: shift.ID,
		RoleID:  99,
	})
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown role, got %d", rr.Code)
	}
}

func TestReplaceShiftRolesEndpoint(t *testing.T) {
	deps := newTestDeps()
	router := testRouter(NewHandlers(deps))
	shift, roles := seedShiftAndRoles(t, deps)

	if _, err := deps.Store.AssignRoleToShift(context.Background(), shift.ID, roles[0].ID); err != nil {
		t.Fatalf("AssignRoleToShift: %v", err)
	}

	rr := doJSON(t, router, "PUT", "/api/shifts/1/roles", dtos.ReplaceShiftRolesReq{
		RoleIDs: []int64{roles[1].ID},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	srs, err := deps.Store.GetShiftRoles(context.Background(), shift.ID)
	if err != nil {
		t.Fatalf("GetShiftRoles: %v", err)
	}
	if len(srs) != 1 || srs[0].RoleID != roles[1].ID {
		t.Errorf("replacement did not swap the set: %+v", srs)
	}
}

func TestRemoveShiftRole(t *testing.T) {
	deps := newTestDeps()
	router := testRouter(NewHandlers(deps))
	shift, roles := seedShiftAndRoles(t, deps)

	if _, err := deps.Store.AssignRoleToShift(context.Background(), shift.ID, roles[0].ID); err != nil {
		t.Fatalf("AssignRoleToShift: %v", err)
	}

	rr := doJSON(t, router, "DELETE", "/api/shifts/1/roles/1", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	rr = doJSON(t, router, "DELETE", "/api/shifts/1/roles/1", nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404 removing an absent association, got %d", rr.Code)
	}
}

func TestDeleteRoleCascadesThroughEndpoint(t *testing.T) {
	deps := newTestDeps()
	router := testRouter(NewHandlers(deps))
	shift, roles := seedShiftAndRoles(t, deps)

	if _, err := deps.Store.AssignRoleToShift(context.Background(), shift.ID, roles[0].ID); err != nil {
		t.Fatalf("AssignRoleToShift: %v", err)
	}

	rr := doJSON(t, router, "DELETE", "/api/roles/1", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	srs, err := deps.Store.GetShiftRoles(context.Background(), shift.ID)
	if err != nil {
		t.Fatalf("GetShiftRoles: %v", err)
	}
	if len(srs) != 0 {
		t.Errorf("expected cascade to clear associations, got %+v", srs)
	}

	rr = doJSON(t, router, "GET", "/api/shifts/1/roles", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var listed []dtos.ShiftRoleWithRole
	decodeEnvelope(t, rr, &listed)
	if len(listed) != 0 {
		t.Errorf("expected empty shift roles list, got %+v", listed)
	}
}
