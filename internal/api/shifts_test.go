package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"eventcrew/rollcall/internal/models/dtos"
	"eventcrew/rollcall/internal/models/entities"
)

func TestCreateShiftAndListInClockOrder(t *testing.T) {
	deps := newTestDeps()
	router := testRouter(NewHandlers(deps))
	createTestEvent(t, deps)

	for _, start := range []string{"10:00 AM", "9:00 AM"} {
		rr := doJSON(t, router, "POST", "/api/events/1/shifts", dtos.CreateShiftReq{
			ShiftDate: "2026-10-10",
			StartTime: start,
			EndTime:   "5:00 PM",
			Title:     "gate " + start,
		})
		if rr.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
		}
	}

	rr := doJSON(t, router, "GET", "/api/events/1/shifts", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var shifts []entities.Shift
	decodeEnvelope(t, rr, &shifts)
	if len(shifts) != 2 {
		t.Fatalf("expected 2 shifts, got %d", len(shifts))
	}
	if shifts[0].StartTime != "9:00 AM" {
		t.Errorf("expected 9:00 AM first, got %q", shifts[0].StartTime)
	}
}

func TestCreateShiftRejectsBadDate(t *testing.T) {
	deps := newTestDeps()
	router := testRouter(NewHandlers(deps))
	createTestEvent(t, deps)

	rr := doJSON(t, router, "POST", "/api/events/1/shifts", map[string]any{
		"shiftDate": "next tuesday",
		"startTime": "9:00 AM",
		"endTime":   "noon",
		"title":     "setup",
	})

	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad shiftDate, got %d", rr.Code)
	}
}

func TestListShiftsByDate(t *testing.T) {
	deps := newTestDeps()
	router := testRouter(NewHandlers(deps))
	event := createTestEvent(t, deps)

	shifts := []entities.Shift{
		{EventID: event.ID, ShiftDate: time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC), StartTime: "9:00 AM", Title: "day one"},
		{EventID: event.ID, ShiftDate: time.Date(2026, 10, 11, 0, 0, 0, 0, time.UTC), StartTime: "9:00 AM", Title: "day two"},
	}
	for i := range shifts {
		if err := deps.Store.CreateShift(context.Background(), &shifts[i]); err != nil {
			t.Fatalf("CreateShift: %v", err)
		}
	}

	rr := doJSON(t, router, "GET", "/api/events/1/shifts/date/2026-10-10", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var got []entities.Shift
	decodeEnvelope(t, rr, &got)
	if len(got) != 1 || got[0].Title != "day one" {
		t.Errorf("expected only the day-one shift, got %+v", got)
	}

	rr = doJSON(t, router, "GET", "/api/events/1/shifts/date/10-10-2026", nil)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed date, got %d", rr.Code)
	}
}
