package api

import (
	"context"
	"net/http"
	"testing"

	"eventcrew/rollcall/internal/models/dtos"
	"eventcrew/rollcall/internal/models/entities"
)

func TestCreateEventDerivesDisplayDate(t *testing.T) {
	deps := newTestDeps()
	router := testRouter(NewHandlers(deps))

	rr := doJSON(t, router, "POST", "/api/events", dtos.CreateEventReq{
		Name:     "Spring Fair",
		RawDates: []string{"2026-05-02", "2026-05-01"},
		Time:     "9:00 AM",
		Location: "Town Square",
	})

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rr.Code, rr.Body.String())
	}

	var event entities.Event
	decodeEnvelope(t, rr, &event)

	if event.RawDates != "2026-05-01|2026-05-02" {
		t.Errorf("rawDates not canonicalized: %q", event.RawDates)
	}
	if event.Date != "May 1 to May 2, 2026" {
		t.Errorf("display date not derived: %q", event.Date)
	}
}

func TestCreateEventValidation(t *testing.T) {
	deps := newTestDeps()
	router := testRouter(NewHandlers(deps))

	rr := doJSON(t, router, "POST", "/api/events", map[string]any{
		"rawDates": []string{"2026-05-01"},
		"time":     "9:00 AM",
		"location": "Town Square",
	})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d", rr.Code)
	}

	var fields []dtos.FieldError
	status := decodeEnvelope(t, rr, &fields)
	if status != "error" {
		t.Errorf("expected error status, got %q", status)
	}
	if len(fields) == 0 || fields[0].Field != "name" {
		t.Errorf("expected a field error on name, got %+v", fields)
	}
}

func TestCreateEventRejectsBadDates(t *testing.T) {
	deps := newTestDeps()
	router := testRouter(NewHandlers(deps))

	rr := doJSON(t, router, "POST", "/api/events", map[string]any{
		"name":     "Spring Fair",
		"rawDates": []string{"05/01/2026"},
		"time":     "9:00 AM",
		"location": "Town Square",
	})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-ISO date, got %d", rr.Code)
	}
}

func TestGetEventNotFound(t *testing.T) {
	deps := newTestDeps()
	router := testRouter(NewHandlers(deps))

	rr := doJSON(t, router, "GET", "/api/events/999", nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rr.Code)
	}
}

func TestUpdateEventRebuildsDisplayDate(t *testing.T) {
	deps := newTestDeps()
	router := testRouter(NewHandlers(deps))
	event := createTestEvent(t, deps)

	rr := doJSON(t, router, "PATCH", "/api/events/1", map[string]any{
		"rawDates": []string{"2026-11-01"},
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var updated entities.Event
	decodeEnvelope(t, rr, &updated)
	if updated.Date != "November 1, 2026" {
		t.Errorf("display date not rebuilt from rawDates: %q", updated.Date)
	}
	if updated.Name != event.Name {
		t.Errorf("untouched field changed: %q", updated.Name)
	}
}

func TestListEventsIncludesVolunteerCounts(t *testing.T) {
	deps := newTestDeps()
	router := testRouter(NewHandlers(deps))
	event := createTestEvent(t, deps)

	for _, name := range []string{"a", "b"} {
		v := entities.Volunteer{EventID: event.ID, Name: name, Email: name + "@example.com"}
		if err := deps.Store.CreateVolunteer(context.Background(), &v); err != nil {
			t.Fatalf("CreateVolunteer: %v", err)
		}
	}

	rr := doJSON(t, router, "GET", "/api/events", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var events []dtos.EventWithCount
	decodeEnvelope(t, rr, &events)
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].VolunteerCount != 2 {
		t.Errorf("volunteerCount = %d, want 2", events[0].VolunteerCount)
	}
}

func TestGetEventStats(t *testing.T) {
	deps := newTestDeps()
	router := testRouter(NewHandlers(deps))
	event := createTestEvent(t, deps)

	v := entities.Volunteer{EventID: event.ID, Name: "Ada", Email: "ada@example.com"}
	if err := deps.Store.CreateVolunteer(context.Background(), &v); err != nil {
		t.Fatalf("CreateVolunteer: %v", err)
	}
	if _, err := deps.Store.CheckInVolunteer(context.Background(), v.ID, "desk"); err != nil {
		t.Fatalf("CheckInVolunteer: %v", err)
	}

	rr := doJSON(t, router, "GET", "/api/events/1/stats", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var stats dtos.EventStats
	decodeEnvelope(t, rr, &stats)
	if stats.Total != 1 || stats.CheckedIn != 1 || stats.Pending != 0 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestGetEventStatsUnknownEvent(t *testing.T) {
	deps := newTestDeps()
	router := testRouter(NewHandlers(deps))

	rr := doJSON(t, router, "GET", "/api/events/999/stats", nil)
	if rr.Code != http.StatusNotFound {
		t.Errorf("expected 404 for stats on unknown event, got %d", rr.Code)
	}
}
