// Package seed loads a small demo dataset so a fresh deployment has
// something to click through.
package seed

import (
	"context"
	"fmt"
	"time"

	"eventcrew/rollcall/internal/common"
	"eventcrew/rollcall/internal/logging"
	"eventcrew/rollcall/internal/models/entities"
	"eventcrew/rollcall/internal/store"
)

// Run inserts the demo event with its volunteers, shifts, and roles.
// It is idempotent: a store that already has events is left untouched.
func Run(ctx context.Context, st store.Store) error {
	events, err := st.GetEvents(ctx)
	if err != nil {
		return fmt.Errorf("seed: list events: %w", err)
	}
	if len(events) > 0 {
		logging.Info("Seed skipped, store already has events", "count", len(events))
		return nil
	}

	dates, err := common.ParseISODates([]string{"2026-09-12", "2026-09-13"})
	if err != nil {
		return fmt.Errorf("seed: parse dates: %w", err)
	}

	event := entities.Event{
		Name:     "Riverside Music Festival",
		Date:     common.FormatDates(dates),
		RawDates: common.JoinRawDates(dates),
		Time:     "9:00 AM",
		Location: "Riverside Park",
	}
	if err := st.CreateEvent(ctx, &event); err != nil {
		return fmt.Errorf("seed: create event: %w", err)
	}

	volunteers := []entities.Volunteer{
		{EventID: event.ID, Name: "Maya Chen", Email: "maya@example.com", Role: strPtr("Stage Crew"), Team: strPtr("Main Stage"), ShirtSize: strPtr("M")},
		{EventID: event.ID, Name: "Jordan Ortiz", Email: "jordan@example.com", Role: strPtr("Greeter"), Team: strPtr("Front Gate"), ShirtSize: strPtr("L")},
		{EventID: event.ID, Name: "Sam Whitfield", Email: "sam@example.com", Role: strPtr("Runner"), Team: strPtr("Logistics"), ShirtSize: strPtr("S"), DietaryNeeds: strPtr("vegetarian")},
	}
	for i := range volunteers {
		if err := st.CreateVolunteer(ctx, &volunteers[i]); err != nil {
			return fmt.Errorf("seed: create volunteer: %w", err)
		}
	}

	roles := []entities.Role{
		{EventID: event.ID, Name: "Stage Crew", Description: strPtr("Set changes and backline")},
		{EventID: event.ID, Name: "Greeter", Description: strPtr("Welcome and wristband checks")},
	}
	for i := range roles {
		if err := st.CreateRole(ctx, &roles[i]); err != nil {
			return fmt.Errorf("seed: create role: %w", err)
		}
	}

	day1 := time.Date(2026, time.September, 12, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, time.September, 13, 0, 0, 0, 0, time.UTC)
	shifts := []entities.Shift{
		{EventID: event.ID, ShiftDate: day1, StartTime: "9:00 AM", EndTime: "1:00 PM", Title: "Morning setup", MaxVolunteers: 10},
		{EventID: event.ID, ShiftDate: day1, StartTime: "1:00 PM", EndTime: "6:00 PM", Title: "Afternoon gates"},
		{EventID: event.ID, ShiftDate: day2, StartTime: "10:00 AM", EndTime: "4:00 PM", Title: "Day two floor"},
	}
	for i := range shifts {
		if err := st.CreateShift(ctx, &shifts[i]); err != nil {
			return fmt.Errorf("seed: create shift: %w", err)
		}
	}

	if _, err := st.AssignRoleToShift(ctx, shifts[0].ID, roles[0].ID); err != nil {
		return fmt.Errorf("seed: assign role: %w", err)
	}
	if _, err := st.AssignRoleToShift(ctx, shifts[1].ID, roles[1].ID); err != nil {
		return fmt.Errorf("seed: assign role: %w", err)
	}

	logging.Info("Seeded demo data",
		"event", event.Name,
		"volunteers", len(volunteers),
		"shifts", len(shifts),
		"roles", len(roles),
	)
	return nil
}

func strPtr(s string) *string {
	return &s
}
