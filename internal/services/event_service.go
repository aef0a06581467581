package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"eventcrew/rollcall/internal/models/dtos"
	"eventcrew/rollcall/internal/store"
)

// EventService covers the read-side enrichment the events endpoints need
// on top of raw store calls.
type EventService struct {
	store store.Store
}

func NewEventService(st store.Store) *EventService {
	return &EventService{store: st}
}

// ListWithVolunteerCounts attaches each event's volunteer headcount. The
// per-event count queries fan out concurrently; the store contract is safe
// for concurrent reads.
func (s *EventService) ListWithVolunteerCounts(ctx context.Context) ([]dtos.EventWithCount, error) {
	events, err := s.store.GetEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	result := make([]dtos.EventWithCount, len(events))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i, event := range events {
		g.Go(func() error {
			count, err := s.store.CountVolunteers(gctx, event.ID)
			if err != nil {
				return err
			}
			result[i] = dtos.EventWithCount{Event: event, VolunteerCount: count}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to count volunteers: %w", err)
	}
	return result, nil
}

// Stats partitions an event's volunteers by check-in state. Missing events
// still report zeros: stats are a pure count over volunteers.
func (s *EventService) Stats(ctx context.Context, eventID int64) (*dtos.EventStats, error) {
	return s.store.GetEventStats(ctx, eventID)
}
