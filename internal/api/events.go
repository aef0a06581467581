package api

import (
	"net/http"
	"time"

	"eventcrew/rollcall/internal/common"
	"eventcrew/rollcall/internal/models/dtos"
	"eventcrew/rollcall/internal/models/entities"
	"eventcrew/rollcall/internal/store"
)

// ListEvents handles GET /api/events. Each event carries its volunteer
// headcount.
func (h *Handlers) ListEvents() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		events, err := h.deps.Services.Events.ListWithVolunteerCounts(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch events", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Events fetched", events)
	}
}

// CreateEvent handles POST /api/events. The request names the canonical
// ISO dates; the display string is derived here.
func (h *Handlers) CreateEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateEventReq
		fields, err := decodeAndValidate(r, &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if len(fields) > 0 {
			common.RespondValidationErrors(w, initTime, fields)
			return
		}

		dates, err := common.ParseISODates(req.RawDates)
		if err != nil {
			common.RespondValidationErrors(w, initTime, []dtos.FieldError{
				{Field: "rawDates", Message: "must be a list of YYYY-MM-DD dates"},
			})
			return
		}

		event := entities.Event{
			Name:     req.Name,
			Date:     common.FormatDates(dates),
			RawDates: common.JoinRawDates(dates),
			Time:     req.Time,
			Location: req.Location,
		}

		if err := h.deps.Store.CreateEvent(r.Context(), &event); err != nil {
			common.RespondError(w, initTime, err, "Failed to create event", http.StatusInternalServerError)
			return
		}

		h.deps.Metrics.EventsCreatedTotal.Inc()
		common.RespondSuccess(w, initTime, "Event created", event, http.StatusCreated)
	}
}

// GetEvent handles GET /api/events/{id}
func (h *Handlers) GetEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid event id", http.StatusBadRequest)
			return
		}

		event, err := h.deps.Store.GetEvent(r.Context(), id)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch event", http.StatusInternalServerError)
			return
		}
		if event == nil {
			common.RespondError(w, initTime, nil, "Event not found", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Event fetched", event)
	}
}

// UpdateEvent handles PATCH /api/events/{id}. Supplying rawDates rebuilds
// the display date string.
func (h *Handlers) UpdateEvent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid event id", http.StatusBadRequest)
			return
		}

		var req dtos.UpdateEventReq
		fields, err := decodeAndValidate(r, &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if len(fields) > 0 {
			common.RespondValidationErrors(w, initTime, fields)
			return
		}

		patch := store.EventPatch{
			Name:     req.Name,
			Time:     req.Time,
			Location: req.Location,
		}
		if req.RawDates != nil {
			dates, err := common.ParseISODates(req.RawDates)
			if err != nil {
				common.RespondValidationErrors(w, initTime, []dtos.FieldError{
					{Field: "rawDates", Message: "must be a list of YYYY-MM-DD dates"},
				})
				return
			}
			display := common.FormatDates(dates)
			raw := common.JoinRawDates(dates)
			patch.Date = &display
			patch.RawDates = &raw
		}

		event, err := h.deps.Store.UpdateEvent(r.Context(), id, patch)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to update event", http.StatusInternalServerError)
			return
		}
		if event == nil {
			common.RespondError(w, initTime, nil, "Event not found", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Event updated", event)
	}
}

// GetEventStats handles GET /api/events/{id}/stats
func (h *Handlers) GetEventStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid event id", http.StatusBadRequest)
			return
		}

		event, err := h.deps.Store.GetEvent(r.Context(), id)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch event", http.StatusInternalServerError)
			return
		}
		if event == nil {
			common.RespondError(w, initTime, nil, "Event not found", http.StatusNotFound)
			return
		}

		stats, err := h.deps.Services.Events.Stats(r.Context(), id)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to compute stats", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Stats computed", stats)
	}
}
