package api

import (
	"net/http"
	"time"

	"eventcrew/rollcall/internal/common"
	"eventcrew/rollcall/internal/middleware"
	"eventcrew/rollcall/internal/models/dtos"
	"eventcrew/rollcall/internal/models/entities"
	"eventcrew/rollcall/internal/store"
)

// ListVolunteers handles GET /api/events/{id}/volunteers
func (h *Handlers) ListVolunteers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		eventID, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid event id", http.StatusBadRequest)
			return
		}

		volunteers, err := h.deps.Store.GetVolunteersByEvent(r.Context(), eventID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch volunteers", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Volunteers fetched", volunteers)
	}
}

// CreateVolunteer handles POST /api/events/{id}/volunteers. New volunteers
// always start not-checked-in.
func (h *Handlers) CreateVolunteer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		eventID, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid event id", http.StatusBadRequest)
			return
		}

		event, err := h.deps.Store.GetEvent(r.Context(), eventID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch event", http.StatusInternalServerError)
			return
		}
		if event == nil {
			common.RespondError(w, initTime, nil, "Event not found", http.StatusNotFound)
			return
		}

		var req dtos.CreateVolunteerReq
		fields, err := decodeAndValidate(r, &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if len(fields) > 0 {
			common.RespondValidationErrors(w, initTime, fields)
			return
		}

		volunteer := entities.Volunteer{
			EventID:      eventID,
			Name:         req.Name,
			Email:        req.Email,
			Phone:        req.Phone,
			Role:         req.Role,
			Team:         req.Team,
			ShirtSize:    req.ShirtSize,
			DietaryNeeds: req.DietaryNeeds,
		}

		if err := h.deps.Store.CreateVolunteer(r.Context(), &volunteer); err != nil {
			common.RespondError(w, initTime, err, "Failed to create volunteer", http.StatusInternalServerError)
			return
		}

		h.deps.Metrics.VolunteersRegisteredTotal.Inc()
		common.RespondSuccess(w, initTime, "Volunteer created", volunteer, http.StatusCreated)
	}
}

// GetVolunteer handles GET /api/volunteers/{id}
func (h *Handlers) GetVolunteer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid volunteer id", http.StatusBadRequest)
			return
		}

		volunteer, err := h.deps.Store.GetVolunteer(r.Context(), id)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch volunteer", http.StatusInternalServerError)
			return
		}
		if volunteer == nil {
			common.RespondError(w, initTime, nil, "Volunteer not found", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Volunteer fetched", volunteer)
	}
}

// UpdateVolunteer handles PATCH /api/volunteers/{id}
func (h *Handlers) UpdateVolunteer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid volunteer id", http.StatusBadRequest)
			return
		}

		var req dtos.UpdateVolunteerReq
		fields, err := decodeAndValidate(r, &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if len(fields) > 0 {
			common.RespondValidationErrors(w, initTime, fields)
			return
		}

		volunteer, err := h.deps.Store.UpdateVolunteer(r.Context(), id, store.VolunteerPatch{
			Name:         req.Name,
			Email:        req.Email,
			Phone:        req.Phone,
			Role:         req.Role,
			Team:         req.Team,
			ShirtSize:    req.ShirtSize,
			DietaryNeeds: req.DietaryNeeds,
		})
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to update volunteer", http.StatusInternalServerError)
			return
		}
		if volunteer == nil {
			common.RespondError(w, initTime, nil, "Volunteer not found", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Volunteer updated", volunteer)
	}
}

// DeleteVolunteer handles DELETE /api/volunteers/{id}
func (h *Handlers) DeleteVolunteer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid volunteer id", http.StatusBadRequest)
			return
		}

		deleted, err := h.deps.Store.DeleteVolunteer(r.Context(), id)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to delete volunteer", http.StatusInternalServerError)
			return
		}
		if !deleted {
			common.RespondError(w, initTime, nil, "Volunteer not found", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Volunteer deleted", nil)
	}
}

// CheckInVolunteer handles POST /api/volunteers/{id}/check-in. Who is
// checking in comes from the session when one exists, otherwise from the
// request body; the two never combine.
func (h *Handlers) CheckInVolunteer() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid volunteer id", http.StatusBadRequest)
			return
		}

		checkedInBy, ok := h.resolveCheckedInBy(w, r, initTime)
		if !ok {
			return
		}

		volunteer, err := h.deps.Store.CheckInVolunteer(r.Context(), id, checkedInBy)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to check in volunteer", http.StatusInternalServerError)
			return
		}
		if volunteer == nil {
			common.RespondError(w, initTime, nil, "Volunteer not found", http.StatusNotFound)
			return
		}

		h.deps.Metrics.CheckInsTotal.WithLabelValues("list").Inc()
		common.RespondSuccess(w, initTime, "Volunteer checked in", volunteer)
	}
}

// resolveCheckedInBy implements the two deployment modes. It writes the
// error response itself when resolution fails.
func (h *Handlers) resolveCheckedInBy(w http.ResponseWriter, r *http.Request, initTime time.Time) (string, bool) {
	if session := middleware.SessionFromContext(r.Context()); session != nil {
		return session.DisplayName, true
	}

	var req dtos.CheckInReq
	fields, err := decodeAndValidate(r, &req)
	if err != nil || len(fields) > 0 || req.CheckedInBy == "" {
		common.RespondValidationErrors(w, initTime, []dtos.FieldError{
			{Field: "checkedInBy", Message: "is required"},
		})
		return "", false
	}
	return req.CheckedInBy, true
}
