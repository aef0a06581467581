package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"eventcrew/rollcall/internal/common"
	"eventcrew/rollcall/internal/models/dtos"
	"eventcrew/rollcall/internal/models/entities"
	"eventcrew/rollcall/internal/store"
)

const shiftDateLayout = "2006-01-02"

// ListShifts handles GET /api/events/{id}/shifts, ordered by date
// then start time.
func (h *Handlers) ListShifts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		eventID, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid event id", http.StatusBadRequest)
			return
		}

		shifts, err := h.deps.Store.GetShiftsByEvent(r.Context(), eventID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch shifts", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Shifts fetched", shifts)
	}
}

// ListShiftsByDate handles GET /api/events/{id}/shifts/date/{date}.
// The date path segment is YYYY-MM-DD; matching is day-granular.
func (h *Handlers) ListShiftsByDate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		eventID, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid event id", http.StatusBadRequest)
			return
		}

		date, err := time.Parse(shiftDateLayout, chi.URLParam(r, "date"))
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		shifts, err := h.deps.Store.GetShiftsByDate(r.Context(), eventID, date)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch shifts", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Shifts fetched", shifts)
	}
}

// CreateShift handles POST /api/events/{id}/shifts
func (h *Handlers) CreateShift() http.HandlerFunc {
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

		var req dtos.CreateShiftReq
		fields, err := decodeAndValidate(r, &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if len(fields) > 0 {
			common.RespondValidationErrors(w, initTime, fields)
			return
		}

		shiftDate, err := time.Parse(shiftDateLayout, req.ShiftDate)
		if err != nil {
			common.RespondValidationErrors(w, initTime, []dtos.FieldError{
				{Field: "shiftDate", Message: "must be a date in YYYY-MM-DD format"},
			})
			return
		}

		shift := entities.Shift{
			EventID:       eventID,
			ShiftDate:     shiftDate,
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Title:         req.Title,
			Description:   req.Description,
			MaxVolunteers: req.MaxVolunteers,
		}

		if err := h.deps.Store.CreateShift(r.Context(), &shift); err != nil {
			common.RespondError(w, initTime, err, "Failed to create shift", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Shift created", shift, http.StatusCreated)
	}
}

// GetShift handles GET /api/shifts/{id}
func (h *Handlers) GetShift() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid shift id", http.StatusBadRequest)
			return
		}

		shift, err := h.deps.Store.GetShift(r.Context(), id)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch shift", http.StatusInternalServerError)
			return
		}
		if shift == nil {
			common.RespondError(w, initTime, nil, "Shift not found", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Shift fetched", shift)
	}
}

// UpdateShift handles PUT /api/shifts/{id}
func (h *Handlers) UpdateShift() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid shift id", http.StatusBadRequest)
			return
		}

		var req dtos.UpdateShiftReq
		fields, err := decodeAndValidate(r, &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if len(fields) > 0 {
			common.RespondValidationErrors(w, initTime, fields)
			return
		}

		patch := store.ShiftPatch{
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Title:         req.Title,
			Description:   req.Description,
			MaxVolunteers: req.MaxVolunteers,
		}
		if req.ShiftDate != nil {
			shiftDate, err := time.Parse(shiftDateLayout, *req.ShiftDate)
			if err != nil {
				common.RespondValidationErrors(w, initTime, []dtos.FieldError{
					{Field: "shiftDate", Message: "must be a date in YYYY-MM-DD format"},
				})
				return
			}
			patch.ShiftDate = &shiftDate
		}

		shift, err := h.deps.Store.UpdateShift(r.Context(), id, patch)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to update shift", http.StatusInternalServerError)
			return
		}
		if shift == nil {
			common.RespondError(w, initTime, nil, "Shift not found", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Shift updated", shift)
	}
}

// DeleteShift handles DELETE /api/shifts/{id}. Shift-role rows referencing
// the shift are cleared alongside it.
func (h *Handlers) DeleteShift() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid shift id", http.StatusBadRequest)
			return
		}

		// drop the shift's associations first so none are orphaned
		if _, err := h.deps.Store.ReplaceShiftRoles(r.Context(), id, nil); err != nil {
			common.RespondError(w, initTime, err, "Failed to clear shift roles", http.StatusInternalServerError)
			return
		}

		deleted, err := h.deps.Store.DeleteShift(r.Context(), id)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to delete shift", http.StatusInternalServerError)
			return
		}
		if !deleted {
			common.RespondError(w, initTime, nil, "Shift not found", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Shift deleted", nil)
	}
}
