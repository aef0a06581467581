package api

import (
	"net/http"
	"time"

	"eventcrew/rollcall/internal/common"
	"eventcrew/rollcall/internal/models/dtos"
	"eventcrew/rollcall/internal/models/entities"
	"eventcrew/rollcall/internal/store"
)

// ListRoles handles GET /api/events/{id}/roles
func (h *Handlers) ListRoles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		eventID, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid event id", http.StatusBadRequest)
			return
		}

		roles, err := h.deps.Store.GetRolesByEvent(r.Context(), eventID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch roles", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Roles fetched", roles)
	}
}

// CreateRole handles POST /api/events/{id}/roles
func (h *Handlers) CreateRole() http.HandlerFunc {
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

		var req dtos.CreateRoleReq
		fields, err := decodeAndValidate(r, &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if len(fields) > 0 {
			common.RespondValidationErrors(w, initTime, fields)
			return
		}

		role := entities.Role{
			EventID:     eventID,
			Name:        req.Name,
			Description: req.Description,
		}

		if err := h.deps.Store.CreateRole(r.Context(), &role); err != nil {
			common.RespondError(w, initTime, err, "Failed to create role", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Role created", role, http.StatusCreated)
	}
}

// GetRole handles GET /api/roles/{id}
func (h *Handlers) GetRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid role id", http.StatusBadRequest)
			return
		}

		role, err := h.deps.Store.GetRole(r.Context(), id)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch role", http.StatusInternalServerError)
			return
		}
		if role == nil {
			common.RespondError(w, initTime, nil, "Role not found", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Role fetched", role)
	}
}

// UpdateRole handles PATCH /api/roles/{id}
func (h *Handlers) UpdateRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid role id", http.StatusBadRequest)
			return
		}

		var req dtos.UpdateRoleReq
		fields, err := decodeAndValidate(r, &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if len(fields) > 0 {
			common.RespondValidationErrors(w, initTime, fields)
			return
		}

		role, err := h.deps.Store.UpdateRole(r.Context(), id, store.RolePatch{
			Name:        req.Name,
			Description: req.Description,
		})
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to update role", http.StatusInternalServerError)
			return
		}
		if role == nil {
			common.RespondError(w, initTime, nil, "Role not found", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Role updated", role)
	}
}

// DeleteRole handles DELETE /api/roles/{id}. The store removes all
// shift-role rows referencing the role before the role itself.
func (h *Handlers) DeleteRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid role id", http.StatusBadRequest)
			return
		}

		deleted, err := h.deps.Store.DeleteRole(r.Context(), id)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to delete role", http.StatusInternalServerError)
			return
		}
		if !deleted {
			common.RespondError(w, initTime, nil, "Role not found", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Role deleted", nil)
	}
}
