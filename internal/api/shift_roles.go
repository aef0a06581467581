package api

import (
	"net/http"
	"time"

	"eventcrew/rollcall/internal/common"
	"eventcrew/rollcall/internal/models/dtos"
)

// ListShiftRoles handles GET /api/shifts/{id}/roles. Each association
// carries its full role record; associations whose role no longer exists
// are omitted.
func (h *Handlers) ListShiftRoles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		shiftID, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid shift id", http.StatusBadRequest)
			return
		}

		shiftRoles, err := h.deps.Store.GetShiftRoles(r.Context(), shiftID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch shift roles", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Shift roles fetched", shiftRoles)
	}
}

// AssignShiftRole handles POST /api/shift-roles. Assigning an existing
// pair returns the existing association unchanged.
func (h *Handlers) AssignShiftRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AssignShiftRoleReq
		fields, err := decodeAndValidate(r, &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if len(fields) > 0 {
			common.RespondValidationErrors(w, initTime, fields)
			return
		}

		shift, err := h.deps.Store.GetShift(r.Context(), req.ShiftID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch shift", http.StatusInternalServerError)
			return
		}
		if shift == nil {
			common.RespondError(w, initTime, nil, "Shift not found", http.StatusNotFound)
			return
		}

		role, err := h.deps.Store.GetRole(r.Context(), req.RoleID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch role", http.StatusInternalServerError)
			return
		}
		if role == nil {
			common.RespondError(w, initTime, nil, "Role not found", http.StatusNotFound)
			return
		}

		shiftRole, err := h.deps.Store.AssignRoleToShift(r.Context(), req.ShiftID, req.RoleID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to assign role to shift", http.StatusInternalServerError)
			return
		}

		h.deps.Metrics.ShiftRoleAssignmentsTotal.Inc()
		common.RespondSuccess(w, initTime, "Role assigned to shift", shiftRole, http.StatusCreated)
	}
}

// RemoveShiftRole handles DELETE /api/shifts/{id}/roles/{roleId}
func (h *Handlers) RemoveShiftRole() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		shiftID, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid shift id", http.StatusBadRequest)
			return
		}
		roleID, err := pathID(r, "roleId")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid role id", http.StatusBadRequest)
			return
		}

		removed, err := h.deps.Store.RemoveRoleFromShift(r.Context(), shiftID, roleID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to remove role from shift", http.StatusInternalServerError)
			return
		}
		if !removed {
			common.RespondError(w, initTime, nil, "Shift role not found", http.StatusNotFound)
			return
		}

		common.RespondSuccess(w, initTime, "Role removed from shift", nil)
	}
}

// ReplaceShiftRoles handles PUT /api/shifts/{id}/roles: the bulk
// editor's save action. The store swaps the whole set atomically instead
// of the delete-everything-then-recreate loop the incremental endpoints
// would require.
func (h *Handlers) ReplaceShiftRoles() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		shiftID, err := pathID(r, "id")
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid shift id", http.StatusBadRequest)
			return
		}

		shift, err := h.deps.Store.GetShift(r.Context(), shiftID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to fetch shift", http.StatusInternalServerError)
			return
		}
		if shift == nil {
			common.RespondError(w, initTime, nil, "Shift not found", http.StatusNotFound)
			return
		}

		var req dtos.ReplaceShiftRolesReq
		fields, err := decodeAndValidate(r, &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if len(fields) > 0 {
			common.RespondValidationErrors(w, initTime, fields)
			return
		}

		for _, roleID := range req.RoleIDs {
			role, err := h.deps.Store.GetRole(r.Context(), roleID)
			if err != nil {
				common.RespondError(w, initTime, err, "Failed to fetch role", http.StatusInternalServerError)
				return
			}
			if role == nil {
				common.RespondError(w, initTime, nil, "Role not found", http.StatusNotFound)
				return
			}
		}

		shiftRoles, err := h.deps.Store.ReplaceShiftRoles(r.Context(), shiftID, req.RoleIDs)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to replace shift roles", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Shift roles replaced", shiftRoles)
	}
}
