package api

import (
	"net/http"
	"time"

	"eventcrew/rollcall/internal/common"
	"eventcrew/rollcall/internal/middleware"
	"eventcrew/rollcall/internal/models/dtos"
)

// GenerateQRToken handles POST /api/volunteers/{id}/qr-token. The returned
// token is what the organizer renders as a QR code on the volunteer's
// badge or confirmation email.
func (h *Handlers) GenerateQRToken() http.HandlerFunc {
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

		token, expiresAt, err := h.deps.Services.CheckInTokens.Generate(volunteer.ID, volunteer.EventID)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to generate token", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "Token generated", dtos.QRTokenResp{
			Token:     token,
			ExpiresAt: expiresAt.Unix(),
		})
	}
}

// QRCheckIn handles POST /api/check-in/qr: the scanner posts the decoded
// token and the volunteer it names gets checked in.
func (h *Handlers) QRCheckIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.QRCheckInReq
		fields, err := decodeAndValidate(r, &req)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}
		if len(fields) > 0 {
			common.RespondValidationErrors(w, initTime, fields)
			return
		}

		claims, err := h.deps.Services.CheckInTokens.Validate(req.Token)
		if err != nil {
			common.RespondError(w, initTime, err, "Invalid or expired token", http.StatusUnauthorized)
			return
		}

		checkedInBy, ok := h.resolveQRCheckedInBy(w, r, req.CheckedInBy, initTime)
		if !ok {
			return
		}

		volunteer, err := h.deps.Store.CheckInVolunteer(r.Context(), claims.VolunteerID, checkedInBy)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to check in volunteer", http.StatusInternalServerError)
			return
		}
		if volunteer == nil {
			common.RespondError(w, initTime, nil, "Volunteer not found", http.StatusNotFound)
			return
		}

		h.deps.Metrics.CheckInsTotal.WithLabelValues("qr").Inc()
		common.RespondSuccess(w, initTime, "Volunteer checked in", volunteer)
	}
}

func (h *Handlers) resolveQRCheckedInBy(w http.ResponseWriter, r *http.Request, fromBody string, initTime time.Time) (string, bool) {
	if session := middleware.SessionFromContext(r.Context()); session != nil {
		return session.DisplayName, true
	}
	if fromBody == "" {
		common.RespondValidationErrors(w, initTime, []dtos.FieldError{
			{Field: "checkedInBy", Message: "is required"},
		})
		return "", false
	}
	return fromBody, true
}
