package dtos

import "eventcrew/rollcall/internal/models/entities"

// APIResponse is the standard envelope for every JSON endpoint.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ResponseTime string `json:"responseTime,omitempty"`
	Data         any    `json:"data,omitempty"`
}

// FieldError describes a single request-body validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// EventWithCount enriches an event with its volunteer headcount for the
// events list endpoint.
type EventWithCount struct {
	entities.Event
	VolunteerCount int `json:"volunteerCount"`
}

// EventStats partitions an event's volunteers by check-in state.
// Total == CheckedIn + Pending always holds.
type EventStats struct {
	Total     int `json:"total"`
	CheckedIn int `json:"checkedIn"`
	Pending   int `json:"pending"`
}

// ShiftRoleWithRole joins the association row with its full role record.
type ShiftRoleWithRole struct {
	entities.ShiftRole
	Role entities.Role `json:"role"`
}

// QRTokenResp carries a freshly minted check-in token for QR rendering.
type QRTokenResp struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}
