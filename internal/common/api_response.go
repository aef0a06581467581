package common

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"eventcrew/rollcall/internal/constants"
	"eventcrew/rollcall/internal/models/dtos"
)

// RespondSuccess sends a standardized JSON success response.
func RespondSuccess(w http.ResponseWriter, initTime time.Time, message string, data any, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	response := dtos.APIResponse{
		Status:       string(constants.APIStatusOk),
		Message:      message,
		ResponseTime: GetResponseTime(initTime),
		Data:         data,
	}

	writeJSON(w, code, response)
}

// RespondError sends a standardized JSON error response. The optional err is
// logged server-side only; the client sees message.
func RespondError(w http.ResponseWriter, initTime time.Time, err error, message string, statusCode ...int) {
	code := http.StatusInternalServerError
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	if err != nil {
		log.Printf("request failed (%d): %s: %v", code, message, err)
	}

	response := dtos.APIResponse{
		Status:       string(constants.APIStatusError),
		Message:      message,
		ResponseTime: GetResponseTime(initTime),
	}

	writeJSON(w, code, response)
}

// RespondValidationErrors sends a 400 carrying field-level problems.
func RespondValidationErrors(w http.ResponseWriter, initTime time.Time, fields []dtos.FieldError) {
	response := dtos.APIResponse{
		Status:       string(constants.APIStatusError),
		Message:      "Validation failed",
		ResponseTime: GetResponseTime(initTime),
		Data:         fields,
	}

	writeJSON(w, http.StatusBadRequest, response)
}

// writeJSON marshals data and writes it to the HTTP response.
func writeJSON(w http.ResponseWriter, code int, body dtos.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("JSON encode failed: %v", err)
	}
}
