package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/m04kA/MPC-PolicyService/internal/domain"
)

// ErrorResponse is the structured error payload of the tool surface.
// Details is present only for validation failures.
type ErrorResponse struct {
	Error   string              `json:"error"`
	Details []domain.FieldError `json:"details,omitempty"`
}

// RespondJSON writes a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondToolError reports a tool-level failure. The transport status stays
// 200: callers react to the structured payload, not to HTTP semantics.
func RespondToolError(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusOK, ErrorResponse{Error: message})
}

// RespondToolValidationError reports a validation failure with per-field
// details, again as a 200 with a structured payload.
func RespondToolValidationError(w http.ResponseWriter, message string, details []domain.FieldError) {
	RespondJSON(w, http.StatusOK, ErrorResponse{Error: message, Details: details})
}
