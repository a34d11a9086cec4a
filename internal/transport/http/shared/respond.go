// Package shared holds response helpers used by every handler so the wire
// envelopes stay uniform.
package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "identikit/pkg/domain-errors"
)

// WriteJSON writes v as the response body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorEnvelope is the error shape every endpoint returns.
type errorEnvelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// WriteError translates a domain error into the JSON error envelope. Errors
// without a domain code become opaque 500s.
func WriteError(w http.ResponseWriter, err error) {
	var derr dErrors.Error
	if errors.As(err, &derr) {
		WriteJSON(w, dErrors.ToHTTPStatus(derr.Code), errorEnvelope{Status: "error", Message: derr.Message})
		return
	}
	WriteJSON(w, http.StatusInternalServerError, errorEnvelope{Status: "error", Message: "Internal server error"})
}
