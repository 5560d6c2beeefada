package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the JSON body returned for every error status.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human-readable error detail
	// default: Internal server error
	Error string `json:"error"`
}

// writeJSON serializes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes an ErrorResponse with the given status code.
func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, ErrorResponse{Error: detail})
}
