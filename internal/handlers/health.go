package handlers

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker defines the interface that the service must implement.
type HealthChecker interface {
	Check(ctx context.Context) error
}

// HealthResponse reports store connectivity.
// swagger:model HealthResponse
type HealthResponse struct {
	// Overall status
	// default: healthy
	Status string `json:"status"`

	// Store connectivity
	// default: connected
	Database string `json:"database"`

	// Probe time
	Timestamp time.Time `json:"timestamp"`
}

// NewHealthHandler returns an HTTP handler for the health probe.
// @Summary Health check
// @Description Verifies document store connectivity with a trivial operation
// @Tags meta
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Store reachable"
// @Failure 503 {object} handlers.ErrorResponse "Store unreachable"
// @Router /health [get]
func NewHealthHandler(svc HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Check(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "Database connection failed")
			return
		}

		writeJSON(w, http.StatusOK, HealthResponse{
			Status:    "healthy",
			Database:  "connected",
			Timestamp: time.Now().UTC(),
		})
	}
}
