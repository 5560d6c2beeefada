package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/atria-app/web-mobile-connect/internal/logger"
	"github.com/atria-app/web-mobile-connect/internal/models"
)

// StatusCreator defines the interface that the service must implement.
type StatusCreator interface {
	Create(ctx context.Context, clientName string, platform, version *string) (*models.StatusCheck, error)
}

// CreateStatusRequest represents the JSON body for status check creation
// swagger:model CreateStatusRequest
type CreateStatusRequest struct {
	// Reporting client name
	// required: true
	// default: web-client
	ClientName string `json:"client_name"`

	// Platform, "web" or "mobile"
	// default: web
	Platform *string `json:"platform,omitempty"`

	// Client version
	// default: 1.0.0
	Version *string `json:"version,omitempty"`
}

// NewCreateStatusHandler returns an HTTP handler for status check creation.
// @Summary Create a status check
// @Description Persists a status check with generated id and timestamp; optional fields default to platform "web" and version "1.0.0"
// @Tags status
// @Accept json
// @Produce json
// @Param createStatusRequest body handlers.CreateStatusRequest true "Status check creation request"
// @Success 200 {object} models.StatusCheck "Stored status check"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 500 {object} handlers.ErrorResponse "Store failure or unacknowledged write"
// @Router /status [post]
func NewCreateStatusHandler(svc StatusCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateStatusRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.ClientName == "" {
			writeError(w, http.StatusBadRequest, "client_name is required")
			return
		}

		check, err := svc.Create(r.Context(), req.ClientName, req.Platform, req.Version)
		if err != nil {
			logger.Log.Errorw("failed to create status check", "client_name", req.ClientName, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to create status check")
			return
		}

		writeJSON(w, http.StatusOK, check)
	}
}
