package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/atria-app/web-mobile-connect/internal/logger"
	"github.com/atria-app/web-mobile-connect/internal/models"
	"github.com/atria-app/web-mobile-connect/internal/services"
)

// Syncer defines the interface that the service must implement.
type Syncer interface {
	Sync(ctx context.Context, userID string, lastSync *time.Time) ([]models.StatusCheck, error)
}

// SyncResponse carries the data handed to a mobile client.
// swagger:model SyncResponse
type SyncResponse struct {
	// Whether the sync succeeded
	// default: true
	Success bool `json:"success"`

	// Server time of the sync
	SyncTime time.Time `json:"sync_time"`

	// Number of records in data
	DataCount int `json:"data_count"`

	// Status checks since last_sync, capped at 50
	Data []models.StatusCheck `json:"data"`
}

// NewMobileSyncHandler returns an HTTP handler for the mobile sync endpoint.
// The user must exist; syncing touches its last_active as a side effect.
// @Summary Mobile sync
// @Description Touches the user's activity and returns up to 50 status checks with timestamp >= last_sync (all when omitted)
// @Tags mobile
// @Produce json
// @Param user_id query string true "User id"
// @Param last_sync query string false "RFC3339 cutoff timestamp"
// @Success 200 {object} handlers.SyncResponse "Sync payload"
// @Failure 400 {object} handlers.ErrorResponse "Missing user_id / invalid last_sync"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Store failure"
// @Router /mobile/sync [post]
func NewMobileSyncHandler(svc Syncer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.URL.Query().Get("user_id")
		if userID == "" {
			writeError(w, http.StatusBadRequest, "user_id is required")
			return
		}

		var lastSync *time.Time
		if raw := r.URL.Query().Get("last_sync"); raw != "" {
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "last_sync must be an RFC3339 timestamp")
				return
			}
			lastSync = &parsed
		}

		checks, err := svc.Sync(r.Context(), userID, lastSync)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("sync failed", "user_id", userID, "error", err)
				writeError(w, http.StatusInternalServerError, "Sync failed")
			}
			return
		}

		writeJSON(w, http.StatusOK, SyncResponse{
			Success:   true,
			SyncTime:  time.Now().UTC(),
			DataCount: len(checks),
			Data:      checks,
		})
	}
}
