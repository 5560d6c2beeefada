package handlers

import (
	"context"
	"net/http"

	"github.com/atria-app/web-mobile-connect/internal/logger"
	"github.com/atria-app/web-mobile-connect/internal/models"
)

// StatsGetter defines the interface that the service must implement.
type StatsGetter interface {
	GetStats(ctx context.Context) (*models.SystemStats, error)
}

// NewGetStatsHandler returns an HTTP handler for the stats snapshot.
// @Summary Get system stats
// @Description Assembles user and status check counts; the snapshot is not atomic across counts
// @Tags stats
// @Produce json
// @Success 200 {object} models.SystemStats "Stats snapshot"
// @Failure 500 {object} handlers.ErrorResponse "Store failure"
// @Router /stats [get]
func NewGetStatsHandler(svc StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.GetStats(r.Context())
		if err != nil {
			logger.Log.Errorw("failed to get stats", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch stats")
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
