package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/atria-app/web-mobile-connect/internal/logger"
	"github.com/atria-app/web-mobile-connect/internal/models"
)

// StatusLister defines the interface that the service must implement.
type StatusLister interface {
	List(ctx context.Context, platform *string, limit int64) ([]models.StatusCheck, error)
}

const (
	defaultStatusListLimit = 100
	maxStatusListLimit     = 1000
)

// NewListStatusHandler returns an HTTP handler for listing status checks.
// @Summary List status checks
// @Description Returns status checks newest first, optionally filtered by platform, capped at the limit (1-1000, default 100)
// @Tags status
// @Produce json
// @Param platform query string false "Filter by platform (web/mobile)"
// @Param limit query int false "Result limit" minimum(1) maximum(1000) default(100)
// @Success 200 {array} models.StatusCheck "Status checks, newest first"
// @Failure 400 {object} handlers.ErrorResponse "Invalid limit"
// @Failure 500 {object} handlers.ErrorResponse "Store failure"
// @Router /status [get]
func NewListStatusHandler(svc StatusLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var platform *string
		if p := r.URL.Query().Get("platform"); p != "" {
			platform = &p
		}

		limit := int64(defaultStatusListLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseInt(raw, 10, 64)
			if err != nil || parsed < 1 || parsed > maxStatusListLimit {
				writeError(w, http.StatusBadRequest, "limit must be between 1 and 1000")
				return
			}
			limit = parsed
		}

		checks, err := svc.List(r.Context(), platform, limit)
		if err != nil {
			logger.Log.Errorw("failed to list status checks", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch status checks")
			return
		}

		writeJSON(w, http.StatusOK, checks)
	}
}
