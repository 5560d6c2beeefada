package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/atria-app/web-mobile-connect/internal/logger"
	"github.com/atria-app/web-mobile-connect/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	List(ctx context.Context, platform *string, activeOnly bool) ([]models.User, error)
}

// NewListUsersHandler returns an HTTP handler for listing users.
// @Summary List users
// @Description Returns up to 100 users, newest first, filtered by platform and/or active flag (active_only defaults to true)
// @Tags users
// @Produce json
// @Param platform query string false "Filter by platform (web/mobile)"
// @Param active_only query bool false "Only active users" default(true)
// @Success 200 {array} models.User "Users, newest first"
// @Failure 400 {object} handlers.ErrorResponse "Invalid active_only"
// @Failure 500 {object} handlers.ErrorResponse "Store failure"
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var platform *string
		if p := r.URL.Query().Get("platform"); p != "" {
			platform = &p
		}

		activeOnly := true
		if raw := r.URL.Query().Get("active_only"); raw != "" {
			parsed, err := strconv.ParseBool(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "active_only must be a boolean")
				return
			}
			activeOnly = parsed
		}

		users, err := svc.List(r.Context(), platform, activeOnly)
		if err != nil {
			logger.Log.Errorw("failed to list users", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch users")
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}
