package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atria-app/web-mobile-connect/internal/logger"
	"github.com/atria-app/web-mobile-connect/internal/services"
)

// ActivityToucher defines the interface that the service must implement.
type ActivityToucher interface {
	TouchActivity(ctx context.Context, id string) error
}

// ActivityResponse reports the result of an activity touch.
// swagger:model ActivityResponse
type ActivityResponse struct {
	// Whether the update succeeded
	// default: true
	Success bool `json:"success"`

	// Human-readable confirmation
	// default: Activity updated
	Message string `json:"message"`
}

// NewTouchActivityHandler returns an HTTP handler that refreshes a user's
// last_active timestamp.
// @Summary Touch user activity
// @Description Sets the user's last_active to the current time
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} handlers.ActivityResponse "Activity updated"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Store failure"
// @Router /users/{id}/activity [put]
func NewTouchActivityHandler(svc ActivityToucher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := svc.TouchActivity(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("failed to touch user activity", "id", id, "error", err)
				writeError(w, http.StatusInternalServerError, "Failed to update activity")
			}
			return
		}

		writeJSON(w, http.StatusOK, ActivityResponse{
			Success: true,
			Message: "Activity updated",
		})
	}
}
