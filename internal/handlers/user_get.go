package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atria-app/web-mobile-connect/internal/logger"
	"github.com/atria-app/web-mobile-connect/internal/models"
	"github.com/atria-app/web-mobile-connect/internal/services"
)

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	Get(ctx context.Context, id string) (*models.User, error)
}

// NewGetUserHandler returns an HTTP handler for fetching a user by id.
// @Summary Get a user
// @Description Returns the user with the given id
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.User "User"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Store failure"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeError(w, http.StatusNotFound, "User not found")
			default:
				logger.Log.Errorw("failed to get user", "id", id, "error", err)
				writeError(w, http.StatusInternalServerError, "Failed to fetch user")
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
