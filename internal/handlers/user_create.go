package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atria-app/web-mobile-connect/internal/logger"
	"github.com/atria-app/web-mobile-connect/internal/models"
	"github.com/atria-app/web-mobile-connect/internal/services"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	Create(ctx context.Context, name, email string, platform *string) (*models.User, error)
}

// CreateUserRequest represents the JSON body for user creation
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// Display name
	// required: true
	// default: Ann
	Name string `json:"name"`

	// Email, unique across all users
	// required: true
	// default: ann@example.com
	Email string `json:"email"`

	// Platform, "web" or "mobile"
	// default: web
	Platform *string `json:"platform,omitempty"`
}

// NewCreateUserHandler returns an HTTP handler for user creation.
// @Summary Create a new user
// @Description Creates a user with generated id and timestamps. Email must be unique.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User creation request"
// @Success 200 {object} models.User "Stored user"
// @Failure 400 {object} handlers.ErrorResponse "Duplicate email / invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Store failure or unacknowledged write"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Name == "" || req.Email == "" {
			writeError(w, http.StatusBadRequest, "name and email are required")
			return
		}

		user, err := svc.Create(r.Context(), req.Name, req.Email, req.Platform)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmailAlreadyExists):
				writeError(w, http.StatusBadRequest, "Email already registered")
			default:
				logger.Log.Errorw("failed to create user", "email", req.Email, "error", err)
				writeError(w, http.StatusInternalServerError, "Failed to create user")
			}
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
