package services

import (
	"context"
	"errors"
	"time"

	"github.com/atria-app/web-mobile-connect/internal/logger"
	"github.com/atria-app/web-mobile-connect/internal/models"
)

// Error variables
var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// userListLimit caps list responses, matching the fixed cap of the users
// listing endpoint.
const userListLimit = 100

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)                                    // Returns nil when no user has the email
	GetByID(ctx context.Context, id string) (*models.User, error)                                          // Returns nil when no user has the id
	List(ctx context.Context, platform *string, activeOnly bool, limit int64) ([]models.User, error)       // Newest created_at first
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.User) (bool, error)                       // Inserts a user, reports acknowledgement
	TouchActivity(ctx context.Context, id string, at time.Time) (int64, error)      // Sets last_active, returns matched count
}

// UserService handles user creation, lookup and activity updates.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// Create registers a new user. Email must be unique across the collection.
func (svc *UserService) Create(ctx context.Context, name, email string, platform *string) (*models.User, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email exists", "email", email, "error", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("email already exists", "email", email)
		return nil, ErrEmailAlreadyExists
	}

	user := models.NewUser(name, email, platform)

	acknowledged, err := svc.writer.Save(ctx, user)
	if err != nil {
		logger.Log.Errorw("failed to save user", "email", email, "error", err)
		return nil, err
	}
	if !acknowledged {
		logger.Log.Errorw("user write not acknowledged", "id", user.ID)
		return nil, ErrNotAcknowledged
	}

	return &user, nil
}

// List returns up to 100 users, newest first, filtered by platform and/or
// active flag.
func (svc *UserService) List(ctx context.Context, platform *string, activeOnly bool) ([]models.User, error) {
	users, err := svc.reader.List(ctx, platform, activeOnly, userListLimit)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, err
	}
	return users, nil
}

// Get returns the user with the given id.
func (svc *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get user", "id", id, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// TouchActivity sets the user's last_active to the current time.
func (svc *UserService) TouchActivity(ctx context.Context, id string) error {
	matched, err := svc.writer.TouchActivity(ctx, id, time.Now().UTC())
	if err != nil {
		logger.Log.Errorw("failed to touch user activity", "id", id, "error", err)
		return err
	}
	if matched == 0 {
		return ErrUserNotFound
	}
	return nil
}
