package services

import (
	"context"
	"time"

	"github.com/atria-app/web-mobile-connect/internal/logger"
	"github.com/atria-app/web-mobile-connect/internal/models"
)

// syncDataLimit caps the number of status checks returned by a sync.
const syncDataLimit = 50

// SyncService serves mobile clients: touches the user's activity and hands
// back recent status checks.
type SyncService struct {
	users  UserReader
	writer UserWriter
	checks StatusCheckReader
}

// NewSyncService creates a new SyncService instance.
func NewSyncService(users UserReader, writer UserWriter, checks StatusCheckReader) *SyncService {
	return &SyncService{
		users:  users,
		writer: writer,
		checks: checks,
	}
}

// Sync touches the user's last_active and returns up to 50 status checks
// with a timestamp at or after lastSync (all when lastSync is nil). The
// user must exist; unknown ids yield ErrUserNotFound.
func (svc *SyncService) Sync(ctx context.Context, userID string, lastSync *time.Time) ([]models.StatusCheck, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to look up sync user", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if _, err := svc.writer.TouchActivity(ctx, userID, time.Now().UTC()); err != nil {
		logger.Log.Errorw("failed to touch activity during sync", "user_id", userID, "error", err)
		return nil, err
	}

	checks, err := svc.checks.ListSince(ctx, lastSync, syncDataLimit)
	if err != nil {
		logger.Log.Errorw("failed to fetch sync data", "user_id", userID, "error", err)
		return nil, err
	}

	return checks, nil
}
