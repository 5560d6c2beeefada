package services

import (
	"context"
	"time"

	"github.com/atria-app/web-mobile-connect/internal/logger"
	"github.com/atria-app/web-mobile-connect/internal/models"
)

// UserCounter defines count operations for users.
type UserCounter interface {
	CountAll(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	CountByPlatform(ctx context.Context, platform string) (int64, error)
}

// StatusCheckCounter defines count operations for status checks.
type StatusCheckCounter interface {
	Count(ctx context.Context) (int64, error)
}

// StatsService assembles system statistics from independent count queries.
// The counts are not taken atomically; concurrent writes may produce a
// snapshot that reflects no single instant.
type StatsService struct {
	users  UserCounter
	checks StatusCheckCounter
}

// NewStatsService creates a new StatsService instance.
func NewStatsService(users UserCounter, checks StatusCheckCounter) *StatsService {
	return &StatsService{
		users:  users,
		checks: checks,
	}
}

// GetStats recomputes the stats snapshot.
func (svc *StatsService) GetStats(ctx context.Context) (*models.SystemStats, error) {
	totalUsers, err := svc.users.CountAll(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count users", "error", err)
		return nil, err
	}

	activeSessions, err := svc.users.CountActive(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count active users", "error", err)
		return nil, err
	}

	totalChecks, err := svc.checks.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count status checks", "error", err)
		return nil, err
	}

	webUsers, err := svc.users.CountByPlatform(ctx, models.PlatformWeb)
	if err != nil {
		logger.Log.Errorw("failed to count web users", "error", err)
		return nil, err
	}

	mobileUsers, err := svc.users.CountByPlatform(ctx, models.PlatformMobile)
	if err != nil {
		logger.Log.Errorw("failed to count mobile users", "error", err)
		return nil, err
	}

	return &models.SystemStats{
		TotalUsers:        totalUsers,
		ActiveSessions:    activeSessions,
		TotalStatusChecks: totalChecks,
		WebUsers:          webUsers,
		MobileUsers:       mobileUsers,
		LastUpdated:       time.Now().UTC(),
	}, nil
}
