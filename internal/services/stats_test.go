package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/atria-app/web-mobile-connect/internal/models"
	"github.com/atria-app/web-mobile-connect/internal/services"
)

func TestStatsService_GetStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserCounter(ctrl)
	mockChecks := services.NewMockStatusCheckCounter(ctrl)

	svc := services.NewStatsService(mockUsers, mockChecks)

	mockUsers.EXPECT().CountAll(gomock.Any()).Return(int64(10), nil)
	mockUsers.EXPECT().CountActive(gomock.Any()).Return(int64(8), nil)
	mockChecks.EXPECT().Count(gomock.Any()).Return(int64(42), nil)
	mockUsers.EXPECT().CountByPlatform(gomock.Any(), models.PlatformWeb).Return(int64(6), nil)
	mockUsers.EXPECT().CountByPlatform(gomock.Any(), models.PlatformMobile).Return(int64(4), nil)

	stats, err := svc.GetStats(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(10), stats.TotalUsers)
	assert.Equal(t, int64(8), stats.ActiveSessions)
	assert.Equal(t, int64(42), stats.TotalStatusChecks)
	// With only web/mobile platforms, the per-platform counts add up.
	assert.Equal(t, stats.TotalUsers, stats.WebUsers+stats.MobileUsers)
	assert.WithinDuration(t, time.Now().UTC(), stats.LastUpdated, time.Second)
}

func TestStatsService_GetStats_CountError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := services.NewMockUserCounter(ctrl)
	mockChecks := services.NewMockStatusCheckCounter(ctrl)

	svc := services.NewStatsService(mockUsers, mockChecks)

	mockUsers.EXPECT().CountAll(gomock.Any()).Return(int64(0), errors.New("count error"))

	stats, err := svc.GetStats(context.Background())
	assert.EqualError(t, err, "count error")
	assert.Nil(t, stats)
}
