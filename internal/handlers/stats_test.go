package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/atria-app/web-mobile-connect/internal/models"
)

func TestGetStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockStatsGetter(ctrl)
		mockSvc.EXPECT().
			GetStats(gomock.Any()).
			Return(&models.SystemStats{
				TotalUsers:        10,
				ActiveSessions:    8,
				TotalStatusChecks: 42,
				WebUsers:          6,
				MobileUsers:       4,
			}, nil)

		handler := NewGetStatsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/stats", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 200, rr.Code)

		var stats models.SystemStats
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &stats))
		assert.Equal(t, int64(10), stats.TotalUsers)
		assert.Equal(t, stats.TotalUsers, stats.WebUsers+stats.MobileUsers)
	})

	t.Run("store failure", func(t *testing.T) {
		mockSvc := NewMockStatsGetter(ctrl)
		mockSvc.EXPECT().
			GetStats(gomock.Any()).
			Return(nil, errors.New("count failure"))

		handler := NewGetStatsHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/stats", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 500, rr.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Failed to fetch stats", resp.Error)
	})
}
