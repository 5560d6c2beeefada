package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/atria-app/web-mobile-connect/internal/services"
)

func TestHealthHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("healthy", func(t *testing.T) {
		mockSvc := NewMockHealthChecker(ctrl)
		mockSvc.EXPECT().Check(gomock.Any()).Return(nil)

		handler := NewHealthHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 200, rr.Code)

		var resp HealthResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "healthy", resp.Status)
		assert.Equal(t, "connected", resp.Database)
	})

	t.Run("store unreachable", func(t *testing.T) {
		mockSvc := NewMockHealthChecker(ctrl)
		mockSvc.EXPECT().Check(gomock.Any()).Return(services.ErrStoreUnavailable)

		handler := NewHealthHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 503, rr.Code)

		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "Database connection failed", resp.Error)
	})
}
