package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/atria-app/web-mobile-connect/internal/models"
	"github.com/atria-app/web-mobile-connect/internal/services"
)

func TestMobileSyncHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checks := []models.StatusCheck{{ID: "s1"}, {ID: "s2"}}

	tests := []struct {
		name          string
		query         string
		mockSetup     func(m *MockSyncer)
		expectedCode  int
		expectedError string
		expectedCount int
	}{
		{
			name:  "success without cutoff",
			query: "?user_id=user-1",
			mockSetup: func(m *MockSyncer) {
				m.EXPECT().
					Sync(gomock.Any(), "user-1", nil).
					Return(checks, nil)
			},
			expectedCode:  200,
			expectedCount: 2,
		},
		{
			name:  "success with cutoff",
			query: "?user_id=user-1&last_sync=2026-08-01T00:00:00Z",
			mockSetup: func(m *MockSyncer) {
				m.EXPECT().
					Sync(gomock.Any(), "user-1", gomock.Any()).
					Return(checks[:1], nil)
			},
			expectedCode:  200,
			expectedCount: 1,
		},
		{
			name:          "missing user_id",
			query:         "",
			expectedCode:  400,
			expectedError: "user_id is required",
		},
		{
			name:          "invalid last_sync",
			query:         "?user_id=user-1&last_sync=yesterday",
			expectedCode:  400,
			expectedError: "last_sync must be an RFC3339 timestamp",
		},
		{
			name:  "unknown user",
			query: "?user_id=missing",
			mockSetup: func(m *MockSyncer) {
				m.EXPECT().
					Sync(gomock.Any(), "missing", nil).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode:  404,
			expectedError: "User not found",
		},
		{
			name:  "store failure",
			query: "?user_id=user-1",
			mockSetup: func(m *MockSyncer) {
				m.EXPECT().
					Sync(gomock.Any(), "user-1", nil).
					Return(nil, errors.New("find failure"))
			},
			expectedCode:  500,
			expectedError: "Sync failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSyncer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewMobileSyncHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/mobile/sync"+tt.query, nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var resp SyncResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, tt.expectedCount, resp.DataCount)
				assert.Len(t, resp.Data, tt.expectedCount)
				assert.WithinDuration(t, time.Now().UTC(), resp.SyncTime, time.Minute)
			}
		})
	}
}
