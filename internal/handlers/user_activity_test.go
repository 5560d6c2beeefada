package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/atria-app/web-mobile-connect/internal/services"
)

func TestTouchActivityHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		id            string
		mockSetup     func(m *MockActivityToucher)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			id:   "user-1",
			mockSetup: func(m *MockActivityToucher) {
				m.EXPECT().TouchActivity(gomock.Any(), "user-1").Return(nil)
			},
			expectedCode: 200,
		},
		{
			name: "not found",
			id:   "missing",
			mockSetup: func(m *MockActivityToucher) {
				m.EXPECT().TouchActivity(gomock.Any(), "missing").Return(services.ErrUserNotFound)
			},
			expectedCode:  404,
			expectedError: "User not found",
		},
		{
			name: "internal error",
			id:   "user-1",
			mockSetup: func(m *MockActivityToucher) {
				m.EXPECT().TouchActivity(gomock.Any(), "user-1").Return(errors.New("db failure"))
			},
			expectedCode:  500,
			expectedError: "Failed to update activity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockActivityToucher(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Put("/users/{id}/activity", NewTouchActivityHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPut, "/users/"+tt.id+"/activity", nil)
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			} else {
				var resp ActivityResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.True(t, resp.Success)
				assert.Equal(t, "Activity updated", resp.Message)
			}
		})
	}
}
