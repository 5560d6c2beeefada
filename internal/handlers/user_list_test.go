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

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := []models.User{{ID: "u1"}, {ID: "u2"}}

	tests := []struct {
		name          string
		query         string
		mockSetup     func(m *MockUserLister)
		expectedCode  int
		expectedError string
	}{
		{
			name:  "defaults to active only",
			query: "",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().
					List(gomock.Any(), nil, true).
					Return(users, nil)
			},
			expectedCode: 200,
		},
		{
			name:  "active_only false",
			query: "?active_only=false",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().
					List(gomock.Any(), nil, false).
					Return(users, nil)
			},
			expectedCode: 200,
		},
		{
			name:  "platform filter",
			query: "?platform=mobile",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().
					List(gomock.Any(), gomock.Any(), true).
					Return(users, nil)
			},
			expectedCode: 200,
		},
		{
			name:          "invalid active_only",
			query:         "?active_only=maybe",
			expectedCode:  400,
			expectedError: "active_only must be a boolean",
		},
		{
			name:  "store failure",
			query: "",
			mockSetup: func(m *MockUserLister) {
				m.EXPECT().
					List(gomock.Any(), nil, true).
					Return(nil, errors.New("find failure"))
			},
			expectedCode:  500,
			expectedError: "Failed to fetch users",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserLister(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewListUsersHandler(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/users"+tt.query, nil)
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
