package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/felipemarinho/ewallet/internal/services"
)

func TestResetPasswordHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenID := uuid.New()

	tests := []struct {
		name          string
		body          ResetPasswordRequest
		mockSetup     func(m *MockPasswordResetter)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			body: ResetPasswordRequest{Token: tokenID.String(), Password: "newsecret", PasswordConfirmation: "newsecret"},
			mockSetup: func(m *MockPasswordResetter) {
				m.EXPECT().
					ResetPassword(gomock.Any(), tokenID, "newsecret", "newsecret").
					Return(nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "malformed token",
			body:          ResetPasswordRequest{Token: "not-a-uuid", Password: "newsecret", PasswordConfirmation: "newsecret"},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid reset password token",
		},
		{
			name: "expired token",
			body: ResetPasswordRequest{Token: tokenID.String(), Password: "newsecret", PasswordConfirmation: "newsecret"},
			mockSetup: func(m *MockPasswordResetter) {
				m.EXPECT().
					ResetPassword(gomock.Any(), tokenID, "newsecret", "newsecret").
					Return(services.ErrResetTokenExpired)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Reset password token is expired",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockPasswordResetter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewResetPasswordHandler(mockSvc)

			raw, _ := json.Marshal(tt.body)
			req := httptest.NewRequest(http.MethodPost, "/auth/reset-password", bytes.NewBuffer(raw))
			rec := httptest.NewRecorder()

			handler(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
