package handlers

import (
	"context"
	"net/http"

	"github.com/felipemarinho/ewallet/internal/models"
)

// ForgotPasswordSender defines the interface that the service must implement.
type ForgotPasswordSender interface {
	SendForgotPasswordEmail(ctx context.Context, email string) (*models.ResetPasswordTokenDB, error)
}

// ForgotPasswordRequest represents the JSON body for requesting a reset email
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	// Email of the account to recover
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`
}

// NewForgotPasswordHandler returns an HTTP handler for password recovery requests.
// @Summary Request a password reset email
// @Description Issues a reset token (reusing a still-valid one) and emails a reset link to the account owner.
// @Tags auth
// @Accept json
// @Produce json
// @Param forgotPasswordRequest body handlers.ForgotPasswordRequest true "Password recovery request"
// @Success 200 {object} handlers.MessageResponse "Reset email sent"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /auth/forgot-password [post]
func NewForgotPasswordHandler(svc ForgotPasswordSender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ForgotPasswordRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		if _, err := svc.SendForgotPasswordEmail(r.Context(), req.Email); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Reset password email sent"})
	}
}
