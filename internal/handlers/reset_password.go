package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/felipemarinho/ewallet/internal/services"
)

// PasswordResetter defines the interface that the service must implement.
type PasswordResetter interface {
	ResetPassword(ctx context.Context, tokenID uuid.UUID, password, passwordConfirmation string) error
}

// ResetPasswordRequest represents the JSON body for redeeming a reset token
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// Reset token received by email
	// required: true
	Token string `json:"token" validate:"required"`

	// New password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=6"`

	// Password confirmation, must match password
	// required: true
	// default: secret123
	PasswordConfirmation string `json:"passwordConfirmation" validate:"required"`
}

// NewResetPasswordHandler returns an HTTP handler for redeeming a reset token.
// @Summary Reset the password
// @Description Redeems a single-use reset token and stores the new password.
// @Tags auth
// @Accept json
// @Produce json
// @Param resetPasswordRequest body handlers.ResetPasswordRequest true "Password reset request"
// @Success 200 {object} handlers.MessageResponse "Password updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid or expired reset token / confirmation mismatch"
// @Router /auth/reset-password [post]
func NewResetPasswordHandler(svc PasswordResetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ResetPasswordRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		tokenID, err := uuid.Parse(req.Token)
		if err != nil {
			writeError(w, http.StatusBadRequest, services.ErrInvalidResetToken.Error())
			return
		}

		if err := svc.ResetPassword(r.Context(), tokenID, req.Password, req.PasswordConfirmation); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password updated successfully"})
	}
}
