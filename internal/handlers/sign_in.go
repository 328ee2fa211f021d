package handlers

import (
	"context"
	"net/http"

	"github.com/felipemarinho/ewallet/internal/models"
)

// Authenticator defines the interface that the service must implement.
type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*models.UserDB, string, error)
}

// SignInRequest represents the JSON body for signing in
// swagger:model SignInRequest
type SignInRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required"`
}

// NewSignInHandler returns an HTTP handler for signing in.
// @Summary Sign in
// @Description Verifies the email/password pair and returns the user with a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param signInRequest body handlers.SignInRequest true "Sign-in request"
// @Success 200 {object} handlers.AuthResponse "Authenticated"
// @Failure 400 {object} handlers.ErrorResponse "Incorrect email/password combination"
// @Router /auth/sign-in [post]
func NewSignInHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignInRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		user, token, err := svc.Authenticate(r.Context(), req.Email, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, AuthResponse{User: user, Token: token})
	}
}
