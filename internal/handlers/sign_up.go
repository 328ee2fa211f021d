package handlers

import (
	"context"
	"net/http"

	"github.com/felipemarinho/ewallet/internal/models"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, name, email, password, passwordConfirmation string) (*models.UserDB, string, error)
}

// SignUpRequest represents the JSON body for account registration
// swagger:model SignUpRequest
type SignUpRequest struct {
	// Display name
	// required: true
	// default: John Doe
	Name string `json:"name" validate:"required"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=6"`

	// Password confirmation, must match password
	// required: true
	// default: secret123
	PasswordConfirmation string `json:"passwordConfirmation" validate:"required"`
}

// AuthResponse represents a successful sign-up or sign-in response
// swagger:model AuthResponse
type AuthResponse struct {
	// The authenticated user, password excluded
	User *models.UserDB `json:"user"`

	// Bearer token for subsequent requests
	Token string `json:"token"`
}

// NewSignUpHandler returns an HTTP handler for account registration.
// @Summary Register a new account
// @Description Creates a user account with a unique email and a hashed password, and returns the user with a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param signUpRequest body handlers.SignUpRequest true "Account registration request"
// @Success 201 {object} handlers.AuthResponse "Account created"
// @Failure 400 {object} handlers.ErrorResponse "Email already in use / password confirmation mismatch / invalid request"
// @Router /auth/sign-up [post]
func NewSignUpHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SignUpRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		user, token, err := svc.Register(r.Context(), req.Name, req.Email, req.Password, req.PasswordConfirmation)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, AuthResponse{User: user, Token: token})
	}
}
