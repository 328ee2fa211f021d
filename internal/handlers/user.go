package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/felipemarinho/ewallet/internal/middlewares"
	"github.com/felipemarinho/ewallet/internal/models"
	"github.com/felipemarinho/ewallet/internal/services"
)

// UserProfiler defines the interface that the service must implement.
type UserProfiler interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	Update(ctx context.Context, userID uuid.UUID, name, email *string) (*models.UserDB, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, password, passwordConfirmation string) error
	UploadPicture(ctx context.Context, userID uuid.UUID, file io.Reader, size int64, originalName, contentType string) (*models.UserDB, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// UpdateProfileRequest represents the JSON body for profile updates
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	// Display name, omit to keep the current one
	Name *string `json:"name"`

	// Email, omit to keep the current one
	Email *string `json:"email" validate:"omitempty,email"`
}

// ChangePasswordRequest represents the JSON body for password changes
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	// Current password
	// required: true
	OldPassword string `json:"oldPassword" validate:"required"`

	// New password
	// required: true
	Password string `json:"password" validate:"required,min=6"`

	// Password confirmation, must match password
	// required: true
	PasswordConfirmation string `json:"passwordConfirmation" validate:"required"`
}

// NewMeHandler returns an HTTP handler for reading the caller's profile.
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserDB "Profile"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/me [get]
func NewMeHandler(svc UserProfiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())

		user, err := svc.GetByID(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewUpdateProfileHandler returns an HTTP handler for profile updates.
// @Summary Update own profile
// @Description Merges the provided name and email into the caller's profile. Omitted fields keep their current values.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param updateProfileRequest body handlers.UpdateProfileRequest true "Profile update request"
// @Success 200 {object} models.UserDB "Updated profile"
// @Failure 400 {object} handlers.ErrorResponse "Email already in use / invalid request"
// @Router /users/profile [put]
func NewUpdateProfileHandler(svc UserProfiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())

		var req UpdateProfileRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		user, err := svc.Update(r.Context(), userID, req.Name, req.Email)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewChangePasswordHandler returns an HTTP handler for password changes.
// @Summary Change own password
// @Description Verifies the old password and stores a hash of the new one.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param changePasswordRequest body handlers.ChangePasswordRequest true "Password change request"
// @Success 200 {object} handlers.MessageResponse "Password updated"
// @Failure 400 {object} handlers.ErrorResponse "Old password mismatch / confirmation mismatch"
// @Router /users/account/password [patch]
func NewChangePasswordHandler(svc UserProfiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())

		var req ChangePasswordRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		if err := svc.ChangePassword(r.Context(), userID, req.OldPassword, req.Password, req.PasswordConfirmation); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Password updated successfully"})
	}
}

// maxAvatarSize caps the parsed multipart form at 8 MiB.
const maxAvatarSize = 8 << 20

// NewUploadPictureHandler returns an HTTP handler for avatar uploads.
// @Summary Upload a profile picture
// @Description Stores the uploaded file in object storage, replacing any previous avatar, and persists its URL.
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Avatar image"
// @Success 200 {object} models.UserDB "Updated profile"
// @Failure 400 {object} handlers.ErrorResponse "File is missing"
// @Router /users/profile/picture [patch]
func NewUploadPictureHandler(svc UserProfiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())

		if err := r.ParseMultipartForm(maxAvatarSize); err != nil {
			writeError(w, http.StatusBadRequest, services.ErrFileMissing.Error())
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, services.ErrFileMissing.Error())
			return
		}
		defer file.Close()

		user, err := svc.UploadPicture(r.Context(), userID, file, header.Size, header.Filename, header.Header.Get("Content-Type"))
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}

// NewDeleteAccountHandler returns an HTTP handler for account deletion.
// @Summary Delete own account
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 204 "Account deleted"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/account [delete]
func NewDeleteAccountHandler(svc UserProfiler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())

		if err := svc.Delete(r.Context(), userID); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
