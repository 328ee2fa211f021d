package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipemarinho/ewallet/internal/middlewares"
	"github.com/felipemarinho/ewallet/internal/models"
	"github.com/felipemarinho/ewallet/internal/services"
)

// authedRequest builds a request carrying the given user identity, the way
// the auth middleware would attach it.
func authedRequest(method, target string, body io.Reader, userID uuid.UUID) *http.Request {
	req := httptest.NewRequest(method, target, body)
	return req.WithContext(middlewares.SetUserID(req.Context(), userID))
}

// serveWithParams routes the request through chi so URL params resolve.
func serveWithParams(method, pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Method(method, pattern, h)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestMeHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockSvc := NewMockUserProfiler(ctrl)
	mockSvc.EXPECT().GetByID(gomock.Any(), userID).
		Return(&models.UserDB{UserID: userID, Name: "John", Email: "john@example.com"}, nil)

	rec := httptest.NewRecorder()
	NewMeHandler(mockSvc)(rec, authedRequest(http.MethodGet, "/users/me", nil, userID))

	assert.Equal(t, http.StatusOK, rec.Code)

	var user models.UserDB
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
	assert.Equal(t, userID, user.UserID)
}

func TestMeHandler_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockSvc := NewMockUserProfiler(ctrl)
	mockSvc.EXPECT().GetByID(gomock.Any(), userID).Return(nil, services.ErrUserNotFound)

	rec := httptest.NewRecorder()
	NewMeHandler(mockSvc)(rec, authedRequest(http.MethodGet, "/users/me", nil, userID))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "User not found", resp.Error)
}

func TestUpdateProfileHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	newName := "John Doe"

	mockSvc := NewMockUserProfiler(ctrl)
	mockSvc.EXPECT().Update(gomock.Any(), userID, gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ any, _ uuid.UUID, name, _ *string) (*models.UserDB, error) {
			require.NotNil(t, name)
			assert.Equal(t, newName, *name)
			return &models.UserDB{UserID: userID, Name: *name}, nil
		})

	raw, _ := json.Marshal(UpdateProfileRequest{Name: &newName})
	rec := httptest.NewRecorder()
	NewUpdateProfileHandler(mockSvc)(rec, authedRequest(http.MethodPut, "/users/profile", bytes.NewBuffer(raw), userID))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestChangePasswordHandler_OldMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockSvc := NewMockUserProfiler(ctrl)
	mockSvc.EXPECT().ChangePassword(gomock.Any(), userID, "wrong1", "newsecret", "newsecret").
		Return(services.ErrOldPasswordMismatch)

	raw, _ := json.Marshal(ChangePasswordRequest{OldPassword: "wrong1", Password: "newsecret", PasswordConfirmation: "newsecret"})
	rec := httptest.NewRecorder()
	NewChangePasswordHandler(mockSvc)(rec, authedRequest(http.MethodPatch, "/users/account/password", bytes.NewBuffer(raw), userID))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Old password does not match", resp.Error)
}

func TestUploadPictureHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	pictureURL := "https://bucket.example.com/users-avatars/" + userID.String() + ".png"

	mockSvc := NewMockUserProfiler(ctrl)
	mockSvc.EXPECT().
		UploadPicture(gomock.Any(), userID, gomock.Any(), gomock.Any(), "avatar.png", gomock.Any()).
		Return(&models.UserDB{UserID: userID, Picture: &pictureURL}, nil)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := authedRequest(http.MethodPatch, "/users/profile/picture", &buf, userID)
	req.Header.Set("Content-Type", form.FormDataContentType())

	rec := httptest.NewRecorder()
	NewUploadPictureHandler(mockSvc)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var user models.UserDB
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
	require.NotNil(t, user.Picture)
	assert.Equal(t, pictureURL, *user.Picture)
}

func TestUploadPictureHandler_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockSvc := NewMockUserProfiler(ctrl)

	req := authedRequest(http.MethodPatch, "/users/profile/picture", bytes.NewBufferString(""), userID)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xxx")

	rec := httptest.NewRecorder()
	NewUploadPictureHandler(mockSvc)(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "File is missing", resp.Error)
}

func TestDeleteAccountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockSvc := NewMockUserProfiler(ctrl)
	mockSvc.EXPECT().Delete(gomock.Any(), userID).Return(nil)

	rec := httptest.NewRecorder()
	NewDeleteAccountHandler(mockSvc)(rec, authedRequest(http.MethodDelete, "/users/account", nil, userID))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
