package services_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/felipemarinho/ewallet/internal/models"
	"github.com/felipemarinho/ewallet/internal/providers"
	"github.com/felipemarinho/ewallet/internal/services"
)

type authMocks struct {
	users       *services.MockUserRegistrar
	passwords   *services.MockPasswordWriter
	tokenReader *services.MockResetTokenReader
	tokenWriter *services.MockResetTokenWriter
	jwt         *services.MockJWTGenerator
	mailer      *services.MockMailer
}

func newAuthService(ctrl *gomock.Controller) (*services.AuthService, authMocks) {
	m := authMocks{
		users:       services.NewMockUserRegistrar(ctrl),
		passwords:   services.NewMockPasswordWriter(ctrl),
		tokenReader: services.NewMockResetTokenReader(ctrl),
		tokenWriter: services.NewMockResetTokenWriter(ctrl),
		jwt:         services.NewMockJWTGenerator(ctrl),
		mailer:      services.NewMockMailer(ctrl),
	}
	svc := services.NewAuthService(m.users, m.passwords, m.tokenReader, m.tokenWriter, m.jwt, m.mailer, 30*time.Minute, "https://app.ewallet.com")
	return svc, m
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAuthService(ctrl)

	userID := uuid.New()
	m.users.EXPECT().Create(gomock.Any(), "John", "john@example.com", "secret123", "secret123").
		Return(&models.UserDB{UserID: userID, Name: "John", Email: "john@example.com"}, nil)
	m.jwt.EXPECT().Generate(gomock.Any(), userID).Return("jwt-token", nil)

	user, token, err := svc.Register(context.Background(), "John", "john@example.com", "secret123", "secret123")
	require.NoError(t, err)
	assert.Equal(t, userID, user.UserID)
	assert.Equal(t, "jwt-token", token)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAuthService(ctrl)

	userID := uuid.New()
	hash := hashPassword(t, "secret123")

	m.users.EXPECT().GetByEmail(gomock.Any(), "john@example.com").
		Return(&models.UserDB{UserID: userID, Email: "john@example.com", Password: hash}, nil)
	m.jwt.EXPECT().Generate(gomock.Any(), userID).Return("jwt-token", nil)

	user, token, err := svc.Authenticate(context.Background(), "john@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, userID, user.UserID)
	assert.Equal(t, "jwt-token", token)
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAuthService(ctrl)

	hash := hashPassword(t, "secret123")
	m.users.EXPECT().GetByEmail(gomock.Any(), "john@example.com").
		Return(&models.UserDB{UserID: uuid.New(), Password: hash}, nil)

	_, _, err := svc.Authenticate(context.Background(), "john@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrIncorrectCredentials)
}

func TestAuthService_Authenticate_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAuthService(ctrl)

	m.users.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, services.ErrUserNotFound)

	_, _, err := svc.Authenticate(context.Background(), "ghost@example.com", "whatever")
	assert.ErrorIs(t, err, services.ErrIncorrectCredentials)
}

func TestAuthService_SendForgotPasswordEmail_MintsToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAuthService(ctrl)

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Name: "John", Email: "john@example.com"}

	m.users.EXPECT().GetByEmail(gomock.Any(), "john@example.com").Return(user, nil)
	m.tokenReader.EXPECT().GetLatestByUserID(gomock.Any(), userID).Return(nil, nil)
	m.tokenWriter.EXPECT().Save(gomock.Any(), gomock.Any(), userID, gomock.Any()).Return(nil)

	var sent providers.EmailData
	m.mailer.EXPECT().SendEmail(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, data providers.EmailData) error {
			sent = data
			return nil
		})

	token, err := svc.SendForgotPasswordEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	assert.True(t, token.Active)
	assert.Equal(t, userID, token.UserID)
	assert.Equal(t, "john@example.com", sent.To.Email)
	assert.Contains(t, sent.HTMLContent, "reset-password?token="+token.TokenID.String())
	assert.True(t, strings.HasPrefix(sent.HTMLContent, "<html>") || strings.Contains(sent.HTMLContent, "<a href"))
}

func TestAuthService_SendForgotPasswordEmail_ReusesActiveToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAuthService(ctrl)

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Name: "John", Email: "john@example.com"}
	existing := &models.ResetPasswordTokenDB{
		TokenID:   uuid.New(),
		UserID:    userID,
		Active:    true,
		ExpiresIn: time.Now().Add(10 * time.Minute),
	}

	m.users.EXPECT().GetByEmail(gomock.Any(), "john@example.com").Return(user, nil)
	m.tokenReader.EXPECT().GetLatestByUserID(gomock.Any(), userID).Return(existing, nil)
	// No Save expectation: a still-valid token must be reused, not replaced.
	m.mailer.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(nil)

	token, err := svc.SendForgotPasswordEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	assert.Equal(t, existing.TokenID, token.TokenID)
}

func TestAuthService_SendForgotPasswordEmail_ExpiredTokenReplaced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAuthService(ctrl)

	userID := uuid.New()
	user := &models.UserDB{UserID: userID, Name: "John", Email: "john@example.com"}
	expired := &models.ResetPasswordTokenDB{
		TokenID:   uuid.New(),
		UserID:    userID,
		Active:    true,
		ExpiresIn: time.Now().Add(-time.Minute),
	}

	m.users.EXPECT().GetByEmail(gomock.Any(), "john@example.com").Return(user, nil)
	m.tokenReader.EXPECT().GetLatestByUserID(gomock.Any(), userID).Return(expired, nil)
	m.tokenWriter.EXPECT().Save(gomock.Any(), gomock.Any(), userID, gomock.Any()).Return(nil)
	m.mailer.EXPECT().SendEmail(gomock.Any(), gomock.Any()).Return(nil)

	token, err := svc.SendForgotPasswordEmail(context.Background(), "john@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, expired.TokenID, token.TokenID)
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newAuthService(ctrl)

	userID := uuid.New()
	tokenID := uuid.New()
	token := &models.ResetPasswordTokenDB{
		TokenID:   tokenID,
		UserID:    userID,
		Active:    true,
		ExpiresIn: time.Now().Add(10 * time.Minute),
	}

	m.tokenReader.EXPECT().GetByID(gomock.Any(), tokenID).Return(token, nil)
	m.passwords.EXPECT().UpdatePassword(gomock.Any(), userID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, hash string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("newsecret")))
			return nil
		})
	m.tokenWriter.EXPECT().Deactivate(gomock.Any(), tokenID).Return(nil)

	err := svc.ResetPassword(context.Background(), tokenID, "newsecret", "newsecret")
	assert.NoError(t, err)
}

func TestAuthService_ResetPassword_Failures(t *testing.T) {
	userID := uuid.New()
	tokenID := uuid.New()

	tests := []struct {
		name         string
		password     string
		confirmation string
		token        *models.ResetPasswordTokenDB
		wantErr      error
	}{
		{
			name:         "confirmation mismatch",
			password:     "a",
			confirmation: "b",
			wantErr:      services.ErrPasswordConfirmation,
		},
		{
			name:         "unknown token",
			password:     "newsecret",
			confirmation: "newsecret",
			token:        nil,
			wantErr:      services.ErrInvalidResetToken,
		},
		{
			name:         "expired token",
			password:     "newsecret",
			confirmation: "newsecret",
			token:        &models.ResetPasswordTokenDB{TokenID: tokenID, UserID: userID, Active: true, ExpiresIn: time.Now().Add(-time.Minute)},
			wantErr:      services.ErrResetTokenExpired,
		},
		{
			name:         "already redeemed token",
			password:     "newsecret",
			confirmation: "newsecret",
			token:        &models.ResetPasswordTokenDB{TokenID: tokenID, UserID: userID, Active: false, ExpiresIn: time.Now().Add(10 * time.Minute)},
			wantErr:      services.ErrResetTokenExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newAuthService(ctrl)

			if tt.wantErr != services.ErrPasswordConfirmation {
				m.tokenReader.EXPECT().GetByID(gomock.Any(), tokenID).Return(tt.token, nil)
			}

			err := svc.ResetPassword(context.Background(), tokenID, tt.password, tt.confirmation)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
