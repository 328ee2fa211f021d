package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/felipemarinho/ewallet/internal/logger"
	"github.com/felipemarinho/ewallet/internal/models"
	"github.com/felipemarinho/ewallet/internal/providers"
)

// Error variables
var (
	ErrIncorrectCredentials = errors.New("Incorrect email/password combination")
	ErrInvalidResetToken    = errors.New("Invalid reset password token")
	ErrResetTokenExpired    = errors.New("Reset password token is expired")
)

// UserRegistrar defines the user operations the auth flow needs.
type UserRegistrar interface {
	Create(ctx context.Context, name, email, password, passwordConfirmation string) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// PasswordWriter updates a user's stored password hash.
type PasswordWriter interface {
	UpdatePassword(ctx context.Context, userID uuid.UUID, password string) error
}

// ResetTokenReader defines read-only operations for reset tokens.
type ResetTokenReader interface {
	GetByID(ctx context.Context, tokenID uuid.UUID) (*models.ResetPasswordTokenDB, error)
	GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*models.ResetPasswordTokenDB, error)
}

// ResetTokenWriter defines write operations for reset tokens.
type ResetTokenWriter interface {
	Save(ctx context.Context, tokenID, userID uuid.UUID, expiresIn time.Time) error
	Deactivate(ctx context.Context, tokenID uuid.UUID) error
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID) (string, error)
}

// Mailer delivers outbound email.
type Mailer interface {
	SendEmail(ctx context.Context, data providers.EmailData) error
}

// AuthService handles registration, sign-in and password recovery.
type AuthService struct {
	users         UserRegistrar
	passwords     PasswordWriter
	tokenReader   ResetTokenReader
	tokenWriter   ResetTokenWriter
	jwt           JWTGenerator
	mailer        Mailer
	resetTokenExp time.Duration
	appURL        string
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	users UserRegistrar,
	passwords PasswordWriter,
	tokenReader ResetTokenReader,
	tokenWriter ResetTokenWriter,
	jwt JWTGenerator,
	mailer Mailer,
	resetTokenExp time.Duration,
	appURL string,
) *AuthService {
	return &AuthService{
		users:         users,
		passwords:     passwords,
		tokenReader:   tokenReader,
		tokenWriter:   tokenWriter,
		jwt:           jwt,
		mailer:        mailer,
		resetTokenExp: resetTokenExp,
		appURL:        appURL,
	}
}

// Register creates a new account and returns it with a session token.
func (svc *AuthService) Register(ctx context.Context, name, email, password, passwordConfirmation string) (*models.UserDB, string, error) {
	user, err := svc.users.Create(ctx, name, email, password, passwordConfirmation)
	if err != nil {
		return nil, "", err
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// Authenticate verifies the credentials and returns the user with a session token.
func (svc *AuthService) Authenticate(ctx context.Context, email, password string) (*models.UserDB, string, error) {
	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", ErrIncorrectCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "email", email)
		return nil, "", ErrIncorrectCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return nil, "", err
	}

	return user, token, nil
}

// SendForgotPasswordEmail issues a reset token and mails it to the user.
// A still-valid active token is reused, so repeated requests inside the
// validity window cannot flood the user with tokens.
func (svc *AuthService) SendForgotPasswordEmail(ctx context.Context, email string) (*models.ResetPasswordTokenDB, error) {
	user, err := svc.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	token, err := svc.tokenReader.GetLatestByUserID(ctx, user.UserID)
	if err != nil {
		logger.Log.Errorw("failed to load latest reset token", "user_id", user.UserID, "err", err)
		return nil, err
	}

	now := time.Now()
	if token == nil || !token.Active || token.ExpiresIn.Before(now) {
		token = &models.ResetPasswordTokenDB{
			TokenID:   uuid.New(),
			UserID:    user.UserID,
			Active:    true,
			ExpiresIn: now.Add(svc.resetTokenExp),
			CreatedAt: now,
		}
		if err := svc.tokenWriter.Save(ctx, token.TokenID, token.UserID, token.ExpiresIn); err != nil {
			logger.Log.Errorw("failed to save reset token", "user_id", user.UserID, "err", err)
			return nil, err
		}
	}

	emailData := providers.EmailData{
		Subject:     "eWallet: password recovery",
		From:        providers.EmailAddress{Name: "eWallet", Email: "recover@ewallet.com"},
		To:          providers.EmailAddress{Name: user.Name, Email: user.Email},
		HTMLContent: svc.forgotPasswordEmailBody(user, token),
	}

	if err := svc.mailer.SendEmail(ctx, emailData); err != nil {
		logger.Log.Errorw("failed to send reset email", "user_id", user.UserID, "err", err)
		return nil, err
	}

	return token, nil
}

// ResetPassword redeems a reset token and stores the new password hash.
// The token is deactivated afterwards; redemption is single-use.
func (svc *AuthService) ResetPassword(ctx context.Context, tokenID uuid.UUID, password, passwordConfirmation string) error {
	if password != passwordConfirmation {
		return ErrPasswordConfirmation
	}

	token, err := svc.tokenReader.GetByID(ctx, tokenID)
	if err != nil {
		logger.Log.Errorw("failed to load reset token", "token_id", tokenID, "err", err)
		return err
	}
	if token == nil {
		return ErrInvalidResetToken
	}

	if !token.Active || token.ExpiresIn.Before(time.Now()) {
		return ErrResetTokenExpired
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.passwords.UpdatePassword(ctx, token.UserID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to update password", "user_id", token.UserID, "err", err)
		return err
	}

	if err := svc.tokenWriter.Deactivate(ctx, token.TokenID); err != nil {
		logger.Log.Errorw("failed to deactivate reset token", "token_id", token.TokenID, "err", err)
		return err
	}

	return nil
}

func (svc *AuthService) forgotPasswordEmailBody(user *models.UserDB, token *models.ResetPasswordTokenDB) string {
	link := fmt.Sprintf("%s/reset-password?token=%s", svc.appURL, token.TokenID)
	return fmt.Sprintf(
		`<html><body>
		<p>Hello %s,</p>
		<p>We received a request to reset your eWallet password.</p>
		<p><a href="%s">Click here to choose a new password.</a></p>
		<p>This link expires at %s. If you didn't request it, ignore this email.</p>
		</body></html>`,
		user.Name, link, token.ExpiresIn.Format(time.RFC1123),
	)
}
