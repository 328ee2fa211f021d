package services

import (
	"context"
	"errors"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/felipemarinho/ewallet/internal/logger"
	"github.com/felipemarinho/ewallet/internal/models"
	"github.com/felipemarinho/ewallet/internal/providers"
)

// Error variables
var (
	ErrUserNotFound         = errors.New("User not found")
	ErrEmailInUse           = errors.New("The provided email is already in use")
	ErrPasswordConfirmation = errors.New("Password and password confirmation do not match")
	ErrOldPasswordMismatch  = errors.New("Old password does not match")
	ErrFileMissing          = errors.New("File is missing")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	GetByEmail(ctx context.Context, email string) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.UserDB) error
	Update(ctx context.Context, userID uuid.UUID, name, email string) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, password string) error
	UpdatePicture(ctx context.Context, userID uuid.UUID, picture string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

// UserCache caches user profiles.
type UserCache interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
	Set(ctx context.Context, user models.UserDB) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
}

// FileStorage stores and removes avatar files.
type FileStorage interface {
	UploadFile(ctx context.Context, reader io.Reader, size int64, folder, fileName, contentType string) (providers.UploadResult, error)
	DeleteFile(ctx context.Context, fileURL string) error
}

// UserService handles user profiles, credentials and avatars.
type UserService struct {
	reader       UserReader
	writer       UserWriter
	cache        UserCache
	storage      FileStorage
	avatarFolder string
}

// NewUserService creates a new UserService instance. cache may be nil when
// Redis is not configured.
func NewUserService(reader UserReader, writer UserWriter, cache UserCache, storage FileStorage, avatarFolder string) *UserService {
	return &UserService{
		reader:       reader,
		writer:       writer,
		cache:        cache,
		storage:      storage,
		avatarFolder: avatarFolder,
	}
}

// GetByID returns the user profile, served from cache when possible.
func (svc *UserService) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	if svc.cache != nil {
		if user, err := svc.cache.Get(ctx, userID); err == nil && user != nil {
			return user, nil
		}
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.Set(ctx, *user); err != nil {
			logger.Log.Warnw("failed to cache user", "user_id", userID, "err", err)
		}
	}

	return user, nil
}

// GetByEmail returns the user with the given email, password hash included.
func (svc *UserService) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user by email", "email", email, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Create registers a new user with a hashed password.
func (svc *UserService) Create(ctx context.Context, name, email, password, passwordConfirmation string) (*models.UserDB, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email exists", "email", email, "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailInUse
	}

	if password != passwordConfirmation {
		return nil, ErrPasswordConfirmation
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	now := time.Now()
	user := models.UserDB{
		UserID:    uuid.New(),
		Name:      name,
		Email:     email,
		Password:  string(hashedPassword),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return &user, nil
}

// Update merges the provided fields into the profile; nil fields keep their
// current values.
func (svc *UserService) Update(ctx context.Context, userID uuid.UUID, name, email *string) (*models.UserDB, error) {
	user, err := svc.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if email != nil && *email != user.Email {
		existing, err := svc.reader.GetByEmail(ctx, *email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, ErrEmailInUse
		}
	}

	if name != nil {
		user.Name = *name
	}
	if email != nil {
		user.Email = *email
	}

	if err := svc.writer.Update(ctx, userID, user.Name, user.Email); err != nil {
		logger.Log.Errorw("failed to update user", "user_id", userID, "err", err)
		return nil, err
	}
	user.UpdatedAt = time.Now()

	svc.invalidate(ctx, userID)

	return user, nil
}

// ChangePassword verifies the old password and stores a new hash.
func (svc *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, password, passwordConfirmation string) error {
	// Bypass the cache: the stored hash is needed for comparison.
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return ErrOldPasswordMismatch
	}

	if password != passwordConfirmation {
		return ErrPasswordConfirmation
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if err := svc.writer.UpdatePassword(ctx, userID, string(hashedPassword)); err != nil {
		logger.Log.Errorw("failed to update password", "user_id", userID, "err", err)
		return err
	}

	svc.invalidate(ctx, userID)

	return nil
}

// UploadPicture stores a new avatar, replacing the previous one if present.
func (svc *UserService) UploadPicture(ctx context.Context, userID uuid.UUID, file io.Reader, size int64, originalName, contentType string) (*models.UserDB, error) {
	if file == nil {
		return nil, ErrFileMissing
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if user.Picture != nil && *user.Picture != "" {
		if err := svc.storage.DeleteFile(ctx, *user.Picture); err != nil {
			// The previous object may already be gone; the upload proceeds.
			logger.Log.Warnw("failed to delete previous avatar", "user_id", userID, "err", err)
		}
	}

	fileName := userID.String() + path.Ext(originalName)

	result, err := svc.storage.UploadFile(ctx, file, size, svc.avatarFolder, fileName, contentType)
	if err != nil {
		logger.Log.Errorw("failed to upload avatar", "user_id", userID, "err", err)
		return nil, err
	}

	if err := svc.writer.UpdatePicture(ctx, userID, result.FileURL); err != nil {
		logger.Log.Errorw("failed to persist avatar URL", "user_id", userID, "err", err)
		return nil, err
	}

	user.Picture = &result.FileURL
	user.UpdatedAt = time.Now()

	svc.invalidate(ctx, userID)

	return user, nil
}

// Delete removes the account. Related rows are the database's concern.
func (svc *UserService) Delete(ctx context.Context, userID uuid.UUID) error {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := svc.writer.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", userID, "err", err)
		return err
	}

	svc.invalidate(ctx, userID)

	return nil
}

func (svc *UserService) invalidate(ctx context.Context, userID uuid.UUID) {
	if svc.cache == nil {
		return
	}
	if err := svc.cache.Invalidate(ctx, userID); err != nil {
		logger.Log.Warnw("failed to invalidate user cache", "user_id", userID, "err", err)
	}
}
