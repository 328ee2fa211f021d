package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/felipemarinho/ewallet/internal/logger"
	"github.com/felipemarinho/ewallet/internal/models"
)

type ResetTokenReadRepository struct {
	db *sqlx.DB
}

func NewResetTokenReadRepository(db *sqlx.DB) *ResetTokenReadRepository {
	return &ResetTokenReadRepository{db: db}
}

func (r *ResetTokenReadRepository) GetByID(ctx context.Context, tokenID uuid.UUID) (*models.ResetPasswordTokenDB, error) {
	const query = `
		SELECT token_id, user_id, active, expires_in, created_at
		FROM reset_password_tokens
		WHERE token_id = $1
	`

	var token models.ResetPasswordTokenDB
	err := r.db.GetContext(ctx, &token, query, tokenID)

	logger.Log.Infow("reset token query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{tokenID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &token, nil
}

// GetLatestByUserID returns the most recently created token for the user,
// or nil when the user never requested one.
func (r *ResetTokenReadRepository) GetLatestByUserID(ctx context.Context, userID uuid.UUID) (*models.ResetPasswordTokenDB, error) {
	const query = `
		SELECT token_id, user_id, active, expires_in, created_at
		FROM reset_password_tokens
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var token models.ResetPasswordTokenDB
	err := r.db.GetContext(ctx, &token, query, userID)

	logger.Log.Infow("reset token latest query", "user_id", userID, "error", err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &token, nil
}

type ResetTokenWriteRepository struct {
	db *sqlx.DB
}

func NewResetTokenWriteRepository(db *sqlx.DB) *ResetTokenWriteRepository {
	return &ResetTokenWriteRepository{db: db}
}

func (r *ResetTokenWriteRepository) Save(ctx context.Context, tokenID, userID uuid.UUID, expiresIn time.Time) error {
	const query = `
		INSERT INTO reset_password_tokens (token_id, user_id, active, expires_in, created_at)
		VALUES ($1, $2, TRUE, $3, NOW())
	`

	_, err := r.db.ExecContext(ctx, query, tokenID, userID, expiresIn)

	logger.Log.Infow("reset token insert", "token_id", tokenID, "user_id", userID, "error", err)

	return err
}

func (r *ResetTokenWriteRepository) Deactivate(ctx context.Context, tokenID uuid.UUID) error {
	const query = `
		UPDATE reset_password_tokens
		SET active = FALSE
		WHERE token_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, tokenID)

	logger.Log.Infow("reset token deactivate", "token_id", tokenID, "error", err)

	return err
}
