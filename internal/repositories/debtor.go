package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/felipemarinho/ewallet/internal/logger"
	"github.com/felipemarinho/ewallet/internal/models"
)

type DebtorReadRepository struct {
	db *sqlx.DB
}

func NewDebtorReadRepository(db *sqlx.DB) *DebtorReadRepository {
	return &DebtorReadRepository{db: db}
}

func (r *DebtorReadRepository) GetByID(ctx context.Context, debtorID uuid.UUID) (*models.DebtorDB, error) {
	const query = `
		SELECT debtor_id, user_id, name, color, created_at, updated_at
		FROM debtors
		WHERE debtor_id = $1
	`

	var debtor models.DebtorDB
	err := r.db.GetContext(ctx, &debtor, query, debtorID)

	logger.Log.Infow("debtor query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{debtorID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &debtor, nil
}

func (r *DebtorReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.DebtorDB, error) {
	const query = `
		SELECT debtor_id, user_id, name, color, created_at, updated_at
		FROM debtors
		WHERE user_id = $1
		ORDER BY created_at
	`

	var debtors []models.DebtorDB
	err := r.db.SelectContext(ctx, &debtors, query, userID)

	logger.Log.Infow("debtor list", "user_id", userID, "count", len(debtors), "error", err)

	if err != nil {
		return nil, err
	}

	return debtors, nil
}

type DebtorWriteRepository struct {
	db *sqlx.DB
}

func NewDebtorWriteRepository(db *sqlx.DB) *DebtorWriteRepository {
	return &DebtorWriteRepository{db: db}
}

func (r *DebtorWriteRepository) Save(ctx context.Context, debtor models.DebtorDB) error {
	const query = `
		INSERT INTO debtors (debtor_id, user_id, name, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
	`

	_, err := r.db.ExecContext(ctx, query, debtor.DebtorID, debtor.UserID, debtor.Name, debtor.Color)

	logger.Log.Infow("debtor insert", "debtor_id", debtor.DebtorID, "error", err)

	return err
}

func (r *DebtorWriteRepository) Update(ctx context.Context, debtorID uuid.UUID, name, color string) error {
	const query = `
		UPDATE debtors
		SET name = $2, color = $3, updated_at = NOW()
		WHERE debtor_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, debtorID, name, color)

	logger.Log.Infow("debtor update", "debtor_id", debtorID, "error", err)

	return err
}

func (r *DebtorWriteRepository) Delete(ctx context.Context, debtorID uuid.UUID) error {
	const query = `DELETE FROM debtors WHERE debtor_id = $1`

	_, err := r.db.ExecContext(ctx, query, debtorID)

	logger.Log.Infow("debtor delete", "debtor_id", debtorID, "error", err)

	return err
}
