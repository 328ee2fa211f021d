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

type CreditCardReadRepository struct {
	db *sqlx.DB
}

func NewCreditCardReadRepository(db *sqlx.DB) *CreditCardReadRepository {
	return &CreditCardReadRepository{db: db}
}

func (r *CreditCardReadRepository) GetByID(ctx context.Context, creditCardID uuid.UUID) (*models.CreditCardDB, error) {
	const query = `
		SELECT credit_card_id, user_id, name, created_at, updated_at
		FROM credit_cards
		WHERE credit_card_id = $1
	`

	var card models.CreditCardDB
	err := r.db.GetContext(ctx, &card, query, creditCardID)

	logger.Log.Infow("credit card query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{creditCardID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &card, nil
}

func (r *CreditCardReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.CreditCardDB, error) {
	const query = `
		SELECT credit_card_id, user_id, name, created_at, updated_at
		FROM credit_cards
		WHERE user_id = $1
		ORDER BY created_at
	`

	var cards []models.CreditCardDB
	err := r.db.SelectContext(ctx, &cards, query, userID)

	logger.Log.Infow("credit card list", "user_id", userID, "count", len(cards), "error", err)

	if err != nil {
		return nil, err
	}

	return cards, nil
}

type CreditCardWriteRepository struct {
	db *sqlx.DB
}

func NewCreditCardWriteRepository(db *sqlx.DB) *CreditCardWriteRepository {
	return &CreditCardWriteRepository{db: db}
}

func (r *CreditCardWriteRepository) Save(ctx context.Context, card models.CreditCardDB) error {
	const query = `
		INSERT INTO credit_cards (credit_card_id, user_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`

	_, err := r.db.ExecContext(ctx, query, card.CreditCardID, card.UserID, card.Name)

	logger.Log.Infow("credit card insert", "credit_card_id", card.CreditCardID, "error", err)

	return err
}

func (r *CreditCardWriteRepository) Update(ctx context.Context, creditCardID uuid.UUID, name string) error {
	const query = `
		UPDATE credit_cards
		SET name = $2, updated_at = NOW()
		WHERE credit_card_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, creditCardID, name)

	logger.Log.Infow("credit card update", "credit_card_id", creditCardID, "error", err)

	return err
}

func (r *CreditCardWriteRepository) Delete(ctx context.Context, creditCardID uuid.UUID) error {
	const query = `DELETE FROM credit_cards WHERE credit_card_id = $1`

	_, err := r.db.ExecContext(ctx, query, creditCardID)

	logger.Log.Infow("credit card delete", "credit_card_id", creditCardID, "error", err)

	return err
}
