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

const billColumns = `
	bill_id, credit_card_id, user_id, month, year, date, total_amount,
	installment, total_installment, description, paid, category,
	created_at, updated_at
`

type BillReadRepository struct {
	db *sqlx.DB
}

func NewBillReadRepository(db *sqlx.DB) *BillReadRepository {
	return &BillReadRepository{db: db}
}

func (r *BillReadRepository) GetByID(ctx context.Context, billID uuid.UUID) (*models.BillDB, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE bill_id = $1`

	var bill models.BillDB
	err := r.db.GetContext(ctx, &bill, query, billID)

	logger.Log.Infow("bill query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{billID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &bill, nil
}

// ListByUserID returns the user's bills, optionally filtered by month, year
// and credit card. Nil filters are ignored.
func (r *BillReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID, month, year *int, creditCardID *uuid.UUID) ([]models.BillDB, error) {
	query := `
		SELECT ` + billColumns + `
		FROM bills
		WHERE user_id = $1
		  AND ($2::INT IS NULL OR month = $2)
		  AND ($3::INT IS NULL OR year = $3)
		  AND ($4::UUID IS NULL OR credit_card_id = $4)
		ORDER BY year, month, date
	`

	var bills []models.BillDB
	err := r.db.SelectContext(ctx, &bills, query, userID, month, year, creditCardID)

	logger.Log.Infow("bill list",
		"user_id", userID,
		"month", month,
		"year", year,
		"credit_card_id", creditCardID,
		"count", len(bills),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return bills, nil
}

type BillWriteRepository struct {
	db *sqlx.DB
}

func NewBillWriteRepository(db *sqlx.DB) *BillWriteRepository {
	return &BillWriteRepository{db: db}
}

func (r *BillWriteRepository) Save(ctx context.Context, bill models.BillDB) error {
	const query = `
		INSERT INTO bills (
			bill_id, credit_card_id, user_id, month, year, date, total_amount,
			installment, total_installment, description, paid, category,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`
	args := []any{
		bill.BillID, bill.CreditCardID, bill.UserID, bill.Month, bill.Year,
		bill.Date, bill.TotalAmount, bill.Installment, bill.TotalOfInstallments,
		bill.Description, bill.Paid, bill.Category,
	}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("bill insert", "bill_id", bill.BillID, "error", err)

	return err
}

func (r *BillWriteRepository) Update(ctx context.Context, bill models.BillDB) error {
	const query = `
		UPDATE bills
		SET credit_card_id = $2, month = $3, year = $4, date = $5,
		    total_amount = $6, installment = $7, total_installment = $8,
		    description = $9, paid = $10, category = $11, updated_at = NOW()
		WHERE bill_id = $1
	`
	args := []any{
		bill.BillID, bill.CreditCardID, bill.Month, bill.Year, bill.Date,
		bill.TotalAmount, bill.Installment, bill.TotalOfInstallments,
		bill.Description, bill.Paid, bill.Category,
	}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("bill update", "bill_id", bill.BillID, "error", err)

	return err
}

func (r *BillWriteRepository) UpdatePaid(ctx context.Context, billID uuid.UUID, paid bool) error {
	const query = `
		UPDATE bills
		SET paid = $2, updated_at = NOW()
		WHERE bill_id = $1
	`

	_, err := r.db.ExecContext(ctx, query, billID, paid)

	logger.Log.Infow("bill paid update", "bill_id", billID, "paid", paid, "error", err)

	return err
}

func (r *BillWriteRepository) Delete(ctx context.Context, billID uuid.UUID) error {
	const query = `DELETE FROM bills WHERE bill_id = $1`

	_, err := r.db.ExecContext(ctx, query, billID)

	logger.Log.Infow("bill delete", "bill_id", billID, "error", err)

	return err
}
