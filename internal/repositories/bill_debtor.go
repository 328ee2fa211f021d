package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/felipemarinho/ewallet/internal/logger"
	"github.com/felipemarinho/ewallet/internal/models"
)

type BillDebtorReadRepository struct {
	db *sqlx.DB
}

func NewBillDebtorReadRepository(db *sqlx.DB) *BillDebtorReadRepository {
	return &BillDebtorReadRepository{db: db}
}

func (r *BillDebtorReadRepository) ListByBillID(ctx context.Context, billID uuid.UUID) ([]models.BillDebtorDB, error) {
	const query = `
		SELECT bill_debtor_id, bill_id, user_id, debtor_id, amount, description, paid
		FROM bill_debtors
		WHERE bill_id = $1
		ORDER BY bill_debtor_id
	`

	var shares []models.BillDebtorDB
	err := r.db.SelectContext(ctx, &shares, query, billID)

	logger.Log.Infow("bill debtor list", "bill_id", billID, "count", len(shares), "error", err)

	if err != nil {
		return nil, err
	}

	return shares, nil
}

type BillDebtorWriteRepository struct {
	db *sqlx.DB
}

func NewBillDebtorWriteRepository(db *sqlx.DB) *BillDebtorWriteRepository {
	return &BillDebtorWriteRepository{db: db}
}

func (r *BillDebtorWriteRepository) Save(ctx context.Context, share models.BillDebtorDB) error {
	const query = `
		INSERT INTO bill_debtors (bill_debtor_id, bill_id, user_id, debtor_id, amount, description, paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	args := []any{
		share.BillDebtorID, share.BillID, share.UserID, share.DebtorID,
		share.Amount, share.Description, share.Paid,
	}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("bill debtor insert", "bill_debtor_id", share.BillDebtorID, "bill_id", share.BillID, "error", err)

	return err
}

func (r *BillDebtorWriteRepository) DeleteByBillID(ctx context.Context, billID uuid.UUID) error {
	const query = `DELETE FROM bill_debtors WHERE bill_id = $1`

	res, err := r.db.ExecContext(ctx, query, billID)

	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("bill debtor delete", "bill_id", billID, "rows", rowsAffected, "error", err)

	return err
}
