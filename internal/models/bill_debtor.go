package models

import (
	"github.com/google/uuid"
)

// BillDebtorDB represents one apportioned share of a bill's total.
// UserID always records the bill creator for provenance; DebtorID is set
// when the share belongs to a tracked debtor and nil for a self-share.
type BillDebtorDB struct {
	BillDebtorID uuid.UUID  `json:"id" db:"bill_debtor_id"`       // Primary key
	BillID       uuid.UUID  `json:"billId" db:"bill_id"`          // Parent bill
	UserID       uuid.UUID  `json:"userId" db:"user_id"`          // Creator provenance
	DebtorID     *uuid.UUID `json:"debtorId" db:"debtor_id"`      // Debtor owing this share, optional
	Amount       float64    `json:"amount" db:"amount"`           // Share amount
	Description  string     `json:"description" db:"description"` // Share description
	Paid         bool       `json:"paid" db:"paid"`               // Paid flag
}
