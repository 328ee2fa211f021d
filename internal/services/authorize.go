package services

import (
	"errors"

	"github.com/google/uuid"
)

// Resource kinds scoped to a single owner.
const (
	ResourceBill       = "bill"
	ResourceDebtor     = "debtor"
	ResourceCreditCard = "credit_card"
	ResourceUser       = "user"
)

// Ownership denial errors, one per resource kind.
var (
	ErrBillAccessDenied       = errors.New("You can't access another user's bill")
	ErrDebtorAccessDenied     = errors.New("You can't access another user's debtor")
	ErrCreditCardAccessDenied = errors.New("You can't access another user's credit card")
	ErrNotOwnUser             = errors.New("Only own user can execute this action")
)

// deniedByResource maps a resource kind to its denial error.
var deniedByResource = map[string]error{
	ResourceBill:       ErrBillAccessDenied,
	ResourceDebtor:     ErrDebtorAccessDenied,
	ResourceCreditCard: ErrCreditCardAccessDenied,
	ResourceUser:       ErrNotOwnUser,
}

// Authorize decides whether the actor may touch a resource owned by ownerID.
// Pure and side-effect free. Callers must resolve the resource first: a
// missing resource is a not-found error and is reported before ownership is
// ever evaluated.
func Authorize(actorID, ownerID uuid.UUID, resource string) error {
	if actorID == ownerID {
		return nil
	}
	if err, ok := deniedByResource[resource]; ok {
		return err
	}
	return ErrNotOwnUser
}
