package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/felipemarinho/ewallet/internal/logger"
	"github.com/felipemarinho/ewallet/internal/models"
)

// ErrDebtorNotFound is returned when a debtor id resolves to nothing.
var ErrDebtorNotFound = errors.New("Debtor not found")

// DebtorReader defines read-only operations for debtors.
type DebtorReader interface {
	GetByID(ctx context.Context, debtorID uuid.UUID) (*models.DebtorDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.DebtorDB, error)
}

// DebtorWriter defines write operations for debtors.
type DebtorWriter interface {
	Save(ctx context.Context, debtor models.DebtorDB) error
	Update(ctx context.Context, debtorID uuid.UUID, name, color string) error
	Delete(ctx context.Context, debtorID uuid.UUID) error
}

// DebtorService handles a user's tracked debtors.
type DebtorService struct {
	reader DebtorReader
	writer DebtorWriter
}

// NewDebtorService creates a new DebtorService instance.
func NewDebtorService(reader DebtorReader, writer DebtorWriter) *DebtorService {
	return &DebtorService{reader: reader, writer: writer}
}

// List returns every debtor owned by the user.
func (svc *DebtorService) List(ctx context.Context, userID uuid.UUID) ([]models.DebtorDB, error) {
	return svc.reader.ListByUserID(ctx, userID)
}

// Get loads a debtor and checks the caller owns it.
func (svc *DebtorService) Get(ctx context.Context, actorID, debtorID uuid.UUID) (*models.DebtorDB, error) {
	debtor, err := svc.reader.GetByID(ctx, debtorID)
	if err != nil {
		return nil, err
	}
	if debtor == nil {
		return nil, ErrDebtorNotFound
	}
	if err := Authorize(actorID, debtor.UserID, ResourceDebtor); err != nil {
		return nil, err
	}
	return debtor, nil
}

// Create registers a new debtor for the caller.
func (svc *DebtorService) Create(ctx context.Context, userID uuid.UUID, name, color string) (*models.DebtorDB, error) {
	now := time.Now()
	debtor := models.DebtorDB{
		DebtorID:  uuid.New(),
		UserID:    userID,
		Name:      name,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := svc.writer.Save(ctx, debtor); err != nil {
		logger.Log.Errorw("failed to save debtor", "user_id", userID, "err", err)
		return nil, err
	}

	return &debtor, nil
}

// Update merges the provided fields; nil fields keep their current values.
func (svc *DebtorService) Update(ctx context.Context, actorID, debtorID uuid.UUID, name, color *string) (*models.DebtorDB, error) {
	debtor, err := svc.Get(ctx, actorID, debtorID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		debtor.Name = *name
	}
	if color != nil {
		debtor.Color = *color
	}

	if err := svc.writer.Update(ctx, debtorID, debtor.Name, debtor.Color); err != nil {
		logger.Log.Errorw("failed to update debtor", "debtor_id", debtorID, "err", err)
		return nil, err
	}
	debtor.UpdatedAt = time.Now()

	return debtor, nil
}

// Delete removes a debtor after the ownership check passes.
func (svc *DebtorService) Delete(ctx context.Context, actorID, debtorID uuid.UUID) error {
	if _, err := svc.Get(ctx, actorID, debtorID); err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, debtorID); err != nil {
		logger.Log.Errorw("failed to delete debtor", "debtor_id", debtorID, "err", err)
		return err
	}

	return nil
}
