package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/felipemarinho/ewallet/internal/logger"
	"github.com/felipemarinho/ewallet/internal/models"
)

// ErrCreditCardNotFound is returned when a credit card id resolves to nothing.
var ErrCreditCardNotFound = errors.New("Credit card not found")

// CreditCardReader defines read-only operations for credit cards.
type CreditCardReader interface {
	GetByID(ctx context.Context, creditCardID uuid.UUID) (*models.CreditCardDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.CreditCardDB, error)
}

// CreditCardWriter defines write operations for credit cards.
type CreditCardWriter interface {
	Save(ctx context.Context, card models.CreditCardDB) error
	Update(ctx context.Context, creditCardID uuid.UUID, name string) error
	Delete(ctx context.Context, creditCardID uuid.UUID) error
}

// CreditCardService handles a user's credit cards.
type CreditCardService struct {
	reader CreditCardReader
	writer CreditCardWriter
}

// NewCreditCardService creates a new CreditCardService instance.
func NewCreditCardService(reader CreditCardReader, writer CreditCardWriter) *CreditCardService {
	return &CreditCardService{reader: reader, writer: writer}
}

// List returns every credit card owned by the user.
func (svc *CreditCardService) List(ctx context.Context, userID uuid.UUID) ([]models.CreditCardDB, error) {
	return svc.reader.ListByUserID(ctx, userID)
}

// Get loads a credit card and checks the caller owns it.
func (svc *CreditCardService) Get(ctx context.Context, actorID, creditCardID uuid.UUID) (*models.CreditCardDB, error) {
	card, err := svc.reader.GetByID(ctx, creditCardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCreditCardNotFound
	}
	if err := Authorize(actorID, card.UserID, ResourceCreditCard); err != nil {
		return nil, err
	}
	return card, nil
}

// Create registers a new credit card for the caller.
func (svc *CreditCardService) Create(ctx context.Context, userID uuid.UUID, name string) (*models.CreditCardDB, error) {
	now := time.Now()
	card := models.CreditCardDB{
		CreditCardID: uuid.New(),
		UserID:       userID,
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := svc.writer.Save(ctx, card); err != nil {
		logger.Log.Errorw("failed to save credit card", "user_id", userID, "err", err)
		return nil, err
	}

	return &card, nil
}

// Update merges the provided name; nil keeps the current value.
func (svc *CreditCardService) Update(ctx context.Context, actorID, creditCardID uuid.UUID, name *string) (*models.CreditCardDB, error) {
	card, err := svc.Get(ctx, actorID, creditCardID)
	if err != nil {
		return nil, err
	}

	if name != nil {
		card.Name = *name
	}

	if err := svc.writer.Update(ctx, creditCardID, card.Name); err != nil {
		logger.Log.Errorw("failed to update credit card", "credit_card_id", creditCardID, "err", err)
		return nil, err
	}
	card.UpdatedAt = time.Now()

	return card, nil
}

// Delete removes a credit card after the ownership check passes.
func (svc *CreditCardService) Delete(ctx context.Context, actorID, creditCardID uuid.UUID) error {
	if _, err := svc.Get(ctx, actorID, creditCardID); err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, creditCardID); err != nil {
		logger.Log.Errorw("failed to delete credit card", "credit_card_id", creditCardID, "err", err)
		return err
	}

	return nil
}
