package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/felipemarinho/ewallet/internal/logger"
	"github.com/felipemarinho/ewallet/internal/models"
)

// Error variables
var (
	ErrBillNotFound       = errors.New("Bill not found")
	ErrBillPayload        = errors.New("You need to send a bill object or a bills array")
	ErrBillForAnotherUser = errors.New("You can't register a bill for another user")
)

// BillReader defines read-only operations for bills.
type BillReader interface {
	GetByID(ctx context.Context, billID uuid.UUID) (*models.BillDB, error)
	ListByUserID(ctx context.Context, userID uuid.UUID, month, year *int, creditCardID *uuid.UUID) ([]models.BillDB, error)
}

// BillWriter defines write operations for bills.
type BillWriter interface {
	Save(ctx context.Context, bill models.BillDB) error
	Update(ctx context.Context, bill models.BillDB) error
	UpdatePaid(ctx context.Context, billID uuid.UUID, paid bool) error
	Delete(ctx context.Context, billID uuid.UUID) error
}

// BillDebtorReader defines read-only operations for bill shares.
type BillDebtorReader interface {
	ListByBillID(ctx context.Context, billID uuid.UUID) ([]models.BillDebtorDB, error)
}

// BillDebtorWriter defines write operations for bill shares.
type BillDebtorWriter interface {
	Save(ctx context.Context, share models.BillDebtorDB) error
	DeleteByBillID(ctx context.Context, billID uuid.UUID) error
}

// CreditCardGetter resolves a credit card by id.
type CreditCardGetter interface {
	GetByID(ctx context.Context, creditCardID uuid.UUID) (*models.CreditCardDB, error)
}

// DebtorGetter resolves a debtor by id.
type DebtorGetter interface {
	GetByID(ctx context.Context, debtorID uuid.UUID) (*models.DebtorDB, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// BillDebtorInput is one requested share of a bill's total. Exactly one of
// DebtorID or UserID identifies who owes it; a UserID must be the caller's.
type BillDebtorInput struct {
	DebtorID    *uuid.UUID
	UserID      *uuid.UUID
	Amount      float64
	Description string
	Paid        bool
}

// BillInput is one requested bill with its split shares.
type BillInput struct {
	CreditCardID        uuid.UUID
	Month               int
	Year                int
	Date                time.Time
	TotalAmount         float64
	Installment         int
	TotalOfInstallments int
	Description         string
	Paid                bool
	Category            string
	BillDebtors         []BillDebtorInput
}

// BillUpdateInput is a partial bill update; nil fields keep their current
// values. A non-empty BillDebtors set replaces every existing share.
type BillUpdateInput struct {
	CreditCardID        *uuid.UUID
	Month               *int
	Year                *int
	Date                *time.Time
	TotalAmount         *float64
	Installment         *int
	TotalOfInstallments *int
	Description         *string
	Paid                *bool
	Category            *string
	BillDebtors         []BillDebtorInput
}

// BillService composes bills and their split shares.
type BillService struct {
	reader      BillReader
	writer      BillWriter
	shareReader BillDebtorReader
	shareWriter BillDebtorWriter
	creditCards CreditCardGetter
	debtors     DebtorGetter
	kafkaWriter KafkaWriter
}

// NewBillService creates a new BillService. kafkaWriter may be nil when
// event publishing is not configured.
func NewBillService(
	reader BillReader,
	writer BillWriter,
	shareReader BillDebtorReader,
	shareWriter BillDebtorWriter,
	creditCards CreditCardGetter,
	debtors DebtorGetter,
	kafkaWriter KafkaWriter,
) *BillService {
	return &BillService{
		reader:      reader,
		writer:      writer,
		shareReader: shareReader,
		shareWriter: shareWriter,
		creditCards: creditCards,
		debtors:     debtors,
		kafkaWriter: kafkaWriter,
	}
}

// List returns the user's bills with their shares attached, optionally
// filtered by month, year and credit card.
func (svc *BillService) List(ctx context.Context, userID uuid.UUID, month, year *int, creditCardID *uuid.UUID) ([]models.BillDB, error) {
	bills, err := svc.reader.ListByUserID(ctx, userID, month, year, creditCardID)
	if err != nil {
		logger.Log.Errorw("failed to list bills", "user_id", userID, "err", err)
		return nil, err
	}

	for i := range bills {
		shares, err := svc.shareReader.ListByBillID(ctx, bills[i].BillID)
		if err != nil {
			return nil, err
		}
		bills[i].BillDebtors = shares
	}

	return bills, nil
}

// Create registers a single bill or a batch. Batch entries are created
// independently and concurrently; an entry that fails does not roll back
// entries that already committed.
func (svc *BillService) Create(ctx context.Context, userID uuid.UUID, bill *BillInput, bills []BillInput) ([]models.BillDB, error) {
	if bill == nil && len(bills) == 0 {
		return nil, ErrBillPayload
	}

	if bill != nil {
		created, err := svc.createBill(ctx, userID, *bill)
		if err != nil {
			return nil, err
		}
		return []models.BillDB{*created}, nil
	}

	results := make([]*models.BillDB, len(bills))
	errs := make([]error, len(bills))

	var wg sync.WaitGroup
	for i := range bills {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = svc.createBill(ctx, userID, bills[i])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	created := make([]models.BillDB, len(results))
	for i, b := range results {
		created[i] = *b
	}

	return created, nil
}

// createBill validates one bill request and persists the bill row followed
// by one share row per entry. The two steps are not atomic.
func (svc *BillService) createBill(ctx context.Context, userID uuid.UUID, in BillInput) (*models.BillDB, error) {
	card, err := svc.creditCards.GetByID(ctx, in.CreditCardID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrCreditCardNotFound
	}

	if err := svc.validateShares(ctx, userID, in.BillDebtors); err != nil {
		return nil, err
	}

	now := time.Now()
	bill := models.BillDB{
		BillID:              uuid.New(),
		CreditCardID:        in.CreditCardID,
		UserID:              userID,
		Month:               in.Month,
		Year:                in.Year,
		Date:                in.Date,
		TotalAmount:         in.TotalAmount,
		Installment:         in.Installment,
		TotalOfInstallments: in.TotalOfInstallments,
		Description:         in.Description,
		Paid:                in.Paid,
		Category:            in.Category,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := svc.writer.Save(ctx, bill); err != nil {
		logger.Log.Errorw("failed to save bill", "user_id", userID, "err", err)
		return nil, err
	}

	shares, err := svc.createShares(ctx, userID, bill.BillID, in.BillDebtors)
	if err != nil {
		return nil, err
	}
	bill.BillDebtors = shares

	svc.publishEvent(ctx, bill, "created")

	return &bill, nil
}

// validateShares fails fast: every referenced debtor must exist and every
// user share must belong to the caller before anything is written.
func (svc *BillService) validateShares(ctx context.Context, userID uuid.UUID, shares []BillDebtorInput) error {
	for _, share := range shares {
		if share.UserID != nil && *share.UserID != userID {
			return ErrBillForAnotherUser
		}
	}

	for _, share := range shares {
		if share.DebtorID == nil {
			continue
		}
		debtor, err := svc.debtors.GetByID(ctx, *share.DebtorID)
		if err != nil {
			return err
		}
		if debtor == nil {
			return ErrDebtorNotFound
		}
	}

	return nil
}

// createShares persists one row per share, always attributing the caller's
// id for provenance.
func (svc *BillService) createShares(ctx context.Context, userID, billID uuid.UUID, in []BillDebtorInput) ([]models.BillDebtorDB, error) {
	shares := make([]models.BillDebtorDB, 0, len(in))
	for _, s := range in {
		share := models.BillDebtorDB{
			BillDebtorID: uuid.New(),
			BillID:       billID,
			UserID:       userID,
			DebtorID:     s.DebtorID,
			Amount:       s.Amount,
			Description:  s.Description,
			Paid:         s.Paid,
		}
		if err := svc.shareWriter.Save(ctx, share); err != nil {
			logger.Log.Errorw("failed to save bill share", "bill_id", billID, "err", err)
			return nil, err
		}
		shares = append(shares, share)
	}
	return shares, nil
}

// Get loads a bill with its shares and checks the caller owns it.
func (svc *BillService) Get(ctx context.Context, actorID, billID uuid.UUID) (*models.BillDB, error) {
	bill, err := svc.reader.GetByID(ctx, billID)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, ErrBillNotFound
	}
	if err := Authorize(actorID, bill.UserID, ResourceBill); err != nil {
		return nil, err
	}

	shares, err := svc.shareReader.ListByBillID(ctx, billID)
	if err != nil {
		return nil, err
	}
	bill.BillDebtors = shares

	return bill, nil
}

// Update merges the provided fields into the bill. A non-empty share set
// replaces every existing share row and regenerates their ids; an empty or
// absent set leaves the existing shares untouched.
func (svc *BillService) Update(ctx context.Context, actorID, billID uuid.UUID, in BillUpdateInput) (*models.BillDB, error) {
	bill, err := svc.Get(ctx, actorID, billID)
	if err != nil {
		return nil, err
	}

	if in.CreditCardID != nil {
		card, err := svc.creditCards.GetByID(ctx, *in.CreditCardID)
		if err != nil {
			return nil, err
		}
		if card == nil {
			return nil, ErrCreditCardNotFound
		}
		bill.CreditCardID = *in.CreditCardID
	}
	if in.Month != nil {
		bill.Month = *in.Month
	}
	if in.Year != nil {
		bill.Year = *in.Year
	}
	if in.Date != nil {
		bill.Date = *in.Date
	}
	if in.TotalAmount != nil {
		bill.TotalAmount = *in.TotalAmount
	}
	if in.Installment != nil {
		bill.Installment = *in.Installment
	}
	if in.TotalOfInstallments != nil {
		bill.TotalOfInstallments = *in.TotalOfInstallments
	}
	if in.Description != nil {
		bill.Description = *in.Description
	}
	if in.Paid != nil {
		bill.Paid = *in.Paid
	}
	if in.Category != nil {
		bill.Category = *in.Category
	}

	if err := svc.writer.Update(ctx, *bill); err != nil {
		logger.Log.Errorw("failed to update bill", "bill_id", billID, "err", err)
		return nil, err
	}
	bill.UpdatedAt = time.Now()

	if len(in.BillDebtors) > 0 {
		if err := svc.validateShares(ctx, actorID, in.BillDebtors); err != nil {
			return nil, err
		}
		if err := svc.shareWriter.DeleteByBillID(ctx, billID); err != nil {
			logger.Log.Errorw("failed to delete bill shares", "bill_id", billID, "err", err)
			return nil, err
		}
		shares, err := svc.createShares(ctx, actorID, billID, in.BillDebtors)
		if err != nil {
			return nil, err
		}
		bill.BillDebtors = shares
	}

	return bill, nil
}

// UpdatePaidStatus flips only the paid flag after the ownership check.
func (svc *BillService) UpdatePaidStatus(ctx context.Context, actorID, billID uuid.UUID, paid bool) error {
	bill, err := svc.Get(ctx, actorID, billID)
	if err != nil {
		return err
	}

	if err := svc.writer.UpdatePaid(ctx, billID, paid); err != nil {
		logger.Log.Errorw("failed to update bill paid status", "bill_id", billID, "err", err)
		return err
	}

	bill.Paid = paid
	svc.publishEvent(ctx, *bill, "paid_status")

	return nil
}

// Delete removes the bill row after the ownership check passes. Share rows
// are left to the database's cascade rules.
func (svc *BillService) Delete(ctx context.Context, actorID, billID uuid.UUID) error {
	if _, err := svc.Get(ctx, actorID, billID); err != nil {
		return err
	}

	if err := svc.writer.Delete(ctx, billID); err != nil {
		logger.Log.Errorw("failed to delete bill", "bill_id", billID, "err", err)
		return err
	}

	return nil
}

// publishEvent publishes a bill lifecycle event to Kafka.
func (svc *BillService) publishEvent(ctx context.Context, bill models.BillDB, operation string) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "bill_id", bill.BillID)
		return
	}

	event := models.BillEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		BillID:    bill.BillID.String(),
		UserID:    bill.UserID.String(),
		Operation: operation,
		Amount:    bill.TotalAmount,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal bill event for Kafka", "bill_id", event.BillID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.BillID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish bill event to Kafka", "bill_id", event.BillID, "error", err)
	} else {
		logger.Log.Infow("Bill event published to Kafka", "bill_id", event.BillID, "operation", operation)
	}
}
