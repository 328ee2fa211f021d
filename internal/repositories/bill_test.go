package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipemarinho/ewallet/internal/models"
)

func seedCreditCard(t *testing.T, db *sqlx.DB, userID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	cardID := uuid.New()
	err := NewCreditCardWriteRepository(db).Save(context.Background(), models.CreditCardDB{
		CreditCardID: cardID,
		UserID:       userID,
		Name:         name,
	})
	require.NoError(t, err)

	return cardID
}

func seedBill(t *testing.T, db *sqlx.DB, userID, cardID uuid.UUID, month, year int) uuid.UUID {
	t.Helper()

	billID := uuid.New()
	err := NewBillWriteRepository(db).Save(context.Background(), models.BillDB{
		BillID:              billID,
		CreditCardID:        cardID,
		UserID:              userID,
		Month:               month,
		Year:                year,
		Date:                time.Date(year, time.Month(month), 10, 0, 0, 0, 0, time.UTC),
		TotalAmount:         100,
		Installment:         1,
		TotalOfInstallments: 1,
		Category:            models.CategoryOthers,
	})
	require.NoError(t, err)

	return billID
}

func TestBillRepository_SaveAndGet(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	userID := seedUser(t, NewUserWriteRepository(db), "Alice", "alice@example.com")
	cardID := seedCreditCard(t, db, userID, "Visa")

	writeRepo := NewBillWriteRepository(db)
	readRepo := NewBillReadRepository(db)

	billID := uuid.New()
	date := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

	err := writeRepo.Save(ctx, models.BillDB{
		BillID:              billID,
		CreditCardID:        cardID,
		UserID:              userID,
		Month:               7,
		Year:                2025,
		Date:                date,
		TotalAmount:         120.50,
		Installment:         2,
		TotalOfInstallments: 10,
		Description:         "new fridge",
		Paid:                false,
		Category:            models.CategoryElectronics,
	})
	assert.NoError(t, err)

	bill, err := readRepo.GetByID(ctx, billID)
	assert.NoError(t, err)
	assert.NotNil(t, bill)
	assert.Equal(t, cardID, bill.CreditCardID)
	assert.Equal(t, 7, bill.Month)
	assert.Equal(t, 2025, bill.Year)
	assert.WithinDuration(t, date, bill.Date, time.Second)
	assert.Equal(t, 120.50, bill.TotalAmount)
	assert.Equal(t, 2, bill.Installment)
	assert.Equal(t, 10, bill.TotalOfInstallments)
	assert.Equal(t, "new fridge", bill.Description)
	assert.False(t, bill.Paid)
	assert.Equal(t, models.CategoryElectronics, bill.Category)
}

func TestBillRepository_GetMissingReturnsNil(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	bill, err := NewBillReadRepository(db).GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, bill)
}

func TestBillRepository_ListByUserIDFilters(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	userID := seedUser(t, NewUserWriteRepository(db), "Bob", "bob@example.com")
	visa := seedCreditCard(t, db, userID, "Visa")
	master := seedCreditCard(t, db, userID, "Mastercard")

	julyVisa := seedBill(t, db, userID, visa, 7, 2025)
	augustVisa := seedBill(t, db, userID, visa, 8, 2025)
	julyMaster := seedBill(t, db, userID, master, 7, 2025)
	lastYear := seedBill(t, db, userID, visa, 7, 2024)

	readRepo := NewBillReadRepository(db)

	t.Run("no filters returns everything in order", func(t *testing.T) {
		bills, err := readRepo.ListByUserID(ctx, userID, nil, nil, nil)
		assert.NoError(t, err)
		assert.Len(t, bills, 4)
		assert.Equal(t, lastYear, bills[0].BillID, "older year sorts first")
	})

	t.Run("month filter", func(t *testing.T) {
		month := 8
		bills, err := readRepo.ListByUserID(ctx, userID, &month, nil, nil)
		assert.NoError(t, err)
		assert.Len(t, bills, 1)
		assert.Equal(t, augustVisa, bills[0].BillID)
	})

	t.Run("month and year filter", func(t *testing.T) {
		month, year := 7, 2025
		bills, err := readRepo.ListByUserID(ctx, userID, &month, &year, nil)
		assert.NoError(t, err)
		assert.Len(t, bills, 2)
	})

	t.Run("credit card filter", func(t *testing.T) {
		bills, err := readRepo.ListByUserID(ctx, userID, nil, nil, &master)
		assert.NoError(t, err)
		assert.Len(t, bills, 1)
		assert.Equal(t, julyMaster, bills[0].BillID)
	})

	t.Run("all filters combined", func(t *testing.T) {
		month, year := 7, 2025
		bills, err := readRepo.ListByUserID(ctx, userID, &month, &year, &visa)
		assert.NoError(t, err)
		assert.Len(t, bills, 1)
		assert.Equal(t, julyVisa, bills[0].BillID)
	})

	t.Run("another user sees nothing", func(t *testing.T) {
		bills, err := readRepo.ListByUserID(ctx, uuid.New(), nil, nil, nil)
		assert.NoError(t, err)
		assert.Empty(t, bills)
	})
}

func TestBillWriteRepository_Update(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	userID := seedUser(t, NewUserWriteRepository(db), "Carol", "carol@example.com")
	cardID := seedCreditCard(t, db, userID, "Visa")
	billID := seedBill(t, db, userID, cardID, 7, 2025)

	writeRepo := NewBillWriteRepository(db)
	readRepo := NewBillReadRepository(db)

	err := writeRepo.Update(ctx, models.BillDB{
		BillID:              billID,
		CreditCardID:        cardID,
		UserID:              userID,
		Month:               9,
		Year:                2025,
		Date:                time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC),
		TotalAmount:         250,
		Installment:         1,
		TotalOfInstallments: 1,
		Description:         "rescheduled",
		Paid:                true,
		Category:            models.CategoryServices,
	})
	assert.NoError(t, err)

	bill, err := readRepo.GetByID(ctx, billID)
	assert.NoError(t, err)
	assert.Equal(t, 9, bill.Month)
	assert.Equal(t, 250.0, bill.TotalAmount)
	assert.Equal(t, "rescheduled", bill.Description)
	assert.True(t, bill.Paid)
	assert.Equal(t, models.CategoryServices, bill.Category)
}

func TestBillWriteRepository_UpdatePaid(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	userID := seedUser(t, NewUserWriteRepository(db), "Dave", "dave@example.com")
	cardID := seedCreditCard(t, db, userID, "Visa")
	billID := seedBill(t, db, userID, cardID, 7, 2025)

	writeRepo := NewBillWriteRepository(db)
	readRepo := NewBillReadRepository(db)

	assert.NoError(t, writeRepo.UpdatePaid(ctx, billID, true))

	bill, err := readRepo.GetByID(ctx, billID)
	assert.NoError(t, err)
	assert.True(t, bill.Paid)

	assert.NoError(t, writeRepo.UpdatePaid(ctx, billID, false))

	bill, err = readRepo.GetByID(ctx, billID)
	assert.NoError(t, err)
	assert.False(t, bill.Paid)
}

func TestBillWriteRepository_DeleteCascadesShares(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	userID := seedUser(t, NewUserWriteRepository(db), "Eve", "eve@example.com")
	cardID := seedCreditCard(t, db, userID, "Visa")
	billID := seedBill(t, db, userID, cardID, 7, 2025)

	shareRepo := NewBillDebtorWriteRepository(db)
	require.NoError(t, shareRepo.Save(ctx, models.BillDebtorDB{
		BillDebtorID: uuid.New(),
		BillID:       billID,
		UserID:       userID,
		Amount:       50,
	}))

	assert.NoError(t, NewBillWriteRepository(db).Delete(ctx, billID))

	bill, err := NewBillReadRepository(db).GetByID(ctx, billID)
	assert.NoError(t, err)
	assert.Nil(t, bill)

	shares, err := NewBillDebtorReadRepository(db).ListByBillID(ctx, billID)
	assert.NoError(t, err)
	assert.Empty(t, shares, "deleting a bill removes its shares")
}
