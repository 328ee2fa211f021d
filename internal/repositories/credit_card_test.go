package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/felipemarinho/ewallet/internal/models"
)

var creditCardRows = []string{"credit_card_id", "user_id", "name", "created_at", "updated_at"}

func TestCreditCardReadRepository_GetByID(t *testing.T) {
	db, mock, closeDB := newMockDB(t)
	defer closeDB()

	cardID := uuid.New()
	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT credit_card_id, user_id, name, created_at, updated_at FROM credit_cards WHERE credit_card_id = $1")).
		WithArgs(cardID).
		WillReturnRows(sqlmock.NewRows(creditCardRows).
			AddRow(cardID, userID, "Visa", testTime(), testTime()))

	repo := NewCreditCardReadRepository(db)
	card, err := repo.GetByID(context.Background(), cardID)

	assert.NoError(t, err)
	assert.NotNil(t, card)
	assert.Equal(t, "Visa", card.Name)
	assert.Equal(t, userID, card.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreditCardReadRepository_GetByID_NoRows(t *testing.T) {
	db, mock, closeDB := newMockDB(t)
	defer closeDB()

	cardID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT credit_card_id, user_id, name, created_at, updated_at FROM credit_cards WHERE credit_card_id = $1")).
		WithArgs(cardID).
		WillReturnRows(sqlmock.NewRows(creditCardRows))

	repo := NewCreditCardReadRepository(db)
	card, err := repo.GetByID(context.Background(), cardID)

	assert.NoError(t, err)
	assert.Nil(t, card)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreditCardReadRepository_ListByUserID(t *testing.T) {
	db, mock, closeDB := newMockDB(t)
	defer closeDB()

	userID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT credit_card_id, user_id, name, created_at, updated_at FROM credit_cards WHERE user_id = $1 ORDER BY created_at")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(creditCardRows).
			AddRow(uuid.New(), userID, "Visa", testTime(), testTime()).
			AddRow(uuid.New(), userID, "Mastercard", testTime(), testTime()))

	repo := NewCreditCardReadRepository(db)
	cards, err := repo.ListByUserID(context.Background(), userID)

	assert.NoError(t, err)
	assert.Len(t, cards, 2)
	assert.Equal(t, "Visa", cards[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreditCardWriteRepository_Save(t *testing.T) {
	db, mock, closeDB := newMockDB(t)
	defer closeDB()

	card := models.CreditCardDB{
		CreditCardID: uuid.New(),
		UserID:       uuid.New(),
		Name:         "Visa",
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO credit_cards (credit_card_id, user_id, name, created_at, updated_at) VALUES ($1, $2, $3, NOW(), NOW())")).
		WithArgs(card.CreditCardID, card.UserID, card.Name).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewCreditCardWriteRepository(db)
	assert.NoError(t, repo.Save(context.Background(), card))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreditCardWriteRepository_Update(t *testing.T) {
	db, mock, closeDB := newMockDB(t)
	defer closeDB()

	cardID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE credit_cards SET name = $2, updated_at = NOW() WHERE credit_card_id = $1")).
		WithArgs(cardID, "Mastercard").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewCreditCardWriteRepository(db)
	assert.NoError(t, repo.Update(context.Background(), cardID, "Mastercard"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreditCardWriteRepository_Delete(t *testing.T) {
	db, mock, closeDB := newMockDB(t)
	defer closeDB()

	cardID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM credit_cards WHERE credit_card_id = $1")).
		WithArgs(cardID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewCreditCardWriteRepository(db)
	assert.NoError(t, repo.Delete(context.Background(), cardID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
