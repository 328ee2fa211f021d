package models

import (
	"time"

	"github.com/google/uuid"
)

// Bill categories (closed enumeration)
const (
	CategoryHouse       = "HOUSE"
	CategoryEducation   = "EDUCATION"
	CategoryElectronics = "ELECTRONICS"
	CategoryLeisure     = "LEISURE"
	CategoryOthers      = "OTHERS"
	CategoryRestaurant  = "RESTAURANT"
	CategoryHealth      = "HEALTH"
	CategoryServices    = "SERVICES"
	CategorySupermarket = "SUPERMARKET"
	CategoryTransport   = "TRANSPORT"
	CategoryClothing    = "CLOTHING"
	CategoryTravel      = "TRAVEL"
)

// Categories lists every valid bill category.
var Categories = []string{
	CategoryHouse, CategoryEducation, CategoryElectronics, CategoryLeisure,
	CategoryOthers, CategoryRestaurant, CategoryHealth, CategoryServices,
	CategorySupermarket, CategoryTransport, CategoryClothing, CategoryTravel,
}

// ValidCategory reports whether s is one of the known bill categories.
func ValidCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

// BillDB represents one monthly credit-card charge in the database
type BillDB struct {
	BillID              uuid.UUID `json:"id" db:"bill_id"`                            // Primary key
	CreditCardID        uuid.UUID `json:"creditCardId" db:"credit_card_id"`           // Charged credit card
	UserID              uuid.UUID `json:"userId" db:"user_id"`                        // Creator/owner
	Month               int       `json:"month" db:"month"`                           // 1-12
	Year                int       `json:"year" db:"year"`                             // Charge year
	Date                time.Time `json:"date" db:"date"`                             // Charge date
	TotalAmount         float64   `json:"totalAmount" db:"total_amount"`              // Bill total
	Installment         int       `json:"installment" db:"installment"`               // Installment index
	TotalOfInstallments int       `json:"totalOfInstallments" db:"total_installment"` // Installment count
	Description         string    `json:"description" db:"description"`               // Free-form description
	Paid                bool      `json:"paid" db:"paid"`                             // Paid flag
	Category            string    `json:"category" db:"category"`                     // One of Categories
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`                  // Creation timestamp
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at"`                  // Last update timestamp

	// BillDebtors carries the split shares of the bill; populated by the
	// service layer, not scanned from the bills table.
	BillDebtors []BillDebtorDB `json:"billDebtors" db:"-"`
}
