package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/felipemarinho/ewallet/internal/middlewares"
	"github.com/felipemarinho/ewallet/internal/models"
	"github.com/felipemarinho/ewallet/internal/services"
)

// BillManager defines the interface that the service must implement.
type BillManager interface {
	List(ctx context.Context, userID uuid.UUID, month, year *int, creditCardID *uuid.UUID) ([]models.BillDB, error)
	Create(ctx context.Context, userID uuid.UUID, bill *services.BillInput, bills []services.BillInput) ([]models.BillDB, error)
	Update(ctx context.Context, actorID, billID uuid.UUID, in services.BillUpdateInput) (*models.BillDB, error)
	UpdatePaidStatus(ctx context.Context, actorID, billID uuid.UUID, paid bool) error
	Delete(ctx context.Context, actorID, billID uuid.UUID) error
}

// BillSharePayload represents one split share inside a bill payload
// swagger:model BillSharePayload
type BillSharePayload struct {
	// Debtor owing this share; mutually exclusive with userId
	DebtorID *uuid.UUID `json:"debtorId"`

	// Caller's own id for a self-share; mutually exclusive with debtorId
	UserID *uuid.UUID `json:"userId"`

	// Share amount
	// required: true
	Amount float64 `json:"amount"`

	// Share description
	Description string `json:"description"`

	// Paid flag
	Paid bool `json:"paid"`
}

// BillPayload represents one bill inside a creation payload
// swagger:model BillPayload
type BillPayload struct {
	// Charged credit card
	// required: true
	CreditCardID uuid.UUID `json:"creditCardId"`

	// Charge month, 1-12
	// required: true
	Month int `json:"month" validate:"required,min=1,max=12"`

	// Charge year
	// required: true
	Year int `json:"year" validate:"required"`

	// Charge date
	// required: true
	Date time.Time `json:"date" validate:"required"`

	// Bill total
	// required: true
	TotalAmount float64 `json:"totalAmount" validate:"required"`

	// Installment index
	Installment int `json:"installment"`

	// Installment count
	TotalOfInstallments int `json:"totalOfInstallments"`

	// Free-form description
	Description string `json:"description"`

	// Paid flag
	Paid bool `json:"paid"`

	// Bill category
	// required: true
	// default: SUPERMARKET
	Category string `json:"category" validate:"required"`

	// Split shares
	BillDebtors []BillSharePayload `json:"billDebtors" validate:"omitempty,dive"`
}

// CreateBillRequest represents the JSON body for bill creation. Exactly one
// of bill or bills must be present.
// swagger:model CreateBillRequest
type CreateBillRequest struct {
	// Single bill
	Bill *BillPayload `json:"bill"`

	// Batch of bills, created independently
	Bills []BillPayload `json:"bills" validate:"omitempty,dive"`
}

// UpdateBillRequest represents the JSON body for bill updates. Omitted
// fields keep their current values; a non-empty billDebtors set replaces
// every existing share.
// swagger:model UpdateBillRequest
type UpdateBillRequest struct {
	CreditCardID        *uuid.UUID         `json:"creditCardId"`
	Month               *int               `json:"month" validate:"omitempty,min=1,max=12"`
	Year                *int               `json:"year"`
	Date                *time.Time         `json:"date"`
	TotalAmount         *float64           `json:"totalAmount"`
	Installment         *int               `json:"installment"`
	TotalOfInstallments *int               `json:"totalOfInstallments"`
	Description         *string            `json:"description"`
	Paid                *bool              `json:"paid"`
	Category            *string            `json:"category"`
	BillDebtors         []BillSharePayload `json:"billDebtors" validate:"omitempty,dive"`
}

// UpdateBillPaidRequest represents the JSON body for the paid-flag toggle
// swagger:model UpdateBillPaidRequest
type UpdateBillPaidRequest struct {
	// Paid flag
	// required: true
	Paid *bool `json:"paid" validate:"required"`
}

func billIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	billID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return uuid.Nil, false
	}
	return billID, true
}

func toShareInputs(payloads []BillSharePayload) []services.BillDebtorInput {
	shares := make([]services.BillDebtorInput, 0, len(payloads))
	for _, p := range payloads {
		shares = append(shares, services.BillDebtorInput{
			DebtorID:    p.DebtorID,
			UserID:      p.UserID,
			Amount:      p.Amount,
			Description: p.Description,
			Paid:        p.Paid,
		})
	}
	return shares
}

func toBillInput(p BillPayload) services.BillInput {
	return services.BillInput{
		CreditCardID:        p.CreditCardID,
		Month:               p.Month,
		Year:                p.Year,
		Date:                p.Date,
		TotalAmount:         p.TotalAmount,
		Installment:         p.Installment,
		TotalOfInstallments: p.TotalOfInstallments,
		Description:         p.Description,
		Paid:                p.Paid,
		Category:            p.Category,
		BillDebtors:         toShareInputs(p.BillDebtors),
	}
}

// NewListBillsHandler returns an HTTP handler listing the caller's bills.
// @Summary List bills
// @Description Lists the caller's bills with their split shares, optionally filtered by month, year and credit card.
// @Tags bills
// @Produce json
// @Security BearerAuth
// @Param month query int false "Charge month filter"
// @Param year query int false "Charge year filter"
// @Param creditCardId query string false "Credit card filter"
// @Success 200 {array} models.BillDB "Bills"
// @Failure 400 {object} handlers.ErrorResponse "Invalid filter"
// @Router /bills [get]
func NewListBillsHandler(svc BillManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())

		var month, year *int
		var creditCardID *uuid.UUID

		if raw := r.URL.Query().Get("month"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid month filter")
				return
			}
			month = &v
		}
		if raw := r.URL.Query().Get("year"); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid year filter")
				return
			}
			year = &v
		}
		if raw := r.URL.Query().Get("creditCardId"); raw != "" {
			v, err := uuid.Parse(raw)
			if err != nil {
				writeError(w, http.StatusBadRequest, "Invalid creditCardId filter")
				return
			}
			creditCardID = &v
		}

		bills, err := svc.List(r.Context(), userID, month, year, creditCardID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if bills == nil {
			bills = []models.BillDB{}
		}

		writeJSON(w, http.StatusOK, bills)
	}
}

// NewCreateBillHandler returns an HTTP handler for bill creation.
// @Summary Create one bill or a batch
// @Description Registers a single bill or a batch. Batch entries are created independently; an entry that fails does not roll back the others. Every share is attributed to the caller.
// @Tags bills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createBillRequest body handlers.CreateBillRequest true "Bill creation request"
// @Success 201 {array} models.BillDB "Created bills"
// @Failure 400 {object} handlers.ErrorResponse "Missing bill/bills / share for another user / invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Credit card or debtor not found"
// @Router /bills [post]
func NewCreateBillHandler(svc BillManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())

		var req CreateBillRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		if req.Bill != nil && !models.ValidCategory(req.Bill.Category) {
			writeError(w, http.StatusBadRequest, "Invalid bill category")
			return
		}
		for _, p := range req.Bills {
			if !models.ValidCategory(p.Category) {
				writeError(w, http.StatusBadRequest, "Invalid bill category")
				return
			}
		}

		var single *services.BillInput
		if req.Bill != nil {
			in := toBillInput(*req.Bill)
			single = &in
		}
		batch := make([]services.BillInput, 0, len(req.Bills))
		for _, p := range req.Bills {
			batch = append(batch, toBillInput(p))
		}

		created, err := svc.Create(r.Context(), userID, single, batch)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		if single != nil {
			writeJSON(w, http.StatusCreated, created[0])
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

// NewUpdateBillHandler returns an HTTP handler for bill updates.
// @Summary Update a bill
// @Description Merges the provided fields into the bill. A non-empty billDebtors set replaces every existing share; an empty or absent set leaves them untouched.
// @Tags bills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bill id"
// @Param updateBillRequest body handlers.UpdateBillRequest true "Bill update request"
// @Success 200 {object} models.BillDB "Updated bill"
// @Failure 400 {object} handlers.ErrorResponse "Another user's bill / invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Bill or credit card not found"
// @Router /bills/{id} [put]
func NewUpdateBillHandler(svc BillManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())
		billID, ok := billIDParam(w, r)
		if !ok {
			return
		}

		var req UpdateBillRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		if req.Category != nil && !models.ValidCategory(*req.Category) {
			writeError(w, http.StatusBadRequest, "Invalid bill category")
			return
		}

		in := services.BillUpdateInput{
			CreditCardID:        req.CreditCardID,
			Month:               req.Month,
			Year:                req.Year,
			Date:                req.Date,
			TotalAmount:         req.TotalAmount,
			Installment:         req.Installment,
			TotalOfInstallments: req.TotalOfInstallments,
			Description:         req.Description,
			Paid:                req.Paid,
			Category:            req.Category,
			BillDebtors:         toShareInputs(req.BillDebtors),
		}

		bill, err := svc.Update(r.Context(), userID, billID, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, bill)
	}
}

// NewUpdateBillPaidHandler returns an HTTP handler toggling the paid flag.
// @Summary Toggle a bill's paid flag
// @Tags bills
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bill id"
// @Param updateBillPaidRequest body handlers.UpdateBillPaidRequest true "Paid flag"
// @Success 200 {object} handlers.MessageResponse "Paid flag updated"
// @Failure 400 {object} handlers.ErrorResponse "Another user's bill / invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Bill not found"
// @Router /bills/{id}/paid [patch]
func NewUpdateBillPaidHandler(svc BillManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())
		billID, ok := billIDParam(w, r)
		if !ok {
			return
		}

		var req UpdateBillPaidRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		if err := svc.UpdatePaidStatus(r.Context(), userID, billID, *req.Paid); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, MessageResponse{Message: "Bill updated successfully"})
	}
}

// NewDeleteBillHandler returns an HTTP handler removing a bill.
// @Summary Delete a bill
// @Tags bills
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bill id"
// @Success 204 "Bill deleted"
// @Failure 400 {object} handlers.ErrorResponse "Another user's bill"
// @Failure 404 {object} handlers.ErrorResponse "Bill not found"
// @Router /bills/{id} [delete]
func NewDeleteBillHandler(svc BillManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())
		billID, ok := billIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, billID); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
