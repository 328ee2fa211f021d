package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/felipemarinho/ewallet/internal/middlewares"
	"github.com/felipemarinho/ewallet/internal/models"
)

// CreditCardManager defines the interface that the service must implement.
type CreditCardManager interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.CreditCardDB, error)
	Get(ctx context.Context, actorID, creditCardID uuid.UUID) (*models.CreditCardDB, error)
	Create(ctx context.Context, userID uuid.UUID, name string) (*models.CreditCardDB, error)
	Update(ctx context.Context, actorID, creditCardID uuid.UUID, name *string) (*models.CreditCardDB, error)
	Delete(ctx context.Context, actorID, creditCardID uuid.UUID) error
}

// CreateCreditCardRequest represents the JSON body for registering a credit card
// swagger:model CreateCreditCardRequest
type CreateCreditCardRequest struct {
	// Display name
	// required: true
	// default: Visa
	Name string `json:"name" validate:"required"`
}

// UpdateCreditCardRequest represents the JSON body for updating a credit card
// swagger:model UpdateCreditCardRequest
type UpdateCreditCardRequest struct {
	// Display name, omit to keep the current one
	Name *string `json:"name"`
}

func creditCardIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	creditCardID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return uuid.Nil, false
	}
	return creditCardID, true
}

// NewListCreditCardsHandler returns an HTTP handler listing the caller's credit cards.
// @Summary List credit cards
// @Tags credit-cards
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.CreditCardDB "Credit cards"
// @Router /users/credit-cards [get]
func NewListCreditCardsHandler(svc CreditCardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())

		cards, err := svc.List(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if cards == nil {
			cards = []models.CreditCardDB{}
		}

		writeJSON(w, http.StatusOK, cards)
	}
}

// NewGetCreditCardHandler returns an HTTP handler reading one credit card.
// @Summary Get a credit card
// @Tags credit-cards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Credit card id"
// @Success 200 {object} models.CreditCardDB "Credit card"
// @Failure 400 {object} handlers.ErrorResponse "Another user's credit card"
// @Failure 404 {object} handlers.ErrorResponse "Credit card not found"
// @Router /users/credit-cards/{id} [get]
func NewGetCreditCardHandler(svc CreditCardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())
		creditCardID, ok := creditCardIDParam(w, r)
		if !ok {
			return
		}

		card, err := svc.Get(r.Context(), userID, creditCardID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, card)
	}
}

// NewCreateCreditCardHandler returns an HTTP handler registering a credit card.
// @Summary Register a credit card
// @Tags credit-cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createCreditCardRequest body handlers.CreateCreditCardRequest true "Credit card registration request"
// @Success 201 {object} models.CreditCardDB "Credit card created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /users/credit-cards [post]
func NewCreateCreditCardHandler(svc CreditCardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())

		var req CreateCreditCardRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		card, err := svc.Create(r.Context(), userID, req.Name)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, card)
	}
}

// NewUpdateCreditCardHandler returns an HTTP handler updating a credit card.
// @Summary Update a credit card
// @Tags credit-cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Credit card id"
// @Param updateCreditCardRequest body handlers.UpdateCreditCardRequest true "Credit card update request"
// @Success 200 {object} models.CreditCardDB "Updated credit card"
// @Failure 400 {object} handlers.ErrorResponse "Another user's credit card / invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Credit card not found"
// @Router /users/credit-cards/{id} [put]
func NewUpdateCreditCardHandler(svc CreditCardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())
		creditCardID, ok := creditCardIDParam(w, r)
		if !ok {
			return
		}

		var req UpdateCreditCardRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		card, err := svc.Update(r.Context(), userID, creditCardID, req.Name)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, card)
	}
}

// NewDeleteCreditCardHandler returns an HTTP handler removing a credit card.
// @Summary Delete a credit card
// @Tags credit-cards
// @Produce json
// @Security BearerAuth
// @Param id path string true "Credit card id"
// @Success 204 "Credit card deleted"
// @Failure 400 {object} handlers.ErrorResponse "Another user's credit card"
// @Failure 404 {object} handlers.ErrorResponse "Credit card not found"
// @Router /users/credit-cards/{id} [delete]
func NewDeleteCreditCardHandler(svc CreditCardManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())
		creditCardID, ok := creditCardIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, creditCardID); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
