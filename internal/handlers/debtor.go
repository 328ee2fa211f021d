package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/felipemarinho/ewallet/internal/middlewares"
	"github.com/felipemarinho/ewallet/internal/models"
)

// DebtorManager defines the interface that the service must implement.
type DebtorManager interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.DebtorDB, error)
	Get(ctx context.Context, actorID, debtorID uuid.UUID) (*models.DebtorDB, error)
	Create(ctx context.Context, userID uuid.UUID, name, color string) (*models.DebtorDB, error)
	Update(ctx context.Context, actorID, debtorID uuid.UUID, name, color *string) (*models.DebtorDB, error)
	Delete(ctx context.Context, actorID, debtorID uuid.UUID) error
}

// CreateDebtorRequest represents the JSON body for registering a debtor
// swagger:model CreateDebtorRequest
type CreateDebtorRequest struct {
	// Display name
	// required: true
	// default: Alice
	Name string `json:"name" validate:"required"`

	// Display color
	// required: true
	// default: #ff0000
	Color string `json:"color" validate:"required"`
}

// UpdateDebtorRequest represents the JSON body for updating a debtor
// swagger:model UpdateDebtorRequest
type UpdateDebtorRequest struct {
	// Display name, omit to keep the current one
	Name *string `json:"name"`

	// Display color, omit to keep the current one
	Color *string `json:"color"`
}

func debtorIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	debtorID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid id")
		return uuid.Nil, false
	}
	return debtorID, true
}

// NewListDebtorsHandler returns an HTTP handler listing the caller's debtors.
// @Summary List debtors
// @Tags debtors
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.DebtorDB "Debtors"
// @Router /users/debtors [get]
func NewListDebtorsHandler(svc DebtorManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())

		debtors, err := svc.List(r.Context(), userID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		if debtors == nil {
			debtors = []models.DebtorDB{}
		}

		writeJSON(w, http.StatusOK, debtors)
	}
}

// NewGetDebtorHandler returns an HTTP handler reading one debtor.
// @Summary Get a debtor
// @Tags debtors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Debtor id"
// @Success 200 {object} models.DebtorDB "Debtor"
// @Failure 400 {object} handlers.ErrorResponse "Another user's debtor"
// @Failure 404 {object} handlers.ErrorResponse "Debtor not found"
// @Router /users/debtors/{id} [get]
func NewGetDebtorHandler(svc DebtorManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())
		debtorID, ok := debtorIDParam(w, r)
		if !ok {
			return
		}

		debtor, err := svc.Get(r.Context(), userID, debtorID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, debtor)
	}
}

// NewCreateDebtorHandler returns an HTTP handler registering a debtor.
// @Summary Register a debtor
// @Tags debtors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param createDebtorRequest body handlers.CreateDebtorRequest true "Debtor registration request"
// @Success 201 {object} models.DebtorDB "Debtor created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /users/debtors [post]
func NewCreateDebtorHandler(svc DebtorManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())

		var req CreateDebtorRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		debtor, err := svc.Create(r.Context(), userID, req.Name, req.Color)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, debtor)
	}
}

// NewUpdateDebtorHandler returns an HTTP handler updating a debtor.
// @Summary Update a debtor
// @Tags debtors
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Debtor id"
// @Param updateDebtorRequest body handlers.UpdateDebtorRequest true "Debtor update request"
// @Success 200 {object} models.DebtorDB "Updated debtor"
// @Failure 400 {object} handlers.ErrorResponse "Another user's debtor / invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Debtor not found"
// @Router /users/debtors/{id} [put]
func NewUpdateDebtorHandler(svc DebtorManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())
		debtorID, ok := debtorIDParam(w, r)
		if !ok {
			return
		}

		var req UpdateDebtorRequest
		if !decodeAndValidate(w, r, &req) {
			return
		}

		debtor, err := svc.Update(r.Context(), userID, debtorID, req.Name, req.Color)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, debtor)
	}
}

// NewDeleteDebtorHandler returns an HTTP handler removing a debtor.
// @Summary Delete a debtor
// @Tags debtors
// @Produce json
// @Security BearerAuth
// @Param id path string true "Debtor id"
// @Success 204 "Debtor deleted"
// @Failure 400 {object} handlers.ErrorResponse "Another user's debtor"
// @Failure 404 {object} handlers.ErrorResponse "Debtor not found"
// @Router /users/debtors/{id} [delete]
func NewDeleteDebtorHandler(svc DebtorManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := middlewares.UserIDFromContext(r.Context())
		debtorID, ok := debtorIDParam(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), userID, debtorID); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
