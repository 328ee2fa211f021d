package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/felipemarinho/ewallet/internal/logger"
	"github.com/felipemarinho/ewallet/internal/services"
)

var validate = validator.New()

// ErrorResponse is the JSON envelope for every error reply.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// MessageResponse is the JSON envelope for informational replies.
// swagger:model MessageResponse
type MessageResponse struct {
	// Informational message
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}

var notFoundErrors = []error{
	services.ErrUserNotFound,
	services.ErrBillNotFound,
	services.ErrDebtorNotFound,
	services.ErrCreditCardNotFound,
}

var badRequestErrors = []error{
	services.ErrEmailInUse,
	services.ErrPasswordConfirmation,
	services.ErrOldPasswordMismatch,
	services.ErrIncorrectCredentials,
	services.ErrInvalidResetToken,
	services.ErrResetTokenExpired,
	services.ErrBillPayload,
	services.ErrBillForAnotherUser,
	services.ErrBillAccessDenied,
	services.ErrDebtorAccessDenied,
	services.ErrCreditCardAccessDenied,
	services.ErrFileMissing,
}

// writeServiceError maps service sentinels to HTTP statuses. Unknown errors
// become an opaque 500.
func writeServiceError(w http.ResponseWriter, err error) {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			writeError(w, http.StatusNotFound, sentinel.Error())
			return
		}
	}
	for _, sentinel := range badRequestErrors {
		if errors.Is(err, sentinel) {
			writeError(w, http.StatusBadRequest, sentinel.Error())
			return
		}
	}
	if errors.Is(err, services.ErrNotOwnUser) {
		writeError(w, http.StatusUnauthorized, services.ErrNotOwnUser.Error())
		return
	}

	logger.Log.Errorw("internal server error", "err", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// decodeAndValidate parses the JSON body into dst and runs struct validation.
// It writes the 400 reply itself and reports whether the request may proceed.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
