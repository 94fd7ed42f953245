package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"closetshare-backend/internal/domain"
	"closetshare-backend/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

// writeError maps domain errors onto wire responses. Gateway and storage
// internals never reach the caller; retryable outcomes echo the idempotency
// key so the client can repeat the same logical charge.
func writeError(w http.ResponseWriter, err error) {
	var vErr *domain.ValidationError
	var conflict *domain.ConflictError
	var gwErr *domain.GatewayError
	var trErr *domain.TransientError
	var stErr *domain.StorageError

	switch {
	case errors.As(err, &vErr):
		writeMessage(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, domain.ErrListingNotFound),
		errors.Is(err, domain.ErrRentalNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrAccountNotFound):
		writeMessage(w, http.StatusNotFound, "User not found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeMessage(w, http.StatusForbidden, "Unauthorized")
	case errors.Is(err, domain.ErrContactNotYetAvailable):
		writeMessage(w, http.StatusForbidden, "Contact information available after successful rental")
	case errors.As(err, &conflict):
		writeMessage(w, http.StatusConflict, "The listing is already booked for the requested dates")
	case errors.As(err, &gwErr):
		if gwErr.Declined {
			writeMessage(w, http.StatusPaymentRequired, "Payment was declined")
		} else {
			writeMessage(w, http.StatusBadGateway, "Payment processing failed")
		}
	case errors.As(err, &trErr):
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"success":        false,
			"message":        "Payment outcome unknown, please retry",
			"retryable":      true,
			"idempotencyKey": trErr.IdempotencyKey,
		})
	case errors.As(err, &stErr):
		writeMessage(w, http.StatusInternalServerError, "An error occurred during payment processing")
	default:
		logger.Error("Unhandled request error", "error", err)
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}
