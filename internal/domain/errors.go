package domain

import (
	"errors"
	"fmt"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrRentalNotFound  = errors.New("rental not found")
	ErrAccountNotFound = errors.New("account not found")
	ErrUnauthorized    = errors.New("unauthorized")

	// ErrContactNotYetAvailable is returned by the disclosure gate when the
	// rental has not reached confirmed status.
	ErrContactNotYetAvailable = errors.New("contact information available after successful rental")
)

// ValidationError reports a user-correctable problem with a request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// ConflictError reports a date-range overlap with an existing confirmed rental.
type ConflictError struct {
	ListingID int32
	StartDate string
	EndDate   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("listing %d is already booked between %s and %s", e.ListingID, e.StartDate, e.EndDate)
}

// GatewayError reports a definitive payment failure from the gateway.
// Declined distinguishes a card decline from a gateway-side fault.
type GatewayError struct {
	Code     string
	Declined bool
}

func (e *GatewayError) Error() string {
	if e.Declined {
		return fmt.Sprintf("payment declined: %s", e.Code)
	}
	return fmt.Sprintf("payment gateway failure: %s", e.Code)
}

// TransientError reports an unknown charge outcome (timeout, network fault).
// The caller may retry the same logical attempt with the carried idempotency
// key; the gateway guarantees the charge is not applied twice under it.
type TransientError struct {
	IdempotencyKey string
	Cause          error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("payment outcome unknown (retry with idempotency key %s): %v", e.IdempotencyKey, e.Cause)
}

func (e *TransientError) Unwrap() error { return e.Cause }

// StorageError reports a ledger write failure after money has already moved.
// It must always be paired with a reconciliation log entry.
type StorageError struct {
	PaymentID      string
	IdempotencyKey string
	Cause          error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("rental record write failed for payment %s: %v", e.PaymentID, e.Cause)
}

func (e *StorageError) Unwrap() error { return e.Cause }
