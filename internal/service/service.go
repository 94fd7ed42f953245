package service

import (
	"context"
	"io"

	"closetshare-backend/internal/domain"
)

// BookingInput carries everything one paid booking attempt needs.
type BookingInput struct {
	Request     domain.RentalRequest
	RenterEmail string
	// SourceID is the one-time payment token from the client-side widget.
	SourceID string
	// IdempotencyKey is optional. Supply the key from a previous retryable
	// failure to retry the same logical charge; leave empty for a new attempt.
	IdempotencyKey string
	// QuotedAmountCents is the amount the client displayed. Zero skips the
	// check; a non-zero value that disagrees with the server-side price is
	// rejected before any charge.
	QuotedAmountCents int32
}

// BookingResult is the definitive success outcome of a booking.
type BookingResult struct {
	RentalID         int32
	PaymentID        string
	TotalAmountCents int32
}

type BookingService interface {
	// BookListing runs the paid booking transaction: validate, charge,
	// record. Exactly one charge attempt per idempotency key; exactly one
	// confirmed rental per successful charge.
	BookListing(ctx context.Context, in BookingInput) (*BookingResult, error)
	// RequestFreeRental creates a pending rental for a free listing. No
	// payment is involved; the owner-acknowledgment handshake that would
	// confirm it is not implemented yet.
	RequestFreeRental(ctx context.Context, req domain.RentalRequest) (*domain.Rental, error)
}

// ImageUpload is an uploaded listing image about to enter the object store.
type ImageUpload struct {
	FileName    string
	ContentType string
	Content     io.Reader
}

type ListingService interface {
	CreateListing(ctx context.Context, listing *domain.Listing, image *ImageUpload) error
	Search(ctx context.Context, query string) ([]domain.ListingSummary, error)
}

type RentalService interface {
	ListForRenter(ctx context.Context, renterID string) ([]domain.RentalWithListing, error)
	// GetContactInfo releases the listing owner's contact details only to the
	// rental's renter and only once the rental is confirmed.
	GetContactInfo(ctx context.Context, rentalID int32, requesterID string) (*domain.ContactInfo, error)
}

type EmailService interface {
	SendRentalConfirmation(ctx context.Context, toEmail, listingTitle, startDate, endDate string, totalAmountCents int32) error
	SendFreeRentalRequested(ctx context.Context, ownerEmail, listingTitle, startDate, endDate string) error
}
