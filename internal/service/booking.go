package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"closetshare-backend/internal/domain"
	"closetshare-backend/internal/logger"
	"closetshare-backend/internal/payment"
	"closetshare-backend/internal/repository"
	"closetshare-backend/internal/utils"

	"github.com/google/uuid"
)

type bookingService struct {
	listingRepo repository.ListingRepository
	rentalRepo  repository.RentalRepository
	gateway     payment.Gateway
	emailSvc    EmailService
}

func NewBookingService(
	listingRepo repository.ListingRepository,
	rentalRepo repository.RentalRepository,
	gateway payment.Gateway,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		listingRepo: listingRepo,
		rentalRepo:  rentalRepo,
		gateway:     gateway,
		emailSvc:    emailSvc,
	}
}

func (s *bookingService) BookListing(ctx context.Context, in BookingInput) (*BookingResult, error) {
	req := in.Request

	listing, err := s.listingRepo.GetByID(ctx, req.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.RentalType != domain.RentalTypeRent {
		return nil, domain.NewValidationError("listingId", "listing is not a paid rental")
	}

	start, end, err := s.validateDates(listing, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if req.PickupLocation == "" {
		return nil, domain.NewValidationError("pickupLocation", "required")
	}
	if req.DropoffLocation == "" {
		return nil, domain.NewValidationError("dropoffLocation", "required")
	}

	// Advisory pre-check so an already-taken range fails before any money
	// moves. The transactional insert below remains the authority.
	overlaps, err := s.rentalRepo.HasOverlap(ctx, req.ListingID, req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if overlaps {
		return nil, &domain.ConflictError{ListingID: req.ListingID, StartDate: req.StartDate, EndDate: req.EndDate}
	}

	total, err := utils.TotalAmountCents(start, end, listing.PricePerDayCents)
	if err != nil {
		return nil, domain.NewValidationError("dates", err.Error())
	}
	if in.QuotedAmountCents != 0 && in.QuotedAmountCents != total {
		return nil, domain.NewValidationError("amount",
			fmt.Sprintf("quoted %d cents but the listing prices this period at %d cents", in.QuotedAmountCents, total))
	}

	idempotencyKey := in.IdempotencyKey
	if idempotencyKey == "" {
		idempotencyKey = uuid.New().String()
	}

	chargeReq := payment.ChargeRequest{
		SourceID:       in.SourceID,
		IdempotencyKey: idempotencyKey,
		AmountCents:    total,
		Note:           fmt.Sprintf("Rental payment for %s", listing.Title),
		ReferenceID:    fmt.Sprintf("%d", listing.ID),
	}

	logger.ExternalServiceCall("payment-gateway", "CreatePayment",
		"listing_id", listing.ID, "idempotency_key", idempotencyKey, "amount_cents", total)
	charge, err := s.gateway.CreatePayment(ctx, chargeReq)
	logger.ExternalServiceResult("payment-gateway", "CreatePayment", err,
		"listing_id", listing.ID, "idempotency_key", idempotencyKey)
	if err != nil {
		// Declined and unknown-outcome errors pass through untouched; the
		// handler maps them and, for unknown outcomes, echoes the key so the
		// same attempt can be retried safely. No rental row exists either way.
		return nil, err
	}

	rental := &domain.Rental{
		ListingID:        listing.ID,
		RenterID:         req.RenterID,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		TotalAmountCents: total,
		PickupLocation:   req.PickupLocation,
		DropoffLocation:  req.DropoffLocation,
		PaymentID:        &charge.PaymentID,
		IdempotencyKey:   idempotencyKey,
		Status:           domain.RentalStatusConfirmed,
	}

	if err := s.rentalRepo.CreateConfirmed(ctx, rental); err != nil {
		var conflict *domain.ConflictError
		if errors.As(err, &conflict) {
			// A concurrent booking won the slot between the pre-check and the
			// insert. The charge already landed, so flag it for refund.
			logger.ReconciliationAlert("charge succeeded but slot was taken concurrently",
				"payment_id", charge.PaymentID, "idempotency_key", idempotencyKey,
				"listing_id", listing.ID, "renter_id", req.RenterID)
			return nil, err
		}
		logger.ReconciliationAlert("charge succeeded but rental record write failed",
			"payment_id", charge.PaymentID, "idempotency_key", idempotencyKey,
			"listing_id", listing.ID, "renter_id", req.RenterID, "error", err)
		return nil, &domain.StorageError{PaymentID: charge.PaymentID, IdempotencyKey: idempotencyKey, Cause: err}
	}

	if in.RenterEmail != "" {
		_ = s.emailSvc.SendRentalConfirmation(ctx, in.RenterEmail, listing.Title, req.StartDate, req.EndDate, total)
	}

	return &BookingResult{
		RentalID:         rental.ID,
		PaymentID:        charge.PaymentID,
		TotalAmountCents: total,
	}, nil
}

func (s *bookingService) RequestFreeRental(ctx context.Context, req domain.RentalRequest) (*domain.Rental, error) {
	listing, err := s.listingRepo.GetByID(ctx, req.ListingID)
	if err != nil {
		return nil, err
	}
	if listing.RentalType != domain.RentalTypeFree {
		return nil, domain.NewValidationError("listingId", "listing is a paid rental; use the payment flow")
	}

	if _, _, err := s.validateDates(listing, req.StartDate, req.EndDate); err != nil {
		return nil, err
	}

	rental := &domain.Rental{
		ListingID:       listing.ID,
		RenterID:        req.RenterID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		Status:          domain.RentalStatusPending,
	}
	if err := s.rentalRepo.CreatePending(ctx, rental); err != nil {
		return nil, err
	}

	if listing.ContactEmail != "" {
		_ = s.emailSvc.SendFreeRentalRequested(ctx, listing.ContactEmail, listing.Title, req.StartDate, req.EndDate)
	}

	return rental, nil
}

// validateDates checks presence, form, ordering and containment in the
// listing's availability window, returning the parsed endpoints.
func (s *bookingService) validateDates(listing *domain.Listing, startDate, endDate string) (time.Time, time.Time, error) {
	if startDate == "" {
		return time.Time{}, time.Time{}, domain.NewValidationError("startDate", "required")
	}
	if endDate == "" {
		return time.Time{}, time.Time{}, domain.NewValidationError("endDate", "required")
	}

	start, err := utils.ParseDate(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("startDate", err.Error())
	}
	end, err := utils.ParseDate(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, domain.NewValidationError("endDate", err.Error())
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, domain.NewValidationError("endDate", "must be on or after startDate")
	}

	from, err := utils.ParseDate(listing.AvailableFrom)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("listing %d has malformed availability window: %w", listing.ID, err)
	}
	to, err := utils.ParseDate(listing.AvailableTo)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("listing %d has malformed availability window: %w", listing.ID, err)
	}
	if start.Before(from) || end.After(to) {
		return time.Time{}, time.Time{}, domain.NewValidationError("dates",
			fmt.Sprintf("requested range must fall within %s to %s", listing.AvailableFrom, listing.AvailableTo))
	}

	return start, end, nil
}
