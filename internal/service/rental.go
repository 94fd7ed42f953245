package service

import (
	"context"

	"closetshare-backend/internal/domain"
	"closetshare-backend/internal/repository"
)

type rentalService struct {
	rentalRepo  repository.RentalRepository
	listingRepo repository.ListingRepository
}

func NewRentalService(rentalRepo repository.RentalRepository, listingRepo repository.ListingRepository) RentalService {
	return &rentalService{
		rentalRepo:  rentalRepo,
		listingRepo: listingRepo,
	}
}

func (s *rentalService) ListForRenter(ctx context.Context, renterID string) ([]domain.RentalWithListing, error) {
	return s.rentalRepo.ListByRenter(ctx, renterID)
}

// GetContactInfo gates seller contact details: renter-only, confirmed-only.
// The ownership check runs first so a stranger learns nothing about the
// rental's state.
func (s *rentalService) GetContactInfo(ctx context.Context, rentalID int32, requesterID string) (*domain.ContactInfo, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.RenterID != requesterID {
		return nil, domain.ErrUnauthorized
	}
	if rental.Status != domain.RentalStatusConfirmed {
		return nil, domain.ErrContactNotYetAvailable
	}

	listing, err := s.listingRepo.GetByID(ctx, rental.ListingID)
	if err != nil {
		return nil, err
	}

	return &domain.ContactInfo{
		PhoneNumber:  listing.PhoneNumber,
		ContactEmail: listing.ContactEmail,
	}, nil
}
