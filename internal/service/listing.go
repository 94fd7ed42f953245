package service

import (
	"context"
	"fmt"
	"time"

	"closetshare-backend/internal/domain"
	"closetshare-backend/internal/logger"
	"closetshare-backend/internal/repository"
	"closetshare-backend/internal/storage"
	"closetshare-backend/internal/utils"
)

type listingService struct {
	listingRepo repository.ListingRepository
	storage     storage.StorageInterface
}

func NewListingService(listingRepo repository.ListingRepository, store storage.StorageInterface) ListingService {
	return &listingService{
		listingRepo: listingRepo,
		storage:     store,
	}
}

func (s *listingService) CreateListing(ctx context.Context, listing *domain.Listing, image *ImageUpload) error {
	if err := validateListing(listing); err != nil {
		return err
	}

	if image != nil {
		key := fmt.Sprintf("listings/%d_%s", time.Now().UnixMilli(), image.FileName)
		logger.ExternalServiceCall("object-store", "UploadImage", "key", key)
		url, err := s.storage.UploadImage(ctx, key, image.ContentType, image.Content)
		logger.ExternalServiceResult("object-store", "UploadImage", err, "key", key)
		if err != nil {
			return fmt.Errorf("image upload failed: %w", err)
		}
		listing.ImageURL = url
	}

	return s.listingRepo.Create(ctx, listing)
}

func (s *listingService) Search(ctx context.Context, query string) ([]domain.ListingSummary, error) {
	listings, err := s.listingRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ListingSummary, 0, len(listings))
	for i := range listings {
		summaries = append(summaries, listings[i].Summary())
	}
	return summaries, nil
}

func validateListing(l *domain.Listing) error {
	if l.OwnerID == "" {
		return domain.NewValidationError("ownerId", "required")
	}
	if l.Title == "" {
		return domain.NewValidationError("title", "required")
	}
	if l.ItemType == "" {
		return domain.NewValidationError("itemType", "required")
	}
	if l.Size == "" {
		return domain.NewValidationError("size", "required")
	}

	switch l.RentalType {
	case domain.RentalTypeRent:
		if l.PricePerDayCents <= 0 {
			return domain.NewValidationError("pricePerDay", "required for paid rentals")
		}
	case domain.RentalTypeFree:
		l.PricePerDayCents = 0
	default:
		return domain.NewValidationError("rentalType", `must be "rent" or "free"`)
	}

	from, err := utils.ParseDate(l.AvailableFrom)
	if err != nil {
		return domain.NewValidationError("startDate", err.Error())
	}
	to, err := utils.ParseDate(l.AvailableTo)
	if err != nil {
		return domain.NewValidationError("endDate", err.Error())
	}
	if to.Before(from) {
		return domain.NewValidationError("endDate", "must be on or after startDate")
	}

	return nil
}
