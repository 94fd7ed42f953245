package service

import (
	"context"
	"strings"
	"testing"

	"closetshare-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validListing() *domain.Listing {
	return &domain.Listing{
		OwnerID:          "user-abc",
		Title:            "Summer dress",
		ItemType:         "dress",
		Size:             "M",
		Condition:        "good",
		PricePerDayCents: 500,
		RentalType:       domain.RentalTypeRent,
		AvailableFrom:    "2024-06-01",
		AvailableTo:      "2024-08-30",
		PhoneNumber:      "555-0100",
		ContactEmail:     "owner@example.com",
	}
}

func TestListingService_CreateListing(t *testing.T) {
	ctx := context.Background()

	t.Run("Uploads image and persists listing", func(t *testing.T) {
		listingRepo := new(MockListingRepo)
		store := new(MockStorage)
		svc := NewListingService(listingRepo, store)

		store.On("UploadImage", ctx, mock.AnythingOfType("string"), "image/jpeg", mock.Anything).
			Return("https://bucket/listings/dress.jpg", nil)
		listingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Listing")).Return(nil)

		l := validListing()
		err := svc.CreateListing(ctx, l, &ImageUpload{
			FileName:    "dress.jpg",
			ContentType: "image/jpeg",
			Content:     strings.NewReader("bytes"),
		})
		assert.NoError(t, err)
		assert.Equal(t, "https://bucket/listings/dress.jpg", l.ImageURL)
	})

	t.Run("Paid listing without a price fails validation", func(t *testing.T) {
		listingRepo := new(MockListingRepo)
		svc := NewListingService(listingRepo, new(MockStorage))

		l := validListing()
		l.PricePerDayCents = 0
		err := svc.CreateListing(ctx, l, nil)
		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "pricePerDay", vErr.Field)
		listingRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Free listing needs no price", func(t *testing.T) {
		listingRepo := new(MockListingRepo)
		svc := NewListingService(listingRepo, new(MockStorage))

		l := validListing()
		l.RentalType = domain.RentalTypeFree
		l.PricePerDayCents = 0
		listingRepo.On("Create", ctx, mock.AnythingOfType("*domain.Listing")).Return(nil)

		assert.NoError(t, svc.CreateListing(ctx, l, nil))
	})

	t.Run("Availability window must be ordered", func(t *testing.T) {
		svc := NewListingService(new(MockListingRepo), new(MockStorage))

		l := validListing()
		l.AvailableFrom = "2024-08-30"
		l.AvailableTo = "2024-06-01"
		err := svc.CreateListing(ctx, l, nil)
		var vErr *domain.ValidationError
		assert.ErrorAs(t, err, &vErr)
	})
}

func TestListingService_Search(t *testing.T) {
	ctx := context.Background()
	listingRepo := new(MockListingRepo)
	svc := NewListingService(listingRepo, new(MockStorage))

	stored := []domain.Listing{*validListing()}
	stored[0].ID = 1
	listingRepo.On("Search", ctx, "dress").Return(stored, nil)

	results, err := svc.Search(ctx, "dress")
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "Summer dress", results[0].Title)
	// summaries are the public projection; contact details stay behind the gate
}
