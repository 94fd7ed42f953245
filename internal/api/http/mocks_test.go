package http

import (
	"context"

	"closetshare-backend/internal/domain"
	"closetshare-backend/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) BookListing(ctx context.Context, in service.BookingInput) (*service.BookingResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BookingResult), args.Error(1)
}

func (m *MockBookingService) RequestFreeRental(ctx context.Context, req domain.RentalRequest) (*domain.Rental, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

type MockListingService struct {
	mock.Mock
}

func (m *MockListingService) CreateListing(ctx context.Context, listing *domain.Listing, image *service.ImageUpload) error {
	args := m.Called(ctx, listing, image)
	return args.Error(0)
}

func (m *MockListingService) Search(ctx context.Context, query string) ([]domain.ListingSummary, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ListingSummary), args.Error(1)
}

type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) ListForRenter(ctx context.Context, renterID string) ([]domain.RentalWithListing, error) {
	args := m.Called(ctx, renterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalWithListing), args.Error(1)
}

func (m *MockRentalService) GetContactInfo(ctx context.Context, rentalID int32, requesterID string) (*domain.ContactInfo, error) {
	args := m.Called(ctx, rentalID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactInfo), args.Error(1)
}

type MockAccountResolver struct {
	mock.Mock
}

func (m *MockAccountResolver) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}
