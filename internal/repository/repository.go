package repository

import (
	"context"

	"closetshare-backend/internal/domain"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *domain.Listing) error
	GetByID(ctx context.Context, id int32) (*domain.Listing, error)
	// Search matches the query as a case-insensitive substring against title,
	// size, item type and condition. An empty query returns all listings.
	Search(ctx context.Context, query string) ([]domain.Listing, error)
}

type RentalRepository interface {
	// CreateConfirmed inserts a confirmed rental. The overlap check against
	// other confirmed rentals on the same listing runs inside the same
	// transaction, serialized on the listing row, so two concurrent bookings
	// of an overlapping range cannot both commit. A detected overlap returns
	// *domain.ConflictError.
	CreateConfirmed(ctx context.Context, rental *domain.Rental) error
	// CreatePending inserts a pending free-rental request under the same
	// overlap guard.
	CreatePending(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	// HasOverlap reports whether a confirmed rental on the listing intersects
	// [startDate, endDate]. Advisory pre-check only; CreateConfirmed remains
	// the authority.
	HasOverlap(ctx context.Context, listingID int32, startDate, endDate string) (bool, error)
	ListByRenter(ctx context.Context, renterID string) ([]domain.RentalWithListing, error)
	// ExpireStalePending marks pending rentals created before the cutoff as
	// failed and returns the number of rows changed.
	ExpireStalePending(ctx context.Context, cutoff string) (int64, error)
}
