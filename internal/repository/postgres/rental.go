package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"closetshare-backend/internal/domain"
	"closetshare-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const overlapQuery = `SELECT EXISTS (
	SELECT 1 FROM rentals
	WHERE listing_id = $1 AND status = 'confirmed'
	  AND start_date <= $3 AND end_date >= $2
)`

func (r *rentalRepository) HasOverlap(ctx context.Context, listingID int32, startDate, endDate string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, overlapQuery, listingID, startDate, endDate).Scan(&exists)
	return exists, err
}

func (r *rentalRepository) CreateConfirmed(ctx context.Context, rt *domain.Rental) error {
	return r.createGuarded(ctx, rt)
}

func (r *rentalRepository) CreatePending(ctx context.Context, rt *domain.Rental) error {
	return r.createGuarded(ctx, rt)
}

// createGuarded inserts the rental after re-checking the overlap inside one
// transaction. The listing row is locked FOR UPDATE first, so concurrent
// bookings of the same listing serialize here regardless of which process
// they run in.
func (r *rentalRepository) createGuarded(ctx context.Context, rt *domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var listingID int32
	err = tx.QueryRowContext(ctx, `SELECT id FROM listings WHERE id = $1 FOR UPDATE`, rt.ListingID).Scan(&listingID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrListingNotFound
	}
	if err != nil {
		return err
	}

	var overlaps bool
	if err := tx.QueryRowContext(ctx, overlapQuery, rt.ListingID, rt.StartDate, rt.EndDate).Scan(&overlaps); err != nil {
		return err
	}
	if overlaps {
		return &domain.ConflictError{ListingID: rt.ListingID, StartDate: rt.StartDate, EndDate: rt.EndDate}
	}

	query := `INSERT INTO rentals (listing_id, renter_id, start_date, end_date, total_amount_cents,
	          pickup_location, dropoff_location, payment_id, idempotency_key, status, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	err = tx.QueryRowContext(ctx, query,
		rt.ListingID, rt.RenterID, rt.StartDate, rt.EndDate, rt.TotalAmountCents,
		rt.PickupLocation, rt.DropoffLocation, rt.PaymentID, rt.IdempotencyKey, rt.Status, time.Now(),
	).Scan(&rt.ID)
	if err != nil {
		return err
	}

	return tx.Commit()
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT id, listing_id, renter_id, start_date, end_date, total_amount_cents,
	          pickup_location, dropoff_location, payment_id, idempotency_key, status, created_on
	          FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID, &rt.ListingID, &rt.RenterID, &rt.StartDate, &rt.EndDate, &rt.TotalAmountCents,
		&rt.PickupLocation, &rt.DropoffLocation, &rt.PaymentID, &rt.IdempotencyKey, &rt.Status, &rt.CreatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) ListByRenter(ctx context.Context, renterID string) ([]domain.RentalWithListing, error) {
	query := `SELECT r.id, r.listing_id, r.renter_id, r.start_date, r.end_date, r.total_amount_cents,
	          r.pickup_location, r.dropoff_location, r.payment_id, r.status, r.created_on,
	          l.id, l.title, l.item_type, l.size, l.condition, l.wash_instructions,
	          l.price_per_day_cents, l.rental_type, l.available_from, l.available_to, l.image_url
	          FROM rentals r
	          JOIN listings l ON l.id = r.listing_id
	          WHERE r.renter_id = $1
	          ORDER BY r.created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, renterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.RentalWithListing
	for rows.Next() {
		var rwl domain.RentalWithListing
		if err := rows.Scan(
			&rwl.ID, &rwl.ListingID, &rwl.RenterID, &rwl.StartDate, &rwl.EndDate, &rwl.TotalAmountCents,
			&rwl.PickupLocation, &rwl.DropoffLocation, &rwl.PaymentID, &rwl.Status, &rwl.CreatedOn,
			&rwl.Listing.ID, &rwl.Listing.Title, &rwl.Listing.ItemType, &rwl.Listing.Size,
			&rwl.Listing.Condition, &rwl.Listing.WashInstructions, &rwl.Listing.PricePerDayCents,
			&rwl.Listing.RentalType, &rwl.Listing.AvailableFrom, &rwl.Listing.AvailableTo,
			&rwl.Listing.ImageURL,
		); err != nil {
			return nil, err
		}
		rentals = append(rentals, rwl)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) ExpireStalePending(ctx context.Context, cutoff string) (int64, error) {
	query := `UPDATE rentals SET status = $1 WHERE status = $2 AND created_on < $3`
	res, err := r.db.ExecContext(ctx, query, domain.RentalStatusFailed, domain.RentalStatusPending, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
