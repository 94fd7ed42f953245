package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"closetshare-backend/internal/domain"
	"closetshare-backend/internal/repository"
)

type listingRepository struct {
	db *sql.DB
}

func NewListingRepository(db *sql.DB) repository.ListingRepository {
	return &listingRepository{db: db}
}

const listingColumns = `id, owner_id, title, item_type, size, condition, wash_instructions,
	price_per_day_cents, rental_type, available_from, available_to, image_url,
	phone_number, contact_email, created_on`

func (r *listingRepository) Create(ctx context.Context, l *domain.Listing) error {
	query := `INSERT INTO listings (owner_id, title, item_type, size, condition, wash_instructions,
	          price_per_day_cents, rental_type, available_from, available_to, image_url,
	          phone_number, contact_email, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		l.OwnerID, l.Title, l.ItemType, l.Size, l.Condition, l.WashInstructions,
		l.PricePerDayCents, l.RentalType, l.AvailableFrom, l.AvailableTo, l.ImageURL,
		l.PhoneNumber, l.ContactEmail, time.Now(),
	).Scan(&l.ID)
}

func (r *listingRepository) GetByID(ctx context.Context, id int32) (*domain.Listing, error) {
	l := &domain.Listing{}
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&l.ID, &l.OwnerID, &l.Title, &l.ItemType, &l.Size, &l.Condition, &l.WashInstructions,
		&l.PricePerDayCents, &l.RentalType, &l.AvailableFrom, &l.AvailableTo, &l.ImageURL,
		&l.PhoneNumber, &l.ContactEmail, &l.CreatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrListingNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *listingRepository) Search(ctx context.Context, query string) ([]domain.Listing, error) {
	sqlQuery := `SELECT ` + listingColumns + ` FROM listings`
	var args []interface{}
	if query != "" {
		sqlQuery += ` WHERE title ILIKE $1 OR size ILIKE $1 OR item_type ILIKE $1 OR condition ILIKE $1`
		args = append(args, "%"+query+"%")
	}
	sqlQuery += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []domain.Listing
	for rows.Next() {
		var l domain.Listing
		if err := rows.Scan(
			&l.ID, &l.OwnerID, &l.Title, &l.ItemType, &l.Size, &l.Condition, &l.WashInstructions,
			&l.PricePerDayCents, &l.RentalType, &l.AvailableFrom, &l.AvailableTo, &l.ImageURL,
			&l.PhoneNumber, &l.ContactEmail, &l.CreatedOn,
		); err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}
