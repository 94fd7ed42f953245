package postgres

import (
	"database/sql"

	"closetshare-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.ListingRepository
	repository.RentalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		ListingRepository: NewListingRepository(db),
		RentalRepository:  NewRentalRepository(db),
	}
}
