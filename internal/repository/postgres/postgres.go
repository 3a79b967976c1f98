package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"

	"dressrent-backend/internal/repository"
)

type Store struct {
	db *sql.DB
	repository.ItemRepository
	repository.CustomerRepository
	repository.RentalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		ItemRepository:     NewItemRepository(db),
		CustomerRepository: NewCustomerRepository(db),
		RentalRepository:   NewRentalRepository(db),
	}
}

// Reset wipes every table and restarts the id sequences.
func (s *Store) Reset(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `TRUNCATE rentals, customers, clothing_items RESTART IDENTITY`)
	return err
}
