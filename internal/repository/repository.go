package repository

import (
	"context"

	"dressrent-backend/internal/domain"
)

// ItemRepository owns the clothing catalog. Create assigns the id and fills
// it in on the passed entity. Update is a silent no-op when the id is
// unknown; it never changes the id.
type ItemRepository interface {
	Create(ctx context.Context, item *domain.ClothingItem) error
	GetByID(ctx context.Context, id int64) (*domain.ClothingItem, error)
	List(ctx context.Context) ([]domain.ClothingItem, error)
	Update(ctx context.Context, item *domain.ClothingItem) error
	Delete(ctx context.Context, id int64) error
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int64) error
}

// RentalRepository owns the rental records. List and ListActive return
// rentals in insertion order; the reporting layer relies on that order for
// tie-breaking.
type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	List(ctx context.Context) ([]domain.Rental, error)
	ListActive(ctx context.Context) ([]domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	Delete(ctx context.Context, id int64) error
	CountByCustomer(ctx context.Context, customerID int64) (int, error)
}

// Resetter wipes every collection. Used by the admin reset gate only.
type Resetter interface {
	Reset(ctx context.Context) error
}
