package service

import (
	"context"
	"time"

	"dressrent-backend/internal/domain"
)

type InventoryService interface {
	AddItem(ctx context.Context, item *domain.ClothingItem) (*domain.ClothingItem, error)
	GetItem(ctx context.Context, id int64) (*domain.ClothingItem, error)
	ListItems(ctx context.Context) ([]domain.ClothingItem, error)
	UpdateItem(ctx context.Context, item *domain.ClothingItem) error
	DeleteItem(ctx context.Context, id int64) error

	// AvailableCount is quantity owned minus units out on active rentals,
	// recomputed from the live rental set on every call. The result may be
	// negative when rentals over-commit an item; callers decide how to
	// surface that.
	AvailableCount(ctx context.Context, itemID int64) (int, error)
	RentedCounts(ctx context.Context) (map[int64]int, error)
}

type CustomerService interface {
	AddCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error

	// DeleteCustomer refuses with domain.ErrCustomerHasRentals when any
	// rental, active or returned, references the customer.
	DeleteCustomer(ctx context.Context, id int64) error
}

// CheckoutInput is a validated check-out request. Quantities against current
// availability are the caller's concern; the rental core does not block
// over-allocation.
type CheckoutInput struct {
	CustomerID      int64
	Items           []domain.RentalItem
	RentalDate      time.Time
	DueDate         time.Time
	DiscountPercent float64
	Notes           string
}

type RentalService interface {
	Checkout(ctx context.Context, in CheckoutInput) (*domain.Rental, error)

	// Return transitions an active rental to returned, pricing it at the
	// current catalog prices. Unknown ids and already-returned rentals
	// yield domain.ErrNotFound; nothing is re-priced.
	Return(ctx context.Context, id int64) (*domain.Rental, error)

	GetRental(ctx context.Context, id int64) (*domain.Rental, error)
	ListRentals(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error)
	DeleteRental(ctx context.Context, id int64) error
}

type Granularity string

const (
	GranularityWeek  Granularity = "week"
	GranularityMonth Granularity = "month"
	GranularityYear  Granularity = "year"
)

type PopularItem struct {
	Item        domain.ClothingItem `json:"item"`
	RentedCount int                 `json:"rented_count"`
}

type TopSpender struct {
	Customer   domain.Customer `json:"customer"`
	TotalSpent int64           `json:"total_spent"`
}

type RevenueBucket struct {
	Label   string `json:"label"`
	Revenue int64  `json:"revenue"`
}

type ReportService interface {
	OverdueRentals(ctx context.Context) ([]domain.Rental, error)
	PopularItems(ctx context.Context, limit int) ([]PopularItem, error)
	TopSpenders(ctx context.Context, year, limit int) ([]TopSpender, error)
	RevenueBuckets(ctx context.Context, granularity Granularity) ([]RevenueBucket, error)
}

// OverdueEntry is one line of the overdue digest mail.
type OverdueEntry struct {
	CustomerName string
	ItemSummary  string
	DueDate      time.Time
}

type EmailService interface {
	SendOverdueDigest(ctx context.Context, toEmail string, entries []OverdueEntry) error
}

type AdminService interface {
	// Login checks the shared admin secret and returns a session token.
	Login(ctx context.Context, password string) (string, error)

	// ResetData wipes all three collections.
	ResetData(ctx context.Context) error
}
