package memory

import (
	"context"
	"sync"

	"dressrent-backend/internal/domain"
	"dressrent-backend/internal/repository"
)

// Store keeps all three collections in process memory. This is the default
// backend: state lives for the lifetime of the process and a restart reseeds
// it. Ids are assigned from per-collection counters and are unique for the
// store's lifetime, including across deletes.
type Store struct {
	ItemRepository     repository.ItemRepository
	CustomerRepository repository.CustomerRepository
	RentalRepository   repository.RentalRepository

	data *collections
}

type collections struct {
	mu             sync.RWMutex
	items          []domain.ClothingItem
	customers      []domain.Customer
	rentals        []domain.Rental
	nextItemID     int64
	nextCustomerID int64
	nextRentalID   int64
}

func NewStore() *Store {
	d := &collections{
		nextItemID:     1,
		nextCustomerID: 1,
		nextRentalID:   1,
	}
	return &Store{
		ItemRepository:     &itemRepository{d},
		CustomerRepository: &customerRepository{d},
		RentalRepository:   &rentalRepository{d},
		data:               d,
	}
}

// Reset drops every collection. Id counters keep running so ids are never
// reissued within a process lifetime.
func (s *Store) Reset(ctx context.Context) error {
	s.data.mu.Lock()
	defer s.data.mu.Unlock()
	s.data.items = nil
	s.data.customers = nil
	s.data.rentals = nil
	return nil
}

type itemRepository struct {
	d *collections
}

func (r *itemRepository) Create(ctx context.Context, item *domain.ClothingItem) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	item.ID = r.d.nextItemID
	r.d.nextItemID++
	r.d.items = append(r.d.items, *item)
	return nil
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*domain.ClothingItem, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	for i := range r.d.items {
		if r.d.items[i].ID == id {
			item := r.d.items[i]
			return &item, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *itemRepository) List(ctx context.Context) ([]domain.ClothingItem, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	items := make([]domain.ClothingItem, len(r.d.items))
	copy(items, r.d.items)
	return items, nil
}

func (r *itemRepository) Update(ctx context.Context, item *domain.ClothingItem) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for i := range r.d.items {
		if r.d.items[i].ID == item.ID {
			r.d.items[i] = *item
			return nil
		}
	}
	// Unknown id: no-op by contract.
	return nil
}

func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for i := range r.d.items {
		if r.d.items[i].ID == id {
			r.d.items = append(r.d.items[:i], r.d.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type customerRepository struct {
	d *collections
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	customer.ID = r.d.nextCustomerID
	r.d.nextCustomerID++
	r.d.customers = append(r.d.customers, *customer)
	return nil
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	for i := range r.d.customers {
		if r.d.customers[i].ID == id {
			customer := r.d.customers[i]
			return &customer, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	customers := make([]domain.Customer, len(r.d.customers))
	copy(customers, r.d.customers)
	return customers, nil
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for i := range r.d.customers {
		if r.d.customers[i].ID == customer.ID {
			r.d.customers[i] = *customer
			return nil
		}
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for i := range r.d.customers {
		if r.d.customers[i].ID == id {
			r.d.customers = append(r.d.customers[:i], r.d.customers[i+1:]...)
			return nil
		}
	}
	return nil
}

type rentalRepository struct {
	d *collections
}

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	rental.ID = r.d.nextRentalID
	r.d.nextRentalID++
	r.d.rentals = append(r.d.rentals, cloneRental(rental))
	return nil
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	for i := range r.d.rentals {
		if r.d.rentals[i].ID == id {
			rental := cloneRental(&r.d.rentals[i])
			return &rental, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	rentals := make([]domain.Rental, 0, len(r.d.rentals))
	for i := range r.d.rentals {
		rentals = append(rentals, cloneRental(&r.d.rentals[i]))
	}
	return rentals, nil
}

func (r *rentalRepository) ListActive(ctx context.Context) ([]domain.Rental, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	var rentals []domain.Rental
	for i := range r.d.rentals {
		if r.d.rentals[i].ReturnDate == nil {
			rentals = append(rentals, cloneRental(&r.d.rentals[i]))
		}
	}
	return rentals, nil
}

func (r *rentalRepository) Update(ctx context.Context, rental *domain.Rental) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for i := range r.d.rentals {
		if r.d.rentals[i].ID == rental.ID {
			r.d.rentals[i] = cloneRental(rental)
			return nil
		}
	}
	return nil
}

func (r *rentalRepository) Delete(ctx context.Context, id int64) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()
	for i := range r.d.rentals {
		if r.d.rentals[i].ID == id {
			r.d.rentals = append(r.d.rentals[:i], r.d.rentals[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *rentalRepository) CountByCustomer(ctx context.Context, customerID int64) (int, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()
	count := 0
	for i := range r.d.rentals {
		if r.d.rentals[i].CustomerID == customerID {
			count++
		}
	}
	return count, nil
}

// cloneRental deep-copies a rental so the store and its callers never share
// line-item slices or date pointers.
func cloneRental(r *domain.Rental) domain.Rental {
	c := *r
	c.Items = make([]domain.RentalItem, len(r.Items))
	copy(c.Items, r.Items)
	if r.ReturnDate != nil {
		d := *r.ReturnDate
		c.ReturnDate = &d
	}
	if r.TotalPrice != nil {
		p := *r.TotalPrice
		c.TotalPrice = &p
	}
	return c
}
