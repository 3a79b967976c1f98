package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dressrent-backend/internal/domain"
)

func TestStore_IDAssignment(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	first := &domain.ClothingItem{Name: "Váy", RentalPrice: 1000, Quantity: 1}
	second := &domain.ClothingItem{Name: "Áo", RentalPrice: 2000, Quantity: 2}
	require.NoError(t, store.ItemRepository.Create(ctx, first))
	require.NoError(t, store.ItemRepository.Create(ctx, second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)

	// Ids are never reissued, even after a delete.
	require.NoError(t, store.ItemRepository.Delete(ctx, second.ID))
	third := &domain.ClothingItem{Name: "Vest", RentalPrice: 3000, Quantity: 3}
	require.NoError(t, store.ItemRepository.Create(ctx, third))
	assert.Equal(t, int64(3), third.ID)
}

func TestStore_UpdateUnknownIDIsNoOp(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	err := store.ItemRepository.Update(ctx, &domain.ClothingItem{ID: 77, Name: "Ghost"})
	assert.NoError(t, err)

	items, err := store.ItemRepository.List(ctx)
	assert.NoError(t, err)
	assert.Empty(t, items)
}

func TestStore_ListKeepsInsertionOrder(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	for _, name := range []string{"Mai", "Linh", "Hùng"} {
		require.NoError(t, store.CustomerRepository.Create(ctx, &domain.Customer{Name: name, Phone: "0901", Address: "Huế"}))
	}

	customers, err := store.CustomerRepository.List(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 3)
	assert.Equal(t, "Mai", customers[0].Name)
	assert.Equal(t, "Linh", customers[1].Name)
	assert.Equal(t, "Hùng", customers[2].Name)
}

func TestStore_RentalIsolation(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	rental := &domain.Rental{
		CustomerID: 1,
		Items:      []domain.RentalItem{{ItemID: 1, Quantity: 2}},
		RentalDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:    time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.RentalRepository.Create(ctx, rental))

	// Mutating a fetched copy must not leak into the store.
	fetched, err := store.RentalRepository.GetByID(ctx, rental.ID)
	require.NoError(t, err)
	fetched.Items[0].Quantity = 99
	now := time.Now()
	fetched.ReturnDate = &now

	fresh, err := store.RentalRepository.GetByID(ctx, rental.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, fresh.Items[0].Quantity)
	assert.Nil(t, fresh.ReturnDate)
}

func TestStore_ListActive(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	returned := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.RentalRepository.Create(ctx, &domain.Rental{
		CustomerID: 1,
		RentalDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		DueDate:    time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC),
		ReturnDate: &returned,
	}))
	require.NoError(t, store.RentalRepository.Create(ctx, &domain.Rental{
		CustomerID: 2,
		RentalDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:    time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
	}))

	active, err := store.RentalRepository.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, int64(2), active[0].CustomerID)
}

func TestStore_CountByCustomer(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	returned := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	require.NoError(t, store.RentalRepository.Create(ctx, &domain.Rental{
		CustomerID: 5,
		RentalDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		DueDate:    time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC),
		ReturnDate: &returned,
	}))
	require.NoError(t, store.RentalRepository.Create(ctx, &domain.Rental{
		CustomerID: 5,
		RentalDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueDate:    time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
	}))

	count, err := store.RentalRepository.CountByCustomer(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = store.RentalRepository.CountByCustomer(ctx, 6)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestStore_Reset(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	item := &domain.ClothingItem{Name: "Váy", RentalPrice: 1000, Quantity: 1}
	require.NoError(t, store.ItemRepository.Create(ctx, item))
	require.NoError(t, store.Reset(ctx))

	items, err := store.ItemRepository.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)

	// Counters survive the reset.
	next := &domain.ClothingItem{Name: "Áo", RentalPrice: 2000, Quantity: 1}
	require.NoError(t, store.ItemRepository.Create(ctx, next))
	assert.Equal(t, int64(2), next.ID)
}

func TestSeedDemoData(t *testing.T) {
	store := NewStore()
	require.NoError(t, SeedDemoData(store))
	ctx := context.Background()

	items, err := store.ItemRepository.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, items)

	customers, err := store.CustomerRepository.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, customers)

	rentals, err := store.RentalRepository.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, rentals)

	// The seed must not fabricate half-returned rentals.
	for _, rental := range rentals {
		if rental.ReturnDate == nil {
			assert.Nil(t, rental.TotalPrice, "active rental %d has a settled price", rental.ID)
		} else {
			assert.NotNil(t, rental.TotalPrice, "returned rental %d is missing its price", rental.ID)
		}
	}
}
