package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dressrent-backend/internal/domain"
	"dressrent-backend/internal/repository/memory"
)

func TestCustomerService_Validation(t *testing.T) {
	store := memory.NewStore()
	svc := NewCustomerService(store.CustomerRepository, store.RentalRepository)
	ctx := context.Background()

	cases := []domain.Customer{
		{Phone: "0901", Address: "Huế"},
		{Name: "Mai", Address: "Huế"},
		{Name: "Mai", Phone: "0901"},
	}
	for _, c := range cases {
		_, err := svc.AddCustomer(ctx, &c)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}

	created, err := svc.AddCustomer(ctx, &domain.Customer{Name: "Mai", Phone: "0901", Address: "Huế"})
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)
}

func TestCustomerService_DeleteGuard(t *testing.T) {
	store := memory.NewStore()
	svc := NewCustomerService(store.CustomerRepository, store.RentalRepository)
	ctx := context.Background()

	customer := &domain.Customer{Name: "Mai", Phone: "0901", Address: "Huế"}
	require.NoError(t, store.CustomerRepository.Create(ctx, customer))

	returnedAt := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	rental := &domain.Rental{
		CustomerID: customer.ID,
		Items:      []domain.RentalItem{{ItemID: 1, Quantity: 1}},
		RentalDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		DueDate:    time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC),
		ReturnDate: &returnedAt,
	}
	require.NoError(t, store.RentalRepository.Create(ctx, rental))

	t.Run("RefusedWithHistory", func(t *testing.T) {
		// A returned rental still blocks deletion; history counts, not
		// just the active set.
		err := svc.DeleteCustomer(ctx, customer.ID)
		assert.ErrorIs(t, err, domain.ErrCustomerHasRentals)

		still, err := store.CustomerRepository.GetByID(ctx, customer.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Mai", still.Name)
	})

	t.Run("AllowedAfterHistoryRemoved", func(t *testing.T) {
		require.NoError(t, store.RentalRepository.Delete(ctx, rental.ID))

		err := svc.DeleteCustomer(ctx, customer.ID)
		assert.NoError(t, err)

		_, err = store.CustomerRepository.GetByID(ctx, customer.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
