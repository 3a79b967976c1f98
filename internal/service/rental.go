package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dressrent-backend/internal/domain"
	"dressrent-backend/internal/logger"
	"dressrent-backend/internal/repository"
	"dressrent-backend/internal/utils"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	itemRepo     repository.ItemRepository
	customerRepo repository.CustomerRepository
	now          func() time.Time
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	itemRepo repository.ItemRepository,
	customerRepo repository.CustomerRepository,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
		now:          time.Now,
	}
}

func (s *rentalService) Checkout(ctx context.Context, in CheckoutInput) (*domain.Rental, error) {
	if _, err := s.customerRepo.GetByID(ctx, in.CustomerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: customer %d does not exist", domain.ErrValidation, in.CustomerID)
		}
		return nil, err
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: a rental needs at least one line item", domain.ErrValidation)
	}
	for _, line := range in.Items {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity for item %d must be at least 1", domain.ErrValidation, line.ItemID)
		}
		if _, err := s.itemRepo.GetByID(ctx, line.ItemID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("%w: item %d does not exist", domain.ErrValidation, line.ItemID)
			}
			return nil, err
		}
	}
	if in.RentalDate.IsZero() || in.DueDate.IsZero() {
		return nil, fmt.Errorf("%w: rental date and due date are required", domain.ErrValidation)
	}
	if in.DueDate.Before(in.RentalDate) {
		return nil, fmt.Errorf("%w: due date must not be before the rental date", domain.ErrValidation)
	}
	if in.DiscountPercent < 0 || in.DiscountPercent > 100 {
		return nil, fmt.Errorf("%w: discount percent must be between 0 and 100", domain.ErrValidation)
	}

	// Availability is not re-checked here. The boundary guards against
	// over-allocation before submitting; the core accepts what it is given
	// and lets availableCount go negative if the data was wrong.
	rental := &domain.Rental{
		CustomerID:      in.CustomerID,
		Items:           in.Items,
		RentalDate:      in.RentalDate,
		DueDate:         in.DueDate,
		DiscountPercent: in.DiscountPercent,
		Notes:           in.Notes,
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental checked out", "rental_id", rental.ID, "customer_id", rental.CustomerID, "lines", len(rental.Items))
	return rental, nil
}

func (s *rentalService) Return(ctx context.Context, id int64) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rental.ReturnDate != nil {
		// Already outside the active scope; returning again must not
		// re-trigger pricing.
		return nil, domain.ErrNotFound
	}

	// Daily rate is looked up from the current catalog, not a check-out
	// snapshot: editing an item's price retroactively changes what a
	// pending rental will cost. Items deleted since check-out contribute
	// nothing.
	var dailyRate int64
	for _, line := range rental.Items {
		item, err := s.itemRepo.GetByID(ctx, line.ItemID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}
		dailyRate += item.RentalPrice * int64(line.Quantity)
	}

	now := s.now()
	charge := utils.CalculateCharge(rental.RentalDate, now, dailyRate, rental.DiscountPercent)

	rental.ReturnDate = &now
	rental.TotalPrice = &charge.TotalPrice
	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}

	logger.Info("Rental returned",
		"rental_id", rental.ID,
		"rental_days", charge.RentalDays,
		"daily_rate", charge.DailyRate,
		"discount_percent", rental.DiscountPercent,
		"total_price", charge.TotalPrice)
	return rental, nil
}

func (s *rentalService) GetRental(ctx context.Context, id int64) (*domain.Rental, error) {
	return s.rentalRepo.GetByID(ctx, id)
}

func (s *rentalService) ListRentals(ctx context.Context, status domain.RentalStatus) ([]domain.Rental, error) {
	if status == domain.RentalStatusActive {
		return s.rentalRepo.ListActive(ctx)
	}
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return rentals, nil
	}
	filtered := make([]domain.Rental, 0, len(rentals))
	for _, rental := range rentals {
		if rental.Status() == status {
			filtered = append(filtered, rental)
		}
	}
	return filtered, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, id int64) error {
	// No inventory bookkeeping to undo: availability is always computed
	// from the live active set, so removing a record simply removes it
	// from future sums.
	return s.rentalRepo.Delete(ctx, id)
}
