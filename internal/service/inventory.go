package service

import (
	"context"
	"fmt"

	"dressrent-backend/internal/domain"
	"dressrent-backend/internal/repository"
)

type inventoryService struct {
	itemRepo   repository.ItemRepository
	rentalRepo repository.RentalRepository
}

func NewInventoryService(itemRepo repository.ItemRepository, rentalRepo repository.RentalRepository) InventoryService {
	return &inventoryService{
		itemRepo:   itemRepo,
		rentalRepo: rentalRepo,
	}
}

func validateItem(item *domain.ClothingItem) error {
	if item.Name == "" {
		return fmt.Errorf("%w: item name is required", domain.ErrValidation)
	}
	if item.RentalPrice < 0 {
		return fmt.Errorf("%w: rental price must not be negative", domain.ErrValidation)
	}
	if item.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", domain.ErrValidation)
	}
	return nil
}

func (s *inventoryService) AddItem(ctx context.Context, item *domain.ClothingItem) (*domain.ClothingItem, error) {
	if err := validateItem(item); err != nil {
		return nil, err
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) GetItem(ctx context.Context, id int64) (*domain.ClothingItem, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *inventoryService) ListItems(ctx context.Context) ([]domain.ClothingItem, error) {
	return s.itemRepo.List(ctx)
}

func (s *inventoryService) UpdateItem(ctx context.Context, item *domain.ClothingItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	return s.itemRepo.Update(ctx, item)
}

func (s *inventoryService) DeleteItem(ctx context.Context, id int64) error {
	return s.itemRepo.Delete(ctx, id)
}

func (s *inventoryService) AvailableCount(ctx context.Context, itemID int64) (int, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return 0, err
	}
	counts, err := s.RentedCounts(ctx)
	if err != nil {
		return 0, err
	}
	// Deliberately unclamped: a negative count is the honest signal of an
	// over-committed item.
	return item.Quantity - counts[itemID], nil
}

func (s *inventoryService) RentedCounts(ctx context.Context) (map[int64]int, error) {
	active, err := s.rentalRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[int64]int)
	for _, rental := range active {
		for _, line := range rental.Items {
			counts[line.ItemID] += line.Quantity
		}
	}
	return counts, nil
}
