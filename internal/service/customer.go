package service

import (
	"context"
	"fmt"

	"dressrent-backend/internal/domain"
	"dressrent-backend/internal/logger"
	"dressrent-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	rentalRepo   repository.RentalRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository, rentalRepo repository.RentalRepository) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		rentalRepo:   rentalRepo,
	}
}

func validateCustomer(customer *domain.Customer) error {
	if customer.Name == "" {
		return fmt.Errorf("%w: customer name is required", domain.ErrValidation)
	}
	if customer.Phone == "" {
		return fmt.Errorf("%w: customer phone is required", domain.ErrValidation)
	}
	if customer.Address == "" {
		return fmt.Errorf("%w: customer address is required", domain.ErrValidation)
	}
	return nil
}

func (s *customerService) AddCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if err := validateCustomer(customer); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}

func (s *customerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	if err := validateCustomer(customer); err != nil {
		return err
	}
	return s.customerRepo.Update(ctx, customer)
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	count, err := s.rentalRepo.CountByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Debug("Refusing customer deletion", "customer_id", id, "rental_count", count)
		return domain.ErrCustomerHasRentals
	}
	return s.customerRepo.Delete(ctx, id)
}
