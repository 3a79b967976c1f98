package postgres

import (
	"context"
	"database/sql"
	"errors"

	"dressrent-backend/internal/domain"
	"dressrent-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	query := `INSERT INTO customers (name, phone, address) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, customer.Name, customer.Phone, customer.Address).Scan(&customer.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	customer := &domain.Customer{}
	query := `SELECT id, name, phone, address FROM customers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&customer.ID, &customer.Name, &customer.Phone, &customer.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return customer, nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT id, name, phone, address FROM customers ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var customer domain.Customer
		if err := rows.Scan(&customer.ID, &customer.Name, &customer.Phone, &customer.Address); err != nil {
			return nil, err
		}
		customers = append(customers, customer)
	}
	return customers, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	query := `UPDATE customers SET name=$1, phone=$2, address=$3 WHERE id=$4`
	_, err := r.db.ExecContext(ctx, query, customer.Name, customer.Phone, customer.Address, customer.ID)
	return err
}

func (r *customerRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	return err
}
