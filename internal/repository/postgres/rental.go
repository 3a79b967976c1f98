package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"dressrent-backend/internal/domain"
	"dressrent-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalColumns = `id, customer_id, items, rental_date, due_date, return_date, total_price, discount_percent, notes`

func (r *rentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	items, err := json.Marshal(rental.Items)
	if err != nil {
		return err
	}
	query := `INSERT INTO rentals (customer_id, items, rental_date, due_date, return_date, total_price, discount_percent, notes)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rental.CustomerID, items, rental.RentalDate, rental.DueDate, rental.ReturnDate, rental.TotalPrice, rental.DiscountPercent, rental.Notes).Scan(&rental.ID)
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE id = $1`, id)
	rental, err := scanRental(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rental, nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	return r.list(ctx, `SELECT `+rentalColumns+` FROM rentals ORDER BY id`)
}

func (r *rentalRepository) ListActive(ctx context.Context) ([]domain.Rental, error) {
	return r.list(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE return_date IS NULL ORDER BY id`)
}

func (r *rentalRepository) list(ctx context.Context, query string, args ...interface{}) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, err
		}
		rentals = append(rentals, *rental)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) Update(ctx context.Context, rental *domain.Rental) error {
	items, err := json.Marshal(rental.Items)
	if err != nil {
		return err
	}
	query := `UPDATE rentals SET customer_id=$1, items=$2, rental_date=$3, due_date=$4, return_date=$5, total_price=$6, discount_percent=$7, notes=$8 WHERE id=$9`
	_, err = r.db.ExecContext(ctx, query, rental.CustomerID, items, rental.RentalDate, rental.DueDate, rental.ReturnDate, rental.TotalPrice, rental.DiscountPercent, rental.Notes, rental.ID)
	return err
}

func (r *rentalRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	return err
}

func (r *rentalRepository) CountByCustomer(ctx context.Context, customerID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals WHERE customer_id = $1`, customerID).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	rental := &domain.Rental{}
	var items []byte
	err := row.Scan(&rental.ID, &rental.CustomerID, &items, &rental.RentalDate, &rental.DueDate, &rental.ReturnDate, &rental.TotalPrice, &rental.DiscountPercent, &rental.Notes)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &rental.Items); err != nil {
		return nil, err
	}
	return rental, nil
}
