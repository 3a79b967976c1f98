package postgres

import (
	"context"
	"database/sql"
	"errors"

	"dressrent-backend/internal/domain"
	"dressrent-backend/internal/repository"
)

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *domain.ClothingItem) error {
	query := `INSERT INTO clothing_items (name, size, rental_price, image_url, quantity)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, item.Name, item.Size, item.RentalPrice, item.ImageURL, item.Quantity).Scan(&item.ID)
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*domain.ClothingItem, error) {
	item := &domain.ClothingItem{}
	query := `SELECT id, name, size, rental_price, image_url, quantity FROM clothing_items WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Name, &item.Size, &item.RentalPrice, &item.ImageURL, &item.Quantity)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *itemRepository) List(ctx context.Context) ([]domain.ClothingItem, error) {
	query := `SELECT id, name, size, rental_price, image_url, quantity FROM clothing_items ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.ClothingItem
	for rows.Next() {
		var item domain.ClothingItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Size, &item.RentalPrice, &item.ImageURL, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *itemRepository) Update(ctx context.Context, item *domain.ClothingItem) error {
	query := `UPDATE clothing_items SET name=$1, size=$2, rental_price=$3, image_url=$4, quantity=$5 WHERE id=$6`
	_, err := r.db.ExecContext(ctx, query, item.Name, item.Size, item.RentalPrice, item.ImageURL, item.Quantity, item.ID)
	return err
}

func (r *itemRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM clothing_items WHERE id = $1`, id)
	return err
}
