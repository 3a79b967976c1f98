package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dressrent-backend/internal/domain"
)

func TestItemRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewItemRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO clothing_items`)).
		WithArgs("Váy Dạ Hội", "M", int64(50000), "https://example.com/gown.jpg", 5).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	item := &domain.ClothingItem{
		Name:        "Váy Dạ Hội",
		Size:        "M",
		RentalPrice: 50000,
		ImageURL:    "https://example.com/gown.jpg",
		Quantity:    5,
	}
	require.NoError(t, repo.Create(ctx, item))
	assert.Equal(t, int64(1), item.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewItemRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, size, rental_price, image_url, quantity FROM clothing_items WHERE id = $1`)).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestItemRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewItemRepository(db)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE clothing_items SET`)).
		WithArgs("Váy Dạ Hội", "M", int64(60000), "", 5, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Update(ctx, &domain.ClothingItem{ID: 1, Name: "Váy Dạ Hội", Size: "M", RentalPrice: 60000, Quantity: 5})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
