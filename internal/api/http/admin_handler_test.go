package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dressrent-backend/internal/domain"
)

const testAdminPassword = "shop-secret"

func TestAdminLogin(t *testing.T) {
	_, router := newTestRouter(t)

	t.Run("WrongPassword", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/admin/login", map[string]string{"password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("CorrectPassword", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/admin/login", map[string]string{"password": testAdminPassword})
		assert.Equal(t, http.StatusOK, rec.Code)

		var body loginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Token)
	})
}

func TestAdminReset(t *testing.T) {
	store, router := newTestRouter(t)
	seedItemAndCustomer(t, store)

	t.Run("RequiresToken", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/admin/reset", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("WipesEverything", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/v1/admin/login", map[string]string{"password": testAdminPassword})
		require.Equal(t, http.StatusOK, rec.Code)
		var body loginResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reset", nil)
		req.Header.Set("Authorization", "Bearer "+body.Token)
		resetRec := httptest.NewRecorder()
		router.ServeHTTP(resetRec, req)
		assert.Equal(t, http.StatusNoContent, resetRec.Code)

		listRec := doJSON(t, router, http.MethodGet, "/api/v1/items", nil)
		assert.Equal(t, http.StatusOK, listRec.Code)
		var items []domain.ClothingItem
		require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &items))
		assert.Empty(t, items)
	})
}
