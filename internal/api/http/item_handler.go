package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"dressrent-backend/internal/domain"
	"dressrent-backend/internal/service"
)

type ItemHandler struct {
	inventory service.InventoryService
}

func NewItemHandler(inventory service.InventoryService) *ItemHandler {
	return &ItemHandler{inventory: inventory}
}

type itemRequest struct {
	Name        string `json:"name"`
	Size        string `json:"size"`
	RentalPrice int64  `json:"rental_price"`
	ImageURL    string `json:"image_url"`
	Quantity    int    `json:"quantity"`
}

type availabilityResponse struct {
	ItemID    int64 `json:"item_id"`
	Quantity  int   `json:"quantity"`
	Rented    int   `json:"rented"`
	Available int   `json:"available"`
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	item := &domain.ClothingItem{
		Name:        req.Name,
		Size:        req.Size,
		RentalPrice: req.RentalPrice,
		ImageURL:    req.ImageURL,
		Quantity:    req.Quantity,
	}
	created, err := h.inventory.AddItem(r.Context(), item)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	item, err := h.inventory.GetItem(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventory.ListItems(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []domain.ClothingItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	var req itemRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	item := &domain.ClothingItem{
		ID:          id,
		Name:        req.Name,
		Size:        req.Size,
		RentalPrice: req.RentalPrice,
		ImageURL:    req.ImageURL,
		Quantity:    req.Quantity,
	}
	if err := h.inventory.UpdateItem(r.Context(), item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	if err := h.inventory.DeleteItem(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *ItemHandler) Availability(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	item, err := h.inventory.GetItem(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	counts, err := h.inventory.RentedCounts(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, availabilityResponse{
		ItemID:    id,
		Quantity:  item.Quantity,
		Rented:    counts[id],
		Available: item.Quantity - counts[id],
	})
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
}
