package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"dressrent-backend/internal/domain"
	"dressrent-backend/internal/service"
)

// RentalHandler carries the availability guard for check-out. The rental core
// accepts any quantities; this boundary is where over-allocation is refused.
type RentalHandler struct {
	rentals   service.RentalService
	inventory service.InventoryService
}

func NewRentalHandler(rentals service.RentalService, inventory service.InventoryService) *RentalHandler {
	return &RentalHandler{rentals: rentals, inventory: inventory}
}

type checkoutRequest struct {
	CustomerID      int64               `json:"customer_id"`
	Items           []domain.RentalItem `json:"items"`
	RentalDate      string              `json:"rental_date"`
	DueDate         string              `json:"due_date"`
	DiscountPercent float64             `json:"discount_percent"`
	Notes           string              `json:"notes"`
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func (h *RentalHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeBody(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	rentalDate, err := parseDate(req.RentalDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid rental_date"})
		return
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid due_date"})
		return
	}

	for _, line := range req.Items {
		available, err := h.inventory.AvailableCount(r.Context(), line.ItemID)
		if err != nil {
			writeError(w, err)
			return
		}
		if line.Quantity > available {
			writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
				Error: fmt.Sprintf("item %d: requested %d, only %d available", line.ItemID, line.Quantity, available),
			})
			return
		}
	}

	rental, err := h.rentals.Checkout(r.Context(), service.CheckoutInput{
		CustomerID:      req.CustomerID,
		Items:           req.Items,
		RentalDate:      rentalDate,
		DueDate:         dueDate,
		DiscountPercent: req.DiscountPercent,
		Notes:           req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) Return(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	rental, err := h.rentals.Return(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	rental, err := h.rentals.GetRental(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	var status domain.RentalStatus
	switch strings.ToUpper(r.URL.Query().Get("status")) {
	case "":
	case string(domain.RentalStatusActive):
		status = domain.RentalStatusActive
	case string(domain.RentalStatusReturned):
		status = domain.RentalStatusReturned
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid status filter"})
		return
	}

	rentals, err := h.rentals.ListRentals(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}
	if rentals == nil {
		rentals = []domain.Rental{}
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return
	}
	if err := h.rentals.DeleteRental(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
