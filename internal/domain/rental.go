package domain

import "time"

type RentalStatus string

const (
	RentalStatusActive   RentalStatus = "ACTIVE"
	RentalStatusReturned RentalStatus = "RETURNED"
)

// RentalItem is one line of a rental: which catalog item and how many units.
type RentalItem struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

// Rental is a single check-out transaction. A rental is Active until its
// return is recorded; ReturnDate and TotalPrice are set exactly once, at
// return time, and never change afterwards.
type Rental struct {
	ID              int64        `json:"id"`
	CustomerID      int64        `json:"customer_id"`
	Items           []RentalItem `json:"items"`
	RentalDate      time.Time    `json:"rental_date"`
	DueDate         time.Time    `json:"due_date"`
	ReturnDate      *time.Time   `json:"return_date,omitempty"`
	TotalPrice      *int64       `json:"total_price,omitempty"` // VND, computed at return
	DiscountPercent float64      `json:"discount_percent,omitempty"`
	Notes           string       `json:"notes,omitempty"`
}

// Status derives the lifecycle state from the presence of a return date.
func (r *Rental) Status() RentalStatus {
	if r.ReturnDate == nil {
		return RentalStatusActive
	}
	return RentalStatusReturned
}

// IsOverdue reports whether an active rental is past its due date.
// Returned rentals are never overdue.
func (r *Rental) IsOverdue(now time.Time) bool {
	return r.ReturnDate == nil && now.After(r.DueDate)
}
