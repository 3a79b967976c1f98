package domain

// ClothingItem is a rentable catalog entry. Quantity is the total number of
// physical units the shop owns; how many are out at any moment is derived
// from the active rentals, never stored here.
type ClothingItem struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Size        string `json:"size"`
	RentalPrice int64  `json:"rental_price"` // VND per day, whole units
	ImageURL    string `json:"image_url"`
	Quantity    int    `json:"quantity"`
}
