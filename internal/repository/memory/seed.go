package memory

import (
	"context"
	"math"
	"math/rand"
	"time"

	"dressrent-backend/internal/domain"
)

// SeedDemoData loads the demo catalog, the customer list and a six-month
// rental history into an empty store. Called on startup when demo seeding is
// enabled; the data is regenerated on every reload.
func SeedDemoData(s *Store) error {
	ctx := context.Background()

	items := []domain.ClothingItem{
		{Name: "Váy Dạ Hội", Size: "M", RentalPrice: 50000, ImageURL: "https://picsum.photos/seed/gown/400/600", Quantity: 5},
		{Name: "Áo Tuxedo", Size: "L", RentalPrice: 75000, ImageURL: "https://picsum.photos/seed/tuxedo/400/600", Quantity: 3},
		{Name: "Váy Cocktail", Size: "S", RentalPrice: 40000, ImageURL: "https://picsum.photos/seed/cocktail/400/600", Quantity: 7},
		{Name: "Váy Mùa Hè", Size: "M", RentalPrice: 30000, ImageURL: "https://picsum.photos/seed/summer/400/600", Quantity: 10},
		{Name: "Bộ Suit Công Sở", Size: "XL", RentalPrice: 65000, ImageURL: "https://picsum.photos/seed/suit/400/600", Quantity: 4},
		{Name: "Áo Khoác Vintage", Size: "L", RentalPrice: 45000, ImageURL: "https://picsum.photos/seed/jacket/400/600", Quantity: 6},
	}
	for i := range items {
		if err := s.ItemRepository.Create(ctx, &items[i]); err != nil {
			return err
		}
	}

	customers := []domain.Customer{
		{Name: "Nguyễn Thị An", Phone: "090-111-2222", Address: "123 Đường Lê Lợi, Quận 1, TP. HCM"},
		{Name: "Trần Văn Bình", Phone: "091-333-4444", Address: "456 Đường Nguyễn Huệ, Quận 3, TP. HCM"},
		{Name: "Lê Thị Cẩm", Phone: "098-555-6666", Address: "789 Đường Pasteur, Quận 1, TP. Đà Nẵng"},
		{Name: "Phạm Văn Dũng", Phone: "093-777-8888", Address: "101 Đường Võ Văn Tần, Quận 3, TP. HCM"},
		{Name: "Hoàng Thị Mai", Phone: "094-999-0000", Address: "212 Đường Lý Thường Kiệt, Quận 10, TP. Hà Nội"},
		{Name: "Vũ Minh Tuấn", Phone: "097-123-4567", Address: "333 Đường Trần Hưng Đạo, Quận 5, TP. HCM"},
		{Name: "Đặng Thu Hà", Phone: "096-888-9999", Address: "555 Đường Hai Bà Trưng, Quận 1, TP. Hải Phòng"},
		{Name: "Bùi Anh Khoa", Phone: "092-222-3333", Address: "444 Đường Nguyễn Văn Cừ, Quận Long Biên, TP. Hà Nội"},
	}
	for i := range customers {
		if err := s.CustomerRepository.Create(ctx, &customers[i]); err != nil {
			return err
		}
	}

	now := time.Now()
	daysAgo := func(d int) time.Time { return now.AddDate(0, 0, -d) }
	daysFromNow := func(d int) time.Time { return now.AddDate(0, 0, d) }
	price := func(p int64) *int64 { return &p }
	date := func(t time.Time) *time.Time { return &t }

	rentals := []domain.Rental{
		// Active rentals, no total price yet.
		{CustomerID: customers[0].ID, Items: []domain.RentalItem{{ItemID: items[0].ID, Quantity: 1}},
			RentalDate: daysAgo(5), DueDate: daysFromNow(2), Notes: "Khách hàng yêu cầu giao hàng tận nơi."},
		{CustomerID: customers[1].ID, Items: []domain.RentalItem{{ItemID: items[1].ID, Quantity: 1}, {ItemID: items[4].ID, Quantity: 1}},
			RentalDate: daysAgo(2), DueDate: daysFromNow(5)},

		// Completed rentals with calculated prices.
		{CustomerID: customers[2].ID, Items: []domain.RentalItem{{ItemID: items[2].ID, Quantity: 1}},
			RentalDate: daysAgo(10), DueDate: daysAgo(3), ReturnDate: date(daysAgo(2)), TotalPrice: price(320000),
			Notes: "Trả đồ có vết bẩn nhỏ, đã xử lý."},
		{CustomerID: customers[0].ID, Items: []domain.RentalItem{{ItemID: items[3].ID, Quantity: 1}},
			RentalDate: daysAgo(40), DueDate: daysAgo(33), ReturnDate: date(daysAgo(32)), TotalPrice: price(240000)},
		{CustomerID: customers[1].ID, Items: []domain.RentalItem{{ItemID: items[5].ID, Quantity: 1}},
			RentalDate: daysAgo(80), DueDate: daysAgo(73), ReturnDate: date(daysAgo(71)), TotalPrice: price(405000)},
		{CustomerID: customers[2].ID, Items: []domain.RentalItem{{ItemID: items[0].ID, Quantity: 1}},
			RentalDate: daysAgo(35), DueDate: daysAgo(28), ReturnDate: date(daysAgo(28)), TotalPrice: price(350000),
			Notes: "Khách hàng quen, giảm giá 10% (đã áp dụng)."},
	}
	for i := range rentals {
		if err := s.RentalRepository.Create(ctx, &rentals[i]); err != nil {
			return err
		}
	}

	return seedHistory(ctx, s, items, customers, now)
}

// seedHistory generates roughly fifty random rentals spread over the last six
// months so the revenue and spending reports have something to show.
func seedHistory(ctx context.Context, s *Store, items []domain.ClothingItem, customers []domain.Customer, now time.Time) error {
	rng := rand.New(rand.NewSource(now.UnixNano()))

	for i := 0; i < 50; i++ {
		customer := customers[rng.Intn(len(customers))]

		numItems := 1 + rng.Intn(2)
		pool := make([]domain.ClothingItem, len(items))
		copy(pool, items)
		var lines []domain.RentalItem
		var dailyRate int64
		for len(lines) < numItems && len(pool) > 0 {
			j := rng.Intn(len(pool))
			lines = append(lines, domain.RentalItem{ItemID: pool[j].ID, Quantity: 1})
			dailyRate += pool[j].RentalPrice
			pool = append(pool[:j], pool[j+1:]...)
		}

		startedDaysAgo := 1 + rng.Intn(180)
		rentalDate := now.AddDate(0, 0, -startedDaysAgo)
		dueDate := rentalDate.AddDate(0, 0, 5+rng.Intn(11))

		rental := domain.Rental{
			CustomerID: customer.ID,
			Items:      lines,
			RentalDate: rentalDate,
			DueDate:    dueDate,
		}

		// Rentals started more than ten days ago are assumed completed.
		if startedDaysAgo > 10 {
			returnDate := dueDate.AddDate(0, 0, rng.Intn(7)-2)
			if returnDate.After(now) {
				continue
			}
			days := int64(math.Ceil(returnDate.Sub(rentalDate).Hours() / 24))
			if days < 1 {
				days = 1
			}
			total := (days * dailyRate / 1000) * 1000
			rental.ReturnDate = &returnDate
			rental.TotalPrice = &total
		}

		if err := s.RentalRepository.Create(ctx, &rental); err != nil {
			return err
		}
	}
	return nil
}
