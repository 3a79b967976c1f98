package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"dressrent-backend/internal/domain"
	"dressrent-backend/internal/repository"
)

type reportService struct {
	itemRepo     repository.ItemRepository
	customerRepo repository.CustomerRepository
	rentalRepo   repository.RentalRepository
	now          func() time.Time
}

// NewReportService builds the read-only reporting projections. Everything is
// recomputed from the current collections on each call; nothing is cached
// across store mutations.
func NewReportService(
	itemRepo repository.ItemRepository,
	customerRepo repository.CustomerRepository,
	rentalRepo repository.RentalRepository,
) ReportService {
	return &reportService{
		itemRepo:     itemRepo,
		customerRepo: customerRepo,
		rentalRepo:   rentalRepo,
		now:          time.Now,
	}
}

func (s *reportService) OverdueRentals(ctx context.Context) ([]domain.Rental, error) {
	active, err := s.rentalRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	now := s.now()
	overdue := make([]domain.Rental, 0)
	for _, rental := range active {
		if rental.IsOverdue(now) {
			overdue = append(overdue, rental)
		}
	}
	return overdue, nil
}

func (s *reportService) PopularItems(ctx context.Context, limit int) ([]PopularItem, error) {
	items, err := s.itemRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.rentalRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[int64]int)
	for _, rental := range active {
		for _, line := range rental.Items {
			counts[line.ItemID] += line.Quantity
		}
	}

	ranked := make([]PopularItem, 0, len(items))
	for _, item := range items {
		ranked = append(ranked, PopularItem{Item: item, RentedCount: counts[item.ID]})
	}
	// Stable sort keeps catalog insertion order between equal counts.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RentedCount > ranked[j].RentedCount
	})

	result := make([]PopularItem, 0, limit)
	for _, entry := range ranked {
		if entry.RentedCount == 0 {
			continue
		}
		result = append(result, entry)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

func (s *reportService) TopSpenders(ctx context.Context, year, limit int) ([]TopSpender, error) {
	customers, err := s.customerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	// Spending counts returned rentals only, keyed by the year the rental
	// STARTED in, not when it came back.
	spending := make(map[int64]int64)
	for _, rental := range rentals {
		if rental.TotalPrice == nil || rental.RentalDate.Year() != year {
			continue
		}
		spending[rental.CustomerID] += *rental.TotalPrice
	}

	ranked := make([]TopSpender, 0, len(spending))
	for _, customer := range customers {
		if total, ok := spending[customer.ID]; ok {
			ranked = append(ranked, TopSpender{Customer: customer, TotalSpent: total})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSpent > ranked[j].TotalSpent
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

func (s *reportService) RevenueBuckets(ctx context.Context, granularity Granularity) ([]RevenueBucket, error) {
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	var refs []time.Time
	switch granularity {
	case GranularityWeek:
		for i := 11; i >= 0; i-- {
			refs = append(refs, now.AddDate(0, 0, -7*i))
		}
	case GranularityMonth:
		for i := 11; i >= 0; i-- {
			refs = append(refs, now.AddDate(0, -i, 0))
		}
	case GranularityYear:
		for i := 4; i >= 0; i-- {
			refs = append(refs, now.AddDate(-i, 0, 0))
		}
	default:
		return nil, fmt.Errorf("%w: unknown revenue granularity %q", domain.ErrValidation, granularity)
	}

	buckets := make([]RevenueBucket, len(refs))
	for i, ref := range refs {
		buckets[i] = RevenueBucket{Label: bucketLabel(granularity, ref)}
	}

	// Buckets are keyed by the rental's start date, and empty buckets stay
	// present with zero revenue.
	for _, rental := range rentals {
		if rental.TotalPrice == nil {
			continue
		}
		for i, ref := range refs {
			if sameBucket(granularity, rental.RentalDate, ref) {
				buckets[i].Revenue += *rental.TotalPrice
				break
			}
		}
	}
	return buckets, nil
}

func sameBucket(granularity Granularity, a, b time.Time) bool {
	switch granularity {
	case GranularityWeek:
		ay, aw := a.ISOWeek()
		by, bw := b.ISOWeek()
		return ay == by && aw == bw
	case GranularityMonth:
		return a.Year() == b.Year() && a.Month() == b.Month()
	default:
		return a.Year() == b.Year()
	}
}

func bucketLabel(granularity Granularity, ref time.Time) string {
	switch granularity {
	case GranularityWeek:
		year, week := ref.ISOWeek()
		return fmt.Sprintf("W%02d %d", week, year)
	case GranularityMonth:
		return ref.Format("Jan 2006")
	default:
		return ref.Format("2006")
	}
}
