package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 30, 0, 0, time.UTC)
}

func TestCalendarDaysBetween(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{"same day", date(2024, 3, 10), date(2024, 3, 10), 0},
		{"next day", date(2024, 3, 10), date(2024, 3, 11), 1},
		{"one week", date(2024, 3, 10), date(2024, 3, 17), 7},
		{"cross month", date(2024, 1, 25), date(2024, 2, 5), 11},
		{"cross leap day", date(2024, 2, 27), date(2024, 3, 2), 4},
		{"ignores time of day", time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC), time.Date(2024, 3, 11, 0, 1, 0, 0, time.UTC), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalendarDaysBetween(tt.from, tt.to))
		})
	}
}

func TestRentalDays(t *testing.T) {
	t.Run("Same-day return charges one day", func(t *testing.T) {
		d := date(2024, 3, 10)
		assert.Equal(t, 1, RentalDays(d, d))
	})

	t.Run("Counting is inclusive of both ends", func(t *testing.T) {
		// Day 0 through day 7 is eight chargeable days.
		assert.Equal(t, 8, RentalDays(date(2024, 3, 10), date(2024, 3, 17)))
	})

	t.Run("Return before start still charges one day", func(t *testing.T) {
		assert.Equal(t, 1, RentalDays(date(2024, 3, 10), date(2024, 3, 8)))
	})
}

func TestCalculateCharge(t *testing.T) {
	t.Run("Week-long rental without discount", func(t *testing.T) {
		// 50,000/day checked out on day 0 and returned on day 7.
		charge := CalculateCharge(date(2024, 3, 10), date(2024, 3, 17), 50000, 0)
		assert.Equal(t, 8, charge.RentalDays)
		assert.Equal(t, int64(400000), charge.GrossPrice)
		assert.Equal(t, int64(0), charge.DiscountAmount)
		assert.Equal(t, int64(400000), charge.TotalPrice)
	})

	t.Run("Ten percent discount", func(t *testing.T) {
		// Daily rate 100,000 for five days: 500,000 gross, 50,000 off.
		charge := CalculateCharge(date(2024, 3, 10), date(2024, 3, 14), 100000, 10)
		assert.Equal(t, 5, charge.RentalDays)
		assert.Equal(t, int64(500000), charge.GrossPrice)
		assert.Equal(t, int64(50000), charge.DiscountAmount)
		assert.Equal(t, int64(450000), charge.TotalPrice)
	})

	t.Run("Full discount charges nothing", func(t *testing.T) {
		charge := CalculateCharge(date(2024, 3, 10), date(2024, 3, 17), 50000, 100)
		assert.Equal(t, int64(0), charge.TotalPrice)
	})

	t.Run("Total rounds to whole currency units", func(t *testing.T) {
		// 3 days * 10,001 = 30,003 gross; 12.5% off leaves 26,252.625.
		charge := CalculateCharge(date(2024, 3, 10), date(2024, 3, 12), 10001, 12.5)
		assert.Equal(t, int64(26253), charge.TotalPrice)
	})

	t.Run("Total is non-increasing as discount grows", func(t *testing.T) {
		prev := int64(1<<62 - 1)
		for pct := 0.0; pct <= 100; pct += 2.5 {
			total := CalculateCharge(date(2024, 3, 10), date(2024, 3, 17), 50000, pct).TotalPrice
			assert.LessOrEqual(t, total, prev, "discount %.1f%%", pct)
			prev = total
		}
		assert.Equal(t, int64(0), prev)
	})
}
