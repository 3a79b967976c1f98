package utils

import (
	"math"
	"time"
)

// Charge is the price breakdown computed when a rental is returned.
type Charge struct {
	RentalDays     int
	DailyRate      int64
	GrossPrice     int64
	DiscountAmount int64
	TotalPrice     int64
}

// CalendarDaysBetween returns the difference between two instants in whole
// calendar days, ignoring the time of day on both sides.
func CalendarDaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// RentalDays counts chargeable days for a rental returned at returnDate.
// Day counting is inclusive of both the start and the return day, with a
// minimum charge of one day even for a same-day return.
func RentalDays(rentalDate, returnDate time.Time) int {
	days := CalendarDaysBetween(rentalDate, returnDate) + 1
	if days < 1 {
		days = 1
	}
	return days
}

// CalculateCharge prices a rental at return time. dailyRate is the sum of
// per-day prices across the rental's line items at the current catalog
// prices. The total is rounded to the nearest whole currency unit; VND has
// no fractional subunit.
func CalculateCharge(rentalDate, returnDate time.Time, dailyRate int64, discountPercent float64) Charge {
	days := RentalDays(rentalDate, returnDate)
	gross := int64(days) * dailyRate
	discount := float64(gross) * discountPercent / 100
	return Charge{
		RentalDays:     days,
		DailyRate:      dailyRate,
		GrossPrice:     gross,
		DiscountAmount: int64(math.Round(discount)),
		TotalPrice:     int64(math.Round(float64(gross) - discount)),
	}
}
