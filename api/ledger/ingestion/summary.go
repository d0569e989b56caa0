package ingestion

import (
	"time"

	"github.com/shopspring/decimal"
)

// Summarize folds the final record list into the response totals. Revenue is
// the sum of non-null debits and expenses the sum of non-null credits; an
// empty input yields an all-zero summary.
func Summarize(records []TravelRecord, now time.Time) Summary {
	s := Summary{
		TotalBookings: len(records),
		TotalRevenue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}
	for _, rec := range records {
		if rec.Debit != nil {
			s.TotalRevenue = s.TotalRevenue.Add(*rec.Debit)
		}
		if rec.Credit != nil {
			s.TotalExpenses = s.TotalExpenses.Add(*rec.Credit)
		}
		if DeriveFlightStatus(rec.FlyingDate, now) == StatusComing {
			s.ComingFlights++
		}
	}
	return s
}
