package report

import (
	"time"

	"github.com/rodalog/rodalog/pkg/trip"
	"github.com/shopspring/decimal"
)

// Summary is the aggregation of a set of trips. Every monetary and distance
// value is rounded to 2 decimal places.
type Summary struct {
	Count                    int
	TotalKm                  decimal.Decimal
	TotalAmountReceived      decimal.Decimal
	TotalFuelCost            decimal.Decimal
	TotalProfit              decimal.Decimal
	AverageAmountPerKm       decimal.Decimal
	AverageProfitPerRecord   decimal.Decimal
	ProjectedMonthlyEarnings decimal.Decimal
}

// ElectricComparison projects what the aggregated distance would have cost
// with an electric vehicle at Multiplier currency per km, next to the actual
// fuel spend.
type ElectricComparison struct {
	Multiplier decimal.Decimal
	Cost       decimal.Decimal
	Savings    decimal.Decimal
}

// GeneralReport aggregates a record scope in a single pass. It backs both
// the all-time report and the current-month dashboard.
type GeneralReport struct {
	Summary  Summary
	Electric ElectricComparison
}

// WeekGroup is the aggregation of one week bucket of a month, together with
// the trips that fell into it.
type WeekGroup struct {
	Week    int
	Label   string
	Summary Summary
	Trips   []trip.Trip
}

// MonthlyReport aggregates one calendar month plus its non-empty week
// buckets in ascending week order.
type MonthlyReport struct {
	Year      int
	Month     time.Month
	MonthName string
	Summary   Summary
	Weeks     []WeekGroup
}
