package report

import (
	"testing"
	"time"

	"github.com/rodalog/rodalog/pkg/trip"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func reportTrip(date string, amount, km, fuelCost, profit string) trip.Trip {
	parsed, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return trip.Trip{
		Date:           parsed,
		AmountReceived: d(amount),
		DistanceKm:     d(km),
		FuelCost:       d(fuelCost),
		Profit:         d(profit),
	}
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil, 31)

	assert.Equal(t, 0, summary.Count)
	assert.True(t, summary.TotalKm.IsZero())
	assert.True(t, summary.TotalProfit.IsZero())
	assert.True(t, summary.AverageAmountPerKm.IsZero())
	assert.True(t, summary.AverageProfitPerRecord.IsZero())
	assert.True(t, summary.ProjectedMonthlyEarnings.IsZero())
}

func TestSummarize_SingleTrip(t *testing.T) {
	trips := []trip.Trip{reportTrip("2025-03-10", "200", "100", "50", "150")}

	summary := Summarize(trips, 31)

	assert.Equal(t, 1, summary.Count)
	assert.Equal(t, "100.00", summary.TotalKm.StringFixed(2))
	assert.Equal(t, "200.00", summary.TotalAmountReceived.StringFixed(2))
	assert.Equal(t, "50.00", summary.TotalFuelCost.StringFixed(2))
	assert.Equal(t, "150.00", summary.TotalProfit.StringFixed(2))
	assert.Equal(t, "2.00", summary.AverageAmountPerKm.StringFixed(2))
	assert.Equal(t, "150.00", summary.AverageProfitPerRecord.StringFixed(2))
	assert.Equal(t, "4650.00", summary.ProjectedMonthlyEarnings.StringFixed(2))
}

func TestSummarize_MultipleTrips(t *testing.T) {
	trips := []trip.Trip{
		reportTrip("2025-03-10", "250", "100", "50", "200"),
		reportTrip("2025-03-12", "80", "50", "30", "50"),
	}

	summary := Summarize(trips, 30)

	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, "150.00", summary.TotalKm.StringFixed(2))
	assert.Equal(t, "330.00", summary.TotalAmountReceived.StringFixed(2))
	assert.Equal(t, "80.00", summary.TotalFuelCost.StringFixed(2))
	assert.Equal(t, "250.00", summary.TotalProfit.StringFixed(2))
	assert.Equal(t, "2.20", summary.AverageAmountPerKm.StringFixed(2))
	assert.Equal(t, "125.00", summary.AverageProfitPerRecord.StringFixed(2))
	assert.Equal(t, "3750.00", summary.ProjectedMonthlyEarnings.StringFixed(2))
}

func TestSummarize_AveragesComeFromUnroundedSums(t *testing.T) {
	// Each trip alone would round to 33.33; the average of the exact sum
	// differs from the average of the rounded totals.
	trips := []trip.Trip{
		reportTrip("2025-03-01", "100", "30", "66.665", "33.335"),
		reportTrip("2025-03-02", "100", "30", "66.665", "33.335"),
	}

	summary := Summarize(trips, 30)

	assert.Equal(t, "66.67", summary.TotalProfit.StringFixed(2))
	assert.Equal(t, "33.34", summary.AverageProfitPerRecord.StringFixed(2))
	// 33.335 * 30, not the rounded 33.34 * 30.
	assert.Equal(t, "1000.05", summary.ProjectedMonthlyEarnings.StringFixed(2))
}

func TestSummarize_IsPure(t *testing.T) {
	trips := []trip.Trip{reportTrip("2025-03-10", "200", "100", "50", "150")}

	first := Summarize(trips, 31)
	second := Summarize(trips, 31)

	assert.Equal(t, first, second)
}
