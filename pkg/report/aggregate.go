package report

import (
	"github.com/rodalog/rodalog/pkg/trip"
	"github.com/shopspring/decimal"
)

// Summarize reduces a collection of trips into a Summary. The trips are
// expected to be pre-filtered to the desired scope; order is irrelevant.
// projectionDays is the day count of the current wall-clock month, used for
// the monthly earnings projection regardless of the scope being aggregated.
//
// All sums are re-derived from the per-trip fields on every call; the
// function is pure and an empty input yields an all-zero Summary.
func Summarize(trips []trip.Trip, projectionDays int) Summary {
	summary := Summary{Count: len(trips)}
	if len(trips) == 0 {
		return summary
	}

	var totalKm, totalAmount, totalFuelCost, totalProfit decimal.Decimal
	for _, t := range trips {
		totalKm = totalKm.Add(t.DistanceKm)
		totalAmount = totalAmount.Add(t.AmountReceived)
		totalFuelCost = totalFuelCost.Add(t.FuelCost)
		totalProfit = totalProfit.Add(t.Profit)
	}

	// Averages and the projection are computed from the unrounded sums;
	// each reported value is rounded exactly once.
	var averageAmountPerKm, averageProfitPerRecord decimal.Decimal
	if totalKm.Sign() > 0 {
		averageAmountPerKm = totalAmount.Div(totalKm)
	}
	averageProfitPerRecord = totalProfit.Div(decimal.NewFromInt(int64(len(trips))))
	projected := averageProfitPerRecord.Mul(decimal.NewFromInt(int64(projectionDays)))

	summary.TotalKm = totalKm.Round(2)
	summary.TotalAmountReceived = totalAmount.Round(2)
	summary.TotalFuelCost = totalFuelCost.Round(2)
	summary.TotalProfit = totalProfit.Round(2)
	summary.AverageAmountPerKm = averageAmountPerKm.Round(2)
	summary.AverageProfitPerRecord = averageProfitPerRecord.Round(2)
	summary.ProjectedMonthlyEarnings = projected.Round(2)
	return summary
}
