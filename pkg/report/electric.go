package report

import "github.com/shopspring/decimal"

// CompareElectric layers the electric-vehicle cost comparison on top of an
// already-computed aggregate: cost = totalKm * multiplier, savings =
// totalFuelCost - cost, both rounded to 2 decimal places.
func CompareElectric(summary Summary, multiplier decimal.Decimal) ElectricComparison {
	cost := summary.TotalKm.Mul(multiplier).Round(2)
	return ElectricComparison{
		Multiplier: multiplier,
		Cost:       cost,
		Savings:    summary.TotalFuelCost.Sub(cost).Round(2),
	}
}
