package trip

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrNonPositiveEfficiency = errors.New("fuel efficiency must be greater than zero")

// ComputeDerived calculates fuel cost and profit from the raw inputs:
//
//	fuelCost = distanceKm / efficiencyKmL * pricePerL
//	profit   = amountReceived - fuelCost
//
// Each derived value is rounded to 2 decimal places, half away from zero,
// exactly once; intermediate steps are not rounded. Inputs are expected to
// be pre-validated; a non-positive efficiency is rejected here as well so
// the division can never degenerate.
func ComputeDerived(amountReceived, distanceKm, efficiencyKmL, pricePerL decimal.Decimal) (fuelCost, profit decimal.Decimal, err error) {
	if efficiencyKmL.Sign() <= 0 {
		return decimal.Zero, decimal.Zero, ErrNonPositiveEfficiency
	}
	fuelCost = distanceKm.Div(efficiencyKmL).Mul(pricePerL).Round(2)
	profit = amountReceived.Sub(fuelCost).Round(2)
	return fuelCost, profit, nil
}
