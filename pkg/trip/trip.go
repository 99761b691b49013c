package trip

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Trip is one day of ride-share work: the raw values entered by the driver
// plus the derived fuel cost and net profit. FuelCost and Profit are never
// set by callers; they are recomputed from the raw fields on every create
// and update.
type Trip struct {
	ID                string
	Date              time.Time
	AmountReceived    decimal.Decimal
	DistanceKm        decimal.Decimal
	FuelEfficiencyKmL decimal.Decimal
	FuelPricePerL     decimal.Decimal
	FuelCost          decimal.Decimal
	Profit            decimal.Decimal
	CreatedAt         time.Time
}

var ErrTripNotFound = errors.New("trip not found")

// ValidationError reports a single invalid input field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// validate checks the raw input fields of a trip before any derived value
// is computed. Derived and bookkeeping fields are ignored.
func validate(t Trip) error {
	if t.Date.IsZero() {
		return &ValidationError{Field: "date", Message: "date is required"}
	}
	if t.AmountReceived.Sign() <= 0 {
		return &ValidationError{Field: "amountReceived", Message: "must be greater than zero"}
	}
	if t.DistanceKm.Sign() <= 0 {
		return &ValidationError{Field: "distanceKm", Message: "must be greater than zero"}
	}
	if t.FuelEfficiencyKmL.Sign() <= 0 {
		return &ValidationError{Field: "fuelEfficiencyKmPerLiter", Message: "must be greater than zero"}
	}
	if t.FuelPricePerL.Sign() <= 0 {
		return &ValidationError{Field: "fuelPricePerLiter", Message: "must be greater than zero"}
	}
	return nil
}
