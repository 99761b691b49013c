package settings

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const electricMultiplierKey = "electric_multiplier"

// DefaultElectricMultiplier is the hypothetical electric-vehicle cost rate
// (currency per km) used until the driver configures their own.
var DefaultElectricMultiplier = decimal.RequireFromString("0.18")

var ErrNonPositiveMultiplier = errors.New("electric multiplier must be greater than zero")

type SettingsService interface {
	// GetElectricMultiplier returns the configured multiplier. An unset value
	// or a failing read both resolve to DefaultElectricMultiplier; the caller
	// never sees an error.
	GetElectricMultiplier(ctx context.Context) decimal.Decimal
	// SetElectricMultiplier persists a new multiplier. Values <= 0 are rejected.
	SetElectricMultiplier(ctx context.Context, multiplier decimal.Decimal) (decimal.Decimal, error)
}

type SettingsServiceImpl struct {
	repo SettingsRepo
}

func NewSettingsService(repo SettingsRepo) *SettingsServiceImpl {
	return &SettingsServiceImpl{repo: repo}
}

func (s *SettingsServiceImpl) GetElectricMultiplier(ctx context.Context) decimal.Decimal {
	value, err := s.repo.Get(ctx, electricMultiplierKey)
	if err != nil {
		if !errors.Is(err, ErrSettingNotFound) {
			log.Warnf("failed to read electric multiplier, falling back to default: %v", err)
		}
		return DefaultElectricMultiplier
	}

	multiplier, err := decimal.NewFromString(value)
	if err != nil {
		log.Warnf("stored electric multiplier %q is not a number, falling back to default", value)
		return DefaultElectricMultiplier
	}
	return multiplier
}

func (s *SettingsServiceImpl) SetElectricMultiplier(ctx context.Context, multiplier decimal.Decimal) (decimal.Decimal, error) {
	if multiplier.Sign() <= 0 {
		return decimal.Zero, ErrNonPositiveMultiplier
	}
	if err := s.repo.Set(ctx, electricMultiplierKey, multiplier.String()); err != nil {
		return decimal.Zero, err
	}
	return multiplier, nil
}
