package report

import (
	"context"
	"testing"
	"time"

	"github.com/rodalog/rodalog/internal/utils"
	"github.com/rodalog/rodalog/pkg/settings"
	"github.com/rodalog/rodalog/pkg/trip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportFixture struct {
	reportService *ReportServiceImpl
	tripService   trip.TripService
	settingsRepo  *settings.StubSettingsRepo
	clock         *utils.MockClock
	ctx           context.Context
}

func setupReportService(t *testing.T) reportFixture {
	tripRepo := trip.NewStubTripRepo()
	t.Cleanup(tripRepo.Cleanup)
	settingsRepo := settings.NewStubSettingsRepo()
	t.Cleanup(settingsRepo.Cleanup)

	clock := &utils.MockClock{FixedNow: time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)}
	tripService := trip.NewTripService(tripRepo, nil, clock)
	settingsService := settings.NewSettingsService(settingsRepo)

	return reportFixture{
		reportService: NewReportService(tripService, settingsService, clock),
		tripService:   tripService,
		settingsRepo:  settingsRepo,
		clock:         clock,
		ctx:           context.Background(),
	}
}

func (f reportFixture) createTrip(t *testing.T, date, amount, km, efficiency, price string) trip.Trip {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	created, err := f.tripService.Create(f.ctx, trip.Trip{
		Date:              parsed,
		AmountReceived:    d(amount),
		DistanceKm:        d(km),
		FuelEfficiencyKmL: d(efficiency),
		FuelPricePerL:     d(price),
	})
	require.NoError(t, err)
	return created
}

func TestGeneral(t *testing.T) {
	f := setupReportService(t)
	f.createTrip(t, "2025-03-10", "200", "100", "10", "5")
	f.createTrip(t, "2025-02-05", "80", "50", "10", "4")

	generalReport, err := f.reportService.General(f.ctx)

	require.NoError(t, err)
	summary := generalReport.Summary
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, "150.00", summary.TotalKm.StringFixed(2))
	assert.Equal(t, "280.00", summary.TotalAmountReceived.StringFixed(2))
	assert.Equal(t, "70.00", summary.TotalFuelCost.StringFixed(2))
	assert.Equal(t, "210.00", summary.TotalProfit.StringFixed(2))
	assert.Equal(t, "1.87", summary.AverageAmountPerKm.StringFixed(2))
	assert.Equal(t, "105.00", summary.AverageProfitPerRecord.StringFixed(2))
	// March has 31 days on the pinned clock.
	assert.Equal(t, "3255.00", summary.ProjectedMonthlyEarnings.StringFixed(2))

	assert.Equal(t, "0.18", generalReport.Electric.Multiplier.String())
	assert.Equal(t, "27.00", generalReport.Electric.Cost.StringFixed(2))
	assert.Equal(t, "43.00", generalReport.Electric.Savings.StringFixed(2))
}

func TestGeneral_Empty(t *testing.T) {
	f := setupReportService(t)

	generalReport, err := f.reportService.General(f.ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, generalReport.Summary.Count)
	assert.True(t, generalReport.Summary.TotalProfit.IsZero())
	assert.True(t, generalReport.Electric.Cost.IsZero())
}

func TestMonthly(t *testing.T) {
	f := setupReportService(t)
	f.createTrip(t, "2025-03-03", "200", "100", "10", "5")
	f.createTrip(t, "2025-03-16", "200", "100", "10", "5")
	f.createTrip(t, "2025-03-25", "200", "100", "10", "5")
	f.createTrip(t, "2025-02-10", "200", "100", "10", "5")

	monthlyReport, err := f.reportService.Monthly(f.ctx, 2025, time.March)

	require.NoError(t, err)
	assert.Equal(t, 2025, monthlyReport.Year)
	assert.Equal(t, time.March, monthlyReport.Month)
	assert.Equal(t, "Março", monthlyReport.MonthName)
	assert.Equal(t, 3, monthlyReport.Summary.Count)

	// Empty week buckets are omitted; the rest come in ascending order.
	require.Len(t, monthlyReport.Weeks, 3)
	assert.Equal(t, 1, monthlyReport.Weeks[0].Week)
	assert.Equal(t, "1-7 de Março", monthlyReport.Weeks[0].Label)
	assert.Equal(t, 3, monthlyReport.Weeks[1].Week)
	assert.Equal(t, "15-21 de Março", monthlyReport.Weeks[1].Label)
	assert.Equal(t, 4, monthlyReport.Weeks[2].Week)
	assert.Equal(t, "22-31 de Março", monthlyReport.Weeks[2].Label)
	for _, week := range monthlyReport.Weeks {
		assert.Equal(t, 1, week.Summary.Count)
		require.Len(t, week.Trips, 1)
	}
}

func TestMonthly_ProjectionUsesCurrentMonthDayCount(t *testing.T) {
	f := setupReportService(t)
	f.clock.SetNow(time.Date(2025, time.February, 10, 12, 0, 0, 0, time.UTC))
	f.createTrip(t, "2025-01-10", "200", "100", "10", "5")

	monthlyReport, err := f.reportService.Monthly(f.ctx, 2025, time.January)

	require.NoError(t, err)
	// Average profit 150 projected over February's 28 days, even though the
	// report covers January.
	assert.Equal(t, "4200.00", monthlyReport.Summary.ProjectedMonthlyEarnings.StringFixed(2))
}

func TestCurrentMonth(t *testing.T) {
	f := setupReportService(t)
	_, err := f.settingsRepo.Get(f.ctx, "electric_multiplier")
	require.ErrorIs(t, err, settings.ErrSettingNotFound)
	require.NoError(t, f.settingsRepo.Set(f.ctx, "electric_multiplier", "0.25"))
	f.createTrip(t, "2025-03-10", "200", "100", "10", "5")
	f.createTrip(t, "2025-02-05", "80", "50", "10", "4")

	currentMonthReport, err := f.reportService.CurrentMonth(f.ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, currentMonthReport.Summary.Count)
	assert.Equal(t, "100.00", currentMonthReport.Summary.TotalKm.StringFixed(2))
	assert.Equal(t, "0.25", currentMonthReport.Electric.Multiplier.String())
	assert.Equal(t, "25.00", currentMonthReport.Electric.Cost.StringFixed(2))
	assert.Equal(t, "25.00", currentMonthReport.Electric.Savings.StringFixed(2))
}
