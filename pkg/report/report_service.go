package report

import (
	"context"
	"time"

	"github.com/rodalog/rodalog/internal/utils"
	"github.com/rodalog/rodalog/pkg/settings"
	"github.com/rodalog/rodalog/pkg/trip"
	log "github.com/sirupsen/logrus"
)

// ReportService selects the record scope for each report kind and drives
// the aggregation. It holds no state; every call fetches a fresh snapshot.
type ReportService interface {
	// General aggregates all trips ever recorded.
	General(ctx context.Context) (GeneralReport, error)
	// Monthly aggregates one calendar month plus its week buckets.
	Monthly(ctx context.Context, year int, month time.Month) (MonthlyReport, error)
	// CurrentMonth aggregates the current wall-clock month, for the
	// dashboard shown after each saved record.
	CurrentMonth(ctx context.Context) (GeneralReport, error)
}

type ReportServiceImpl struct {
	tripService     trip.TripService
	settingsService settings.SettingsService
	clock           utils.Clock
}

func NewReportService(tripService trip.TripService, settingsService settings.SettingsService, clock utils.Clock) *ReportServiceImpl {
	return &ReportServiceImpl{
		tripService:     tripService,
		settingsService: settingsService,
		clock:           clock,
	}
}

func (s *ReportServiceImpl) General(ctx context.Context) (GeneralReport, error) {
	trips, err := s.tripService.GetAll(ctx)
	if err != nil {
		return GeneralReport{}, err
	}
	return s.buildGeneralReport(ctx, trips), nil
}

func (s *ReportServiceImpl) Monthly(ctx context.Context, year int, month time.Month) (MonthlyReport, error) {
	trips, err := s.tripService.GetByMonth(ctx, year, month)
	if err != nil {
		return MonthlyReport{}, err
	}
	log.Debugf("aggregating %d trips for %s %d", len(trips), MonthName(month), year)

	projectionDays := s.projectionDays()
	monthlyReport := MonthlyReport{
		Year:      year,
		Month:     month,
		MonthName: MonthName(month),
		Summary:   Summarize(trips, projectionDays),
	}

	buckets := GroupByWeek(trips, year, month)
	for week := 1; week <= 4; week++ {
		weekTrips, ok := buckets[week]
		if !ok {
			continue
		}
		monthlyReport.Weeks = append(monthlyReport.Weeks, WeekGroup{
			Week:    week,
			Label:   WeekLabel(week, year, month),
			Summary: Summarize(weekTrips, projectionDays),
			Trips:   weekTrips,
		})
	}

	return monthlyReport, nil
}

func (s *ReportServiceImpl) CurrentMonth(ctx context.Context) (GeneralReport, error) {
	now := s.clock.Now()
	trips, err := s.tripService.GetByMonth(ctx, now.Year(), now.Month())
	if err != nil {
		return GeneralReport{}, err
	}
	return s.buildGeneralReport(ctx, trips), nil
}

func (s *ReportServiceImpl) buildGeneralReport(ctx context.Context, trips []trip.Trip) GeneralReport {
	summary := Summarize(trips, s.projectionDays())
	multiplier := s.settingsService.GetElectricMultiplier(ctx)
	return GeneralReport{
		Summary:  summary,
		Electric: CompareElectric(summary, multiplier),
	}
}

// projectionDays is the day count of the current wall-clock month. The
// earnings projection always targets "this month", even on historical scopes.
func (s *ReportServiceImpl) projectionDays() int {
	now := s.clock.Now()
	return DaysInMonth(now.Year(), now.Month())
}
