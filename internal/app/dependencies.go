package app

import (
	"context"
	"database/sql"

	"github.com/rodalog/rodalog/internal/config"
	"github.com/rodalog/rodalog/internal/event_bus"
	"github.com/rodalog/rodalog/internal/utils"
	"github.com/rodalog/rodalog/pkg/report"
	"github.com/rodalog/rodalog/pkg/settings"
	"github.com/rodalog/rodalog/pkg/sheets"
	"github.com/rodalog/rodalog/pkg/trip"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	TripRepo    trip.TripRepo
	TripService trip.TripService
	TripHandler *trip.TripHandler

	SettingsRepo    settings.SettingsRepo
	SettingsService settings.SettingsService
	SettingsHandler *settings.SettingsHandler

	ReportService     *report.ReportServiceImpl
	CsvReportRenderer *report.CsvReportRendererImpl
	ReportHandler     *report.ReportHandler

	SheetsExporter sheets.Exporter
	SheetsHandler  *sheets.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Clock = &utils.SystemClock{}
	deps.EventBus = event_bus.NewEventBus()
	subscribeAuditLog(deps.EventBus)

	deps.TripRepo = trip.NewTripRepo(db)
	deps.TripService = trip.NewTripService(deps.TripRepo, deps.EventBus, deps.Clock)
	deps.TripHandler = trip.NewTripHandler(deps.TripService)

	deps.SettingsRepo = settings.NewSettingsRepo(db)
	deps.SettingsService = settings.NewSettingsService(deps.SettingsRepo)
	deps.SettingsHandler = settings.NewSettingsHandler(deps.SettingsService)

	deps.ReportService = report.NewReportService(deps.TripService, deps.SettingsService, deps.Clock)
	deps.CsvReportRenderer = report.NewCsvReportRenderer()
	deps.ReportHandler = report.NewReportHandler(deps.ReportService, deps.CsvReportRenderer)

	if cfg.Sheets.SpreadsheetId != "" {
		exporter, err := sheets.NewClient(context.Background(), cfg.Sheets)
		if err != nil {
			log.Warnf("sheets export disabled: %v", err)
		} else {
			deps.SheetsExporter = exporter
		}
	}
	deps.SheetsHandler = sheets.NewHandler(deps.SheetsExporter, deps.ReportService)

	return deps
}

// subscribeAuditLog writes one log line per trip lifecycle change.
func subscribeAuditLog(bus *event_bus.EventBus) {
	event_bus.SubscribeTyped[event_bus.TripEvent](bus, event_bus.TripCreated,
		func(e event_bus.EventT[event_bus.TripEvent]) error {
			log.Infof("trip %s created for %s (profit %s)", e.Data.ID, e.Data.Date.Format("2006-01-02"), e.Data.Profit)
			return nil
		})
	event_bus.SubscribeTyped[event_bus.TripEvent](bus, event_bus.TripUpdated,
		func(e event_bus.EventT[event_bus.TripEvent]) error {
			log.Infof("trip %s updated for %s (profit %s)", e.Data.ID, e.Data.Date.Format("2006-01-02"), e.Data.Profit)
			return nil
		})
	event_bus.SubscribeTyped[event_bus.TripEvent](bus, event_bus.TripDeleted,
		func(e event_bus.EventT[event_bus.TripEvent]) error {
			log.Infof("trip %s deleted", e.Data.ID)
			return nil
		})
}
