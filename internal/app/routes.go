package app

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies) {

	// Trips
	r.HandleFunc("/api/trip", deps.TripHandler.CreateTrip).Methods("POST")
	r.HandleFunc("/api/trip", deps.TripHandler.GetTrips).Methods("GET")
	r.HandleFunc("/api/trip/{tripId}", deps.TripHandler.UpdateTrip).Methods("PUT")
	r.HandleFunc("/api/trip/{tripId}", deps.TripHandler.DeleteTrip).Methods("DELETE")

	// Reports
	r.HandleFunc("/api/report/general", deps.ReportHandler.GetGeneralReport).Methods("GET")
	r.HandleFunc("/api/report/monthly", deps.ReportHandler.GetMonthlyReport).Queries("year", "{year}", "month", "{month}").Methods("GET")
	r.HandleFunc("/api/report/monthly/export", deps.SheetsHandler.ExportMonthlyReport).Queries("year", "{year}", "month", "{month}").Methods("POST")
	r.HandleFunc("/api/report/current", deps.ReportHandler.GetCurrentMonthReport).Methods("GET")

	// Settings
	r.HandleFunc("/api/settings/electric-multiplier", deps.SettingsHandler.GetElectricMultiplier).Methods("GET")
	r.HandleFunc("/api/settings/electric-multiplier", deps.SettingsHandler.SetElectricMultiplier).Methods("PUT")
}
