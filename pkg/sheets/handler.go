package sheets

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rodalog/rodalog/pkg/report"
)

type ExportResultDTO struct {
	Range string `json:"range"`
}

// Handler drives the monthly report export. exporter is nil when no
// spreadsheet is configured; the endpoint then answers 503.
type Handler struct {
	exporter      Exporter
	reportService report.ReportService
}

func NewHandler(exporter Exporter, reportService report.ReportService) *Handler {
	return &Handler{exporter: exporter, reportService: reportService}
}

func (handler *Handler) ExportMonthlyReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if handler.exporter == nil {
		http.Error(w, "Sheets export is not configured", http.StatusServiceUnavailable)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		http.Error(w, "year must be a number", http.StatusBadRequest)
		return
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		http.Error(w, "month must be a number between 1 and 12", http.StatusBadRequest)
		return
	}

	monthlyReport, err := handler.reportService.Monthly(r.Context(), year, time.Month(month))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	ref, err := handler.exporter.ExportMonthly(r.Context(), monthlyReport)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(ExportResultDTO{Range: ref}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
