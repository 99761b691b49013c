package report

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/rodalog/rodalog/pkg/trip"
	log "github.com/sirupsen/logrus"
)

type SummaryDTO struct {
	Count                    int     `json:"count"`
	TotalKm                  float64 `json:"totalKm"`
	TotalAmountReceived      float64 `json:"totalAmountReceived"`
	TotalFuelCost            float64 `json:"totalFuelCost"`
	TotalProfit              float64 `json:"totalProfit"`
	AverageAmountPerKm       float64 `json:"averageAmountPerKm"`
	AverageProfitPerRecord   float64 `json:"averageProfitPerRecord"`
	ProjectedMonthlyEarnings float64 `json:"projectedMonthlyEarnings"`
}

type ElectricComparisonDTO struct {
	Multiplier float64 `json:"multiplier"`
	Cost       float64 `json:"cost"`
	Savings    float64 `json:"savings"`
}

type GeneralReportDTO struct {
	Summary  SummaryDTO            `json:"summary"`
	Electric ElectricComparisonDTO `json:"electric"`
}

type WeekGroupDTO struct {
	Week    int        `json:"week"`
	Label   string     `json:"label"`
	Summary SummaryDTO `json:"summary"`
	TripIds []string   `json:"tripIds"`
}

type MonthlyReportDTO struct {
	Year      int            `json:"year"`
	Month     int            `json:"month"`
	MonthName string         `json:"monthName"`
	Summary   SummaryDTO     `json:"summary"`
	Weeks     []WeekGroupDTO `json:"weeks"`
}

type ReportHandler struct {
	reportService ReportService
	csvRenderer   *CsvReportRendererImpl
}

func NewReportHandler(reportService ReportService, csvRenderer *CsvReportRendererImpl) *ReportHandler {
	return &ReportHandler{reportService: reportService, csvRenderer: csvRenderer}
}

func (handler *ReportHandler) GetGeneralReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	generalReport, err := handler.reportService.General(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(generalReportToDTO(generalReport)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ReportHandler) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	year, month, err := yearMonthParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	monthlyReport, err := handler.reportService.Monthly(r.Context(), year, month)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		rendered, err := handler.csvRenderer.RenderMonthly(monthlyReport)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(rendered)); err != nil {
			log.Errorf("failed to write csv response: %v", err)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(monthlyReportToDTO(monthlyReport)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (handler *ReportHandler) GetCurrentMonthReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	generalReport, err := handler.reportService.CurrentMonth(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(generalReportToDTO(generalReport)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func yearMonthParams(r *http.Request) (int, time.Month, error) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, &trip.ValidationError{Field: "year", Message: "must be a number"}
	}
	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		return 0, 0, &trip.ValidationError{Field: "month", Message: "must be a number between 1 and 12"}
	}
	return year, time.Month(month), nil
}

func summaryToDTO(summary Summary) SummaryDTO {
	return SummaryDTO{
		Count:                    summary.Count,
		TotalKm:                  summary.TotalKm.InexactFloat64(),
		TotalAmountReceived:      summary.TotalAmountReceived.InexactFloat64(),
		TotalFuelCost:            summary.TotalFuelCost.InexactFloat64(),
		TotalProfit:              summary.TotalProfit.InexactFloat64(),
		AverageAmountPerKm:       summary.AverageAmountPerKm.InexactFloat64(),
		AverageProfitPerRecord:   summary.AverageProfitPerRecord.InexactFloat64(),
		ProjectedMonthlyEarnings: summary.ProjectedMonthlyEarnings.InexactFloat64(),
	}
}

func generalReportToDTO(generalReport GeneralReport) GeneralReportDTO {
	return GeneralReportDTO{
		Summary: summaryToDTO(generalReport.Summary),
		Electric: ElectricComparisonDTO{
			Multiplier: generalReport.Electric.Multiplier.InexactFloat64(),
			Cost:       generalReport.Electric.Cost.InexactFloat64(),
			Savings:    generalReport.Electric.Savings.InexactFloat64(),
		},
	}
}

func monthlyReportToDTO(monthlyReport MonthlyReport) MonthlyReportDTO {
	weeks := make([]WeekGroupDTO, 0, len(monthlyReport.Weeks))
	for _, week := range monthlyReport.Weeks {
		tripIds := make([]string, 0, len(week.Trips))
		for _, t := range week.Trips {
			tripIds = append(tripIds, t.ID)
		}
		weeks = append(weeks, WeekGroupDTO{
			Week:    week.Week,
			Label:   week.Label,
			Summary: summaryToDTO(week.Summary),
			TripIds: tripIds,
		})
	}
	return MonthlyReportDTO{
		Year:      monthlyReport.Year,
		Month:     int(monthlyReport.Month),
		MonthName: monthlyReport.MonthName,
		Summary:   summaryToDTO(monthlyReport.Summary),
		Weeks:     weeks,
	}
}
