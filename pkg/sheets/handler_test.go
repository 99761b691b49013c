package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rodalog/rodalog/pkg/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReportService struct {
	monthlyReport report.MonthlyReport
	err           error
}

func (s *stubReportService) General(ctx context.Context) (report.GeneralReport, error) {
	return report.GeneralReport{}, nil
}

func (s *stubReportService) Monthly(ctx context.Context, year int, month time.Month) (report.MonthlyReport, error) {
	return s.monthlyReport, s.err
}

func (s *stubReportService) CurrentMonth(ctx context.Context) (report.GeneralReport, error) {
	return report.GeneralReport{}, nil
}

func TestExportMonthlyReport(t *testing.T) {
	exporter := NewStubExporter()
	t.Cleanup(exporter.Cleanup)
	handler := NewHandler(exporter, &stubReportService{
		monthlyReport: report.MonthlyReport{Year: 2025, Month: time.March, MonthName: "Março"},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/report/monthly/export?year=2025&month=3", nil)
	w := httptest.NewRecorder()
	handler.ExportMonthlyReport(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var result ExportResultDTO
	require.NoError(t, json.NewDecoder(w.Body).Decode(&result))
	assert.Equal(t, "Relatorios!A1:H2", result.Range)
	require.Len(t, exporter.Exported, 1)
	assert.Equal(t, 2025, exporter.Exported[0].Year)
}

func TestExportMonthlyReport_NotConfigured(t *testing.T) {
	handler := NewHandler(nil, &stubReportService{})

	req := httptest.NewRequest(http.MethodPost, "/api/report/monthly/export?year=2025&month=3", nil)
	w := httptest.NewRecorder()
	handler.ExportMonthlyReport(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestExportMonthlyReport_InvalidParams(t *testing.T) {
	handler := NewHandler(NewStubExporter(), &stubReportService{})

	for _, query := range []string{"", "year=2025", "year=2025&month=13"} {
		req := httptest.NewRequest(http.MethodPost, "/api/report/monthly/export?"+query, nil)
		w := httptest.NewRecorder()
		handler.ExportMonthlyReport(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, "query %q", query)
	}
}

func TestExportMonthlyReport_ExportFailure(t *testing.T) {
	exporter := NewStubExporter()
	exporter.Err = errors.New("spreadsheet unreachable")
	handler := NewHandler(exporter, &stubReportService{})

	req := httptest.NewRequest(http.MethodPost, "/api/report/monthly/export?year=2025&month=3", nil)
	w := httptest.NewRecorder()
	handler.ExportMonthlyReport(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
