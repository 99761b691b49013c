package sheets

import (
	"context"

	"github.com/rodalog/rodalog/pkg/report"
)

type StubExporter struct {
	Exported []report.MonthlyReport
	Err      error
}

func NewStubExporter() *StubExporter {
	return &StubExporter{}
}

func (s *StubExporter) ExportMonthly(ctx context.Context, monthlyReport report.MonthlyReport) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	s.Exported = append(s.Exported, monthlyReport)
	return "Relatorios!A1:H2", nil
}

func (s *StubExporter) Cleanup() {
	s.Exported = nil
	s.Err = nil
}
