package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/rodalog/rodalog/internal/config"
	"github.com/rodalog/rodalog/pkg/report"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

// Exporter appends a monthly report to an external spreadsheet and returns
// a reference to the written range.
type Exporter interface {
	ExportMonthly(ctx context.Context, monthlyReport report.MonthlyReport) (string, error)
}

type Client struct {
	svc           *gsheet.Service
	spreadsheetId string
	sheetName     string
}

var _ Exporter = (*Client)(nil)

// NewClient creates a Google Sheets client authenticated with service
// account credentials: the configured credentials file when set, Application
// Default Credentials otherwise.
func NewClient(ctx context.Context, cfg config.Sheets) (*Client, error) {
	if cfg.SpreadsheetId == "" {
		return nil, errors.New("missing spreadsheet id")
	}

	opts := []option.ClientOption{option.WithScopes(gsheet.SpreadsheetsScope)}
	if cfg.CredentialsFile != "" {
		credentialsJSON, err := os.ReadFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(credentialsJSON))
	}

	svc, err := gsheet.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetId: cfg.SpreadsheetId,
		sheetName:     cfg.SheetName,
	}, nil
}

// ExportMonthly appends one row per week bucket plus a month total row to
// the configured sheet.
func (c *Client) ExportMonthly(ctx context.Context, monthlyReport report.MonthlyReport) (string, error) {
	if c.svc == nil {
		return "", errors.New("sheets service not initialized")
	}

	values := make([][]any, 0, len(monthlyReport.Weeks)+1)
	for _, week := range monthlyReport.Weeks {
		values = append(values, summaryValues(strconv.Itoa(week.Week), week.Label, week.Summary))
	}
	monthLabel := fmt.Sprintf("%s %d", monthlyReport.MonthName, monthlyReport.Year)
	values = append(values, summaryValues("Total", monthLabel, monthlyReport.Summary))

	rng := fmt.Sprintf("%s!A:H", c.sheetName)
	resp, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetId, rng, &gsheet.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to append to sheet %s: %w", c.sheetName, err)
	}

	ref := rng
	if resp.Updates != nil && resp.Updates.UpdatedRange != "" {
		ref = resp.Updates.UpdatedRange
	}
	log.Infof("exported %s %d to %s", monthlyReport.MonthName, monthlyReport.Year, ref)
	return ref, nil
}

func summaryValues(week, period string, summary report.Summary) []any {
	return []any{
		week,
		period,
		summary.Count,
		summary.TotalKm.InexactFloat64(),
		summary.TotalAmountReceived.InexactFloat64(),
		summary.TotalFuelCost.InexactFloat64(),
		summary.TotalProfit.InexactFloat64(),
		summary.AverageProfitPerRecord.InexactFloat64(),
	}
}
