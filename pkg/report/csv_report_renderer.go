package report

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type CsvReportRendererImpl struct {
}

func NewCsvReportRenderer() *CsvReportRendererImpl {
	return &CsvReportRendererImpl{}
}

// RenderMonthly renders a monthly report as CSV: a header, one row per week
// bucket, and a closing row with the whole-month totals.
func (t *CsvReportRendererImpl) RenderMonthly(monthlyReport MonthlyReport) (string, error) {
	header := []string{
		"Week", "Period", "Records", "Km", "Amount received",
		"Fuel cost", "Profit", "Avg profit/record",
	}

	data := make([][]string, 0, len(monthlyReport.Weeks)+2)
	data = append(data, header)
	for _, week := range monthlyReport.Weeks {
		data = append(data, summaryRow(strconv.Itoa(week.Week), week.Label, week.Summary))
	}
	monthPeriod := "1-" + strconv.Itoa(DaysInMonth(monthlyReport.Year, monthlyReport.Month)) +
		" de " + monthlyReport.MonthName
	data = append(data, summaryRow("Total", monthPeriod, monthlyReport.Summary))

	var b bytes.Buffer
	writer := csv.NewWriter(&b)
	for _, row := range data {
		if err := writer.Write(row); err != nil {
			log.Errorf("Error writing to csv: %v", err)
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		log.Errorf("Error writing to csv: %v", err)
		return "", err
	}

	return b.String(), nil
}

func summaryRow(week, period string, summary Summary) []string {
	return []string{
		week,
		period,
		strconv.Itoa(summary.Count),
		amountToString(summary.TotalKm),
		amountToString(summary.TotalAmountReceived),
		amountToString(summary.TotalFuelCost),
		amountToString(summary.TotalProfit),
		amountToString(summary.AverageProfitPerRecord),
	}
}

func amountToString(value decimal.Decimal) string {
	return value.StringFixed(2)
}
