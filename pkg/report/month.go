package report

import (
	"fmt"
	"time"

	"github.com/rodalog/rodalog/pkg/trip"
)

// Month names as the reports display them.
var monthNames = [12]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

func MonthName(month time.Month) string {
	return monthNames[month-1]
}

// InMonth reports whether the date falls into the given calendar month.
func InMonth(date time.Time, year int, month time.Month) bool {
	return date.Year() == year && date.Month() == month
}

// WeekOfMonth maps a date onto one of the 4 fixed week buckets of its month:
// days 1-7 -> 1, 8-14 -> 2, 15-21 -> 3, 22 to month end -> 4. Week 4 absorbs
// the month tail, so a month always has at most 4 buckets.
func WeekOfMonth(date time.Time) int {
	switch day := date.Day(); {
	case day <= 7:
		return 1
	case day <= 14:
		return 2
	case day <= 21:
		return 3
	default:
		return 4
	}
}

// GroupByWeek buckets the trips of one calendar month by week number.
// Trips outside the month are skipped.
func GroupByWeek(trips []trip.Trip, year int, month time.Month) map[int][]trip.Trip {
	weeks := map[int][]trip.Trip{}
	for _, t := range trips {
		if !InMonth(t.Date, year, month) {
			continue
		}
		week := WeekOfMonth(t.Date)
		weeks[week] = append(weeks[week], t)
	}
	return weeks
}

// DaysInMonth returns the number of days of the given calendar month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekLabel renders the date range covered by a week bucket, e.g.
// "8-14 de Março" or "22-28 de Fevereiro". Week 4 runs to the last day of
// the month, so a 31-day month yields "22-31".
func WeekLabel(week int, year int, month time.Month) string {
	start := (week-1)*7 + 1
	end := week * 7
	if days := DaysInMonth(year, month); week == 4 || end > days {
		end = days
	}
	return fmt.Sprintf("%d-%d de %s", start, end, MonthName(month))
}
