// Package summary computes the weekday/weekend breakdown of a user's
// overtime records over a date range, plus the pay derivations applied when
// a record is stored. Everything here is pure: callers fetch the records,
// the engine only folds them.
package summary

import (
	"math"
	"sort"
	"time"

	"github.com/Jhorlodev/horas-extras/models"
)

// Row is the per-record projection of a range summary, ordered ascending by
// date. Records sharing a date are not collapsed; each keeps its own row.
type Row struct {
	Date      models.DateOnly `json:"date"`
	DayOfWeek time.Weekday    `json:"day_of_week"`
	Weekend   bool            `json:"weekend"`
	Hours     float64         `json:"hours"`
}

type RangeSummary struct {
	Rows         []Row   `json:"rows"`
	WeekdayTotal float64 `json:"weekday_total"`
	WeekendTotal float64 `json:"weekend_total"`
	GrandTotal   float64 `json:"grand_total"`
}

// AggregateRange filters records to [start, end] inclusive, sorts them
// ascending by date (stable for equal dates) and buckets their hours into
// weekday (Mon-Fri) and weekend (Sat-Sun) totals.
//
// The function is total: an empty input or an inverted range yields an empty
// summary, never an error. Records with a zero date are skipped and records
// with nil or non-finite hours count as zero, so a corrupt row can never
// poison the totals. Input already filtered by the store is fine; the filter
// here is idempotent.
func AggregateRange(records []models.OvertimeRecord, start, end time.Time) RangeSummary {
	// Anchor both bounds to noon UTC before comparing, same as stored
	// dates. Comparing raw instants reintroduces the timezone off-by-one
	// this anchoring exists to prevent.
	from := models.Normalize(start)
	to := models.Normalize(end)

	rows := make([]Row, 0, len(records))
	for _, r := range records {
		if r.Date.IsZero() {
			continue
		}
		d := models.Normalize(r.Date.Time)
		if d.Before(from.Time) || d.After(to.Time) {
			continue
		}
		rows = append(rows, Row{
			Date:      d,
			DayOfWeek: d.Weekday(),
			Weekend:   d.Weekend(),
			Hours:     hoursOf(r),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date.Time)
	})

	s := RangeSummary{Rows: rows}
	for _, row := range rows {
		if row.Weekend {
			s.WeekendTotal += row.Hours
		} else {
			s.WeekdayTotal += row.Hours
		}
	}
	s.GrandTotal = s.WeekdayTotal + s.WeekendTotal
	return s
}

func hoursOf(r models.OvertimeRecord) float64 {
	if r.Hours == nil || math.IsNaN(*r.Hours) || math.IsInf(*r.Hours, 0) {
		return 0
	}
	return *r.Hours
}
