// Package stats derives aggregate worked time from closed records. All
// functions are pure; totals are recomputed on every mutation since record
// counts are human-scale.
package stats

import (
	"github.com/lmorales/jornada/internal/clock"
	"github.com/lmorales/jornada/internal/domain"
)

// MinutesOnDate sums the durations of all closed records on the given
// calendar date. Open records contribute nothing.
func MinutesOnDate(records []*domain.WorkRecord, day clock.Date) int {
	total := 0
	for _, rec := range records {
		if rec.Closed() && rec.Date == day {
			total += rec.Minutes()
		}
	}
	return total
}

// MinutesInTrailingWeek sums the durations of all closed records dated
// within [today-7 days, today], both bounds inclusive.
func MinutesInTrailingWeek(records []*domain.WorkRecord, today clock.Date) int {
	lower := today.AddDays(-7)
	total := 0
	for _, rec := range records {
		if !rec.Closed() {
			continue
		}
		if rec.Date.Before(lower) || rec.Date.After(today) {
			continue
		}
		total += rec.Minutes()
	}
	return total
}
