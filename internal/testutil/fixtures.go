package testutil

import (
	"time"

	"github.com/lmorales/jornada/internal/clock"
	"github.com/lmorales/jornada/internal/domain"
)

// RecordOption customises a fixture record.
type RecordOption func(*domain.WorkRecord)

// WithActivities sets the activity list.
func WithActivities(activities ...string) RecordOption {
	return func(r *domain.WorkRecord) {
		r.Activities = activities
	}
}

// WithSummary sets the end-of-day summary.
func WithSummary(summary string) RecordOption {
	return func(r *domain.WorkRecord) {
		r.Summary = summary
	}
}

// WithID sets an explicit record id.
func WithID(id domain.RecordID) RecordOption {
	return func(r *domain.WorkRecord) {
		r.ID = id
	}
}

// NewClosedRecord builds a closed record on the given date with the given
// 24-hour "HH:MM" start and end times.
func NewClosedRecord(date clock.Date, start, end string, opts ...RecordOption) *domain.WorkRecord {
	startTod := mustClock(start)
	endTod := mustClock(end)
	now := time.Now().UTC()
	rec := &domain.WorkRecord{
		Date:      date,
		Start:     startTod,
		End:       &endTod,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(rec)
	}
	return rec
}

// NewOpenRecord builds an open record on the given date.
func NewOpenRecord(date clock.Date, start string, opts ...RecordOption) *domain.WorkRecord {
	now := time.Now().UTC()
	rec := &domain.WorkRecord{
		Date:      date,
		Start:     mustClock(start),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(rec)
	}
	return rec
}

func mustClock(s string) clock.TimeOfDay {
	tod, err := clock.ParseClock24(s)
	if err != nil {
		panic("testutil: bad clock fixture " + s)
	}
	return tod
}
