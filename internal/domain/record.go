package domain

import (
	"fmt"
	"time"

	"github.com/lmorales/jornada/internal/clock"
)

// RecordID identifies a work record. The SQLite backend assigns
// auto-increment values; the blob backend derives them from timestamps.
type RecordID int64

// WorkRecord is one row of worked time. End is nil while the session is
// still open; a record with both times set is a closed historical record.
type WorkRecord struct {
	ID         RecordID
	Date       clock.Date
	Start      clock.TimeOfDay
	End        *clock.TimeOfDay
	Activities []string
	Summary    string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Closed reports whether the record has been finalized.
func (r *WorkRecord) Closed() bool {
	return r.End != nil
}

// Minutes returns the worked duration. Zero for an open record.
func (r *WorkRecord) Minutes() int {
	if r.End == nil {
		return 0
	}
	return clock.DurationMinutes(r.Start, *r.End)
}

// Validate enforces the per-record invariants: a date and start time must
// be present, and a set end time may not precede the start time.
func (r *WorkRecord) Validate() error {
	if r.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if r.End != nil && clock.DurationMinutes(r.Start, *r.End) < 0 {
		return fmt.Errorf("%w: end time %s precedes start time %s",
			ErrValidation, r.End.Format12(), r.Start.Format12())
	}
	return nil
}

// Clone returns a deep copy of the record.
func (r *WorkRecord) Clone() *WorkRecord {
	dup := *r
	if r.End != nil {
		end := *r.End
		dup.End = &end
	}
	dup.Activities = append([]string(nil), r.Activities...)
	return &dup
}

// RecordPatch is a partial update applied by the edit flow. Nil fields are
// left untouched.
type RecordPatch struct {
	Date       *clock.Date
	Start      *clock.TimeOfDay
	End        *clock.TimeOfDay
	Activities []string
	Summary    *string
}

// Apply merges the patch into a copy of rec and validates the result.
func (p RecordPatch) Apply(rec *WorkRecord, now time.Time) (*WorkRecord, error) {
	out := rec.Clone()
	if p.Date != nil {
		out.Date = *p.Date
	}
	if p.Start != nil {
		out.Start = *p.Start
	}
	if p.End != nil {
		end := *p.End
		out.End = &end
	}
	if p.Activities != nil {
		out.Activities = append([]string(nil), p.Activities...)
	}
	if p.Summary != nil {
		out.Summary = *p.Summary
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	out.UpdatedAt = now.UTC()
	return out, nil
}

// Filter narrows a record listing by exact date or by year and month.
// The zero filter matches everything.
type Filter struct {
	Date  *clock.Date
	Year  int
	Month time.Month
}

// Matches reports whether the record passes the filter.
func (f Filter) Matches(r *WorkRecord) bool {
	if f.Date != nil && r.Date != *f.Date {
		return false
	}
	if f.Year != 0 && (r.Date.Year != f.Year || r.Date.Month != f.Month) {
		return false
	}
	return true
}

// PersistedState is the durable snapshot owned by the record store: all
// closed records, the currently open session (if any), and the day's
// in-progress activity draft and summary.
type PersistedState struct {
	Records         []*WorkRecord
	OpenSession     *WorkRecord
	DraftActivities []string
	DraftSummary    string
	LastUpdated     time.Time
}

// Clone returns a deep copy of the state.
func (s *PersistedState) Clone() *PersistedState {
	out := &PersistedState{
		DraftActivities: append([]string(nil), s.DraftActivities...),
		DraftSummary:    s.DraftSummary,
		LastUpdated:     s.LastUpdated,
	}
	for _, r := range s.Records {
		out.Records = append(out.Records, r.Clone())
	}
	if s.OpenSession != nil {
		out.OpenSession = s.OpenSession.Clone()
	}
	return out
}
