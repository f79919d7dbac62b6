package service

import (
	"context"
	"time"

	"github.com/lmorales/jornada/internal/clock"
	"github.com/lmorales/jornada/internal/domain"
)

// TrackerService is the record store: it owns the in-memory persisted
// state and is the only writer of the persistence backend. All mutations
// run to completion before the next is processed; there is no concurrent
// access.
type TrackerService interface {
	// StartSession opens a new work session dated and timed from now.
	// Fails with domain.ErrConflict while a session is open.
	StartSession(ctx context.Context, now time.Time) (*domain.WorkRecord, error)

	// FinalizeSession closes the open session at now's time of day,
	// attaching the given activities and summary. Fails with
	// domain.ErrNotFound when no session is open and domain.ErrValidation
	// when the end time would precede the start time.
	FinalizeSession(ctx context.Context, now time.Time, activities []string, summary string) (*domain.WorkRecord, error)

	// UpdateActivities and UpdateSummary mutate the open session's draft
	// fields without closing it. They fail with domain.ErrNotFound when no
	// session is open; callers surface that as a notice, not a failure.
	UpdateActivities(ctx context.Context, activities []string) error
	UpdateSummary(ctx context.Context, summary string) error

	// EditRecord applies a partial update to any record, open or closed.
	EditRecord(ctx context.Context, id domain.RecordID, patch domain.RecordPatch, now time.Time) (*domain.WorkRecord, error)

	// DeleteRecord removes a record; deleting an absent id is a no-op.
	DeleteRecord(ctx context.Context, id domain.RecordID) error

	// ListRecords returns closed records ordered by date descending then
	// start time descending, optionally narrowed by the filter.
	ListRecords(filter domain.Filter) []*domain.WorkRecord

	// OpenSession returns the currently open session, or nil.
	OpenSession() *domain.WorkRecord

	// Draft returns the in-progress daily activities and summary.
	Draft() ([]string, string)

	MinutesToday(today clock.Date) int
	MinutesThisWeek(today clock.Date) int

	// CreateBackup serializes the full state into a portable document.
	CreateBackup(now time.Time) ([]byte, error)

	// RestoreBackup replaces the full state from a backup document. The
	// current state is untouched unless the document parses, validates and
	// persists completely.
	RestoreBackup(ctx context.Context, data []byte, today clock.Date) error
}
