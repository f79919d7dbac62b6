package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/lmorales/jornada/internal/backup"
	"github.com/lmorales/jornada/internal/clock"
	"github.com/lmorales/jornada/internal/domain"
	"github.com/lmorales/jornada/internal/repository"
	"github.com/lmorales/jornada/internal/stats"
)

type trackerService struct {
	backend repository.Backend
	state   *domain.PersistedState
}

// NewTrackerService loads the persisted state from the backend and returns
// a ready record store. An open session left over from an earlier day is
// discarded so it cannot block starting new work.
func NewTrackerService(ctx context.Context, backend repository.Backend, today clock.Date) (TrackerService, error) {
	state, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading persisted state: %w", err)
	}

	if open := state.OpenSession; open != nil && open.Date != today {
		state.OpenSession = nil
		// Best effort; a leftover row is invisible and harmless.
		_ = backend.DeleteRecord(ctx, open.ID)
	}

	sortRecords(state.Records)
	return &trackerService{backend: backend, state: state}, nil
}

func (s *trackerService) StartSession(ctx context.Context, now time.Time) (*domain.WorkRecord, error) {
	if open := s.state.OpenSession; open != nil {
		return nil, fmt.Errorf("%w (started at %s)", domain.ErrConflict, open.Start.Format12())
	}

	rec := &domain.WorkRecord{
		Date:      clock.Today(now),
		Start:     clock.FromTime(now),
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}

	err := s.backend.InsertRecord(ctx, rec)
	if err != nil && rec.ID == 0 {
		// Keep the session usable even when the store is unavailable.
		rec.ID = domain.RecordID(now.UnixMilli())
	}
	s.state.OpenSession = rec

	return rec, persistErr("starting session", err)
}

func (s *trackerService) FinalizeSession(ctx context.Context, now time.Time, activities []string, summary string) (*domain.WorkRecord, error) {
	open := s.state.OpenSession
	if open == nil {
		return nil, fmt.Errorf("no open session: %w", domain.ErrNotFound)
	}

	end := clock.FromTime(now)
	if clock.DurationMinutes(open.Start, end) < 0 {
		return nil, fmt.Errorf("%w: end time %s precedes start time %s",
			domain.ErrValidation, end.Format12(), open.Start.Format12())
	}

	open.End = &end
	if activities != nil {
		open.Activities = append([]string(nil), activities...)
	}
	if summary != "" {
		open.Summary = summary
	}
	open.UpdatedAt = now.UTC()

	s.state.Records = append(s.state.Records, open)
	sortRecords(s.state.Records)
	s.state.OpenSession = nil
	s.state.DraftActivities = nil
	s.state.DraftSummary = ""

	err := errors.Join(
		s.backend.UpdateRecord(ctx, open),
		s.backend.SaveDraft(ctx, nil, ""),
	)
	return open, persistErr("finalizing session", err)
}

func (s *trackerService) UpdateActivities(ctx context.Context, activities []string) error {
	open := s.state.OpenSession
	if open == nil {
		return fmt.Errorf("no open session: %w", domain.ErrNotFound)
	}

	open.Activities = append([]string(nil), activities...)
	open.UpdatedAt = time.Now().UTC()
	s.state.DraftActivities = append([]string(nil), activities...)

	err := errors.Join(
		s.backend.UpdateRecord(ctx, open),
		s.backend.SaveDraft(ctx, s.state.DraftActivities, s.state.DraftSummary),
	)
	return persistErr("saving activities", err)
}

func (s *trackerService) UpdateSummary(ctx context.Context, summary string) error {
	open := s.state.OpenSession
	if open == nil {
		return fmt.Errorf("no open session: %w", domain.ErrNotFound)
	}

	open.Summary = summary
	open.UpdatedAt = time.Now().UTC()
	s.state.DraftSummary = summary

	err := errors.Join(
		s.backend.UpdateRecord(ctx, open),
		s.backend.SaveDraft(ctx, s.state.DraftActivities, summary),
	)
	return persistErr("saving summary", err)
}

func (s *trackerService) EditRecord(ctx context.Context, id domain.RecordID, patch domain.RecordPatch, now time.Time) (*domain.WorkRecord, error) {
	if open := s.state.OpenSession; open != nil && open.ID == id {
		edited, err := patch.Apply(open, now)
		if err != nil {
			return nil, err
		}
		if edited.Closed() {
			// The edit supplied an end time; the session is closed now.
			s.state.OpenSession = nil
			s.state.Records = append(s.state.Records, edited)
			sortRecords(s.state.Records)
		} else {
			s.state.OpenSession = edited
		}
		return edited, persistErr("editing record", s.backend.UpdateRecord(ctx, edited))
	}

	for i, rec := range s.state.Records {
		if rec.ID != id {
			continue
		}
		edited, err := patch.Apply(rec, now)
		if err != nil {
			return nil, err
		}
		s.state.Records[i] = edited
		sortRecords(s.state.Records)
		return edited, persistErr("editing record", s.backend.UpdateRecord(ctx, edited))
	}

	return nil, fmt.Errorf("record %d: %w", id, domain.ErrNotFound)
}

func (s *trackerService) DeleteRecord(ctx context.Context, id domain.RecordID) error {
	if open := s.state.OpenSession; open != nil && open.ID == id {
		s.state.OpenSession = nil
	}
	for i, rec := range s.state.Records {
		if rec.ID == id {
			s.state.Records = append(s.state.Records[:i], s.state.Records[i+1:]...)
			break
		}
	}
	return persistErr("deleting record", s.backend.DeleteRecord(ctx, id))
}

func (s *trackerService) ListRecords(filter domain.Filter) []*domain.WorkRecord {
	var out []*domain.WorkRecord
	for _, rec := range s.state.Records {
		if rec.Closed() && filter.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (s *trackerService) OpenSession() *domain.WorkRecord {
	return s.state.OpenSession
}

func (s *trackerService) Draft() ([]string, string) {
	return s.state.DraftActivities, s.state.DraftSummary
}

func (s *trackerService) MinutesToday(today clock.Date) int {
	return stats.MinutesOnDate(s.state.Records, today)
}

func (s *trackerService) MinutesThisWeek(today clock.Date) int {
	return stats.MinutesInTrailingWeek(s.state.Records, today)
}

func (s *trackerService) CreateBackup(now time.Time) ([]byte, error) {
	return backup.Serialize(s.state, now)
}

func (s *trackerService) RestoreBackup(ctx context.Context, data []byte, today clock.Date) error {
	restored, err := backup.Deserialize(data, today)
	if err != nil {
		return err
	}
	sortRecords(restored.Records)

	// Swap only once the new state is fully persisted; a failed restore
	// leaves both memory and store untouched.
	if err := s.backend.Replace(ctx, restored); err != nil {
		return persistErr("restoring backup", err)
	}
	s.state = restored
	return nil
}

// sortRecords orders by date descending, then start time descending.
func sortRecords(records []*domain.WorkRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date.After(records[j].Date)
		}
		return records[i].Start.MinutesSinceMidnight() > records[j].Start.MinutesSinceMidnight()
	})
}

// persistErr wraps a failed store write. The in-memory mutation that
// triggered the write is kept; the caller surfaces the divergence without
// aborting the user's workflow.
func persistErr(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %v", op, domain.ErrPersistence, err)
}
