package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lmorales/jornada/internal/clock"
	"github.com/lmorales/jornada/internal/db"
	"github.com/lmorales/jornada/internal/domain"
)

// SQLiteBackend implements Backend over the records/daily_draft tables.
// Dates are stored as ISO strings and times of day as 24-hour "HH:MM";
// locale formatting happens at the presentation boundary only.
type SQLiteBackend struct {
	db  *sql.DB
	uow db.UnitOfWork
}

// NewSQLiteBackend creates a backend over an opened database.
func NewSQLiteBackend(database *sql.DB) *SQLiteBackend {
	return &SQLiteBackend{db: database, uow: db.NewSQLiteUnitOfWork(database)}
}

const recordColumns = `id, date, start_time, end_time, activities, summary, created_at, updated_at`

func (b *SQLiteBackend) Load(ctx context.Context) (*domain.PersistedState, error) {
	query := `SELECT ` + recordColumns + ` FROM records ORDER BY date DESC, start_time DESC`
	rows, err := b.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	state := &domain.PersistedState{}
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		if rec.Closed() {
			state.Records = append(state.Records, rec)
		} else if state.OpenSession == nil {
			state.OpenSession = rec
		}
		// Additional open rows are stale leftovers; the record store
		// discards them against its reference date.
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}

	var activities, summary, updatedAt string
	err = b.db.QueryRowContext(ctx,
		`SELECT activities, summary, updated_at FROM daily_draft WHERE id = 'default'`).
		Scan(&activities, &summary, &updatedAt)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("loading daily draft: %w", err)
	}
	state.DraftActivities = splitActivities(activities)
	state.DraftSummary = summary
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		state.LastUpdated = t
	}

	return state, nil
}

func (b *SQLiteBackend) InsertRecord(ctx context.Context, r *domain.WorkRecord) error {
	return insertRecordTx(ctx, b.db, r, true)
}

func (b *SQLiteBackend) UpdateRecord(ctx context.Context, r *domain.WorkRecord) error {
	query := `UPDATE records
		SET date = ?, start_time = ?, end_time = ?, activities = ?, summary = ?, updated_at = ?
		WHERE id = ?`
	res, err := b.db.ExecContext(ctx, query,
		r.Date.ISO(),
		r.Start.Format24(),
		nullableClock(r.End),
		joinActivities(r.Activities),
		r.Summary,
		r.UpdatedAt.UTC().Format(time.RFC3339),
		int64(r.ID),
	)
	if err != nil {
		return fmt.Errorf("updating record: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating record: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("record %d: %w", r.ID, domain.ErrNotFound)
	}
	return nil
}

func (b *SQLiteBackend) DeleteRecord(ctx context.Context, id domain.RecordID) error {
	if _, err := b.db.ExecContext(ctx, `DELETE FROM records WHERE id = ?`, int64(id)); err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}
	return nil
}

func (b *SQLiteBackend) SaveDraft(ctx context.Context, activities []string, summary string) error {
	return saveDraftTx(ctx, b.db, activities, summary)
}

// Replace rewrites the whole store in one transaction so a failed restore
// leaves the previous contents intact.
func (b *SQLiteBackend) Replace(ctx context.Context, state *domain.PersistedState) error {
	return b.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM records`); err != nil {
			return fmt.Errorf("clearing records: %w", err)
		}
		for _, rec := range state.Records {
			if err := insertRecordTx(ctx, tx, rec, false); err != nil {
				return err
			}
		}
		if state.OpenSession != nil {
			if err := insertRecordTx(ctx, tx, state.OpenSession, false); err != nil {
				return err
			}
		}
		return saveDraftTx(ctx, tx, state.DraftActivities, state.DraftSummary)
	})
}

func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}

func insertRecordTx(ctx context.Context, tx db.DBTX, r *domain.WorkRecord, assignID bool) error {
	var idValue any
	if r.ID != 0 {
		idValue = int64(r.ID)
	}
	query := `INSERT INTO records (id, date, start_time, end_time, activities, summary, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := tx.ExecContext(ctx, query,
		idValue,
		r.Date.ISO(),
		r.Start.Format24(),
		nullableClock(r.End),
		joinActivities(r.Activities),
		r.Summary,
		r.CreatedAt.UTC().Format(time.RFC3339),
		r.UpdatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting record: %w", err)
	}
	if assignID && r.ID == 0 {
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading inserted record id: %w", err)
		}
		r.ID = domain.RecordID(id)
	}
	return nil
}

func saveDraftTx(ctx context.Context, tx db.DBTX, activities []string, summary string) error {
	query := `INSERT INTO daily_draft (id, activities, summary, updated_at)
		VALUES ('default', ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET activities = excluded.activities,
			summary = excluded.summary, updated_at = excluded.updated_at`
	_, err := tx.ExecContext(ctx, query,
		joinActivities(activities), summary, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving daily draft: %w", err)
	}
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for scanRecord.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*domain.WorkRecord, error) {
	var (
		id                         int64
		dateStr, startStr          string
		endStr                     sql.NullString
		activities, summary        string
		createdAtStr, updatedAtStr string
	)
	err := row.Scan(&id, &dateStr, &startStr, &endStr, &activities, &summary, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("record: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("scanning record row: %w", err)
	}

	rec := &domain.WorkRecord{
		ID:         domain.RecordID(id),
		Activities: splitActivities(activities),
		Summary:    summary,
	}
	if rec.Date, err = clock.ParseDateISO(dateStr); err != nil {
		return nil, fmt.Errorf("parsing record date: %w", err)
	}
	if rec.Start, err = clock.ParseClock24(startStr); err != nil {
		return nil, fmt.Errorf("parsing record start time: %w", err)
	}
	if endStr.Valid && endStr.String != "" {
		end, err := clock.ParseClock24(endStr.String)
		if err != nil {
			return nil, fmt.Errorf("parsing record end time: %w", err)
		}
		rec.End = &end
	}
	if rec.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if rec.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return rec, nil
}

func nullableClock(t *clock.TimeOfDay) any {
	if t == nil {
		return nil
	}
	return t.Format24()
}
