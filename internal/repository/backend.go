// Package repository provides the persistence backends for the record
// store. Two interchangeable implementations exist: a SQLite row store and
// a single-document bbolt blob. The record store depends only on the
// Backend interface.
package repository

import (
	"context"

	"github.com/lmorales/jornada/internal/domain"
)

// Backend is the capability interface over the two persistence shapes.
// Record writes are best-effort: the caller keeps its in-memory mutation
// even when the write fails.
type Backend interface {
	// Load reads the full persisted state. A missing or empty store yields
	// an empty state, not an error.
	Load(ctx context.Context) (*domain.PersistedState, error)

	// InsertRecord stores a new record and assigns r.ID when it is zero.
	InsertRecord(ctx context.Context, r *domain.WorkRecord) error

	// UpdateRecord rewrites an existing record identified by r.ID.
	UpdateRecord(ctx context.Context, r *domain.WorkRecord) error

	// DeleteRecord removes the record with the given id. Deleting an absent
	// id is a no-op.
	DeleteRecord(ctx context.Context, id domain.RecordID) error

	// SaveDraft persists the in-progress daily activities and summary.
	SaveDraft(ctx context.Context, activities []string, summary string) error

	// Replace swaps the entire persisted state atomically. Used by the
	// backup restore path; on error the previous contents are kept.
	Replace(ctx context.Context, state *domain.PersistedState) error

	Close() error
}
