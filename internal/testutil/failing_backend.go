package testutil

import (
	"context"
	"errors"

	"github.com/lmorales/jornada/internal/domain"
	"github.com/lmorales/jornada/internal/repository"
)

// ErrStoreDown is the write failure injected by FailingBackend.
var ErrStoreDown = errors.New("store unavailable")

// FailingBackend wraps a real backend and fails every write once FailWrites
// is set. Loads pass through, so tests can seed state first.
type FailingBackend struct {
	repository.Backend
	FailWrites bool
}

// NewFailingBackend wraps the given backend.
func NewFailingBackend(inner repository.Backend) *FailingBackend {
	return &FailingBackend{Backend: inner}
}

func (f *FailingBackend) InsertRecord(ctx context.Context, r *domain.WorkRecord) error {
	if f.FailWrites {
		return ErrStoreDown
	}
	return f.Backend.InsertRecord(ctx, r)
}

func (f *FailingBackend) UpdateRecord(ctx context.Context, r *domain.WorkRecord) error {
	if f.FailWrites {
		return ErrStoreDown
	}
	return f.Backend.UpdateRecord(ctx, r)
}

func (f *FailingBackend) DeleteRecord(ctx context.Context, id domain.RecordID) error {
	if f.FailWrites {
		return ErrStoreDown
	}
	return f.Backend.DeleteRecord(ctx, id)
}

func (f *FailingBackend) SaveDraft(ctx context.Context, activities []string, summary string) error {
	if f.FailWrites {
		return ErrStoreDown
	}
	return f.Backend.SaveDraft(ctx, activities, summary)
}

func (f *FailingBackend) Replace(ctx context.Context, state *domain.PersistedState) error {
	if f.FailWrites {
		return ErrStoreDown
	}
	return f.Backend.Replace(ctx, state)
}
