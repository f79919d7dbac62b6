package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/lmorales/jornada/internal/clock"
	"github.com/lmorales/jornada/internal/domain"
)

var (
	stateBucket = []byte("state")
	stateKey    = []byte("state")
)

// BoltBackend implements Backend as a single JSON document under a fixed
// key. Every mutation rewrites the whole document; the record counts here
// are human-scale, not a performance-sensitive path.
type BoltBackend struct {
	conn  *bolt.DB
	state *domain.PersistedState
}

// NewBoltBackend opens (or creates) the blob store at the given path and
// creates the state bucket if it does not exist already.
func NewBoltBackend(path string) (*BoltBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	var fileMode fs.FileMode = 0o600
	conn, err := bolt.Open(path, fileMode, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening state store: %w", err)
	}

	err = conn.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(stateBucket)
		return err
	})
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating state bucket: %w", err)
	}

	return &BoltBackend{conn: conn}, nil
}

// blobState is the on-disk document shape.
type blobState struct {
	Records              []blobRecord `json:"records"`
	InProgressActivities []string     `json:"inProgressActivities,omitempty"`
	DailySummary         string       `json:"dailySummary,omitempty"`
	OpenSession          *blobRecord  `json:"openSession,omitempty"`
	LastUpdated          string       `json:"lastUpdated"`
}

type blobRecord struct {
	ID         int64    `json:"id"`
	Date       string   `json:"date"`
	Start      string   `json:"start"`
	End        string   `json:"end,omitempty"`
	Activities []string `json:"activities,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	CreatedAt  string   `json:"createdAt"`
	UpdatedAt  string   `json:"updatedAt"`
}

func (b *BoltBackend) Load(ctx context.Context) (*domain.PersistedState, error) {
	var raw []byte
	err := b.conn.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(stateBucket).Get(stateKey); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading state blob: %w", err)
	}

	if raw == nil {
		b.state = &domain.PersistedState{}
		return b.state.Clone(), nil
	}

	var doc blobState
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing state blob: %w", err)
	}
	state, err := doc.toDomain()
	if err != nil {
		return nil, err
	}
	b.state = state
	return b.state.Clone(), nil
}

func (b *BoltBackend) InsertRecord(ctx context.Context, r *domain.WorkRecord) error {
	if r.ID == 0 {
		r.ID = b.nextID()
	}
	if r.Closed() {
		b.mirror().Records = append([]*domain.WorkRecord{r.Clone()}, b.mirror().Records...)
	} else {
		b.mirror().OpenSession = r.Clone()
	}
	return b.flush()
}

func (b *BoltBackend) UpdateRecord(ctx context.Context, r *domain.WorkRecord) error {
	m := b.mirror()
	if m.OpenSession != nil && m.OpenSession.ID == r.ID {
		if r.Closed() {
			m.Records = append([]*domain.WorkRecord{r.Clone()}, m.Records...)
			m.OpenSession = nil
		} else {
			m.OpenSession = r.Clone()
		}
		return b.flush()
	}
	for i, rec := range m.Records {
		if rec.ID == r.ID {
			m.Records[i] = r.Clone()
			return b.flush()
		}
	}
	return fmt.Errorf("record %d: %w", r.ID, domain.ErrNotFound)
}

func (b *BoltBackend) DeleteRecord(ctx context.Context, id domain.RecordID) error {
	m := b.mirror()
	if m.OpenSession != nil && m.OpenSession.ID == id {
		m.OpenSession = nil
		return b.flush()
	}
	for i, rec := range m.Records {
		if rec.ID == id {
			m.Records = append(m.Records[:i], m.Records[i+1:]...)
			break
		}
	}
	return b.flush()
}

func (b *BoltBackend) SaveDraft(ctx context.Context, activities []string, summary string) error {
	m := b.mirror()
	m.DraftActivities = append([]string(nil), activities...)
	m.DraftSummary = summary
	return b.flush()
}

func (b *BoltBackend) Replace(ctx context.Context, state *domain.PersistedState) error {
	previous := b.state
	b.state = state.Clone()
	if err := b.flush(); err != nil {
		b.state = previous
		return err
	}
	return nil
}

func (b *BoltBackend) Close() error {
	return b.conn.Close()
}

func (b *BoltBackend) mirror() *domain.PersistedState {
	if b.state == nil {
		b.state = &domain.PersistedState{}
	}
	return b.state
}

// nextID derives a timestamp id, bumping past collisions from inserts that
// land on the same millisecond.
func (b *BoltBackend) nextID() domain.RecordID {
	id := domain.RecordID(time.Now().UnixMilli())
	for b.hasID(id) {
		id++
	}
	return id
}

func (b *BoltBackend) hasID(id domain.RecordID) bool {
	m := b.mirror()
	if m.OpenSession != nil && m.OpenSession.ID == id {
		return true
	}
	for _, rec := range m.Records {
		if rec.ID == id {
			return true
		}
	}
	return false
}

func (b *BoltBackend) flush() error {
	m := b.mirror()
	m.LastUpdated = time.Now().UTC()

	raw, err := json.Marshal(fromDomain(m))
	if err != nil {
		return fmt.Errorf("encoding state blob: %w", err)
	}
	err = b.conn.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(stateBucket).Put(stateKey, raw)
	})
	if err != nil {
		return fmt.Errorf("writing state blob: %w", err)
	}
	return nil
}

func fromDomain(state *domain.PersistedState) blobState {
	doc := blobState{
		Records:              make([]blobRecord, 0, len(state.Records)),
		InProgressActivities: state.DraftActivities,
		DailySummary:         state.DraftSummary,
		LastUpdated:          state.LastUpdated.UTC().Format(time.RFC3339),
	}
	for _, rec := range state.Records {
		doc.Records = append(doc.Records, recordToBlob(rec))
	}
	if state.OpenSession != nil {
		open := recordToBlob(state.OpenSession)
		doc.OpenSession = &open
	}
	return doc
}

func recordToBlob(r *domain.WorkRecord) blobRecord {
	out := blobRecord{
		ID:         int64(r.ID),
		Date:       r.Date.ISO(),
		Start:      r.Start.Format24(),
		Activities: r.Activities,
		Summary:    r.Summary,
		CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:  r.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if r.End != nil {
		out.End = r.End.Format24()
	}
	return out
}

func (doc blobState) toDomain() (*domain.PersistedState, error) {
	state := &domain.PersistedState{
		DraftActivities: doc.InProgressActivities,
		DraftSummary:    doc.DailySummary,
	}
	if t, err := time.Parse(time.RFC3339, doc.LastUpdated); err == nil {
		state.LastUpdated = t
	}
	for _, br := range doc.Records {
		rec, err := br.toDomain()
		if err != nil {
			return nil, err
		}
		state.Records = append(state.Records, rec)
	}
	if doc.OpenSession != nil {
		rec, err := doc.OpenSession.toDomain()
		if err != nil {
			return nil, err
		}
		state.OpenSession = rec
	}
	return state, nil
}

func (br blobRecord) toDomain() (*domain.WorkRecord, error) {
	rec := &domain.WorkRecord{
		ID:         domain.RecordID(br.ID),
		Activities: br.Activities,
		Summary:    br.Summary,
	}
	var err error
	if rec.Date, err = clock.ParseDateISO(br.Date); err != nil {
		return nil, fmt.Errorf("parsing stored record date: %w", err)
	}
	if rec.Start, err = clock.ParseClock24(br.Start); err != nil {
		return nil, fmt.Errorf("parsing stored record start: %w", err)
	}
	if br.End != "" {
		end, err := clock.ParseClock24(br.End)
		if err != nil {
			return nil, fmt.Errorf("parsing stored record end: %w", err)
		}
		rec.End = &end
	}
	if t, err := time.Parse(time.RFC3339, br.CreatedAt); err == nil {
		rec.CreatedAt = t
	}
	if t, err := time.Parse(time.RFC3339, br.UpdatedAt); err == nil {
		rec.UpdatedAt = t
	}
	return rec, nil
}
