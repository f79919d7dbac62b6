package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmorales/jornada/internal/clock"
)

func closedRecord(t *testing.T) *WorkRecord {
	t.Helper()
	end := clock.TimeOfDay{Hour: 17}
	return &WorkRecord{
		ID:         1,
		Date:       clock.Date{Year: 2025, Month: time.March, Day: 5},
		Start:      clock.TimeOfDay{Hour: 9},
		End:        &end,
		Activities: []string{"reviews", "planning"},
	}
}

func TestWorkRecord_Minutes(t *testing.T) {
	rec := closedRecord(t)
	assert.Equal(t, 480, rec.Minutes())

	rec.End = nil
	assert.False(t, rec.Closed())
	assert.Equal(t, 0, rec.Minutes())
}

func TestWorkRecord_ValidateRejectsEndBeforeStart(t *testing.T) {
	rec := closedRecord(t)
	end := clock.TimeOfDay{Hour: 8}
	rec.End = &end
	assert.ErrorIs(t, rec.Validate(), ErrValidation)
}

func TestWorkRecord_ValidateRequiresDate(t *testing.T) {
	rec := closedRecord(t)
	rec.Date = clock.Date{}
	assert.ErrorIs(t, rec.Validate(), ErrValidation)
}

func TestRecordPatch_Apply(t *testing.T) {
	rec := closedRecord(t)
	newDate := clock.Date{Year: 2025, Month: time.March, Day: 6}
	newStart := clock.TimeOfDay{Hour: 10}
	now := time.Date(2025, 3, 6, 18, 0, 0, 0, time.UTC)

	patched, err := RecordPatch{Date: &newDate, Start: &newStart}.Apply(rec, now)
	require.NoError(t, err)
	assert.Equal(t, newDate, patched.Date)
	assert.Equal(t, newStart, patched.Start)
	assert.Equal(t, now, patched.UpdatedAt)

	// Original untouched.
	assert.Equal(t, clock.TimeOfDay{Hour: 9}, rec.Start)
}

func TestRecordPatch_ApplyRejectsNegativeDuration(t *testing.T) {
	rec := closedRecord(t)
	badEnd := clock.TimeOfDay{Hour: 7, Minute: 30}

	_, err := RecordPatch{End: &badEnd}.Apply(rec, time.Now())
	assert.ErrorIs(t, err, ErrValidation)
	// Record keeps its previous end time.
	assert.Equal(t, clock.TimeOfDay{Hour: 17}, *rec.End)
}

func TestFilter_Matches(t *testing.T) {
	rec := closedRecord(t)

	assert.True(t, Filter{}.Matches(rec))

	date := rec.Date
	assert.True(t, Filter{Date: &date}.Matches(rec))
	other := date.AddDays(1)
	assert.False(t, Filter{Date: &other}.Matches(rec))

	assert.True(t, Filter{Year: 2025, Month: time.March}.Matches(rec))
	assert.False(t, Filter{Year: 2025, Month: time.April}.Matches(rec))
}

func TestPersistedState_CloneIsDeep(t *testing.T) {
	st := &PersistedState{
		Records:         []*WorkRecord{closedRecord(t)},
		DraftActivities: []string{"standup"},
		DraftSummary:    "short day",
	}

	dup := st.Clone()
	dup.Records[0].Summary = "changed"
	dup.DraftActivities[0] = "changed"

	assert.Empty(t, st.Records[0].Summary)
	assert.Equal(t, "standup", st.DraftActivities[0])
}
