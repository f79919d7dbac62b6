package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDB_CreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"records", "daily_draft"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).
			Scan(&name)
		require.NoError(t, err, "table %s missing", table)
		assert.Equal(t, table, name)
	}

	// daily_draft is seeded with its single row.
	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM daily_draft`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestMigrate_IsIdempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// Re-running the full migration list must not fail; the summary
	// ALTER TABLE hits the duplicate-column tolerance path.
	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))
}
