package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebind(t *testing.T) {
	tests := []struct {
		name   string
		driver string
		query  string
		want   string
	}{
		{"sqlite untouched", DriverSQLite, "SELECT 1 FROM entity WHERE email = ?", "SELECT 1 FROM entity WHERE email = ?"},
		{"postgres numbered", DriverPostgres, "UPDATE campaigns SET annotations = ? WHERE issue = ? AND location = ?", "UPDATE campaigns SET annotations = $1 WHERE issue = $2 AND location = $3"},
		{"no placeholders", DriverPostgres, "SELECT 1", "SELECT 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rebind(tt.driver, tt.query))
		})
	}
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), "oracle", "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestOpen_CreatesSchemaAndIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "outreach.db")

	database, err := Open(ctx, DriverSQLite, path)
	require.NoError(t, err)

	var count int
	err = database.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('entity','member','employee','volunteer','campaigns','donations','membership_history','scheduled')",
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 8, count)

	version, dirty, err := SchemaVersion(database, DriverSQLite, path)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
	require.NoError(t, database.Close())

	// Reopening runs migrations again with nothing to apply.
	database, err = Open(ctx, DriverSQLite, path)
	require.NoError(t, err)
	defer database.Close()

	version, _, err = SchemaVersion(database, DriverSQLite, path)
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
}

func TestOpen_EnforcesForeignKeys(t *testing.T) {
	ctx := context.Background()
	database, err := Open(ctx, DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.ExecContext(ctx, "INSERT INTO member (entity_email) VALUES ('ghost@example.org')")
	assert.Error(t, err)
}

func TestGetSchemaSQL(t *testing.T) {
	schema := GetSchemaSQL()
	for _, table := range []string{"entity", "member", "employee", "volunteer", "campaigns", "donations", "membership_history", "scheduled"} {
		assert.Contains(t, schema, "CREATE TABLE IF NOT EXISTS "+table+" (")
	}
}

func TestSeedFixtures(t *testing.T) {
	ctx := context.Background()
	database, err := Open(ctx, DriverSQLite, ":memory:")
	require.NoError(t, err)
	defer database.Close()

	require.NoError(t, SeedFixtures(ctx, database, DriverSQLite))

	counts := map[string]int{
		"entity":             4,
		"member":             1,
		"employee":           1,
		"volunteer":          2,
		"campaigns":          3,
		"donations":          3,
		"membership_history": 2,
		"scheduled":          2,
	}
	for table, want := range counts {
		var got int
		require.NoError(t, database.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&got))
		assert.Equal(t, want, got, table)
	}

	// A second seed collides on primary keys and leaves nothing behind.
	err = SeedFixtures(ctx, database, DriverSQLite)
	require.Error(t, err)
	var entities int
	require.NoError(t, database.QueryRowContext(ctx, "SELECT COUNT(*) FROM entity").Scan(&entities))
	assert.Equal(t, 4, entities)
}
