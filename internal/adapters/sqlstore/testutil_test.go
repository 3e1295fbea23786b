package sqlstore_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/example/outreach/internal/adapters/sqlstore"
	"github.com/example/outreach/internal/db"
	"github.com/example/outreach/internal/models"
	"github.com/example/outreach/internal/ports/secondary"
)

// setupTestDB creates an in-memory SQLite database with the authoritative
// schema and foreign keys enforced.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open(db.DriverSQLite, db.SQLiteDSN(":memory:"))
	require.NoError(t, err, "open test db")
	testDB.SetMaxOpenConns(1)

	// Use the authoritative schema from schema.go
	_, err = testDB.Exec(db.GetSchemaSQL())
	require.NoError(t, err, "create schema")

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

func setupStore(t *testing.T) (*sqlstore.Store, *sql.DB) {
	t.Helper()
	testDB := setupTestDB(t)
	return sqlstore.NewStore(testDB, db.DriverSQLite, zerolog.Nop()), testDB
}

// within runs fn in a committed transaction and fails the test on error.
func within(t *testing.T, store *sqlstore.Store, fn func(ctx context.Context, repos secondary.Repositories) error) {
	t.Helper()
	require.NoError(t, store.Do(context.Background(), fn))
}

// attempt runs fn in a transaction and returns its error.
func attempt(store *sqlstore.Store, fn func(ctx context.Context, repos secondary.Repositories) error) error {
	return store.Do(context.Background(), fn)
}

func date(t *testing.T, s string) models.Date {
	t.Helper()
	d, err := models.ParseDate(s)
	require.NoError(t, err)
	return d
}

func key(t *testing.T, issue, location, start string) models.CampaignKey {
	t.Helper()
	k, err := models.NewCampaignKey(issue, location, start)
	require.NoError(t, err)
	return k
}

// seedEntity inserts an entity directly.
func seedEntity(t *testing.T, testDB *sql.DB, email, name string) {
	t.Helper()
	_, err := testDB.Exec("INSERT INTO entity (email, name) VALUES (?, ?)", email, name)
	require.NoError(t, err, "seed entity")
}

// seedCampaign inserts a campaign directly.
func seedCampaign(t *testing.T, testDB *sql.DB, issue, location, start string, budgetCents int64) {
	t.Helper()
	_, err := testDB.Exec(
		"INSERT INTO campaigns (issue, location, start_date, duration_days, phase, budget_cents) VALUES (?, ?, ?, 30, 'planning', ?)",
		issue, location, start, budgetCents,
	)
	require.NoError(t, err, "seed campaign")
}
