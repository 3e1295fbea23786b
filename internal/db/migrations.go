package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// Migrate applies every pending migration for the driver.
//
// SQLite migrates through the caller's handle so that :memory: databases see
// their schema. Postgres migrates through a dedicated handle opened from url,
// because the pgx migration driver pins a connection until closed.
func Migrate(database *sql.DB, driver, url string) error {
	m, done, err := newMigrator(database, driver, url)
	if err != nil {
		return err
	}
	defer done()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// SchemaVersion reports the applied migration version and whether the last
// migration left the schema dirty.
func SchemaVersion(database *sql.DB, driver, url string) (uint, bool, error) {
	m, done, err := newMigrator(database, driver, url)
	if err != nil {
		return 0, false, err
	}
	defer done()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("read schema version: %w", err)
	}
	return version, dirty, nil
}

// newMigrator returns a migrate instance and a release func. The release func
// never closes the caller's handle.
func newMigrator(db *sql.DB, driver, url string) (*migrate.Migrate, func(), error) {
	var (
		target database.Driver
		dir    string
		owned  bool
		err    error
	)
	switch driver {
	case DriverSQLite:
		dir = "migrations/sqlite"
		target, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	case DriverPostgres:
		dir = "migrations/postgres"
		var dedicated *sql.DB
		dedicated, err = sql.Open(DriverPostgres, url)
		if err != nil {
			return nil, nil, fmt.Errorf("open migration handle: %w", err)
		}
		owned = true
		target, err = migratepgx.WithInstance(dedicated, &migratepgx.Config{})
		if err != nil {
			dedicated.Close()
		}
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("create %s migration driver: %w", driver, err)
	}

	source, err := iofs.New(migrationsFS, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, driver, target)
	if err != nil {
		return nil, nil, fmt.Errorf("create migrate instance: %w", err)
	}

	done := func() {
		if owned {
			m.Close()
		}
	}
	return m, done, nil
}
