// Package db opens the relational store, applies migrations, and owns the
// authoritative schema.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Driver names accepted in configuration.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// Open connects to the store, verifies it is reachable, and brings the schema
// up to date. For SQLite, url is a file path; its directory is created.
func Open(ctx context.Context, driver, url string) (*sql.DB, error) {
	database, err := Connect(ctx, driver, url)
	if err != nil {
		return nil, err
	}

	if err := Migrate(database, driver, url); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}

// Connect opens the store and pings it without touching the schema.
func Connect(ctx context.Context, driver, url string) (*sql.DB, error) {
	var dsn string
	switch driver {
	case DriverSQLite:
		if url != ":memory:" {
			if err := os.MkdirAll(filepath.Dir(url), 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		dsn = SQLiteDSN(url)
	case DriverPostgres:
		dsn = url
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	database, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if driver == DriverSQLite {
		// One writer at a time; also keeps :memory: on a single connection.
		database.SetMaxOpenConns(1)
	} else {
		database.SetMaxOpenConns(10)
		database.SetMaxIdleConns(2)
		database.SetConnMaxLifetime(time.Hour)
		database.SetConnMaxIdleTime(30 * time.Minute)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := database.PingContext(pingCtx); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return database, nil
}

// SQLiteDSN appends the connection options every SQLite handle needs:
// enforced foreign keys and a busy timeout.
func SQLiteDSN(path string) string {
	return path + "?_foreign_keys=on&_busy_timeout=5000"
}

// Rebind rewrites ? placeholders into the driver's native form.
// Queries must not contain literal question marks.
func Rebind(driver, query string) string {
	if driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
