package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/outreach/internal/db"
	"github.com/example/outreach/internal/models"
)

// querier runs statements on one transaction, rewriting placeholders for the
// driver and tracing each statement.
type querier struct {
	tx     *sql.Tx
	driver string
	logger zerolog.Logger
}

func (q *querier) exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	start := time.Now()
	res, err := q.tx.ExecContext(ctx, db.Rebind(q.driver, query), args...)
	q.trace(query, start, err)
	return res, err
}

func (q *querier) query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	start := time.Now()
	rows, err := q.tx.QueryContext(ctx, db.Rebind(q.driver, query), args...)
	q.trace(query, start, err)
	return rows, err
}

func (q *querier) queryRow(ctx context.Context, query string, args ...any) *sql.Row {
	start := time.Now()
	row := q.tx.QueryRowContext(ctx, db.Rebind(q.driver, query), args...)
	q.trace(query, start, row.Err())
	return row
}

// count runs a SELECT COUNT(*) statement.
func (q *querier) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := q.queryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (q *querier) trace(query string, start time.Time, err error) {
	ev := q.logger.Trace()
	if err != nil {
		ev = q.logger.Debug().Err(err)
	}
	ev.Str("sql", query).Dur("elapsed", time.Since(start)).Msg("statement")
}

// dateArg binds a date as YYYY-MM-DD text, or NULL when unset. Both drivers
// accept text for DATE columns, and SQLite compares keys by that text.
func dateArg(d models.Date) any {
	if d.IsZero() {
		return nil
	}
	return d.String()
}

// nullString binds an empty string as NULL.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func nullDate(t sql.NullTime) models.Date {
	if !t.Valid {
		return models.Date{}
	}
	return models.DateOf(t.Time)
}

func campaignKey(issue, location string, start time.Time) models.CampaignKey {
	return models.CampaignKey{
		Issue:     issue,
		Location:  location,
		StartDate: models.DateOf(start),
	}
}
