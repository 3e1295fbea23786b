// Package sqlstore implements the persistence ports over database/sql for
// both SQLite (go-sqlite3) and PostgreSQL (pgx).
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/example/outreach/internal/db"
	"github.com/example/outreach/internal/models"
	"github.com/example/outreach/internal/ports/secondary"
)

// Store implements secondary.UnitOfWork. Every call runs in its own
// transaction; repositories handed to fn are bound to that transaction.
type Store struct {
	db     *sql.DB
	driver string
	logger zerolog.Logger
}

// NewStore creates a new Store over an open, migrated database.
func NewStore(database *sql.DB, driver string, logger zerolog.Logger) *Store {
	return &Store{
		db:     database,
		driver: driver,
		logger: logger.With().Str("component", "sqlstore").Str("driver", driver).Logger(),
	}
}

// Do runs fn in a read-write transaction.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context, repos secondary.Repositories) error) error {
	return s.run(ctx, nil, fn)
}

// Read runs fn in a read-only transaction. On PostgreSQL the transaction is
// REPEATABLE READ so every statement sees one snapshot; SQLite transactions
// are already serialized against writers.
func (s *Store) Read(ctx context.Context, fn func(ctx context.Context, repos secondary.Repositories) error) error {
	var opts *sql.TxOptions
	if s.driver == db.DriverPostgres {
		opts = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	}
	return s.run(ctx, opts, fn)
}

func (s *Store) run(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context, repos secondary.Repositories) error) (err error) {
	tx, err := s.db.BeginTx(ctx, opts)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", models.ErrStoreUnavailable, err)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			s.logger.Warn().Err(rbErr).Msg("rollback failed")
		}
	}()

	if err := fn(ctx, s.repositories(tx)); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", models.ErrStoreUnavailable, err)
	}
	committed = true
	return nil
}

func (s *Store) repositories(tx *sql.Tx) secondary.Repositories {
	q := &querier{tx: tx, driver: s.driver, logger: s.logger}
	return secondary.Repositories{
		Entities:          newEntityRepository(q),
		Campaigns:         newCampaignRepository(q),
		Donations:         newDonationRepository(q),
		MembershipHistory: newMembershipHistoryRepository(q),
		Scheduled:         newScheduledRepository(q),
	}
}

// Ensure Store implements the interface.
var _ secondary.UnitOfWork = (*Store)(nil)
