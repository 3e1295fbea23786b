package sqlstore

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"

	"github.com/example/outreach/internal/models"
)

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNotNullViolation    = "23502"
)

// constraintKinds maps integrity violations of one statement to domain kinds.
// A nil kind leaves that violation reported as a storage failure.
type constraintKinds struct {
	unique error
	// entityRef is reported when a foreign key to entity fails; campaignRef
	// for any other foreign key. SQLite does not name the failed constraint,
	// so it always reports campaignRef when set.
	entityRef   error
	campaignRef error
	check       error
}

// activityKinds covers inserts into the activity relations.
var activityKinds = constraintKinds{
	entityRef:   models.ErrUnknownEntity,
	campaignRef: models.ErrUnknownCampaign,
	check:       models.ErrInvalidActivity,
}

// classify turns a driver error into a domain error kind where the failure is
// a constraint violation, and into ErrStoreUnavailable otherwise.
func classify(op string, err error, kinds constraintKinds) error {
	if err == nil {
		return nil
	}

	var kind error
	var detail string

	var sqliteErr sqlite3.Error
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &sqliteErr):
		detail = sqliteErr.Error()
		switch sqliteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			kind = kinds.unique
		case sqlite3.ErrConstraintForeignKey:
			kind = kinds.campaignRef
			if kind == nil {
				kind = kinds.entityRef
			}
		case sqlite3.ErrConstraintCheck, sqlite3.ErrConstraintNotNull:
			kind = kinds.check
		}
	case errors.As(err, &pgErr):
		detail = pgErr.Message
		if pgErr.Detail != "" {
			detail += " (" + pgErr.Detail + ")"
		}
		switch pgErr.Code {
		case pgUniqueViolation:
			kind = kinds.unique
		case pgForeignKeyViolation:
			if strings.Contains(pgErr.ConstraintName, "entity") {
				kind = kinds.entityRef
			} else {
				kind = kinds.campaignRef
			}
		case pgCheckViolation, pgNotNullViolation:
			kind = kinds.check
		}
	}

	if kind != nil {
		return fmt.Errorf("%w: %s: %s", kind, op, detail)
	}
	return fmt.Errorf("%w: %s: %v", models.ErrStoreUnavailable, op, err)
}
