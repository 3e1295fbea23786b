package app

import (
	"github.com/rs/zerolog"

	"github.com/example/outreach/internal/models"
	"github.com/example/outreach/internal/ports/primary"
)

// applied builds the result of a mutation that wrote rows.
func applied(message string, rows int64) *primary.MutationResult {
	return &primary.MutationResult{
		Success:      true,
		Message:      message,
		RowsAffected: rows,
	}
}

// noMatch builds the result of an update whose key matched nothing.
func noMatch(message string) *primary.MutationResult {
	return &primary.MutationResult{
		NoMatch: true,
		Message: message,
	}
}

// logOutcome records a mutation's outcome. Domain refusals log at info,
// storage failures at error.
func logOutcome(logger zerolog.Logger, op string, res *primary.MutationResult, err error) {
	switch {
	case err != nil && models.IsDomainError(err):
		logger.Info().Str("op", op).Str("outcome", "rejected").Err(err).Msg("mutation refused")
	case err != nil:
		logger.Error().Str("op", op).Str("outcome", "failed").Err(err).Msg("mutation failed")
	case res.NoMatch:
		logger.Info().Str("op", op).Str("outcome", "no_match").Int64("rows", 0).Msg(res.Message)
	default:
		logger.Info().Str("op", op).Str("outcome", "applied").Int64("rows", res.RowsAffected).Msg(res.Message)
	}
}
