// Package primary defines the primary ports (driving adapters) for the application.
// These are the interfaces through which the CLI drives the core.
package primary

// MutationResult is what every mutation reports back.
//
// A failed mutation is returned as an error instead; NoMatch is not a
// failure: the statement ran, touched nothing, and committed no change.
type MutationResult struct {
	Success      bool
	NoMatch      bool
	Message      string
	RowsAffected int64
}
