// Package engagement scores entities by their activity.
package engagement

import (
	"sort"

	"github.com/example/outreach/internal/core/activity"
	"github.com/example/outreach/internal/models"
)

// Fixed scoring weights.
const (
	PointsPerDonation     = 10
	PointsPerVolunteering = 20
)

// Involvement is the slice of a membership history row the scorer needs.
type Involvement struct {
	Email string
	End   models.Date
}

// Entry is one entity's total score.
type Entry struct {
	Email string
	Score int
}

// Score computes the weighted engagement score per entity email.
//
// Each source is counted independently and multiplied by its weight. The
// volunteering source only sees involvements active on today, and it is
// filtered before grouping: an entity whose only rows are inactive
// involvements, with no donations, is absent from the result, not scored zero.
func Score(donorEmails []string, involvements []Involvement, today models.Date) map[string]int {
	scores := make(map[string]int)

	donations := make(map[string]int)
	for _, email := range donorEmails {
		donations[email]++
	}
	for email, n := range donations {
		scores[email] += n * PointsPerDonation
	}

	active := make(map[string]int)
	for _, inv := range involvements {
		if activity.IsActive(inv.End, today) {
			active[inv.Email]++
		}
	}
	for email, n := range active {
		scores[email] += n * PointsPerVolunteering
	}

	return scores
}

// Ranked flattens scores into entries ordered by email.
func Ranked(scores map[string]int) []Entry {
	entries := make([]Entry, 0, len(scores))
	for email, score := range scores {
		entries = append(entries, Entry{Email: email, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Email < entries[j].Email
	})
	return entries
}
