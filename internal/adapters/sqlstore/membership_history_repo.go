package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/outreach/internal/models"
	"github.com/example/outreach/internal/ports/secondary"
)

const membershipHistoryColumns = "entity_email, campaign_issue, campaign_location, campaign_start_date, involvement_start_date, involvement_end_date, annotations"

// MembershipHistoryRepository implements secondary.MembershipHistoryRepository.
type MembershipHistoryRepository struct {
	q *querier
}

// newMembershipHistoryRepository creates a new membership history repository.
func newMembershipHistoryRepository(q *querier) *MembershipHistoryRepository {
	return &MembershipHistoryRepository{q: q}
}

// Create persists a new membership history row.
func (r *MembershipHistoryRepository) Create(ctx context.Context, history *secondary.MembershipHistoryRecord) error {
	_, err := r.q.exec(ctx,
		"INSERT INTO membership_history ("+membershipHistoryColumns+") VALUES (?, ?, ?, ?, ?, ?, ?)",
		history.Email,
		history.Campaign.Issue, history.Campaign.Location, dateArg(history.Campaign.StartDate),
		dateArg(history.InvolvementStart), dateArg(history.InvolvementEnd),
		nullString(history.Annotations),
	)
	return classify("create membership history", err, activityKinds)
}

// UpdateAnnotations overwrites annotations on every row matching the entity
// and campaign key, returning rows affected.
func (r *MembershipHistoryRepository) UpdateAnnotations(ctx context.Context, email string, key models.CampaignKey, annotations string) (int64, error) {
	result, err := r.q.exec(ctx,
		`UPDATE membership_history SET annotations = ?
		 WHERE entity_email = ? AND campaign_issue = ? AND campaign_location = ? AND campaign_start_date = ?`,
		nullString(annotations), email, key.Issue, key.Location, dateArg(key.StartDate),
	)
	if err != nil {
		return 0, classify("annotate membership history", err, constraintKinds{})
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, classify("annotate membership history", err, constraintKinds{})
	}
	return n, nil
}

// List retrieves every membership history row in storage order.
func (r *MembershipHistoryRepository) List(ctx context.Context) ([]*secondary.MembershipHistoryRecord, error) {
	return r.list(ctx, "SELECT "+membershipHistoryColumns+" FROM membership_history ORDER BY id")
}

// ListByEntity retrieves an entity's membership history in storage order.
func (r *MembershipHistoryRepository) ListByEntity(ctx context.Context, email string) ([]*secondary.MembershipHistoryRecord, error) {
	return r.list(ctx, "SELECT "+membershipHistoryColumns+" FROM membership_history WHERE entity_email = ? ORDER BY id", email)
}

func (r *MembershipHistoryRepository) list(ctx context.Context, query string, args ...any) ([]*secondary.MembershipHistoryRecord, error) {
	rows, err := r.q.query(ctx, query, args...)
	if err != nil {
		return nil, classify("list membership history", err, constraintKinds{})
	}
	defer rows.Close()

	var history []*secondary.MembershipHistoryRecord
	for rows.Next() {
		var (
			email, issue, location string
			startDate, involvedOn  time.Time
			involvedUntil          sql.NullTime
			annotations            sql.NullString
		)
		if err := rows.Scan(&email, &issue, &location, &startDate, &involvedOn, &involvedUntil, &annotations); err != nil {
			return nil, classify("scan membership history", err, constraintKinds{})
		}
		history = append(history, &secondary.MembershipHistoryRecord{
			Email:            email,
			Campaign:         campaignKey(issue, location, startDate),
			InvolvementStart: models.DateOf(involvedOn),
			InvolvementEnd:   nullDate(involvedUntil),
			Annotations:      annotations.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list membership history", err, constraintKinds{})
	}
	return history, nil
}

// Ensure MembershipHistoryRepository implements the interface.
var _ secondary.MembershipHistoryRepository = (*MembershipHistoryRepository)(nil)
