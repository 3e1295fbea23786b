package sqlstore

import (
	"context"
	"time"

	"github.com/example/outreach/internal/models"
	"github.com/example/outreach/internal/ports/secondary"
)

const scheduledColumns = "entity_email, campaign_issue, campaign_location, campaign_start_date, scheduled_date"

// ScheduledRepository implements secondary.ScheduledRepository.
type ScheduledRepository struct {
	q *querier
}

// newScheduledRepository creates a new scheduled engagement repository.
func newScheduledRepository(q *querier) *ScheduledRepository {
	return &ScheduledRepository{q: q}
}

// Create persists a new scheduled engagement.
func (r *ScheduledRepository) Create(ctx context.Context, scheduled *secondary.ScheduledRecord) error {
	_, err := r.q.exec(ctx,
		"INSERT INTO scheduled ("+scheduledColumns+") VALUES (?, ?, ?, ?, ?)",
		scheduled.Email,
		scheduled.Campaign.Issue, scheduled.Campaign.Location, dateArg(scheduled.Campaign.StartDate),
		dateArg(scheduled.ScheduledDate),
	)
	return classify("create scheduled engagement", err, activityKinds)
}

// ListByEntity retrieves an entity's scheduled engagements in storage order.
func (r *ScheduledRepository) ListByEntity(ctx context.Context, email string) ([]*secondary.ScheduledRecord, error) {
	rows, err := r.q.query(ctx,
		"SELECT "+scheduledColumns+" FROM scheduled WHERE entity_email = ? ORDER BY id",
		email,
	)
	if err != nil {
		return nil, classify("list scheduled engagements", err, constraintKinds{})
	}
	defer rows.Close()

	var scheduled []*secondary.ScheduledRecord
	for rows.Next() {
		var (
			entityEmail, issue, location string
			startDate, scheduledOn       time.Time
		)
		if err := rows.Scan(&entityEmail, &issue, &location, &startDate, &scheduledOn); err != nil {
			return nil, classify("scan scheduled engagement", err, constraintKinds{})
		}
		scheduled = append(scheduled, &secondary.ScheduledRecord{
			Email:         entityEmail,
			Campaign:      campaignKey(issue, location, startDate),
			ScheduledDate: models.DateOf(scheduledOn),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list scheduled engagements", err, constraintKinds{})
	}
	return scheduled, nil
}

// Ensure ScheduledRepository implements the interface.
var _ secondary.ScheduledRepository = (*ScheduledRepository)(nil)
