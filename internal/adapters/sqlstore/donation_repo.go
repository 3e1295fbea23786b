package sqlstore

import (
	"context"
	"time"

	"github.com/example/outreach/internal/models"
	"github.com/example/outreach/internal/ports/secondary"
)

const donationColumns = "entity_email, campaign_issue, campaign_location, campaign_start_date, donation_date, amount_cents"

// DonationRepository implements secondary.DonationRepository.
type DonationRepository struct {
	q *querier
}

// newDonationRepository creates a new donation repository.
func newDonationRepository(q *querier) *DonationRepository {
	return &DonationRepository{q: q}
}

// Create persists a new donation.
func (r *DonationRepository) Create(ctx context.Context, donation *secondary.DonationRecord) error {
	_, err := r.q.exec(ctx,
		"INSERT INTO donations ("+donationColumns+") VALUES (?, ?, ?, ?, ?, ?)",
		donation.Email,
		donation.Campaign.Issue, donation.Campaign.Location, dateArg(donation.Campaign.StartDate),
		dateArg(donation.DonationDate), donation.Amount.Cents,
	)
	return classify("create donation", err, activityKinds)
}

// List retrieves every donation in storage order.
func (r *DonationRepository) List(ctx context.Context) ([]*secondary.DonationRecord, error) {
	return r.list(ctx, "SELECT "+donationColumns+" FROM donations ORDER BY id")
}

// ListByEntity retrieves an entity's donations in storage order.
func (r *DonationRepository) ListByEntity(ctx context.Context, email string) ([]*secondary.DonationRecord, error) {
	return r.list(ctx, "SELECT "+donationColumns+" FROM donations WHERE entity_email = ? ORDER BY id", email)
}

func (r *DonationRepository) list(ctx context.Context, query string, args ...any) ([]*secondary.DonationRecord, error) {
	rows, err := r.q.query(ctx, query, args...)
	if err != nil {
		return nil, classify("list donations", err, constraintKinds{})
	}
	defer rows.Close()

	var donations []*secondary.DonationRecord
	for rows.Next() {
		var (
			email, issue, location string
			startDate, donatedOn   time.Time
			amountCents            int64
		)
		if err := rows.Scan(&email, &issue, &location, &startDate, &donatedOn, &amountCents); err != nil {
			return nil, classify("scan donation", err, constraintKinds{})
		}
		donations = append(donations, &secondary.DonationRecord{
			Email:        email,
			Campaign:     campaignKey(issue, location, startDate),
			DonationDate: models.DateOf(donatedOn),
			Amount:       models.Cents(amountCents),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list donations", err, constraintKinds{})
	}
	return donations, nil
}

// Ensure DonationRepository implements the interface.
var _ secondary.DonationRepository = (*DonationRepository)(nil)
