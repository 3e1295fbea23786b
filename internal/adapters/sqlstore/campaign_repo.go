package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/outreach/internal/models"
	"github.com/example/outreach/internal/ports/secondary"
)

const campaignColumns = "issue, location, start_date, duration_days, phase, budget_cents, website_push_date, annotations"

// CampaignRepository implements secondary.CampaignRepository.
type CampaignRepository struct {
	q *querier
}

// newCampaignRepository creates a new campaign repository.
func newCampaignRepository(q *querier) *CampaignRepository {
	return &CampaignRepository{q: q}
}

// Create persists a new campaign.
func (r *CampaignRepository) Create(ctx context.Context, campaign *secondary.CampaignRecord) error {
	_, err := r.q.exec(ctx,
		"INSERT INTO campaigns ("+campaignColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		campaign.Key.Issue, campaign.Key.Location, dateArg(campaign.Key.StartDate),
		campaign.DurationDays, campaign.Phase, campaign.Budget.Cents,
		dateArg(campaign.WebsitePushDate), nullString(campaign.Annotations),
	)
	return classify("create campaign", err, constraintKinds{
		unique: models.ErrDuplicateCampaign,
		check:  models.ErrInvalidCampaign,
	})
}

// Exists reports whether a campaign with exactly this key exists.
func (r *CampaignRepository) Exists(ctx context.Context, key models.CampaignKey) (bool, error) {
	n, err := r.q.count(ctx,
		"SELECT COUNT(*) FROM campaigns WHERE issue = ? AND location = ? AND start_date = ?",
		key.Issue, key.Location, dateArg(key.StartDate),
	)
	if err != nil {
		return false, classify("check campaign", err, constraintKinds{})
	}
	return n > 0, nil
}

// GetByKey retrieves a campaign (nil if none).
func (r *CampaignRepository) GetByKey(ctx context.Context, key models.CampaignKey) (*secondary.CampaignRecord, error) {
	row := r.q.queryRow(ctx,
		"SELECT "+campaignColumns+" FROM campaigns WHERE issue = ? AND location = ? AND start_date = ?",
		key.Issue, key.Location, dateArg(key.StartDate),
	)
	record, err := scanCampaign(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, classify("get campaign", err, constraintKinds{})
	}
	return record, nil
}

// List retrieves all campaigns ordered by key.
func (r *CampaignRepository) List(ctx context.Context) ([]*secondary.CampaignRecord, error) {
	rows, err := r.q.query(ctx,
		"SELECT "+campaignColumns+" FROM campaigns ORDER BY issue, location, start_date",
	)
	if err != nil {
		return nil, classify("list campaigns", err, constraintKinds{})
	}
	defer rows.Close()

	var campaigns []*secondary.CampaignRecord
	for rows.Next() {
		record, err := scanCampaign(rows)
		if err != nil {
			return nil, classify("scan campaign", err, constraintKinds{})
		}
		campaigns = append(campaigns, record)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list campaigns", err, constraintKinds{})
	}
	return campaigns, nil
}

// UpdateAnnotations overwrites the annotation and returns rows affected.
func (r *CampaignRepository) UpdateAnnotations(ctx context.Context, key models.CampaignKey, annotations string) (int64, error) {
	result, err := r.q.exec(ctx,
		"UPDATE campaigns SET annotations = ? WHERE issue = ? AND location = ? AND start_date = ?",
		nullString(annotations), key.Issue, key.Location, dateArg(key.StartDate),
	)
	if err != nil {
		return 0, classify("annotate campaign", err, constraintKinds{})
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, classify("annotate campaign", err, constraintKinds{})
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCampaign(row rowScanner) (*secondary.CampaignRecord, error) {
	var (
		issue, location string
		startDate       time.Time
		durationDays    int
		phase           string
		budgetCents     int64
		pushDate        sql.NullTime
		annotations     sql.NullString
	)
	if err := row.Scan(&issue, &location, &startDate, &durationDays, &phase, &budgetCents, &pushDate, &annotations); err != nil {
		return nil, err
	}
	return &secondary.CampaignRecord{
		Key:             campaignKey(issue, location, startDate),
		DurationDays:    durationDays,
		Phase:           phase,
		Budget:          models.Cents(budgetCents),
		WebsitePushDate: nullDate(pushDate),
		Annotations:     annotations.String,
	}, nil
}

// Ensure CampaignRepository implements the interface.
var _ secondary.CampaignRepository = (*CampaignRepository)(nil)
