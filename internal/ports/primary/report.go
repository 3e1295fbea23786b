package primary

import (
	"context"

	"github.com/example/outreach/internal/models"
)

// ReportService defines the primary port for the read-only reports.
// Reports recompute from the store on every call.
type ReportService interface {
	// AccountingReport computes budget coverage for every campaign.
	AccountingReport(ctx context.Context) (*AccountingReport, error)

	// EngagementScores computes the weighted engagement score per entity.
	EngagementScores(ctx context.Context) (*EngagementReport, error)

	// ActivityDashboard gathers one entity's donations, involvement history,
	// and scheduled engagements.
	ActivityDashboard(ctx context.Context, email string) (*Dashboard, error)
}

// AccountingReport lists coverage lines ordered by campaign issue.
type AccountingReport struct {
	Lines []CoverageLine
}

// CoverageLine is one campaign's coverage.
type CoverageLine struct {
	Campaign       models.CampaignKey
	Budget         models.Money
	TotalDonations models.Money
	Applicable     bool // false when the budget is zero
	Coverage       float64
	Bar            string
}

// EngagementReport holds engagement scores evaluated on one day.
type EngagementReport struct {
	EvaluatedOn models.Date
	Scores      map[string]int
	Ranked      []EngagementEntry
}

// EngagementEntry is one entity's score.
type EngagementEntry struct {
	Email string
	Score int
}

// Dashboard is one entity's activity. Each section is always non-nil.
type Dashboard struct {
	Email        string
	Donations    []DashboardDonation
	Volunteering []DashboardInvolvement
	Scheduled    []DashboardScheduled
}

// DashboardDonation is a donation line.
type DashboardDonation struct {
	Issue        string
	Location     string
	DonationDate models.Date
	Amount       models.Money
}

// DashboardInvolvement is a membership history line.
type DashboardInvolvement struct {
	Issue             string
	Location          string
	CampaignStartDate models.Date
	InvolvementStart  models.Date
	InvolvementEnd    models.Date
}

// DashboardScheduled is a scheduled engagement line.
type DashboardScheduled struct {
	Issue             string
	Location          string
	CampaignStartDate models.Date
	ScheduledDate     models.Date
}
