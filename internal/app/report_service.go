package app

import (
	"context"
	"strings"
	"time"

	"github.com/example/outreach/internal/core/accounting"
	"github.com/example/outreach/internal/core/engagement"
	"github.com/example/outreach/internal/models"
	"github.com/example/outreach/internal/ports/primary"
	"github.com/example/outreach/internal/ports/secondary"
)

// ReportServiceImpl implements the ReportService interface.
// Nothing is cached between calls; every report reads the store afresh.
type ReportServiceImpl struct {
	uow   secondary.UnitOfWork
	clock func() time.Time
}

// NewReportService creates a new ReportService with injected dependencies.
// A nil clock means time.Now.
func NewReportService(uow secondary.UnitOfWork, clock func() time.Time) *ReportServiceImpl {
	if clock == nil {
		clock = time.Now
	}
	return &ReportServiceImpl{
		uow:   uow,
		clock: clock,
	}
}

// AccountingReport computes budget coverage for every campaign.
func (s *ReportServiceImpl) AccountingReport(ctx context.Context) (*primary.AccountingReport, error) {
	var (
		campaigns []accounting.Campaign
		donations []accounting.Donation
	)
	err := s.uow.Read(ctx, func(ctx context.Context, repos secondary.Repositories) error {
		campaignRecords, err := repos.Campaigns.List(ctx)
		if err != nil {
			return err
		}
		donationRecords, err := repos.Donations.List(ctx)
		if err != nil {
			return err
		}

		campaigns = make([]accounting.Campaign, len(campaignRecords))
		for i, c := range campaignRecords {
			campaigns[i] = accounting.Campaign{Key: c.Key, Budget: c.Budget}
		}
		donations = make([]accounting.Donation, len(donationRecords))
		for i, d := range donationRecords {
			donations[i] = accounting.Donation{Key: d.Campaign, Amount: d.Amount}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	lines := accounting.Compute(campaigns, donations)
	report := &primary.AccountingReport{Lines: make([]primary.CoverageLine, len(lines))}
	for i, l := range lines {
		report.Lines[i] = primary.CoverageLine{
			Campaign:       l.Key,
			Budget:         l.Budget,
			TotalDonations: l.TotalDonations,
			Applicable:     l.Applicable,
			Coverage:       l.Coverage,
			Bar:            l.Bar(),
		}
	}
	return report, nil
}

// EngagementScores computes the weighted engagement score per entity,
// evaluated on the clock's current date.
func (s *ReportServiceImpl) EngagementScores(ctx context.Context) (*primary.EngagementReport, error) {
	today := models.DateOf(s.clock())

	var (
		donors       []string
		involvements []engagement.Involvement
	)
	err := s.uow.Read(ctx, func(ctx context.Context, repos secondary.Repositories) error {
		donationRecords, err := repos.Donations.List(ctx)
		if err != nil {
			return err
		}
		historyRecords, err := repos.MembershipHistory.List(ctx)
		if err != nil {
			return err
		}

		donors = make([]string, len(donationRecords))
		for i, d := range donationRecords {
			donors[i] = d.Email
		}
		involvements = make([]engagement.Involvement, len(historyRecords))
		for i, h := range historyRecords {
			involvements[i] = engagement.Involvement{Email: h.Email, End: h.InvolvementEnd}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	scores := engagement.Score(donors, involvements, today)
	ranked := engagement.Ranked(scores)

	report := &primary.EngagementReport{
		EvaluatedOn: today,
		Scores:      scores,
		Ranked:      make([]primary.EngagementEntry, len(ranked)),
	}
	for i, e := range ranked {
		report.Ranked[i] = primary.EngagementEntry{Email: e.Email, Score: e.Score}
	}
	return report, nil
}

// ActivityDashboard gathers one entity's activity. Each section is an
// independent exact-match lookup; an unknown email yields three empty
// sections rather than an error.
func (s *ReportServiceImpl) ActivityDashboard(ctx context.Context, email string) (*primary.Dashboard, error) {
	email = strings.TrimSpace(email)
	dashboard := &primary.Dashboard{
		Email:        email,
		Donations:    []primary.DashboardDonation{},
		Volunteering: []primary.DashboardInvolvement{},
		Scheduled:    []primary.DashboardScheduled{},
	}

	err := s.uow.Read(ctx, func(ctx context.Context, repos secondary.Repositories) error {
		donations, err := repos.Donations.ListByEntity(ctx, email)
		if err != nil {
			return err
		}
		for _, d := range donations {
			dashboard.Donations = append(dashboard.Donations, primary.DashboardDonation{
				Issue:        d.Campaign.Issue,
				Location:     d.Campaign.Location,
				DonationDate: d.DonationDate,
				Amount:       d.Amount,
			})
		}

		history, err := repos.MembershipHistory.ListByEntity(ctx, email)
		if err != nil {
			return err
		}
		for _, h := range history {
			dashboard.Volunteering = append(dashboard.Volunteering, primary.DashboardInvolvement{
				Issue:             h.Campaign.Issue,
				Location:          h.Campaign.Location,
				CampaignStartDate: h.Campaign.StartDate,
				InvolvementStart:  h.InvolvementStart,
				InvolvementEnd:    h.InvolvementEnd,
			})
		}

		scheduled, err := repos.Scheduled.ListByEntity(ctx, email)
		if err != nil {
			return err
		}
		for _, sc := range scheduled {
			dashboard.Scheduled = append(dashboard.Scheduled, primary.DashboardScheduled{
				Issue:             sc.Campaign.Issue,
				Location:          sc.Campaign.Location,
				CampaignStartDate: sc.Campaign.StartDate,
				ScheduledDate:     sc.ScheduledDate,
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dashboard, nil
}

// Ensure ReportServiceImpl implements the interface.
var _ primary.ReportService = (*ReportServiceImpl)(nil)
