package cli

import (
	"context"

	"github.com/fatih/color"

	"github.com/example/outreach/internal/models"
	"github.com/example/outreach/internal/ports/primary"
)

func init() {
	color.NoColor = true
}

func okResult(msg string) *primary.MutationResult {
	return &primary.MutationResult{Success: true, Message: msg, RowsAffected: 1}
}

// mockEntityService implements primary.EntityService for testing
type mockEntityService struct {
	getEntityFn func(ctx context.Context, email string) (*primary.Entity, error)
	err         error

	lastRegister  primary.RegisterDonorRequest
	lastVolunteer primary.AddVolunteerRequest
	lastAssign    primary.AssignRoleRequest
}

func (m *mockEntityService) RegisterDonor(ctx context.Context, req primary.RegisterDonorRequest) (*primary.MutationResult, error) {
	m.lastRegister = req
	if m.err != nil {
		return nil, m.err
	}
	return okResult("registered donor " + req.Email), nil
}

func (m *mockEntityService) AddVolunteer(ctx context.Context, req primary.AddVolunteerRequest) (*primary.MutationResult, error) {
	m.lastVolunteer = req
	if m.err != nil {
		return nil, m.err
	}
	return okResult("added volunteer " + req.Email), nil
}

func (m *mockEntityService) AssignRole(ctx context.Context, req primary.AssignRoleRequest) (*primary.MutationResult, error) {
	m.lastAssign = req
	if m.err != nil {
		return nil, m.err
	}
	return okResult(req.Email + " is now a " + string(req.Role)), nil
}

func (m *mockEntityService) GetEntity(ctx context.Context, email string) (*primary.Entity, error) {
	if m.getEntityFn != nil {
		return m.getEntityFn(ctx, email)
	}
	return &primary.Entity{Email: email, Name: "Test"}, nil
}

// mockCampaignService implements primary.CampaignService for testing
type mockCampaignService struct {
	annotateResult *primary.MutationResult
	campaigns      []*primary.Campaign
	err            error

	lastCreate   primary.CreateCampaignRequest
	lastAnnotate primary.AnnotateCampaignRequest
}

func (m *mockCampaignService) CreateCampaign(ctx context.Context, req primary.CreateCampaignRequest) (*primary.MutationResult, error) {
	m.lastCreate = req
	if m.err != nil {
		return nil, m.err
	}
	return okResult("created campaign " + req.Key.String()), nil
}

func (m *mockCampaignService) AddCampaignAnnotation(ctx context.Context, req primary.AnnotateCampaignRequest) (*primary.MutationResult, error) {
	m.lastAnnotate = req
	if m.err != nil {
		return nil, m.err
	}
	if m.annotateResult != nil {
		return m.annotateResult, nil
	}
	return okResult("annotated campaign " + req.Key.String()), nil
}

func (m *mockCampaignService) GetCampaign(ctx context.Context, key models.CampaignKey) (*primary.Campaign, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &primary.Campaign{Key: key, Phase: "planning", DurationDays: 30, Budget: models.Cents(1250050)}, nil
}

func (m *mockCampaignService) ListCampaigns(ctx context.Context) ([]*primary.Campaign, error) {
	return m.campaigns, m.err
}

// mockActivityService implements primary.ActivityService for testing
type mockActivityService struct {
	err error

	lastSchedule primary.ScheduleRequest
	lastDonation primary.DonationRequest
	lastHistory  primary.MembershipHistoryRequest
	lastAnnotate primary.AnnotateMembershipHistoryRequest
}

func (m *mockActivityService) ScheduleVolunteer(ctx context.Context, req primary.ScheduleRequest) (*primary.MutationResult, error) {
	m.lastSchedule = req
	if m.err != nil {
		return nil, m.err
	}
	return okResult("scheduled " + req.Email), nil
}

func (m *mockActivityService) MakeDonation(ctx context.Context, req primary.DonationRequest) (*primary.MutationResult, error) {
	m.lastDonation = req
	if m.err != nil {
		return nil, m.err
	}
	return okResult("recorded donation"), nil
}

func (m *mockActivityService) AddMembershipHistory(ctx context.Context, req primary.MembershipHistoryRequest) (*primary.MutationResult, error) {
	m.lastHistory = req
	if m.err != nil {
		return nil, m.err
	}
	return okResult("recorded involvement"), nil
}

func (m *mockActivityService) UpdateMembershipHistoryAnnotation(ctx context.Context, req primary.AnnotateMembershipHistoryRequest) (*primary.MutationResult, error) {
	m.lastAnnotate = req
	if m.err != nil {
		return nil, m.err
	}
	return &primary.MutationResult{NoMatch: true, Message: "no membership history found"}, nil
}

// mockReportService implements primary.ReportService for testing
type mockReportService struct {
	accounting *primary.AccountingReport
	engagement *primary.EngagementReport
	dashboard  *primary.Dashboard
	err        error
}

func (m *mockReportService) AccountingReport(ctx context.Context) (*primary.AccountingReport, error) {
	return m.accounting, m.err
}

func (m *mockReportService) EngagementScores(ctx context.Context) (*primary.EngagementReport, error) {
	return m.engagement, m.err
}

func (m *mockReportService) ActivityDashboard(ctx context.Context, email string) (*primary.Dashboard, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.dashboard != nil {
		return m.dashboard, nil
	}
	return &primary.Dashboard{
		Email:        email,
		Donations:    []primary.DashboardDonation{},
		Volunteering: []primary.DashboardInvolvement{},
		Scheduled:    []primary.DashboardScheduled{},
	}, nil
}
