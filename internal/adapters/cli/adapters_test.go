package cli

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/outreach/internal/models"
	"github.com/example/outreach/internal/ports/primary"
)

var parks = KeyArgs{Issue: "Parks", Location: "Burnaby", StartDate: "2024-05-10"}

func TestEntityAdapter_RegisterDonor(t *testing.T) {
	svc := &mockEntityService{}
	var out bytes.Buffer
	adapter := NewEntityAdapter(svc, &out)

	require.NoError(t, adapter.RegisterDonor(context.Background(), "ada@example.org", "Ada"))

	assert.Equal(t, "ada@example.org", svc.lastRegister.Email)
	assert.Equal(t, "✓ Registered donor ada@example.org\n", out.String())
}

func TestEntityAdapter_RegisterDonorPassesErrorsThrough(t *testing.T) {
	svc := &mockEntityService{err: models.ErrDuplicateEntity}
	var out bytes.Buffer
	adapter := NewEntityAdapter(svc, &out)

	err := adapter.RegisterDonor(context.Background(), "ada@example.org", "Ada")
	assert.ErrorIs(t, err, models.ErrDuplicateEntity)
	assert.Empty(t, out.String())
}

func TestEntityAdapter_AddVolunteerParsesInput(t *testing.T) {
	svc := &mockEntityService{}
	var out bytes.Buffer
	adapter := NewEntityAdapter(svc, &out)

	require.NoError(t, adapter.AddVolunteer(context.Background(), "alan@example.org", "Alan", "gold", parks, "2024-05-18"))

	assert.Equal(t, "gold", svc.lastVolunteer.Tier)
	assert.Equal(t, "Parks/Burnaby/2024-05-10", svc.lastVolunteer.Campaign.String())
	assert.Equal(t, "2024-05-18", svc.lastVolunteer.ScheduledDate.String())
}

func TestEntityAdapter_AddVolunteerRejectsBadInput(t *testing.T) {
	tests := []struct {
		name      string
		campaign  KeyArgs
		scheduled string
		wantKind  error
	}{
		{"bad campaign date", KeyArgs{Issue: "Parks", Location: "Burnaby", StartDate: "10/05/2024"}, "2024-05-18", models.ErrInvalidCampaign},
		{"missing location", KeyArgs{Issue: "Parks", StartDate: "2024-05-10"}, "2024-05-18", models.ErrInvalidCampaign},
		{"missing scheduled date", parks, "", models.ErrInvalidActivity},
		{"bad scheduled date", parks, "soon", models.ErrInvalidActivity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockEntityService{}
			adapter := NewEntityAdapter(svc, &bytes.Buffer{})

			err := adapter.AddVolunteer(context.Background(), "alan@example.org", "Alan", "gold", tt.campaign, tt.scheduled)
			assert.ErrorIs(t, err, tt.wantKind)
			assert.Empty(t, svc.lastVolunteer.Email, "service must not be called")
		})
	}
}

func TestEntityAdapter_AssignRole(t *testing.T) {
	svc := &mockEntityService{}
	var out bytes.Buffer
	adapter := NewEntityAdapter(svc, &out)

	require.NoError(t, adapter.AssignRole(context.Background(), "ada@example.org", "Member", ""))
	assert.Equal(t, models.RoleMember, svc.lastAssign.Role)

	err := adapter.AssignRole(context.Background(), "ada@example.org", "board", "")
	assert.ErrorIs(t, err, models.ErrInvalidEntity)
}

func TestEntityAdapter_Show(t *testing.T) {
	svc := &mockEntityService{
		getEntityFn: func(ctx context.Context, email string) (*primary.Entity, error) {
			return &primary.Entity{
				Email: email,
				Name:  "Grace",
				Roles: []models.Role{models.RoleMember, models.RoleVolunteer},
				Tier:  "gold",
			}, nil
		},
	}
	var out bytes.Buffer
	adapter := NewEntityAdapter(svc, &out)

	require.NoError(t, adapter.Show(context.Background(), "grace@example.org"))
	assert.Contains(t, out.String(), "Roles:  member, volunteer")
	assert.Contains(t, out.String(), "Tier:   gold")
}

func TestCampaignAdapter_Create(t *testing.T) {
	svc := &mockCampaignService{}
	var out bytes.Buffer
	adapter := NewCampaignAdapter(svc, &out)

	require.NoError(t, adapter.Create(context.Background(), parks, 30, "planning", "1200,50", ""))

	assert.Equal(t, int64(120050), svc.lastCreate.Budget.Cents)
	assert.True(t, svc.lastCreate.WebsitePushDate.IsZero())
	assert.Contains(t, out.String(), "✓ Created campaign Parks/Burnaby/2024-05-10")
}

func TestCampaignAdapter_CreateRejectsBadBudget(t *testing.T) {
	adapter := NewCampaignAdapter(&mockCampaignService{}, &bytes.Buffer{})

	err := adapter.Create(context.Background(), parks, 30, "planning", "-5", "")
	assert.ErrorIs(t, err, models.ErrInvalidCampaign)

	err = adapter.Create(context.Background(), parks, 30, "planning", "5", "tomorrow")
	assert.ErrorIs(t, err, models.ErrInvalidCampaign)
}

func TestCampaignAdapter_AnnotateNoMatch(t *testing.T) {
	svc := &mockCampaignService{
		annotateResult: &primary.MutationResult{NoMatch: true, Message: "no campaign found for Parks/Burnaby/2024-05-10"},
	}
	var out bytes.Buffer
	adapter := NewCampaignAdapter(svc, &out)

	require.NoError(t, adapter.Annotate(context.Background(), parks, "note"))
	assert.Equal(t, "- no campaign found for Parks/Burnaby/2024-05-10\n", out.String())
}

func TestCampaignAdapter_ShowAndList(t *testing.T) {
	k, err := models.NewCampaignKey("Parks", "Burnaby", "2024-05-10")
	require.NoError(t, err)
	svc := &mockCampaignService{campaigns: []*primary.Campaign{{Key: k, Phase: "planning", Budget: models.Cents(1250050)}}}
	var out bytes.Buffer
	adapter := NewCampaignAdapter(svc, &out)

	require.NoError(t, adapter.Show(context.Background(), parks))
	assert.Contains(t, out.String(), "Budget:   12,500.50")

	out.Reset()
	require.NoError(t, adapter.List(context.Background()))
	assert.Contains(t, out.String(), "Parks")
	assert.Contains(t, out.String(), "12,500.50")

	out.Reset()
	empty := NewCampaignAdapter(&mockCampaignService{}, &out)
	require.NoError(t, empty.List(context.Background()))
	assert.Equal(t, "No campaigns found\n", out.String())
}

func TestActivityAdapter_Donate(t *testing.T) {
	svc := &mockActivityService{}
	var out bytes.Buffer
	adapter := NewActivityAdapter(svc, &out)

	require.NoError(t, adapter.Donate(context.Background(), "ada@example.org", parks, "2024-05-12", "25.5"))
	assert.Equal(t, int64(2550), svc.lastDonation.Amount.Cents)
	assert.Equal(t, "2024-05-12", svc.lastDonation.DonationDate.String())

	err := adapter.Donate(context.Background(), "ada@example.org", parks, "2024-05-12", "lots")
	assert.ErrorIs(t, err, models.ErrInvalidActivity)
}

func TestActivityAdapter_AddHistoryOngoing(t *testing.T) {
	svc := &mockActivityService{}
	adapter := NewActivityAdapter(svc, &bytes.Buffer{})

	require.NoError(t, adapter.AddHistory(context.Background(), "grace@example.org", parks, "2024-05-10", "", "lead"))
	assert.True(t, svc.lastHistory.InvolvementEnd.IsZero())
	assert.Equal(t, "lead", svc.lastHistory.Annotations)

	err := adapter.AddHistory(context.Background(), "grace@example.org", parks, "2024-05-10", "june", "")
	assert.ErrorIs(t, err, models.ErrInvalidActivity)
}

func TestActivityAdapter_ScheduleAndAnnotate(t *testing.T) {
	svc := &mockActivityService{}
	var out bytes.Buffer
	adapter := NewActivityAdapter(svc, &out)

	require.NoError(t, adapter.Schedule(context.Background(), "alan@example.org", parks, "2024-05-18"))
	assert.Equal(t, "2024-05-18", svc.lastSchedule.ScheduledDate.String())

	out.Reset()
	require.NoError(t, adapter.AnnotateHistory(context.Background(), "alan@example.org", parks, "note"))
	assert.Equal(t, "- no membership history found\n", out.String())
}

func TestReportAdapter_Accounting(t *testing.T) {
	k1, _ := models.NewCampaignKey("Clean Water", "Vancouver", "2024-03-01")
	k2, _ := models.NewCampaignKey("Housing", "Surrey", "2024-06-01")
	svc := &mockReportService{accounting: &primary.AccountingReport{Lines: []primary.CoverageLine{
		{Campaign: k1, Budget: models.Cents(100000), TotalDonations: models.Cents(150000), Applicable: true, Coverage: 150, Bar: "###"},
		{Campaign: k2, Budget: models.Cents(0), TotalDonations: models.Cents(0)},
	}}}
	var out bytes.Buffer
	adapter := NewReportAdapter(svc, &out)

	require.NoError(t, adapter.Accounting(context.Background()))
	got := out.String()
	assert.Contains(t, got, "Campaign: Clean Water, Location: Vancouver, Start: 2024-03-01, Budget: 1,000.00, Donations: 1,500.00, Coverage: 150.00%\n[###]\n")
	assert.Contains(t, got, "Campaign: Housing, Location: Surrey, Start: 2024-06-01, Budget: 0.00, Donations: 0.00, Coverage: N/A (No budget specified)\n")
}

func TestReportAdapter_Engagement(t *testing.T) {
	svc := &mockReportService{engagement: &primary.EngagementReport{
		EvaluatedOn: models.NewDate(2024, 6, 1),
		Ranked:      []primary.EngagementEntry{{Email: "ada@example.org", Score: 50}},
	}}
	var out bytes.Buffer
	adapter := NewReportAdapter(svc, &out)

	require.NoError(t, adapter.Engagement(context.Background()))
	assert.Contains(t, out.String(), "as of 2024-06-01")
	assert.Contains(t, out.String(), "ada@example.org")
	assert.Contains(t, out.String(), "50")

	out.Reset()
	empty := NewReportAdapter(&mockReportService{engagement: &primary.EngagementReport{}}, &out)
	require.NoError(t, empty.Engagement(context.Background()))
	assert.Equal(t, "No engagement recorded\n", out.String())
}

func TestReportAdapter_DashboardEmptySections(t *testing.T) {
	var out bytes.Buffer
	adapter := NewReportAdapter(&mockReportService{}, &out)

	require.NoError(t, adapter.Dashboard(context.Background(), "nobody@example.org"))
	got := out.String()
	assert.Contains(t, got, "Activity for nobody@example.org")
	assert.Equal(t, 3, bytes.Count(out.Bytes(), []byte("(none)")))
}

func TestReportAdapter_DashboardLines(t *testing.T) {
	svc := &mockReportService{dashboard: &primary.Dashboard{
		Email: "grace@example.org",
		Donations: []primary.DashboardDonation{
			{Issue: "Parks", Location: "Burnaby", DonationDate: models.NewDate(2024, 5, 12), Amount: models.Cents(2500)},
		},
		Volunteering: []primary.DashboardInvolvement{
			{Issue: "Parks", Location: "Burnaby", CampaignStartDate: models.NewDate(2024, 5, 10), InvolvementStart: models.NewDate(2024, 5, 10)},
		},
		Scheduled: []primary.DashboardScheduled{},
	}}
	var out bytes.Buffer
	adapter := NewReportAdapter(svc, &out)

	require.NoError(t, adapter.Dashboard(context.Background(), "grace@example.org"))
	got := out.String()
	assert.Contains(t, got, "Issue: Parks, Location: Burnaby, Date: 2024-05-12, Amount: 25.00")
	assert.Contains(t, got, "From: 2024-05-10, To: ongoing")
	assert.Equal(t, 1, bytes.Count(out.Bytes(), []byte("(none)")))
}

func TestReportAdapter_WrapsServiceErrors(t *testing.T) {
	adapter := NewReportAdapter(&mockReportService{err: models.ErrStoreUnavailable}, &bytes.Buffer{})

	err := adapter.Accounting(context.Background())
	assert.True(t, errors.Is(err, models.ErrStoreUnavailable))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "0.00", formatMoney(models.Cents(0)))
	assert.Equal(t, "12.34", formatMoney(models.Cents(1234)))
	assert.Equal(t, "1,234,567.89", formatMoney(models.Cents(123456789)))
	assert.Equal(t, "-1.50", formatMoney(models.Cents(-150)))
	assert.Equal(t, "-0.05", formatMoney(models.Cents(-5)))
	assert.Equal(t, "92,233,720,368,547,758.07", formatMoney(models.Cents(math.MaxInt64)))
}
