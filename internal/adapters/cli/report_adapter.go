package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/example/outreach/internal/models"
	"github.com/example/outreach/internal/ports/primary"
)

var printer = message.NewPrinter(language.English)

// formatMoney renders an amount with grouped thousands, e.g. 12,500.00.
// Whole units and cents are formatted separately so no precision is lost.
func formatMoney(m models.Money) string {
	c := m.Cents
	sign := ""
	if c < 0 {
		sign = "-"
	}
	whole, cents := c/100, c%100
	if whole < 0 {
		whole = -whole
	}
	if cents < 0 {
		cents = -cents
	}
	return sign + printer.Sprintf("%d", whole) + fmt.Sprintf(".%02d", cents)
}

// ReportAdapter renders the read-only reports.
type ReportAdapter struct {
	service primary.ReportService
	out     io.Writer
}

// NewReportAdapter creates a new ReportAdapter with the given service.
func NewReportAdapter(service primary.ReportService, out io.Writer) *ReportAdapter {
	return &ReportAdapter{
		service: service,
		out:     out,
	}
}

// Accounting prints one coverage line and bar per campaign.
func (a *ReportAdapter) Accounting(ctx context.Context) error {
	report, err := a.service.AccountingReport(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute accounting report: %w", err)
	}

	if len(report.Lines) == 0 {
		fmt.Fprintln(a.out, "No campaigns found")
		return nil
	}

	covered := color.New(color.FgGreen)
	partial := color.New(color.FgYellow)
	faint := color.New(color.Faint)

	for _, l := range report.Lines {
		fmt.Fprintf(a.out, "Campaign: %s, Location: %s, Start: %s, Budget: %s, Donations: %s, ",
			l.Campaign.Issue, l.Campaign.Location, l.Campaign.StartDate,
			formatMoney(l.Budget), formatMoney(l.TotalDonations))

		if !l.Applicable {
			fmt.Fprintf(a.out, "Coverage: %s\n", faint.Sprint("N/A (No budget specified)"))
			continue
		}

		fmt.Fprintf(a.out, "Coverage: %.2f%%\n", l.Coverage)
		bar := partial
		if l.Coverage >= 100 {
			bar = covered
		}
		fmt.Fprintf(a.out, "[%s]\n", bar.Sprint(l.Bar))
	}
	return nil
}

// Engagement prints each scored entity, ordered by email.
func (a *ReportAdapter) Engagement(ctx context.Context) error {
	report, err := a.service.EngagementScores(ctx)
	if err != nil {
		return fmt.Errorf("failed to compute engagement scores: %w", err)
	}

	if len(report.Ranked) == 0 {
		fmt.Fprintln(a.out, "No engagement recorded")
		return nil
	}

	fmt.Fprintf(a.out, "\nEngagement scores as of %s\n", report.EvaluatedOn)
	fmt.Fprintf(a.out, "%-40s %6s\n", "EMAIL", "SCORE")
	fmt.Fprintln(a.out, "───────────────────────────────────────────────")
	for _, e := range report.Ranked {
		fmt.Fprintf(a.out, "%-40s %6d\n", e.Email, e.Score)
	}
	fmt.Fprintln(a.out)
	return nil
}

// Dashboard prints one entity's donations, volunteering history, and
// scheduled engagements.
func (a *ReportAdapter) Dashboard(ctx context.Context, email string) error {
	d, err := a.service.ActivityDashboard(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to build dashboard: %w", err)
	}

	heading := color.New(color.Bold)
	none := color.New(color.Faint).Sprint("  (none)")

	fmt.Fprintf(a.out, "\nActivity for %s\n", d.Email)

	fmt.Fprintln(a.out, heading.Sprint("Donations:"))
	if len(d.Donations) == 0 {
		fmt.Fprintln(a.out, none)
	}
	for _, x := range d.Donations {
		fmt.Fprintf(a.out, "  Issue: %s, Location: %s, Date: %s, Amount: %s\n",
			x.Issue, x.Location, x.DonationDate, formatMoney(x.Amount))
	}

	fmt.Fprintln(a.out, heading.Sprint("Volunteering History:"))
	if len(d.Volunteering) == 0 {
		fmt.Fprintln(a.out, none)
	}
	for _, x := range d.Volunteering {
		end := "ongoing"
		if !x.InvolvementEnd.IsZero() {
			end = x.InvolvementEnd.String()
		}
		fmt.Fprintf(a.out, "  Issue: %s, Location: %s, Campaign Start: %s, From: %s, To: %s\n",
			x.Issue, x.Location, x.CampaignStartDate, x.InvolvementStart, end)
	}

	fmt.Fprintln(a.out, heading.Sprint("Scheduled:"))
	if len(d.Scheduled) == 0 {
		fmt.Fprintln(a.out, none)
	}
	for _, x := range d.Scheduled {
		fmt.Fprintf(a.out, "  Issue: %s, Location: %s, Campaign Start: %s, Date: %s\n",
			x.Issue, x.Location, x.CampaignStartDate, x.ScheduledDate)
	}
	fmt.Fprintln(a.out)
	return nil
}
