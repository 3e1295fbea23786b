package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/outreach/internal/models"
	"github.com/example/outreach/internal/ports/primary"
)

// CampaignAdapter is a thin adapter that translates CLI operations to CampaignService calls.
type CampaignAdapter struct {
	service primary.CampaignService
	out     io.Writer
}

// NewCampaignAdapter creates a new CampaignAdapter with the given service.
func NewCampaignAdapter(service primary.CampaignService, out io.Writer) *CampaignAdapter {
	return &CampaignAdapter{
		service: service,
		out:     out,
	}
}

// Create creates a new campaign. budget is a decimal amount; pushDate may be empty.
func (a *CampaignAdapter) Create(ctx context.Context, campaign KeyArgs, durationDays int, phase, budget, pushDate string) error {
	key, err := campaign.parse()
	if err != nil {
		return err
	}
	amount, err := models.ParseMoney(budget)
	if err != nil {
		return fmt.Errorf("%w: budget: %v", models.ErrInvalidCampaign, err)
	}
	push, err := models.ParseOptionalDate(pushDate)
	if err != nil {
		return fmt.Errorf("%w: website push date: %v", models.ErrInvalidCampaign, err)
	}

	res, err := a.service.CreateCampaign(ctx, primary.CreateCampaignRequest{
		Key:             key,
		DurationDays:    durationDays,
		Phase:           phase,
		Budget:          amount,
		WebsitePushDate: push,
	})
	if err != nil {
		return err
	}
	printOutcome(a.out, res)
	return nil
}

// Annotate overwrites a campaign's annotation.
func (a *CampaignAdapter) Annotate(ctx context.Context, campaign KeyArgs, annotation string) error {
	key, err := campaign.parse()
	if err != nil {
		return err
	}

	res, err := a.service.AddCampaignAnnotation(ctx, primary.AnnotateCampaignRequest{Key: key, Annotation: annotation})
	if err != nil {
		return err
	}
	printOutcome(a.out, res)
	return nil
}

// Show displays a single campaign.
func (a *CampaignAdapter) Show(ctx context.Context, campaign KeyArgs) error {
	key, err := campaign.parse()
	if err != nil {
		return err
	}
	c, err := a.service.GetCampaign(ctx, key)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "\nCampaign: %s\n", c.Key.Issue)
	fmt.Fprintf(a.out, "Location: %s\n", c.Key.Location)
	fmt.Fprintf(a.out, "Starts:   %s (%d days)\n", c.Key.StartDate, c.DurationDays)
	fmt.Fprintf(a.out, "Phase:    %s\n", c.Phase)
	fmt.Fprintf(a.out, "Budget:   %s\n", formatMoney(c.Budget))
	if !c.WebsitePushDate.IsZero() {
		fmt.Fprintf(a.out, "Website:  %s\n", c.WebsitePushDate)
	}
	if c.Annotations != "" {
		fmt.Fprintf(a.out, "Notes:    %s\n", c.Annotations)
	}
	fmt.Fprintln(a.out)
	return nil
}

// List lists every campaign.
func (a *CampaignAdapter) List(ctx context.Context) error {
	campaigns, err := a.service.ListCampaigns(ctx)
	if err != nil {
		return fmt.Errorf("failed to list campaigns: %w", err)
	}

	if len(campaigns) == 0 {
		fmt.Fprintln(a.out, "No campaigns found")
		return nil
	}

	fmt.Fprintf(a.out, "\n%-20s %-16s %-11s %-10s %14s\n", "ISSUE", "LOCATION", "START", "PHASE", "BUDGET")
	fmt.Fprintln(a.out, "────────────────────────────────────────────────────────────────────────────")
	for _, c := range campaigns {
		fmt.Fprintf(a.out, "%-20s %-16s %-11s %-10s %14s\n", c.Key.Issue, c.Key.Location, c.Key.StartDate, c.Phase, formatMoney(c.Budget))
	}
	fmt.Fprintln(a.out)
	return nil
}
