// Package campaign contains the pure business logic for campaign operations.
package campaign

import (
	"fmt"
	"strings"

	"github.com/example/outreach/internal/models"
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Kind    error
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%w: %s", r.Kind, r.Reason)
}

// CreateCampaignContext provides context for campaign creation guards.
type CreateCampaignContext struct {
	Key             models.CampaignKey
	KeyExists       bool
	DurationDays    int
	Phase           string
	Budget          models.Money
	WebsitePushDate models.Date
}

// CanCreateCampaign evaluates whether a campaign can be created.
// Rules:
// - Key must be complete
// - Key must not already exist
// - Duration and budget must be non-negative, phase non-blank
func CanCreateCampaign(ctx CreateCampaignContext) GuardResult {
	if err := ctx.Key.Validate(); err != nil {
		return GuardResult{Kind: models.ErrInvalidCampaign, Reason: err.Error()}
	}
	if ctx.KeyExists {
		return GuardResult{
			Kind:   models.ErrDuplicateCampaign,
			Reason: fmt.Sprintf("campaign %s already exists", ctx.Key),
		}
	}
	if ctx.DurationDays < 0 {
		return GuardResult{
			Kind:   models.ErrInvalidCampaign,
			Reason: fmt.Sprintf("duration must be non-negative (got %d days)", ctx.DurationDays),
		}
	}
	if ctx.Budget.IsNegative() {
		return GuardResult{
			Kind:   models.ErrInvalidCampaign,
			Reason: fmt.Sprintf("budget must be non-negative (got %s)", ctx.Budget),
		}
	}
	if strings.TrimSpace(ctx.Phase) == "" {
		return GuardResult{Kind: models.ErrInvalidCampaign, Reason: "phase is required"}
	}
	return GuardResult{Allowed: true}
}
