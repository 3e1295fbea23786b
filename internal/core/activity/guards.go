// Package activity contains the pure business logic for activity records:
// donations, membership history, and scheduled engagements.
package activity

import (
	"fmt"

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

// ReferenceContext describes the entity and campaign an activity row points at.
type ReferenceContext struct {
	Email          string
	EntityExists   bool
	CampaignKey    models.CampaignKey
	CampaignExists bool
}

// DonationContext provides context for donation guards.
type DonationContext struct {
	ReferenceContext
	DonationDate models.Date
	Amount       models.Money
}

// MembershipHistoryContext provides context for membership history guards.
type MembershipHistoryContext struct {
	ReferenceContext
	InvolvementStart models.Date
	InvolvementEnd   models.Date // zero when ongoing
}

// ScheduleContext provides context for scheduling guards.
type ScheduleContext struct {
	ReferenceContext
	ScheduledDate models.Date
}

// CheckReferences enforces that both sides of an activity resolve.
// The entity is checked first.
func CheckReferences(ctx ReferenceContext) GuardResult {
	if !ctx.EntityExists {
		return GuardResult{
			Kind:   models.ErrUnknownEntity,
			Reason: fmt.Sprintf("no entity found with email %s", ctx.Email),
		}
	}
	if !ctx.CampaignExists {
		return GuardResult{
			Kind:   models.ErrUnknownCampaign,
			Reason: fmt.Sprintf("no campaign found for %s", ctx.CampaignKey),
		}
	}
	return GuardResult{Allowed: true}
}

// CanMakeDonation evaluates whether a donation can be recorded.
// Rules:
// - Entity and campaign must exist
// - Amount must be positive, date set
func CanMakeDonation(ctx DonationContext) GuardResult {
	if r := CheckReferences(ctx.ReferenceContext); !r.Allowed {
		return r
	}
	if ctx.DonationDate.IsZero() {
		return GuardResult{Kind: models.ErrInvalidActivity, Reason: "donation date is required"}
	}
	if !ctx.Amount.IsPositive() {
		return GuardResult{
			Kind:   models.ErrInvalidActivity,
			Reason: fmt.Sprintf("donation amount must be positive (got %s)", ctx.Amount),
		}
	}
	return GuardResult{Allowed: true}
}

// CanAddMembershipHistory evaluates whether a membership history row can be added.
// Rules:
// - Entity and campaign must exist
// - Start date set; end date, when set, not before start
func CanAddMembershipHistory(ctx MembershipHistoryContext) GuardResult {
	if r := CheckReferences(ctx.ReferenceContext); !r.Allowed {
		return r
	}
	if ctx.InvolvementStart.IsZero() {
		return GuardResult{Kind: models.ErrInvalidActivity, Reason: "involvement start date is required"}
	}
	if !ctx.InvolvementEnd.IsZero() && ctx.InvolvementEnd.Before(ctx.InvolvementStart) {
		return GuardResult{
			Kind: models.ErrInvalidActivity,
			Reason: fmt.Sprintf("involvement end %s is before start %s",
				ctx.InvolvementEnd, ctx.InvolvementStart),
		}
	}
	return GuardResult{Allowed: true}
}

// CanSchedule evaluates whether an entity can be scheduled on a campaign.
func CanSchedule(ctx ScheduleContext) GuardResult {
	if r := CheckReferences(ctx.ReferenceContext); !r.Allowed {
		return r
	}
	if ctx.ScheduledDate.IsZero() {
		return GuardResult{Kind: models.ErrInvalidActivity, Reason: "scheduled date is required"}
	}
	return GuardResult{Allowed: true}
}

// IsActive reports whether an involvement counts as ongoing on the given day:
// no end date, or an end date strictly after today.
func IsActive(end, today models.Date) bool {
	return end.IsZero() || end.After(today)
}
