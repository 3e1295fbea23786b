// Package entity contains the pure business logic for entity and role operations.
// Guards are pure functions that evaluate preconditions without side effects.
package entity

import (
	"fmt"
	"net/mail"
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
	if r.Kind == nil {
		return fmt.Errorf("%s", r.Reason)
	}
	return fmt.Errorf("%w: %s", r.Kind, r.Reason)
}

// RegisterContext provides context for registering a new entity.
type RegisterContext struct {
	Email       string
	Name        string
	EmailExists bool
}

// VolunteerContext provides context for adding a volunteer, which registers
// the entity and schedules it on a campaign in one unit.
type VolunteerContext struct {
	RegisterContext
	Tier           string
	CampaignKey    models.CampaignKey
	CampaignExists bool
	ScheduledDate  models.Date
}

// AssignRoleContext provides context for adding a role fact to an entity.
type AssignRoleContext struct {
	Email        string
	Role         models.Role
	EntityExists bool
	AlreadyHeld  bool
	Tier         string
}

// ValidateEmail performs a light syntactic check on an entity email.
func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("email is required")
	}
	// A bare address only; display names and angle brackets are refused.
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("invalid email %q", email)
	}
	return nil
}

// CanRegister evaluates whether an entity can be registered.
// Rules:
// - Email must be well formed and name non-blank
// - Email must not already be registered
func CanRegister(ctx RegisterContext) GuardResult {
	if err := ValidateEmail(ctx.Email); err != nil {
		return GuardResult{Kind: models.ErrInvalidEntity, Reason: err.Error()}
	}
	if strings.TrimSpace(ctx.Name) == "" {
		return GuardResult{Kind: models.ErrInvalidEntity, Reason: "name is required"}
	}
	if ctx.EmailExists {
		return GuardResult{
			Kind:   models.ErrDuplicateEntity,
			Reason: fmt.Sprintf("an entity with email %s already exists", ctx.Email),
		}
	}
	return GuardResult{Allowed: true}
}

// CanAddVolunteer evaluates whether a volunteer can be added.
// Rules:
// - Campaign must exist
// - Registration rules apply to the new entity
// - Tier and scheduled date are required
func CanAddVolunteer(ctx VolunteerContext) GuardResult {
	if !ctx.CampaignExists {
		return GuardResult{
			Kind:   models.ErrUnknownCampaign,
			Reason: fmt.Sprintf("campaign %s not found", ctx.CampaignKey),
		}
	}
	if r := CanRegister(ctx.RegisterContext); !r.Allowed {
		return r
	}
	if strings.TrimSpace(ctx.Tier) == "" {
		return GuardResult{Kind: models.ErrInvalidEntity, Reason: "volunteer tier is required"}
	}
	if ctx.ScheduledDate.IsZero() {
		return GuardResult{Kind: models.ErrInvalidActivity, Reason: "scheduled date is required"}
	}
	return GuardResult{Allowed: true}
}

// CanAssignRole evaluates whether a role can be added to an entity.
// Rules:
// - Entity must exist
// - Role must not already be held
// - Volunteer role requires a tier
func CanAssignRole(ctx AssignRoleContext) GuardResult {
	if !ctx.EntityExists {
		return GuardResult{
			Kind:   models.ErrUnknownEntity,
			Reason: fmt.Sprintf("entity %s not found", ctx.Email),
		}
	}
	if ctx.AlreadyHeld {
		return GuardResult{
			Kind:   models.ErrDuplicateEntity,
			Reason: fmt.Sprintf("entity %s already holds role %s", ctx.Email, ctx.Role),
		}
	}
	if ctx.Role == models.RoleVolunteer && strings.TrimSpace(ctx.Tier) == "" {
		return GuardResult{Kind: models.ErrInvalidEntity, Reason: "volunteer tier is required"}
	}
	return GuardResult{Allowed: true}
}
