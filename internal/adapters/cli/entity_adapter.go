package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/example/outreach/internal/models"
	"github.com/example/outreach/internal/ports/primary"
)

// EntityAdapter is a thin adapter that translates CLI operations to EntityService calls.
type EntityAdapter struct {
	service primary.EntityService
	out     io.Writer
}

// NewEntityAdapter creates a new EntityAdapter with the given service.
func NewEntityAdapter(service primary.EntityService, out io.Writer) *EntityAdapter {
	return &EntityAdapter{
		service: service,
		out:     out,
	}
}

// RegisterDonor registers a new entity.
func (a *EntityAdapter) RegisterDonor(ctx context.Context, email, name string) error {
	res, err := a.service.RegisterDonor(ctx, primary.RegisterDonorRequest{Email: email, Name: name})
	if err != nil {
		return err
	}
	printOutcome(a.out, res)
	return nil
}

// AddVolunteer registers a volunteer with a first scheduled engagement.
func (a *EntityAdapter) AddVolunteer(ctx context.Context, email, name, tier string, campaign KeyArgs, scheduledDate string) error {
	key, err := campaign.parse()
	if err != nil {
		return err
	}
	scheduled, err := parseActivityDate("scheduled date", scheduledDate)
	if err != nil {
		return err
	}

	res, err := a.service.AddVolunteer(ctx, primary.AddVolunteerRequest{
		Email:         email,
		Name:          name,
		Tier:          tier,
		Campaign:      key,
		ScheduledDate: scheduled,
	})
	if err != nil {
		return err
	}
	printOutcome(a.out, res)
	return nil
}

// AssignRole adds a role to an existing entity.
func (a *EntityAdapter) AssignRole(ctx context.Context, email, role, tier string) error {
	r, err := models.ParseRole(role)
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrInvalidEntity, err)
	}

	res, err := a.service.AssignRole(ctx, primary.AssignRoleRequest{Email: email, Role: r, Tier: tier})
	if err != nil {
		return err
	}
	printOutcome(a.out, res)
	return nil
}

// Show displays an entity and its roles.
func (a *EntityAdapter) Show(ctx context.Context, email string) error {
	entity, err := a.service.GetEntity(ctx, email)
	if err != nil {
		return err
	}

	roles := "none"
	if len(entity.Roles) > 0 {
		names := make([]string, len(entity.Roles))
		for i, r := range entity.Roles {
			names[i] = string(r)
		}
		roles = strings.Join(names, ", ")
	}

	fmt.Fprintf(a.out, "\nEntity: %s\n", entity.Email)
	fmt.Fprintf(a.out, "Name:   %s\n", entity.Name)
	fmt.Fprintf(a.out, "Roles:  %s\n", roles)
	if entity.Tier != "" {
		fmt.Fprintf(a.out, "Tier:   %s\n", entity.Tier)
	}
	fmt.Fprintln(a.out)
	return nil
}
