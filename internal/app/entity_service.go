package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	coreentity "github.com/example/outreach/internal/core/entity"
	"github.com/example/outreach/internal/models"
	"github.com/example/outreach/internal/ports/primary"
	"github.com/example/outreach/internal/ports/secondary"
)

// EntityServiceImpl implements the EntityService interface.
type EntityServiceImpl struct {
	uow    secondary.UnitOfWork
	logger zerolog.Logger
}

// NewEntityService creates a new EntityService with injected dependencies.
func NewEntityService(uow secondary.UnitOfWork, logger zerolog.Logger) *EntityServiceImpl {
	return &EntityServiceImpl{
		uow:    uow,
		logger: logger.With().Str("component", "entity").Logger(),
	}
}

// RegisterDonor registers a new entity.
func (s *EntityServiceImpl) RegisterDonor(ctx context.Context, req primary.RegisterDonorRequest) (*primary.MutationResult, error) {
	email := strings.TrimSpace(req.Email)
	name := strings.TrimSpace(req.Name)

	err := s.uow.Do(ctx, func(ctx context.Context, repos secondary.Repositories) error {
		exists, err := repos.Entities.Exists(ctx, email)
		if err != nil {
			return err
		}

		guardCtx := coreentity.RegisterContext{
			Email:       email,
			Name:        name,
			EmailExists: exists,
		}
		if err := coreentity.CanRegister(guardCtx).Error(); err != nil {
			return err
		}

		return repos.Entities.Create(ctx, &secondary.EntityRecord{Email: email, Name: name})
	})

	var res *primary.MutationResult
	if err == nil {
		res = applied(fmt.Sprintf("registered donor %s", email), 1)
	}
	logOutcome(s.logger, "register_donor", res, err)
	return res, err
}

// AddVolunteer registers an entity, its volunteer role, and its first
// scheduled engagement. Either all three rows are written or none.
func (s *EntityServiceImpl) AddVolunteer(ctx context.Context, req primary.AddVolunteerRequest) (*primary.MutationResult, error) {
	email := strings.TrimSpace(req.Email)
	name := strings.TrimSpace(req.Name)
	tier := strings.TrimSpace(req.Tier)

	err := s.uow.Do(ctx, func(ctx context.Context, repos secondary.Repositories) error {
		campaignExists, err := repos.Campaigns.Exists(ctx, req.Campaign)
		if err != nil {
			return err
		}
		emailExists, err := repos.Entities.Exists(ctx, email)
		if err != nil {
			return err
		}

		guardCtx := coreentity.VolunteerContext{
			RegisterContext: coreentity.RegisterContext{
				Email:       email,
				Name:        name,
				EmailExists: emailExists,
			},
			Tier:           tier,
			CampaignKey:    req.Campaign,
			CampaignExists: campaignExists,
			ScheduledDate:  req.ScheduledDate,
		}
		if err := coreentity.CanAddVolunteer(guardCtx).Error(); err != nil {
			return err
		}

		if err := repos.Entities.Create(ctx, &secondary.EntityRecord{Email: email, Name: name}); err != nil {
			return err
		}
		if err := repos.Entities.AddRole(ctx, &secondary.RoleRecord{
			Email: email,
			Role:  models.RoleVolunteer,
			Tier:  tier,
		}); err != nil {
			return err
		}
		return repos.Scheduled.Create(ctx, &secondary.ScheduledRecord{
			Email:         email,
			Campaign:      req.Campaign,
			ScheduledDate: req.ScheduledDate,
		})
	})

	var res *primary.MutationResult
	if err == nil {
		res = applied(fmt.Sprintf("added volunteer %s scheduled on %s for %s", email, req.ScheduledDate, req.Campaign), 3)
	}
	logOutcome(s.logger, "add_volunteer", res, err)
	return res, err
}

// AssignRole adds a role fact to an existing entity.
func (s *EntityServiceImpl) AssignRole(ctx context.Context, req primary.AssignRoleRequest) (*primary.MutationResult, error) {
	email := strings.TrimSpace(req.Email)
	tier := strings.TrimSpace(req.Tier)

	err := s.uow.Do(ctx, func(ctx context.Context, repos secondary.Repositories) error {
		exists, err := repos.Entities.Exists(ctx, email)
		if err != nil {
			return err
		}
		held := false
		if exists {
			held, err = repos.Entities.HasRole(ctx, email, req.Role)
			if err != nil {
				return err
			}
		}

		guardCtx := coreentity.AssignRoleContext{
			Email:        email,
			Role:         req.Role,
			EntityExists: exists,
			AlreadyHeld:  held,
			Tier:         tier,
		}
		if err := coreentity.CanAssignRole(guardCtx).Error(); err != nil {
			return err
		}

		record := &secondary.RoleRecord{Email: email, Role: req.Role}
		if req.Role == models.RoleVolunteer {
			record.Tier = tier
		}
		return repos.Entities.AddRole(ctx, record)
	})

	var res *primary.MutationResult
	if err == nil {
		res = applied(fmt.Sprintf("%s is now a %s", email, req.Role), 1)
	}
	logOutcome(s.logger, "assign_role", res, err)
	return res, err
}

// GetEntity retrieves an entity with its roles.
func (s *EntityServiceImpl) GetEntity(ctx context.Context, email string) (*primary.Entity, error) {
	email = strings.TrimSpace(email)

	var entity *primary.Entity
	err := s.uow.Read(ctx, func(ctx context.Context, repos secondary.Repositories) error {
		record, err := repos.Entities.GetByEmail(ctx, email)
		if err != nil {
			return err
		}
		if record == nil {
			return fmt.Errorf("%w: no entity found with email %s", models.ErrUnknownEntity, email)
		}

		roles, err := repos.Entities.ListRoles(ctx, email)
		if err != nil {
			return err
		}

		entity = &primary.Entity{
			Email: record.Email,
			Name:  record.Name,
			Roles: make([]models.Role, 0, len(roles)),
		}
		for _, r := range roles {
			entity.Roles = append(entity.Roles, r.Role)
			if r.Role == models.RoleVolunteer {
				entity.Tier = r.Tier
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// Ensure EntityServiceImpl implements the interface.
var _ primary.EntityService = (*EntityServiceImpl)(nil)
