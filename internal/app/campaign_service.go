package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	corecampaign "github.com/example/outreach/internal/core/campaign"
	"github.com/example/outreach/internal/models"
	"github.com/example/outreach/internal/ports/primary"
	"github.com/example/outreach/internal/ports/secondary"
)

// CampaignServiceImpl implements the CampaignService interface.
type CampaignServiceImpl struct {
	uow    secondary.UnitOfWork
	logger zerolog.Logger
}

// NewCampaignService creates a new CampaignService with injected dependencies.
func NewCampaignService(uow secondary.UnitOfWork, logger zerolog.Logger) *CampaignServiceImpl {
	return &CampaignServiceImpl{
		uow:    uow,
		logger: logger.With().Str("component", "campaign").Logger(),
	}
}

// CreateCampaign creates a new campaign.
func (s *CampaignServiceImpl) CreateCampaign(ctx context.Context, req primary.CreateCampaignRequest) (*primary.MutationResult, error) {
	phase := strings.TrimSpace(req.Phase)

	err := s.uow.Do(ctx, func(ctx context.Context, repos secondary.Repositories) error {
		exists, err := repos.Campaigns.Exists(ctx, req.Key)
		if err != nil {
			return err
		}

		guardCtx := corecampaign.CreateCampaignContext{
			Key:             req.Key,
			KeyExists:       exists,
			DurationDays:    req.DurationDays,
			Phase:           phase,
			Budget:          req.Budget,
			WebsitePushDate: req.WebsitePushDate,
		}
		if err := corecampaign.CanCreateCampaign(guardCtx).Error(); err != nil {
			return err
		}

		return repos.Campaigns.Create(ctx, &secondary.CampaignRecord{
			Key:             req.Key,
			DurationDays:    req.DurationDays,
			Phase:           phase,
			Budget:          req.Budget,
			WebsitePushDate: req.WebsitePushDate,
		})
	})

	var res *primary.MutationResult
	if err == nil {
		res = applied(fmt.Sprintf("created campaign %s", req.Key), 1)
	}
	logOutcome(s.logger, "create_campaign", res, err)
	return res, err
}

// AddCampaignAnnotation sets the annotation on a campaign. A key that does
// not resolve is reported as NoMatch, not as an error.
func (s *CampaignServiceImpl) AddCampaignAnnotation(ctx context.Context, req primary.AnnotateCampaignRequest) (*primary.MutationResult, error) {
	var rows int64
	err := s.uow.Do(ctx, func(ctx context.Context, repos secondary.Repositories) error {
		n, err := repos.Campaigns.UpdateAnnotations(ctx, req.Key, req.Annotation)
		rows = n
		return err
	})

	var res *primary.MutationResult
	switch {
	case err != nil:
	case rows == 0:
		res = noMatch(fmt.Sprintf("no campaign found for %s", req.Key))
	default:
		res = applied(fmt.Sprintf("annotated campaign %s", req.Key), rows)
	}
	logOutcome(s.logger, "add_campaign_annotation", res, err)
	return res, err
}

// GetCampaign retrieves a campaign by its key.
func (s *CampaignServiceImpl) GetCampaign(ctx context.Context, key models.CampaignKey) (*primary.Campaign, error) {
	var campaign *primary.Campaign
	err := s.uow.Read(ctx, func(ctx context.Context, repos secondary.Repositories) error {
		record, err := repos.Campaigns.GetByKey(ctx, key)
		if err != nil {
			return err
		}
		if record == nil {
			return fmt.Errorf("%w: no campaign found for %s", models.ErrUnknownCampaign, key)
		}
		campaign = s.recordToCampaign(record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return campaign, nil
}

// ListCampaigns retrieves all campaigns ordered by key.
func (s *CampaignServiceImpl) ListCampaigns(ctx context.Context) ([]*primary.Campaign, error) {
	var campaigns []*primary.Campaign
	err := s.uow.Read(ctx, func(ctx context.Context, repos secondary.Repositories) error {
		records, err := repos.Campaigns.List(ctx)
		if err != nil {
			return err
		}
		campaigns = make([]*primary.Campaign, len(records))
		for i, r := range records {
			campaigns[i] = s.recordToCampaign(r)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

// Helper methods

func (s *CampaignServiceImpl) recordToCampaign(r *secondary.CampaignRecord) *primary.Campaign {
	return &primary.Campaign{
		Key:             r.Key,
		DurationDays:    r.DurationDays,
		Phase:           r.Phase,
		Budget:          r.Budget,
		WebsitePushDate: r.WebsitePushDate,
		Annotations:     r.Annotations,
	}
}

// Ensure CampaignServiceImpl implements the interface.
var _ primary.CampaignService = (*CampaignServiceImpl)(nil)
