package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	coreactivity "github.com/example/outreach/internal/core/activity"
	"github.com/example/outreach/internal/models"
	"github.com/example/outreach/internal/ports/primary"
	"github.com/example/outreach/internal/ports/secondary"
)

// ActivityServiceImpl implements the ActivityService interface.
type ActivityServiceImpl struct {
	uow    secondary.UnitOfWork
	logger zerolog.Logger
}

// NewActivityService creates a new ActivityService with injected dependencies.
func NewActivityService(uow secondary.UnitOfWork, logger zerolog.Logger) *ActivityServiceImpl {
	return &ActivityServiceImpl{
		uow:    uow,
		logger: logger.With().Str("component", "activity").Logger(),
	}
}

// ScheduleVolunteer plans an engagement for an existing entity.
func (s *ActivityServiceImpl) ScheduleVolunteer(ctx context.Context, req primary.ScheduleRequest) (*primary.MutationResult, error) {
	email := strings.TrimSpace(req.Email)

	err := s.uow.Do(ctx, func(ctx context.Context, repos secondary.Repositories) error {
		refs, err := s.resolveReferences(ctx, repos, email, req.Campaign)
		if err != nil {
			return err
		}

		guardCtx := coreactivity.ScheduleContext{
			ReferenceContext: refs,
			ScheduledDate:    req.ScheduledDate,
		}
		if err := coreactivity.CanSchedule(guardCtx).Error(); err != nil {
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
		res = applied(fmt.Sprintf("scheduled %s on %s for %s", email, req.ScheduledDate, req.Campaign), 1)
	}
	logOutcome(s.logger, "schedule_volunteer", res, err)
	return res, err
}

// MakeDonation records a donation against an existing entity and campaign.
func (s *ActivityServiceImpl) MakeDonation(ctx context.Context, req primary.DonationRequest) (*primary.MutationResult, error) {
	email := strings.TrimSpace(req.Email)

	err := s.uow.Do(ctx, func(ctx context.Context, repos secondary.Repositories) error {
		refs, err := s.resolveReferences(ctx, repos, email, req.Campaign)
		if err != nil {
			return err
		}

		guardCtx := coreactivity.DonationContext{
			ReferenceContext: refs,
			DonationDate:     req.DonationDate,
			Amount:           req.Amount,
		}
		if err := coreactivity.CanMakeDonation(guardCtx).Error(); err != nil {
			return err
		}

		return repos.Donations.Create(ctx, &secondary.DonationRecord{
			Email:        email,
			Campaign:     req.Campaign,
			DonationDate: req.DonationDate,
			Amount:       req.Amount,
		})
	})

	var res *primary.MutationResult
	if err == nil {
		res = applied(fmt.Sprintf("recorded donation of %s from %s to %s", req.Amount, email, req.Campaign), 1)
	}
	logOutcome(s.logger, "make_donation", res, err)
	return res, err
}

// AddMembershipHistory records a realized involvement.
func (s *ActivityServiceImpl) AddMembershipHistory(ctx context.Context, req primary.MembershipHistoryRequest) (*primary.MutationResult, error) {
	email := strings.TrimSpace(req.Email)

	err := s.uow.Do(ctx, func(ctx context.Context, repos secondary.Repositories) error {
		refs, err := s.resolveReferences(ctx, repos, email, req.Campaign)
		if err != nil {
			return err
		}

		guardCtx := coreactivity.MembershipHistoryContext{
			ReferenceContext: refs,
			InvolvementStart: req.InvolvementStart,
			InvolvementEnd:   req.InvolvementEnd,
		}
		if err := coreactivity.CanAddMembershipHistory(guardCtx).Error(); err != nil {
			return err
		}

		return repos.MembershipHistory.Create(ctx, &secondary.MembershipHistoryRecord{
			Email:            email,
			Campaign:         req.Campaign,
			InvolvementStart: req.InvolvementStart,
			InvolvementEnd:   req.InvolvementEnd,
			Annotations:      req.Annotations,
		})
	})

	var res *primary.MutationResult
	if err == nil {
		res = applied(fmt.Sprintf("added membership history for %s on %s", email, req.Campaign), 1)
	}
	logOutcome(s.logger, "add_membership_history", res, err)
	return res, err
}

// UpdateMembershipHistoryAnnotation overwrites the annotation on the
// involvement matching the entity and campaign key. Zero matching rows is
// reported as NoMatch.
func (s *ActivityServiceImpl) UpdateMembershipHistoryAnnotation(ctx context.Context, req primary.AnnotateMembershipHistoryRequest) (*primary.MutationResult, error) {
	email := strings.TrimSpace(req.Email)

	var rows int64
	err := s.uow.Do(ctx, func(ctx context.Context, repos secondary.Repositories) error {
		n, err := repos.MembershipHistory.UpdateAnnotations(ctx, email, req.Campaign, req.Annotation)
		rows = n
		return err
	})

	var res *primary.MutationResult
	switch {
	case err != nil:
	case rows == 0:
		res = noMatch(fmt.Sprintf("no membership history found for %s on %s", email, req.Campaign))
	default:
		res = applied(fmt.Sprintf("updated membership history annotation for %s on %s", email, req.Campaign), rows)
	}
	logOutcome(s.logger, "update_membership_history_annotation", res, err)
	return res, err
}

// Helper methods

// resolveReferences looks up both sides of an activity row.
func (s *ActivityServiceImpl) resolveReferences(ctx context.Context, repos secondary.Repositories, email string, key models.CampaignKey) (coreactivity.ReferenceContext, error) {
	refs := coreactivity.ReferenceContext{Email: email, CampaignKey: key}

	var err error
	if refs.EntityExists, err = repos.Entities.Exists(ctx, email); err != nil {
		return refs, err
	}
	if refs.CampaignExists, err = repos.Campaigns.Exists(ctx, key); err != nil {
		return refs, err
	}
	return refs, nil
}

// Ensure ActivityServiceImpl implements the interface.
var _ primary.ActivityService = (*ActivityServiceImpl)(nil)
