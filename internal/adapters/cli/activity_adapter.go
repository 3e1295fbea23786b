package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/outreach/internal/models"
	"github.com/example/outreach/internal/ports/primary"
)

// ActivityAdapter is a thin adapter that translates CLI operations to ActivityService calls.
type ActivityAdapter struct {
	service primary.ActivityService
	out     io.Writer
}

// NewActivityAdapter creates a new ActivityAdapter with the given service.
func NewActivityAdapter(service primary.ActivityService, out io.Writer) *ActivityAdapter {
	return &ActivityAdapter{
		service: service,
		out:     out,
	}
}

// Schedule plans an engagement.
func (a *ActivityAdapter) Schedule(ctx context.Context, email string, campaign KeyArgs, scheduledDate string) error {
	key, err := campaign.parse()
	if err != nil {
		return err
	}
	scheduled, err := parseActivityDate("scheduled date", scheduledDate)
	if err != nil {
		return err
	}

	res, err := a.service.ScheduleVolunteer(ctx, primary.ScheduleRequest{
		Email:         email,
		Campaign:      key,
		ScheduledDate: scheduled,
	})
	if err != nil {
		return err
	}
	printOutcome(a.out, res)
	return nil
}

// Donate records a donation. amount is a decimal string.
func (a *ActivityAdapter) Donate(ctx context.Context, email string, campaign KeyArgs, donationDate, amount string) error {
	key, err := campaign.parse()
	if err != nil {
		return err
	}
	donated, err := parseActivityDate("donation date", donationDate)
	if err != nil {
		return err
	}
	money, err := models.ParseMoney(amount)
	if err != nil {
		return fmt.Errorf("%w: amount: %v", models.ErrInvalidActivity, err)
	}

	res, err := a.service.MakeDonation(ctx, primary.DonationRequest{
		Email:        email,
		Campaign:     key,
		DonationDate: donated,
		Amount:       money,
	})
	if err != nil {
		return err
	}
	printOutcome(a.out, res)
	return nil
}

// AddHistory records a realized involvement. end may be empty for ongoing.
func (a *ActivityAdapter) AddHistory(ctx context.Context, email string, campaign KeyArgs, start, end, annotations string) error {
	key, err := campaign.parse()
	if err != nil {
		return err
	}
	from, err := parseActivityDate("involvement start date", start)
	if err != nil {
		return err
	}
	until, err := models.ParseOptionalDate(end)
	if err != nil {
		return fmt.Errorf("%w: involvement end date: %v", models.ErrInvalidActivity, err)
	}

	res, err := a.service.AddMembershipHistory(ctx, primary.MembershipHistoryRequest{
		Email:            email,
		Campaign:         key,
		InvolvementStart: from,
		InvolvementEnd:   until,
		Annotations:      annotations,
	})
	if err != nil {
		return err
	}
	printOutcome(a.out, res)
	return nil
}

// AnnotateHistory overwrites the annotation on an entity's involvement.
func (a *ActivityAdapter) AnnotateHistory(ctx context.Context, email string, campaign KeyArgs, annotation string) error {
	key, err := campaign.parse()
	if err != nil {
		return err
	}

	res, err := a.service.UpdateMembershipHistoryAnnotation(ctx, primary.AnnotateMembershipHistoryRequest{
		Email:      email,
		Campaign:   key,
		Annotation: annotation,
	})
	if err != nil {
		return err
	}
	printOutcome(a.out, res)
	return nil
}
