package primary

import (
	"context"

	"github.com/example/outreach/internal/models"
)

// ActivityService defines the primary port for activity records.
type ActivityService interface {
	// ScheduleVolunteer plans an engagement for an existing entity.
	ScheduleVolunteer(ctx context.Context, req ScheduleRequest) (*MutationResult, error)

	// MakeDonation records a donation.
	MakeDonation(ctx context.Context, req DonationRequest) (*MutationResult, error)

	// AddMembershipHistory records a realized involvement.
	AddMembershipHistory(ctx context.Context, req MembershipHistoryRequest) (*MutationResult, error)

	// UpdateMembershipHistoryAnnotation overwrites the annotation on the
	// involvement matching the entity and campaign key.
	UpdateMembershipHistoryAnnotation(ctx context.Context, req AnnotateMembershipHistoryRequest) (*MutationResult, error)
}

// ScheduleRequest contains parameters for scheduling an entity.
type ScheduleRequest struct {
	Email         string
	Campaign      models.CampaignKey
	ScheduledDate models.Date
}

// DonationRequest contains parameters for a donation.
type DonationRequest struct {
	Email        string
	Campaign     models.CampaignKey
	DonationDate models.Date
	Amount       models.Money
}

// MembershipHistoryRequest contains parameters for a membership history row.
type MembershipHistoryRequest struct {
	Email            string
	Campaign         models.CampaignKey
	InvolvementStart models.Date
	InvolvementEnd   models.Date // zero when ongoing
	Annotations      string
}

// AnnotateMembershipHistoryRequest contains parameters for an annotation update.
type AnnotateMembershipHistoryRequest struct {
	Email      string
	Campaign   models.CampaignKey
	Annotation string
}
