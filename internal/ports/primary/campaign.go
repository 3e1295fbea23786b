package primary

import (
	"context"

	"github.com/example/outreach/internal/models"
)

// CampaignService defines the primary port for campaign operations.
type CampaignService interface {
	// CreateCampaign creates a new campaign.
	CreateCampaign(ctx context.Context, req CreateCampaignRequest) (*MutationResult, error)

	// AddCampaignAnnotation sets the annotation on a campaign.
	AddCampaignAnnotation(ctx context.Context, req AnnotateCampaignRequest) (*MutationResult, error)

	// GetCampaign retrieves a campaign by its key.
	GetCampaign(ctx context.Context, key models.CampaignKey) (*Campaign, error)

	// ListCampaigns retrieves all campaigns ordered by key.
	ListCampaigns(ctx context.Context) ([]*Campaign, error)
}

// CreateCampaignRequest contains parameters for creating a campaign.
type CreateCampaignRequest struct {
	Key             models.CampaignKey
	DurationDays    int
	Phase           string
	Budget          models.Money
	WebsitePushDate models.Date
}

// AnnotateCampaignRequest contains parameters for annotating a campaign.
type AnnotateCampaignRequest struct {
	Key        models.CampaignKey
	Annotation string
}

// Campaign represents a campaign at the port boundary.
type Campaign struct {
	Key             models.CampaignKey
	DurationDays    int
	Phase           string
	Budget          models.Money
	WebsitePushDate models.Date
	Annotations     string
}
