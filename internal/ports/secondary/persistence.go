// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"

	"github.com/example/outreach/internal/models"
)

// UnitOfWork runs repository calls inside one store transaction.
type UnitOfWork interface {
	// Do runs fn in a read-write transaction. The transaction commits when fn
	// returns nil and rolls back otherwise; no partial writes survive.
	Do(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error

	// Read runs fn in a read-only transaction so that the several statements a
	// report issues observe one snapshot where the store supports it.
	Read(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}

// Repositories bundles the repositories bound to one transaction.
type Repositories struct {
	Entities          EntityRepository
	Campaigns         CampaignRepository
	Donations         DonationRepository
	MembershipHistory MembershipHistoryRepository
	Scheduled         ScheduledRepository
}

// EntityRepository defines the secondary port for entity and role persistence.
type EntityRepository interface {
	// Create persists a new entity.
	Create(ctx context.Context, entity *EntityRecord) error

	// Exists reports whether an entity with the email is registered.
	Exists(ctx context.Context, email string) (bool, error)

	// GetByEmail retrieves an entity (nil if none).
	GetByEmail(ctx context.Context, email string) (*EntityRecord, error)

	// AddRole records a role fact for an entity.
	AddRole(ctx context.Context, role *RoleRecord) error

	// HasRole reports whether the entity already holds the role.
	HasRole(ctx context.Context, email string, role models.Role) (bool, error)

	// ListRoles retrieves every role the entity holds.
	ListRoles(ctx context.Context, email string) ([]*RoleRecord, error)
}

// EntityRecord represents an entity as stored in persistence.
type EntityRecord struct {
	Email string
	Name  string
}

// RoleRecord represents one row of the member, employee, or volunteer relation.
type RoleRecord struct {
	Email string
	Role  models.Role
	Tier  string // volunteer only
}

// CampaignRepository defines the secondary port for campaign persistence.
type CampaignRepository interface {
	// Create persists a new campaign.
	Create(ctx context.Context, campaign *CampaignRecord) error

	// Exists reports whether a campaign with exactly this key exists.
	Exists(ctx context.Context, key models.CampaignKey) (bool, error)

	// GetByKey retrieves a campaign (nil if none).
	GetByKey(ctx context.Context, key models.CampaignKey) (*CampaignRecord, error)

	// List retrieves all campaigns ordered by key.
	List(ctx context.Context) ([]*CampaignRecord, error)

	// UpdateAnnotations overwrites the annotation and returns rows affected.
	UpdateAnnotations(ctx context.Context, key models.CampaignKey, annotations string) (int64, error)
}

// CampaignRecord represents a campaign as stored in persistence.
type CampaignRecord struct {
	Key             models.CampaignKey
	DurationDays    int
	Phase           string
	Budget          models.Money
	WebsitePushDate models.Date
	Annotations     string
}

// DonationRepository defines the secondary port for donation persistence.
type DonationRepository interface {
	// Create persists a new donation.
	Create(ctx context.Context, donation *DonationRecord) error

	// List retrieves every donation.
	List(ctx context.Context) ([]*DonationRecord, error)

	// ListByEntity retrieves an entity's donations in storage order.
	ListByEntity(ctx context.Context, email string) ([]*DonationRecord, error)
}

// DonationRecord represents a donation as stored in persistence.
type DonationRecord struct {
	Email        string
	Campaign     models.CampaignKey
	DonationDate models.Date
	Amount       models.Money
}

// MembershipHistoryRepository defines the secondary port for membership history persistence.
type MembershipHistoryRepository interface {
	// Create persists a new membership history row.
	Create(ctx context.Context, history *MembershipHistoryRecord) error

	// UpdateAnnotations overwrites annotations on rows matching the entity and
	// campaign key, returning rows affected.
	UpdateAnnotations(ctx context.Context, email string, key models.CampaignKey, annotations string) (int64, error)

	// List retrieves every membership history row.
	List(ctx context.Context) ([]*MembershipHistoryRecord, error)

	// ListByEntity retrieves an entity's membership history in storage order.
	ListByEntity(ctx context.Context, email string) ([]*MembershipHistoryRecord, error)
}

// MembershipHistoryRecord represents a realized involvement as stored in persistence.
type MembershipHistoryRecord struct {
	Email            string
	Campaign         models.CampaignKey
	InvolvementStart models.Date
	InvolvementEnd   models.Date // zero when ongoing
	Annotations      string
}

// ScheduledRepository defines the secondary port for scheduled engagement persistence.
type ScheduledRepository interface {
	// Create persists a new scheduled engagement.
	Create(ctx context.Context, scheduled *ScheduledRecord) error

	// ListByEntity retrieves an entity's scheduled engagements in storage order.
	ListByEntity(ctx context.Context, email string) ([]*ScheduledRecord, error)
}

// ScheduledRecord represents a planned engagement as stored in persistence.
type ScheduledRecord struct {
	Email         string
	Campaign      models.CampaignKey
	ScheduledDate models.Date
}
