package primary

import (
	"context"

	"github.com/example/outreach/internal/models"
)

// EntityService defines the primary port for entity and role operations.
type EntityService interface {
	// RegisterDonor registers a new entity.
	RegisterDonor(ctx context.Context, req RegisterDonorRequest) (*MutationResult, error)

	// AddVolunteer registers an entity, its volunteer role, and its first
	// scheduled engagement as one unit.
	AddVolunteer(ctx context.Context, req AddVolunteerRequest) (*MutationResult, error)

	// AssignRole adds a role fact to an existing entity.
	AssignRole(ctx context.Context, req AssignRoleRequest) (*MutationResult, error)

	// GetEntity retrieves an entity with its roles.
	GetEntity(ctx context.Context, email string) (*Entity, error)
}

// RegisterDonorRequest contains parameters for registering a donor.
type RegisterDonorRequest struct {
	Email string
	Name  string
}

// AddVolunteerRequest contains parameters for adding a volunteer.
type AddVolunteerRequest struct {
	Email         string
	Name          string
	Tier          string
	Campaign      models.CampaignKey
	ScheduledDate models.Date
}

// AssignRoleRequest contains parameters for assigning a role.
type AssignRoleRequest struct {
	Email string
	Role  models.Role
	Tier  string
}

// Entity represents an entity at the port boundary.
type Entity struct {
	Email string
	Name  string
	Roles []models.Role
	Tier  string // set when Roles contains volunteer
}
