package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/outreach/internal/models"
	"github.com/example/outreach/internal/ports/primary"
)

func TestEntityService_RegisterDonor(t *testing.T) {
	ts := newTestServices(nil)
	ctx := context.Background()

	res, err := ts.entity.RegisterDonor(ctx, primary.RegisterDonorRequest{Email: " ada@example.org ", Name: "Ada Lovelace"})
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.EqualValues(t, 1, res.RowsAffected)
	require.Len(t, ts.uow.state.entities, 1)
	assert.Equal(t, "ada@example.org", ts.uow.state.entities[0].Email)
}

func TestEntityService_RegisterDonor_Duplicate(t *testing.T) {
	ts := newTestServices(nil)
	ts.seedEntity("ada@example.org", "Ada")

	res, err := ts.entity.RegisterDonor(context.Background(), primary.RegisterDonorRequest{Email: "ada@example.org", Name: "Someone Else"})
	assert.ErrorIs(t, err, models.ErrDuplicateEntity)
	assert.Nil(t, res)
	require.Len(t, ts.uow.state.entities, 1)
	assert.Equal(t, "Ada", ts.uow.state.entities[0].Name)
}

func TestEntityService_RegisterDonor_Invalid(t *testing.T) {
	ts := newTestServices(nil)

	_, err := ts.entity.RegisterDonor(context.Background(), primary.RegisterDonorRequest{Email: "nope", Name: "Ada"})
	assert.ErrorIs(t, err, models.ErrInvalidEntity)
	assert.Empty(t, ts.uow.state.entities)
}

func TestEntityService_RegisterDonor_StoreUnavailable(t *testing.T) {
	ts := newTestServices(nil)
	ts.uow.failWith = errStoreDown

	_, err := ts.entity.RegisterDonor(context.Background(), primary.RegisterDonorRequest{Email: "ada@example.org", Name: "Ada"})
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
	assert.False(t, models.IsDomainError(err))
}

func TestEntityService_AddVolunteer(t *testing.T) {
	ts := newTestServices(nil)
	ts.seedCampaign(parksKey, 120000)

	res, err := ts.entity.AddVolunteer(context.Background(), primary.AddVolunteerRequest{
		Email:         "alan@example.org",
		Name:          "Alan Turing",
		Tier:          "bronze",
		Campaign:      parksKey,
		ScheduledDate: models.NewDate(2024, 5, 18),
	})
	require.NoError(t, err)
	assert.EqualValues(t, 3, res.RowsAffected)

	state := ts.uow.state
	require.Len(t, state.entities, 1)
	require.Len(t, state.roles, 1)
	assert.Equal(t, models.RoleVolunteer, state.roles[0].Role)
	assert.Equal(t, "bronze", state.roles[0].Tier)
	require.Len(t, state.scheduled, 1)
	assert.Equal(t, parksKey, state.scheduled[0].Campaign)
}

func TestEntityService_AddVolunteer_UnknownCampaignWritesNothing(t *testing.T) {
	ts := newTestServices(nil)

	_, err := ts.entity.AddVolunteer(context.Background(), primary.AddVolunteerRequest{
		Email:         "alan@example.org",
		Name:          "Alan Turing",
		Tier:          "bronze",
		Campaign:      parksKey,
		ScheduledDate: models.NewDate(2024, 5, 18),
	})
	assert.ErrorIs(t, err, models.ErrUnknownCampaign)
	assert.Empty(t, ts.uow.state.entities)
	assert.Empty(t, ts.uow.state.roles)
	assert.Empty(t, ts.uow.state.scheduled)
}

func TestEntityService_AddVolunteer_LateFailureRollsBack(t *testing.T) {
	ts := newTestServices(nil)
	ts.seedCampaign(parksKey, 120000)
	ts.uow.failScheduledCreate = errStoreDown

	_, err := ts.entity.AddVolunteer(context.Background(), primary.AddVolunteerRequest{
		Email:         "alan@example.org",
		Name:          "Alan Turing",
		Tier:          "bronze",
		Campaign:      parksKey,
		ScheduledDate: models.NewDate(2024, 5, 18),
	})
	assert.ErrorIs(t, err, models.ErrStoreUnavailable)
	assert.Empty(t, ts.uow.state.entities, "entity insert must not survive")
	assert.Empty(t, ts.uow.state.roles, "role insert must not survive")
}

func TestEntityService_AssignRole(t *testing.T) {
	ts := newTestServices(nil)
	ts.seedEntity("ada@example.org", "Ada")
	ctx := context.Background()

	_, err := ts.entity.AssignRole(ctx, primary.AssignRoleRequest{Email: "ada@example.org", Role: models.RoleMember})
	require.NoError(t, err)
	_, err = ts.entity.AssignRole(ctx, primary.AssignRoleRequest{Email: "ada@example.org", Role: models.RoleVolunteer, Tier: "gold"})
	require.NoError(t, err)

	_, err = ts.entity.AssignRole(ctx, primary.AssignRoleRequest{Email: "ada@example.org", Role: models.RoleMember})
	assert.ErrorIs(t, err, models.ErrDuplicateEntity)

	_, err = ts.entity.AssignRole(ctx, primary.AssignRoleRequest{Email: "ghost@example.org", Role: models.RoleEmployee})
	assert.ErrorIs(t, err, models.ErrUnknownEntity)

	entity, err := ts.entity.GetEntity(ctx, "ada@example.org")
	require.NoError(t, err)
	assert.Equal(t, []models.Role{models.RoleMember, models.RoleVolunteer}, entity.Roles)
	assert.Equal(t, "gold", entity.Tier)
}

func TestEntityService_AssignRole_TierOnlyKeptForVolunteer(t *testing.T) {
	ts := newTestServices(nil)
	ts.seedEntity("edsger@example.org", "Edsger")

	_, err := ts.entity.AssignRole(context.Background(), primary.AssignRoleRequest{Email: "edsger@example.org", Role: models.RoleEmployee, Tier: "gold"})
	require.NoError(t, err)
	require.Len(t, ts.uow.state.roles, 1)
	assert.Empty(t, ts.uow.state.roles[0].Tier)
}

func TestEntityService_GetEntity_Unknown(t *testing.T) {
	ts := newTestServices(nil)

	entity, err := ts.entity.GetEntity(context.Background(), "ghost@example.org")
	assert.ErrorIs(t, err, models.ErrUnknownEntity)
	assert.Nil(t, entity)
}
