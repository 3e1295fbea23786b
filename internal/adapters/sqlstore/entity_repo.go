package sqlstore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/outreach/internal/models"
	"github.com/example/outreach/internal/ports/secondary"
)

// EntityRepository implements secondary.EntityRepository over the entity
// table and the three role relations.
type EntityRepository struct {
	q *querier
}

// newEntityRepository creates a new entity repository.
func newEntityRepository(q *querier) *EntityRepository {
	return &EntityRepository{q: q}
}

// Create persists a new entity.
func (r *EntityRepository) Create(ctx context.Context, entity *secondary.EntityRecord) error {
	_, err := r.q.exec(ctx,
		"INSERT INTO entity (email, name) VALUES (?, ?)",
		entity.Email, entity.Name,
	)
	return classify("create entity", err, constraintKinds{
		unique: models.ErrDuplicateEntity,
		check:  models.ErrInvalidEntity,
	})
}

// Exists reports whether an entity with the email is registered.
func (r *EntityRepository) Exists(ctx context.Context, email string) (bool, error) {
	n, err := r.q.count(ctx, "SELECT COUNT(*) FROM entity WHERE email = ?", email)
	if err != nil {
		return false, classify("check entity", err, constraintKinds{})
	}
	return n > 0, nil
}

// GetByEmail retrieves an entity (nil if none).
func (r *EntityRepository) GetByEmail(ctx context.Context, email string) (*secondary.EntityRecord, error) {
	record := &secondary.EntityRecord{}
	err := r.q.queryRow(ctx,
		"SELECT email, name FROM entity WHERE email = ?",
		email,
	).Scan(&record.Email, &record.Name)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, classify("get entity", err, constraintKinds{})
	}
	return record, nil
}

// AddRole records a role fact for an entity.
func (r *EntityRepository) AddRole(ctx context.Context, role *secondary.RoleRecord) error {
	table, err := roleTable(role.Role)
	if err != nil {
		return err
	}

	if role.Role == models.RoleVolunteer {
		_, err = r.q.exec(ctx,
			"INSERT INTO volunteer (entity_email, tier) VALUES (?, ?)",
			role.Email, role.Tier,
		)
	} else {
		_, err = r.q.exec(ctx,
			"INSERT INTO "+table+" (entity_email) VALUES (?)",
			role.Email,
		)
	}
	return classify("add "+table+" role", err, constraintKinds{
		unique:    models.ErrDuplicateEntity,
		entityRef: models.ErrUnknownEntity,
		check:     models.ErrInvalidEntity,
	})
}

// HasRole reports whether the entity already holds the role.
func (r *EntityRepository) HasRole(ctx context.Context, email string, role models.Role) (bool, error) {
	table, err := roleTable(role)
	if err != nil {
		return false, err
	}

	n, err := r.q.count(ctx, "SELECT COUNT(*) FROM "+table+" WHERE entity_email = ?", email)
	if err != nil {
		return false, classify("check "+table+" role", err, constraintKinds{})
	}
	return n > 0, nil
}

// ListRoles retrieves every role the entity holds, in models.Roles order.
func (r *EntityRepository) ListRoles(ctx context.Context, email string) ([]*secondary.RoleRecord, error) {
	var roles []*secondary.RoleRecord
	for _, role := range models.Roles {
		if role == models.RoleVolunteer {
			var tier string
			err := r.q.queryRow(ctx,
				"SELECT tier FROM volunteer WHERE entity_email = ?",
				email,
			).Scan(&tier)
			if err == sql.ErrNoRows {
				continue
			}
			if err != nil {
				return nil, classify("list roles", err, constraintKinds{})
			}
			roles = append(roles, &secondary.RoleRecord{Email: email, Role: role, Tier: tier})
			continue
		}

		held, err := r.HasRole(ctx, email, role)
		if err != nil {
			return nil, err
		}
		if held {
			roles = append(roles, &secondary.RoleRecord{Email: email, Role: role})
		}
	}
	return roles, nil
}

func roleTable(role models.Role) (string, error) {
	switch role {
	case models.RoleMember:
		return "member", nil
	case models.RoleEmployee:
		return "employee", nil
	case models.RoleVolunteer:
		return "volunteer", nil
	}
	return "", fmt.Errorf("%w: unknown role %q", models.ErrInvalidEntity, role)
}

// Ensure EntityRepository implements the interface.
var _ secondary.EntityRepository = (*EntityRepository)(nil)
