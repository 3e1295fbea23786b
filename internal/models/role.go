package models

import (
	"fmt"
	"strings"
)

// Role is one independent fact about an entity. An entity may hold any
// subset of roles at once; holding one never implies another.
type Role string

const (
	RoleMember    Role = "member"
	RoleEmployee  Role = "employee"
	RoleVolunteer Role = "volunteer"
)

// Roles lists every role in display order.
var Roles = []Role{RoleMember, RoleEmployee, RoleVolunteer}

// ParseRole accepts a role name case-insensitively.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Roles {
		if r == known {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q (expected member, employee, or volunteer)", s)
}
