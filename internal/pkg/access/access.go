// Package access implements the role and ownership based authorization
// policy. The policy is a pure function over (role, action, owner): no
// storage access, no side effects.
package access

import (
	"fmt"

	"github.com/google/uuid"
)

// Role is a closed set of actor roles. Unknown role strings are rejected
// at the boundary by ParseRole so illegal roles never reach a use case.
type Role uint8

const (
	RoleUnknown Role = iota
	RoleAdmin
	RoleMember
)

// ParseRole maps a role claim to a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "admin":
		return RoleAdmin, nil
	case "member":
		return RoleMember, nil
	default:
		return RoleUnknown, fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleMember:
		return "member"
	default:
		return "unknown"
	}
}

// Action enumerates the operations gated by the policy.
type Action uint8

const (
	ActionPackageCreate Action = iota
	ActionPackageUpdate
	ActionPackageDelete
	ActionPackageListAll
	ActionMembershipUpdate
	ActionMembershipDelete
	ActionMembershipViewAny
	ActionTransactionViewAny
)

// capabilities holds the set of actions each role may perform.
var capabilities = map[Role]map[Action]struct{}{
	RoleAdmin: {
		ActionPackageCreate:      {},
		ActionPackageUpdate:      {},
		ActionPackageDelete:      {},
		ActionPackageListAll:     {},
		ActionMembershipUpdate:   {},
		ActionMembershipDelete:   {},
		ActionMembershipViewAny:  {},
		ActionTransactionViewAny: {},
	},
	RoleMember: {},
}

// Actor is the authenticated caller of an operation.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

// Can reports whether the actor's role carries the capability for action.
func (a Actor) Can(action Action) bool {
	_, ok := capabilities[a.Role][action]
	return ok
}

// CanAccessResource reports whether the actor may read a resource owned
// by ownerID. Admins may read anything; members only their own rows.
func (a Actor) CanAccessResource(ownerID uuid.UUID) bool {
	if a.Can(ActionMembershipViewAny) {
		return true
	}
	return a.ID == ownerID
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
