// Package authz holds the single authorization decision function used by
// every workflow resource. It is pure: no I/O, no store access. Handlers and
// services fetch whatever the decision needs (owner id, owner department)
// and pass it in.
package authz

import "github.com/staffhive/hrms-backend-go/internal/domain/user"

// Action is the closed set of privileged operations the policy knows about.
type Action string

const (
	ActionListLeaves       Action = "leave.list_all"
	ActionDecideLeave      Action = "leave.decide"
	ActionListTransfers    Action = "transfer.list_all"
	ActionDecideTransfer   Action = "transfer.decide"
	ActionListGrievances   Action = "grievance.list_all"
	ActionRespondGrievance Action = "grievance.respond"
	ActionListAttendance   Action = "attendance.list_all"
	ActionManageUsers      Action = "user.manage"
	ActionReadAnyFile      Action = "file.read_any"
)

// Actor is the authenticated identity performing an operation.
type Actor struct {
	ID         string
	Role       user.Role
	Department string
}

// Resource describes the target of a decision action. OwnerDepartment is only
// consulted for department-scoped actions and may be empty for the rest.
type Resource struct {
	OwnerID         string
	OwnerDepartment string
}

// CanRead reports whether the actor may read a resource owned by ownerID.
// Owners always read their own resources; admin and hr read across users.
func CanRead(actor Actor, ownerID string) bool {
	if actor.ID == ownerID {
		return true
	}
	switch actor.Role {
	case user.RoleAdmin, user.RoleHR:
		return true
	case user.RoleDepartmentHead, user.RoleEmployee:
		return false
	}
	return false
}

// Can reports whether the actor may perform action on res. Decision actions
// (approve/reject/respond) are never permitted against the actor's own
// resource, regardless of role.
func Can(actor Actor, action Action, res Resource) bool {
	switch action {
	case ActionDecideLeave:
		if actor.ID == res.OwnerID {
			return false // self-decision is always denied
		}
		switch actor.Role {
		case user.RoleHR, user.RoleAdmin:
			return true
		case user.RoleDepartmentHead:
			return actor.Department != "" && actor.Department == res.OwnerDepartment
		case user.RoleEmployee:
			return false
		}
		return false

	case ActionDecideTransfer, ActionRespondGrievance:
		if actor.ID == res.OwnerID {
			return false
		}
		switch actor.Role {
		case user.RoleHR, user.RoleAdmin:
			return true
		case user.RoleDepartmentHead, user.RoleEmployee:
			return false
		}
		return false

	case ActionListLeaves:
		switch actor.Role {
		case user.RoleHR, user.RoleAdmin, user.RoleDepartmentHead:
			// Department heads get a view post-filtered to their department.
			return true
		case user.RoleEmployee:
			return false
		}
		return false

	case ActionListTransfers, ActionListGrievances, ActionListAttendance, ActionReadAnyFile:
		switch actor.Role {
		case user.RoleHR, user.RoleAdmin:
			return true
		case user.RoleDepartmentHead, user.RoleEmployee:
			return false
		}
		return false

	case ActionManageUsers:
		switch actor.Role {
		case user.RoleAdmin:
			return true
		case user.RoleHR, user.RoleDepartmentHead, user.RoleEmployee:
			return false
		}
		return false
	}

	// Unknown action: deny.
	return false
}
