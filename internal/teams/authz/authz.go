// Package authz is the pure decision core for team operations. It performs
// no I/O and never returns errors; callers translate a false decision into
// their own forbidden outcome after doing existence checks themselves.
package authz

import "github.com/huddlehq/huddle/internal/teams/domain"

// Action identifies an operation an actor wants to perform against a team.
type Action string

const (
	ActionReadTeam           Action = "read_team"
	ActionUpdateTeam         Action = "update_team"
	ActionDeleteTeam         Action = "delete_team"
	ActionListMembers        Action = "list_members"
	ActionAddMember          Action = "add_member"
	ActionChangeRole         Action = "change_role"
	ActionRemoveMember       Action = "remove_member"
	ActionInvite             Action = "invite"
	ActionListInvitations    Action = "list_invitations"
	ActionDeleteInvitation   Action = "delete_invitation"
	ActionChangeSubscription Action = "change_subscription"
)

// Can decides whether an actor holding the given role may perform action.
// target carries the role being assigned (Invite, AddMember, ChangeRole) or
// held by the affected member (RemoveMember); pass the zero Role for actions
// without a target. Actors without a valid role (non-members) are always
// denied.
func Can(actor domain.Role, action Action, target domain.Role) bool {
	if !actor.Valid() {
		return false
	}

	switch action {
	case ActionReadTeam, ActionListMembers, ActionListInvitations:
		// Any membership in the team suffices, role irrelevant.
		return true

	case ActionUpdateTeam:
		return actor == domain.RoleOwner || actor == domain.RoleAdmin

	case ActionDeleteTeam, ActionChangeSubscription:
		return actor == domain.RoleOwner

	case ActionInvite, ActionAddMember:
		if !target.Valid() {
			return false
		}
		if actor != domain.RoleOwner && actor != domain.RoleAdmin {
			return false
		}
		// Handing out ownership is reserved for owners.
		if target == domain.RoleOwner {
			return actor == domain.RoleOwner
		}
		return true

	case ActionChangeRole:
		if !target.Valid() {
			return false
		}
		switch actor {
		case domain.RoleOwner:
			return true
		case domain.RoleAdmin:
			// Admins may only demote to member; owner/admin assignment is
			// owner territory.
			return target == domain.RoleMember
		default:
			return false
		}

	case ActionRemoveMember:
		switch actor {
		case domain.RoleOwner:
			return true
		case domain.RoleAdmin:
			return target == domain.RoleMember
		default:
			return false
		}

	case ActionDeleteInvitation:
		return actor == domain.RoleOwner || actor == domain.RoleAdmin

	default:
		return false
	}
}

// CanChangeRole decides whether actor may move a member currently holding
// current to the role to. Owners may perform any assignment. Admins may only
// demote: the assigned role must be Member and the affected member must not
// be an Owner.
func CanChangeRole(actor, current, to domain.Role) bool {
	if !current.Valid() || !to.Valid() {
		return false
	}

	switch actor {
	case domain.RoleOwner:
		return true
	case domain.RoleAdmin:
		return to == domain.RoleMember && current != domain.RoleOwner
	default:
		return false
	}
}

// CanRemoveMember decides the remove-member matrix. Removing oneself is
// always permitted regardless of role; the sole-remaining-owner case is a
// state invariant enforced by the lifecycle service, not an authorization
// question.
func CanRemoveMember(actor, target domain.Role, self bool) bool {
	if self {
		return actor.Valid()
	}
	return Can(actor, ActionRemoveMember, target)
}
