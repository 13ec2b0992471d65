package authz

import (
	"testing"

	"github.com/huddlehq/huddle/internal/teams/domain"
	"github.com/stretchr/testify/require"
)

const noTarget = domain.Role("")

func TestCanReadActions(t *testing.T) {
	t.Parallel()

	for _, action := range []Action{ActionReadTeam, ActionListMembers, ActionListInvitations} {
		for _, actor := range []domain.Role{domain.RoleOwner, domain.RoleAdmin, domain.RoleMember} {
			require.True(t, Can(actor, action, noTarget), "%s should allow %s", action, actor)
		}
		require.False(t, Can(noTarget, action, noTarget), "%s should deny non-members", action)
		require.False(t, Can(domain.Role("ghost"), action, noTarget))
	}
}

func TestCanTeamMutations(t *testing.T) {
	t.Parallel()

	cases := []struct {
		action Action
		owner  bool
		admin  bool
		member bool
	}{
		{ActionUpdateTeam, true, true, false},
		{ActionDeleteTeam, true, false, false},
		{ActionChangeSubscription, true, false, false},
		{ActionDeleteInvitation, true, true, false},
	}

	for _, tc := range cases {
		require.Equal(t, tc.owner, Can(domain.RoleOwner, tc.action, noTarget), "owner %s", tc.action)
		require.Equal(t, tc.admin, Can(domain.RoleAdmin, tc.action, noTarget), "admin %s", tc.action)
		require.Equal(t, tc.member, Can(domain.RoleMember, tc.action, noTarget), "member %s", tc.action)
	}
}

func TestCanInviteAndAddMember(t *testing.T) {
	t.Parallel()

	for _, action := range []Action{ActionInvite, ActionAddMember} {
		// Owners can hand out any role.
		require.True(t, Can(domain.RoleOwner, action, domain.RoleOwner))
		require.True(t, Can(domain.RoleOwner, action, domain.RoleAdmin))
		require.True(t, Can(domain.RoleOwner, action, domain.RoleMember))

		// Admins can hand out admin/member but never ownership.
		require.False(t, Can(domain.RoleAdmin, action, domain.RoleOwner))
		require.True(t, Can(domain.RoleAdmin, action, domain.RoleAdmin))
		require.True(t, Can(domain.RoleAdmin, action, domain.RoleMember))

		// Members can assign nothing.
		require.False(t, Can(domain.RoleMember, action, domain.RoleMember))

		// Unknown assigned roles are refused outright.
		require.False(t, Can(domain.RoleOwner, action, domain.Role("superuser")))
	}
}

func TestCanChangeRole(t *testing.T) {
	t.Parallel()

	t.Run("owner may perform any assignment", func(t *testing.T) {
		for _, current := range []domain.Role{domain.RoleOwner, domain.RoleAdmin, domain.RoleMember} {
			for _, to := range []domain.Role{domain.RoleOwner, domain.RoleAdmin, domain.RoleMember} {
				require.True(t, CanChangeRole(domain.RoleOwner, current, to))
			}
		}
	})

	t.Run("admin may only demote non-owners to member", func(t *testing.T) {
		require.True(t, CanChangeRole(domain.RoleAdmin, domain.RoleAdmin, domain.RoleMember))
		require.True(t, CanChangeRole(domain.RoleAdmin, domain.RoleMember, domain.RoleMember))

		// Admins never touch owner roles, even to demote.
		require.False(t, CanChangeRole(domain.RoleAdmin, domain.RoleOwner, domain.RoleMember))

		// Promotions require ownership.
		require.False(t, CanChangeRole(domain.RoleAdmin, domain.RoleMember, domain.RoleAdmin))
		require.False(t, CanChangeRole(domain.RoleAdmin, domain.RoleMember, domain.RoleOwner))
	})

	t.Run("member may change nothing", func(t *testing.T) {
		require.False(t, CanChangeRole(domain.RoleMember, domain.RoleMember, domain.RoleMember))
	})

	t.Run("invalid roles are refused", func(t *testing.T) {
		require.False(t, CanChangeRole(domain.RoleOwner, domain.Role(""), domain.RoleMember))
		require.False(t, CanChangeRole(domain.RoleOwner, domain.RoleMember, domain.Role("vip")))
	})
}

func TestCanRemoveMember(t *testing.T) {
	t.Parallel()

	t.Run("self removal is always permitted here", func(t *testing.T) {
		// The sole-owner case is a lifecycle invariant, not an authz denial.
		for _, actor := range []domain.Role{domain.RoleOwner, domain.RoleAdmin, domain.RoleMember} {
			require.True(t, CanRemoveMember(actor, actor, true))
		}
		require.False(t, CanRemoveMember(domain.Role(""), domain.RoleMember, true))
	})

	t.Run("owner may remove anyone", func(t *testing.T) {
		for _, target := range []domain.Role{domain.RoleOwner, domain.RoleAdmin, domain.RoleMember} {
			require.True(t, CanRemoveMember(domain.RoleOwner, target, false))
		}
	})

	t.Run("admin may only remove plain members", func(t *testing.T) {
		require.True(t, CanRemoveMember(domain.RoleAdmin, domain.RoleMember, false))
		require.False(t, CanRemoveMember(domain.RoleAdmin, domain.RoleAdmin, false))
		require.False(t, CanRemoveMember(domain.RoleAdmin, domain.RoleOwner, false))
	})

	t.Run("member may remove nobody else", func(t *testing.T) {
		require.False(t, CanRemoveMember(domain.RoleMember, domain.RoleMember, false))
	})
}
