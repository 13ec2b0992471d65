package service

import (
	"context"
	"testing"

	"github.com/huddlehq/huddle/internal/teams/domain"
	"github.com/huddlehq/huddle/internal/teams/store"
	"github.com/huddlehq/huddle/internal/teams/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

// mustCreateTeam provisions a team owned by ownerID and returns it.
func mustCreateTeam(t *testing.T, svc *TeamService, ownerID, name string) domain.Team {
	t.Helper()

	view, err := svc.CreateTeam(context.Background(), ownerID, CreateTeamParams{Name: name})
	require.NoError(t, err)
	require.Equal(t, ownerID, view.OwnerID)
	return view.Team
}

// mustAddMember attaches userID at role using the team's owner as actor.
func mustAddMember(t *testing.T, svc *TeamService, teamID, ownerID, userID string, role domain.Role) {
	t.Helper()

	_, err := svc.AddMember(context.Background(), teamID, userID, role, ownerID)
	require.NoError(t, err)
}

func TestCreateTeam(t *testing.T) {
	ctx := context.Background()
	svc := &TeamService{Store: newTestStore(t)}

	t.Run("creator becomes sole owner on the free tier", func(t *testing.T) {
		view, err := svc.CreateTeam(ctx, "user-alice", CreateTeamParams{Name: "Acme Corp"})
		require.NoError(t, err)
		require.Equal(t, "user-alice", view.OwnerID)
		require.Equal(t, domain.TierFree, view.Team.SubscriptionTier)
		require.Equal(t, 3, view.Team.MaxMembers)
		require.Equal(t, "acme-corp", view.Team.Slug)

		members, err := svc.ListMembers(ctx, view.Team.ID, "user-alice")
		require.NoError(t, err)
		require.Len(t, members, 1)
		require.Equal(t, domain.RoleOwner, members[0].Role)
	})

	t.Run("slug collision gets a suffix", func(t *testing.T) {
		view, err := svc.CreateTeam(ctx, "user-bob", CreateTeamParams{Name: "Acme Corp"})
		require.NoError(t, err)
		require.NotEqual(t, "acme-corp", view.Team.Slug)
		require.Contains(t, view.Team.Slug, "acme-corp-")
	})

	t.Run("explicit slug wins over derived one", func(t *testing.T) {
		view, err := svc.CreateTeam(ctx, "user-carol", CreateTeamParams{Name: "Something Else", Slug: "custom-slug"})
		require.NoError(t, err)
		require.Equal(t, "custom-slug", view.Team.Slug)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		_, err := svc.CreateTeam(ctx, "user-alice", CreateTeamParams{Name: "   "})
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("missing actor rejected", func(t *testing.T) {
		_, err := svc.CreateTeam(ctx, "", CreateTeamParams{Name: "Ghost"})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestGetTeam(t *testing.T) {
	ctx := context.Background()
	svc := &TeamService{Store: newTestStore(t)}

	team := mustCreateTeam(t, svc, "user-owner", "Readable")
	mustAddMember(t, svc, team.ID, "user-owner", "user-member", domain.RoleMember)

	t.Run("members can read", func(t *testing.T) {
		view, err := svc.GetTeam(ctx, team.ID, "user-member")
		require.NoError(t, err)
		require.Equal(t, team.ID, view.Team.ID)
		require.Equal(t, "user-owner", view.OwnerID)
	})

	t.Run("outsiders get forbidden, not found is reserved for missing teams", func(t *testing.T) {
		_, err := svc.GetTeam(ctx, team.ID, "user-stranger")
		require.ErrorIs(t, err, ErrForbidden)

		_, err = svc.GetTeam(ctx, "01K0000000000000000000TEAM", "user-owner")
		require.ErrorIs(t, err, ErrTeamNotFound)
	})
}

func TestUpdateTeam(t *testing.T) {
	ctx := context.Background()
	svc := &TeamService{Store: newTestStore(t)}

	team := mustCreateTeam(t, svc, "user-owner", "Patchable")
	mustAddMember(t, svc, team.ID, "user-owner", "user-admin", domain.RoleAdmin)
	mustAddMember(t, svc, team.ID, "user-owner", "user-member", domain.RoleMember)

	t.Run("admin can patch name and description", func(t *testing.T) {
		name := "Patched"
		desc := "now with a description"
		view, err := svc.UpdateTeam(ctx, team.ID, "user-admin", domain.TeamPatch{Name: &name, Description: &desc})
		require.NoError(t, err)
		require.Equal(t, "Patched", view.Team.Name)
		require.Equal(t, "now with a description", view.Team.Description)
		// Slug never changes after creation.
		require.Equal(t, team.Slug, view.Team.Slug)
	})

	t.Run("absent fields untouched", func(t *testing.T) {
		logo := "https://cdn.example/logo.png"
		view, err := svc.UpdateTeam(ctx, team.ID, "user-owner", domain.TeamPatch{LogoURL: &logo})
		require.NoError(t, err)
		require.Equal(t, "Patched", view.Team.Name)
		require.Equal(t, logo, view.Team.LogoURL)
	})

	t.Run("plain members cannot patch", func(t *testing.T) {
		name := "nope"
		_, err := svc.UpdateTeam(ctx, team.ID, "user-member", domain.TeamPatch{Name: &name})
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("empty name rejected", func(t *testing.T) {
		name := ""
		_, err := svc.UpdateTeam(ctx, team.ID, "user-owner", domain.TeamPatch{Name: &name})
		require.ErrorIs(t, err, ErrValidation)
	})
}

func TestDeleteTeam(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	svc := &TeamService{Store: st}

	t.Run("owner deletes, memberships cascade", func(t *testing.T) {
		team := mustCreateTeam(t, svc, "user-owner", "Doomed")
		mustAddMember(t, svc, team.ID, "user-owner", "user-member", domain.RoleMember)

		require.NoError(t, svc.DeleteTeam(ctx, team.ID, "user-owner"))

		_, err := st.Teams().GetTeamByID(ctx, team.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = st.Memberships().GetMembership(ctx, team.ID, "user-member")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("admin cannot delete", func(t *testing.T) {
		team := mustCreateTeam(t, svc, "user-owner", "Sticky")
		mustAddMember(t, svc, team.ID, "user-owner", "user-admin", domain.RoleAdmin)

		require.ErrorIs(t, svc.DeleteTeam(ctx, team.ID, "user-admin"), ErrForbidden)
	})

	t.Run("personal team refused even for its owner", func(t *testing.T) {
		view, err := svc.CreatePersonalTeam(ctx, "user-solo", "Solo")
		require.NoError(t, err)

		err = svc.DeleteTeam(ctx, view.Team.ID, "user-solo")
		require.ErrorIs(t, err, ErrPersonalTeamProtected)
	})
}

func TestCreatePersonalTeam(t *testing.T) {
	ctx := context.Background()
	svc := &TeamService{Store: newTestStore(t)}

	view, err := svc.CreatePersonalTeam(ctx, "user-dana", "Dana")
	require.NoError(t, err)
	require.True(t, view.Team.IsPersonal)
	require.Equal(t, "user-dana", view.Team.PersonalOwnerID)
	require.Equal(t, "user-dana", view.OwnerID)

	t.Run("second personal team refused", func(t *testing.T) {
		_, err := svc.CreatePersonalTeam(ctx, "user-dana", "Dana Again")
		require.ErrorIs(t, err, ErrPersonalTeamExists)
	})

	t.Run("no direct additions", func(t *testing.T) {
		_, err := svc.AddMember(ctx, view.Team.ID, "user-intruder", domain.RoleMember, "user-dana")
		require.ErrorIs(t, err, ErrPersonalTeamImmutable)
	})
}

func TestListTeams(t *testing.T) {
	ctx := context.Background()
	svc := &TeamService{Store: newTestStore(t)}

	first := mustCreateTeam(t, svc, "user-eve", "First")
	second := mustCreateTeam(t, svc, "user-frank", "Second")
	mustAddMember(t, svc, second.ID, "user-frank", "user-eve", domain.RoleMember)

	views, err := svc.ListTeams(ctx, "user-eve")
	require.NoError(t, err)
	require.Len(t, views, 2)

	ids := []string{views[0].Team.ID, views[1].Team.ID}
	require.Contains(t, ids, first.ID)
	require.Contains(t, ids, second.ID)
}
