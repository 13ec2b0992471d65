package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/huddlehq/huddle/internal/teams/domain"
	"github.com/huddlehq/huddle/internal/teams/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func TestInvite(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	teams := &TeamService{Store: st}
	invites := &InvitationService{Store: st}

	team := mustCreateTeam(t, teams, "user-owner", "Inviting")
	mustAddMember(t, teams, team.ID, "user-owner", "user-admin", domain.RoleAdmin)

	t.Run("token comes back exactly once", func(t *testing.T) {
		inv, token, err := invites.Invite(ctx, team.ID, "guest@example.com", domain.RoleMember, "user-owner")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		require.NotEqual(t, token, inv.TokenHash)
		require.Equal(t, "guest@example.com", inv.Email)
		require.WithinDuration(t, time.Now().Add(InvitationTTL), inv.ExpiresAt, time.Minute)
	})

	t.Run("email is normalized", func(t *testing.T) {
		inv, _, err := invites.Invite(ctx, team.ID, "  MiXeD@Example.COM ", domain.RoleMember, "user-owner")
		require.NoError(t, err)
		require.Equal(t, "mixed@example.com", inv.Email)
	})

	t.Run("duplicate pending invite conflicts", func(t *testing.T) {
		_, _, err := invites.Invite(ctx, team.ID, "guest@example.com", domain.RoleMember, "user-admin")
		require.ErrorIs(t, err, ErrAlreadyInvited)
	})

	t.Run("admin cannot invite at owner", func(t *testing.T) {
		_, _, err := invites.Invite(ctx, team.ID, "boss@example.com", domain.RoleOwner, "user-admin")
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("owner can invite at owner", func(t *testing.T) {
		_, _, err := invites.Invite(ctx, team.ID, "boss@example.com", domain.RoleOwner, "user-owner")
		require.NoError(t, err)
	})

	t.Run("garbage email rejected", func(t *testing.T) {
		_, _, err := invites.Invite(ctx, team.ID, "not-an-email", domain.RoleMember, "user-owner")
		require.ErrorIs(t, err, ErrValidation)
	})

	t.Run("outsiders cannot invite", func(t *testing.T) {
		_, _, err := invites.Invite(ctx, team.ID, "friend@example.com", domain.RoleMember, "user-stranger")
		require.ErrorIs(t, err, ErrForbidden)
	})
}

func TestVerifyAndAccept(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	teams := &TeamService{Store: st}
	invites := &InvitationService{Store: st}

	team := mustCreateTeam(t, teams, "user-owner", "Joinable")
	_, token, err := invites.Invite(ctx, team.ID, "newcomer@example.com", domain.RoleAdmin, "user-owner")
	require.NoError(t, err)

	t.Run("verify shows the offer without consuming it", func(t *testing.T) {
		preview, err := invites.VerifyToken(ctx, token)
		require.NoError(t, err)
		require.Equal(t, "Joinable", preview.TeamName)
		require.Equal(t, domain.RoleAdmin, preview.Invitation.Role)

		// Still there.
		_, err = invites.VerifyToken(ctx, token)
		require.NoError(t, err)
	})

	t.Run("accept grants the invited role and consumes the token", func(t *testing.T) {
		teamID, err := invites.AcceptInvitation(ctx, token, "user-newcomer")
		require.NoError(t, err)
		require.Equal(t, team.ID, teamID)

		m, err := st.Memberships().GetMembership(ctx, team.ID, "user-newcomer")
		require.NoError(t, err)
		require.Equal(t, domain.RoleAdmin, m.Role)

		_, err = invites.VerifyToken(ctx, token)
		require.ErrorIs(t, err, ErrInvitationNotFound)

		_, err = invites.AcceptInvitation(ctx, token, "user-late")
		require.ErrorIs(t, err, ErrInvitationNotFound)
	})

	t.Run("bogus token is not found", func(t *testing.T) {
		_, err := invites.VerifyToken(ctx, "no-such-token")
		require.ErrorIs(t, err, ErrInvitationNotFound)
	})
}

func TestInvitationExpiry(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	teams := &TeamService{Store: st}
	invites := &InvitationService{Store: st, TTL: time.Nanosecond}

	team := mustCreateTeam(t, teams, "user-owner", "Expiring")

	_, token, err := invites.Invite(ctx, team.ID, "slow@example.com", domain.RoleMember, "user-owner")
	require.NoError(t, err)
	time.Sleep(time.Millisecond)

	t.Run("expired token behaves like a missing one", func(t *testing.T) {
		_, err := invites.VerifyToken(ctx, token)
		require.ErrorIs(t, err, ErrInvitationNotFound)

		_, err = invites.AcceptInvitation(ctx, token, "user-slow")
		require.ErrorIs(t, err, ErrInvitationNotFound)
	})

	t.Run("expired leftover does not block a re-invite", func(t *testing.T) {
		fresh := &InvitationService{Store: st}
		inv, token2, err := fresh.Invite(ctx, team.ID, "slow@example.com", domain.RoleMember, "user-owner")
		require.NoError(t, err)
		require.NotEqual(t, token, token2)
		require.True(t, inv.Live(time.Now()))
	})

	t.Run("expired rows hidden from the pending list", func(t *testing.T) {
		_, _, err := invites.Invite(ctx, team.ID, "gone@example.com", domain.RoleMember, "user-owner")
		require.NoError(t, err)
		time.Sleep(time.Millisecond)

		pending, err := invites.ListInvitations(ctx, team.ID, "user-owner")
		require.NoError(t, err)
		for _, inv := range pending {
			require.NotEqual(t, "gone@example.com", inv.Email)
		}
	})
}

func TestAcceptGuards(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	teams := &TeamService{Store: st}
	invites := &InvitationService{Store: st}

	team := mustCreateTeam(t, teams, "user-owner", "Guarded")

	t.Run("existing member cannot accept", func(t *testing.T) {
		mustAddMember(t, teams, team.ID, "user-owner", "user-already", domain.RoleMember)

		_, token, err := invites.Invite(ctx, team.ID, "already@example.com", domain.RoleMember, "user-owner")
		require.NoError(t, err)

		_, err = invites.AcceptInvitation(ctx, token, "user-already")
		require.ErrorIs(t, err, ErrAlreadyMember)

		// The failed accept must not consume the invitation.
		_, err = invites.VerifyToken(ctx, token)
		require.NoError(t, err)
	})

	t.Run("accept refused when the team is full", func(t *testing.T) {
		_, token, err := invites.Invite(ctx, team.ID, "waitlisted@example.com", domain.RoleMember, "user-owner")
		require.NoError(t, err)

		// Fill the remaining free-tier seat.
		mustAddMember(t, teams, team.ID, "user-owner", "user-filler", domain.RoleMember)

		_, err = invites.AcceptInvitation(ctx, token, "user-waitlisted")
		require.ErrorIs(t, err, ErrTeamFull)
	})
}

func TestDeleteInvitation(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	teams := &TeamService{Store: st}
	invites := &InvitationService{Store: st}

	team := mustCreateTeam(t, teams, "user-owner", "Revokable")
	other := mustCreateTeam(t, teams, "user-other", "Bystander")
	mustAddMember(t, teams, team.ID, "user-owner", "user-member", domain.RoleMember)

	inv, token, err := invites.Invite(ctx, team.ID, "recalled@example.com", domain.RoleMember, "user-owner")
	require.NoError(t, err)

	t.Run("members cannot revoke", func(t *testing.T) {
		err := invites.DeleteInvitation(ctx, team.ID, inv.ID, "user-member")
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("wrong team scope is not found", func(t *testing.T) {
		err := invites.DeleteInvitation(ctx, other.ID, inv.ID, "user-other")
		require.ErrorIs(t, err, ErrInvitationNotFound)
	})

	t.Run("owner revokes and the token dies", func(t *testing.T) {
		require.NoError(t, invites.DeleteInvitation(ctx, team.ID, inv.ID, "user-owner"))

		_, err := invites.VerifyToken(ctx, token)
		require.ErrorIs(t, err, ErrInvitationNotFound)
	})
}

// Two users racing for the same token: exactly one membership may result.
func TestAcceptInvitationConcurrent(t *testing.T) {
	ctx := context.Background()

	dsn := filepath.Join(t.TempDir(), "teams.db")
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	teams := &TeamService{Store: st}
	invites := &InvitationService{Store: st}

	team := mustCreateTeam(t, teams, "user-owner", "Contested")
	_, token, err := invites.Invite(ctx, team.ID, "contested@example.com", domain.RoleMember, "user-owner")
	require.NoError(t, err)

	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, userID := range []string{"user-racer", "user-racer"} {
		wg.Add(1)
		go func(i int, userID string) {
			defer wg.Done()
			_, errs[i] = invites.AcceptInvitation(ctx, token, userID)
		}(i, userID)
	}
	wg.Wait()

	var successes int
	for _, err := range errs {
		if err == nil {
			successes++
		}
	}
	require.Equal(t, 1, successes, "exactly one accept may win")

	m, err := st.Memberships().GetMembership(ctx, team.ID, "user-racer")
	require.NoError(t, err)
	require.Equal(t, domain.RoleMember, m.Role)

	count, err := st.Memberships().CountTeamMembers(ctx, team.ID)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}
