package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoleOrdering(t *testing.T) {
	t.Parallel()

	require.Greater(t, RoleOwner.Rank(), RoleAdmin.Rank())
	require.Greater(t, RoleAdmin.Rank(), RoleMember.Rank())
	require.Greater(t, RoleMember.Rank(), Role("intruder").Rank())
}

func TestParseRole(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"owner", "admin", "member"} {
		r, err := ParseRole(s)
		require.NoError(t, err)
		require.Equal(t, s, r.String())
	}

	for _, s := range []string{"", "Owner", "superuser"} {
		_, err := ParseRole(s)
		require.Error(t, err)
	}
}

func TestTierTable(t *testing.T) {
	t.Parallel()

	tiers := ListTiers()
	require.Len(t, tiers, 4)
	require.Equal(t, TierFree, tiers[0].Tier)

	free, err := TierInfoFor(TierFree)
	require.NoError(t, err)
	require.Equal(t, 3, free.MaxMembers)

	enterprise, err := TierInfoFor(TierEnterprise)
	require.NoError(t, err)
	require.Zero(t, enterprise.MaxMembers, "enterprise is unbounded")

	_, err = TierInfoFor(Tier("platinum"))
	require.Error(t, err)

	_, err = ParseTier("Free") // case sensitive
	require.Error(t, err)
}
