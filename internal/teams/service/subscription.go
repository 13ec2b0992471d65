package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/huddlehq/huddle/internal/teams/authz"
	"github.com/huddlehq/huddle/internal/teams/domain"
	"github.com/huddlehq/huddle/internal/teams/store"
	"github.com/huddlehq/huddle/pkg/slogx"
)

// SubscriptionService moves teams between tiers. Billing itself happens
// elsewhere; this service only records the outcome and enforces the member
// ceiling the new tier implies.
type SubscriptionService struct {
	Store store.Store
}

// ChangeSubscription switches the team to a new tier. Owners only. A
// downgrade that would leave the team over the new ceiling is refused; the
// roster has to shrink first.
func (s *SubscriptionService) ChangeSubscription(ctx context.Context, teamID, tierName, ref, actorID string) (domain.Team, error) {
	log := slogx.FromContext(ctx)

	tier, err := domain.ParseTier(strings.ToLower(strings.TrimSpace(tierName)))
	if err != nil {
		return domain.Team{}, ErrUnknownTier
	}
	info, err := domain.TierInfoFor(tier)
	if err != nil {
		return domain.Team{}, ErrUnknownTier
	}

	team, err := s.Store.Teams().GetTeamByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Team{}, ErrTeamNotFound
		}
		return domain.Team{}, unavailable(err)
	}
	actor, err := s.Store.Memberships().GetMembership(ctx, teamID, actorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Team{}, ErrForbidden
		}
		return domain.Team{}, unavailable(err)
	}
	if !authz.Can(actor.Role, authz.ActionChangeSubscription, domain.Role("")) {
		return domain.Team{}, ErrForbidden
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		count, err := tx.Memberships().CountTeamMembers(ctx, teamID)
		if err != nil {
			return err
		}
		if info.MaxMembers > 0 && count > info.MaxMembers {
			return ErrTeamFull
		}
		return tx.Teams().UpdateSubscription(ctx, teamID, tier, ref, info.MaxMembers)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrTeamFull):
			return domain.Team{}, ErrTeamFull
		case errors.Is(err, store.ErrNotFound):
			return domain.Team{}, ErrTeamNotFound
		}
		return domain.Team{}, unavailable(err)
	}

	log.Info("subscription changed",
		slog.String("team_id", teamID),
		slog.String("tier", string(tier)),
		slog.String("actor_id", actorID),
	)

	team.SubscriptionTier = tier
	team.SubscriptionRef = ref
	team.MaxMembers = info.MaxMembers
	return team, nil
}

// ListTiers returns the tier catalogue. It is static and public.
func (s *SubscriptionService) ListTiers(ctx context.Context) []domain.TierInfo {
	return domain.ListTiers()
}
