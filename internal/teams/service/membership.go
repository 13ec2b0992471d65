package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/huddlehq/huddle/internal/teams/authz"
	"github.com/huddlehq/huddle/internal/teams/domain"
	"github.com/huddlehq/huddle/internal/teams/store"
	"github.com/huddlehq/huddle/pkg/idx"
	"github.com/huddlehq/huddle/pkg/slogx"
)

// ListMembers returns the team roster, oldest membership first. Any member
// may read it; outsiders get a uniform Forbidden.
func (s *TeamService) ListMembers(ctx context.Context, teamID, actorID string) ([]domain.Membership, error) {
	actor, err := s.requireMembership(ctx, teamID, actorID)
	if err != nil {
		return nil, err
	}
	if !authz.Can(actor.Role, authz.ActionListMembers, domain.Role("")) {
		return nil, ErrForbidden
	}

	members, err := s.Store.Memberships().ListTeamMembers(ctx, teamID)
	if err != nil {
		return nil, unavailable(err)
	}
	return members, nil
}

// AddMember attaches a user to the team directly, bypassing the invitation
// flow. The authorization rule is the same as for inviting at that role.
// The capacity check and the insert share a transaction.
func (s *TeamService) AddMember(ctx context.Context, teamID, userID string, role domain.Role, actorID string) (domain.Membership, error) {
	log := slogx.FromContext(ctx)

	if userID == "" {
		return domain.Membership{}, ErrValidation
	}
	if !role.Valid() {
		return domain.Membership{}, ErrInvalidRole
	}

	team, err := s.loadTeam(ctx, teamID)
	if err != nil {
		return domain.Membership{}, err
	}
	if team.IsPersonal {
		return domain.Membership{}, ErrPersonalTeamImmutable
	}
	actor, err := s.requireMembership(ctx, teamID, actorID)
	if err != nil {
		return domain.Membership{}, err
	}
	if !authz.Can(actor.Role, authz.ActionAddMember, role) {
		return domain.Membership{}, ErrForbidden
	}

	now := time.Now().UTC()
	membership := domain.Membership{
		ID:        idx.New().String(),
		TeamID:    teamID,
		UserID:    userID,
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		count, err := tx.Memberships().CountTeamMembers(ctx, teamID)
		if err != nil {
			return err
		}
		if team.MaxMembers > 0 && count >= team.MaxMembers {
			return ErrTeamFull
		}
		return tx.Memberships().CreateMembership(ctx, membership)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrTeamFull):
			return domain.Membership{}, ErrTeamFull
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Membership{}, ErrAlreadyMember
		}
		return domain.Membership{}, unavailable(err)
	}

	log.Info("member added",
		slog.String("team_id", teamID),
		slog.String("user_id", userID),
		slog.String("role", string(role)),
		slog.String("actor_id", actorID),
	)
	return membership, nil
}

// ChangeMemberRole moves a member to a new role. The last-owner guard
// re-reads the target and the owner count inside the transaction, so two
// concurrent demotions cannot strip a team of owners.
func (s *TeamService) ChangeMemberRole(ctx context.Context, teamID, userID string, newRole domain.Role, actorID string) (domain.Membership, error) {
	log := slogx.FromContext(ctx)

	if userID == "" {
		return domain.Membership{}, ErrValidation
	}
	if !newRole.Valid() {
		return domain.Membership{}, ErrInvalidRole
	}

	if _, err := s.loadTeam(ctx, teamID); err != nil {
		return domain.Membership{}, err
	}
	actor, err := s.requireMembership(ctx, teamID, actorID)
	if err != nil {
		return domain.Membership{}, err
	}
	target, err := s.Store.Memberships().GetMembership(ctx, teamID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Membership{}, ErrMemberNotFound
		}
		return domain.Membership{}, unavailable(err)
	}
	if !authz.CanChangeRole(actor.Role, target.Role, newRole) {
		return domain.Membership{}, ErrForbidden
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Memberships().GetMembership(ctx, teamID, userID)
		if err != nil {
			return err
		}
		if current.Role == domain.RoleOwner && newRole != domain.RoleOwner {
			owners, err := tx.Memberships().CountTeamOwners(ctx, teamID)
			if err != nil {
				return err
			}
			if owners <= 1 {
				return ErrLastOwnerProtected
			}
		}
		return tx.Memberships().UpdateMembershipRole(ctx, teamID, userID, newRole)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrLastOwnerProtected):
			return domain.Membership{}, ErrLastOwnerProtected
		case errors.Is(err, store.ErrNotFound):
			return domain.Membership{}, ErrMemberNotFound
		}
		return domain.Membership{}, unavailable(err)
	}

	log.Info("member role changed",
		slog.String("team_id", teamID),
		slog.String("user_id", userID),
		slog.String("role", string(newRole)),
		slog.String("actor_id", actorID),
	)
	target.Role = newRole
	return target, nil
}

// RemoveMember detaches a user from the team. Anyone may leave on their
// own; removing others follows the role hierarchy. An owner cannot be
// removed, nor leave, if they are the last one.
func (s *TeamService) RemoveMember(ctx context.Context, teamID, userID, actorID string) error {
	log := slogx.FromContext(ctx)

	if userID == "" {
		return ErrValidation
	}
	if _, err := s.loadTeam(ctx, teamID); err != nil {
		return err
	}
	actor, err := s.requireMembership(ctx, teamID, actorID)
	if err != nil {
		return err
	}
	target, err := s.Store.Memberships().GetMembership(ctx, teamID, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMemberNotFound
		}
		return unavailable(err)
	}
	if !authz.CanRemoveMember(actor.Role, target.Role, actorID == userID) {
		return ErrForbidden
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		current, err := tx.Memberships().GetMembership(ctx, teamID, userID)
		if err != nil {
			return err
		}
		if current.Role == domain.RoleOwner {
			owners, err := tx.Memberships().CountTeamOwners(ctx, teamID)
			if err != nil {
				return err
			}
			if owners <= 1 {
				return ErrLastOwnerProtected
			}
		}
		return tx.Memberships().DeleteMembership(ctx, teamID, userID)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrLastOwnerProtected):
			return ErrLastOwnerProtected
		case errors.Is(err, store.ErrNotFound):
			return ErrMemberNotFound
		}
		return unavailable(err)
	}

	log.Info("member removed",
		slog.String("team_id", teamID),
		slog.String("user_id", userID),
		slog.String("actor_id", actorID),
	)
	return nil
}
