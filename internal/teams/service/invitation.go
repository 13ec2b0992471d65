package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/huddlehq/huddle/internal/teams/authz"
	"github.com/huddlehq/huddle/internal/teams/domain"
	"github.com/huddlehq/huddle/internal/teams/store"
	"github.com/huddlehq/huddle/pkg/cryptox"
	"github.com/huddlehq/huddle/pkg/idx"
	"github.com/huddlehq/huddle/pkg/slogx"
)

// InvitationTTL is how long a minted invitation stays acceptable.
const InvitationTTL = 7 * 24 * time.Hour

// InvitationService mints, verifies and settles invitation tokens. The
// opaque token leaves the service exactly once, at mint time; afterwards
// only its fingerprint exists.
type InvitationService struct {
	Store store.Store

	// TTL overrides InvitationTTL when positive. Tests shrink it.
	TTL time.Duration
}

// InvitationPreview is what an unauthenticated token holder gets to see
// before accepting: enough to decide, nothing more.
type InvitationPreview struct {
	Invitation domain.Invitation
	TeamName   string
}

func (s *InvitationService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return InvitationTTL
}

// Invite mints a single-use invitation for an email address. One pending
// invitation per (team, email); an expired leftover for the same address is
// replaced rather than blocking the re-invite.
func (s *InvitationService) Invite(ctx context.Context, teamID, email string, role domain.Role, actorID string) (domain.Invitation, string, error) {
	log := slogx.FromContext(ctx)

	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.Invitation{}, "", ErrValidation
	}
	if !role.Valid() {
		return domain.Invitation{}, "", ErrInvalidRole
	}

	team, err := s.loadTeam(ctx, teamID)
	if err != nil {
		return domain.Invitation{}, "", err
	}
	if team.IsPersonal {
		return domain.Invitation{}, "", ErrPersonalTeamImmutable
	}
	actor, err := s.requireMembership(ctx, teamID, actorID)
	if err != nil {
		return domain.Invitation{}, "", err
	}
	if !authz.Can(actor.Role, authz.ActionInvite, role) {
		return domain.Invitation{}, "", ErrForbidden
	}

	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.Invitation{}, "", unavailable(err)
	}

	now := time.Now().UTC()
	inv := domain.Invitation{
		ID:        idx.New().String(),
		TeamID:    teamID,
		Email:     email,
		Role:      role,
		TokenHash: cryptox.FingerprintToken(token),
		CreatedBy: actorID,
		ExpiresAt: now.Add(s.ttl()),
		CreatedAt: now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		existing, err := tx.Invitations().GetInvitationByEmail(ctx, teamID, email)
		switch {
		case err == nil:
			if existing.Live(now) {
				return ErrAlreadyInvited
			}
			// Dead row from an earlier invite; clear it so the unique
			// constraint admits the replacement.
			if err := tx.Invitations().DeleteInvitation(ctx, existing.ID); err != nil {
				return err
			}
		case !errors.Is(err, store.ErrNotFound):
			return err
		}
		return tx.Invitations().CreateInvitation(ctx, inv)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyInvited):
			return domain.Invitation{}, "", ErrAlreadyInvited
		case errors.Is(err, store.ErrAlreadyExists):
			// Constraint caught a concurrent invite to the same address.
			return domain.Invitation{}, "", ErrAlreadyInvited
		}
		return domain.Invitation{}, "", unavailable(err)
	}

	log.Info("invitation created",
		slog.String("team_id", teamID),
		slog.String("invitation_id", inv.ID),
		slog.String("role", string(role)),
		slog.String("actor_id", actorID),
	)
	return inv, token, nil
}

// VerifyToken resolves an opaque token to its invitation and team name
// without consuming it. Missing and expired tokens are indistinguishable.
func (s *InvitationService) VerifyToken(ctx context.Context, token string) (InvitationPreview, error) {
	if token == "" {
		return InvitationPreview{}, ErrValidation
	}

	now := time.Now().UTC()
	inv, err := s.Store.Invitations().GetLiveInvitationByTokenHash(ctx, cryptox.FingerprintToken(token), now)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return InvitationPreview{}, ErrInvitationNotFound
		}
		return InvitationPreview{}, unavailable(err)
	}

	team, err := s.Store.Teams().GetTeamByID(ctx, inv.TeamID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return InvitationPreview{}, ErrInvitationNotFound
		}
		return InvitationPreview{}, unavailable(err)
	}
	return InvitationPreview{Invitation: inv, TeamName: team.Name}, nil
}

// AcceptInvitation consumes a token: membership created at the invited role,
// invitation row deleted, all in one transaction. A second accept of the
// same token therefore sees no invitation at all.
func (s *InvitationService) AcceptInvitation(ctx context.Context, token, userID string) (string, error) {
	log := slogx.FromContext(ctx)

	if token == "" || userID == "" {
		return "", ErrValidation
	}

	now := time.Now().UTC()
	hash := cryptox.FingerprintToken(token)

	var teamID string
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		inv, err := tx.Invitations().GetLiveInvitationByTokenHash(ctx, hash, now)
		if err != nil {
			return err
		}
		teamID = inv.TeamID

		team, err := tx.Teams().GetTeamByID(ctx, inv.TeamID)
		if err != nil {
			return err
		}

		if _, err := tx.Memberships().GetMembership(ctx, inv.TeamID, userID); err == nil {
			return ErrAlreadyMember
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		count, err := tx.Memberships().CountTeamMembers(ctx, inv.TeamID)
		if err != nil {
			return err
		}
		if team.MaxMembers > 0 && count >= team.MaxMembers {
			return ErrTeamFull
		}

		if err := tx.Memberships().CreateMembership(ctx, domain.Membership{
			ID:        idx.New().String(),
			TeamID:    inv.TeamID,
			UserID:    userID,
			Role:      inv.Role,
			CreatedAt: now,
			UpdatedAt: now,
		}); err != nil {
			return err
		}
		return tx.Invitations().DeleteInvitation(ctx, inv.ID)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyMember):
			return "", ErrAlreadyMember
		case errors.Is(err, ErrTeamFull):
			return "", ErrTeamFull
		case errors.Is(err, store.ErrAlreadyExists):
			return "", ErrAlreadyMember
		case errors.Is(err, store.ErrNotFound):
			return "", ErrInvitationNotFound
		}
		return "", unavailable(err)
	}

	log.Info("invitation accepted",
		slog.String("team_id", teamID),
		slog.String("user_id", userID),
	)
	return teamID, nil
}

// ListInvitations returns the team's pending invitations. Expired rows
// awaiting housekeeping are filtered out.
func (s *InvitationService) ListInvitations(ctx context.Context, teamID, actorID string) ([]domain.Invitation, error) {
	actor, err := s.requireMembership(ctx, teamID, actorID)
	if err != nil {
		return nil, err
	}
	if !authz.Can(actor.Role, authz.ActionListInvitations, domain.Role("")) {
		return nil, ErrForbidden
	}

	all, err := s.Store.Invitations().ListTeamInvitations(ctx, teamID)
	if err != nil {
		return nil, unavailable(err)
	}

	now := time.Now().UTC()
	live := make([]domain.Invitation, 0, len(all))
	for _, inv := range all {
		if inv.Live(now) {
			live = append(live, inv)
		}
	}
	return live, nil
}

// DeleteInvitation revokes a pending invitation before it is accepted.
func (s *InvitationService) DeleteInvitation(ctx context.Context, teamID, invitationID, actorID string) error {
	log := slogx.FromContext(ctx)

	if invitationID == "" {
		return ErrValidation
	}
	actor, err := s.requireMembership(ctx, teamID, actorID)
	if err != nil {
		return err
	}
	if !authz.Can(actor.Role, authz.ActionDeleteInvitation, domain.Role("")) {
		return ErrForbidden
	}

	inv, err := s.Store.Invitations().GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return unavailable(err)
	}
	if inv.TeamID != teamID {
		return ErrInvitationNotFound
	}

	if err := s.Store.Invitations().DeleteInvitation(ctx, invitationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return unavailable(err)
	}

	log.Info("invitation deleted",
		slog.String("team_id", teamID),
		slog.String("invitation_id", invitationID),
		slog.String("actor_id", actorID),
	)
	return nil
}

// loadTeam and requireMembership mirror the team service helpers; the two
// services are wired over the same store.
func (s *InvitationService) loadTeam(ctx context.Context, teamID string) (domain.Team, error) {
	if teamID == "" {
		return domain.Team{}, ErrValidation
	}
	team, err := s.Store.Teams().GetTeamByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Team{}, ErrTeamNotFound
		}
		return domain.Team{}, unavailable(err)
	}
	return team, nil
}

func (s *InvitationService) requireMembership(ctx context.Context, teamID, actorID string) (domain.Membership, error) {
	if actorID == "" {
		return domain.Membership{}, ErrValidation
	}
	m, err := s.Store.Memberships().GetMembership(ctx, teamID, actorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Membership{}, ErrForbidden
		}
		return domain.Membership{}, unavailable(err)
	}
	return m, nil
}
