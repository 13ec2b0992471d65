package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/huddlehq/huddle/internal/teams/authz"
	"github.com/huddlehq/huddle/internal/teams/domain"
	"github.com/huddlehq/huddle/internal/teams/store"
	"github.com/huddlehq/huddle/pkg/idx"
	"github.com/huddlehq/huddle/pkg/slogx"
)

// DefaultTier is assigned to every newly created team.
const DefaultTier = domain.TierFree

// MaxNameLength bounds team names; anything longer is a validation error.
const MaxNameLength = 100

// TeamService owns the team lifecycle: creation, reads, metadata updates,
// deletion and the membership mutations hanging off a team. Every mutation
// that can affect the owner count re-derives it inside the same transaction.
type TeamService struct {
	Store store.Store
}

// TeamView is a team joined with its current owner, the shape every read
// endpoint returns. OwnerID is the earliest owner membership on the team.
type TeamView struct {
	Team    domain.Team
	OwnerID string
}

// CreateTeamParams carries the caller-supplied fields for a new team. Slug
// is optional; a blank slug is derived from the name.
type CreateTeamParams struct {
	Name        string
	Slug        string
	Description string
	LogoURL     string
}

// CreateTeam provisions a team with the creator as its sole owner. The team
// row and the owner membership are written in one transaction so a team can
// never exist without an owner.
func (s *TeamService) CreateTeam(ctx context.Context, actorID string, params CreateTeamParams) (TeamView, error) {
	log := slogx.FromContext(ctx)

	if actorID == "" {
		return TeamView{}, ErrValidation
	}
	name := strings.TrimSpace(params.Name)
	if name == "" || len(name) > MaxNameLength {
		return TeamView{}, ErrValidation
	}

	slug, err := s.resolveSlug(ctx, params.Slug, name)
	if err != nil {
		return TeamView{}, err
	}

	now := time.Now().UTC()
	tierInfo, _ := domain.TierInfoFor(DefaultTier)
	team := domain.Team{
		ID:               idx.New().String(),
		Name:             name,
		Slug:             slug,
		Description:      strings.TrimSpace(params.Description),
		LogoURL:          strings.TrimSpace(params.LogoURL),
		SubscriptionTier: DefaultTier,
		MaxMembers:       tierInfo.MaxMembers,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Teams().CreateTeam(ctx, team); err != nil {
			return err
		}
		return tx.Memberships().CreateMembership(ctx, domain.Membership{
			ID:        idx.New().String(),
			TeamID:    team.ID,
			UserID:    actorID,
			Role:      domain.RoleOwner,
			CreatedAt: now,
			UpdatedAt: now,
		})
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Slug raced with another creation between resolveSlug and here.
			return TeamView{}, ErrValidation
		}
		return TeamView{}, unavailable(err)
	}

	log.Info("team created",
		slog.String("team_id", team.ID),
		slog.String("slug", team.Slug),
		slog.String("owner_id", actorID),
	)
	return TeamView{Team: team, OwnerID: actorID}, nil
}

// CreatePersonalTeam provisions the single-member workspace every user gets
// on signup. At most one exists per user; a second attempt conflicts.
func (s *TeamService) CreatePersonalTeam(ctx context.Context, userID, displayName string) (TeamView, error) {
	log := slogx.FromContext(ctx)

	if userID == "" {
		return TeamView{}, ErrValidation
	}
	name := strings.TrimSpace(displayName)
	if name == "" {
		name = "Personal"
	}

	slug, err := s.resolveSlug(ctx, "", name)
	if err != nil {
		return TeamView{}, err
	}

	now := time.Now().UTC()
	tierInfo, _ := domain.TierInfoFor(DefaultTier)
	team := domain.Team{
		ID:               idx.New().String(),
		Name:             name,
		Slug:             slug,
		IsPersonal:       true,
		PersonalOwnerID:  userID,
		SubscriptionTier: DefaultTier,
		MaxMembers:       tierInfo.MaxMembers,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Teams().CreateTeam(ctx, team); err != nil {
			return err
		}
		return tx.Memberships().CreateMembership(ctx, domain.Membership{
			ID:        idx.New().String(),
			TeamID:    team.ID,
			UserID:    userID,
			Role:      domain.RoleOwner,
			CreatedAt: now,
			UpdatedAt: now,
		})
	})
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return TeamView{}, ErrPersonalTeamExists
		}
		return TeamView{}, unavailable(err)
	}

	log.Info("personal team created",
		slog.String("team_id", team.ID),
		slog.String("user_id", userID),
	)
	return TeamView{Team: team, OwnerID: userID}, nil
}

// GetTeam returns the team with its owner. Only members may read it.
func (s *TeamService) GetTeam(ctx context.Context, teamID, actorID string) (TeamView, error) {
	team, err := s.loadTeam(ctx, teamID)
	if err != nil {
		return TeamView{}, err
	}
	actor, err := s.requireMembership(ctx, teamID, actorID)
	if err != nil {
		return TeamView{}, err
	}
	if !authz.Can(actor.Role, authz.ActionReadTeam, domain.Role("")) {
		return TeamView{}, ErrForbidden
	}
	return s.viewOf(ctx, team)
}

// ListTeams returns every team the user belongs to, personal included.
func (s *TeamService) ListTeams(ctx context.Context, userID string) ([]TeamView, error) {
	if userID == "" {
		return nil, ErrValidation
	}
	memberships, err := s.Store.Memberships().ListUserMemberships(ctx, userID)
	if err != nil {
		return nil, unavailable(err)
	}

	views := make([]TeamView, 0, len(memberships))
	for _, m := range memberships {
		team, err := s.Store.Teams().GetTeamByID(ctx, m.TeamID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			return nil, unavailable(err)
		}
		view, err := s.viewOf(ctx, team)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// UpdateTeam patches team metadata. Owners and admins only; absent patch
// fields are left untouched.
func (s *TeamService) UpdateTeam(ctx context.Context, teamID, actorID string, patch domain.TeamPatch) (TeamView, error) {
	team, err := s.loadTeam(ctx, teamID)
	if err != nil {
		return TeamView{}, err
	}
	actor, err := s.requireMembership(ctx, teamID, actorID)
	if err != nil {
		return TeamView{}, err
	}
	if !authz.Can(actor.Role, authz.ActionUpdateTeam, domain.Role("")) {
		return TeamView{}, ErrForbidden
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" || len(name) > MaxNameLength {
			return TeamView{}, ErrValidation
		}
		team.Name = name
	}
	if patch.Description != nil {
		team.Description = strings.TrimSpace(*patch.Description)
	}
	if patch.LogoURL != nil {
		team.LogoURL = strings.TrimSpace(*patch.LogoURL)
	}
	team.UpdatedAt = time.Now().UTC()

	if err := s.Store.Teams().UpdateTeam(ctx, team); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TeamView{}, ErrTeamNotFound
		}
		return TeamView{}, unavailable(err)
	}
	return s.viewOf(ctx, team)
}

// DeleteTeam removes a team and, via cascade, its memberships and
// invitations. Personal teams are refused before authorization is even
// considered, so not even the owner can delete one.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID, actorID string) error {
	log := slogx.FromContext(ctx)

	team, err := s.loadTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if team.IsPersonal {
		return ErrPersonalTeamProtected
	}
	actor, err := s.requireMembership(ctx, teamID, actorID)
	if err != nil {
		return err
	}
	if !authz.Can(actor.Role, authz.ActionDeleteTeam, domain.Role("")) {
		return ErrForbidden
	}

	if err := s.Store.Teams().DeleteTeam(ctx, teamID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTeamNotFound
		}
		return unavailable(err)
	}

	log.Info("team deleted",
		slog.String("team_id", teamID),
		slog.String("actor_id", actorID),
	)
	return nil
}

// loadTeam fetches a team, translating a miss into the domain taxonomy.
func (s *TeamService) loadTeam(ctx context.Context, teamID string) (domain.Team, error) {
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

// requireMembership resolves the actor's membership on the team. A missing
// membership is a uniform Forbidden, never a NotFound.
func (s *TeamService) requireMembership(ctx context.Context, teamID, actorID string) (domain.Membership, error) {
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

// viewOf joins a team with its earliest owner.
func (s *TeamService) viewOf(ctx context.Context, team domain.Team) (TeamView, error) {
	members, err := s.Store.Memberships().ListTeamMembers(ctx, team.ID)
	if err != nil {
		return TeamView{}, unavailable(err)
	}
	view := TeamView{Team: team}
	for _, m := range members {
		if m.Role == domain.RoleOwner {
			view.OwnerID = m.UserID
			break
		}
	}
	return view, nil
}

// resolveSlug picks a slug: the caller's if given and free, otherwise one
// derived from the name, suffixed on collision.
func (s *TeamService) resolveSlug(ctx context.Context, requested, name string) (string, error) {
	slug := slugify(requested)
	if slug == "" {
		slug = slugify(name)
	}
	if slug == "" {
		slug = "team"
	}

	_, err := s.Store.Teams().GetTeamBySlug(ctx, slug)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return slug, nil
	case err != nil:
		return "", unavailable(err)
	}
	// Taken; disambiguate with the tail of a fresh ULID.
	id := idx.New().String()
	return slug + "-" + strings.ToLower(id[len(id)-6:]), nil
}

// slugify lowercases and collapses anything non-alphanumeric into single
// dashes.
func slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) && r < 128, unicode.IsDigit(r) && r < 128:
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
