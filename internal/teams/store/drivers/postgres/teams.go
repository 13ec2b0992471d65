package postgres

import (
	"context"
	"time"

	"github.com/huddlehq/huddle/internal/teams/domain"
	"github.com/huddlehq/huddle/internal/teams/store"
)

type teamsRepo struct {
	db querier
}

const teamColumns = `id, name, slug, description, logo_url, is_personal,
	personal_owner_id, subscription_tier, subscription_ref, max_members,
	metadata, created_at, updated_at`

func (r *teamsRepo) CreateTeam(ctx context.Context, t domain.Team) error {
	metadata := t.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}

	_, err := r.db.Exec(ctx, `
		INSERT INTO teams (
			id, name, slug, description, logo_url, is_personal,
			personal_owner_id, subscription_tier, subscription_ref,
			max_members, metadata, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		t.ID, t.Name, t.Slug, t.Description, t.LogoURL, t.IsPersonal,
		nullIfEmpty(t.PersonalOwnerID), string(t.SubscriptionTier),
		t.SubscriptionRef, t.MaxMembers, metadata, t.CreatedAt, t.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *teamsRepo) GetTeamByID(ctx context.Context, id string) (domain.Team, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE id = $1`, id)

	t, err := scanTeam(row)
	if err != nil {
		return domain.Team{}, mapNotFound(err)
	}
	return t, nil
}

func (r *teamsRepo) GetTeamBySlug(ctx context.Context, slug string) (domain.Team, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE slug = $1`, slug)

	t, err := scanTeam(row)
	if err != nil {
		return domain.Team{}, mapNotFound(err)
	}
	return t, nil
}

func (r *teamsRepo) UpdateTeam(ctx context.Context, t domain.Team) error {
	metadata := t.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE teams
		SET name = $1, description = $2, logo_url = $3, metadata = $4, updated_at = $5
		WHERE id = $6`,
		t.Name, t.Description, t.LogoURL, metadata, time.Now().UTC(), t.ID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *teamsRepo) UpdateSubscription(
	ctx context.Context,
	teamID string,
	tier domain.Tier,
	ref string,
	maxMembers int,
) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE teams
		SET subscription_tier = $1, subscription_ref = $2, max_members = $3, updated_at = $4
		WHERE id = $5`,
		string(tier), ref, maxMembers, time.Now().UTC(), teamID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *teamsRepo) DeleteTeam(ctx context.Context, teamID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM teams WHERE id = $1`, teamID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}
