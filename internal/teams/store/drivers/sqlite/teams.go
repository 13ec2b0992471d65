package sqlite

import (
	"context"
	"time"

	"github.com/huddlehq/huddle/internal/teams/domain"
)

type teamsRepo struct {
	db dbtx
}

const teamColumns = `id, name, slug, description, logo_url, is_personal,
	personal_owner_id, subscription_tier, subscription_ref, max_members,
	metadata, created_at, updated_at`

func (r *teamsRepo) CreateTeam(ctx context.Context, t domain.Team) error {
	metadata, err := encodeMetadata(t.Metadata)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO teams (
			id, name, slug, description, logo_url, is_personal,
			personal_owner_id, subscription_tier, subscription_ref,
			max_members, metadata, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.Slug, t.Description, t.LogoURL, t.IsPersonal,
		mapStringNull(t.PersonalOwnerID), string(t.SubscriptionTier),
		t.SubscriptionRef, t.MaxMembers, metadata, t.CreatedAt, t.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *teamsRepo) GetTeamByID(ctx context.Context, id string) (domain.Team, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE id = ?`, id)

	t, err := scanTeam(row)
	if err != nil {
		return domain.Team{}, mapNotFound(err)
	}
	return t, nil
}

func (r *teamsRepo) GetTeamBySlug(ctx context.Context, slug string) (domain.Team, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE slug = ?`, slug)

	t, err := scanTeam(row)
	if err != nil {
		return domain.Team{}, mapNotFound(err)
	}
	return t, nil
}

func (r *teamsRepo) UpdateTeam(ctx context.Context, t domain.Team) error {
	metadata, err := encodeMetadata(t.Metadata)
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE teams
		SET name = ?, description = ?, logo_url = ?, metadata = ?, updated_at = ?
		WHERE id = ?`,
		t.Name, t.Description, t.LogoURL, metadata, time.Now().UTC(), t.ID,
	)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRow(res)
}

func (r *teamsRepo) UpdateSubscription(
	ctx context.Context,
	teamID string,
	tier domain.Tier,
	ref string,
	maxMembers int,
) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE teams
		SET subscription_tier = ?, subscription_ref = ?, max_members = ?, updated_at = ?
		WHERE id = ?`,
		string(tier), ref, maxMembers, time.Now().UTC(), teamID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *teamsRepo) DeleteTeam(ctx context.Context, teamID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, teamID)
	if err != nil {
		return err
	}
	return requireRow(res)
}
