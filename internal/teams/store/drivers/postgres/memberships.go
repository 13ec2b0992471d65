package postgres

import (
	"context"
	"time"

	"github.com/huddlehq/huddle/internal/teams/domain"
	"github.com/huddlehq/huddle/internal/teams/store"
)

type membershipsRepo struct {
	db querier
}

const membershipColumns = `id, team_id, user_id, role, created_at, updated_at`

func (r *membershipsRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO memberships (id, team_id, user_id, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.ID, m.TeamID, m.UserID, string(m.Role), m.CreatedAt, m.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *membershipsRepo) GetMembership(ctx context.Context, teamID, userID string) (domain.Membership, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE team_id = $1 AND user_id = $2`,
		teamID, userID)

	m, err := scanMembership(row)
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membershipsRepo) ListTeamMembers(ctx context.Context, teamID string) ([]domain.Membership, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE team_id = $1 ORDER BY created_at, id`,
		teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *membershipsRepo) ListUserMemberships(ctx context.Context, userID string) ([]domain.Membership, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE user_id = $1 ORDER BY created_at, id`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *membershipsRepo) UpdateMembershipRole(ctx context.Context, teamID, userID string, role domain.Role) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE memberships SET role = $1, updated_at = $2
		WHERE team_id = $3 AND user_id = $4`,
		string(role), time.Now().UTC(), teamID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *membershipsRepo) DeleteMembership(ctx context.Context, teamID, userID string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM memberships WHERE team_id = $1 AND user_id = $2`,
		teamID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *membershipsRepo) CountTeamMembers(ctx context.Context, teamID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM memberships WHERE team_id = $1`, teamID).Scan(&count)
	return count, err
}

func (r *membershipsRepo) CountTeamOwners(ctx context.Context, teamID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM memberships WHERE team_id = $1 AND role = 'owner'`, teamID).Scan(&count)
	return count, err
}
