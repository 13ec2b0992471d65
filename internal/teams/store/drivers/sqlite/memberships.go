package sqlite

import (
	"context"
	"time"

	"github.com/huddlehq/huddle/internal/teams/domain"
)

type membershipsRepo struct {
	db dbtx
}

const membershipColumns = `id, team_id, user_id, role, created_at, updated_at`

func (r *membershipsRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO memberships (id, team_id, user_id, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		m.ID, m.TeamID, m.UserID, string(m.Role), m.CreatedAt, m.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *membershipsRepo) GetMembership(ctx context.Context, teamID, userID string) (domain.Membership, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE team_id = ? AND user_id = ?`,
		teamID, userID)

	m, err := scanMembership(row)
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membershipsRepo) ListTeamMembers(ctx context.Context, teamID string) ([]domain.Membership, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE team_id = ? ORDER BY created_at, id`,
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
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE user_id = ? ORDER BY created_at, id`,
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
	res, err := r.db.ExecContext(ctx, `
		UPDATE memberships SET role = ?, updated_at = ?
		WHERE team_id = ? AND user_id = ?`,
		string(role), time.Now().UTC(), teamID, userID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *membershipsRepo) DeleteMembership(ctx context.Context, teamID, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM memberships WHERE team_id = ? AND user_id = ?`,
		teamID, userID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *membershipsRepo) CountTeamMembers(ctx context.Context, teamID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM memberships WHERE team_id = ?`, teamID).Scan(&count)
	return count, err
}

func (r *membershipsRepo) CountTeamOwners(ctx context.Context, teamID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM memberships WHERE team_id = ? AND role = 'owner'`, teamID).Scan(&count)
	return count, err
}
