package postgres

import (
	"context"
	"time"

	"github.com/huddlehq/huddle/internal/teams/domain"
	"github.com/huddlehq/huddle/internal/teams/store"
)

type invitationsRepo struct {
	db querier
}

const invitationColumns = `id, team_id, email, role, token_hash, created_by, expires_at, created_at`

func (r *invitationsRepo) CreateInvitation(ctx context.Context, inv domain.Invitation) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO invitations (id, team_id, email, role, token_hash, created_by, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		inv.ID, inv.TeamID, inv.Email, string(inv.Role),
		inv.TokenHash, inv.CreatedBy, inv.ExpiresAt, inv.CreatedAt,
	)
	return mapConstraint(err)
}

func (r *invitationsRepo) GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE id = $1`, id)

	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) GetLiveInvitationByTokenHash(
	ctx context.Context,
	hash string,
	now time.Time,
) (domain.Invitation, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE token_hash = $1`, hash)

	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}

	// Same single-clock expiry rule as the sqlite driver.
	if !inv.Live(now) {
		return domain.Invitation{}, store.ErrNotFound
	}
	return inv, nil
}

func (r *invitationsRepo) GetInvitationByEmail(ctx context.Context, teamID, email string) (domain.Invitation, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE team_id = $1 AND email = $2`,
		teamID, email)

	inv, err := scanInvitation(row)
	if err != nil {
		return domain.Invitation{}, mapNotFound(err)
	}
	return inv, nil
}

func (r *invitationsRepo) ListTeamInvitations(ctx context.Context, teamID string) ([]domain.Invitation, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+invitationColumns+` FROM invitations WHERE team_id = $1 ORDER BY created_at, id`,
		teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invitations []domain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		invitations = append(invitations, inv)
	}
	return invitations, rows.Err()
}

func (r *invitationsRepo) DeleteInvitation(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM invitations WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *invitationsRepo) DeleteExpiredInvitations(ctx context.Context, now time.Time) error {
	_, err := r.db.Exec(ctx, `DELETE FROM invitations WHERE expires_at <= $1`, now)
	return err
}
