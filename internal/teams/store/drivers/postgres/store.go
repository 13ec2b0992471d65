// Package postgres is the pgx-backed store driver. It mirrors the sqlite
// driver's semantics exactly; the service layer cannot tell them apart.
package postgres

import (
	"context"
	"errors"

	"github.com/huddlehq/huddle/internal/teams/domain"
	"github.com/huddlehq/huddle/internal/teams/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx so the repos can run
// inside or outside a transaction unchanged.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() error {
	s.pool.Close()
	return nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return newTx(ctx, tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err // rollback happens in defer
	}

	return tx.Commit()
}

func (s *Store) Teams() store.Teams             { return &teamsRepo{db: s.pool} }
func (s *Store) Memberships() store.Memberships { return &membershipsRepo{db: s.pool} }
func (s *Store) Invitations() store.Invitations { return &invitationsRepo{db: s.pool} }

func mapNotFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint translates postgres unique violations (SQLSTATE 23505) into
// store.ErrAlreadyExists so services can turn them into domain conflicts.
func mapConstraint(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return store.ErrAlreadyExists
	}
	return err
}

func scanTeam(row pgx.Row) (domain.Team, error) {
	var (
		t        domain.Team
		personal *string
		tier     string
	)

	err := row.Scan(
		&t.ID, &t.Name, &t.Slug, &t.Description, &t.LogoURL,
		&t.IsPersonal, &personal, &tier, &t.SubscriptionRef,
		&t.MaxMembers, &t.Metadata, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return domain.Team{}, err
	}

	if personal != nil {
		t.PersonalOwnerID = *personal
	}
	t.SubscriptionTier = domain.Tier(tier)
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}

func scanMembership(row pgx.Row) (domain.Membership, error) {
	var (
		m    domain.Membership
		role string
	)

	if err := row.Scan(&m.ID, &m.TeamID, &m.UserID, &role, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return domain.Membership{}, err
	}

	m.Role = domain.Role(role)
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return m, nil
}

func scanInvitation(row pgx.Row) (domain.Invitation, error) {
	var (
		inv  domain.Invitation
		role string
	)

	err := row.Scan(
		&inv.ID, &inv.TeamID, &inv.Email, &role,
		&inv.TokenHash, &inv.CreatedBy, &inv.ExpiresAt, &inv.CreatedAt,
	)
	if err != nil {
		return domain.Invitation{}, err
	}

	inv.Role = domain.Role(role)
	inv.ExpiresAt = inv.ExpiresAt.UTC()
	inv.CreatedAt = inv.CreatedAt.UTC()
	return inv, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
