package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/huddlehq/huddle/internal/teams/domain"
	"github.com/huddlehq/huddle/internal/teams/store"

	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx so the repos can run inside
// or outside a transaction unchanged.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	dsn string
}

func NewStore(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// A single pooled connection keeps pragmas effective and gives an
	// in-memory database one coherent view across the pool.
	db.SetMaxOpenConns(1)

	// Enforce FKs so team deletion cascades to memberships and invitations.
	// The busy timeout makes concurrent write transactions queue instead of
	// failing immediately with SQLITE_BUSY.
	for _, pragma := range []string{
		`PRAGMA foreign_keys = ON;`,
		`PRAGMA busy_timeout = 5000;`,
	} {
		if _, err := db.ExecContext(context.Background(), pragma); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return &Store{db: db, dsn: dsn}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Ensure rollback is called if we panic or return early with error
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err // rollback happens in defer
	}

	return tx.Commit()
}

func (s *Store) Teams() store.Teams             { return &teamsRepo{db: s.db} }
func (s *Store) Memberships() store.Memberships { return &membershipsRepo{db: s.db} }
func (s *Store) Invitations() store.Invitations { return &invitationsRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint translates sqlite unique/primary-key violations into
// store.ErrAlreadyExists so services can turn them into domain conflicts.
func mapConstraint(err error) error {
	if err == nil {
		return nil
	}

	var se *sqlitedrv.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return store.ErrAlreadyExists
		}
	}
	return err
}

// requireRow converts zero-rows-affected updates and deletes into
// store.ErrNotFound so callers don't need a separate existence probe.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func mapNullString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func mapStringNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func encodeMetadata(m map[string]string) (string, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func decodeMetadata(raw string) (map[string]string, error) {
	if raw == "" || raw == "{}" {
		return nil, nil
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, err
	}
	return m, nil
}

func scanTeam(row interface{ Scan(dest ...any) error }) (domain.Team, error) {
	var (
		t        domain.Team
		personal sql.NullString
		tier     string
		metadata string
	)

	err := row.Scan(
		&t.ID, &t.Name, &t.Slug, &t.Description, &t.LogoURL,
		&t.IsPersonal, &personal, &tier, &t.SubscriptionRef,
		&t.MaxMembers, &metadata, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return domain.Team{}, err
	}

	t.PersonalOwnerID = mapNullString(personal)
	t.SubscriptionTier = domain.Tier(tier)
	t.Metadata, err = decodeMetadata(metadata)
	if err != nil {
		return domain.Team{}, err
	}
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	return t, nil
}

func scanMembership(row interface{ Scan(dest ...any) error }) (domain.Membership, error) {
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

func scanInvitation(row interface{ Scan(dest ...any) error }) (domain.Invitation, error) {
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
