package store

import (
	"context"
	"errors"
	"time"

	"github.com/huddlehq/huddle/internal/teams/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite,
// postgres) implement this. It exposes sub-repositories to keep concerns
// tidy and testable, and to stop callers from accidentally starting
// transactions within transactions.
type Store interface {
	Teams() Teams
	Memberships() Memberships
	Invitations() Invitations

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to run multi-step mutations: every invariant check
	// (owner counts, duplicate lookups) sees the same snapshot the mutation
	// commits against.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Teams interface {
	// CreateTeam inserts a new team (id is provided by the app via ULID).
	// A slug or personal-owner collision surfaces as ErrAlreadyExists.
	CreateTeam(ctx context.Context, t domain.Team) error

	// GetTeamByID returns a team by id.
	GetTeamByID(ctx context.Context, id string) (domain.Team, error)

	// GetTeamBySlug returns a team by its unique slug.
	GetTeamBySlug(ctx context.Context, slug string) (domain.Team, error)

	// UpdateTeam persists name/description/logo/metadata and bumps updated_at.
	UpdateTeam(ctx context.Context, t domain.Team) error

	// UpdateSubscription sets tier, billing reference and the derived member
	// cap, and bumps updated_at.
	UpdateSubscription(ctx context.Context, teamID string, tier domain.Tier, ref string, maxMembers int) error

	// DeleteTeam removes the team; memberships and invitations cascade.
	DeleteTeam(ctx context.Context, teamID string) error
}

type Memberships interface {
	// CreateMembership inserts a membership row. A duplicate (team, user)
	// pair surfaces as ErrAlreadyExists.
	CreateMembership(ctx context.Context, m domain.Membership) error

	// GetMembership returns the membership of a user in a team.
	GetMembership(ctx context.Context, teamID, userID string) (domain.Membership, error)

	// ListTeamMembers returns all memberships of a team, oldest first.
	ListTeamMembers(ctx context.Context, teamID string) ([]domain.Membership, error)

	// ListUserMemberships returns all memberships a user holds, oldest first.
	ListUserMemberships(ctx context.Context, userID string) ([]domain.Membership, error)

	// UpdateMembershipRole sets the role and bumps updated_at.
	UpdateMembershipRole(ctx context.Context, teamID, userID string, role domain.Role) error

	// DeleteMembership removes a single membership row.
	DeleteMembership(ctx context.Context, teamID, userID string) error

	// CountTeamMembers returns the number of memberships in a team.
	CountTeamMembers(ctx context.Context, teamID string) (int, error)

	// CountTeamOwners returns the number of owner memberships in a team.
	// Owner-count guards must call this inside the same transaction as the
	// mutation they protect.
	CountTeamOwners(ctx context.Context, teamID string) (int, error)
}

type Invitations interface {
	// CreateInvitation inserts a pending invitation. A second pending
	// invitation for the same (team, email) surfaces as ErrAlreadyExists.
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByID returns an invitation regardless of expiry.
	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// GetLiveInvitationByTokenHash returns a not-yet-expired invitation by
	// token fingerprint. Expired rows report ErrNotFound.
	GetLiveInvitationByTokenHash(ctx context.Context, hash string, now time.Time) (domain.Invitation, error)

	// GetInvitationByEmail returns the pending invitation for (team, email).
	GetInvitationByEmail(ctx context.Context, teamID, email string) (domain.Invitation, error)

	// ListTeamInvitations returns all invitation rows of a team, oldest first.
	ListTeamInvitations(ctx context.Context, teamID string) ([]domain.Invitation, error)

	// DeleteInvitation removes an invitation row.
	DeleteInvitation(ctx context.Context, id string) error

	// DeleteExpiredInvitations is housekeeping; acceptance and verification
	// never depend on it.
	DeleteExpiredInvitations(ctx context.Context, now time.Time) error
}
