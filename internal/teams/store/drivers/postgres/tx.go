package postgres

import (
	"context"
	"database/sql"

	"github.com/huddlehq/huddle/internal/teams/store"

	"github.com/jackc/pgx/v5"
)

type txStore struct {
	ctx context.Context
	tx  pgx.Tx
}

// newTx wraps a pgx transaction. pgx commits/rolls back with a context, so
// the transaction keeps the context it was started under.
func newTx(ctx context.Context, tx pgx.Tx) *txStore {
	return &txStore{ctx: ctx, tx: tx}
}

func (t *txStore) Commit() error   { return t.tx.Commit(t.ctx) }
func (t *txStore) Rollback() error { return t.tx.Rollback(t.ctx) }

func (t *txStore) Close() error { return nil } // caller will commit/rollback and the outer pool stays open

func (t *txStore) Ping(ctx context.Context) error {
	return nil
}

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return sql.ErrTxDone
}

func (t *txStore) Teams() store.Teams             { return &teamsRepo{db: t.tx} }
func (t *txStore) Memberships() store.Memberships { return &membershipsRepo{db: t.tx} }
func (t *txStore) Invitations() store.Invitations { return &invitationsRepo{db: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // no-op; migrations run before transactions start
