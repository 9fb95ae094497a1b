// Package repomanager wires repository implementations to a storage
// backend. Services hold a RepositoryManager and a connection handle, and
// stay oblivious to whether storage is PostgreSQL or in-process maps.
package repomanager

import (
	"context"
	"database/sql"

	"noteshare/internal/dbx"
	"noteshare/internal/server/repositories/collaborations"
	"noteshare/internal/server/repositories/notes"
	"noteshare/internal/server/repositories/tokens"
	"noteshare/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to the given handle (a
// *sql.DB, a *sql.Tx, or nil for the in-memory backend) and runs schema
// migrations where that applies.
type RepositoryManager interface {
	RunMigrations(ctx context.Context, db *sql.DB) error

	Users(db dbx.DBTX) users.Repository
	Notes(db dbx.DBTX) notes.Repository
	Collaborations(db dbx.DBTX) collaborations.Repository
	RefreshTokens(db dbx.DBTX) tokens.Repository

	// InTx runs fn atomically where the backend supports transactions.
	// The DBTX passed to fn must be handed to the vending methods above.
	InTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx dbx.DBTX) error) error
}
