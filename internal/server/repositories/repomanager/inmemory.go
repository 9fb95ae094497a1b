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

// InMemoryRepositoryManager vends the ephemeral backends. The DBTX
// arguments are ignored: all state lives in the shared repository
// instances, and InTx degrades to a plain call since each in-memory
// operation is already atomic under its own lock.
type InMemoryRepositoryManager struct {
	users          *users.InMemoryRepository
	notes          *notes.InMemoryRepository
	collaborations *collaborations.InMemoryRepository
	refreshTokens  *tokens.InMemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	grants := collaborations.NewInMemoryRepository()
	return &InMemoryRepositoryManager{
		users:          users.NewInMemoryRepository(),
		notes:          notes.NewInMemoryRepository(grants),
		collaborations: grants,
		refreshTokens:  tokens.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Notes(db dbx.DBTX) notes.Repository {
	return m.notes
}

func (m *InMemoryRepositoryManager) Collaborations(db dbx.DBTX) collaborations.Repository {
	return m.collaborations
}

func (m *InMemoryRepositoryManager) RefreshTokens(db dbx.DBTX) tokens.Repository {
	return m.refreshTokens
}

func (m *InMemoryRepositoryManager) InTx(ctx context.Context, db *sql.DB, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	return fn(ctx, nil)
}
