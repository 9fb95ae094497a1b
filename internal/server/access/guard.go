// Package access implements the authorization guard: given a caller, a
// note, and a required permission level, it grants or denies based on
// ownership and collaboration grants.
package access

import (
	"context"
	"database/sql"
	"errors"

	"noteshare/internal/common"
	"noteshare/internal/server/models"
	"noteshare/internal/server/repositories/repomanager"
)

// Level is the permission required for an operation. The asymmetry
// between owner and collaborator lives entirely in this enum: Read and
// Update are granted to the owner or a collaborator, Delete to the owner
// only. Delete doubles as the owner-only level for collaborator
// management.
type Level int

const (
	LevelRead Level = iota
	LevelUpdate
	LevelDelete
)

func (l Level) String() string {
	switch l {
	case LevelRead:
		return "read"
	case LevelUpdate:
		return "update"
	case LevelDelete:
		return "delete"
	default:
		return "unknown"
	}
}

// Guard decides note access. It is stateless; every decision consults the
// stores.
type Guard struct {
	db      *sql.DB
	manager repomanager.RepositoryManager
}

func NewGuard(db *sql.DB, m repomanager.RepositoryManager) *Guard {
	return &Guard{db: db, manager: m}
}

// Authorize fetches the note and checks the caller against it. On success
// it returns the note, sparing the caller a second store round-trip.
// Failure modes: common.ErrorNotFound if the note does not exist,
// common.ErrorForbidden if the caller lacks the level.
func (g *Guard) Authorize(ctx context.Context, userID, noteID string, level Level) (*models.Note, error) {
	note, err := g.manager.Notes(g.db).FindByID(ctx, noteID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	if note.OwnerID == userID {
		return note, nil
	}

	if level == LevelDelete {
		return nil, common.ErrorForbidden
	}

	ok, err := g.manager.Collaborations(g.db).Exists(ctx, noteID, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, common.ErrorForbidden
	}

	return note, nil
}
