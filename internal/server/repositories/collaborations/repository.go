// Package collaborations declares the sharing-grant store contract and
// its backends.
package collaborations

import (
	"context"

	"noteshare/internal/server/models"
)

// Repository persists sharing grants. The (note, user) pair is unique and
// the uniqueness check is atomic with the insert.
type Repository interface {
	// Create inserts a new grant and returns it with its assigned id.
	// A duplicate (note, user) pair yields common.ErrorAlreadyExists.
	Create(ctx context.Context, grant *models.Collaboration) (*models.Collaboration, error)

	// Exists reports whether the given user holds a grant on the note.
	Exists(ctx context.Context, noteID, userID string) (bool, error)

	// Delete removes the grant for the pair. Returns common.ErrorNotFound
	// if no such grant exists.
	Delete(ctx context.Context, noteID, userID string) error

	// DeleteByNote removes every grant on a note. Absence of grants is
	// not an error.
	DeleteByNote(ctx context.Context, noteID string) error

	// ListByNote returns all grants on the given note.
	ListByNote(ctx context.Context, noteID string) ([]*models.Collaboration, error)
}
