// Package notes declares the note-store contract and its backends.
package notes

import (
	"context"

	"noteshare/internal/server/models"
)

// Repository persists notes. OwnerID is a weak reference to a user; the
// store never touches user records.
type Repository interface {
	// Create inserts a new note and returns it with its assigned id.
	Create(ctx context.Context, note *models.Note) (*models.Note, error)

	// FindByID returns the note with the given id, or common.ErrorNotFound.
	FindByID(ctx context.Context, id string) (*models.Note, error)

	// Update rewrites title, body, tags, and updated_at of an existing
	// note. Returns common.ErrorNotFound if the note is gone.
	Update(ctx context.Context, note *models.Note) error

	// Delete removes a note by id. Returns common.ErrorNotFound if the
	// note does not exist.
	Delete(ctx context.Context, id string) error

	// ListByOwner returns all notes owned by the given user.
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Note, error)

	// ListSharedWith returns all notes the given user collaborates on.
	ListSharedWith(ctx context.Context, userID string) ([]*models.Note, error)
}
