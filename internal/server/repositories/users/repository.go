// Package users declares the credential-store contract and its backends.
package users

import (
	"context"

	"noteshare/internal/server/models"
)

// Repository persists user records. Username uniqueness is enforced by the
// implementation atomically on insert, never by a read-then-write check.
type Repository interface {
	// Create inserts a new user and returns it with its assigned id.
	// A duplicate username yields common.ErrorAlreadyExists.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// FindByUsername returns the user with the given username, or
	// common.ErrorNotFound.
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// FindByID returns the user with the given id, or common.ErrorNotFound.
	FindByID(ctx context.Context, id string) (*models.User, error)
}
