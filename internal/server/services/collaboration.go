package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"noteshare/internal/common"
	"noteshare/internal/server/access"
	"noteshare/internal/server/models"
	"noteshare/internal/server/repositories/repomanager"
)

// CollaborationService manages sharing grants. Every operation requires
// the caller to be the note's owner; the owner themselves can never be a
// collaborator.
type CollaborationService struct {
	db      *sql.DB
	manager repomanager.RepositoryManager
	guard   *access.Guard
}

func NewCollaborationService(db *sql.DB, m repomanager.RepositoryManager, guard *access.Guard) *CollaborationService {
	return &CollaborationService{db: db, manager: m, guard: guard}
}

// Add grants userID read/update access to the note. Caller must own the
// note. Granting to the owner fails with common.ErrorPrecondition (the
// owner already holds full rights); an unknown user fails with
// common.ErrorNotFound; a duplicate grant fails with
// common.ErrorPrecondition via the store's uniqueness constraint.
func (s *CollaborationService) Add(ctx context.Context, callerID, noteID, userID string) (*models.Collaboration, error) {
	note, err := s.guard.Authorize(ctx, callerID, noteID, access.LevelDelete)
	if err != nil {
		return nil, err
	}

	if userID == note.OwnerID {
		return nil, fmt.Errorf("owner cannot be a collaborator: %w", common.ErrorPrecondition)
	}

	if _, err := s.manager.Users(s.db).FindByID(ctx, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	grant, err := s.manager.Collaborations(s.db).Create(ctx, &models.Collaboration{
		NoteID: noteID,
		UserID: userID,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, fmt.Errorf("user is already a collaborator: %w", common.ErrorPrecondition)
		}
		return nil, common.ErrorInternal
	}
	return grant, nil
}

// Remove revokes userID's grant on the note. Caller must own the note.
// Revoking a grant that does not exist fails with common.ErrorNotFound.
func (s *CollaborationService) Remove(ctx context.Context, callerID, noteID, userID string) error {
	if _, err := s.guard.Authorize(ctx, callerID, noteID, access.LevelDelete); err != nil {
		return err
	}

	err := s.manager.Collaborations(s.db).Delete(ctx, noteID, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	return nil
}

// List returns the grants on a note. Caller must own the note.
func (s *CollaborationService) List(ctx context.Context, callerID, noteID string) ([]*models.Collaboration, error) {
	if _, err := s.guard.Authorize(ctx, callerID, noteID, access.LevelDelete); err != nil {
		return nil, err
	}

	grants, err := s.manager.Collaborations(s.db).ListByNote(ctx, noteID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return grants, nil
}
