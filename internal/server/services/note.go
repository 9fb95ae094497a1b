package services

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"noteshare/internal/common"
	"noteshare/internal/dbx"
	"noteshare/internal/server/access"
	"noteshare/internal/server/models"
	"noteshare/internal/server/repositories/repomanager"
)

// NoteService performs note CRUD. Every operation on an existing note
// goes through the guard first; the stores are never touched on a denied
// request.
type NoteService struct {
	db      *sql.DB
	manager repomanager.RepositoryManager
	guard   *access.Guard
}

func NewNoteService(db *sql.DB, m repomanager.RepositoryManager, guard *access.Guard) *NoteService {
	return &NoteService{db: db, manager: m, guard: guard}
}

// Create inserts a new note with the caller as owner.
func (s *NoteService) Create(ctx context.Context, ownerID, title, body string, tags []string) (*models.Note, error) {
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required: %w", common.ErrorPrecondition)
	}

	now := time.Now().UTC()
	note := &models.Note{
		OwnerID:   ownerID,
		Title:     title,
		Body:      body,
		Tags:      normalizeTags(tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	note, err := s.manager.Notes(s.db).Create(ctx, note)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return note, nil
}

// Get returns a note the caller may read (owner or collaborator).
func (s *NoteService) Get(ctx context.Context, userID, noteID string) (*models.Note, error) {
	return s.guard.Authorize(ctx, userID, noteID, access.LevelRead)
}

// Update rewrites a note's content. Allowed for the owner or a
// collaborator; refreshes UpdatedAt.
func (s *NoteService) Update(ctx context.Context, userID, noteID, title, body string, tags []string) (*models.Note, error) {
	note, err := s.guard.Authorize(ctx, userID, noteID, access.LevelUpdate)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("title is required: %w", common.ErrorPrecondition)
	}

	note.Title = title
	note.Body = body
	note.Tags = normalizeTags(tags)
	note.UpdatedAt = time.Now().UTC()

	if err := s.manager.Notes(s.db).Update(ctx, note); err != nil {
		return nil, common.ErrorInternal
	}
	return note, nil
}

// Delete removes a note and all its sharing grants. Owner only. The two
// deletions run in one transaction so a note never outlives its grants or
// vice versa.
func (s *NoteService) Delete(ctx context.Context, userID, noteID string) error {
	if _, err := s.guard.Authorize(ctx, userID, noteID, access.LevelDelete); err != nil {
		return err
	}

	err := s.manager.InTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.manager.Collaborations(tx).DeleteByNote(ctx, noteID); err != nil {
			return err
		}
		return s.manager.Notes(tx).Delete(ctx, noteID)
	})
	if err != nil {
		return common.ErrorInternal
	}
	return nil
}

// List returns the caller's notes: owned first, then shared with them.
func (s *NoteService) List(ctx context.Context, userID string) ([]*models.Note, error) {
	owned, err := s.manager.Notes(s.db).ListByOwner(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	shared, err := s.manager.Notes(s.db).ListSharedWith(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return append(owned, shared...), nil
}

// normalizeTags keeps tags a set: trimmed, no empties, no duplicates,
// sorted for stable output.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		result = append(result, tag)
	}
	sort.Strings(result)
	return result
}
