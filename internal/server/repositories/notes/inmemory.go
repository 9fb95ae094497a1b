package notes

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"noteshare/internal/common"
	"noteshare/internal/server/models"
)

// SharedLookup answers "which notes is this user a collaborator on". The
// in-memory collaboration store provides it so ListSharedWith works
// without a join.
type SharedLookup interface {
	NoteIDsForUser(userID string) []string
}

// InMemoryRepository is the ephemeral backend used by tests.
type InMemoryRepository struct {
	mu     sync.RWMutex
	byID   map[string]*models.Note
	shared SharedLookup
}

func NewInMemoryRepository(shared SharedLookup) *InMemoryRepository {
	return &InMemoryRepository{
		byID:   make(map[string]*models.Note),
		shared: shared,
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneNote(note)
	stored.ID = uuid.NewString()
	r.byID[stored.ID] = stored

	return cloneNote(stored), nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id string) (*models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	note, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return cloneNote(note), nil
}

func (r *InMemoryRepository) Update(ctx context.Context, note *models.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[note.ID]
	if !ok {
		return common.ErrorNotFound
	}
	stored.Title = note.Title
	stored.Body = note.Body
	stored.Tags = append([]string(nil), note.Tags...)
	stored.UpdatedAt = note.UpdatedAt
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*models.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.Note
	for _, note := range r.byID {
		if note.OwnerID == ownerID {
			result = append(result, cloneNote(note))
		}
	}
	sortByUpdated(result)
	return result, nil
}

func (r *InMemoryRepository) ListSharedWith(ctx context.Context, userID string) ([]*models.Note, error) {
	ids := r.shared.NoteIDsForUser(userID)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.Note
	for _, id := range ids {
		if note, ok := r.byID[id]; ok {
			result = append(result, cloneNote(note))
		}
	}
	sortByUpdated(result)
	return result, nil
}

func cloneNote(note *models.Note) *models.Note {
	clone := *note
	clone.Tags = append([]string(nil), note.Tags...)
	return &clone
}

func sortByUpdated(ns []*models.Note) {
	sort.Slice(ns, func(i, j int) bool {
		return ns[i].UpdatedAt.After(ns[j].UpdatedAt)
	})
}
