package collaborations

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"noteshare/internal/common"
	"noteshare/internal/server/models"
)

// InMemoryRepository is the ephemeral backend used by tests. Pair
// uniqueness is checked under the same lock as the insert.
type InMemoryRepository struct {
	mu     sync.RWMutex
	byPair map[pair]*models.Collaboration
}

type pair struct {
	noteID string
	userID string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byPair: make(map[pair]*models.Collaboration)}
}

func (r *InMemoryRepository) Create(ctx context.Context, grant *models.Collaboration) (*models.Collaboration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pair{noteID: grant.NoteID, userID: grant.UserID}
	if _, ok := r.byPair[key]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *grant
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now().UTC()
	r.byPair[key] = &stored

	result := stored
	return &result, nil
}

func (r *InMemoryRepository) Exists(ctx context.Context, noteID, userID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byPair[pair{noteID: noteID, userID: userID}]
	return ok, nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, noteID, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := pair{noteID: noteID, userID: userID}
	if _, ok := r.byPair[key]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byPair, key)
	return nil
}

func (r *InMemoryRepository) DeleteByNote(ctx context.Context, noteID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key := range r.byPair {
		if key.noteID == noteID {
			delete(r.byPair, key)
		}
	}
	return nil
}

func (r *InMemoryRepository) ListByNote(ctx context.Context, noteID string) ([]*models.Collaboration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.Collaboration
	for key, grant := range r.byPair {
		if key.noteID == noteID {
			clone := *grant
			result = append(result, &clone)
		}
	}
	return result, nil
}

// NoteIDsForUser satisfies the note store's SharedLookup.
func (r *InMemoryRepository) NoteIDsForUser(userID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for key := range r.byPair {
		if key.userID == userID {
			ids = append(ids, key.noteID)
		}
	}
	return ids
}
