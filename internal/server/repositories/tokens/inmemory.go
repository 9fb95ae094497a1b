package tokens

import (
	"context"
	"sync"

	"noteshare/internal/common"
)

// InMemoryRepository is the ephemeral ledger used by tests: a mutex-guarded
// set keyed by token string.
type InMemoryRepository struct {
	mu      sync.RWMutex
	byToken map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{byToken: make(map[string]string)}
}

func (r *InMemoryRepository) Add(ctx context.Context, userID, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byToken[token] = userID
	return nil
}

func (r *InMemoryRepository) Remove(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byToken[token]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byToken, token)
	return nil
}

func (r *InMemoryRepository) Contains(ctx context.Context, token string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byToken[token]
	return ok, nil
}
