package drafts

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory Repo used when no database is configured and in
// tests. Ids are monotonic, mirroring the BIGSERIAL column.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]Draft
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: make(map[int64]Draft)}
}

// Create stores a new draft and returns its id.
func (r *MemoryRepo) Create(ctx context.Context, draft Draft) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	draft.ID = r.nextID
	draft.Payload = append([]byte(nil), draft.Payload...)
	r.items[draft.ID] = draft
	return draft.ID, nil
}

// Get fetches a draft by id.
func (r *MemoryRepo) Get(ctx context.Context, id int64) (Draft, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	draft, ok := r.items[id]
	if !ok {
		return Draft{}, ErrNotFound
	}
	draft.Payload = append([]byte(nil), draft.Payload...)
	return draft, nil
}

// ListSummaries lists all drafts newest-first by update time.
func (r *MemoryRepo) ListSummaries(ctx context.Context) ([]Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Summary, 0, len(r.items))
	for _, draft := range r.items {
		out = append(out, Summary{
			ID:        draft.ID,
			Title:     draft.Title,
			Template:  draft.Template,
			CreatedAt: draft.CreatedAt,
			UpdatedAt: draft.UpdatedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// Update overwrites all mutable fields; a missing id yields ErrNotFound.
func (r *MemoryRepo) Update(ctx context.Context, draft Draft) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[draft.ID]
	if !ok {
		return ErrNotFound
	}
	existing.Title = draft.Title
	existing.Payload = append([]byte(nil), draft.Payload...)
	existing.Template = draft.Template
	existing.UpdatedAt = draft.UpdatedAt
	r.items[draft.ID] = existing
	return nil
}

// Delete removes a draft; deleting a missing id succeeds.
func (r *MemoryRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, id)
	return nil
}
