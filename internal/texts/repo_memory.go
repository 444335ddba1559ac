package texts

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]TextVersion // projectId -> versions in save order
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]TextVersion),
	}
}

// Create appends a version to its project.
func (r *MemoryRepo) Create(ctx context.Context, v TextVersion) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[v.ProjectID] = append(r.data[v.ProjectID], v)
	return nil
}

// Latest returns the most recently saved version of a project.
func (r *MemoryRepo) Latest(ctx context.Context, projectID string) (TextVersion, error) {
	if err := ctx.Err(); err != nil {
		return TextVersion{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	versions := r.data[projectID]
	if len(versions) == 0 {
		return TextVersion{}, ErrNotFound
	}
	return versions[len(versions)-1], nil
}

// GetByID returns a version of a project by id.
func (r *MemoryRepo) GetByID(ctx context.Context, projectID, versionID string) (TextVersion, error) {
	if err := ctx.Err(); err != nil {
		return TextVersion{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, v := range r.data[projectID] {
		if v.ID == versionID {
			return v, nil
		}
	}
	return TextVersion{}, ErrNotFound
}

// ListByProject returns versions newest first, honoring limit/offset. A zero
// limit returns everything after offset.
func (r *MemoryRepo) ListByProject(ctx context.Context, projectID string, limit, offset int) ([]TextVersion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	versions := r.data[projectID]
	if offset >= len(versions) {
		return []TextVersion{}, nil
	}

	out := make([]TextVersion, 0, len(versions)-offset)
	for i := len(versions) - 1 - offset; i >= 0; i-- {
		out = append(out, versions[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
