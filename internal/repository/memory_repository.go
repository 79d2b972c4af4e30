package repository

import (
	"context"
	"sync"

	"ticketvault/internal/domain"
)

type memoryRepo struct {
	mu       sync.RWMutex
	listings []domain.EventListing
}

// NewMemoryRepository keeps listings in process memory. Every read and write
// copies, so callers never share slices with the repository.
func NewMemoryRepository() ListingRepository {
	return &memoryRepo{}
}

func (r *memoryRepo) Load(ctx context.Context) ([]domain.EventListing, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAll(r.listings), nil
}

func (r *memoryRepo) Save(ctx context.Context, listings []domain.EventListing) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listings = cloneAll(listings)
	return nil
}

func cloneAll(in []domain.EventListing) []domain.EventListing {
	out := make([]domain.EventListing, 0, len(in))
	for _, l := range in {
		out = append(out, l.Clone())
	}
	return out
}
