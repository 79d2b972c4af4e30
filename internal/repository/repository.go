package repository

import (
	"context"

	"ticketvault/internal/domain"
)

const (
	DatabaseName     = "ticketvault"
	CollectionEvents = "events"
	StorageKey       = "ticketVaultEvents"
)

// ListingRepository persists the whole listing collection as one snapshot.
// Load returns the collection in any order; an empty medium yields an empty
// result. Save replaces the stored collection with listings.
type ListingRepository interface {
	Load(ctx context.Context) ([]domain.EventListing, error)
	Save(ctx context.Context, listings []domain.EventListing) error
}

// ListingGetter is implemented by backends that can fetch a single listing
// without loading the collection. A missing id yields domain.ErrNotFound.
type ListingGetter interface {
	Get(ctx context.Context, id int64) (*domain.EventListing, error)
}
