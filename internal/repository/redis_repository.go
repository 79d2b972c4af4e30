package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"ticketvault/internal/domain"
)

type redisRepo struct {
	client redis.UniversalClient
	key    string
}

// NewRedisRepository stores the collection as a single JSON array under key.
func NewRedisRepository(client redis.UniversalClient, key string) ListingRepository {
	if key == "" {
		key = StorageKey
	}
	return &redisRepo{client: client, key: key}
}

func (r *redisRepo) Load(ctx context.Context) ([]domain.EventListing, error) {
	b, err := r.client.Get(ctx, r.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.EventListing{}, nil
	}
	if err != nil {
		return nil, err
	}
	var listings []domain.EventListing
	if err := json.Unmarshal(b, &listings); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.key, err)
	}
	if listings == nil {
		listings = []domain.EventListing{}
	}
	return listings, nil
}

func (r *redisRepo) Save(ctx context.Context, listings []domain.EventListing) error {
	if listings == nil {
		listings = []domain.EventListing{}
	}
	b, err := json.Marshal(listings)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key, err)
	}
	return r.client.Set(ctx, r.key, b, 0).Err()
}
