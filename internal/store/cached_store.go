package store

import (
	"context"
	"time"

	"github.com/visionbridge/visionbridge/internal/cache"
	"github.com/visionbridge/visionbridge/internal/models"
)

const keyPrefix = "conv:"

// CachedStore layers a cache over a durable RecordStore. Reads serve the
// cached copy when present and fall back to disk, populating the cache on
// success. Writes update cache and disk together. There is no eviction.
type CachedStore struct {
	inner RecordStore
	cache cache.Cache
	ttl   time.Duration // 0 = keep forever
}

func NewCachedStore(inner RecordStore, c cache.Cache, ttl time.Duration) *CachedStore {
	return &CachedStore{inner: inner, cache: c, ttl: ttl}
}

func (s *CachedStore) Save(ctx context.Context, rec *models.ConversationRecord) error {
	if err := s.inner.Save(ctx, rec); err != nil {
		return err
	}
	// Cache write failure must not fail the durable save.
	_ = s.cache.SetJSON(ctx, keyPrefix+rec.ID, rec, s.ttl)
	return nil
}

func (s *CachedStore) Load(ctx context.Context, id string) (*models.ConversationRecord, error) {
	var rec models.ConversationRecord
	hit, err := s.cache.GetJSON(ctx, keyPrefix+id, &rec)
	if err == nil && hit {
		return &rec, nil
	}

	loaded, err := s.inner.Load(ctx, id)
	if err != nil {
		return nil, err
	}
	_ = s.cache.SetJSON(ctx, keyPrefix+id, loaded, s.ttl)
	return loaded, nil
}
