// services/tipopago/internal/service/list_cache.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"carniceria-admin/services/tipopago/internal/models"
)

const listCacheKey = "tipopago:list"

// memoryTTLWithStore bounds how long one replica's memory layer can lag a
// write made through another replica.
const memoryTTLWithStore = 5 * time.Second

var errCacheMiss = errors.New("cache miss")

// KeyValueStore is the slice of the shared Redis client the cache needs.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
}

// ListCache keeps the full catalog in two layers: process memory, then Redis.
// The catalog is read on every admin screen mount and written rarely, so the
// whole list is cached under one key and dropped on every write.
//
// Every Invalidate bumps a generation. A list read from the database before
// an invalidation carries the old generation and is never cached.
type ListCache struct {
	store    KeyValueStore
	logger   *zap.Logger
	memCache *MemoryCache
	ttl      time.Duration

	mu         sync.Mutex
	generation uint64
}

// MemoryCache holds a single catalog snapshot.
type MemoryCache struct {
	mu     sync.RWMutex
	entry  *CacheEntry
	maxAge time.Duration
}

// CacheEntry represents a cached list with timestamp
type CacheEntry struct {
	List     []*models.TipoPago
	CachedAt time.Time
}

// NewListCache creates a list cache. A nil store keeps the cache memory-only;
// with a store the memory layer expires after at most memoryTTLWithStore.
func NewListCache(store KeyValueStore, ttl time.Duration, logger *zap.Logger) *ListCache {
	memTTL := ttl
	if store != nil && memTTL > memoryTTLWithStore {
		memTTL = memoryTTLWithStore
	}
	return &ListCache{
		store:    store,
		logger:   logger,
		memCache: NewMemoryCache(memTTL),
		ttl:      ttl,
	}
}

// Generation returns the token to pass to Set for a list about to be read.
func (lc *ListCache) Generation() uint64 {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.generation
}

func (lc *ListCache) current(generation uint64) bool {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.generation == generation
}

func NewMemoryCache(maxAge time.Duration) *MemoryCache {
	return &MemoryCache{maxAge: maxAge}
}

// Get returns the cached catalog (memory first, then Redis).
func (lc *ListCache) Get(ctx context.Context) ([]*models.TipoPago, error) {
	if list := lc.memCache.Get(); list != nil {
		lc.logger.Debug("cache hit (memory)", zap.Int("size", len(list)))
		return list, nil
	}

	if lc.store == nil {
		return nil, errCacheMiss
	}

	data, err := lc.store.Get(ctx, listCacheKey)
	if err == nil {
		var list []*models.TipoPago
		if err := json.Unmarshal([]byte(data), &list); err == nil {
			lc.logger.Debug("cache hit (redis)", zap.Int("size", len(list)))
			lc.memCache.Set(list)
			return list, nil
		}
	}

	lc.logger.Debug("cache miss")
	return nil, errCacheMiss
}

// Set stores the catalog in both layers, unless the cache was invalidated
// after generation was taken.
func (lc *ListCache) Set(ctx context.Context, generation uint64, list []*models.TipoPago) error {
	lc.mu.Lock()
	if lc.generation != generation {
		lc.mu.Unlock()
		lc.logger.Debug("skipping stale list", zap.Uint64("generation", generation))
		return nil
	}
	lc.memCache.Set(list)
	lc.mu.Unlock()

	if lc.store == nil {
		return nil
	}

	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal list: %w", err)
	}

	if err := lc.store.Set(ctx, listCacheKey, data, lc.ttl); err != nil {
		lc.logger.Error("failed to cache list in redis",
			zap.Error(err),
			zap.String("key", listCacheKey))
		return err
	}

	// An Invalidate may have deleted the key before the write above landed.
	if !lc.current(generation) {
		return lc.store.Delete(ctx, listCacheKey)
	}

	return nil
}

// Invalidate drops the cached catalog from both layers.
func (lc *ListCache) Invalidate(ctx context.Context) error {
	lc.mu.Lock()
	lc.generation++
	lc.memCache.Clear()
	lc.mu.Unlock()

	if lc.store == nil {
		return nil
	}
	return lc.store.Delete(ctx, listCacheKey)
}

// GetStats returns cache statistics
func (lc *ListCache) GetStats() map[string]interface{} {
	generation := lc.Generation()

	lc.memCache.mu.RLock()
	defer lc.memCache.mu.RUnlock()

	size := 0
	if lc.memCache.entry != nil {
		size = len(lc.memCache.entry.List)
	}

	return map[string]interface{}{
		"memory_cache_size": size,
		"memory_cache_ttl":  lc.memCache.maxAge.String(),
		"redis_enabled":     lc.store != nil,
		"generation":        generation,
	}
}

// MemoryCache methods

// Get returns nil when empty or expired.
func (mc *MemoryCache) Get() []*models.TipoPago {
	mc.mu.RLock()
	defer mc.mu.RUnlock()

	if mc.entry == nil || time.Since(mc.entry.CachedAt) > mc.maxAge {
		return nil
	}

	return mc.entry.List
}

func (mc *MemoryCache) Set(list []*models.TipoPago) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.entry = &CacheEntry{
		List:     list,
		CachedAt: time.Now(),
	}
}

func (mc *MemoryCache) Clear() {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.entry = nil
}
