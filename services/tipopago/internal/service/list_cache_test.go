package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"carniceria-admin/services/tipopago/internal/models"
)

type mapStore struct {
	data map[string]string
	err  error
}

func newMapStore() *mapStore {
	return &mapStore{data: map[string]string{}}
}

func (s *mapStore) Get(_ context.Context, key string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	v, ok := s.data[key]
	if !ok {
		return "", errors.New("key not found")
	}
	return v, nil
}

func (s *mapStore) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	if s.err != nil {
		return s.err
	}
	switch v := value.(type) {
	case []byte:
		s.data[key] = string(v)
	case string:
		s.data[key] = v
	}
	return nil
}

func (s *mapStore) Delete(_ context.Context, key string) error {
	delete(s.data, key)
	return nil
}

var cachedList = []*models.TipoPago{
	{ID: 1, Descripcion: "Efectivo", Estado: 1},
	{ID: 2, Descripcion: "Tarjeta", Estado: 1},
}

func TestListCacheMissWhenEmpty(t *testing.T) {
	lc := NewListCache(newMapStore(), time.Minute, zap.NewNop())

	_, err := lc.Get(context.Background())
	assert.ErrorIs(t, err, errCacheMiss)
}

func TestListCacheFallsBackToStore(t *testing.T) {
	store := newMapStore()
	ctx := context.Background()

	writer := NewListCache(store, time.Minute, zap.NewNop())
	require.NoError(t, writer.Set(ctx, writer.Generation(), cachedList))

	// A second instance has a cold memory layer, as after a restart.
	reader := NewListCache(store, time.Minute, zap.NewNop())
	list, err := reader.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, cachedList, list)
	assert.Equal(t, 2, reader.GetStats()["memory_cache_size"])
}

func TestListCacheInvalidate(t *testing.T) {
	store := newMapStore()
	ctx := context.Background()
	lc := NewListCache(store, time.Minute, zap.NewNop())

	require.NoError(t, lc.Set(ctx, lc.Generation(), cachedList))
	require.NoError(t, lc.Invalidate(ctx))

	_, err := lc.Get(ctx)
	assert.ErrorIs(t, err, errCacheMiss)
	assert.Empty(t, store.data)
}

func TestListCacheStoreErrorStillFillsMemory(t *testing.T) {
	store := newMapStore()
	store.err = errors.New("redis unavailable")
	ctx := context.Background()
	lc := NewListCache(store, time.Minute, zap.NewNop())

	assert.Error(t, lc.Set(ctx, lc.Generation(), cachedList))

	list, err := lc.Get(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestListCacheSkipsListReadBeforeInvalidate(t *testing.T) {
	store := newMapStore()
	ctx := context.Background()
	lc := NewListCache(store, time.Minute, zap.NewNop())

	generation := lc.Generation()
	require.NoError(t, lc.Invalidate(ctx))
	require.NoError(t, lc.Set(ctx, generation, cachedList))

	_, err := lc.Get(ctx)
	assert.ErrorIs(t, err, errCacheMiss)
	assert.Empty(t, store.data)
}

// invalidatingStore runs an Invalidate between the Redis write and its
// generation re-check.
type invalidatingStore struct {
	*mapStore
	lc *ListCache
}

func (s *invalidatingStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if err := s.mapStore.Set(ctx, key, value, ttl); err != nil {
		return err
	}
	s.lc.mu.Lock()
	s.lc.generation++
	s.lc.mu.Unlock()
	return nil
}

func TestListCacheRemovesStoreWriteRacingInvalidate(t *testing.T) {
	store := &invalidatingStore{mapStore: newMapStore()}
	lc := NewListCache(store, time.Minute, zap.NewNop())
	store.lc = lc

	require.NoError(t, lc.Set(context.Background(), lc.Generation(), cachedList))
	assert.Empty(t, store.data)
}

func TestListCacheMemoryTTL(t *testing.T) {
	tests := []struct {
		name  string
		store KeyValueStore
		want  time.Duration
	}{
		{name: "Memory only", want: time.Hour},
		{name: "With redis", store: newMapStore(), want: memoryTTLWithStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := NewListCache(tt.store, time.Hour, zap.NewNop())
			assert.Equal(t, tt.want.String(), lc.GetStats()["memory_cache_ttl"])
		})
	}
}

func TestMemoryCacheExpiry(t *testing.T) {
	mc := NewMemoryCache(time.Millisecond)
	mc.Set(cachedList)
	time.Sleep(5 * time.Millisecond)

	assert.Nil(t, mc.Get())
}
