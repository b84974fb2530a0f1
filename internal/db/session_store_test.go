package db

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CoderUzumaki/PrepEdge-AI/internal/models"
)

// memCache is a minimal in-memory cache.Cache for store tests.
type memCache struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string]string)}
}

func (m *memCache) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key], nil
}

func (m *memCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch v := value.(type) {
	case string:
		m.data[key] = v
	case []byte:
		m.data[key] = string(v)
	}
	return nil
}

func (m *memCache) SetNX(_ context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	if _, exists := m.data[key]; exists {
		m.mu.Unlock()
		return false, nil
	}
	m.mu.Unlock()
	return true, m.Set(context.Background(), key, value, ttl)
}

func (m *memCache) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store := NewRedisSessionStore(newMemCache(), time.Minute)
	ctx := context.Background()

	session := &models.Session{InterviewID: "iv-1", UserID: "uid-1", NextIndex: 2, Total: 5}
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "iv-1")
	require.NoError(t, err)
	assert.Equal(t, session, got)
	assert.Equal(t, 3, got.Remaining())
}

func TestSessionStoreMissingSession(t *testing.T) {
	store := NewRedisSessionStore(newMemCache(), time.Minute)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSessionStoreDelete(t *testing.T) {
	store := NewRedisSessionStore(newMemCache(), time.Minute)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &models.Session{InterviewID: "iv-1", Total: 1}))
	require.NoError(t, store.Delete(ctx, "iv-1"))

	_, err := store.Get(ctx, "iv-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReserveAnswerIsFirstWriterWins(t *testing.T) {
	store := NewRedisSessionStore(newMemCache(), time.Minute)
	ctx := context.Background()

	ok, err := store.ReserveAnswer(ctx, "iv-1", 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.ReserveAnswer(ctx, "iv-1", 0)
	require.NoError(t, err)
	assert.False(t, ok)

	// A different index is an independent reservation.
	ok, err = store.ReserveAnswer(ctx, "iv-1", 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestReleaseAnswerAllowsRetry(t *testing.T) {
	store := NewRedisSessionStore(newMemCache(), time.Minute)
	ctx := context.Background()

	ok, err := store.ReserveAnswer(ctx, "iv-1", 0)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, store.ReleaseAnswer(ctx, "iv-1", 0))

	ok, err = store.ReserveAnswer(ctx, "iv-1", 0)
	require.NoError(t, err)
	assert.True(t, ok)
}
