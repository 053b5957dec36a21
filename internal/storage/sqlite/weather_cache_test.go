package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *WeatherCache {
	t.Helper()
	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cache := NewWeatherCache(db)
	require.NoError(t, cache.Init(context.Background()))
	return cache
}

func TestWeatherCache_Roundtrip(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	_, ok, err := cache.Get(ctx, "2025-06-14|47.6|-122.4")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, cache.Put(ctx, "2025-06-14|47.6|-122.4", "61°F · Clear · Wind SW 6mph"))

	summary, ok, err := cache.Get(ctx, "2025-06-14|47.6|-122.4")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "61°F · Clear · Wind SW 6mph", summary)
}

func TestWeatherCache_PutOverwrites(t *testing.T) {
	ctx := context.Background()
	cache := newTestCache(t)

	require.NoError(t, cache.Put(ctx, "k", "first"))
	require.NoError(t, cache.Put(ctx, "k", "second"))

	summary, ok, err := cache.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "second", summary)
}

func TestOpen_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.db")
	db, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cache := NewWeatherCache(db)
	require.NoError(t, cache.Init(context.Background()))
	require.NoError(t, cache.Put(context.Background(), "k", "v"))
}
