package engine

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/novikdental/compare-platform/internal/catalog"
	"github.com/novikdental/compare-platform/pkg/logging"
)

func TestCachedRankerStoresAndReplays(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	e := New(catalog.Default())
	ranker := NewCachedRanker(e, rdb, logging.Default())

	answers := map[string]string{"location": "back", "count": "one", "neighbors": "healthy"}
	ctx := context.Background()

	first := ranker.Rank(ctx, "missing_tooth", "durable", answers)
	require.NotEmpty(t, first)
	require.Equal(t, 1, len(mr.Keys()))

	second := ranker.Rank(ctx, "missing_tooth", "durable", answers)
	assert.Equal(t, first, second)

	// Same answers in a different map must hit the same key.
	reordered := map[string]string{"neighbors": "healthy", "count": "one", "location": "back"}
	third := ranker.Rank(ctx, "missing_tooth", "durable", reordered)
	assert.Equal(t, first, third)
	assert.Equal(t, 1, len(mr.Keys()))
}

func TestCachedRankerIgnoresCorruptEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	e := New(catalog.Default())
	ranker := NewCachedRanker(e, rdb, logging.Default())
	ctx := context.Background()

	key := rankingKey(e.Catalog().Version(), "missing_tooth", "durable", nil)
	require.NoError(t, rdb.Set(ctx, key, "not-json", 0).Err())

	got := ranker.Rank(ctx, "missing_tooth", "durable", nil)
	assert.Equal(t, e.Rank("missing_tooth", "durable", nil), got)
}

func TestCachedRankerSurvivesRedisOutage(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	e := New(catalog.Default())
	ranker := NewCachedRanker(e, rdb, logging.Default())

	mr.Close()

	got := ranker.Rank(context.Background(), "missing_tooth", "balanced", nil)
	assert.Equal(t, e.Rank("missing_tooth", "balanced", nil), got)
}
