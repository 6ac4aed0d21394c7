package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/novikdental/compare-platform/pkg/logging"
)

const rankingTTL = 12 * time.Hour

// CachedRanker memoizes ranking results in Redis. Rankings are pure
// functions of (catalog, comparator, priority, answers), so the key embeds
// the catalog version: reloading the process with changed data naturally
// leaves stale entries behind to expire. Redis trouble degrades to a plain
// computation, never to an error.
type CachedRanker struct {
	engine *Engine
	redis  *redis.Client
	tracer trace.Tracer
	log    *logging.Logger
}

// NewCachedRanker wraps an engine with a Redis memoization layer.
func NewCachedRanker(e *Engine, rdb *redis.Client, log *logging.Logger) *CachedRanker {
	if e == nil {
		panic("engine: engine cannot be nil")
	}
	if rdb == nil {
		panic("engine: redis client cannot be nil")
	}
	if log == nil {
		log = logging.Default()
	}
	return &CachedRanker{
		engine: e,
		redis:  rdb,
		tracer: otel.Tracer("compare.internal.engine.cache"),
		log:    log,
	}
}

// Rank returns a cached ranking when one exists, computing and storing it
// otherwise.
func (c *CachedRanker) Rank(ctx context.Context, comparatorID, priorityID string, answers map[string]string) []ScoredMethod {
	ctx, span := c.tracer.Start(ctx, "engine.rank_cached")
	defer span.End()

	key := rankingKey(c.engine.catalog.Version(), comparatorID, priorityID, answers)
	if data, err := c.redis.Get(ctx, key).Bytes(); err == nil {
		var cached []ScoredMethod
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached
		}
		c.log.Warn("discarding undecodable ranking cache entry", "key", key)
	} else if err != redis.Nil {
		span.RecordError(err)
		c.log.Warn("ranking cache read failed", "error", err)
	}

	result := c.engine.Rank(comparatorID, priorityID, answers)

	data, err := json.Marshal(result)
	if err != nil {
		span.RecordError(err)
		return result
	}
	if err := c.redis.Set(ctx, key, data, rankingTTL).Err(); err != nil {
		span.RecordError(err)
		c.log.Warn("ranking cache write failed", "error", err)
	}
	return result
}

// rankingKey builds a deterministic cache key. Answer pairs are sorted so
// that map iteration order cannot split identical requests across entries.
func rankingKey(version, comparatorID, priorityID string, answers map[string]string) string {
	pairs := make([]string, 0, len(answers))
	for q, a := range answers {
		pairs = append(pairs, q+"="+a)
	}
	sort.Strings(pairs)
	return fmt.Sprintf("ranking:%s:%s:%s:%s", version, comparatorID, priorityID, strings.Join(pairs, ","))
}
