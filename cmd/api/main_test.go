package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/novikdental/compare-platform/internal/catalog"
	appconfig "github.com/novikdental/compare-platform/internal/config"
	"github.com/novikdental/compare-platform/internal/engine"
	"github.com/novikdental/compare-platform/pkg/logging"
)

func TestSetupMetricsExposesMetrics(t *testing.T) {
	handler, compareMetrics := setupMetrics()
	if handler == nil || compareMetrics == nil {
		t.Fatalf("expected non-nil handler and metrics")
	}

	compareMetrics.ObserveRank("missing_tooth", "durable", "ok")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "compare_engine_rank_total") {
		t.Fatalf("expected rank counter to be exported")
	}
}

func TestSetupRankerDisabled(t *testing.T) {
	logger := logging.New("error")
	eng := engine.New(catalog.Default())

	cfg := &appconfig.Config{RankCacheEnabled: false, RedisAddr: "localhost:6379"}
	if r := setupRanker(context.Background(), cfg, eng, logger); r != nil {
		t.Fatalf("expected nil ranker when caching is disabled")
	}

	cfg = &appconfig.Config{RankCacheEnabled: true, RedisAddr: ""}
	if r := setupRanker(context.Background(), cfg, eng, logger); r != nil {
		t.Fatalf("expected nil ranker without a redis address")
	}
}

func TestSetupRankerUnreachableRedis(t *testing.T) {
	logger := logging.New("error")
	eng := engine.New(catalog.Default())

	cfg := &appconfig.Config{RankCacheEnabled: true, RedisAddr: "127.0.0.1:1"}
	if r := setupRanker(context.Background(), cfg, eng, logger); r != nil {
		t.Fatalf("expected nil ranker when redis does not answer")
	}
}

func TestSetupRankerConnects(t *testing.T) {
	mr := miniredis.RunT(t)
	logger := logging.New("error")
	eng := engine.New(catalog.Default())

	cfg := &appconfig.Config{RankCacheEnabled: true, RedisAddr: mr.Addr()}
	ranker := setupRanker(context.Background(), cfg, eng, logger)
	if ranker == nil {
		t.Fatalf("expected cached ranker with a live redis")
	}

	got := ranker.Rank(context.Background(), "missing_tooth", "durable", nil)
	if len(got) == 0 {
		t.Fatalf("expected ranking results through the cached ranker")
	}
}
