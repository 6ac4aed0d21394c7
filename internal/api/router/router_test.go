package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/novikdental/compare-platform/internal/catalog"
	"github.com/novikdental/compare-platform/internal/compare"
	"github.com/novikdental/compare-platform/internal/engine"
	"github.com/novikdental/compare-platform/internal/handoff"
	"github.com/novikdental/compare-platform/pkg/logging"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := logging.Default()
	cat := catalog.Default()
	eng := engine.New(cat)

	cfg := &Config{
		Logger:         logger,
		CompareHandler: compare.NewHandler(eng, nil, nil, logger),
		HandoffHandler: handoff.NewHandler(handoff.NewInMemoryRepository(), nil, logger),
		CatalogVersion: cat.Version(),
	}
	return New(cfg)
}

func TestRouterHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode health response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", resp["status"])
	}
	if resp["catalog_version"] == "" {
		t.Error("expected catalog_version in health response")
	}
}

func TestRouterCompareRoutes(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/compare/comparators?category=braki", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	body, _ := json.Marshal(compare.RankRequest{
		ComparatorID: "missing_tooth",
		PriorityID:   "balanced",
		Answers:      map[string]string{"count": "one"},
	})
	req = httptest.NewRequest(http.MethodPost, "/compare/rank", bytes.NewReader(body))
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var rankResp compare.RankResponse
	if err := json.NewDecoder(rr.Body).Decode(&rankResp); err != nil {
		t.Fatalf("failed to decode rank response: %v", err)
	}
	if len(rankResp.Results) != 3 {
		t.Errorf("expected 3 results, got %d", len(rankResp.Results))
	}
}

func TestRouterHandoffRoutes(t *testing.T) {
	router := newTestRouter(t)

	body, _ := json.Marshal(handoff.CreateLeadRequest{
		Name:  "Jan Kowalski",
		Email: "jan@example.com",
	})
	req := httptest.NewRequest(http.MethodPost, "/handoff/leads", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, rr.Code)
	}

	var lead handoff.Lead
	if err := json.NewDecoder(rr.Body).Decode(&lead); err != nil {
		t.Fatalf("failed to decode lead: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/handoff/leads/"+lead.ID, nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestRouterHandoffRateLimit(t *testing.T) {
	logger := logging.Default()
	cat := catalog.Default()
	cfg := &Config{
		Logger:         logger,
		CompareHandler: compare.NewHandler(engine.New(cat), nil, nil, logger),
		HandoffHandler: handoff.NewHandler(handoff.NewInMemoryRepository(), nil, logger),
		CatalogVersion: cat.Version(),
		HandoffRate:    1,
		HandoffBurst:   1,
	}
	router := New(cfg)

	body, _ := json.Marshal(handoff.CreateLeadRequest{Name: "Jan", Email: "jan@example.com"})

	req := httptest.NewRequest(http.MethodPost, "/handoff/leads", bytes.NewReader(body))
	req.RemoteAddr = "10.0.0.1:1234"
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, rr.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/handoff/leads", bytes.NewReader(body))
	req.RemoteAddr = "10.0.0.1:1234"
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status %d, got %d", http.StatusTooManyRequests, rr.Code)
	}
}
