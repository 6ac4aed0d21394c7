package compare

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/novikdental/compare-platform/internal/catalog"
	"github.com/novikdental/compare-platform/internal/engine"
	"github.com/novikdental/compare-platform/pkg/logging"
)

func newTestRouter() http.Handler {
	h := NewHandler(engine.New(catalog.Default()), nil, nil, logging.Default())
	r := chi.NewRouter()
	r.Route("/compare", func(r chi.Router) {
		r.Get("/categories", h.ListCategories)
		r.Get("/comparators", h.ListComparators)
		r.Get("/comparators/{comparatorID}", h.GetComparator)
		r.Get("/methods/{methodID}", h.GetMethod)
		r.Post("/rank", h.Rank)
	})
	return r
}

func TestListCategories(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/compare/categories", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp CategoriesResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Categories) == 0 {
		t.Fatal("expected at least one category")
	}
	if resp.Categories[0].ID == "" {
		t.Error("category missing id")
	}
}

func TestListComparatorsFilter(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/compare/comparators?category=braki", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp ComparatorsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count == 0 {
		t.Fatal("expected comparators in category braki")
	}
	for _, c := range resp.Comparators {
		if c.CategoryID != "braki" {
			t.Errorf("comparator %s has category %s, want braki", c.ID, c.CategoryID)
		}
	}

	// Unknown category: empty list, not an error.
	req = httptest.NewRequest(http.MethodGet, "/compare/comparators?category=nope", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count != 0 {
		t.Errorf("expected empty list for unknown category, got %d", resp.Count)
	}
}

func TestGetComparator(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/compare/comparators/missing_tooth", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var detail ComparatorDetail
	if err := json.NewDecoder(w.Body).Decode(&detail); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if detail.Comparator.ID != "missing_tooth" {
		t.Errorf("got comparator %s", detail.Comparator.ID)
	}
	if len(detail.Methods) != 3 {
		t.Errorf("expected 3 methods, got %d", len(detail.Methods))
	}
	if len(detail.RowLabels) == 0 {
		t.Error("expected row labels")
	}
	if len(detail.Priorities) != 5 {
		t.Errorf("expected 5 priorities, got %d", len(detail.Priorities))
	}
}

func TestGetComparatorNotFound(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/compare/comparators/unknown", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestGetMethod(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/compare/methods/implant", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var m catalog.Method
	if err := json.NewDecoder(w.Body).Decode(&m); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if m.Label != "Implant" {
		t.Errorf("got label %q", m.Label)
	}

	req = httptest.NewRequest(http.MethodGet, "/compare/methods/unknown", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status %d, got %d", http.StatusNotFound, w.Code)
	}
}

func TestRank(t *testing.T) {
	router := newTestRouter()

	body, _ := json.Marshal(RankRequest{
		ComparatorID: "missing_tooth",
		PriorityID:   "durable",
		Answers:      map[string]string{"location": "back", "count": "one", "neighbors": "healthy"},
	})
	req := httptest.NewRequest(http.MethodPost, "/compare/rank", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var resp RankResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(resp.Results))
	}
	if resp.Results[0].MethodID != "implant" {
		t.Errorf("expected implant on top, got %s", resp.Results[0].MethodID)
	}
	if !strings.Contains(resp.Recommendation, "**Implant**") {
		t.Errorf("recommendation missing bold method label: %q", resp.Recommendation)
	}
}

func TestRankUnknownComparator(t *testing.T) {
	router := newTestRouter()

	body, _ := json.Marshal(RankRequest{ComparatorID: "nope", PriorityID: "durable"})
	req := httptest.NewRequest(http.MethodPost, "/compare/rank", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	// The empty-result contract must survive serialization as [], not null.
	if !strings.Contains(w.Body.String(), `"results":[]`) {
		t.Errorf("expected empty results array, got %s", w.Body.String())
	}
	var resp RankResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Recommendation != "" {
		t.Errorf("expected no recommendation, got %q", resp.Recommendation)
	}
}

func TestRankInvalidBody(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/compare/rank", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
