// Package compare exposes the treatment comparison catalog and the ranking
// engine over JSON.
package compare

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/novikdental/compare-platform/internal/catalog"
	"github.com/novikdental/compare-platform/internal/engine"
	"github.com/novikdental/compare-platform/internal/observability/metrics"
	"github.com/novikdental/compare-platform/pkg/logging"
)

// Ranker computes a ranking. Satisfied by engine.CachedRanker; the engine
// itself is adapted through directRanker for cacheless deployments.
type Ranker interface {
	Rank(ctx context.Context, comparatorID, priorityID string, answers map[string]string) []engine.ScoredMethod
}

// directRanker runs the engine without a memoization layer.
type directRanker struct {
	engine *engine.Engine
}

func (d directRanker) Rank(_ context.Context, comparatorID, priorityID string, answers map[string]string) []engine.ScoredMethod {
	return d.engine.Rank(comparatorID, priorityID, answers)
}

// Handler handles HTTP requests for the comparison API.
type Handler struct {
	catalog *catalog.Catalog
	engine  *engine.Engine
	ranker  Ranker
	metrics *metrics.CompareMetrics
	logger  *logging.Logger
}

// NewHandler creates a comparison handler. Pass a nil ranker to rank
// directly without caching; metrics may be nil.
func NewHandler(e *engine.Engine, ranker Ranker, m *metrics.CompareMetrics, logger *logging.Logger) *Handler {
	if e == nil {
		panic("compare: engine required")
	}
	if ranker == nil {
		ranker = directRanker{engine: e}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		catalog: e.Catalog(),
		engine:  e,
		ranker:  ranker,
		metrics: m,
		logger:  logger,
	}
}

// ListCategories handles GET /compare/categories.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CategoriesResponse{Categories: h.catalog.Categories()})
}

// ListComparators handles GET /compare/comparators. An optional ?category=
// filter narrows the list; an unknown category yields an empty list, not
// an error.
func (h *Handler) ListComparators(w http.ResponseWriter, r *http.Request) {
	comparators := h.catalog.ListComparators(r.URL.Query().Get("category"))
	summaries := make([]ComparatorSummary, 0, len(comparators))
	for _, c := range comparators {
		summaries = append(summaries, summarize(c))
	}
	writeJSON(w, http.StatusOK, ComparatorsResponse{Comparators: summaries, Count: len(summaries)})
}

// GetComparator handles GET /compare/comparators/{comparatorID}.
func (h *Handler) GetComparator(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "comparatorID")
	cmp, ok := h.catalog.Comparator(id)
	if !ok {
		http.Error(w, "comparator not found", http.StatusNotFound)
		return
	}

	detail := ComparatorDetail{
		Comparator: cmp,
		Methods:    make([]catalog.Method, 0, len(cmp.MethodIDs)),
		RowLabels:  h.catalog.TableRowLabels(),
		Priorities: h.catalog.Priorities(),
	}
	for _, mid := range cmp.MethodIDs {
		if m, ok := h.catalog.Method(mid); ok {
			detail.Methods = append(detail.Methods, m)
		}
	}
	writeJSON(w, http.StatusOK, detail)
}

// GetMethod handles GET /compare/methods/{methodID}.
func (h *Handler) GetMethod(w http.ResponseWriter, r *http.Request) {
	m, ok := h.catalog.Method(chi.URLParam(r, "methodID"))
	if !ok {
		http.Error(w, "method not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Rank handles POST /compare/rank. Unknown comparator or priority IDs are
// not an error: the response simply carries no results, mirroring the
// engine's soft-failure contract.
func (h *Handler) Rank(w http.ResponseWriter, r *http.Request) {
	var req RankRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode rank request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	start := time.Now()
	results := h.ranker.Rank(r.Context(), req.ComparatorID, req.PriorityID, req.Answers)
	h.metrics.ObserveRankLatency(req.ComparatorID, time.Since(start).Seconds())

	resp := RankResponse{
		ComparatorID: req.ComparatorID,
		PriorityID:   req.PriorityID,
		Results:      results,
	}
	if len(results) > 0 {
		resp.Recommendation = h.engine.RecommendationText(req.PriorityID, results[0])
		h.metrics.ObserveRank(req.ComparatorID, req.PriorityID, "ok")
	} else {
		resp.Results = []engine.ScoredMethod{}
		h.metrics.ObserveRank(req.ComparatorID, req.PriorityID, "empty")
		h.logger.Info("rank request resolved to nothing",
			"comparator_id", req.ComparatorID, "priority_id", req.PriorityID)
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
