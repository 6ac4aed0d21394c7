package handoff

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/novikdental/compare-platform/internal/observability/metrics"
	"github.com/novikdental/compare-platform/pkg/logging"
)

// Handler handles HTTP requests for handoff leads
type Handler struct {
	repo    Repository
	metrics *metrics.CompareMetrics
	logger  *logging.Logger
}

// NewHandler creates a new handoff handler. Metrics may be nil.
func NewHandler(repo Repository, m *metrics.CompareMetrics, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:    repo,
		metrics: m,
		logger:  logger,
	}
}

// CreateLead handles POST /handoff/leads requests
func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req CreateLeadRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	lead, err := h.repo.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, ErrInvalidName) || errors.Is(err, ErrMissingContact) {
			h.metrics.ObserveHandoff("rejected")
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to create lead", "error", err)
		h.metrics.ObserveHandoff("error")
		http.Error(w, "failed to create lead", http.StatusInternalServerError)
		return
	}

	h.logger.Info("handoff lead created",
		"id", lead.ID, "comparator_id", lead.ComparatorID, "priority_id", lead.PriorityID)
	h.metrics.ObserveHandoff("created")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(lead)
}

// GetLead handles GET /handoff/leads/{leadID} requests
func (h *Handler) GetLead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "leadID")

	lead, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrLeadNotFound) {
			http.Error(w, "lead not found", http.StatusNotFound)
			return
		}
		h.logger.Error("failed to fetch lead", "error", err, "id", id)
		http.Error(w, "failed to fetch lead", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lead)
}
