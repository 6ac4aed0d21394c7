// Package router wires the HTTP surface of the comparison platform.
package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/novikdental/compare-platform/internal/compare"
	"github.com/novikdental/compare-platform/internal/handoff"
	httpmiddleware "github.com/novikdental/compare-platform/internal/http/middleware"
	"github.com/novikdental/compare-platform/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger         *logging.Logger
	CompareHandler *compare.Handler
	HandoffHandler *handoff.Handler
	MetricsHandler http.Handler

	CORSAllowedOrigins []string

	// CatalogVersion is echoed by /health so deploys can be verified
	// against the data set they shipped.
	CatalogVersion string

	// HandoffRate limits lead submissions per IP (requests/sec); zero
	// disables limiting. The read-only comparison endpoints are never limited.
	HandoffRate  float64
	HandoffBurst int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthHandler(cfg.CatalogVersion))
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	if cfg.CompareHandler != nil {
		r.Route("/compare", func(r chi.Router) {
			r.Get("/categories", cfg.CompareHandler.ListCategories)
			r.Get("/comparators", cfg.CompareHandler.ListComparators)
			r.Get("/comparators/{comparatorID}", cfg.CompareHandler.GetComparator)
			r.Get("/methods/{methodID}", cfg.CompareHandler.GetMethod)
			r.Post("/rank", cfg.CompareHandler.Rank)
		})
	}

	if cfg.HandoffHandler != nil {
		r.Route("/handoff", func(r chi.Router) {
			if cfg.HandoffRate > 0 {
				r.Use(httpmiddleware.RateLimit(cfg.HandoffRate, cfg.HandoffBurst))
			}
			r.Post("/leads", cfg.HandoffHandler.CreateLead)
			r.Get("/leads/{leadID}", cfg.HandoffHandler.GetLead)
		})
	}

	return r
}

func healthHandler(catalogVersion string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":          "ok",
			"catalog_version": catalogVersion,
		})
	}
}
