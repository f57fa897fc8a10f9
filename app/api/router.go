// Package api wires the HTTP surface: routes, middleware, and the
// operational endpoints.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/spendwise/categories/app/categories"
	"github.com/spendwise/categories/pkg/metrics"
)

// NewRouter builds the application router. All category routes live
// under /api/categories.
func NewRouter(service *categories.Service, collector *metrics.Collector) http.Handler {
	router := chi.NewRouter()

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(RequestLogger)
	router.Use(Instrument(collector))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(
		collector.Registry(), promhttp.HandlerOpts{},
	))

	router.Route("/api/categories", func(r chi.Router) {
		handler := categories.NewCategoryHandler(service)
		r.Post("/", handler.HandleCreate)
		r.Get("/", handler.HandleGetAll)
		r.Get("/{id}", handler.HandleGetByID)
		r.Put("/{id}", handler.HandleUpdate)
		r.Delete("/{id}", handler.HandleDelete)
	})

	return router
}
