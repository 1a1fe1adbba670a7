package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	_ "github.com/sitesafe/violations/docs" //nolint:revive,nolintlint
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP)

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)
			r.Handle("/metrics", promhttp.Handler())
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/violations/list", h.GetViolationsList)
			r.Get("/violations/details", h.GetViolationDetails)
			r.Put("/violations/status", h.UpdateViolation)

			r.Get("/dashboard/summary", h.GetDashboardSummary)

			r.Get("/reports/workers", h.GetWorkerReport)
			r.Get("/reports/categories", h.GetCategoryReport)

			r.Get("/workers/list", h.GetWorkersList)
			r.Get("/locations/list", h.GetLocationsList)
		})

		// Интеграционный эндпоинт пайплайна детекции.
		r.Post("/private/violations", h.CreateViolation)
	})

	return router
}
