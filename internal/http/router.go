package http

import (
	"net/http"

	"alb-analytics/internal/reports"
	"alb-analytics/internal/shared/loggers"
	"alb-analytics/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(reportService reports.ReportService, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	reportHandler := NewReportHandler(reportService)

	// Routes
	router.Post("/reports", errorHandlingAdapter(reportHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
