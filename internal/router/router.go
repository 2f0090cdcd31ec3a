package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/medsystem/medsystem/internal/config"
	"github.com/medsystem/medsystem/internal/handler"
	"github.com/medsystem/medsystem/internal/middleware"
)

// New creates and configures the HTTP router
func New(h *handler.Handler, mw *middleware.Middleware, cfg *config.Config, gatherer prometheus.Gatherer) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoints (no auth required)
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)

	if cfg.Metrics.Enabled {
		mux.Handle("GET "+cfg.Metrics.Path, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	// Admin panel
	mux.HandleFunc("GET /api/doctors", h.ListDoctors)
	mux.HandleFunc("GET /api/doctors/index", h.ListDoctors)
	mux.HandleFunc("GET /api/doctors/get-doctor", h.GetDoctor)
	mux.HandleFunc("GET /api/doctors/{id}", h.GetDoctor)
	mux.HandleFunc("DELETE /api/doctors/{id}", h.DeleteDoctor)
	mux.HandleFunc("GET /api/patients", h.ListPatients)
	mux.HandleFunc("GET /api/patients/index", h.ListPatients)
	mux.HandleFunc("GET /api/patients/get-patient", h.GetPatient)
	mux.HandleFunc("DELETE /api/patients/{id}", h.DeletePatient)

	cronRateLimit := mw.RateLimit(middleware.RateLimitConfig{
		Name:   "cron",
		Limit:  cfg.Security.RateLimiting.DefaultLimit,
		Window: cfg.Security.RateLimiting.DefaultWindow,
		KeyFn:  mw.ClientIP,
	})
	cronOnlyGET := mw.AllowMethods(http.MethodGet)

	// Wrong methods are rejected before they count against the limit
	mux.Handle("/api/cron/send-reminders", cronOnlyGET(cronRateLimit(mw.CronAuth(http.HandlerFunc(h.SendReminders)))))

	// Apply middleware stack
	var handler http.Handler = mux

	// Request logging
	handler = mw.Logger(handler)

	// Request ID
	handler = mw.RequestID(handler)

	// Panic recovery (outermost)
	handler = mw.Recover(handler)

	return handler
}
