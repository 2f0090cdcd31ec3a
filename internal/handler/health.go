package handler

import (
	"net/http"
)

// Version is reported by the health endpoint
const Version = "0.1.0"

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version"`
	Services map[string]string `json:"services"`
}

// Health returns the health status of the service
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	services := map[string]string{
		"postgres": "healthy",
		"redis":    "healthy",
	}
	if err := h.db.HealthCheck(ctx); err != nil {
		services["postgres"] = "unhealthy"
	}
	if err := h.rdb.HealthCheck(ctx); err != nil {
		services["redis"] = "unhealthy"
	}

	status := "healthy"
	for _, s := range services {
		if s == "unhealthy" {
			status = "degraded"
			break
		}
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{
		Status:   status,
		Version:  Version,
		Services: services,
	})
}

// Ready returns whether the service is ready to accept requests
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.HealthCheck(ctx); err != nil {
		h.log.Warn().Err(err).Msg("database not ready")
		http.Error(w, "database not ready", http.StatusServiceUnavailable)
		return
	}

	if err := h.rdb.HealthCheck(ctx); err != nil {
		h.log.Warn().Err(err).Msg("redis not ready")
		http.Error(w, "redis not ready", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
