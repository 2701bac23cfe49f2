package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jwebster45206/room-finder/internal/services"
	"github.com/jwebster45206/room-finder/pkg/building"
)

type HealthResponse struct {
	Status     string                 `json:"status"`
	Timestamp  time.Time              `json:"timestamp"`
	Service    string                 `json:"service"`
	Components map[string]interface{} `json:"components"`
}

type HealthHandler struct {
	cache  services.HealthChecker // nil when caching is disabled
	graph  *building.Graph
	logger *slog.Logger
}

func NewHealthHandler(cache services.HealthChecker, graph *building.Graph, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		cache:  cache,
		graph:  graph,
		logger: logger,
	}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Health check requested",
		"method", r.Method,
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr)

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	components := make(map[string]interface{})
	overallStatus := "healthy"

	switch {
	case h.cache == nil:
		components["cache"] = "disabled"
	case h.cache.Ping(ctx) != nil:
		h.logger.Warn("Cache health check failed")
		components["cache"] = "unhealthy"
		overallStatus = "degraded"
	default:
		components["cache"] = "healthy"
	}

	if h.graph == nil || h.graph.Len() == 0 {
		components["building"] = map[string]interface{}{"status": "unhealthy"}
		overallStatus = "degraded"
	} else {
		components["building"] = map[string]interface{}{
			"status": "healthy",
			"name":   h.graph.Name(),
			"rooms":  h.graph.Len(),
			"floors": len(h.graph.Floors()),
		}
	}

	statusCode := http.StatusOK
	if overallStatus != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}

	writeJSON(w, h.logger, statusCode, HealthResponse{
		Status:     overallStatus,
		Timestamp:  time.Now(),
		Service:    "room-finder",
		Components: components,
	})
}
