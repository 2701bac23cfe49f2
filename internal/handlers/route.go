package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jwebster45206/room-finder/internal/logger"
	"github.com/jwebster45206/room-finder/internal/middleware"
	"github.com/jwebster45206/room-finder/internal/services"
	"github.com/jwebster45206/room-finder/pkg/route"
)

// RouteRequest is the body of POST /v1/route.
type RouteRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type RouteHandler struct {
	engine *route.Engine
	cache  *services.RouteCache // nil when caching is disabled
	logger *slog.Logger
}

func NewRouteHandler(engine *route.Engine, cache *services.RouteCache, logger *slog.Logger) *RouteHandler {
	return &RouteHandler{
		engine: engine,
		cache:  cache,
		logger: logger,
	}
}

// ServeHTTP handles route lookups
// Routes:
// GET /v1/route?from={id}&to={id}
// POST /v1/route {"from": "...", "to": "..."}
func (h *RouteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req RouteRequest

	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req.From = q.Get("from")
		req.To = q.Get("to")
	case http.MethodPost:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Warn("Invalid route request body", "error", err)
			writeError(w, h.logger, http.StatusBadRequest, "Invalid request body. Expected JSON with 'from' and 'to' fields.")
			return
		}
	default:
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Supported methods: GET, POST")
		return
	}

	req.From = strings.TrimSpace(req.From)
	req.To = strings.TrimSpace(req.To)
	if req.From == "" || req.To == "" {
		writeError(w, h.logger, http.StatusBadRequest, "Both 'from' and 'to' room IDs are required")
		return
	}

	ctx := r.Context()
	log := logger.WithRequestID(h.logger, middleware.RequestID(ctx))
	if h.cache != nil {
		if res, ok := h.cache.Get(ctx, req.From, req.To); ok {
			w.Header().Set("X-Cache", "HIT")
			writeJSON(w, h.logger, http.StatusOK, res)
			return
		}
		w.Header().Set("X-Cache", "MISS")
	}

	res, err := h.engine.FindShortestPath(req.From, req.To)
	if err != nil {
		switch {
		case errors.Is(err, route.ErrInvalidRoom):
			log.Debug("Route requested for unknown room", "from", req.From, "to", req.To)
			writeError(w, h.logger, http.StatusNotFound, msgInvalidRoom)
		case errors.Is(err, route.ErrNoPathFound):
			log.Info("No route between rooms", "from", req.From, "to", req.To)
			writeError(w, h.logger, http.StatusNotFound, msgNoPath)
		default:
			logger.WithError(log, err).Error("Route computation failed", "from", req.From, "to", req.To)
			writeError(w, h.logger, http.StatusInternalServerError, "Failed to compute route")
		}
		return
	}

	log.Debug("Route computed", "from", req.From, "to", req.To, "steps", res.TotalSteps, "distance", res.Distance)

	if h.cache != nil {
		h.cache.Put(ctx, req.From, req.To, res)
	}
	writeJSON(w, h.logger, http.StatusOK, res)
}
