package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jwebster45206/room-finder/internal/middleware"
	"github.com/jwebster45206/room-finder/internal/services"
	"github.com/jwebster45206/room-finder/pkg/route"
)

// NewRouter wires every API route for one building behind the request
// logging middleware. routeCache may be nil.
func NewRouter(engine *route.Engine, routeCache *services.RouteCache, nearbyMaxDistance float64, log *slog.Logger) http.Handler {
	graph := engine.Graph()

	// A nil *RouteCache must not become a non-nil HealthChecker.
	var cacheHealth services.HealthChecker
	if routeCache != nil {
		cacheHealth = routeCache
	}

	mux := http.NewServeMux()

	mux.Handle("/health", NewHealthHandler(cacheHealth, graph, log))

	mux.Handle("/v1/route", NewRouteHandler(engine, routeCache, log))

	roomsHandler := NewRoomsHandler(engine, nearbyMaxDistance, log)
	mux.Handle("/v1/rooms", roomsHandler)
	mux.Handle("/v1/rooms/", roomsHandler)

	floorsHandler := NewFloorsHandler(graph, log)
	mux.Handle("/v1/floors", floorsHandler)
	mux.Handle("/v1/floors/", floorsHandler)

	mux.Handle("/v1/walking-time", NewWalkingTimeHandler(log))

	return middleware.Logger(log, mux)
}
