package handlers

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/jwebster45206/room-finder/pkg/building"
	"github.com/jwebster45206/room-finder/pkg/route"
)

// RoomResponse describes one room and what it connects to.
type RoomResponse struct {
	building.Room
	FloorName string             `json:"floorName"`
	Neighbors []building.Summary `json:"neighbors"`
}

type RoomsHandler struct {
	engine      *route.Engine
	maxDistance float64
	logger      *slog.Logger
}

func NewRoomsHandler(engine *route.Engine, defaultMaxDistance float64, logger *slog.Logger) *RoomsHandler {
	return &RoomsHandler{
		engine:      engine,
		maxDistance: defaultMaxDistance,
		logger:      logger,
	}
}

// ServeHTTP handles room lookups
// Routes:
// GET /v1/rooms?q={query}          - List or search rooms
// GET /v1/rooms/{id}               - One room with its neighbors
// GET /v1/rooms/{id}/nearby?max=N  - Rooms within N of the room
func (h *RoomsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only GET is supported.")
		return
	}

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/rooms"), "/")
	if path == "" {
		h.handleList(w, r)
		return
	}

	parts := strings.Split(path, "/")
	switch {
	case len(parts) == 1:
		h.handleRoom(w, parts[0])
	case len(parts) == 2 && parts[1] == "nearby":
		h.handleNearby(w, r, parts[0])
	default:
		writeError(w, h.logger, http.StatusNotFound, "Not found")
	}
}

func (h *RoomsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	g := h.engine.Graph()
	query := r.URL.Query().Get("q")
	if query == "" {
		writeJSON(w, h.logger, http.StatusOK, g.AllRooms())
		return
	}
	writeJSON(w, h.logger, http.StatusOK, g.Search(query))
}

func (h *RoomsHandler) handleRoom(w http.ResponseWriter, id string) {
	g := h.engine.Graph()
	room, ok := g.Room(id)
	if !ok {
		writeError(w, h.logger, http.StatusNotFound, msgInvalidRoom)
		return
	}

	neighbors := make([]building.Summary, 0)
	for _, n := range g.Neighbors(id) {
		nr, _ := g.Room(n)
		neighbors = append(neighbors, nr.Summary())
	}

	writeJSON(w, h.logger, http.StatusOK, RoomResponse{
		Room:      room,
		FloorName: g.FloorName(room.Floor),
		Neighbors: neighbors,
	})
}

func (h *RoomsHandler) handleNearby(w http.ResponseWriter, r *http.Request, id string) {
	maxDistance := h.maxDistance
	if raw := r.URL.Query().Get("max"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			writeError(w, h.logger, http.StatusBadRequest, "Query parameter 'max' must be a non-negative number")
			return
		}
		maxDistance = v
	}

	rooms, err := h.engine.FindNearbyRooms(id, maxDistance)
	if err != nil {
		if errors.Is(err, route.ErrInvalidRoom) {
			writeError(w, h.logger, http.StatusNotFound, msgInvalidRoom)
			return
		}
		h.logger.Error("Nearby search failed", "room_id", id, "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "Failed to search nearby rooms")
		return
	}
	writeJSON(w, h.logger, http.StatusOK, rooms)
}
