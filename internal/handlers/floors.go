package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/jwebster45206/room-finder/pkg/building"
)

// FloorResponse is a floor with its rooms expanded.
type FloorResponse struct {
	Index int             `json:"index"`
	Name  string          `json:"name"`
	Rooms []building.Room `json:"rooms"`
}

type FloorsHandler struct {
	graph  *building.Graph
	logger *slog.Logger
}

func NewFloorsHandler(graph *building.Graph, logger *slog.Logger) *FloorsHandler {
	return &FloorsHandler{
		graph:  graph,
		logger: logger,
	}
}

// ServeHTTP handles floor listings
// Routes:
// GET /v1/floors          - Declared floors with room ids
// GET /v1/floors/{index}  - One floor with full room records
func (h *FloorsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only GET is supported.")
		return
	}

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/v1/floors"), "/")
	if path == "" {
		writeJSON(w, h.logger, http.StatusOK, h.graph.Floors())
		return
	}

	index, err := strconv.Atoi(path)
	if err != nil || index < 0 {
		writeError(w, h.logger, http.StatusBadRequest, "Floor index must be a non-negative integer")
		return
	}

	rooms := h.graph.RoomsOnFloor(index)
	if len(rooms) == 0 {
		writeError(w, h.logger, http.StatusNotFound, "Floor not found")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, FloorResponse{
		Index: index,
		Name:  h.graph.FloorName(index),
		Rooms: rooms,
	})
}
