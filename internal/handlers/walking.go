package handlers

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/jwebster45206/room-finder/pkg/directions"
)

type WalkingTimeResponse struct {
	Distance      float64 `json:"distance"`
	EstimatedTime string  `json:"estimatedTime"`
}

// WalkingTimeHandler serves GET /v1/walking-time?distance=N
type WalkingTimeHandler struct {
	logger *slog.Logger
}

func NewWalkingTimeHandler(logger *slog.Logger) *WalkingTimeHandler {
	return &WalkingTimeHandler{logger: logger}
}

func (h *WalkingTimeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, h.logger, http.StatusMethodNotAllowed, "Method not allowed. Only GET is supported.")
		return
	}

	distance, err := strconv.ParseFloat(r.URL.Query().Get("distance"), 64)
	if err != nil || distance < 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		writeError(w, h.logger, http.StatusBadRequest, "Query parameter 'distance' must be a non-negative number")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, WalkingTimeResponse{
		Distance:      distance,
		EstimatedTime: directions.EstimateWalkingTime(distance),
	})
}
