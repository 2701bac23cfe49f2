package route

import (
	"github.com/jwebster45206/room-finder/pkg/building"
	"github.com/jwebster45206/room-finder/pkg/directions"
)

// Result is a computed route ready for display.
type Result struct {
	Path          Path     `json:"path"`
	Distance      float64  `json:"distance"`
	Directions    []string `json:"directions"`
	TotalSteps    int      `json:"totalSteps"`
	EstimatedTime string   `json:"estimatedTime"`
}

// Engine answers routing questions about one building. It keeps no state
// between calls and is safe for concurrent use.
type Engine struct {
	graph *building.Graph
}

// NewEngine returns an engine over g.
func NewEngine(g *building.Graph) *Engine {
	return &Engine{graph: g}
}

// Graph returns the building the engine routes through.
func (e *Engine) Graph() *building.Graph {
	return e.graph
}

// FindShortestPath computes the cheapest route between two rooms along with
// its directions. Errors wrap ErrInvalidRoom or ErrNoPathFound.
func (e *Engine) FindShortestPath(start, end string) (*Result, error) {
	path, dist, err := ShortestPath(e.graph, start, end)
	if err != nil {
		return nil, err
	}
	return &Result{
		Path:          path,
		Distance:      dist,
		Directions:    directions.Narrate(e.graph, path),
		TotalSteps:    path.Steps(),
		EstimatedTime: directions.EstimateWalkingTime(dist),
	}, nil
}

// FindNearbyRooms lists the rooms within maxDistance of id, nearest first.
func (e *Engine) FindNearbyRooms(id string, maxDistance float64) ([]NearbyRoom, error) {
	return Nearby(e.graph, id, maxDistance)
}

// EstimateWalkingTime formats the walking time for a distance.
func (e *Engine) EstimateWalkingTime(distance float64) string {
	return directions.EstimateWalkingTime(distance)
}
