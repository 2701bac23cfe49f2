package building

import (
	"fmt"
	"math"
)

// FloorPenalty is the cost added for every floor between two rooms.
const FloorPenalty = 50.0

// Cost returns the travel cost between two rooms: their planar distance
// plus FloorPenalty per floor of separation. It is symmetric, non-negative,
// and zero for a room and itself.
func (g *Graph) Cost(a, b string) (float64, error) {
	i, ok := g.index[a]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownRoom, a)
	}
	j, ok := g.index[b]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownRoom, b)
	}
	return g.CostAt(i, j), nil
}

// CostAt is Cost over dense indices.
func (g *Graph) CostAt(i, j int) float64 {
	return Distance(g.rooms[i], g.rooms[j])
}

// Distance computes the cost formula for two rooms directly.
func Distance(a, b Room) float64 {
	floors := a.Floor - b.Floor
	if floors < 0 {
		floors = -floors
	}
	return math.Hypot(a.X-b.X, a.Y-b.Y) + FloorPenalty*float64(floors)
}
