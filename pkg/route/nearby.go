package route

import (
	"fmt"
	"sort"

	"github.com/jwebster45206/room-finder/pkg/building"
)

// DefaultNearbyDistance is the search radius used when a caller gives none.
const DefaultNearbyDistance = 150.0

// NearbyRoom is a room found by Nearby together with its cost from the query room.
type NearbyRoom struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Distance float64           `json:"distance"`
	Floor    int               `json:"floor"`
	Type     building.RoomType `json:"type"`
}

// Nearby returns every other room whose direct cost from id is at most
// maxDistance, nearest first. Connectivity is ignored: the cost is the
// straight-line distance plus the floor penalty.
func Nearby(g *building.Graph, id string, maxDistance float64) ([]NearbyRoom, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	from, ok := g.Index(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRoom, id)
	}

	out := make([]NearbyRoom, 0)
	for i := 0; i < g.Len(); i++ {
		if i == from {
			continue
		}
		d := g.CostAt(from, i)
		if d > maxDistance {
			continue
		}
		r := g.RoomAt(i)
		out = append(out, NearbyRoom{
			ID:       r.ID,
			Name:     r.Name,
			Distance: d,
			Floor:    r.Floor,
			Type:     r.Type,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Distance < out[j].Distance })
	return out, nil
}
