package route

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/jwebster45206/room-finder/pkg/building"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShortestPath_ReferenceElevatorRoute(t *testing.T) {
	g := building.Reference()

	path, dist, err := ShortestPath(g, "G001", "F104")
	require.NoError(t, err)

	assert.Equal(t, Path{"G001", "G002", "G003", "G006", "F106", "F103", "F104"}, path)
	assert.InDelta(t, 350+2*math.Sqrt(12500), dist, 1e-9)
	assert.Equal(t, 6, path.Steps())
}

func TestShortestPath_Trivial(t *testing.T) {
	path, dist, err := ShortestPath(building.Reference(), "G001", "G001")
	require.NoError(t, err)
	assert.Equal(t, Path{"G001"}, path)
	assert.Zero(t, dist)
	assert.Zero(t, path.Steps())
}

func TestShortestPath_InvalidRoom(t *testing.T) {
	g := building.Reference()

	_, _, err := ShortestPath(g, "nonexistent", "G001")
	assert.ErrorIs(t, err, ErrInvalidRoom)

	_, _, err = ShortestPath(g, "G001", "nonexistent")
	assert.ErrorIs(t, err, ErrInvalidRoom)

	_, _, err = ShortestPath(g, "nonexistent", "nonexistent")
	assert.ErrorIs(t, err, ErrInvalidRoom)

	_, _, err = ShortestPath(nil, "G001", "G002")
	assert.ErrorIs(t, err, ErrNilGraph)
}

func TestShortestPath_Disconnected(t *testing.T) {
	d := &building.Data{
		Rooms: map[string]building.RoomSpec{
			"A": {Name: "A", X: 0, Y: 0},
			"B": {Name: "B", X: 10, Y: 0},
			"C": {Name: "C", X: 20, Y: 0},
			"D": {Name: "D", X: 30, Y: 0},
		},
		Connections: map[string][]string{"A": {"B"}, "C": {"D"}},
	}
	g, err := building.NewGraph(d)
	require.NoError(t, err)

	_, _, err = ShortestPath(g, "A", "D")
	assert.ErrorIs(t, err, ErrNoPathFound)

	_, _, err = ShortestPath(g, "D", "B")
	assert.ErrorIs(t, err, ErrNoPathFound)

	path, dist, err := ShortestPath(g, "D", "C")
	require.NoError(t, err)
	assert.Equal(t, Path{"D", "C"}, path)
	assert.Equal(t, 10.0, dist)
}

func TestShortestPath_EqualCostTieIsStable(t *testing.T) {
	d := &building.Data{
		Rooms: map[string]building.RoomSpec{
			"A": {Name: "A", X: 0, Y: 0},
			"B": {Name: "B", X: 10, Y: 0},
			"C": {Name: "C", X: 0, Y: 10},
			"D": {Name: "D", X: 10, Y: 10},
		},
		Connections: map[string][]string{
			"A": {"C", "B"},
			"D": {"C", "B"},
		},
	}
	g, err := building.NewGraph(d)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		path, dist, err := ShortestPath(g, "A", "D")
		require.NoError(t, err)
		assert.Equal(t, Path{"A", "B", "D"}, path)
		assert.Equal(t, 20.0, dist)
	}
}

func TestShortestPath_Deterministic(t *testing.T) {
	g := building.Reference()
	first, firstDist, err := ShortestPath(g, "G009", "F210")
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		path, dist, err := ShortestPath(g, "G009", "F210")
		require.NoError(t, err)
		assert.Equal(t, first, path)
		assert.Equal(t, firstDist, dist)
	}
}

// TestShortestPath_ValidOnReference checks every pair of the bundled
// building: consecutive rooms are connected and the cost adds up.
func TestShortestPath_ValidOnReference(t *testing.T) {
	g := building.Reference()
	ids := g.IDs()

	for _, from := range ids {
		for _, to := range ids {
			path, dist, err := ShortestPath(g, from, to)
			require.NoError(t, err, "%s -> %s", from, to)
			assertValidPath(t, g, path, from, to, dist)
		}
	}
}

func TestShortestPath_OptimalOnRandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 60; trial++ {
		g := randomGraph(t, rng, 3+rng.Intn(5))
		ids := g.IDs()

		for _, from := range ids {
			for _, to := range ids {
				best, reachable := bruteForce(g, from, to)
				path, dist, err := ShortestPath(g, from, to)
				if !reachable {
					assert.ErrorIs(t, err, ErrNoPathFound, "trial %d %s -> %s", trial, from, to)
					continue
				}
				require.NoError(t, err, "trial %d %s -> %s", trial, from, to)
				assert.InDelta(t, best, dist, 1e-9, "trial %d %s -> %s", trial, from, to)
				assertValidPath(t, g, path, from, to, dist)
			}
		}
	}
}

func assertValidPath(t *testing.T, g *building.Graph, path Path, from, to string, dist float64) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, from, path[0])
	assert.Equal(t, to, path[len(path)-1])

	sum := 0.0
	for i := 1; i < len(path); i++ {
		assert.True(t, g.Connected(path[i-1], path[i]), "%s and %s are not connected", path[i-1], path[i])
		c, err := g.Cost(path[i-1], path[i])
		require.NoError(t, err)
		sum += c
	}
	assert.InDelta(t, sum, dist, 1e-9)
}

func randomGraph(t *testing.T, rng *rand.Rand, n int) *building.Graph {
	t.Helper()
	d := &building.Data{
		Rooms:       make(map[string]building.RoomSpec, n),
		Connections: make(map[string][]string),
	}
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("R%02d", i)
		d.Rooms[ids[i]] = building.RoomSpec{
			Name:  ids[i],
			Floor: rng.Intn(2),
			X:     float64(rng.Intn(100)),
			Y:     float64(rng.Intn(100)),
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < 0.4 {
				d.Connections[ids[i]] = append(d.Connections[ids[i]], ids[j])
			}
		}
	}
	g, err := building.NewGraph(d)
	require.NoError(t, err)
	return g
}

// bruteForce enumerates every simple walk from one room to another and
// returns the lowest total cost.
func bruteForce(g *building.Graph, from, to string) (float64, bool) {
	best := math.Inf(1)
	visited := map[string]bool{from: true}

	var walk func(at string, cost float64)
	walk = func(at string, cost float64) {
		if at == to {
			if cost < best {
				best = cost
			}
			return
		}
		for _, next := range g.Neighbors(at) {
			if visited[next] {
				continue
			}
			c, _ := g.Cost(at, next)
			visited[next] = true
			walk(next, cost+c)
			visited[next] = false
		}
	}
	walk(from, 0)

	return best, !math.IsInf(best, 1)
}
