// Package route finds walkable routes through a building.Graph.
//
// ShortestPath runs Dijkstra's algorithm from the start room over the dense
// room indices of the graph. Edge weights come from building.Graph.CostAt and
// are never negative, so a room's distance is final once it is settled.
//
// Complexity:
//
//   - Time:  O((V + E) log V) with a lazy-deletion binary heap.
//   - Space: O(V + E), allocated per call.
//
// Among rooms at equal distance the one with the lower index (the lower room
// id) is settled first, so results are reproducible for identical inputs.
package route

import (
	"container/heap"
	"errors"
	"fmt"
	"math"

	"github.com/jwebster45206/room-finder/pkg/building"
)

var (
	// ErrInvalidRoom indicates that a requested room id is not part of the building.
	ErrInvalidRoom = errors.New("route: invalid room id")

	// ErrNoPathFound indicates that the start and end rooms are not connected.
	ErrNoPathFound = errors.New("route: no path found")

	// ErrNilGraph indicates that no graph was supplied.
	ErrNilGraph = errors.New("route: graph is nil")
)

// Path is an ordered walk of room ids from start to end.
type Path []string

// Steps returns the number of moves in the walk.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// ShortestPath returns the cheapest walk from start to end and its cost.
// When start equals end the walk is just [start] with cost 0.
func ShortestPath(g *building.Graph, start, end string) (Path, float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	src, ok := g.Index(start)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", ErrInvalidRoom, start)
	}
	dst, ok := g.Index(end)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", ErrInvalidRoom, end)
	}
	if src == dst {
		return Path{start}, 0, nil
	}

	r := newRunner(g, src)
	r.run(dst)

	path, err := r.path(src, dst)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s to %s", err, start, end)
	}
	return path, r.dist[dst], nil
}

// runner holds the working state of one Dijkstra run. It is never shared.
type runner struct {
	g       *building.Graph
	dist    []float64
	prev    []int
	settled []bool
	pq      nodePQ
}

func newRunner(g *building.Graph, src int) *runner {
	n := g.Len()
	r := &runner{
		g:       g,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		settled: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	for i := range r.dist {
		r.dist[i] = math.Inf(1)
		r.prev[i] = -1
	}
	r.dist[src] = 0
	heap.Push(&r.pq, nodeItem{index: src, dist: 0})
	return r
}

// run settles rooms in order of distance until dst is settled or nothing
// reachable is left.
func (r *runner) run(dst int) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.index
		// stale entry from a superseded relaxation
		if r.settled[u] || item.dist > r.dist[u] {
			continue
		}
		r.settled[u] = true
		if u == dst {
			return
		}
		for _, v := range r.g.NeighborsAt(u) {
			if r.settled[v] {
				continue
			}
			alt := r.dist[u] + r.g.CostAt(u, v)
			if alt < r.dist[v] {
				r.dist[v] = alt
				r.prev[v] = u
				heap.Push(&r.pq, nodeItem{index: v, dist: alt})
			}
		}
	}
}

// path walks predecessors back from dst and returns the forward walk.
func (r *runner) path(src, dst int) (Path, error) {
	if math.IsInf(r.dist[dst], 1) {
		return nil, ErrNoPathFound
	}
	var rev []int
	for at := dst; at != -1; at = r.prev[at] {
		rev = append(rev, at)
		if at == src {
			break
		}
	}
	if rev[len(rev)-1] != src {
		return nil, ErrNoPathFound
	}

	out := make(Path, len(rev))
	for i, idx := range rev {
		out[len(rev)-1-i] = r.g.RoomAt(idx).ID
	}
	return out, nil
}

type nodeItem struct {
	index int
	dist  float64
}

// nodePQ is a min-heap on (dist, index).
type nodePQ []nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].index < pq[j].index
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
