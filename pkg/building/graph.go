package building

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

var (
	// ErrNilData indicates that NewGraph was given no building data.
	ErrNilData = errors.New("building: data is nil")

	// ErrUnknownRoom indicates a reference to a room id that the building does not define.
	ErrUnknownRoom = errors.New("building: unknown room")

	// ErrEmptyRoomID indicates a room declared under an empty id.
	ErrEmptyRoomID = errors.New("building: empty room id")

	// ErrSelfLoop indicates a room declared as connected to itself.
	ErrSelfLoop = errors.New("building: room connected to itself")

	// ErrNegativeFloor indicates a room or floor with an index below zero.
	ErrNegativeFloor = errors.New("building: negative floor index")

	// ErrFloorMismatch indicates a floor listing a room that sits on another floor.
	ErrFloorMismatch = errors.New("building: room listed on the wrong floor")
)

// Graph is the immutable, read-only model of a building. Room ids are mapped
// to dense indices in ascending id order; all adjacency is symmetric.
//
// A Graph is safe for concurrent use once built.
type Graph struct {
	name   string
	rooms  []Room
	index  map[string]int
	adj    [][]int
	floors map[int]Floor
}

// NewGraph validates d and builds its graph. The data is copied; later
// changes to d do not affect the graph.
func NewGraph(d *Data) (*Graph, error) {
	if d == nil {
		return nil, ErrNilData
	}

	ids := make([]string, 0, len(d.Rooms))
	for id := range d.Rooms {
		if id == "" {
			return nil, ErrEmptyRoomID
		}
		ids = append(ids, id)
	}
	sort.Strings(ids)

	g := &Graph{
		name:   d.Name,
		rooms:  make([]Room, len(ids)),
		index:  make(map[string]int, len(ids)),
		adj:    make([][]int, len(ids)),
		floors: make(map[int]Floor, len(d.Floors)),
	}

	for i, id := range ids {
		spec := d.Rooms[id]
		if spec.Floor < 0 {
			return nil, fmt.Errorf("%w: room %s on floor %d", ErrNegativeFloor, id, spec.Floor)
		}
		g.rooms[i] = Room{
			ID:    id,
			Name:  spec.Name,
			Floor: spec.Floor,
			X:     spec.X,
			Y:     spec.Y,
			Type:  spec.Type,
		}
		g.index[id] = i
	}

	if err := g.connect(ids, d.Connections); err != nil {
		return nil, err
	}
	if err := g.addFloors(d.Floors); err != nil {
		return nil, err
	}

	return g, nil
}

// connect fills the adjacency lists. Declared neighbors keep their order;
// reverse edges that were not declared are appended afterwards.
func (g *Graph) connect(ids []string, connections map[string][]string) error {
	sources := make([]string, 0, len(connections))
	for id := range connections {
		sources = append(sources, id)
	}
	sort.Strings(sources)

	type edge struct{ from, to int }
	seen := make(map[edge]bool)

	for _, from := range sources {
		i, ok := g.index[from]
		if !ok {
			return fmt.Errorf("%w: connection source %s", ErrUnknownRoom, from)
		}
		for _, to := range connections[from] {
			j, ok := g.index[to]
			if !ok {
				return fmt.Errorf("%w: %s connects to %s", ErrUnknownRoom, from, to)
			}
			if i == j {
				return fmt.Errorf("%w: %s", ErrSelfLoop, from)
			}
			if seen[edge{i, j}] {
				continue
			}
			seen[edge{i, j}] = true
			g.adj[i] = append(g.adj[i], j)
		}
	}

	for i := range ids {
		for _, j := range g.adj[i] {
			if seen[edge{j, i}] {
				continue
			}
			seen[edge{j, i}] = true
			g.adj[j] = append(g.adj[j], i)
		}
	}

	return nil
}

func (g *Graph) addFloors(floors map[int]FloorSpec) error {
	for index, spec := range floors {
		if index < 0 {
			return fmt.Errorf("%w: floor %d", ErrNegativeFloor, index)
		}
		rooms := make([]string, 0, len(spec.Rooms))
		for _, id := range spec.Rooms {
			i, ok := g.index[id]
			if !ok {
				return fmt.Errorf("%w: floor %d lists %s", ErrUnknownRoom, index, id)
			}
			if g.rooms[i].Floor != index {
				return fmt.Errorf("%w: %s is on floor %d, listed on floor %d", ErrFloorMismatch, id, g.rooms[i].Floor, index)
			}
			rooms = append(rooms, id)
		}
		g.floors[index] = Floor{Index: index, Name: spec.Name, Rooms: rooms}
	}
	return nil
}

// Name returns the building's display name, which may be empty.
func (g *Graph) Name() string {
	return g.name
}

// Len returns the number of rooms.
func (g *Graph) Len() int {
	return len(g.rooms)
}

// HasRoom reports whether id names a room of the building.
func (g *Graph) HasRoom(id string) bool {
	_, ok := g.index[id]
	return ok
}

// Room returns the room with the given id.
func (g *Graph) Room(id string) (Room, bool) {
	i, ok := g.index[id]
	if !ok {
		return Room{}, false
	}
	return g.rooms[i], true
}

// Index returns the dense index of id.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// RoomAt returns the room at dense index i. It panics if i is out of range.
func (g *Graph) RoomAt(i int) Room {
	return g.rooms[i]
}

// NeighborsAt returns the dense indices adjacent to i. The slice is shared
// and must not be modified.
func (g *Graph) NeighborsAt(i int) []int {
	return g.adj[i]
}

// IDs returns all room ids in ascending order.
func (g *Graph) IDs() []string {
	ids := make([]string, len(g.rooms))
	for i, r := range g.rooms {
		ids[i] = r.ID
	}
	return ids
}

// Neighbors returns the ids of the rooms connected to id, or nil if id is unknown.
func (g *Graph) Neighbors(id string) []string {
	i, ok := g.index[id]
	if !ok {
		return nil
	}
	out := make([]string, len(g.adj[i]))
	for k, j := range g.adj[i] {
		out[k] = g.rooms[j].ID
	}
	return out
}

// Connected reports whether a and b share an edge.
func (g *Graph) Connected(a, b string) bool {
	i, ok := g.index[a]
	if !ok {
		return false
	}
	j, ok := g.index[b]
	if !ok {
		return false
	}
	for _, n := range g.adj[i] {
		if n == j {
			return true
		}
	}
	return false
}

// FloorName returns the configured name of a floor, or "Floor N" when the
// building does not name it.
func (g *Graph) FloorName(index int) string {
	if f, ok := g.floors[index]; ok && f.Name != "" {
		return f.Name
	}
	return "Floor " + strconv.Itoa(index)
}

// Floors returns the declared floors ordered by index.
func (g *Graph) Floors() []Floor {
	out := make([]Floor, 0, len(g.floors))
	for _, f := range g.floors {
		out = append(out, Floor{Index: f.Index, Name: f.Name, Rooms: append([]string(nil), f.Rooms...)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Index < out[j].Index })
	return out
}

// RoomsOnFloor returns the rooms of a floor. A declared floor keeps its
// listed order; otherwise rooms with that floor index are returned by id.
func (g *Graph) RoomsOnFloor(index int) []Room {
	if f, ok := g.floors[index]; ok {
		out := make([]Room, 0, len(f.Rooms))
		for _, id := range f.Rooms {
			out = append(out, g.rooms[g.index[id]])
		}
		return out
	}
	var out []Room
	for _, r := range g.rooms {
		if r.Floor == index {
			out = append(out, r)
		}
	}
	return out
}
