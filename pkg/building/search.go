package building

import (
	"strings"

	"golang.org/x/text/cases"
)

// AllRooms returns a summary of every room, ordered by id.
func (g *Graph) AllRooms() []Summary {
	out := make([]Summary, len(g.rooms))
	for i, r := range g.rooms {
		out[i] = r.Summary()
	}
	return out
}

// Search returns the rooms whose id or name contains query, ignoring case.
// An empty query matches every room.
func (g *Graph) Search(query string) []Summary {
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))

	out := make([]Summary, 0)
	for _, r := range g.rooms {
		if strings.Contains(fold.String(r.ID), q) || strings.Contains(fold.String(r.Name), q) {
			out = append(out, r.Summary())
		}
	}
	return out
}

// Summary returns the short form of r.
func (r Room) Summary() Summary {
	return Summary{ID: r.ID, Name: r.Name, Floor: r.Floor, Type: r.Type}
}
