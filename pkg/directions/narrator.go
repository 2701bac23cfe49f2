// Package directions turns a walk through a building into instructions a
// person can follow.
package directions

import (
	"fmt"
	"math"

	"github.com/jwebster45206/room-finder/pkg/building"
)

// AlreadyThere is the single instruction for a walk that does not move.
const AlreadyThere = "You are already at your destination!"

// Narrate converts a walk of room ids into ordered instructions: a start
// line, one line per room moved into, a transition line whenever an elevator
// or stairs room changes the floor, and an arrive line.
//
// Walks of zero or one room yield AlreadyThere. Ids that are not in g are
// skipped.
func Narrate(g *building.Graph, path []string) []string {
	rooms := make([]building.Room, 0, len(path))
	for _, id := range path {
		if r, ok := g.Room(id); ok {
			rooms = append(rooms, r)
		}
	}
	if len(rooms) <= 1 {
		return []string{AlreadyThere}
	}

	lines := make([]string, 0, len(rooms)+2)
	lines = append(lines, fmt.Sprintf("Start at %s (%s)", rooms[0].Name, rooms[0].ID))

	floor := rooms[0].Floor
	for i := 1; i < len(rooms); i++ {
		prev, cur := rooms[i-1], rooms[i]

		if cur.Floor != floor {
			switch cur.Type {
			case building.RoomTypeElevator:
				lines = append(lines, fmt.Sprintf("Take the elevator to %s", g.FloorName(cur.Floor)))
			case building.RoomTypeStairs:
				way := "down"
				if cur.Floor > floor {
					way = "up"
				}
				lines = append(lines, fmt.Sprintf("Take the stairs %s to %s", way, g.FloorName(cur.Floor)))
			}
			floor = cur.Floor
		}

		if i == len(rooms)-1 {
			lines = append(lines, fmt.Sprintf("Arrive at %s (%s)", cur.Name, cur.ID))
		} else {
			lines = append(lines, fmt.Sprintf("Go %s to %s (%s)", Compass(prev, cur), cur.Name, cur.ID))
		}
	}

	return lines
}

// Compass gives the heading from one room to another on the map. The map's
// y axis grows southwards; equal horizontal and vertical offsets count as
// north or south.
func Compass(from, to building.Room) string {
	dx := to.X - from.X
	dy := to.Y - from.Y

	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return "east"
		}
		return "west"
	}
	if dy > 0 {
		return "south"
	}
	return "north"
}
