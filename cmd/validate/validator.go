package main

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jwebster45206/room-finder/internal/storage"
	"github.com/jwebster45206/room-finder/pkg/building"
)

// Report collects the findings for one building file. Errors make the file
// unusable; warnings point at data that loads but is probably wrong.
type Report struct {
	Filename string
	Errors   []string
	Warnings []string
}

func (r *Report) addError(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Report) addWarning(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Err summarises the errors of the report, or returns nil.
func (r *Report) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	return fmt.Errorf("validation errors in %s:\n  - %s", r.Filename, strings.Join(r.Errors, "\n  - "))
}

// Room ids end up in URL paths and cache keys.
var validRoomID = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

func ValidateFile(filename string) *Report {
	r := &Report{Filename: filename}

	d, err := storage.LoadFile(filename)
	if err != nil {
		r.addError("%v", err)
		return r
	}

	validateData(r, d)
	return r
}

func validateData(r *Report, d *building.Data) {
	ids := make([]string, 0, len(d.Rooms))
	for id := range d.Rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		if id != "" && !validRoomID.MatchString(id) {
			r.addError("room ID %q may only contain letters, digits, '_', '.' and '-'", id)
		}
		room := d.Rooms[id]
		if strings.TrimSpace(room.Name) == "" {
			r.addWarning("room %s has no name", id)
		}
		if !room.Type.IsKnown() {
			r.addWarning("room %s has unknown type %q", id, room.Type)
		}
	}

	g, err := building.NewGraph(d)
	if err != nil {
		r.addError("%v", err)
		return
	}

	sources := make([]string, 0, len(d.Connections))
	for id := range d.Connections {
		sources = append(sources, id)
	}
	sort.Strings(sources)
	for _, from := range sources {
		for _, to := range d.Connections[from] {
			if !declares(d.Connections[to], from) {
				r.addWarning("connection %s -> %s is not declared in reverse", from, to)
			}
		}
	}

	listed := make(map[string]bool)
	for _, f := range g.Floors() {
		for _, id := range f.Rooms {
			listed[id] = true
		}
	}

	for _, id := range g.IDs() {
		if len(g.Neighbors(id)) == 0 {
			r.addWarning("room %s has no connections", id)
		}
		if len(d.Floors) > 0 && !listed[id] {
			room, _ := g.Room(id)
			r.addWarning("room %s is not listed on floor %d", id, room.Floor)
		}
	}
}

func declares(neighbors []string, id string) bool {
	for _, n := range neighbors {
		if n == id {
			return true
		}
	}
	return false
}
