package storage

import (
	"context"
	"fmt"

	"github.com/jwebster45206/room-finder/pkg/building"
)

// LoadGraph builds the graph of the named building file from store. An empty
// filename selects the bundled reference building.
func LoadGraph(ctx context.Context, store BuildingStore, filename string) (*building.Graph, error) {
	if filename == "" {
		d, err := building.ReferenceData()
		if err != nil {
			return nil, fmt.Errorf("failed to load reference building: %w", err)
		}
		return building.NewGraph(d)
	}

	d, err := store.GetBuilding(ctx, filename)
	if err != nil {
		return nil, err
	}

	g, err := building.NewGraph(d)
	if err != nil {
		return nil, fmt.Errorf("invalid building %s: %w", filename, err)
	}
	return g, nil
}
