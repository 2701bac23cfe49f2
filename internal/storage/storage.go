package storage

import (
	"context"
	"errors"

	"github.com/jwebster45206/room-finder/pkg/building"
)

// ErrBuildingNotFound indicates that no building file has the requested name.
var ErrBuildingNotFound = errors.New("building not found")

// BuildingStore loads static building descriptions.
type BuildingStore interface {
	// ListBuildings maps building display names to their file names
	ListBuildings(ctx context.Context) (map[string]string, error)

	// GetBuilding loads one building file by name
	GetBuilding(ctx context.Context, filename string) (*building.Data, error)
}
