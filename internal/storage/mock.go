package storage

import (
	"context"
	"fmt"
	"sync"

	"github.com/jwebster45206/room-finder/pkg/building"
)

// MockStore is an in-memory BuildingStore for testing
type MockStore struct {
	mu        sync.RWMutex
	buildings map[string]*building.Data
	err       error
}

// Ensure MockStore implements BuildingStore interface
var _ BuildingStore = (*MockStore)(nil)

func NewMockStore() *MockStore {
	return &MockStore{
		buildings: make(map[string]*building.Data),
	}
}

// AddBuilding registers building data under a file name
func (m *MockStore) AddBuilding(filename string, d *building.Data) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buildings[filename] = d
}

// SetError makes every call fail with err
func (m *MockStore) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

func (m *MockStore) ListBuildings(ctx context.Context) (map[string]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}

	out := make(map[string]string, len(m.buildings))
	for filename, d := range m.buildings {
		out[d.Name] = filename
	}
	return out, nil
}

func (m *MockStore) GetBuilding(ctx context.Context, filename string) (*building.Data, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.err != nil {
		return nil, m.err
	}

	d, ok := m.buildings[filename]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBuildingNotFound, filename)
	}
	return d, nil
}
