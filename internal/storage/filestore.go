package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/jwebster45206/room-finder/pkg/building"
)

// FileStore reads building files (.json, .yaml, .yml) from <dataDir>/buildings.
type FileStore struct {
	logger  *slog.Logger
	dataDir string
}

// Ensure FileStore implements BuildingStore interface
var _ BuildingStore = (*FileStore)(nil)

func NewFileStore(dataDir string, logger *slog.Logger) *FileStore {
	if dataDir == "" {
		dataDir = "./data"
	}
	return &FileStore{
		logger:  logger,
		dataDir: dataDir,
	}
}

func (s *FileStore) buildingsDir() string {
	return filepath.Join(s.dataDir, "buildings")
}

func (s *FileStore) ListBuildings(ctx context.Context) (map[string]string, error) {
	buildings := make(map[string]string)

	err := filepath.WalkDir(s.buildingsDir(), func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !IsBuildingFile(path) {
			return nil
		}

		data, err := LoadFile(path)
		if err != nil {
			s.logger.Warn("Skipping unreadable building file", "path", path, "error", err)
			return nil
		}

		filename := filepath.Base(path)
		name := data.Name
		if name == "" {
			name = strings.TrimSuffix(filename, filepath.Ext(filename))
		}
		buildings[name] = filename
		return nil
	})
	if err != nil {
		s.logger.Error("Failed to walk buildings directory", "error", err)
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}

	return buildings, nil
}

func (s *FileStore) GetBuilding(ctx context.Context, filename string) (*building.Data, error) {
	if filename == "" || strings.Contains(filename, "..") || strings.ContainsAny(filename, `/\`) {
		return nil, fmt.Errorf("invalid building filename: %q", filename)
	}

	path := filepath.Join(s.buildingsDir(), filename)
	s.logger.Debug("Loading building", "filename", filename, "full_path", path)

	data, err := LoadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrBuildingNotFound, filename)
		}
		return nil, err
	}
	return data, nil
}

// IsBuildingFile reports whether path has a supported building file extension.
func IsBuildingFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// LoadFile reads and strictly decodes a building file from any path.
func LoadFile(path string) (*building.Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(filepath.Base(path), raw)
}

// Decode parses building data, choosing the format from the file name.
// Unknown fields are rejected in both formats.
func Decode(filename string, raw []byte) (*building.Data, error) {
	var d building.Data

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
		}
	case ".yaml", ".yml":
		if err := yaml.UnmarshalWithOptions(raw, &d, yaml.DisallowUnknownField()); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", filename, err)
		}
	default:
		return nil, fmt.Errorf("unsupported building file type: %s", filename)
	}

	if len(d.Rooms) == 0 {
		return nil, fmt.Errorf("building file %s defines no rooms", filename)
	}
	return &d, nil
}
