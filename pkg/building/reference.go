package building

import (
	_ "embed"
	"fmt"

	"github.com/goccy/go-yaml"
)

//go:embed headquarters.yaml
var referenceYAML []byte

// ReferenceData returns a fresh copy of the bundled three-floor building.
func ReferenceData() (*Data, error) {
	var d Data
	if err := yaml.Unmarshal(referenceYAML, &d); err != nil {
		return nil, fmt.Errorf("failed to parse reference building: %w", err)
	}
	return &d, nil
}

// Reference builds the graph of the bundled building. It panics if the
// embedded data is invalid.
func Reference() *Graph {
	d, err := ReferenceData()
	if err != nil {
		panic(err)
	}
	g, err := NewGraph(d)
	if err != nil {
		panic(err)
	}
	return g
}
