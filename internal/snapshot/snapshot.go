// Package snapshot encodes and decodes saved scenarios: the rail grid, the
// static agent states, and optionally the malfunction process parameters.
// The wire format is a msgpack mapping so files written by the map editor
// remain readable across tool versions.
package snapshot

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// Agent is the persisted static state of one agent: where it starts, which
// way it faces, and where it is headed. Speeds are not persisted; restored
// agents always begin not moving at speed 1.0.
type Agent struct {
	_msgpack struct{} `msgpack:",as_array"`

	Position  [2]int
	Direction int
	Target    [2]int
}

// Process is the persisted malfunction parameter triple.
type Process struct {
	_msgpack struct{} `msgpack:",as_array"`

	Rate        float64
	MinDuration int
	MaxDuration int
}

// Snapshot is the decoded form of a saved scenario. Grid and Malfunction are
// optional; a missing malfunction record means the disabled process.
type Snapshot struct {
	Grid         [][]uint16 `msgpack:"grid,omitempty"`
	AgentsStatic []Agent    `msgpack:"agents_static"`
	Malfunction  *Process   `msgpack:"malfunction,omitempty"`
}

// Decode parses a msgpack-encoded scenario.
func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("snapshot: decode: %w", err)
	}
	return &s, nil
}

// Encode serializes a scenario to msgpack.
func Encode(s *Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}
	return data, nil
}

// Load reads and decodes a scenario file.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return Decode(data)
}

// Save encodes a scenario and writes it to path.
func Save(path string, s *Snapshot) error {
	data, err := Encode(s)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}
