// Package rail holds the grid of directional-connectivity bitsets that
// describes a rail network and the queries the generators run against it.
package rail

import (
	"fmt"

	"github.com/hagrid67/flatland-2019/internal/grid"
)

// Map stores a width*height grid of transition bitsets in row-major order.
// It is built once per episode (procedurally or from a snapshot) and is then
// read-only for schedule and malfunction generation; map editing is assumed
// externally serialized.
type Map struct {
	width  int
	height int
	cells  []grid.Transitions
}

// New allocates an empty map with the given dimensions.
func New(width, height int) *Map {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &Map{width: width, height: height, cells: make([]grid.Transitions, width*height)}
}

// FromGrid builds a map from raw row-major cell values, typically decoded
// from a snapshot. Rows must all have the same length.
func FromGrid(rows [][]uint16) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("rail: empty grid")
	}
	m := New(len(rows[0]), len(rows))
	for r, row := range rows {
		if len(row) != m.width {
			return nil, fmt.Errorf("rail: ragged grid: row %d has %d cells, want %d", r, len(row), m.width)
		}
		for c, v := range row {
			m.cells[r*m.width+c] = grid.Transitions(v)
		}
	}
	return m, nil
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.height }

// Contains reports whether p lies inside the grid.
func (m *Map) Contains(p grid.Position) bool {
	return p.Row >= 0 && p.Row < m.height && p.Col >= 0 && p.Col < m.width
}

// index panics on out-of-range coordinates: callers own bounds discipline,
// there is no recovery path for a bad lookup.
func (m *Map) index(row, col int) int {
	if row < 0 || row >= m.height || col < 0 || col >= m.width {
		panic(fmt.Sprintf("rail: position (%d,%d) outside %dx%d grid", row, col, m.width, m.height))
	}
	return row*m.width + col
}

// GetFullTransitions returns the raw 16-bit transition set of a cell. A zero
// value marks the cell as non-traversable.
func (m *Map) GetFullTransitions(row, col int) grid.Transitions {
	return m.cells[m.index(row, col)]
}

// GetTransitions returns the 4-bit exit vector for an agent entering the
// cell facing in, indexed by exit direction.
func (m *Map) GetTransitions(row, col int, in grid.Direction) [grid.NumDirections]bool {
	return m.cells[m.index(row, col)].Outgoing(in)
}

// SetTransitions replaces the full transition set of a cell. Used during
// network construction and map editing only.
func (m *Map) SetTransitions(p grid.Position, t grid.Transitions) {
	m.cells[m.index(p.Row, p.Col)] = t
}

// SetTransition enables or disables a single (in, out) move of a cell.
func (m *Map) SetTransition(p grid.Position, in, out grid.Direction, enabled bool) {
	i := m.index(p.Row, p.Col)
	m.cells[i] = m.cells[i].Set(in, out, enabled)
}

// IsDeadEnd reports whether the cell at p only permits turning around.
func (m *Map) IsDeadEnd(p grid.Position) bool {
	return m.cells[m.index(p.Row, p.Col)].IsDeadEnd()
}

// ValidPositions lists every cell carrying rail, in row-major order.
func (m *Map) ValidPositions() []grid.Position {
	var valid []grid.Position
	for r := 0; r < m.height; r++ {
		for c := 0; c < m.width; c++ {
			if m.cells[r*m.width+c] != 0 {
				valid = append(valid, grid.Position{Row: r, Col: c})
			}
		}
	}
	return valid
}

// Cells exposes the backing slice for renderers and snapshot encoding.
func (m *Map) Cells() []grid.Transitions { return m.cells }
