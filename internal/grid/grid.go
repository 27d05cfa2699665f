// Package grid provides the cell coordinate system and the directional
// transition bitset shared by the rail map and the agent generators.
package grid

import "fmt"

// Position identifies a grid cell. Row 0 is the top edge; rows grow downward.
type Position struct {
	Row int
	Col int
}

// String formats the position as (row,col).
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Direction is one of the four compass directions, ordered cyclically so that
// rotation is modular arithmetic.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// NumDirections is the size of the direction alphabet.
const NumDirections = 4

// Rotate returns the direction turned clockwise by n quarter turns. Negative
// n turns counter-clockwise.
func (d Direction) Rotate(n int) Direction {
	return Direction(((int(d)+n)%NumDirections + NumDirections) % NumDirections)
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction { return d.Rotate(2) }

// Delta returns the row/col displacement of one step in direction d.
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case North:
		return -1, 0
	case East:
		return 0, 1
	case South:
		return 1, 0
	default:
		return 0, -1
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// MovePosition returns the neighboring cell one step from p in direction d.
func MovePosition(p Position, d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}
