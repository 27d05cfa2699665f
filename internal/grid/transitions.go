package grid

import "math/bits"

// Transitions encodes the legal (entry direction, exit direction) moves for a
// single cell as a 16-bit set. The bit for the pair (in, out) is at index
// 4*in + out. An agent that enters a cell facing in and leaves toward out
// arrives at the neighbor facing out. A zero value means the cell carries no
// rail at all.
type Transitions uint16

func transitionBit(in, out Direction) Transitions {
	return 1 << (uint(in)*NumDirections + uint(out))
}

// Has reports whether the move from entry direction in toward out is legal.
func (t Transitions) Has(in, out Direction) bool {
	return t&transitionBit(in, out) != 0
}

// Set returns a copy of t with the (in, out) move enabled or disabled.
func (t Transitions) Set(in, out Direction, enabled bool) Transitions {
	if enabled {
		return t | transitionBit(in, out)
	}
	return t &^ transitionBit(in, out)
}

// Outgoing returns the 4-bit exit vector for entry direction in, indexed by
// exit direction.
func (t Transitions) Outgoing(in Direction) [NumDirections]bool {
	var out [NumDirections]bool
	for d := Direction(0); d < NumDirections; d++ {
		out[d] = t.Has(in, d)
	}
	return out
}

// HasOutgoing reports whether any exit is legal for entry direction in.
func (t Transitions) HasOutgoing(in Direction) bool {
	return t&(0b1111<<(uint(in)*NumDirections)) != 0
}

// Count returns the number of legal (in, out) pairs.
func (t Transitions) Count() int { return bits.OnesCount16(uint16(t)) }

// Rotate turns every (in, out) pair clockwise by degrees, which must be a
// multiple of 90. Four quarter turns compose to the identity.
func (t Transitions) Rotate(degrees int) Transitions {
	steps := ((degrees/90)%NumDirections + NumDirections) % NumDirections
	var rotated Transitions
	for in := Direction(0); in < NumDirections; in++ {
		for out := Direction(0); out < NumDirections; out++ {
			if t.Has(in, out) {
				rotated = rotated.Set(in.Rotate(steps), out.Rotate(steps), true)
			}
		}
	}
	return rotated
}

// IsDeadEnd reports whether the cell offers exactly one distinct exit
// direction and that exit reverses an entry, i.e. the only way through the
// cell is to turn around.
func (t Transitions) IsDeadEnd() bool {
	if t == 0 {
		return false
	}
	exit := Direction(-1)
	reversal := false
	for in := Direction(0); in < NumDirections; in++ {
		for out := Direction(0); out < NumDirections; out++ {
			if !t.Has(in, out) {
				continue
			}
			if exit >= 0 && exit != out {
				return false
			}
			exit = out
			if out == in.Reverse() {
				reversal = true
			}
		}
	}
	return reversal
}

type move struct {
	in  Direction
	out Direction
}

func joinMoves(moves ...move) Transitions {
	var t Transitions
	for _, m := range moves {
		t = t.Set(m.in, m.out, true)
	}
	return t
}

// The rail tile vocabulary: the closed set of connectivity patterns a valid
// rail network is assembled from, each listed as its explicit (in, out)
// pairs. Rotated variants are derived with Rotate.
var (
	TileEmpty    = Transitions(0)
	TileStraight = joinMoves(move{North, North}, move{South, South})
	TileSimpleSwitch = joinMoves(
		move{North, North}, move{North, West},
		move{East, South}, move{South, South})
	TileDiamondCrossing = joinMoves(
		move{North, North}, move{East, East},
		move{South, South}, move{West, West})
	TileSingleSlip = joinMoves(
		move{North, North}, move{North, West},
		move{East, East}, move{East, South},
		move{South, South}, move{West, West})
	TileDoubleSlip = joinMoves(
		move{North, North}, move{North, East},
		move{East, North}, move{East, East},
		move{South, South}, move{South, West},
		move{West, South}, move{West, West})
	TileSymmetricalSwitch = joinMoves(
		move{North, East}, move{North, West},
		move{East, South}, move{West, South})
	TileDeadEnd    = joinMoves(move{North, South})
	TileCurveRight = joinMoves(move{North, East}, move{West, South})
	TileCurveLeft  = joinMoves(move{North, West}, move{East, South})
	TileSimpleSwitchMirrored = joinMoves(
		move{North, North}, move{North, East},
		move{South, South}, move{West, South})
)

// Vocabulary lists the base tiles in their canonical order. Index 0 is the
// empty cell.
var Vocabulary = []Transitions{
	TileEmpty,
	TileStraight,
	TileSimpleSwitch,
	TileDiamondCrossing,
	TileSingleSlip,
	TileDoubleSlip,
	TileSymmetricalSwitch,
	TileDeadEnd,
	TileCurveRight,
	TileCurveLeft,
	TileSimpleSwitchMirrored,
}
