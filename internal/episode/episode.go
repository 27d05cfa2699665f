// Package episode is a demo-grade step loop that wires the core together:
// it asks a schedule generator for the initial placement, advances agents
// along legal transitions, and queries the malfunction generator once per
// agent per step. The simulation loop of a real training environment lives
// outside this repository; this one exists for the CLI demo and the viewer.
package episode

import (
	"github.com/hagrid67/flatland-2019/internal/core"
	"github.com/hagrid67/flatland-2019/internal/grid"
	"github.com/hagrid67/flatland-2019/internal/malfunction"
	"github.com/hagrid67/flatland-2019/internal/rail"
	"github.com/hagrid67/flatland-2019/internal/schedule"
)

// Display cell classes, used as palette indices by the renderer.
const (
	CellEmpty uint8 = iota
	CellRail
	CellTarget
	CellAgent
	CellBroken
)

// Agent is the mutable per-agent state of a running episode.
type Agent struct {
	Position  grid.Position
	Direction grid.Direction
	Target    grid.Position
	Speed     float64

	// Malfunction counts the remaining broken steps; the agent does not
	// move while it is positive.
	Malfunction int
	Arrived     bool

	progress float64
}

// Episode runs one placement of agents on a rail map.
type Episode struct {
	railMap  *rail.Map
	gen      schedule.Generator
	hints    *schedule.Hints
	count    int
	failures malfunction.Generator

	rng     *core.RNG
	agents  []Agent
	display []uint8
	steps   int
}

// New builds an episode and performs the initial placement with the given
// seed.
func New(m *rail.Map, gen schedule.Generator, hints *schedule.Hints, numAgents int,
	failures malfunction.Generator, seed int64) (*Episode, error) {
	e := &Episode{
		railMap:  m,
		gen:      gen,
		hints:    hints,
		count:    numAgents,
		failures: failures,
		display:  make([]uint8, m.Width()*m.Height()),
	}
	if err := e.Reset(seed); err != nil {
		return nil, err
	}
	return e, nil
}

// Reset re-runs the placement with a fresh seeded source. Equal seeds
// reproduce the episode exactly.
func (e *Episode) Reset(seed int64) error {
	e.rng = core.NewRNG(seed)
	e.steps = 0

	sched, err := e.gen.Generate(e.railMap, e.count, e.hints, e.rng)
	if err != nil {
		return err
	}
	e.agents = make([]Agent, sched.Len())
	for i := range e.agents {
		e.agents[i] = Agent{
			Position:  sched.Positions[i],
			Direction: sched.Directions[i],
			Target:    sched.Targets[i],
			Speed:     sched.Speeds[i],
		}
	}
	e.rebuildDisplay()
	return nil
}

// Step advances every agent by one tick.
func (e *Episode) Step() {
	e.steps++
	for i := range e.agents {
		a := &e.agents[i]
		if a.Arrived {
			continue
		}

		if broken := e.failures.Generate(a.Malfunction, e.rng); broken > 0 {
			a.Malfunction = broken
		}
		if a.Malfunction > 0 {
			a.Malfunction--
			continue
		}

		a.progress += a.Speed
		if a.progress < 1 {
			continue
		}
		a.progress = 0

		t := e.railMap.GetFullTransitions(a.Position.Row, a.Position.Col)
		var exits []grid.Direction
		for out := grid.Direction(0); out < grid.NumDirections; out++ {
			if t.Has(a.Direction, out) {
				exits = append(exits, out)
			}
		}
		if len(exits) == 0 {
			continue
		}
		out := exits[e.rng.IntN(len(exits))]
		a.Position = grid.MovePosition(a.Position, out)
		a.Direction = out
		if a.Position == a.Target {
			a.Arrived = true
		}
	}
	e.rebuildDisplay()
}

func (e *Episode) rebuildDisplay() {
	w := e.railMap.Width()
	for i, t := range e.railMap.Cells() {
		if t != 0 {
			e.display[i] = CellRail
		} else {
			e.display[i] = CellEmpty
		}
	}
	for i := range e.agents {
		a := &e.agents[i]
		e.display[a.Target.Row*w+a.Target.Col] = CellTarget
	}
	for i := range e.agents {
		a := &e.agents[i]
		if a.Arrived {
			continue
		}
		class := CellAgent
		if a.Malfunction > 0 {
			class = CellBroken
		}
		e.display[a.Position.Row*w+a.Position.Col] = class
	}
}

// Cells exposes the display buffer for the renderer.
func (e *Episode) Cells() []uint8 { return e.display }

// Agents exposes the live agent states.
func (e *Episode) Agents() []Agent { return e.agents }

// Width returns the grid width.
func (e *Episode) Width() int { return e.railMap.Width() }

// Height returns the grid height.
func (e *Episode) Height() int { return e.railMap.Height() }

// Steps returns the number of ticks run since the last reset.
func (e *Episode) Steps() int { return e.steps }

// Arrived counts the agents that reached their target.
func (e *Episode) Arrived() int {
	n := 0
	for i := range e.agents {
		if e.agents[i].Arrived {
			n++
		}
	}
	return n
}
