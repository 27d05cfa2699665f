package schedule

import (
	"fmt"
	"log/slog"

	"github.com/hagrid67/flatland-2019/internal/core"
	"github.com/hagrid67/flatland-2019/internal/grid"
	"github.com/hagrid67/flatland-2019/internal/rail"
)

// stationRetries bounds the collision retry loop when drawing station cells.
// It is a liveness safety valve: on exhaustion the assignment proceeds with
// a possibly shared cell and a warning.
const stationRetries = 100

// Sparse places agents on the station cells of a node-based rail topology:
// each agent gets a random unused station at its start node and another at
// its target node.
type Sparse struct {
	SpeedRatioMap map[float64]float64
}

// pickStation draws a random cell from the pool, retrying while the draw
// collides with an already assigned cell. Uniqueness is abandoned after the
// retry budget.
func pickStation(pool []grid.Position, taken map[grid.Position]bool, rng *core.RNG, kind string) grid.Position {
	p := pool[rng.IntN(len(pool))]
	for tries := 0; taken[p]; tries++ {
		if tries >= stationRetries {
			slog.Warn("schedule: could not find an unused station cell, assignment will not be unique",
				"kind", kind)
			break
		}
		p = pool[rng.IntN(len(pool))]
	}
	return p
}

// Generate assigns stations agent by agent in submission order; there is no
// global re-optimization.
func (g Sparse) Generate(m *rail.Map, numAgents int, hints *Hints, rng *core.RNG) (Schedule, error) {
	if hints == nil || hints.TrainStations == nil {
		return Schedule{}, fmt.Errorf("schedule: sparse generator requires train_stations hint")
	}
	if hints.AgentStartTargetNodes == nil {
		return Schedule{}, fmt.Errorf("schedule: sparse generator requires agent_start_targets_nodes hint")
	}
	if hints.NumAgents > 0 {
		numAgents = hints.NumAgents
	}
	if numAgents > len(hints.AgentStartTargetNodes) {
		return Schedule{}, fmt.Errorf("schedule: sparse generator has node pairs for %d agents, %d requested",
			len(hints.AgentStartTargetNodes), numAgents)
	}

	s := Schedule{
		Positions:  make([]grid.Position, 0, numAgents),
		Directions: make([]grid.Direction, 0, numAgents),
		Targets:    make([]grid.Position, 0, numAgents),
	}
	takenTargets := make(map[grid.Position]bool)
	takenStarts := make(map[grid.Position]bool)

	for agent := 0; agent < numAgents; agent++ {
		startNode := hints.AgentStartTargetNodes[agent][0]
		targetNode := hints.AgentStartTargetNodes[agent][1]
		targetPool := hints.TrainStations[targetNode]
		startPool := hints.TrainStations[startNode]
		if len(targetPool) == 0 || len(startPool) == 0 {
			return Schedule{}, fmt.Errorf("schedule: sparse generator has no stations for nodes %d/%d",
				startNode, targetNode)
		}

		target := pickStation(targetPool, takenTargets, rng, "target")
		takenTargets[target] = true
		s.Targets = append(s.Targets, target)

		start := pickStation(startPool, takenStarts, rng, "start")
		takenStarts[start] = true
		s.Positions = append(s.Positions, start)

		// Face the agent the first way it could actually leave the cell.
		facing := grid.North
		for dir := grid.Direction(0); dir < grid.NumDirections; dir++ {
			if m.GetFullTransitions(start.Row, start.Col).HasOutgoing(dir) {
				facing = dir
				break
			}
		}
		s.Directions = append(s.Directions, facing)
	}

	s.Speeds = SpeedInitialization(numAgents, g.SpeedRatioMap, rng)
	return s, nil
}

func init() {
	Register("sparse", func(opts Options) Generator {
		return Sparse{SpeedRatioMap: opts.SpeedRatioMap}
	})
}
