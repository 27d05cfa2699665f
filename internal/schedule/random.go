package schedule

import (
	"log/slog"

	"github.com/hagrid67/flatland-2019/internal/core"
	"github.com/hagrid67/flatland-2019/internal/grid"
	"github.com/hagrid67/flatland-2019/internal/rail"
)

// feasibilityRetries bounds the global re-sampling loop. When the budget is
// exhausted the generator proceeds with whatever it last computed instead of
// failing, trading correctness for liveness in long training runs.
const feasibilityRetries = 100

// Random scatters agents over the rail cells of the network: positions and
// targets are sampled without replacement from the traversable cells, and
// each agent is oriented so that some path to its target exists.
type Random struct {
	SpeedRatioMap map[float64]float64
}

// freshIndex draws an index in [0, n) distinct from every index in used.
// When no index is free the current pick survives.
func freshIndex(n int, used []int, current int, rng *core.RNG) int {
	inUse := make(map[int]bool, len(used))
	for _, u := range used {
		inUse[u] = true
	}
	free := make([]int, 0, n-len(inUse))
	for i := 0; i < n; i++ {
		if !inUse[i] {
			free = append(free, i)
		}
	}
	if len(free) == 0 {
		return current
	}
	return free[rng.IntN(len(free))]
}

// feasibleDirections lists the entry directions of the start cell for which
// some outgoing move leads to a path reaching target. The move leaves the
// agent on the neighboring cell facing the exit direction; the path query
// starts from that state.
func feasibleDirections(m *rail.Map, pos, target grid.Position, found map[grid.Direction]bool) []grid.Direction {
	t := m.GetFullTransitions(pos.Row, pos.Col)
	var feasible []grid.Direction
	clear(found)
	for in := grid.Direction(0); in < grid.NumDirections; in++ {
		for out := grid.Direction(0); out < grid.NumDirections; out++ {
			if !t.Has(in, out) || found[in] {
				continue
			}
			if m.CheckPathExists(grid.MovePosition(pos, out), out, target) {
				feasible = append(feasible, in)
				found[in] = true
			}
		}
	}
	return feasible
}

// Generate samples numAgents distinct positions and distinct targets among
// the rail cells, then picks a feasible starting direction per agent. Agents
// without any feasible direction are re-sampled globally, up to the retry
// budget.
func (g Random) Generate(m *rail.Map, numAgents int, _ *Hints, rng *core.RNG) (Schedule, error) {
	valid := m.ValidPositions()
	if len(valid) == 0 {
		return Schedule{}, nil
	}
	if len(valid) < numAgents {
		slog.Warn("schedule: fewer rail cells than requested agents, nothing placed",
			"valid", len(valid), "agents", numAgents)
		return Schedule{}, nil
	}

	posIdx := rng.Sample(len(valid), numAgents)
	tgtIdx := rng.Sample(len(valid), numAgents)
	positions := make([]grid.Position, numAgents)
	targets := make([]grid.Position, numAgents)
	for i := 0; i < numAgents; i++ {
		positions[i] = valid[posIdx[i]]
		targets[i] = valid[tgtIdx[i]]
	}

	directions := make([]grid.Direction, numAgents)
	resample := make([]bool, numAgents)
	found := make(map[grid.Direction]bool, grid.NumDirections)

	regenerate := true
	for iter := 0; regenerate && iter < feasibilityRetries; iter++ {
		for i := range resample {
			if !resample[i] {
				continue
			}
			posIdx[i] = freshIndex(len(valid), posIdx, posIdx[i], rng)
			positions[i] = valid[posIdx[i]]
			tgtIdx[i] = freshIndex(len(valid), tgtIdx, tgtIdx[i], rng)
			targets[i] = valid[tgtIdx[i]]
			resample[i] = false
		}

		regenerate = false
		for i := 0; i < numAgents; i++ {
			feasible := feasibleDirections(m, positions[i], targets[i], found)
			if len(feasible) == 0 {
				resample[i] = true
				regenerate = true
				break
			}
			directions[i] = feasible[rng.IntN(len(feasible))]
		}
	}
	if regenerate {
		slog.Warn("schedule: feasibility retries exhausted, keeping last computed placement")
	}

	return Schedule{
		Positions:  positions,
		Directions: directions,
		Targets:    targets,
		Speeds:     SpeedInitialization(numAgents, g.SpeedRatioMap, rng),
	}, nil
}

func init() {
	Register("random", func(opts Options) Generator {
		return Random{SpeedRatioMap: opts.SpeedRatioMap}
	})
}
