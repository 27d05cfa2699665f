// Package schedule places agents on a rail network: each generator variant
// produces the index-aligned initial positions, facings, targets, and speeds
// for a requested number of agents.
package schedule

import (
	"sort"

	"github.com/hagrid67/flatland-2019/internal/core"
	"github.com/hagrid67/flatland-2019/internal/grid"
	"github.com/hagrid67/flatland-2019/internal/rail"
)

// Schedule is the initial per-agent assignment for an episode. The four
// slices share index-to-agent correspondence and always have equal length.
type Schedule struct {
	Positions  []grid.Position
	Directions []grid.Direction
	Targets    []grid.Position
	Speeds     []float64
}

// Len returns the number of placed agents.
func (s Schedule) Len() int { return len(s.Positions) }

// Hints carries the generator-specific placement inputs. Every field is
// optional; a variant that needs a field the caller left unset reports a
// configuration error.
type Hints struct {
	// StartGoal pairs precomputed start and target cells per agent, with
	// StartDir the matching initial facings (complex variant).
	StartGoal [][2]grid.Position
	StartDir  []grid.Direction

	// TrainStations maps a topology node id to its candidate station cells,
	// and AgentStartTargetNodes pairs (start node, target node) per agent
	// (sparse variant). NumAgents overrides the requested count when set.
	TrainStations         map[int][]grid.Position
	AgentStartTargetNodes [][2]int
	NumAgents             int
}

// Generator produces an initial agent placement for a rail network. The
// result is a pure function of the inputs and the supplied random source.
type Generator interface {
	Generate(m *rail.Map, numAgents int, hints *Hints, rng *core.RNG) (Schedule, error)
}

// Options configures a generator built through the registry.
type Options struct {
	// SpeedRatioMap assigns a probability weight to each possible speed
	// value. Weights are assumed to sum to 1. A nil map means every agent
	// runs at speed 1.0.
	SpeedRatioMap map[float64]float64
	// Path locates the saved scenario for the file-backed variant.
	Path string
}

// Factory constructs a Generator from shared options.
type Factory func(opts Options) Generator

var generators = map[string]Factory{}

// Register adds a generator factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	generators[name] = f
}

// Generators exposes the registry of available generator factories.
func Generators() map[string]Factory {
	return generators
}

// SpeedInitialization draws n independent speeds from the categorical
// distribution described by ratios. Speeds are iterated in sorted order so a
// seeded source always reproduces the same draw. A nil or empty map yields
// speed 1.0 for every agent.
func SpeedInitialization(n int, ratios map[float64]float64, rng *core.RNG) []float64 {
	speeds := make([]float64, n)
	if len(ratios) == 0 {
		for i := range speeds {
			speeds[i] = 1.0
		}
		return speeds
	}

	values := make([]float64, 0, len(ratios))
	for v := range ratios {
		values = append(values, v)
	}
	sort.Float64s(values)

	for i := range speeds {
		draw := rng.Float64()
		acc := 0.0
		speeds[i] = values[len(values)-1]
		for _, v := range values {
			acc += ratios[v]
			if draw < acc {
				speeds[i] = v
				break
			}
		}
	}
	return speeds
}
