package schedule

import (
	"fmt"

	"github.com/hagrid67/flatland-2019/internal/core"
	"github.com/hagrid67/flatland-2019/internal/grid"
	"github.com/hagrid67/flatland-2019/internal/rail"
)

// Complex attaches speeds to start/target pairs and facings that a railway
// topology generator has already computed and passed in through the hints.
type Complex struct {
	SpeedRatioMap map[float64]float64
}

// Generate truncates the precomputed placement to numAgents and draws a
// speed per agent.
func (g Complex) Generate(_ *rail.Map, numAgents int, hints *Hints, rng *core.RNG) (Schedule, error) {
	if hints == nil || hints.StartGoal == nil {
		return Schedule{}, fmt.Errorf("schedule: complex generator requires start_goal hint")
	}
	if hints.StartDir == nil {
		return Schedule{}, fmt.Errorf("schedule: complex generator requires start_dir hint")
	}

	n := numAgents
	if len(hints.StartGoal) < n {
		n = len(hints.StartGoal)
	}
	if len(hints.StartDir) < n {
		n = len(hints.StartDir)
	}

	s := Schedule{
		Positions:  make([]grid.Position, n),
		Directions: make([]grid.Direction, n),
		Targets:    make([]grid.Position, n),
	}
	for i := 0; i < n; i++ {
		s.Positions[i] = hints.StartGoal[i][0]
		s.Targets[i] = hints.StartGoal[i][1]
		s.Directions[i] = hints.StartDir[i]
	}
	s.Speeds = SpeedInitialization(n, g.SpeedRatioMap, rng)
	return s, nil
}

func init() {
	Register("complex", func(opts Options) Generator {
		return Complex{SpeedRatioMap: opts.SpeedRatioMap}
	})
}
