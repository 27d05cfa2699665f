package schedule

import (
	"fmt"

	"github.com/hagrid67/flatland-2019/internal/core"
	"github.com/hagrid67/flatland-2019/internal/grid"
	"github.com/hagrid67/flatland-2019/internal/rail"
	"github.com/hagrid67/flatland-2019/internal/snapshot"
)

// FromFile restores the agent placement of a saved scenario. Agents come
// back not moving, and since speed ratios are not persisted every agent runs
// at speed 1.0.
type FromFile struct {
	Path string
}

// Generate decodes the snapshot; the requested agent count and hints are
// ignored in favor of the persisted agents.
func (g FromFile) Generate(_ *rail.Map, _ int, _ *Hints, _ *core.RNG) (Schedule, error) {
	snap, err := snapshot.Load(g.Path)
	if err != nil {
		return Schedule{}, fmt.Errorf("schedule: %w", err)
	}

	n := len(snap.AgentsStatic)
	s := Schedule{
		Positions:  make([]grid.Position, n),
		Directions: make([]grid.Direction, n),
		Targets:    make([]grid.Position, n),
		Speeds:     make([]float64, n),
	}
	for i, a := range snap.AgentsStatic {
		s.Positions[i] = grid.Position{Row: a.Position[0], Col: a.Position[1]}
		s.Directions[i] = grid.Direction(a.Direction)
		s.Targets[i] = grid.Position{Row: a.Target[0], Col: a.Target[1]}
		s.Speeds[i] = 1.0
	}
	return s, nil
}

func init() {
	Register("file", func(opts Options) Generator {
		return FromFile{Path: opts.Path}
	})
}
