package schedule

import (
	"path/filepath"
	"testing"

	"github.com/hagrid67/flatland-2019/internal/core"
	"github.com/hagrid67/flatland-2019/internal/grid"
	"github.com/hagrid67/flatland-2019/internal/rail"
	"github.com/hagrid67/flatland-2019/internal/snapshot"
)

func checkAligned(t *testing.T, s Schedule, want int) {
	t.Helper()
	if len(s.Positions) != want || len(s.Directions) != want ||
		len(s.Targets) != want || len(s.Speeds) != want {
		t.Fatalf("sequence lengths %d/%d/%d/%d, want all %d",
			len(s.Positions), len(s.Directions), len(s.Targets), len(s.Speeds), want)
	}
}

func TestComplexUsesHints(t *testing.T) {
	m := rail.Loop(6, 4)
	hints := &Hints{
		StartGoal: [][2]grid.Position{
			{{Row: 0, Col: 1}, {Row: 3, Col: 2}},
			{{Row: 0, Col: 2}, {Row: 3, Col: 3}},
			{{Row: 1, Col: 0}, {Row: 2, Col: 5}},
		},
		StartDir: []grid.Direction{grid.East, grid.East, grid.South},
	}

	s, err := Complex{}.Generate(m, 2, hints, core.NewRNG(1))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	checkAligned(t, s, 2)
	if s.Positions[1] != hints.StartGoal[1][0] || s.Targets[1] != hints.StartGoal[1][1] {
		t.Fatal("placement must come straight from the hints, truncated to the agent count")
	}
	if s.Directions[0] != grid.East {
		t.Fatal("facing must come straight from the hints")
	}
	for _, sp := range s.Speeds {
		if sp != 1.0 {
			t.Fatalf("speed %v, want 1.0 without a ratio map", sp)
		}
	}
}

func TestComplexMissingHints(t *testing.T) {
	m := rail.Loop(6, 4)
	if _, err := (Complex{}).Generate(m, 1, nil, core.NewRNG(1)); err == nil {
		t.Fatal("missing hints must be a configuration error")
	}
	if _, err := (Complex{}).Generate(m, 1, &Hints{StartDir: []grid.Direction{grid.East}}, core.NewRNG(1)); err == nil {
		t.Fatal("missing start_goal must be a configuration error")
	}
	if _, err := (Complex{}).Generate(m, 1, &Hints{StartGoal: [][2]grid.Position{{}}}, core.NewRNG(1)); err == nil {
		t.Fatal("missing start_dir must be a configuration error")
	}
}

func TestSparsePlacesAgentsOnStations(t *testing.T) {
	m := rail.Loop(8, 5)
	stations := map[int][]grid.Position{
		0: {{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}},
		1: {{Row: 4, Col: 1}, {Row: 4, Col: 2}, {Row: 4, Col: 3}},
	}
	hints := &Hints{
		TrainStations:         stations,
		AgentStartTargetNodes: [][2]int{{0, 1}, {1, 0}, {0, 1}},
		NumAgents:             3,
	}

	s, err := Sparse{}.Generate(m, 0, hints, core.NewRNG(5))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	checkAligned(t, s, 3)

	member := func(pool []grid.Position, p grid.Position) bool {
		for _, q := range pool {
			if q == p {
				return true
			}
		}
		return false
	}
	for i, pair := range hints.AgentStartTargetNodes {
		if !member(stations[pair[0]], s.Positions[i]) {
			t.Fatalf("agent %d start %v not among node %d stations", i, s.Positions[i], pair[0])
		}
		if !member(stations[pair[1]], s.Targets[i]) {
			t.Fatalf("agent %d target %v not among node %d stations", i, s.Targets[i], pair[1])
		}
	}

	// Top-row stations sit on horizontal track whose first entry with any
	// exit, scanning N, E, S, W, is East.
	for i, pair := range hints.AgentStartTargetNodes {
		if pair[0] == 0 && s.Directions[i] != grid.East {
			t.Fatalf("agent %d on the top row faces %v, want E", i, s.Directions[i])
		}
	}
}

func TestSparseUniqueWhilePoolLasts(t *testing.T) {
	m := rail.Loop(8, 5)
	stations := map[int][]grid.Position{
		0: {{Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4}},
	}
	hints := &Hints{
		TrainStations:         stations,
		AgentStartTargetNodes: [][2]int{{0, 0}, {0, 0}, {0, 0}},
		NumAgents:             3,
	}

	s, err := Sparse{}.Generate(m, 0, hints, core.NewRNG(9))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	seenStart := map[grid.Position]bool{}
	seenTarget := map[grid.Position]bool{}
	for i := 0; i < 3; i++ {
		if seenStart[s.Positions[i]] {
			t.Fatalf("start %v assigned twice with pool to spare", s.Positions[i])
		}
		if seenTarget[s.Targets[i]] {
			t.Fatalf("target %v assigned twice with pool to spare", s.Targets[i])
		}
		seenStart[s.Positions[i]] = true
		seenTarget[s.Targets[i]] = true
	}
}

func TestSparseMissingHints(t *testing.T) {
	m := rail.Loop(6, 4)
	if _, err := (Sparse{}).Generate(m, 1, nil, core.NewRNG(1)); err == nil {
		t.Fatal("missing hints must be a configuration error")
	}
	if _, err := (Sparse{}).Generate(m, 1, &Hints{TrainStations: map[int][]grid.Position{}}, core.NewRNG(1)); err == nil {
		t.Fatal("missing agent_start_targets_nodes must be a configuration error")
	}
}

func TestRandomPlacesFeasibleAgents(t *testing.T) {
	m := rail.Loop(8, 6)
	s, err := Random{}.Generate(m, 5, nil, core.NewRNG(1234))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	checkAligned(t, s, 5)

	seenPos := map[grid.Position]bool{}
	seenTgt := map[grid.Position]bool{}
	for i := 0; i < 5; i++ {
		pos, dir := s.Positions[i], s.Directions[i]
		tr := m.GetFullTransitions(pos.Row, pos.Col)
		if tr == 0 {
			t.Fatalf("agent %d placed off the rails at %v", i, pos)
		}
		if !tr.HasOutgoing(dir) {
			t.Fatalf("agent %d facing %v has no legal move from %v", i, dir, pos)
		}
		if seenPos[pos] {
			t.Fatalf("position %v assigned twice", pos)
		}
		if seenTgt[s.Targets[i]] {
			t.Fatalf("target %v assigned twice", s.Targets[i])
		}
		seenPos[pos] = true
		seenTgt[s.Targets[i]] = true
	}
}

func TestRandomDeterministic(t *testing.T) {
	m := rail.Loop(8, 6)
	a, _ := Random{}.Generate(m, 4, nil, core.NewRNG(77))
	b, _ := Random{}.Generate(m, 4, nil, core.NewRNG(77))
	for i := 0; i < 4; i++ {
		if a.Positions[i] != b.Positions[i] || a.Targets[i] != b.Targets[i] ||
			a.Directions[i] != b.Directions[i] {
			t.Fatalf("agent %d differs across equal seeds", i)
		}
	}
}

func TestRandomTooManyAgents(t *testing.T) {
	m := rail.Loop(3, 3) // 8 rail cells
	s, err := Random{}.Generate(m, 9, nil, core.NewRNG(2))
	if err != nil {
		t.Fatalf("infeasible placement is a warning, not an error: %v", err)
	}
	checkAligned(t, s, 0)
}

func TestRandomEmptyMap(t *testing.T) {
	m := rail.New(4, 4)
	s, err := Random{}.Generate(m, 2, nil, core.NewRNG(3))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	checkAligned(t, s, 0)
}

func TestFromFileRestoresAgents(t *testing.T) {
	m := rail.Loop(6, 4)
	path := filepath.Join(t.TempDir(), "scenario.mpk")
	err := snapshot.Save(path, &snapshot.Snapshot{
		AgentsStatic: []snapshot.Agent{
			{Position: [2]int{0, 1}, Direction: int(grid.East), Target: [2]int{3, 2}},
			{Position: [2]int{1, 0}, Direction: int(grid.South), Target: [2]int{0, 4}},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	s, err := FromFile{Path: path}.Generate(m, 99, nil, nil)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	checkAligned(t, s, 2)
	if s.Positions[0] != (grid.Position{Row: 0, Col: 1}) || s.Directions[0] != grid.East {
		t.Fatalf("agent 0 restored as %v facing %v", s.Positions[0], s.Directions[0])
	}
	if s.Targets[1] != (grid.Position{Row: 0, Col: 4}) {
		t.Fatalf("agent 1 target restored as %v", s.Targets[1])
	}
	for _, sp := range s.Speeds {
		if sp != 1.0 {
			t.Fatal("speeds are not persisted; restored agents run at 1.0")
		}
	}

	if _, err := (FromFile{Path: filepath.Join(t.TempDir(), "missing.mpk")}).Generate(m, 1, nil, nil); err == nil {
		t.Fatal("a missing snapshot is a configuration error")
	}
}
