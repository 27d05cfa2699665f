package rail

import "github.com/hagrid67/flatland-2019/internal/grid"

type railState struct {
	pos grid.Position
	dir grid.Direction
}

// CheckPathExists reports whether a sequence of legal transitions leads from
// start, facing dir, to the target cell in any orientation. It is a breadth
// first search over (position, direction) states; the visited set makes it
// terminate on cyclic networks. Off-rail or out-of-bounds endpoints yield
// false.
func (m *Map) CheckPathExists(start grid.Position, dir grid.Direction, target grid.Position) bool {
	if !m.Contains(start) || !m.Contains(target) {
		return false
	}
	if m.GetFullTransitions(start.Row, start.Col) == 0 ||
		m.GetFullTransitions(target.Row, target.Col) == 0 {
		return false
	}

	visited := make(map[railState]bool)
	queue := []railState{{pos: start, dir: dir}}
	visited[queue[0]] = true

	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		if s.pos == target {
			return true
		}
		t := m.GetFullTransitions(s.pos.Row, s.pos.Col)
		for out := grid.Direction(0); out < grid.NumDirections; out++ {
			if !t.Has(s.dir, out) {
				continue
			}
			next := railState{pos: grid.MovePosition(s.pos, out), dir: out}
			if !m.Contains(next.pos) || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return false
}
