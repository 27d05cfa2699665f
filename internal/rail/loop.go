package rail

import "github.com/hagrid67/flatland-2019/internal/grid"

// Loop builds a closed rectangular track along the border of a width*height
// grid, assembled from vocabulary tiles and their rotations. Every rail cell
// can reach every other, in both traversal senses, which makes the loop a
// convenient fixture for demos and feasibility tests. Dimensions below 2x2
// are clamped.
func Loop(width, height int) *Map {
	if width < 2 {
		width = 2
	}
	if height < 2 {
		height = 2
	}
	m := New(width, height)

	horizontal := grid.TileStraight.Rotate(90)
	for c := 1; c < width-1; c++ {
		m.SetTransitions(grid.Position{Row: 0, Col: c}, horizontal)
		m.SetTransitions(grid.Position{Row: height - 1, Col: c}, horizontal)
	}
	for r := 1; r < height-1; r++ {
		m.SetTransitions(grid.Position{Row: r, Col: 0}, grid.TileStraight)
		m.SetTransitions(grid.Position{Row: r, Col: width - 1}, grid.TileStraight)
	}

	m.SetTransitions(grid.Position{Row: 0, Col: 0}, grid.TileCurveRight)
	m.SetTransitions(grid.Position{Row: 0, Col: width - 1}, grid.TileCurveLeft)
	m.SetTransitions(grid.Position{Row: height - 1, Col: width - 1}, grid.TileCurveRight.Rotate(180))
	m.SetTransitions(grid.Position{Row: height - 1, Col: 0}, grid.TileCurveLeft.Rotate(180))
	return m
}
