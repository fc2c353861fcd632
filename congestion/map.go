package congestion

import "github.com/katalvlaran/gridroute/grid"

// Map is a three-dimensional integer grid shaped like grid.Grid. Entry at
// (layer, y, x) counts the currently routed nets whose path contains that
// cell, excluding Obstacle cells.
type Map struct {
	width, height int
	counts        [grid.NumLayers][][]int
}

// Build recomputes a Map from the current routed-nets map. Cells belonging
// to an Obstacle are never counted: congestion is a routing-soft signal,
// not a measure of blocked space.
func Build(g *grid.Grid, routed map[string][]grid.Cell) *Map {
	m := &Map{width: g.Width, height: g.Height}
	for l := 0; l < grid.NumLayers; l++ {
		rows := make([][]int, g.Height)
		for y := range rows {
			rows[y] = make([]int, g.Width)
		}
		m.counts[l] = rows
	}

	for _, path := range routed {
		for _, c := range path {
			if !g.InBounds(c) || g.State(c) == grid.Obstacle {
				continue
			}
			m.counts[c.Layer][c.Y][c.X]++
		}
	}
	return m
}

// At returns the congestion count at c. Returns 0 for out-of-bounds cells
// rather than panicking, since callers may probe neighbor candidates before
// validating bounds themselves.
func (m *Map) At(c grid.Cell) int {
	if c.Layer < 0 || c.Layer >= grid.NumLayers ||
		c.X < 0 || c.X >= m.width || c.Y < 0 || c.Y >= m.height {
		return 0
	}
	return m.counts[c.Layer][c.Y][c.X]
}
