package ripup

import "github.com/katalvlaran/gridroute/grid"

// DefaultMaxIterations is the rip-up loop's hard iteration cap.
const DefaultMaxIterations = 5

// conflictScore counts cells of a routed net's path that share a layer with
// some pin of the failing net and fall within Manhattan distance 2 of that
// pin, weighting each such (cell, pin) incidence by 5.
func conflictScore(path []grid.Cell, failingPins []grid.Cell) int {
	score := 0
	for _, cell := range path {
		for _, pin := range failingPins {
			if cell.Layer == pin.Layer && cell.ManhattanTo(pin) <= 2 {
				score += 5
			}
		}
	}
	return score
}

// pathCongestion sums a congestion map over a net's path cells.
func pathCongestion(at func(grid.Cell) int, path []grid.Cell) int {
	sum := 0
	for _, c := range path {
		sum += at(c)
	}
	return sum
}

// clearNetFromGrid restores every cell of path to Empty, ignoring
// ErrObstacleImmutable (a net's path never legitimately contains an
// Obstacle cell, but Clear's guard is defense in depth, not something
// callers here need to react to).
func clearNetFromGrid(g *grid.Grid, path []grid.Cell) {
	for _, c := range path {
		_ = g.Clear(c)
	}
}
