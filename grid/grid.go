package grid

import "fmt"

// Grid is the two-layer occupancy table G[layer][y][x].
//
// Grid is created during parse and mutated only by the Net Router (marking
// pins and routed cells) and the Rip-Up Controller (clearing cells of
// ripped nets). Path Search reads Grid but must never mutate it.
type Grid struct {
	Width, Height int
	cells         [NumLayers][][]State
}

// New allocates a Grid of the given dimensions, all cells Empty.
// Returns ErrBadDimensions if width or height is outside [1, MaxGridSize].
func New(width, height int) (*Grid, error) {
	if width < 1 || width > MaxGridSize || height < 1 || height > MaxGridSize {
		return nil, fmt.Errorf("%w: got %dx%d", ErrBadDimensions, width, height)
	}

	g := &Grid{Width: width, Height: height}
	for l := 0; l < NumLayers; l++ {
		rows := make([][]State, height)
		for y := range rows {
			rows[y] = make([]State, width)
		}
		g.cells[l] = rows
	}
	return g, nil
}

// InBounds reports whether c addresses a valid cell of this Grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Layer >= 0 && c.Layer < NumLayers &&
		c.X >= 0 && c.X < g.Width &&
		c.Y >= 0 && c.Y < g.Height
}

// State returns the occupancy state at c. Panics if c is out of bounds;
// callers are expected to check InBounds first (Path Search's neighbor
// admissibility check always does).
func (g *Grid) State(c Cell) State {
	return g.cells[c.Layer][c.Y][c.X]
}

// SetObstacle marks (x, y) as Obstacle on both layers: an obstacle at a
// coordinate always blocks every layer there. Returns ErrOutOfBounds if
// (x, y) is outside the grid.
func (g *Grid) SetObstacle(x, y int) error {
	c := Cell{X: x, Y: y, Layer: 0}
	if !g.InBounds(c) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	g.cells[0][y][x] = Obstacle
	g.cells[1][y][x] = Obstacle
	return nil
}

// MarkPinTemp transitions c to PinTemp. Returns ErrObstacleImmutable if c is
// currently an Obstacle (callers must reject pins on obstacles at parse
// time; this is a last-resort guard against that invariant being violated).
func (g *Grid) MarkPinTemp(c Cell) error {
	return g.setState(c, PinTemp)
}

// MarkRouted transitions c to Routed. Returns ErrObstacleImmutable if c is
// currently an Obstacle.
func (g *Grid) MarkRouted(c Cell) error {
	return g.setState(c, Routed)
}

// Clear restores c to Empty. Returns ErrObstacleImmutable if c is currently
// an Obstacle, preserving the invariant that Obstacle cells never change
// state — including when the Rip-Up Controller clears a ripped net's path
// or the Net Router unwinds a failed attempt's temporary pin marks.
func (g *Grid) Clear(c Cell) error {
	return g.setState(c, Empty)
}

func (g *Grid) setState(c Cell, s State) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if g.cells[c.Layer][c.Y][c.X] == Obstacle {
		return ErrObstacleImmutable
	}
	g.cells[c.Layer][c.Y][c.X] = s
	return nil
}
