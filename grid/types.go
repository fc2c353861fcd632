package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and mutation.
var (
	// ErrBadDimensions indicates width or height fell outside [1, MaxGridSize].
	ErrBadDimensions = errors.New("grid: width and height must be within [1, MaxGridSize]")

	// ErrOutOfBounds indicates a Cell coordinate fell outside the grid.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")

	// ErrBadLayer indicates a Cell's Layer was not 0 or 1.
	ErrBadLayer = errors.New("grid: layer must be 0 or 1")

	// ErrObstacleImmutable indicates an attempt to transition an Obstacle cell.
	ErrObstacleImmutable = errors.New("grid: obstacle cells never change state")
)

// MaxGridSize is the largest width or height the router will accept.
const MaxGridSize = 1000

// NumLayers is the fixed layer count this design supports.
const NumLayers = 2

// State identifies the occupancy state of a single grid cell.
type State int

const (
	// Empty cells are available for routing.
	Empty State = iota
	// Obstacle cells are permanently blocked; set during parse from OBS entries.
	Obstacle
	// PinTemp marks a pin of the net currently being routed. Passable by that
	// net's own search, but counted as occupied by other nets' overlap checks.
	PinTemp
	// Routed cells are consumed by a previously completed net.
	Routed
)

// String renders a State for logging and test failure messages.
func (s State) String() string {
	switch s {
	case Empty:
		return "EMPTY"
	case Obstacle:
		return "OBSTACLE"
	case PinTemp:
		return "PIN_TEMP"
	case Routed:
		return "ROUTED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Cell is one discrete grid position: (X, Y, Layer), Layer ∈ {0, 1}.
//
// Cell is a plain value type with structural equality; two Cells are equal
// iff all three fields match. Cells are totally ordered by (Layer, X, Y) so
// that searches and net growth can make deterministic tie-break decisions.
type Cell struct {
	X, Y  int
	Layer int
}

// Less implements the total order over (Layer, X, Y) used for deterministic
// tie-breaks throughout Path Search and Net Router.
func (c Cell) Less(o Cell) bool {
	if c.Layer != o.Layer {
		return c.Layer < o.Layer
	}
	if c.X != o.X {
		return c.X < o.X
	}
	return c.Y < o.Y
}

// Pack encodes a Cell into a single uint64 key, suitable for use as a map
// key or a compact visited-set index. Coordinates up to MaxGridSize and a
// single layer bit fit comfortably within the low 41 bits.
func (c Cell) Pack() uint64 {
	return uint64(c.Layer)<<40 | uint64(uint32(c.Y))<<20 | uint64(uint32(c.X))
}

// ManhattanTo returns the Manhattan distance in (x, y) to o, ignoring layer.
// Used both as the Path Search heuristic and as the Net Orderer's length
// estimate.
func (c Cell) ManhattanTo(o Cell) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
