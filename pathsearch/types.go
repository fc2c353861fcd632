package pathsearch

import (
	"errors"

	"github.com/katalvlaran/gridroute/congestion"
	"github.com/katalvlaran/gridroute/costmodel"
	"github.com/katalvlaran/gridroute/grid"
)

// Sentinel errors for Search's input validation.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Search.
	ErrNilGrid = errors.New("pathsearch: grid is nil")

	// ErrStartOutOfBounds indicates Request.Start is outside the grid.
	ErrStartOutOfBounds = errors.New("pathsearch: start cell out of bounds")

	// ErrEndOutOfBounds indicates Request.End is outside the grid.
	ErrEndOutOfBounds = errors.New("pathsearch: end cell out of bounds")
)

// UsedCells is the set of cells already occupied by other nets, keyed by
// grid.Cell.Pack(). A nil UsedCells behaves as the empty set.
type UsedCells map[uint64]struct{}

// NewUsedCells builds a UsedCells set from a slice of cells, the way the
// Net Router assembles it from the routed-nets map before each net's
// search batch.
func NewUsedCells(cells []grid.Cell) UsedCells {
	u := make(UsedCells, len(cells))
	for _, c := range cells {
		u[c.Pack()] = struct{}{}
	}
	return u
}

// Contains reports whether c is a member of the set. A nil receiver
// reports false for every cell, so callers may pass a nil UsedCells to
// mean "no other nets routed yet."
func (u UsedCells) Contains(c grid.Cell) bool {
	if u == nil {
		return false
	}
	_, ok := u[c.Pack()]
	return ok
}

// Request bundles everything Search needs to find one pin-to-pin path.
type Request struct {
	// Grid is read-only for the duration of Search.
	Grid *grid.Grid

	Start, End grid.Cell

	Model costmodel.Model

	// Congestion is optional; a nil Congestion disables the soft
	// congestion penalty entirely.
	Congestion *congestion.Map

	// Used is optional; a nil Used means no other net currently occupies
	// any cell.
	Used UsedCells
}

// Result is Search's outcome: either a Found path (Start..End inclusive,
// each consecutive pair adjacent under the move set), or Found == false
// when no path exists under the given obstacles, overlaps, and bounds.
type Result struct {
	Path  []grid.Cell
	Found bool
}
