package ioformat

import (
	"errors"

	"github.com/katalvlaran/gridroute/grid"
)

// Sentinel errors for Parse. All are fatal: the caller should abort the run
// with a non-zero exit code.
var (
	// ErrMissingFile indicates the input path could not be opened.
	ErrMissingFile = errors.New("ioformat: input file missing or unreadable")

	// ErrMalformedSizeLine indicates line 1 did not match "<width>x<height>".
	ErrMalformedSizeLine = errors.New("ioformat: malformed size line")

	// ErrGridTooLarge indicates width or height exceeded grid.MaxGridSize.
	ErrGridTooLarge = errors.New("ioformat: grid dimensions exceed the maximum")

	// ErrUnparseableLine indicates a non-blank line matched neither the OBS
	// nor the net grammar.
	ErrUnparseableLine = errors.New("ioformat: unparseable line")

	// ErrPinOnObstacle indicates a net pin coincided with an OBS cell.
	// Canonicalized per the router's design notes: rather than silently
	// restoring an OBSTACLE to EMPTY when a failed net's temporary pin mark
	// unwinds, such input is rejected up front.
	ErrPinOnObstacle = errors.New("ioformat: pin coincides with an obstacle")
)

// ParseResult is everything Parse recovers from an input file.
type ParseResult struct {
	Grid *grid.Grid

	// Nets maps net name to its pin list in file order. Nets left with
	// fewer than two valid pins after out-of-bounds pins are dropped are
	// not present here; see Warnings.
	Nets map[string][]grid.Cell

	// Warnings records skip reasons (single-pin nets, dropped out-of-bounds
	// pins) for the caller to log; these are not errors.
	Warnings []string
}
