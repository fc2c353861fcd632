package netrouter

import (
	"errors"

	"github.com/katalvlaran/gridroute/congestion"
	"github.com/katalvlaran/gridroute/costmodel"
	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/telemetry"
)

// ErrTooFewPins indicates a net was handed to RouteNet with fewer than two
// pins. Callers are expected to have already skipped such nets with a
// warning; RouteNet treats it as a programmer error, not a routing
// failure.
var ErrTooFewPins = errors.New("netrouter: net has fewer than two pins")

// Request bundles everything RouteNet needs to grow one net's route.
type Request struct {
	Grid *grid.Grid

	// Name identifies the net, used only for error context.
	Name string

	// Pins is the net's pin list in input order; must have length >= 2.
	Pins []grid.Cell

	Model costmodel.Model

	// Routed is the map of already-completed nets, used to build the
	// used-cells set and the congestion map for this net's search batch.
	Routed map[string][]grid.Cell

	// Telemetry records Path Search invocation counts. A nil Telemetry is
	// a valid no-op recorder.
	Telemetry *telemetry.Recorder
}

// Result is RouteNet's outcome.
type Result struct {
	// Path is the deduplicated, order-preserving sequence of cells forming
	// the net's route. Empty when Success is false.
	Path []grid.Cell
	// Success reports whether every pin was connected.
	Success bool
}

// usedCellsFrom flattens every already-routed net's path into one slice,
// the view RouteNet passes to Path Search as the used-cells set.
func usedCellsFrom(routed map[string][]grid.Cell) []grid.Cell {
	var all []grid.Cell
	for _, path := range routed {
		all = append(all, path...)
	}
	return all
}

// buildCongestion is a thin indirection so tests can swap behavior later
// without touching RouteNet's control flow.
func buildCongestion(g *grid.Grid, routed map[string][]grid.Cell) *congestion.Map {
	return congestion.Build(g, routed)
}
