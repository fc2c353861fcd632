package netrouter

import (
	"fmt"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/pathsearch"
)

// RouteNet grows req.Name's route and returns it, or Result{Success:
// false} if on some growth step Path Search connected none of the
// (source, target) pairs it attempted.
//
// RouteNet mutates req.Grid: it marks the net's pins PinTemp for the
// duration of the call, marks newly-connected path cells Routed as the
// route grows, and — on failure — restores every pin back to Empty before
// returning, undoing its own temporary marks (but never an Obstacle,
// which Grid.Clear refuses to touch).
func RouteNet(req Request) (Result, error) {
	if len(req.Pins) < 2 {
		return Result{}, fmt.Errorf("%w: %s", ErrTooFewPins, req.Name)
	}

	used := pathsearch.NewUsedCells(usedCellsFrom(req.Routed))
	cmap := buildCongestion(req.Grid, req.Routed)

	pinSet := make(map[uint64]struct{}, len(req.Pins))
	for _, p := range req.Pins {
		pinSet[p.Pack()] = struct{}{}
	}

	start := lowestYThenX(req.Pins)
	sources := []grid.Cell{start}
	targets := make([]grid.Cell, 0, len(req.Pins)-1)
	for _, p := range req.Pins {
		if p != start {
			targets = append(targets, p)
		}
	}

	for _, p := range req.Pins {
		if err := req.Grid.MarkPinTemp(p); err != nil {
			return Result{}, fmt.Errorf("netrouter: marking pin of %s: %w", req.Name, err)
		}
	}

	var route []grid.Cell

	for len(targets) > 0 {
		var (
			best       []grid.Cell
			bestTarget int = -1
		)

		for _, s := range sources {
			for ti, t := range targets {
				// Temporarily unmark the candidate target so Search may
				// reach it; Search's end-cell exception would let it
				// through anyway, but restoring it to Empty keeps the
				// grid state consistent with "not yet connected."
				if err := req.Grid.Clear(t); err != nil {
					return Result{}, fmt.Errorf("netrouter: unmarking target in %s: %w", req.Name, err)
				}

				res, err := pathsearch.Search(pathsearch.Request{
					Grid:       req.Grid,
					Start:      s,
					End:        t,
					Model:      req.Model,
					Congestion: cmap,
					Used:       used,
				})
				req.Telemetry.PathSearch()

				if rerr := req.Grid.MarkPinTemp(t); rerr != nil {
					return Result{}, fmt.Errorf("netrouter: re-marking target in %s: %w", req.Name, rerr)
				}
				if err != nil {
					return Result{}, fmt.Errorf("netrouter: searching in %s: %w", req.Name, err)
				}

				if res.Found && (best == nil || len(res.Path) < len(best)) {
					best = res.Path
					bestTarget = ti
				}
			}
		}

		if best == nil {
			for _, p := range req.Pins {
				_ = req.Grid.Clear(p)
			}
			return Result{Success: false}, nil
		}

		route = append(route, best...)
		for _, c := range best {
			if _, isPin := pinSet[c.Pack()]; isPin {
				continue
			}
			if err := req.Grid.MarkRouted(c); err != nil {
				return Result{}, fmt.Errorf("netrouter: marking route cell in %s: %w", req.Name, err)
			}
		}

		winner := targets[bestTarget]
		sources = append(sources, winner)
		targets = append(targets[:bestTarget], targets[bestTarget+1:]...)
	}

	for _, p := range req.Pins {
		if err := req.Grid.MarkRouted(p); err != nil {
			return Result{}, fmt.Errorf("netrouter: marking final pin in %s: %w", req.Name, err)
		}
	}

	return Result{Path: dedupe(route), Success: true}, nil
}

// lowestYThenX selects the pin with lowest y, breaking ties by lowest x —
// the deterministic starting pin for every net's growth.
func lowestYThenX(pins []grid.Cell) grid.Cell {
	best := pins[0]
	for _, p := range pins[1:] {
		if p.Y < best.Y || (p.Y == best.Y && p.X < best.X) {
			best = p
		}
	}
	return best
}

// dedupe removes duplicate cells from path, preserving first-occurrence
// order.
func dedupe(path []grid.Cell) []grid.Cell {
	seen := make(map[uint64]struct{}, len(path))
	out := make([]grid.Cell, 0, len(path))
	for _, c := range path {
		k := c.Pack()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, c)
	}
	return out
}
