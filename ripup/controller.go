package ripup

import (
	"context"
	"fmt"
	"sort"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/gridroute/congestion"
	"github.com/katalvlaran/gridroute/costmodel"
	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/netorder"
	"github.com/katalvlaran/gridroute/netrouter"
	"github.com/katalvlaran/gridroute/telemetry"
)

// Route is the Global Router and Rip-Up Controller entry point. It ranks
// nets by netorder.Rank, routes them in that order, and runs the rip-up
// loop against whatever fails, up to maxIterations passes.
//
// ctx is checked before each net in the first pass and before each rip-up
// iteration; a cancelled or expired ctx aborts the run early and returns
// ctx.Err() wrapped, alongside whatever was routed so far. rec may be nil.
//
// It returns the Routed-Nets Map (successes only — a net that never routes
// is simply absent) plus the net order used for the first pass.
// Apart from the cancellation errors above and errors returned by
// netrouter.RouteNet, a non-nil error is a *multierror.Error aggregating one
// entry per net still failing when the loop terminated; it is
// informational, not fatal — callers should still use the returned map.
func Route(ctx context.Context, g *grid.Grid, nets map[string][]grid.Cell, criticality map[string]float64, model costmodel.Model, seed int64, maxIterations int, rec *telemetry.Recorder) (map[string][]grid.Cell, []string, error) {
	order := netorder.Rank(nets, criticality)
	routed := make(map[string][]grid.Cell, len(nets))

	var failed []string
	for _, name := range order {
		if err := ctx.Err(); err != nil {
			return routed, order, fmt.Errorf("ripup: first pass cancelled before %s: %w", name, err)
		}

		res, err := netrouter.RouteNet(netrouter.Request{
			Grid:      g,
			Name:      name,
			Pins:      nets[name],
			Model:     model,
			Routed:    routed,
			Telemetry: rec,
		})
		if err != nil {
			return routed, order, fmt.Errorf("ripup: first pass on %s: %w", name, err)
		}
		if res.Success {
			routed[name] = res.Path
		} else {
			failed = append(failed, name)
		}
	}

	for iter := 1; iter <= maxIterations && len(failed) > 0; iter++ {
		if err := ctx.Err(); err != nil {
			return routed, order, fmt.Errorf("ripup: iteration %d cancelled: %w", iter, err)
		}
		rec.RipUpIteration()

		before := len(failed)
		var nextFailed []string

		for _, fname := range failed {
			fSuccess, rippedFailures, err := attemptRipUp(g, fname, nets, model, routed, rec)
			if err != nil {
				return routed, order, fmt.Errorf("ripup: iteration %d on %s: %w", iter, fname, err)
			}
			if !fSuccess {
				nextFailed = append(nextFailed, fname)
			}
			nextFailed = append(nextFailed, rippedFailures...)
		}

		failed = dedupeNames(nextFailed)
		if len(failed) == before && len(failed) > 0 {
			rng := rngForIteration(seed, iter)
			shuffleStrings(failed, rng)
		}
	}

	if len(failed) == 0 {
		return routed, order, nil
	}

	var merr *multierror.Error
	for _, name := range failed {
		merr = multierror.Append(merr, fmt.Errorf("net %q could not be routed", name))
	}
	return routed, order, merr.ErrorOrNil()
}

// attemptRipUp scores every currently routed net against fname's pins,
// clears the top 3 scorers, retries fname, and re-routes whichever of the
// ripped nets it can — succeeding or not.
//
// Deliberate deviation from the Python original: regardless of whether
// fname itself succeeds, every ripped net that failed to re-route is
// folded back into the caller's next-iteration failure set. The original
// only does this when fname succeeds; on its "F still fails" branch a
// ripped net's failed reroute is dropped from tracking entirely. Losing
// track of a net because an unrelated net also failed is a latent bug,
// not a feature, so the student's version always reports it.
func attemptRipUp(g *grid.Grid, fname string, nets map[string][]grid.Cell, model costmodel.Model, routed map[string][]grid.Cell, rec *telemetry.Recorder) (bool, []string, error) {
	fpins := nets[fname]
	cmap := congestion.Build(g, routed)

	type candidate struct {
		name  string
		score float64
	}
	candidates := make([]candidate, 0, len(routed))
	for name, path := range routed {
		cs := conflictScore(path, fpins)
		pc := pathCongestion(cmap.At, path)
		candidates = append(candidates, candidate{
			name:  name,
			score: float64(cs+pc) / float64(len(path)+1),
		})
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].name < candidates[j].name
	})

	if len(candidates) == 0 {
		return false, nil, nil
	}
	top := candidates
	if len(top) > 3 {
		top = top[:3]
	}

	for _, c := range top {
		clearNetFromGrid(g, routed[c.name])
		delete(routed, c.name)
	}

	res, err := netrouter.RouteNet(netrouter.Request{
		Grid:      g,
		Name:      fname,
		Pins:      fpins,
		Model:     model,
		Routed:    routed,
		Telemetry: rec,
	})
	if err != nil {
		return false, nil, err
	}

	if res.Success {
		routed[fname] = res.Path
	}

	var rippedFailures []string
	for _, c := range top {
		r2, err := netrouter.RouteNet(netrouter.Request{
			Grid:      g,
			Name:      c.name,
			Pins:      nets[c.name],
			Model:     model,
			Routed:    routed,
			Telemetry: rec,
		})
		if err != nil {
			return res.Success, rippedFailures, err
		}
		if r2.Success {
			routed[c.name] = r2.Path
		} else {
			rippedFailures = append(rippedFailures, c.name)
		}
	}

	return res.Success, rippedFailures, nil
}

// dedupeNames removes duplicate net names, preserving first-occurrence
// order (a net ripped up by two different failing nets in the same
// iteration must only appear once in the next batch).
func dedupeNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
