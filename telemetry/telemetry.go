package telemetry

import (
	"fmt"

	vm "github.com/VictoriaMetrics/metrics"
)

// Recorder holds one run's counters. Each run gets its own metrics.Set so
// concurrent test runs (or, someday, concurrent CLI invocations in one
// process) never share global counter state.
type Recorder struct {
	set *vm.Set

	netsRouted      *vm.Counter
	netsFailed      *vm.Counter
	ripupIterations *vm.Counter
	pathSearches    *vm.Counter
}

// New allocates a Recorder with its own metric set.
func New() *Recorder {
	set := vm.NewSet()
	return &Recorder{
		set:             set,
		netsRouted:      set.NewCounter("gridroute_nets_routed_total"),
		netsFailed:      set.NewCounter("gridroute_nets_failed_total"),
		ripupIterations: set.NewCounter("gridroute_ripup_iterations_total"),
		pathSearches:    set.NewCounter("gridroute_path_searches_total"),
	}
}

// NetRouted increments the successfully-routed net count. A nil Recorder
// is a no-op, so callers that route without telemetry need not guard
// every call site.
func (r *Recorder) NetRouted() {
	if r != nil {
		r.netsRouted.Inc()
	}
}

// NetFailed increments the still-failing net count.
func (r *Recorder) NetFailed() {
	if r != nil {
		r.netsFailed.Inc()
	}
}

// RipUpIteration increments the rip-up iteration count. Called once per
// rip-up loop pass, regardless of how many failed nets it processes.
func (r *Recorder) RipUpIteration() {
	if r != nil {
		r.ripupIterations.Inc()
	}
}

// PathSearch increments the Path Search invocation count. Called once per
// pathsearch.Search call, successful or not.
func (r *Recorder) PathSearch() {
	if r != nil {
		r.pathSearches.Inc()
	}
}

// Summary renders every counter as a single human-readable line for the
// CLI's closing log message. A nil Recorder renders as all zeros.
func (r *Recorder) Summary() string {
	if r == nil {
		return "nets_routed=0 nets_failed=0 ripup_iterations=0 path_searches=0"
	}
	return fmt.Sprintf(
		"nets_routed=%d nets_failed=%d ripup_iterations=%d path_searches=%d",
		r.netsRouted.Get(),
		r.netsFailed.Get(),
		r.ripupIterations.Get(),
		r.pathSearches.Get(),
	)
}
