package telemetry_test

import (
	"testing"

	"github.com/katalvlaran/gridroute/telemetry"
	"github.com/stretchr/testify/assert"
)

func TestRecorder_SummaryReflectsCounts(t *testing.T) {
	r := telemetry.New()
	r.NetRouted()
	r.NetRouted()
	r.NetFailed()
	r.RipUpIteration()
	r.PathSearch()
	r.PathSearch()
	r.PathSearch()

	summary := r.Summary()
	assert.Contains(t, summary, "nets_routed=2")
	assert.Contains(t, summary, "nets_failed=1")
	assert.Contains(t, summary, "ripup_iterations=1")
	assert.Contains(t, summary, "path_searches=3")
}

func TestRecorder_IndependentSets(t *testing.T) {
	a := telemetry.New()
	b := telemetry.New()
	a.NetRouted()
	assert.Contains(t, a.Summary(), "nets_routed=1")
	assert.Contains(t, b.Summary(), "nets_routed=0")
}

func TestRecorder_NilReceiverIsNoOp(t *testing.T) {
	var r *telemetry.Recorder
	assert.NotPanics(t, func() {
		r.NetRouted()
		r.NetFailed()
		r.RipUpIteration()
		r.PathSearch()
	})
	assert.Equal(t, "nets_routed=0 nets_failed=0 ripup_iterations=0 path_searches=0", r.Summary())
}
