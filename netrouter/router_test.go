package netrouter_test

import (
	"testing"

	"github.com/katalvlaran/gridroute/costmodel"
	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/netrouter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteNet_TwoPinsNoObstacles(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)

	pins := []grid.Cell{{X: 1, Y: 1, Layer: 1}, {X: 4, Y: 4, Layer: 1}}
	res, err := netrouter.RouteNet(netrouter.Request{
		Grid: g, Name: "n1", Pins: pins, Model: costmodel.Default(),
	})
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, pins[0], res.Path[0])
	assert.Contains(t, res.Path, pins[1])

	for _, c := range res.Path {
		if c == pins[0] || c == pins[1] {
			assert.Equal(t, grid.Routed, g.State(c))
			continue
		}
		assert.Equal(t, grid.Routed, g.State(c))
	}
}

func TestRouteNet_EnclosedByObstaclesFails(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, g.SetObstacle(1, 0))
	require.NoError(t, g.SetObstacle(1, 1))
	require.NoError(t, g.SetObstacle(1, 2))

	pins := []grid.Cell{{X: 0, Y: 1, Layer: 0}, {X: 2, Y: 1, Layer: 0}}
	res, err := netrouter.RouteNet(netrouter.Request{
		Grid: g, Name: "n1", Pins: pins, Model: costmodel.Default(),
	})
	require.NoError(t, err)
	assert.False(t, res.Success)

	// Pins must be restored to Empty, not left dangling as PinTemp.
	assert.Equal(t, grid.Empty, g.State(pins[0]))
	assert.Equal(t, grid.Empty, g.State(pins[1]))
}

func TestRouteNet_ThreePinsConnected(t *testing.T) {
	g, err := grid.New(6, 6)
	require.NoError(t, err)

	pins := []grid.Cell{
		{X: 0, Y: 0, Layer: 0},
		{X: 5, Y: 0, Layer: 0},
		{X: 0, Y: 5, Layer: 0},
	}
	res, err := netrouter.RouteNet(netrouter.Request{
		Grid: g, Name: "n1", Pins: pins, Model: costmodel.Default(),
	})
	require.NoError(t, err)
	require.True(t, res.Success)
	for _, p := range pins {
		assert.Contains(t, res.Path, p)
	}
}

func TestRouteNet_TooFewPins(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	_, err = netrouter.RouteNet(netrouter.Request{
		Grid: g, Name: "n1", Pins: []grid.Cell{{X: 0, Y: 0}}, Model: costmodel.Default(),
	})
	assert.ErrorIs(t, err, netrouter.ErrTooFewPins)
}

func TestRouteNet_AvoidsOtherNetsRoute(t *testing.T) {
	g, err := grid.New(5, 1)
	require.NoError(t, err)

	routed := map[string][]grid.Cell{
		"n0": {{X: 2, Y: 0, Layer: 0}},
	}
	pins := []grid.Cell{{X: 0, Y: 0, Layer: 0}, {X: 4, Y: 0, Layer: 0}}
	res, err := netrouter.RouteNet(netrouter.Request{
		Grid: g, Name: "n1", Pins: pins, Model: costmodel.Default(), Routed: routed,
	})
	require.NoError(t, err)
	// n0's cell isn't marked Routed in g directly in this unit test (that
	// bookkeeping is ripup's job), but it must still appear as used and be
	// avoided when it's not the target itself.
	for _, c := range res.Path {
		if c == (grid.Cell{X: 2, Y: 0, Layer: 0}) {
			t.Fatalf("route passed through another net's cell: %v", res.Path)
		}
	}
}
