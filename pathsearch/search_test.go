package pathsearch_test

import (
	"testing"

	"github.com/katalvlaran/gridroute/congestion"
	"github.com/katalvlaran/gridroute/costmodel"
	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/pathsearch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertAdjacentMoves(t *testing.T, path []grid.Cell) {
	t.Helper()
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		dx, dy, dl := abs(a.X-b.X), abs(a.Y-b.Y), abs(a.Layer-b.Layer)
		switch {
		case dl == 1 && dx == 0 && dy == 0:
			// via
		case dl == 0 && dx+dy == 1:
			// orthogonal step
		default:
			t.Fatalf("non-adjacent step %v -> %v", a, b)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestSearch_SameLayerNoObstacles(t *testing.T) {
	g, err := grid.New(5, 5)
	require.NoError(t, err)

	start := grid.Cell{X: 1, Y: 1, Layer: 1}
	end := grid.Cell{X: 4, Y: 4, Layer: 1}

	res, err := pathsearch.Search(pathsearch.Request{
		Grid:  g,
		Start: start,
		End:   end,
		Model: costmodel.Default(),
	})
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 7, len(res.Path))
	assert.Equal(t, start, res.Path[0])
	assert.Equal(t, end, res.Path[len(res.Path)-1])
	for _, c := range res.Path {
		assert.Equal(t, 1, c.Layer)
	}
	assertAdjacentMoves(t, res.Path)
}

// A full-column obstacle blocks both layers at that x, leaving no via escape.
func TestSearch_ObstacleColumnBlocksBothLayers(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	require.NoError(t, g.SetObstacle(1, 0))
	require.NoError(t, g.SetObstacle(1, 1))
	require.NoError(t, g.SetObstacle(1, 2))

	res, err := pathsearch.Search(pathsearch.Request{
		Grid:  g,
		Start: grid.Cell{X: 0, Y: 1, Layer: 0},
		End:   grid.Cell{X: 2, Y: 1, Layer: 0},
		Model: costmodel.Default(),
	})
	require.NoError(t, err)
	assert.False(t, res.Found)
}

func TestSearch_CrossLayerPinsRequireVia(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	start := grid.Cell{X: 0, Y: 0, Layer: 0}
	end := grid.Cell{X: 2, Y: 2, Layer: 1}

	res, err := pathsearch.Search(pathsearch.Request{
		Grid:  g,
		Start: start,
		End:   end,
		Model: costmodel.Default(),
	})
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, start, res.Path[0])
	assert.Equal(t, end, res.Path[len(res.Path)-1])

	hasVia := false
	for i := 1; i < len(res.Path); i++ {
		if res.Path[i-1].Layer != res.Path[i].Layer {
			hasVia = true
		}
	}
	assert.True(t, hasVia, "expected at least one via move")
	assertAdjacentMoves(t, res.Path)
}

func TestSearch_StartEqualsEnd_SingleCellPath(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	c := grid.Cell{X: 1, Y: 1, Layer: 0}
	res, err := pathsearch.Search(pathsearch.Request{
		Grid: g, Start: c, End: c, Model: costmodel.Default(),
	})
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []grid.Cell{c}, res.Path)
}

func TestSearch_UsedCellsBlockUnlessTarget(t *testing.T) {
	g, err := grid.New(3, 1)
	require.NoError(t, err)

	blocked := grid.Cell{X: 1, Y: 0, Layer: 0}
	// Occupy the corridor cell on both layers, so no via detour exists.
	used := pathsearch.NewUsedCells([]grid.Cell{blocked, {X: 1, Y: 0, Layer: 1}})

	// Target itself is in used_cells: must still be reachable.
	res, err := pathsearch.Search(pathsearch.Request{
		Grid: g, Start: grid.Cell{X: 0, Y: 0, Layer: 0}, End: blocked,
		Model: costmodel.Default(), Used: used,
	})
	require.NoError(t, err)
	assert.True(t, res.Found)

	// A used cell that is NOT the target blocks a 1-wide corridor.
	res2, err := pathsearch.Search(pathsearch.Request{
		Grid: g, Start: grid.Cell{X: 0, Y: 0, Layer: 0}, End: grid.Cell{X: 2, Y: 0, Layer: 0},
		Model: costmodel.Default(), Used: used,
	})
	require.NoError(t, err)
	assert.False(t, res2.Found)
}

func TestSearch_CongestionAddsSoftCost(t *testing.T) {
	// Two parallel 1-row corridors on the same layer; congested cell
	// should not block a path, only make the alternative cheaper.
	g, err := grid.New(3, 2)
	require.NoError(t, err)

	routed := map[string][]grid.Cell{
		"n1": {{X: 1, Y: 0, Layer: 0}},
	}
	cmap := congestion.Build(g, routed)

	res, err := pathsearch.Search(pathsearch.Request{
		Grid: g, Start: grid.Cell{X: 0, Y: 0, Layer: 0}, End: grid.Cell{X: 2, Y: 0, Layer: 0},
		Model: costmodel.Default(), Congestion: cmap,
	})
	require.NoError(t, err)
	require.True(t, res.Found)
	// still passable despite congestion (soft penalty, not a hard block)
	assertAdjacentMoves(t, res.Path)
}

func TestSearch_RejectsOutOfBounds(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	_, err = pathsearch.Search(pathsearch.Request{
		Grid: g, Start: grid.Cell{X: -1, Y: 0, Layer: 0}, End: grid.Cell{X: 1, Y: 1, Layer: 0},
		Model: costmodel.Default(),
	})
	assert.ErrorIs(t, err, pathsearch.ErrStartOutOfBounds)
}
