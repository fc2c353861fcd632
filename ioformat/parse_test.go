package ioformat_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/gridroute/grid"
	"github.com/katalvlaran/gridroute/ioformat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	p := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestParse_SizeLineAndObstaclesAndNets(t *testing.T) {
	p := writeTemp(t, "5x5\nOBS (2, 2)\nn1 (1, 1, 1) (1, 4, 4)\n")
	res, err := ioformat.Parse(p)
	require.NoError(t, err)
	assert.Equal(t, 5, res.Grid.Width)
	assert.Equal(t, 5, res.Grid.Height)
	assert.Equal(t, grid.Obstacle, res.Grid.State(grid.Cell{X: 2, Y: 2, Layer: 0}))
	require.Contains(t, res.Nets, "n1")
	assert.Equal(t, []grid.Cell{{X: 1, Y: 1, Layer: 0}, {X: 4, Y: 4, Layer: 0}}, res.Nets["n1"])
}

func TestParse_CaseInsensitiveSizeLine(t *testing.T) {
	p := writeTemp(t, "3X4\nn1 (1,0,0) (1,1,1)\n")
	res, err := ioformat.Parse(p)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Grid.Width)
	assert.Equal(t, 4, res.Grid.Height)
}

func TestParse_DropsOutOfBoundsPinAndWarns(t *testing.T) {
	p := writeTemp(t, "3x3\nn1 (1, 0, 0) (1, 9, 9) (1, 2, 2)\n")
	res, err := ioformat.Parse(p)
	require.NoError(t, err)
	assert.Equal(t, []grid.Cell{{X: 0, Y: 0, Layer: 0}, {X: 2, Y: 2, Layer: 0}}, res.Nets["n1"])
	assert.NotEmpty(t, res.Warnings)
}

func TestParse_SinglePinNetSkippedWithWarning(t *testing.T) {
	p := writeTemp(t, "3x3\nn1 (1, 0, 0)\n")
	res, err := ioformat.Parse(p)
	require.NoError(t, err)
	assert.NotContains(t, res.Nets, "n1")
	assert.NotEmpty(t, res.Warnings)
}

func TestParse_PinOnObstacleIsFatal(t *testing.T) {
	p := writeTemp(t, "3x3\nOBS (1, 1)\nn1 (1, 1, 1) (1, 2, 2)\n")
	_, err := ioformat.Parse(p)
	assert.ErrorIs(t, err, ioformat.ErrPinOnObstacle)
}

func TestParse_GridTooLargeIsFatal(t *testing.T) {
	p := writeTemp(t, "1001x5\nn1 (1,0,0) (1,1,1)\n")
	_, err := ioformat.Parse(p)
	assert.ErrorIs(t, err, ioformat.ErrGridTooLarge)
}

func TestParse_MalformedSizeLine(t *testing.T) {
	p := writeTemp(t, "not-a-size-line\n")
	_, err := ioformat.Parse(p)
	assert.ErrorIs(t, err, ioformat.ErrMalformedSizeLine)
}

func TestParse_MissingFile(t *testing.T) {
	_, err := ioformat.Parse(filepath.Join(t.TempDir(), "does-not-exist.txt"))
	assert.ErrorIs(t, err, ioformat.ErrMissingFile)
}

func TestParse_UnparseableLine(t *testing.T) {
	p := writeTemp(t, "3x3\nthis is not valid\n")
	_, err := ioformat.Parse(p)
	assert.ErrorIs(t, err, ioformat.ErrUnparseableLine)
}

func TestParse_BlankLinesIgnored(t *testing.T) {
	p := writeTemp(t, "3x3\n\n\nn1 (1,0,0) (1,1,1)\n\n")
	res, err := ioformat.Parse(p)
	require.NoError(t, err)
	assert.Contains(t, res.Nets, "n1")
}
