package ioformat

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridroute/grid"
)

var (
	sizeLineRE = regexp.MustCompile(`(?i)^(\d+)\s*x\s*(\d+)$`)
	obsLineRE  = regexp.MustCompile(`(?i)^OBS\s*\(\s*(\d+)\s*,\s*(\d+)\s*\)$`)
	pinGroupRE = regexp.MustCompile(`\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)`)
)

// Parse reads the router's input grammar from path. Line 1 is the grid
// size; subsequent lines are OBS entries or net/pin lists, in any order;
// blank lines are ignored.
//
// OBS lines are applied to the grid before any net's pins are validated, so
// that pin-on-obstacle detection (ErrPinOnObstacle) sees the final grid
// regardless of the order obstacles and nets appear in the file.
func Parse(path string) (*ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingFile, path, err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingFile, path, err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedSizeLine)
	}

	width, height, err := parseSizeLine(lines[0])
	if err != nil {
		return nil, err
	}
	if width > grid.MaxGridSize || height > grid.MaxGridSize {
		return nil, fmt.Errorf("%w: got %dx%d, max is %d", ErrGridTooLarge, width, height, grid.MaxGridSize)
	}

	g, err := grid.New(width, height)
	if err != nil {
		return nil, fmt.Errorf("ioformat: %w", err)
	}

	type rawNet struct {
		name string
		line string
	}
	var obsLines []string
	var netOrder []rawNet
	for _, line := range lines[1:] {
		if obsLineRE.MatchString(line) {
			obsLines = append(obsLines, line)
			continue
		}
		name, ok := netName(line)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnparseableLine, line)
		}
		netOrder = append(netOrder, rawNet{name: name, line: line})
	}

	for _, line := range obsLines {
		m := obsLineRE.FindStringSubmatch(line)
		x, _ := strconv.Atoi(m[1])
		y, _ := strconv.Atoi(m[2])
		if err := g.SetObstacle(x, y); err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrUnparseableLine, line, err)
		}
	}

	nets := make(map[string][]grid.Cell, len(netOrder))
	var warnings []string
	for _, rn := range netOrder {
		pins, dropped := parsePins(rn.line, g)
		for range dropped {
			warnings = append(warnings, fmt.Sprintf("net %s: dropped a pin outside the grid", rn.name))
		}
		for _, p := range pins {
			if g.State(p) == grid.Obstacle {
				return nil, fmt.Errorf("%w: net %s pin %v", ErrPinOnObstacle, rn.name, p)
			}
		}
		if len(pins) < 2 {
			warnings = append(warnings, fmt.Sprintf("net %s: skipped, fewer than two valid pins", rn.name))
			continue
		}
		nets[rn.name] = pins
	}

	return &ParseResult{Grid: g, Nets: nets, Warnings: warnings}, nil
}

func parseSizeLine(line string) (int, int, error) {
	m := sizeLineRE.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedSizeLine, line)
	}
	width, err1 := strconv.Atoi(m[1])
	height, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil || width < 1 || height < 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedSizeLine, line)
	}
	return width, height, nil
}

// netName extracts the net name from a "<name> (layer,x,y) ..." line: the
// token before the first pin group. Reports false if the line has no pin
// groups at all (making it neither an OBS line nor a net line).
func netName(line string) (string, bool) {
	loc := pinGroupRE.FindStringIndex(line)
	if loc == nil {
		return "", false
	}
	name := strings.TrimSpace(line[:loc[0]])
	if name == "" {
		return "", false
	}
	return name, true
}

// parsePins extracts every (layer, x, y) group from a net line, converts
// layers from 1-based to 0-based, and drops any pin whose coordinates fall
// outside g. Returns the surviving pins and the count dropped.
func parsePins(line string, g *grid.Grid) ([]grid.Cell, int) {
	matches := pinGroupRE.FindAllStringSubmatch(line, -1)
	pins := make([]grid.Cell, 0, len(matches))
	dropped := 0
	for _, m := range matches {
		layer1, _ := strconv.Atoi(m[1])
		x, _ := strconv.Atoi(m[2])
		y, _ := strconv.Atoi(m[3])
		c := grid.Cell{X: x, Y: y, Layer: layer1 - 1}
		if !g.InBounds(c) {
			dropped++
			continue
		}
		pins = append(pins, c)
	}
	return pins, dropped
}
