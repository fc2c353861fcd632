package netorder

import (
	"sort"

	"github.com/katalvlaran/gridroute/grid"
)

// EstimatedLength returns the sum of Manhattan distances between
// consecutive pins in the given order. A net with fewer than two pins has
// length 0 (it is skipped elsewhere before ever reaching the router).
func EstimatedLength(pins []grid.Cell) int {
	total := 0
	for i := 1; i < len(pins); i++ {
		total += pins[i-1].ManhattanTo(pins[i])
	}
	return total
}

// Rank returns net names ordered by ascending EstimatedLength. Ties are
// broken by descending Criticality (criticality may be nil, meaning no
// hint was supplied), then by net name for full determinism.
func Rank(nets map[string][]grid.Cell, criticality map[string]float64) []string {
	type scored struct {
		name        string
		length      int
		criticality float64
	}

	scoredNets := make([]scored, 0, len(nets))
	for name, pins := range nets {
		c := 0.0
		if criticality != nil {
			c = criticality[name]
		}
		scoredNets = append(scoredNets, scored{name: name, length: EstimatedLength(pins), criticality: c})
	}

	sort.Slice(scoredNets, func(i, j int) bool {
		a, b := scoredNets[i], scoredNets[j]
		if a.length != b.length {
			return a.length < b.length
		}
		if a.criticality != b.criticality {
			return a.criticality > b.criticality
		}
		return a.name < b.name
	})

	order := make([]string, len(scoredNets))
	for i, s := range scoredNets {
		order[i] = s.name
	}
	return order
}
