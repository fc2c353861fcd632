package ioformat

import (
	"bufio"
	"fmt"
	"os"

	"github.com/katalvlaran/gridroute/grid"
)

// Write emits one line per successfully routed net, in the given order,
// skipping any name not present in routed. Layers are rendered 1-based;
// duplicate cells are removed defensively (Net Router already dedupes, but
// Write does not trust that invariant blindly).
func Write(path string, routed map[string][]grid.Cell, order []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ioformat: creating output %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, name := range order {
		cells, ok := routed[name]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s", name); err != nil {
			return fmt.Errorf("ioformat: writing net %s: %w", name, err)
		}
		seen := make(map[uint64]struct{}, len(cells))
		for _, c := range cells {
			k := c.Pack()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			if _, err := fmt.Fprintf(w, " (%d, %d, %d)", c.Layer+1, c.X, c.Y); err != nil {
				return fmt.Errorf("ioformat: writing net %s: %w", name, err)
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return fmt.Errorf("ioformat: writing net %s: %w", name, err)
		}
	}
	return w.Flush()
}
