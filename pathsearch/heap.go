package pathsearch

import "github.com/katalvlaran/gridroute/grid"

// item is one entry in the search frontier: a candidate cell together with
// its accumulated cost g, its priority f = g + h, and the insertion
// sequence used to break ties between equal-f entries deterministically.
type item struct {
	cell grid.Cell
	g    int
	f    int
	seq  int
}

// frontier is a binary min-heap of *item ordered by (f, seq) ascending.
// Like this module's Dijkstra priority queue, frontier uses a
// lazy-decrease-key strategy: a cheaper path to an already-queued cell is
// pushed as a new entry rather than mutating the existing one; stale
// entries are discarded when popped by checking the closed set.
type frontier []*item

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].f != f[j].f {
		return f[i].f < f[j].f
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*item)) }

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	it := old[n-1]
	*f = old[:n-1]
	return it
}
