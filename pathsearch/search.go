package pathsearch

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridroute/costmodel"
	"github.com/katalvlaran/gridroute/grid"
)

// Search finds the lowest-cost path from req.Start to req.End inclusive, or
// reports Result{Found: false} if none exists under the current grid
// state, congestion map, and used-cells set.
//
// Search never mutates req.Grid or req.Congestion.
func Search(req Request) (Result, error) {
	if req.Grid == nil {
		return Result{}, ErrNilGrid
	}
	if !req.Grid.InBounds(req.Start) {
		return Result{}, fmt.Errorf("%w: %v", ErrStartOutOfBounds, req.Start)
	}
	if !req.Grid.InBounds(req.End) {
		return Result{}, fmt.Errorf("%w: %v", ErrEndOutOfBounds, req.End)
	}

	if req.Start == req.End {
		return Result{Path: []grid.Cell{req.Start}, Found: true}, nil
	}

	var (
		open     frontier
		bestG    = map[uint64]int{req.Start.Pack(): 0}
		cameFrom = map[uint64]grid.Cell{}
		closed   = map[uint64]bool{}
		seq      int
	)

	heap.Init(&open)
	heap.Push(&open, &item{cell: req.Start, g: 0, f: req.Start.ManhattanTo(req.End), seq: seq})

	for open.Len() > 0 {
		cur := heap.Pop(&open).(*item)
		key := cur.cell.Pack()

		if closed[key] {
			continue // stale lazy-decrease-key entry
		}
		closed[key] = true

		if cur.cell == req.End {
			return Result{Path: reconstructPath(cameFrom, req.Start, req.End), Found: true}, nil
		}

		for _, mv := range movesFrom(cur.cell) {
			if closed[mv.cell.Pack()] {
				continue
			}
			if !admissible(req, mv.cell) {
				continue
			}

			cost := cur.g + mv.baseCost(req.Model) + congestionPenalty(req, mv.cell)
			if prev, ok := bestG[mv.cell.Pack()]; ok && cost >= prev {
				continue
			}

			bestG[mv.cell.Pack()] = cost
			cameFrom[mv.cell.Pack()] = cur.cell
			seq++
			heap.Push(&open, &item{
				cell: mv.cell,
				g:    cost,
				f:    cost + mv.cell.ManhattanTo(req.End),
				seq:  seq,
			})
		}
	}

	return Result{Found: false}, nil
}

// admissible reports whether c may be entered: in bounds, not an Obstacle,
// not Routed, and not in the used-cells set — unless c is the search
// target itself, which may always be reached even if nominally marked.
func admissible(req Request, c grid.Cell) bool {
	if !req.Grid.InBounds(c) {
		return false
	}
	if c == req.End {
		return true
	}
	switch req.Grid.State(c) {
	case grid.Obstacle, grid.Routed:
		return false
	}
	if req.Used.Contains(c) {
		return false
	}
	return true
}

func congestionPenalty(req Request, c grid.Cell) int {
	if req.Congestion == nil {
		return 0
	}
	return req.Model.CongestionWeight * req.Congestion.At(c)
}

func reconstructPath(cameFrom map[uint64]grid.Cell, start, end grid.Cell) []grid.Cell {
	path := []grid.Cell{end}
	cur := end
	for cur != start {
		prev := cameFrom[cur.Pack()]
		path = append(path, prev)
		cur = prev
	}
	// path was built end→start; reverse to start→end.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// moveKind classifies a candidate move so its base cost can be resolved
// against the Request's Model.
type moveKind int

const (
	moveAxis moveKind = iota // East/West: base cost 1, the preferred axis
	moveWrong                // South/North: base cost Model.WrongDirectionCost
	moveVia                  // layer toggle: base cost Model.ViaCost
)

// move is a candidate neighbor cell and the kind of move that reaches it.
type move struct {
	cell grid.Cell
	kind moveKind
}

func (mv move) baseCost(m costmodel.Model) int {
	switch mv.kind {
	case moveAxis:
		return 1
	case moveWrong:
		return m.WrongDirectionCost
	default:
		return m.ViaCost
	}
}

// movesFrom enumerates the five candidate moves from c in a fixed order —
// East, West, South, North, Via — so that equal-f frontier entries tie-break
// deterministically on insertion order.
func movesFrom(c grid.Cell) []move {
	return []move{
		{cell: grid.Cell{X: c.X + 1, Y: c.Y, Layer: c.Layer}, kind: moveAxis},
		{cell: grid.Cell{X: c.X - 1, Y: c.Y, Layer: c.Layer}, kind: moveAxis},
		{cell: grid.Cell{X: c.X, Y: c.Y + 1, Layer: c.Layer}, kind: moveWrong},
		{cell: grid.Cell{X: c.X, Y: c.Y - 1, Layer: c.Layer}, kind: moveWrong},
		{cell: grid.Cell{X: c.X, Y: c.Y, Layer: 1 - c.Layer}, kind: moveVia},
	}
}
