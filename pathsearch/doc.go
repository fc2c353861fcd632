// Package pathsearch implements the router's single-source,
// single-target weighted best-first search on the three-dimensional
// (x, y, layer) lattice.
//
// Search explores a 3-neighbor-class move set from each popped cell:
//
//	East/West  (±x, layer unchanged)   base cost 1      (preferred axis)
//	South/North (±y, layer unchanged)  base cost Model.WrongDirectionCost
//	Via        (layer toggled, x,y unchanged) base cost Model.ViaCost
//
// The frontier is a binary heap keyed on f = g + h, where g is the
// accumulated cost from Start and h is the Manhattan distance (ignoring
// layer) to End. h never overestimates true cost because every real step
// costs at least 1 in x, so the heuristic remains admissible even though
// y-moves and via-moves may cost more than a unit step.
//
// Equal-f entries are broken by insertion order, so two runs over the same
// Grid and Request produce byte-identical paths — this is what lets the
// corpus's "replace the re-sorted list with a binary heap" DESIGN NOTE
// hold without changing observable behavior (adapted from this module's
// Dijkstra implementation's lazy-decrease-key heap, narrowed from
// single-source-all-targets to single-source-single-target with an early
// exit on popping End).
package pathsearch
