// Package gridroute is a two-layer grid maze router for integrated-circuit-style
// net routing.
//
// 🚀 What is gridroute?
//
//	Given a rectangular grid with obstacle cells and a list of multi-pin
//	nets, gridroute computes, for every net, a connected set of grid cells
//	joining all of that net's pins while honoring obstacles, avoiding
//	overlap with other nets' routes, and minimizing a weighted cost that
//	penalizes layer switches (vias) and routing against a layer's
//	preferred direction.
//
// Under the hood, everything is organized under focused subpackages:
//
//	grid/        — the two-layer occupancy grid and its Cell type
//	costmodel/   — per-move cost constants (via, wrong-direction, congestion)
//	congestion/  — derived per-cell congestion counts, fed back as a soft penalty
//	pathsearch/  — weighted best-first search on the (x, y, layer) lattice
//	netorder/    — ranks nets by estimated difficulty before routing
//	netrouter/   — grows one net's multi-pin route via repeated Path Search
//	ripup/       — the global routing pass and the rip-up-and-reroute loop
//	ioformat/    — the text input/output file formats
//	config/      — optional YAML overrides for cost-model and rip-up options
//	telemetry/   — run counters (nets routed/failed, rip-up iterations)
//	cmd/gridroute — the command-line entry point
//
// Quick ASCII example, one net on two layers:
//
//	layer 1:  o . . .        layer 2:  . . . .
//	          . . . .                  . . . .
//	          . . . o                  . . . .
//
package gridroute
