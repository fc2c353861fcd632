// Package costmodel holds the per-move cost constants Path Search uses to
// weigh candidate moves: the via cost, the wrong-direction cost, and the
// congestion weight applied per unit of congestion at a candidate cell.
//
// Defaults match the values named in the router's external interface:
// VIA_COST=10, WRONG_DIRECTION_COST=2, CONGESTION_WEIGHT=2. Callers may
// override any of them via functional options, the way this codebase's
// algorithm packages expose tunables — construction never fails on bad
// input; Option constructors panic on invalid values, matching the
// convention that a negative cost is a caller bug, not routable data.
package costmodel
