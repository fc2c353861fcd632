// Package netorder ranks nets by estimated difficulty before the Global
// Router attempts them, so easy, short nets claim space first and hard,
// constrained geometries compete for what's left — empirically reducing
// contention during the first routing pass.
//
// The primary ordering is ascending estimated pin-to-pin length (the sum
// of Manhattan distances between consecutive pins in the net's given pin
// order). An optional per-net criticality hint, when supplied, breaks ties
// within equal estimated length by descending criticality — supplementing
// the distilled ordering rule with the original prototype's richer
// tie-break, without changing the primary ascending-length ordering.
package netorder
