// Package congestion provides a derived view over all currently routed
// nets: a per-cell count of how many routes presently use that cell.
// Path Search folds this count into a candidate move's cost as a soft
// penalty, discouraging (without forbidding) cells that are already
// heavily used.
//
// A Map is a transient derivation, rebuilt from the routed-nets map before
// each net's search batch. It could equally be cached across searches
// within the same net and invalidated only on rip-up or completion, but
// rebuilding is simpler and cheap at the grid sizes this router targets.
package congestion
