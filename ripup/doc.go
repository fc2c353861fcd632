// Package ripup implements the Global Router and Rip-Up Controller: it
// orders nets, performs a first routing pass with netrouter, then repeatedly
// rips up the routed nets most in conflict with each still-failing net and
// retries, up to a fixed iteration cap.
//
// The shuffle applied to a failed batch that made no progress uses a
// SplitMix64-derived per-iteration RNG stream, the same seed-mixing idiom
// this module's heuristic solvers use to decorrelate sub-streams from a
// single base seed.
package ripup
