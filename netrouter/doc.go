// Package netrouter grows one net's multi-pin route.
//
// RouteNet implements the iterative Steiner-tree-by-nearest-pin growth
// algorithm: starting from the pin with the lowest y (ties broken by lowest
// x), it repeatedly finds the shortest (fewest-cell) Path Search connection
// from the growing frontier of already-reached pins to any still-unreached pin,
// folds the winner into the frontier, and repeats until every pin is
// connected or no connecting pair can be found.
//
// This mirrors the island-expansion idiom this module uses elsewhere to
// connect two regions of a 2D grid by shortest weighted path (there, two
// fixed regions; here, a multi-pin growing set, with the Path Search
// weighted by the cost model and congestion instead of a flat land/water
// cost), generalized to more than two endpoints and to the router's
// richer move set.
package netrouter
