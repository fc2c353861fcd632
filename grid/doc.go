// Package grid owns the two-layer occupancy grid for the router and the
// Cell type addressing it.
//
// A Grid is a three-dimensional occupancy table G[layer][y][x] whose
// entries hold one of four mutually exclusive states: Empty, Obstacle,
// PinTemp, or Routed. Obstacle cells never transition to any other state;
// every other transition is driven by the net router (pin marks, routed
// marks) or the rip-up controller (clearing a ripped net's cells).
//
// Grid is not safe for concurrent use. The router's single-threaded
// cooperative scheduling model (one search at a time, strict program
// order) makes internal locking unnecessary; this is a deliberate
// departure from this module's general-purpose graph ancestor, which
// guards every mutation with a sync.RWMutex because it expects
// multi-goroutine callers.
package grid
