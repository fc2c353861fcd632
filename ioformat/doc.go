// Package ioformat reads the router's line-oriented input grammar and
// writes its line-oriented output grammar.
//
// Input grammar:
//
//	<width>x<height>
//	OBS (x, y)
//	<net_name> (layer, x, y) (layer, x, y) ...
//
// Layers are 1-based on disk, 0-based once parsed. Blank lines are
// ignored; pins outside the grid are dropped silently; nets left with
// fewer than two valid pins are skipped with a warning, not an error.
package ioformat
