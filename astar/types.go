// Package astar defines the sentinel errors for A* search on obstacle
// grids.
package astar

import "errors"

// Sentinel errors returned by Find.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Find.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrStartInvalid indicates the start point is out of bounds or on an
	// obstacle cell.
	ErrStartInvalid = errors.New("astar: start point is not walkable")

	// ErrEndInvalid indicates the end point is out of bounds or on an
	// obstacle cell.
	ErrEndInvalid = errors.New("astar: end point is not walkable")

	// ErrNoPath indicates the end point is unreachable from the start
	// under the grid's obstacle layout. This is a normal outcome of a
	// well-formed query, distinct from the input errors above.
	ErrNoPath = errors.New("astar: no path between start and end")
)
