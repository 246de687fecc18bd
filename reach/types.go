// Package reach defines the sentinel errors for multi-target
// breadth-first search on obstacle grids.
package reach

import "errors"

// Sentinel errors returned by Paths.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to Paths.
	ErrNilGrid = errors.New("reach: grid is nil")

	// ErrSourceInvalid indicates the source point is out of bounds or on
	// an obstacle cell.
	ErrSourceInvalid = errors.New("reach: source point is not walkable")
)
