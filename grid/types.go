// Package grid defines the core value types, constants, and sentinel
// errors for the grid subpackage of github.com/routelab/gridroute.
package grid

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNotRectangular indicates rows of differing lengths.
	ErrNotRectangular = errors.New("grid: all rows must have the same length")
	// ErrCellValue indicates a cell outside the {Free, Obstacle} domain.
	ErrCellValue = errors.New("grid: cell values must be Free (0) or Obstacle (1)")
)

// Cell is the occupancy state of a single grid cell.
type Cell uint8

const (
	// Free marks a traversable cell.
	Free Cell = 0
	// Obstacle marks an impassable cell.
	Obstacle Cell = 1
)

// Point is a grid coordinate: X is the row, Y is the column, both ≥ 0.
// Point is a comparable value type and may be used as a map key.
type Point struct {
	X int // row
	Y int // column
}

// Manhattan returns the L1 distance |p.X−q.X| + |p.Y−q.Y|.
// It never overestimates the true 4-directional path cost, which makes
// it an admissible (and consistent) A* heuristic on unit-cost grids.
func (p Point) Manhattan(q Point) int {
	dx := p.X - q.X
	if dx < 0 {
		dx = -dx
	}
	dy := p.Y - q.Y
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// String renders the point as "(row,column)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Path is a non-empty sequence of points in which consecutive entries
// are 4-adjacent (Manhattan distance exactly 1). The first entry is the
// requested start, the last the requested end, and no entry lies on an
// Obstacle cell of the associated Grid.
type Path []Point

// TotalDistance is the number of moves along the path: len(path)−1.
// An empty path reports 0.
func (p Path) TotalDistance() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// FingerprintSize is the byte length of a grid content fingerprint.
const FingerprintSize = 32

// Fingerprint identifies grid content (dimensions + cells) for cache-key
// purposes. Equal content yields equal fingerprints; it is a comparable
// value type and may be used inside map keys.
type Fingerprint [FingerprintSize]byte

// String renders the first 8 fingerprint bytes as hex, enough to tell
// grids apart in logs without flooding them.
func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:8])
}
