package grid

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sync"
)

// neighborOffsets is the fixed 4-directional expansion order:
// +column, +row, −column, −row. Search determinism (which of several
// equal-cost paths is returned) depends on this order staying fixed.
var neighborOffsets = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// Grid is an immutable view of a rectangular obstacle matrix.
// Construct it with New or FromInts; the input is deep-copied, so the
// grid cannot be mutated for the lifetime of a planning request.
type Grid struct {
	rows    int
	columns int
	cells   [][]Cell

	fpOnce sync.Once
	fp     Fingerprint
}

// New constructs a Grid from a non-empty, rectangular matrix of cells.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNotRectangular if any row length differs,
// ErrCellValue if any cell is outside {Free, Obstacle}.
// Complexity: O(R×C) time and memory.
func New(cells [][]Cell) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, columns := len(cells), len(cells[0])

	// Deep copy to prevent external mutation, validating as we go.
	copied := make([][]Cell, rows)
	for i, row := range cells {
		if len(row) != columns {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotRectangular, i, len(row), columns)
		}
		copied[i] = make([]Cell, columns)
		for j, c := range row {
			if c != Free && c != Obstacle {
				return nil, fmt.Errorf("%w: cell (%d,%d)=%d", ErrCellValue, i, j, c)
			}
			copied[i][j] = c
		}
	}

	return &Grid{rows: rows, columns: columns, cells: copied}, nil
}

// FromInts constructs a Grid from a matrix of raw integers, where
// 0 means Free and 1 means Obstacle. Any other value yields ErrCellValue.
// Convenient for literal grids in tests and for callers whose upstream
// representation is plain ints.
func FromInts(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	cells := make([][]Cell, len(values))
	for i, row := range values {
		cells[i] = make([]Cell, len(row))
		for j, v := range row {
			if v != 0 && v != 1 {
				return nil, fmt.Errorf("%w: cell (%d,%d)=%d", ErrCellValue, i, j, v)
			}
			cells[i][j] = Cell(v)
		}
	}

	return New(cells)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.columns }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.rows && p.Y >= 0 && p.Y < g.columns
}

// At returns the cell value at p. The point must be in bounds;
// use InBounds or Walkable for unchecked coordinates.
func (g *Grid) At(p Point) Cell {
	return g.cells[p.X][p.Y]
}

// Walkable reports whether p is in bounds and Free.
// Complexity: O(1).
func (g *Grid) Walkable(p Point) bool {
	return g.InBounds(p) && g.cells[p.X][p.Y] == Free
}

// Neighbors appends the walkable 4-neighbors of p to buf and returns the
// extended slice, always in the fixed order +column, +row, −column, −row.
// Passing buf[:0] lets hot loops reuse one allocation across expansions.
func (g *Grid) Neighbors(p Point, buf []Point) []Point {
	for _, d := range neighborOffsets {
		q := Point{X: p.X + d[0], Y: p.Y + d[1]}
		if g.Walkable(q) {
			buf = append(buf, q)
		}
	}

	return buf
}

// Fingerprint returns the content fingerprint of the grid: a SHA-256
// digest over the dimensions and the row-major cell values. It is
// computed once on first use and cached; equal grid content always
// yields an equal fingerprint.
func (g *Grid) Fingerprint() Fingerprint {
	g.fpOnce.Do(g.computeFingerprint)

	return g.fp
}

// computeFingerprint hashes dimensions first so that, say, a 1×6 and a
// 2×3 grid with identical cell streams stay distinct.
func (g *Grid) computeFingerprint() {
	h := sha256.New()

	var header [16]byte
	binary.BigEndian.PutUint64(header[0:8], uint64(g.rows))
	binary.BigEndian.PutUint64(header[8:16], uint64(g.columns))
	h.Write(header[:])

	row := make([]byte, g.columns)
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.columns; j++ {
			row[j] = byte(g.cells[i][j])
		}
		h.Write(row)
	}

	copy(g.fp[:], h.Sum(nil))
}
