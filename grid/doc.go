// Package grid provides the value types shared by every gridroute
// algorithm: obstacle grids, points, and paths.
//
// What:
//
//   - Grid wraps a rectangular matrix of {Free, Obstacle} cells and is
//     immutable once built (inputs are deep-copied).
//   - Point is a comparable (row, column) coordinate pair, usable as a
//     map key.
//   - Path is an ordered sequence of 4-adjacent points; its total
//     distance is len(path)−1.
//   - Fingerprint is a content hash identifying grid dimensions and cell
//     values, used to key cached search results.
//
// Why:
//
//   - Route planning: one validated, immutable grid value flows through
//     A*, reachability search, and the planner without re-checking shape.
//   - Memoization: two grids with equal content share a fingerprint, so
//     cached paths survive grid re-construction.
//
// Adjacency:
//
//   - Movement is 4-directional with uniform cost 1. Neighbors are
//     always produced in the fixed order +column, +row, −column, −row;
//     search determinism depends on this order staying put.
//
// Complexity:
//
//   - New/FromInts:  O(R×C) time and memory (validation + deep copy).
//   - Fingerprint:   O(R×C) on first call, O(1) afterwards (cached).
//   - InBounds, At, Walkable, Neighbors: O(1).
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNotRectangular: rows have differing lengths.
//   - ErrCellValue:      a cell is neither Free nor Obstacle.
package grid
