// Package reach provides multi-target breadth-first search over an
// obstacle grid, resolving shortest paths from one source to many
// targets in a single traversal.
//
// What
//
//   - Paths explores walkable cells in non-decreasing distance from a
//     source cell and returns a map from each reached target to its
//     shortest path.
//   - A target resolves the first time it is dequeued; on a unit-cost
//     4-connected grid the BFS dequeue order is the cost order, so the
//     recorded path is optimal.
//   - Traversal stops as soon as every resolvable target has resolved,
//     so clustered targets cost far less than a full-grid sweep.
//   - Targets that cannot be reached are simply absent from the result;
//     absence is the signal, not an error.
//
// Why
//
//   - Route planning over k waypoints needs the legs between many pairs
//     of cells. One BFS per source replaces k single-pair searches and
//     shares the frontier between them.
//   - The matrix-heuristic ordering strategy builds its whole leg table
//     this way: one Paths call per source against all other stops.
//
// Determinism
//
//	Neighbors expand in the fixed order +column, +row, −column, −row
//	(see grid.Neighbors), and the queue is strictly FIFO, so the visit
//	sequence and every returned path are reproducible across runs.
//
// Complexity (R×C cells)
//
//   - Time:   O(R×C) worst case; early stop usually examines far less.
//   - Memory: O(R×C) for the visited set and predecessor map.
//
// Errors
//
//   - ErrNilGrid       if the grid pointer is nil.
//   - ErrSourceInvalid if the source is out of bounds or on an obstacle.
package reach
