// Package astar implements A* shortest-path search between two cells of
// an obstacle grid.
//
// Overview:
//
//   - Find computes the minimum-cost path between start and end under
//     4-directional unit-cost movement, or reports ErrNoPath when the end
//     cell cannot be reached without crossing obstacles or leaving the
//     grid.
//   - The heuristic is the Manhattan distance to the end cell. On a
//     unit-cost 4-connected grid it is admissible and consistent, so the
//     first time the end is popped from the frontier its cost is optimal.
//
// Determinism:
//
//   - The frontier is a min-heap ordered by f = g + h. Ties are broken by
//     a monotonically increasing insertion sequence number, independent of
//     any stability guarantee of the underlying heap.
//   - Neighbors expand in the fixed order +column, +row, −column, −row
//     (see grid.Neighbors). Together these pin which of the equal-cost
//     paths is returned, reproducible across runs and platforms.
//
// Complexity (R×C cells):
//
//   - Time:  O(R×C · log(R×C)): every cell enters the frontier at most
//     once per cost improvement; each heap operation costs O(log N).
//   - Space: O(R×C) for the best-cost and predecessor maps.
//
// Concurrency:
//
//   - Find is synchronous, CPU-bound, and yields nowhere; callers wanting
//     bounded latency must impose a cutoff externally. Distinct calls are
//     independent and may run concurrently on the same immutable grid.
//
// Errors (sentinel):
//
//   - ErrNilGrid      if the grid pointer is nil.
//   - ErrStartInvalid if start is out of bounds or on an obstacle.
//   - ErrEndInvalid   if end is out of bounds or on an obstacle.
//   - ErrNoPath       if end is unreachable from start; the expected
//     outcome for solvable-looking but walled-off instances, not a fault.
//
// Memoization lives outside this package: see pathcache for the
// fingerprint-keyed result cache the planner routes calls through.
package astar
