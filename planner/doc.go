// Package planner computes full routes through mandatory waypoints on
// an obstacle grid: start → every waypoint in an engine-chosen order →
// end.
//
// What
//
//   - Plan validates the request, lets the selector pick an ordering
//     strategy, and assembles one contiguous path from individually
//     optimal legs, dropping the duplicated joint cell between legs.
//   - Three interchangeable strategies trade optimality for work:
//   - StrategyExhaustive: every visiting order, first minimal total
//     kept. Exact over the legs; O(count!).
//   - StrategyMatrix: greedy over a table of true leg lengths built
//     with one multi-target traversal per source; O(count²) after
//     count+1 traversals.
//   - StrategyDirect: greedy over the Manhattan estimate, one
//     search per committed leg; cheapest, least informed.
//   - Select maps (mode, waypoint count, Limits) onto a strategy with
//     a first-match-wins rule table; Result.Strategy reports the
//     choice.
//
// Ordering quality
//
//	Both heuristics are greedy constructive: they never revisit a
//	committed stop and run no local-improvement pass afterwards. The
//	route between the chosen stops is always built from shortest legs;
//	only the visiting order may be suboptimal.
//
// Determinism
//
//	Permutations enumerate in a fixed order, greedy ties resolve to
//	the lowest waypoint index, and every leg search is deterministic,
//	so identical inputs produce byte-identical paths. The injected
//	cache cannot change results, only skip work.
//
// Errors
//
//   - ErrNilGrid         if the grid pointer is nil.
//   - ErrUnknownMode     for a mode outside optimal/balanced/fast.
//   - ErrOptionViolation for invalid Limits.
//   - ErrNoPath          when start, waypoints, and end do not all lie
//     in one connected component, so no visiting order can exist.
//
// Use astar directly for single start→end queries; Plan adds value
// when waypoints force an ordering decision.
package planner
