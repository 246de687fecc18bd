// Package gridroute is a route-planning engine for rectangular obstacle
// grids: shortest or near-shortest paths from a start cell to an end cell
// through an arbitrary set of mandatory waypoints, visited in an order the
// engine chooses itself.
//
// 🚀 What is gridroute?
//
//	A focused, deterministic planning core that brings together:
//		• Grid primitives: immutable obstacle grids, points, paths
//		• Shortest paths: A* with Manhattan heuristic (astar/)
//		• Multi-target reachability: single-pass BFS legs (reach/)
//		• Waypoint ordering: exhaustive and greedy strategies (planner/)
//		• Memoization: fingerprint-keyed, capacity-bounded path cache (pathcache/)
//		• A process facade with config, logging and metrics (engine/)
//
// ✨ Why choose gridroute?
//
//   - Deterministic – identical inputs always produce the identical path,
//     down to tie-breaking inside the A* frontier
//   - Predictable – strategy selection is a pure function of the requested
//     mode and the waypoint count, with documented ceilings
//   - Concurrency-safe – the only shared state is the path cache, guarded
//     for simultaneous planning calls
//   - Library-first – every subpackage is usable on its own; the engine
//     facade is convenience, not a requirement
//
// Under the hood, everything is organized under seven subpackages:
//
//	grid/      — Grid, Point, Path value types, validation, fingerprints
//	astar/     — A* shortest-path search between two cells
//	reach/     — one-to-many shortest paths in a single traversal
//	pathcache/ — memoized search results shared across requests
//	planner/   — waypoint-ordering strategies and route stitching
//	config/    — engine tunables (TOML-backed)
//	engine/    — process-level facade: validation, cache ownership, telemetry
//
// Quick ASCII example:
//
//	    S . . █ .
//	    . █ w █ .
//	    . █ . . E
//
//	S→E must detour around walls (█) and pick up the waypoint w on the way.
//
// Movement is 4-directional with uniform cost 1; diagonal movement and
// weighted terrain are out of scope. Dive into the per-package docs for
// contracts, complexity and error semantics.
//
//	go get github.com/routelab/gridroute
package gridroute
