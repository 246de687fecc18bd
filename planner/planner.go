// Package planner - unified dispatcher for multi-waypoint route
// planning.
//
// This file provides the canonical entry point:
//
//   - Plan: validate the request, select an ordering strategy, route to
//     it, and assemble the final start→waypoints→end path.
//
// Design principles:
//   - Deterministic: fixed enumeration orders, index-order tie-breaks,
//     no randomness, no map-iteration dependence.
//   - Strict sentinels: callers branch on errors.Is against types.go.
//   - The injected PathCache is an optimization only; results are
//     byte-identical with and without it.
package planner

import (
	"errors"
	"fmt"

	"github.com/routelab/gridroute/astar"
	"github.com/routelab/gridroute/grid"
	"github.com/routelab/gridroute/pathcache"
)

// Plan computes a route on g from start to end that passes through
// every waypoint, choosing the visiting order per the selected
// strategy.
//
// Contracts:
//
//   - g must be non-nil; endpoints and waypoints must be walkable
//     (enforced by the underlying searches).
//   - waypoints may be empty; the route is then the single start→end
//     leg and Result.Strategy still reports the selector's choice.
//   - mode must be one of ModeOptimal, ModeBalanced, ModeFast.
//
// Errors: ErrNilGrid, ErrUnknownMode, ErrOptionViolation, ErrNoPath,
// plus the underlying search's input sentinels for unwalkable
// endpoints.
//
// Complexity: one A* per leg; the exhaustive strategy orders
// O(count!) candidate sequences over memoized legs, the heuristics
// O(count²) comparisons.
func Plan(g *grid.Grid, start, end grid.Point, waypoints []grid.Point, mode Mode, opts ...Option) (Result, error) {
	// Stage 1 - options and validation.
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if mode > ModeFast {
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownMode, mode)
	}

	// Stage 2 - strategy selection. Always runs, even for an empty
	// waypoint set: Result reports what the request would be planned
	// with.
	strategy := Select(mode, len(waypoints), o.Limits)

	// Stage 3 - route to the strategy and assemble the path.
	r := &router{g: g, cache: o.Cache}
	var (
		path grid.Path
		err  error
	)
	switch {
	case len(waypoints) == 0:
		path, err = r.leg(start, end)
	case strategy == StrategyExhaustive:
		path, err = planExhaustive(r, start, end, waypoints)
	case strategy == StrategyMatrix:
		path, err = planMatrix(g, start, end, waypoints)
	default:
		path, err = planDirect(r, start, end, waypoints)
	}
	if err != nil {
		return Result{}, err
	}

	return Result{
		Path:          path,
		TotalDistance: path.TotalDistance(),
		Strategy:      strategy,
	}, nil
}

// router computes individual start→end legs, through the cache when
// one is configured. Cached and uncached legs are identical: the
// search is deterministic, so memoization can never change a result.
type router struct {
	g     *grid.Grid
	cache *pathcache.Cache
}

// leg returns the shortest path from → to, translating the search's
// no-path sentinel into the planner's.
func (r *router) leg(from, to grid.Point) (grid.Path, error) {
	p, err := r.find(from, to)
	if err != nil {
		if errors.Is(err, astar.ErrNoPath) {
			return nil, fmt.Errorf("%w: no leg %v -> %v", ErrNoPath, from, to)
		}

		return nil, err
	}

	return p, nil
}

// find runs the point-to-point search, memoized when a cache is set.
func (r *router) find(from, to grid.Point) (grid.Path, error) {
	if r.cache == nil {
		return astar.Find(r.g, from, to)
	}
	k := pathcache.Key{Fingerprint: r.g.Fingerprint(), Start: from, End: to}

	return r.cache.Resolve(k, func() (grid.Path, error) {
		return astar.Find(r.g, from, to)
	})
}

// stitch appends leg to route, dropping the duplicated joint point when
// route already ends where leg begins. Every strategy assembles its
// final path through this single rule, so no route ever carries a
// doubled waypoint cell.
func stitch(route, leg grid.Path) grid.Path {
	if len(route) > 0 && len(leg) > 0 && route[len(route)-1] == leg[0] {
		return append(route, leg[1:]...)
	}

	return append(route, leg...)
}
