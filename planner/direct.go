// Package planner: estimate-driven waypoint ordering.
package planner

import (
	"github.com/routelab/gridroute/grid"
)

// planDirect orders waypoints greedily by the Manhattan estimate: at
// each step it commits to the unvisited waypoint with the smallest
// estimated distance from the current position, then computes that one
// leg (through the cache when configured). Only the legs actually
// walked are ever searched, which is what makes this the cheapest
// strategy and the fallback for oversized waypoint sets.
//
// The estimate ignores obstacles, so the committed order can be far
// longer than what the leg-informed strategies find; the route between
// the committed stops is still assembled from shortest legs. A missing
// leg means the stop lies in another component of the grid, where no
// visiting order could reach it either: ErrNoPath is then the right
// answer, not a greedy artifact. Ties on the estimate resolve to the
// lowest waypoint index.
//
// Complexity: O(count²) estimate comparisons plus count+1 searches.
func planDirect(r *router, start, end grid.Point, waypoints []grid.Point) (grid.Path, error) {
	route := grid.Path(nil)
	visited := make([]bool, len(waypoints))
	current := start

	for range waypoints {
		// 1) Commit to the nearest unvisited waypoint by estimate.
		next := -1
		nextEst := 0
		for i, wp := range waypoints {
			if visited[i] {
				continue
			}
			if d := current.Manhattan(wp); next < 0 || d < nextEst {
				next, nextEst = i, d
			}
		}

		// 2) Pay for the one committed leg.
		leg, err := r.leg(current, waypoints[next])
		if err != nil {
			return nil, err
		}
		route = stitch(route, leg)
		visited[next] = true
		current = waypoints[next]
	}

	// 3) Close the route onto the destination.
	leg, err := r.leg(current, end)
	if err != nil {
		return nil, err
	}

	return stitch(route, leg), nil
}
