// Package planner: leg-table waypoint ordering.
package planner

import (
	"fmt"

	"github.com/routelab/gridroute/grid"
	"github.com/routelab/gridroute/reach"
)

// planMatrix orders waypoints greedily by true leg length: it first
// builds a leg table with one multi-target traversal per source (start
// and every waypoint), then repeatedly walks to the nearest unvisited
// waypoint by table distance, finishing with the table leg to end.
//
// The table is rebuilt per request and deliberately bypasses the
// injected path cache: its legs come from a breadth-first frontier
// whose tie-breaking differs from the point-to-point search, and mixing
// the two shapes in one cache would make results depend on request
// history.
//
// A step with no reachable candidate left, or a missing final leg to
// end, fails the request with ErrNoPath; on an undirected grid that
// can only mean some stop sits in another component, which no visiting
// order could fix. Ties on leg length resolve to the lowest waypoint
// index.
//
// Complexity: (count+1) traversals of O(R×C) each, then O(count²)
// comparisons.
func planMatrix(g *grid.Grid, start, end grid.Point, waypoints []grid.Point) (grid.Path, error) {
	// 1) Leg table: shortest paths from every source to every stop.
	targets := make([]grid.Point, 0, len(waypoints)+1)
	targets = append(targets, waypoints...)
	targets = append(targets, end)

	table := make(map[grid.Point]map[grid.Point]grid.Path, len(waypoints)+1)
	for _, src := range append([]grid.Point{start}, waypoints...) {
		legs, err := reach.Paths(g, src, targets)
		if err != nil {
			return nil, err
		}
		table[src] = legs
	}

	// 2) Greedy walk: nearest unvisited waypoint by actual leg length.
	route := grid.Path(nil)
	visited := make([]bool, len(waypoints))
	current := start
	for range waypoints {
		next := -1
		nextLen := 0
		for i, wp := range waypoints {
			if visited[i] {
				continue
			}
			leg, ok := table[current][wp]
			if !ok {
				continue // disconnected stop
			}
			if d := leg.TotalDistance(); next < 0 || d < nextLen {
				next, nextLen = i, d
			}
		}
		if next < 0 {
			return nil, fmt.Errorf("%w: no reachable waypoint from %v", ErrNoPath, current)
		}
		route = stitch(route, table[current][waypoints[next]])
		visited[next] = true
		current = waypoints[next]
	}

	// 3) Final leg to end. Its absence fails the whole request rather
	//    than returning a route that strands short of the destination.
	last, ok := table[current][end]
	if !ok {
		return nil, fmt.Errorf("%w: no leg %v -> %v", ErrNoPath, current, end)
	}

	return stitch(route, last), nil
}
