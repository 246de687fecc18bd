// File: planner/testutil_test.go
package planner_test

import (
	"testing"

	"github.com/routelab/gridroute/grid"
)

// mustGrid builds a grid from int rows or fails the test.
func mustGrid(t *testing.T, rows [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.FromInts(rows)
	if err != nil {
		t.Fatalf("grid setup failed: %v", err)
	}
	return g
}

// checkRoute asserts the structural route invariants: correct
// endpoints, 4-adjacent consecutive points, no obstacle cells, and no
// doubled joint cells. Revisiting a cell later in the route is legal;
// standing still (two identical consecutive points) is not.
func checkRoute(t *testing.T, g *grid.Grid, p grid.Path, start, end grid.Point) {
	t.Helper()
	if len(p) == 0 {
		t.Fatalf("empty route %v -> %v", start, end)
	}
	if p[0] != start || p[len(p)-1] != end {
		t.Fatalf("endpoints = %v..%v; want %v..%v", p[0], p[len(p)-1], start, end)
	}
	for i, pt := range p {
		if !g.Walkable(pt) {
			t.Fatalf("route[%d] = %v is not walkable", i, pt)
		}
		if i == 0 {
			continue
		}
		if p[i-1] == pt {
			t.Fatalf("route[%d-1..%d] doubles cell %v", i, i, pt)
		}
		if p[i-1].Manhattan(pt) != 1 {
			t.Fatalf("route[%d-1..%d] = %v..%v not 4-adjacent", i, i, p[i-1], pt)
		}
	}
}

// visitsAll asserts every waypoint occurs somewhere on the route.
func visitsAll(t *testing.T, p grid.Path, waypoints []grid.Point) {
	t.Helper()
	on := make(map[grid.Point]bool, len(p))
	for _, pt := range p {
		on[pt] = true
	}
	for _, wp := range waypoints {
		if !on[wp] {
			t.Errorf("waypoint %v missing from route %v", wp, p)
		}
	}
}
