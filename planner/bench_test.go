// File: planner/bench_test.go
package planner_test

import (
	"testing"

	"github.com/routelab/gridroute/grid"
	"github.com/routelab/gridroute/pathcache"
	"github.com/routelab/gridroute/planner"
)

// benchSetup builds an open 16×16 grid with six spread-out waypoints.
// An open grid keeps every order feasible, so the benchmarks measure
// strategy cost rather than failure handling.
func benchSetup(b *testing.B) (*grid.Grid, grid.Point, grid.Point, []grid.Point) {
	const n = 16
	cells := make([][]int, n)
	for y := 0; y < n; y++ {
		cells[y] = make([]int, n)
	}
	g, err := grid.FromInts(cells)
	if err != nil {
		b.Fatalf("setup FromInts failed: %v", err)
	}
	wps := []grid.Point{
		{X: 2, Y: 13}, {X: 13, Y: 2}, {X: 7, Y: 7},
		{X: 4, Y: 4}, {X: 11, Y: 11}, {X: 13, Y: 13},
	}

	return g, grid.Point{X: 0, Y: 0}, grid.Point{X: n - 1, Y: n - 1}, wps
}

// BenchmarkPlan_Exhaustive measures 6! order enumeration over memoized
// legs. Complexity: O(count!·count) over O(count²) searches.
func BenchmarkPlan_Exhaustive(b *testing.B) {
	g, start, end, wps := benchSetup(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := planner.Plan(g, start, end, wps, planner.ModeOptimal); err != nil {
			b.Fatalf("Plan failed: %v", err)
		}
	}
}

// BenchmarkPlan_Matrix measures the leg-table heuristic: 7 multi-target
// traversals plus the greedy walk.
func BenchmarkPlan_Matrix(b *testing.B) {
	g, start, end, wps := benchSetup(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := planner.Plan(g, start, end, wps, planner.ModeBalanced); err != nil {
			b.Fatalf("Plan failed: %v", err)
		}
	}
}

// BenchmarkPlan_Direct measures the estimate heuristic: 7 point-to-point
// searches and nothing else.
func BenchmarkPlan_Direct(b *testing.B) {
	g, start, end, wps := benchSetup(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := planner.Plan(g, start, end, wps, planner.ModeFast); err != nil {
			b.Fatalf("Plan failed: %v", err)
		}
	}
}

// BenchmarkPlan_ExhaustiveWarmCache measures the exhaustive strategy
// when every leg is already memoized across requests, the steady state
// of a long-running engine.
func BenchmarkPlan_ExhaustiveWarmCache(b *testing.B) {
	g, start, end, wps := benchSetup(b)
	c := pathcache.New(1000)
	if _, err := planner.Plan(g, start, end, wps, planner.ModeOptimal, planner.WithCache(c)); err != nil {
		b.Fatalf("warmup Plan failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := planner.Plan(g, start, end, wps, planner.ModeOptimal, planner.WithCache(c)); err != nil {
			b.Fatalf("Plan failed: %v", err)
		}
	}
}
