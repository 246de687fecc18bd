// File: planner/example_test.go
package planner_test

import (
	"fmt"

	"github.com/routelab/gridroute/grid"
	"github.com/routelab/gridroute/planner"
)

// ExamplePlan routes through a single mandatory waypoint in the top
// right corner on the way to the far corner.
func ExamplePlan() {
	g, _ := grid.FromInts([][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	start := grid.Point{X: 0, Y: 0}
	end := grid.Point{X: 2, Y: 2}
	waypoints := []grid.Point{{X: 0, Y: 2}}

	res, err := planner.Plan(g, start, end, waypoints, planner.ModeOptimal)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("strategy:", res.Strategy)
	fmt.Println("distance:", res.TotalDistance)
	fmt.Println("route:", res.Path)

	// Output:
	// strategy: exhaustive
	// distance: 4
	// route: [(0,0) (0,1) (0,2) (1,2) (2,2)]
}

// ExampleSelect shows the degradation ladder for a growing waypoint
// set in optimal mode.
func ExampleSelect() {
	lim := planner.DefaultLimits()
	for _, count := range []int{3, 9, 12} {
		fmt.Printf("%d waypoints: %v\n", count, planner.Select(planner.ModeOptimal, count, lim))
	}

	// Output:
	// 3 waypoints: exhaustive
	// 9 waypoints: matrix-heuristic
	// 12 waypoints: direct-heuristic
}
