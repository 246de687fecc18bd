// File: reach/example_test.go
package reach_test

import (
	"fmt"

	"github.com/routelab/gridroute/grid"
	"github.com/routelab/gridroute/reach"
)

// ExamplePaths resolves three targets in one traversal. The wall below
// the source forces a detour, and the wall at column 3 seals the last
// target off entirely.
// Scenario:
//
//	S . . █ T₃         S  = source (0,0)
//	█ █ . █ .          T₁ = (2,0), T₂ = (2,2), T₃ = (0,4)
//	T₁ . T₂ █ .        █  = obstacle
func ExamplePaths() {
	g, _ := grid.FromInts([][]int{
		{0, 0, 0, 1, 0},
		{1, 1, 0, 1, 0},
		{0, 0, 0, 1, 0},
	})
	source := grid.Point{X: 0, Y: 0}
	targets := []grid.Point{
		{X: 2, Y: 0},
		{X: 2, Y: 2},
		{X: 0, Y: 4},
	}

	paths, err := reach.Paths(g, source, targets)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, tgt := range targets {
		if p, ok := paths[tgt]; ok {
			fmt.Printf("%v: distance %d\n", tgt, p.TotalDistance())
		} else {
			fmt.Printf("%v: unreachable\n", tgt)
		}
	}

	// Output:
	// (2,0): distance 6
	// (2,2): distance 4
	// (0,4): unreachable
}
