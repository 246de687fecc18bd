// File: engine/example_test.go
package engine_test

import (
	"context"
	"fmt"

	"github.com/routelab/gridroute/config"
	"github.com/routelab/gridroute/engine"
	"github.com/routelab/gridroute/grid"
)

// ExampleEngine_Plan plans the same request twice; the second run is
// served entirely from the engine's path cache.
func ExampleEngine_Plan() {
	e, _ := engine.New(config.Default())
	g, _ := grid.FromInts([][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	start := grid.Point{X: 0, Y: 0}
	end := grid.Point{X: 2, Y: 2}
	waypoints := []grid.Point{{X: 0, Y: 2}}

	ctx := context.Background()
	for i := 1; i <= 2; i++ {
		res, err := e.Plan(ctx, g, start, end, waypoints, "optimal")
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("run %d: %v, distance %d\n", i, res.Strategy, res.TotalDistance)
	}

	st := e.CacheStats()
	fmt.Printf("cache: %d hits, %d misses\n", st.Hits, st.Misses)

	// Output:
	// run 1: exhaustive, distance 4
	// run 2: exhaustive, distance 4
	// cache: 2 hits, 2 misses
}
