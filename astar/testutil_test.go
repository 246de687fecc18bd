package astar_test

import (
	"math/rand"
	"testing"

	"github.com/routelab/gridroute/grid"
)

// mustGrid builds a grid from int literals or fails the test.
func mustGrid(t *testing.T, values [][]int) *grid.Grid {
	t.Helper()
	g, err := grid.FromInts(values)
	if err != nil {
		t.Fatalf("FromInts failed: %v", err)
	}

	return g
}

// checkPath asserts the structural invariants every returned path must
// hold: endpoints match, consecutive points are 4-adjacent, and no point
// sits on an obstacle cell.
func checkPath(t *testing.T, g *grid.Grid, path grid.Path, start, end grid.Point) {
	t.Helper()
	if len(path) == 0 {
		t.Fatal("path is empty")
	}
	if path[0] != start {
		t.Errorf("path starts at %v; want %v", path[0], start)
	}
	if path[len(path)-1] != end {
		t.Errorf("path ends at %v; want %v", path[len(path)-1], end)
	}
	for i := 1; i < len(path); i++ {
		if d := path[i-1].Manhattan(path[i]); d != 1 {
			t.Errorf("path[%d]=%v and path[%d]=%v are not 4-adjacent", i-1, path[i-1], i, path[i])
		}
	}
	for i, p := range path {
		if !g.Walkable(p) {
			t.Errorf("path[%d]=%v is not walkable", i, p)
		}
	}
}

// bfsDistance is an independent reference implementation: plain BFS
// distance from start to end, or -1 if unreachable. Deliberately naive so
// that it cannot share a bug with the A* under test.
func bfsDistance(g *grid.Grid, start, end grid.Point) int {
	type entry struct {
		p grid.Point
		d int
	}
	queue := []entry{{p: start}}
	seen := map[grid.Point]bool{start: true}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.p == end {
			return cur.d
		}
		for _, q := range g.Neighbors(cur.p, nil) {
			if !seen[q] {
				seen[q] = true
				queue = append(queue, entry{p: q, d: cur.d + 1})
			}
		}
	}

	return -1
}

// randomGrid produces a deterministic pseudo-random grid with the given
// obstacle density; (0,0) and the opposite corner are kept free.
func randomGrid(t *testing.T, rng *rand.Rand, rows, cols int, density float64) *grid.Grid {
	t.Helper()
	values := make([][]int, rows)
	for i := range values {
		values[i] = make([]int, cols)
		for j := range values[i] {
			if rng.Float64() < density {
				values[i][j] = 1
			}
		}
	}
	values[0][0] = 0
	values[rows-1][cols-1] = 0

	return mustGrid(t, values)
}
