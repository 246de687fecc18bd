// Package reach implements multi-target breadth-first search on
// obstacle grids.
//
// A single traversal from one source resolves the shortest paths to any
// number of target cells. On a unit-cost 4-connected grid BFS dequeues
// cells in non-decreasing distance, so the first time a target leaves
// the queue its recorded predecessor chain is already optimal. The
// traversal stops as soon as the last pending target resolves, which is
// what makes the one-source-many-targets shape cheaper than repeated
// single-pair searches.
package reach

import (
	"fmt"

	"github.com/routelab/gridroute/grid"
)

// Paths computes shortest paths from source to every reachable target
// on g under 4-directional unit-cost movement.
//
// Returns:
//
//   - a map from target to its path (both endpoints included, total
//     distance len−1). A target equal to source maps to the
//     single-point path. Duplicate targets collapse to one entry.
//   - targets that are unreachable, out of bounds, or on obstacles are
//     absent from the map; an empty target list yields an empty map.
//   - ErrNilGrid or ErrSourceInvalid on invalid input.
//
// Complexity:
//
//   - Time:  O(R×C), less when early stop fires
//   - Space: O(R×C)
func Paths(g *grid.Grid, source grid.Point, targets []grid.Point) (map[grid.Point]grid.Path, error) {
	// 1) Validate input. Same O(1) guards as the point-to-point search.
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.Walkable(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceInvalid, source)
	}

	// 2) Build the pending set. Targets that can never resolve (out of
	//    bounds or on obstacles) are dropped here so they cannot defeat
	//    the early stop; duplicates collapse.
	pending := make(map[grid.Point]bool, len(targets))
	for _, t := range targets {
		if g.Walkable(t) {
			pending[t] = true
		}
	}

	// 3) Seed the traversal with the source and run to exhaustion or
	//    early stop.
	t := &traversal{
		g:       g,
		source:  source,
		queue:   []grid.Point{source},
		visited: map[grid.Point]bool{source: true},
		parent:  make(map[grid.Point]grid.Point),
		pending: pending,
		found:   make(map[grid.Point]grid.Path, len(pending)),
	}
	t.run()

	return t.found, nil
}

// traversal holds the mutable state of a single multi-target BFS.
type traversal struct {
	g       *grid.Grid
	source  grid.Point
	queue   []grid.Point              // FIFO frontier
	visited map[grid.Point]bool       // enqueued at least once
	parent  map[grid.Point]grid.Point // predecessor in the BFS tree
	pending map[grid.Point]bool       // targets not yet resolved
	found   map[grid.Point]grid.Path  // resolved target → shortest path
	nbuf    [4]grid.Point             // scratch for neighbor expansion
}

// run processes the queue until it drains or every pending target has
// resolved.
func (t *traversal) run() {
	for len(t.queue) > 0 && len(t.pending) > 0 {
		p := t.dequeue()
		if t.pending[p] {
			t.resolve(p)
		}
		t.enqueueNeighbors(p)
	}
}

// dequeue pops the oldest frontier cell.
func (t *traversal) dequeue() grid.Point {
	p := t.queue[0]
	t.queue = t.queue[1:]

	return p
}

// resolve records the shortest path to target and removes it from the
// pending set.
func (t *traversal) resolve(target grid.Point) {
	t.found[target] = t.reconstruct(target)
	delete(t.pending, target)
}

// enqueueNeighbors adds every unseen walkable neighbor of p to the
// queue, recording p as its predecessor.
func (t *traversal) enqueueNeighbors(p grid.Point) {
	for _, q := range t.g.Neighbors(p, t.nbuf[:0]) {
		if t.visited[q] {
			continue
		}
		t.visited[q] = true
		t.parent[q] = p
		t.queue = append(t.queue, q)
	}
}

// reconstruct builds the source→target path by walking parent links
// backwards from the target, then reversing in place.
func (t *traversal) reconstruct(target grid.Point) grid.Path {
	path := grid.Path{target}
	for at := target; at != t.source; {
		at = t.parent[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
