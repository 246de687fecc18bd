// Package astar implements A* shortest-path search on obstacle grids.
//
// A* explores cells in order of f = g + h, where g is the exact cost from
// the start and h is the Manhattan distance to the end. Because h never
// overestimates on a unit-cost 4-connected grid, the first extraction of
// the end cell carries its optimal cost.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: improved costs push duplicate
//     heap entries, and stale entries are skipped when popped.
//   - Equal-f entries pop in insertion order via an explicit sequence
//     number, keeping exploration deterministic regardless of heap
//     internals.
//   - Neighbor expansion order is fixed by grid.Neighbors; changing it
//     would change which of several equal-cost paths is returned.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/routelab/gridroute/grid"
)

// Find computes a minimum-cost path from start to end on g under
// 4-directional unit-cost movement.
//
// Returns:
//
//   - the path including both endpoints; its total distance is
//     len(path)−1. start == end yields the single-point path.
//   - ErrNilGrid, ErrStartInvalid, or ErrEndInvalid on invalid input.
//   - ErrNoPath when end is unreachable from start.
//
// Complexity:
//
//   - Time:  O(R×C · log(R×C))
//   - Space: O(R×C)
func Find(g *grid.Grid, start, end grid.Point) (grid.Path, error) {
	// 1) Validate input. O(1) guards; callers normally pre-validate,
	//    but a bad point must fail typed rather than misbehave.
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.Walkable(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartInvalid, start)
	}
	if !g.Walkable(end) {
		return nil, fmt.Errorf("%w: %v", ErrEndInvalid, end)
	}

	// 2) Degenerate query: a path of one cell, distance 0.
	if start == end {
		return grid.Path{start}, nil
	}

	// 3) Prepare per-run state and seed the frontier with the start cell.
	s := &search{
		g:        g,
		end:      end,
		gScore:   map[grid.Point]int{start: 0},
		cameFrom: make(map[grid.Point]grid.Point),
	}
	heap.Init(&s.frontier)
	s.push(start, 0)

	// 4) Expand until the end is finalized or the frontier drains.
	if !s.run() {
		return nil, fmt.Errorf("%w: %v -> %v", ErrNoPath, start, end)
	}

	// 5) Walk the predecessor map back from the end.
	return s.reconstruct(start), nil
}

// search holds the mutable state of a single A* execution.
type search struct {
	g        *grid.Grid
	end      grid.Point
	frontier nodePQ
	gScore   map[grid.Point]int        // best known cost from start per cell
	cameFrom map[grid.Point]grid.Point // predecessor on the best path
	seq      uint64                    // insertion counter for deterministic ties
	nbuf     [4]grid.Point             // scratch for neighbor expansion
}

// push enqueues p with cost-from-start gp, stamping the entry with the
// next sequence number so equal-f entries pop in insertion order.
func (s *search) push(p grid.Point, gp int) {
	s.seq++
	heap.Push(&s.frontier, &nodeItem{
		p:   p,
		g:   gp,
		f:   gp + p.Manhattan(s.end),
		seq: s.seq,
	})
}

// run is the core loop. It reports whether the end cell was reached.
func (s *search) run() bool {
	for s.frontier.Len() > 0 {
		item := heap.Pop(&s.frontier).(*nodeItem)

		// Stale heap entry: a cheaper route to this cell was already
		// recorded after this entry was pushed. Skip it.
		if item.g > s.gScore[item.p] {
			continue
		}

		// First extraction of the end is optimal (consistent heuristic).
		if item.p == s.end {
			return true
		}

		s.relax(item.p, item.g)
	}

	return false
}

// relax tries to improve the cost of every walkable neighbor of p.
// A neighbor is (re-)enqueued only when a strictly lower cost is found.
func (s *search) relax(p grid.Point, gp int) {
	next := gp + 1
	for _, q := range s.g.Neighbors(p, s.nbuf[:0]) {
		if old, seen := s.gScore[q]; seen && next >= old {
			continue
		}
		s.gScore[q] = next
		s.cameFrom[q] = p
		s.push(q, next)
	}
}

// reconstruct builds the start→end path by walking cameFrom backwards
// from the end, then reversing in place.
func (s *search) reconstruct(start grid.Point) grid.Path {
	path := make(grid.Path, 0, s.gScore[s.end]+1)
	for at := s.end; ; {
		path = append(path, at)
		if at == start {
			break
		}
		at = s.cameFrom[at]
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is a frontier entry: a cell, its cost from start, its
// priority f = g + h, and the insertion sequence number used to break
// equal-f ties deterministically.
type nodeItem struct {
	p   grid.Point
	g   int
	f   int
	seq uint64
}

// nodePQ is a min-heap of *nodeItem ordered by (f, seq) ascending.
// Under the lazy-decrease-key strategy, outdated entries remain in the
// heap and are ignored when popped (checked against gScore).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by priority f; equal priorities fall back to insertion
// order, which makes exploration independent of heap internals.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be of type *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
