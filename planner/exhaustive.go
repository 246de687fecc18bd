// Package planner: exhaustive waypoint ordering.
package planner

import (
	"errors"
	"fmt"

	"github.com/routelab/gridroute/grid"
)

// planExhaustive tries every waypoint visiting order and returns the
// route of the first order achieving the minimal total distance.
//
// The permutations revisit the same point pairs constantly, so legs
// are resolved once per request through a per-request memo (on top of
// whatever the injected cache already remembers across requests). An
// order whose chain hits a missing leg is discarded; if every order is
// discarded the request fails with ErrNoPath.
//
// Complexity: O(count! · count) order evaluations over O(count²)
// distinct leg computations.
func planExhaustive(r *router, start, end grid.Point, waypoints []grid.Point) (grid.Path, error) {
	memo := newLegMemo(r)
	perm := newPermuter(len(waypoints))

	// 1) Enumerate orders, tracking the first minimal feasible one.
	var bestOrder []int
	bestTotal := -1
	for perm.next() {
		total, feasible, err := memo.orderTotal(start, end, waypoints, perm.idx)
		if err != nil {
			return nil, err
		}
		if !feasible {
			continue
		}
		if bestTotal < 0 || total < bestTotal {
			bestTotal = total
			bestOrder = append(bestOrder[:0], perm.idx...)
		}
	}
	if bestTotal < 0 {
		return nil, fmt.Errorf("%w: no waypoint order connects all stops", ErrNoPath)
	}

	// 2) Assemble the winning order from the memoized legs.
	route := grid.Path(nil)
	prev := start
	for _, wi := range bestOrder {
		leg, _, _ := memo.leg(prev, waypoints[wi])
		route = stitch(route, leg)
		prev = waypoints[wi]
	}
	leg, _, _ := memo.leg(prev, end)

	return stitch(route, leg), nil
}

// legMemo resolves point pairs through the router at most once per
// request, remembering missing legs as well as found ones.
type legMemo struct {
	r     *router
	known map[[2]grid.Point]grid.Path // nil value records a missing leg
}

func newLegMemo(r *router) *legMemo {
	return &legMemo{r: r, known: make(map[[2]grid.Point]grid.Path)}
}

// leg returns the memoized path from → to and whether one exists.
// A non-nil error is a real fault (invalid input), never a missing leg.
func (m *legMemo) leg(from, to grid.Point) (grid.Path, bool, error) {
	pair := [2]grid.Point{from, to}
	if p, seen := m.known[pair]; seen {
		return p, p != nil, nil
	}
	p, err := m.r.leg(from, to)
	if errors.Is(err, ErrNoPath) {
		m.known[pair] = nil
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	m.known[pair] = p

	return p, true, nil
}

// orderTotal sums the leg distances of the chain start → waypoints in
// the given index order → end. The bool reports feasibility: false
// means some leg in the chain is missing.
func (m *legMemo) orderTotal(start, end grid.Point, waypoints []grid.Point, order []int) (int, bool, error) {
	total := 0
	prev := start
	for _, wi := range order {
		leg, ok, err := m.leg(prev, waypoints[wi])
		if err != nil {
			return 0, false, err
		}
		if !ok {
			return 0, false, nil
		}
		total += leg.TotalDistance()
		prev = waypoints[wi]
	}
	leg, ok, err := m.leg(prev, end)
	if err != nil {
		return 0, false, err
	}
	if !ok {
		return 0, false, nil
	}
	total += leg.TotalDistance()

	return total, true, nil
}
