// Package planner: permutation enumeration for the exhaustive strategy.
package planner

// permuter enumerates every permutation of n indices with the iterative
// form of Heap's algorithm: each step performs a single swap, no
// recursion, no per-permutation allocation. Enumeration order is fixed,
// which keeps "first minimal order wins" deterministic.
type permuter struct {
	idx   []int // current permutation, mutated in place
	c     []int // per-position swap counters
	i     int   // position under consideration
	first bool
}

// newPermuter prepares enumeration over the identity permutation of n
// indices. n == 0 yields exactly one (empty) permutation.
func newPermuter(n int) *permuter {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return &permuter{idx: idx, c: make([]int, n), first: true}
}

// next advances idx to the next permutation and reports whether one was
// produced. The slice is reused across calls; callers must copy it to
// retain a permutation.
func (p *permuter) next() bool {
	if p.first {
		p.first = false
		return true
	}
	for p.i < len(p.idx) {
		if p.c[p.i] < p.i {
			if p.i%2 == 0 {
				p.idx[0], p.idx[p.i] = p.idx[p.i], p.idx[0]
			} else {
				p.idx[p.c[p.i]], p.idx[p.i] = p.idx[p.i], p.idx[p.c[p.i]]
			}
			p.c[p.i]++
			p.i = 0

			return true
		}
		p.c[p.i] = 0
		p.i++
	}

	return false
}
