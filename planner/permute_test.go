// File: planner/permute_test.go
package planner

import (
	"fmt"
	"testing"
)

func factorial(n int) int {
	f := 1
	for i := 2; i <= n; i++ {
		f *= i
	}
	return f
}

// TestPermuter_CountsAndUniqueness checks that enumeration yields
// exactly n! distinct permutations for small n, starting from the
// identity.
func TestPermuter_CountsAndUniqueness(t *testing.T) {
	for n := 0; n <= 6; n++ {
		p := newPermuter(n)
		seen := make(map[string]bool)
		count := 0
		for p.next() {
			key := fmt.Sprint(p.idx)
			if seen[key] {
				t.Fatalf("n=%d: permutation %s produced twice", n, key)
			}
			seen[key] = true
			if count == 0 {
				for i, v := range p.idx {
					if v != i {
						t.Fatalf("n=%d: first permutation %v is not the identity", n, p.idx)
					}
				}
			}
			count++
		}
		if want := factorial(n); count != want {
			t.Errorf("n=%d: produced %d permutations; want %d", n, count, want)
		}
	}
}

// TestPermuter_ElementsPreserved checks every emitted permutation is a
// rearrangement of 0..n−1, never dropping or duplicating an index.
func TestPermuter_ElementsPreserved(t *testing.T) {
	const n = 5
	p := newPermuter(n)
	for p.next() {
		var mask uint
		for _, v := range p.idx {
			if v < 0 || v >= n {
				t.Fatalf("index %d out of range in %v", v, p.idx)
			}
			mask |= 1 << uint(v)
		}
		if mask != 1<<n-1 {
			t.Fatalf("permutation %v does not cover 0..%d", p.idx, n-1)
		}
	}
}

// TestPermuter_Exhausted checks that next keeps reporting false after
// the enumeration completes.
func TestPermuter_Exhausted(t *testing.T) {
	p := newPermuter(2)
	for p.next() {
	}
	for i := 0; i < 3; i++ {
		if p.next() {
			t.Fatal("next returned true after exhaustion")
		}
	}
}
