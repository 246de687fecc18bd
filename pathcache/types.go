// Package pathcache defines the key and statistics types for the path
// memoization cache.
package pathcache

import (
	"fmt"

	"github.com/routelab/gridroute/grid"
)

// Key identifies one cached query: the content fingerprint of the grid
// it was computed on plus both endpoints. Comparable, usable as a map
// key.
type Key struct {
	Fingerprint grid.Fingerprint
	Start       grid.Point
	End         grid.Point
}

// String renders the key in short form for logs: truncated fingerprint
// plus endpoints.
func (k Key) String() string {
	return fmt.Sprintf("%s:%v->%v", k.Fingerprint, k.Start, k.End)
}

// flight renders the full-collision-free form used to coalesce
// concurrent computations of the same key.
func (k Key) flight() string {
	return fmt.Sprintf("%x:%d,%d:%d,%d", k.Fingerprint[:], k.Start.X, k.Start.Y, k.End.X, k.End.Y)
}

// Stats is a point-in-time snapshot of cache effectiveness.
type Stats struct {
	Hits     uint64 // lookups answered from the cache
	Misses   uint64 // lookups that fell through to computation
	Size     int    // entries currently stored
	Capacity int    // configured entry limit; ≤0 means inserts disabled
}

// HitRate returns Hits/(Hits+Misses), or 0 before any lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}

	return float64(s.Hits) / float64(total)
}
