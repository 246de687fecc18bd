// File: pathcache/cache_test.go
package pathcache_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/routelab/gridroute/grid"
	"github.com/routelab/gridroute/pathcache"
)

// key fabricates a cache key whose fingerprint starts with b.
func key(b byte, sx, sy, ex, ey int) pathcache.Key {
	return pathcache.Key{
		Fingerprint: grid.Fingerprint{b},
		Start:       grid.Point{X: sx, Y: sy},
		End:         grid.Point{X: ex, Y: ey},
	}
}

// line builds a horizontal path of n points starting at (0,0).
func line(n int) grid.Path {
	p := make(grid.Path, n)
	for i := range p {
		p[i] = grid.Point{X: 0, Y: i}
	}
	return p
}

func TestCache_GetPut(t *testing.T) {
	c := pathcache.New(4)
	k := key(1, 0, 0, 0, 2)

	// cold cache: miss
	_, ok := c.Get(k)
	require.False(t, ok)

	c.Put(k, line(3))

	// warm cache: hit with the stored value
	got, ok := c.Get(k)
	require.True(t, ok)
	require.Equal(t, line(3), got)

	st := c.Stats()
	require.Equal(t, uint64(1), st.Hits)
	require.Equal(t, uint64(1), st.Misses)
	require.Equal(t, 1, st.Size)
	require.Equal(t, 4, st.Capacity)
}

func TestCache_PutIsInsertOnly(t *testing.T) {
	c := pathcache.New(4)
	k := key(1, 0, 0, 0, 2)

	c.Put(k, line(3))
	c.Put(k, line(5)) // same key: dropped, first value wins

	got, ok := c.Get(k)
	require.True(t, ok)
	require.Equal(t, line(3), got)
	require.Equal(t, 1, c.Len())
}

func TestCache_PutIgnoresEmptyPath(t *testing.T) {
	c := pathcache.New(4)
	c.Put(key(1, 0, 0, 0, 2), nil)
	c.Put(key(2, 0, 0, 0, 2), grid.Path{})
	require.Equal(t, 0, c.Len())
}

func TestCache_Saturation(t *testing.T) {
	c := pathcache.New(2)
	k1, k2, k3 := key(1, 0, 0, 0, 1), key(2, 0, 0, 0, 2), key(3, 0, 0, 0, 3)

	c.Put(k1, line(2))
	c.Put(k2, line(3))
	c.Put(k3, line(4)) // over capacity: dropped

	require.Equal(t, 2, c.Len())
	_, ok := c.Get(k3)
	require.False(t, ok)

	// stored entries keep being served after saturation
	got, ok := c.Get(k1)
	require.True(t, ok)
	require.Equal(t, line(2), got)
	got, ok = c.Get(k2)
	require.True(t, ok)
	require.Equal(t, line(3), got)
}

func TestCache_ZeroCapacityDisablesInserts(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		c := pathcache.New(capacity)
		k := key(1, 0, 0, 0, 1)
		c.Put(k, line(2))
		require.Equal(t, 0, c.Len())
		_, ok := c.Get(k)
		require.False(t, ok)
	}
}

func TestCache_DefensiveCopies(t *testing.T) {
	c := pathcache.New(4)
	k := key(1, 0, 0, 0, 2)

	// mutating the slice after Put must not reach the cache
	stored := line(3)
	c.Put(k, stored)
	stored[0] = grid.Point{X: 9, Y: 9}

	got, ok := c.Get(k)
	require.True(t, ok)
	require.Equal(t, line(3), got)

	// mutating the slice returned by Get must not reach the cache
	got[1] = grid.Point{X: 7, Y: 7}
	again, ok := c.Get(k)
	require.True(t, ok)
	require.Equal(t, line(3), again)
}

func TestCache_Resolve_ComputesOnce(t *testing.T) {
	c := pathcache.New(4)
	k := key(1, 0, 0, 0, 2)

	var calls int
	compute := func() (grid.Path, error) {
		calls++
		return line(3), nil
	}

	first, err := c.Resolve(k, compute)
	require.NoError(t, err)
	second, err := c.Resolve(k, compute)
	require.NoError(t, err)

	require.Equal(t, 1, calls)
	require.Equal(t, first, second)

	st := c.Stats()
	require.Equal(t, uint64(1), st.Hits)
	require.Equal(t, uint64(1), st.Misses)
}

func TestCache_Resolve_Concurrent(t *testing.T) {
	const workers = 16
	c := pathcache.New(4)
	k := key(1, 0, 0, 0, 2)

	var calls atomic.Int32
	start := make(chan struct{})
	var wg sync.WaitGroup
	results := make([]grid.Path, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			p, err := c.Resolve(k, func() (grid.Path, error) {
				calls.Add(1)
				return line(3), nil
			})
			require.NoError(t, err)
			results[i] = p
		}(i)
	}
	close(start)
	wg.Wait()

	// Coalescing plus the in-flight recheck make a single computation
	// a guarantee, not a likelihood.
	require.Equal(t, int32(1), calls.Load())
	for i := 0; i < workers; i++ {
		require.Equal(t, line(3), results[i])
	}
	require.Equal(t, 1, c.Len())
}

func TestCache_Resolve_ErrorNotCached(t *testing.T) {
	c := pathcache.New(4)
	k := key(1, 0, 0, 0, 2)
	boom := errors.New("grid went missing")

	var calls int
	failing := func() (grid.Path, error) {
		calls++
		return nil, boom
	}

	_, err := c.Resolve(k, failing)
	require.ErrorIs(t, err, boom)
	_, err = c.Resolve(k, failing)
	require.ErrorIs(t, err, boom)

	// the failure was recomputed, not served from the cache
	require.Equal(t, 2, calls)
	require.Equal(t, 0, c.Len())
}

func TestCache_Clear(t *testing.T) {
	c := pathcache.New(4)
	k := key(1, 0, 0, 0, 2)

	c.Put(k, line(3))
	// one hit, one miss
	_, _ = c.Get(k)
	_, _ = c.Get(key(9, 0, 0, 1, 1))

	c.Clear()

	st := c.Stats()
	require.Equal(t, uint64(0), st.Hits)
	require.Equal(t, uint64(0), st.Misses)
	require.Equal(t, 0, st.Size)

	_, ok := c.Get(k)
	require.False(t, ok)
}

func TestStats_HitRate(t *testing.T) {
	require.Equal(t, 0.0, pathcache.Stats{}.HitRate())
	require.Equal(t, 0.75, pathcache.Stats{Hits: 3, Misses: 1}.HitRate())
	require.Equal(t, 1.0, pathcache.Stats{Hits: 2}.HitRate())
}
