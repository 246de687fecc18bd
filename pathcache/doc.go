// Package pathcache provides a concurrency-safe, capacity-bounded
// memoization cache for computed grid paths, shared across planning
// requests.
//
// What
//
//   - Cache maps Key{grid fingerprint, start, end} → Path. The
//     fingerprint ties every entry to exact grid content, so two grids
//     that differ in a single cell never share entries.
//   - Insert-only policy: entries are never evicted and never expire.
//     Once Len() reaches the configured capacity, further Puts are
//     silently dropped while existing entries keep being served. This
//     is deliberate: paths on an immutable grid never go stale, so
//     eviction would only discard still-valid work.
//   - Resolve(key, compute) is the lookup-or-compute front door: a hit
//     returns immediately, and concurrent misses on the same key are
//     coalesced so compute runs once.
//   - Stats() reports hits, misses, size, and capacity for telemetry.
//
// Why
//
//   - Route planning recomputes the same start→end legs constantly:
//     permutation enumeration revisits every pair, and repeated requests
//     against the same floor plan repeat whole queries. Memoizing legs
//     turns the duplicate work into map lookups.
//   - The cache is an explicit object injected by the caller, never
//     package-level ambient state, so tests and independent engines get
//     isolated instances.
//
// Concurrency
//
//   - A sync.RWMutex guards the entry map; hit/miss counters are
//     atomic. Concurrent identical misses are collapsed by
//     golang.org/x/sync/singleflight, so a cold popular key computes
//     once instead of once per caller.
//   - Stored paths are copied on the way in and on the way out. Callers
//     may mutate what they receive without corrupting the cache.
//
// Errors
//
//	The package defines no sentinel errors. Resolve propagates the
//	compute callback's error unchanged and never caches failures.
package pathcache
