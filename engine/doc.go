// Package engine is the process-level facade over the route planner:
// one Engine per service, configured once, shared by every request.
//
// What
//
//   - New(cfg) validates a config.Config and builds the Engine around
//     it: the path cache (when enabled), the strategy-selector
//     ceilings, and the request limits all come from cfg.
//   - Plan(ctx, …) is the single request entry point. It rejects
//     malformed requests before any search runs: oversized grids,
//     waypoint counts over the cap, duplicate waypoints, and points
//     that are out of bounds or on obstacles each map to a sentinel.
//     Valid requests delegate to planner.Plan with the engine's cache
//     and ceilings.
//   - ClearCache and CacheStats expose the administrative surface of
//     the owned path cache.
//
// Telemetry
//
//   - Logging via log/slog: planned routes at info, bare start→end
//     legs at debug, failures at warn. The default logger discards
//     everything; inject one with WithLogger.
//   - Metrics via OpenTelemetry: a request counter, an error counter,
//     and a duration histogram labelled by mode, strategy, and
//     outcome, plus cache hit/miss/entry counts observed from the
//     cache's own counters. No-op without WithMeterProvider.
//   - One span per Plan call ("engine.Plan") when WithTracerProvider
//     supplies a tracer.
//
// The ctx passed to Plan feeds telemetry only. Planning is synchronous
// and CPU-bound with no suspension points, so it runs to completion
// even if ctx is cancelled mid-request.
//
// The algorithm packages (grid, astar, reach, planner, pathcache)
// remain importable on their own; the engine adds the validation,
// configuration, and observability a long-running process needs.
package engine
