package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/routelab/gridroute/config"
	"github.com/routelab/gridroute/grid"
	"github.com/routelab/gridroute/pathcache"
	"github.com/routelab/gridroute/planner"
)

// Engine is the process-level planning facade. It owns the path cache,
// enforces the configured request limits, and wraps every Plan call in
// structured logging, metrics, and an optional trace span.
//
// An Engine is safe for concurrent use; all fields are fixed at
// construction and the cache synchronizes internally.
type Engine struct {
	cfg     config.Config
	cache   *pathcache.Cache // nil when caching is disabled
	logger  *slog.Logger
	meter   metric.Meter
	tracer  trace.Tracer
	metrics *planMetrics
}

// New builds an Engine from a validated configuration. Telemetry is
// off until the corresponding options supply providers.
func New(cfg config.Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:    cfg,
		logger: silentLogger(),
		meter:  noopMeter(),
		tracer: noopTracer(),
	}
	for _, opt := range opts {
		opt(e)
	}

	m, err := newPlanMetrics(e.meter)
	if err != nil {
		return nil, fmt.Errorf("engine: register metrics: %w", err)
	}
	e.metrics = m

	if cfg.Cache.Enabled {
		e.cache = pathcache.New(cfg.Cache.Capacity)
		if err := registerCacheMetrics(e.meter, e.cache); err != nil {
			return nil, fmt.Errorf("engine: register cache metrics: %w", err)
		}
	}

	return e, nil
}

// Plan validates the request against the configured limits, then
// routes it through the planner with the engine's cache and ceilings.
//
// mode uses the planner.ParseMode vocabulary: "optimal", "balanced",
// "fast", or "" for optimal.
//
// ctx carries telemetry only. Planning is synchronous and runs to
// completion; it is never cancelled mid-search.
//
// Errors: the engine sentinels for malformed requests, plus the
// planner sentinels (notably planner.ErrNoPath) unchanged.
func (e *Engine) Plan(ctx context.Context, g *grid.Grid, start, end grid.Point, waypoints []grid.Point, mode string) (planner.Result, error) {
	began := time.Now()
	ctx, span := e.tracer.Start(ctx, "engine.Plan",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("plan.mode", mode),
			attribute.Int("plan.waypoints", len(waypoints)),
		),
	)
	defer span.End()

	m, res, err := e.plan(g, start, end, waypoints, mode)

	elapsed := time.Since(began)
	e.metrics.record(ctx, m, !errors.Is(err, planner.ErrUnknownMode), res, elapsed, err)

	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
		e.logger.Warn("plan failed",
			slog.String("start", start.String()),
			slog.String("end", end.String()),
			slog.Int("waypoints", len(waypoints)),
			slog.String("error", err.Error()),
		)
		return planner.Result{}, err
	}

	span.SetStatus(codes.Ok, "")
	span.SetAttributes(
		attribute.String("plan.strategy", res.Strategy.String()),
		attribute.Int("plan.distance", res.TotalDistance),
	)

	args := []any{
		slog.String("mode", m.String()),
		slog.String("strategy", res.Strategy.String()),
		slog.String("start", start.String()),
		slog.String("end", end.String()),
		slog.Int("waypoints", len(waypoints)),
		slog.Int("distance", res.TotalDistance),
		slog.Duration("elapsed", elapsed),
	}
	if len(waypoints) == 0 {
		e.logger.Debug("planned leg", args...)
	} else {
		e.logger.Info("planned route", args...)
	}

	return res, nil
}

// plan is Plan without the telemetry wrapping: parse the mode, check
// the request against the limits, delegate to the planner.
func (e *Engine) plan(g *grid.Grid, start, end grid.Point, waypoints []grid.Point, mode string) (planner.Mode, planner.Result, error) {
	m, err := planner.ParseMode(mode)
	if err != nil {
		return 0, planner.Result{}, err
	}
	if err := e.validate(g, start, end, waypoints); err != nil {
		return m, planner.Result{}, err
	}

	res, err := planner.Plan(g, start, end, waypoints, m,
		planner.WithCache(e.cache),
		planner.WithLimits(planner.Limits{
			ExhaustiveCeiling: e.cfg.Planner.ExhaustiveCeiling,
			MatrixCeiling:     e.cfg.Planner.MatrixCeiling,
		}),
	)
	return m, res, err
}

// validate applies the request limits in a fixed order so that a
// request violating several of them reports the same error every time.
func (e *Engine) validate(g *grid.Grid, start, end grid.Point, waypoints []grid.Point) error {
	if g == nil {
		return ErrNilGrid
	}
	if g.Rows() > e.cfg.Limits.MaxGridRows || g.Columns() > e.cfg.Limits.MaxGridColumns {
		return fmt.Errorf("%w: %d×%d over the %d×%d cap",
			ErrGridTooLarge, g.Rows(), g.Columns(), e.cfg.Limits.MaxGridRows, e.cfg.Limits.MaxGridColumns)
	}
	if len(waypoints) > e.cfg.Limits.MaxWaypoints {
		return fmt.Errorf("%w: %d over the cap of %d",
			ErrTooManyWaypoints, len(waypoints), e.cfg.Limits.MaxWaypoints)
	}

	seen := make(map[grid.Point]struct{}, len(waypoints))
	for _, wp := range waypoints {
		if _, dup := seen[wp]; dup {
			return fmt.Errorf("%w: %v", ErrDuplicateWaypoint, wp)
		}
		seen[wp] = struct{}{}
	}

	if err := checkPoint(g, "start", start); err != nil {
		return err
	}
	if err := checkPoint(g, "end", end); err != nil {
		return err
	}
	for _, wp := range waypoints {
		if err := checkPoint(g, "waypoint", wp); err != nil {
			return err
		}
	}

	return nil
}

// checkPoint verifies that p can anchor a route leg: inside the grid
// and on a free cell.
func checkPoint(g *grid.Grid, role string, p grid.Point) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %s %v", ErrPointOutOfBounds, role, p)
	}
	if !g.Walkable(p) {
		return fmt.Errorf("%w: %s %v", ErrPointOnObstacle, role, p)
	}
	return nil
}

// ClearCache drops every memoized leg. Subsequent plans recompute from
// scratch; results are unchanged. A no-op when caching is disabled.
func (e *Engine) ClearCache() {
	if e.cache == nil {
		return
	}
	e.cache.Clear()
	e.logger.Info("path cache cleared")
}

// CacheStats reports the path cache counters. The zero Stats is
// returned when caching is disabled.
func (e *Engine) CacheStats() pathcache.Stats {
	if e.cache == nil {
		return pathcache.Stats{}
	}
	return e.cache.Stats()
}
