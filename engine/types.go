// Package engine - request validation, configuration plumbing, and
// telemetry around the route planner.
package engine

import (
	"errors"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// Sentinel errors for request validation. Planning errors come from
// the planner package unchanged.
var (
	// ErrNilGrid is returned when Plan receives a nil grid pointer.
	ErrNilGrid = errors.New("engine: grid is nil")

	// ErrGridTooLarge is returned when the grid exceeds the configured
	// dimension caps.
	ErrGridTooLarge = errors.New("engine: grid exceeds the configured dimensions")

	// ErrTooManyWaypoints is returned when a request carries more
	// waypoints than the configured cap.
	ErrTooManyWaypoints = errors.New("engine: too many waypoints")

	// ErrDuplicateWaypoint is returned when the same waypoint appears
	// twice in one request.
	ErrDuplicateWaypoint = errors.New("engine: duplicate waypoint")

	// ErrPointOutOfBounds is returned when a start, end, or waypoint
	// lies outside the grid.
	ErrPointOutOfBounds = errors.New("engine: point outside the grid")

	// ErrPointOnObstacle is returned when a start, end, or waypoint
	// sits on an obstacle cell.
	ErrPointOnObstacle = errors.New("engine: point is not walkable")
)

// scopeName identifies this instrumentation scope to OpenTelemetry
// providers.
const scopeName = "github.com/routelab/gridroute/engine"

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithLogger directs the engine's structured logs to l. The default
// logger discards everything. A nil l keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithMeterProvider registers plan and cache metrics with mp. The
// default is a no-op provider. A nil mp keeps the default.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(e *Engine) {
		if mp != nil {
			e.meter = mp.Meter(scopeName)
		}
	}
}

// WithTracerProvider emits one span per Plan call through tp. The
// default is a no-op provider. A nil tp keeps the default.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Engine) {
		if tp != nil {
			e.tracer = tp.Tracer(scopeName)
		}
	}
}

// silentLogger returns the default logger: structured, but writing to
// io.Discard until WithLogger replaces it.
func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// noopMeter and noopTracer are the defaults when no providers are
// configured.
func noopMeter() metric.Meter {
	return noop.NewMeterProvider().Meter(scopeName)
}

func noopTracer() trace.Tracer {
	return tracenoop.NewTracerProvider().Tracer(scopeName)
}
