package engine

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/routelab/gridroute/pathcache"
	"github.com/routelab/gridroute/planner"
)

// planMetrics holds the per-request instruments: a request counter, an
// error counter, and a duration histogram, all labelled by mode,
// strategy, and outcome.
type planMetrics struct {
	planCount    metric.Int64Counter
	errorCount   metric.Int64Counter
	durationHist metric.Float64Histogram
}

// newPlanMetrics registers the request instruments with meter.
func newPlanMetrics(meter metric.Meter) (*planMetrics, error) {
	planCount, err := meter.Int64Counter(
		"gridroute.plan.total",
		metric.WithDescription("Total number of planning requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"gridroute.plan.errors",
		metric.WithDescription("Planning requests that returned an error"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"gridroute.plan.duration_ms",
		metric.WithDescription("Planning request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &planMetrics{
		planCount:    planCount,
		errorCount:   errorCount,
		durationHist: durationHist,
	}, nil
}

// record counts one request. Mode and strategy labels are attached
// only when the request got far enough to determine them, keeping
// label cardinality bounded for invalid input.
func (m *planMetrics) record(ctx context.Context, mode planner.Mode, modeKnown bool, res planner.Result, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("plan.outcome", outcomeLabel(err)),
	}
	if modeKnown {
		attrs = append(attrs, attribute.String("plan.mode", mode.String()))
	}
	if err == nil {
		attrs = append(attrs, attribute.String("plan.strategy", res.Strategy.String()))
	}

	opt := metric.WithAttributes(attrs...)

	m.planCount.Add(ctx, 1, opt)
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, duration.Seconds()*1e3, opt)
}

// outcomeLabel folds an error into one of three label values: "ok",
// "no_path" for exhausted searches, "rejected" for everything the
// request validation or option parsing turned away.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, planner.ErrNoPath):
		return "no_path"
	default:
		return "rejected"
	}
}

// registerCacheMetrics publishes the path cache counters as observable
// instruments: the cumulative hit and miss counts plus the resident
// entry count, read from cache.Stats at collection time.
func registerCacheMetrics(meter metric.Meter, cache *pathcache.Cache) error {
	hits, err := meter.Int64ObservableCounter(
		"gridroute.cache.hits",
		metric.WithDescription("Path cache lookups served from memory"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return err
	}

	misses, err := meter.Int64ObservableCounter(
		"gridroute.cache.misses",
		metric.WithDescription("Path cache lookups that required a search"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return err
	}

	entries, err := meter.Int64ObservableGauge(
		"gridroute.cache.entries",
		metric.WithDescription("Entries resident in the path cache"),
		metric.WithUnit("{entry}"),
	)
	if err != nil {
		return err
	}

	_, err = meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		st := cache.Stats()
		o.ObserveInt64(hits, int64(st.Hits))
		o.ObserveInt64(misses, int64(st.Misses))
		o.ObserveInt64(entries, int64(st.Size))
		return nil
	}, hits, misses, entries)

	return err
}
