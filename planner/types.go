// Package planner defines planning modes, ordering strategies, tunable
// options, and error definitions for multi-waypoint route planning.
package planner

import (
	"errors"
	"fmt"

	"github.com/routelab/gridroute/grid"
	"github.com/routelab/gridroute/pathcache"
)

// Sentinel errors for route planning.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed to Plan.
	ErrNilGrid = errors.New("planner: grid is nil")

	// ErrUnknownMode is returned for a planning mode outside the
	// optimal/balanced/fast vocabulary.
	ErrUnknownMode = errors.New("planner: unknown planning mode")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("planner: invalid option supplied")

	// ErrNoPath is returned when no route visiting every waypoint
	// exists, or when the strategy's committed ordering hits a missing
	// leg. A normal outcome of a well-formed request, not a fault.
	ErrNoPath = errors.New("planner: no route satisfies the request")
)

// Mode states how much work the caller is willing to spend on waypoint
// ordering.
type Mode uint8

const (
	// ModeOptimal asks for the best visiting order the configured
	// ceilings allow.
	ModeOptimal Mode = iota

	// ModeBalanced asks for a good order from real leg lengths without
	// factorial enumeration.
	ModeBalanced

	// ModeFast asks for the cheapest usable order.
	ModeFast
)

// String returns the wire name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeOptimal:
		return "optimal"
	case ModeBalanced:
		return "balanced"
	case ModeFast:
		return "fast"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ParseMode maps a request string onto a Mode. The empty string means
// ModeOptimal, matching the default the callers were shipped with.
// Anything else outside the vocabulary yields ErrUnknownMode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "optimal":
		return ModeOptimal, nil
	case "balanced":
		return ModeBalanced, nil
	case "fast":
		return ModeFast, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Strategy identifies the waypoint-ordering algorithm a plan was built
// with. The selector picks one per request; Result reports it.
type Strategy uint8

const (
	// StrategyExhaustive enumerates every visiting order and keeps the
	// shortest. Exact, factorial cost.
	StrategyExhaustive Strategy = iota

	// StrategyMatrix orders greedily by true leg lengths taken from a
	// precomputed leg table.
	StrategyMatrix

	// StrategyDirect orders greedily by the Manhattan estimate, paying
	// for one search per chosen leg only.
	StrategyDirect
)

// String returns the reporting name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyExhaustive:
		return "exhaustive"
	case StrategyMatrix:
		return "matrix-heuristic"
	case StrategyDirect:
		return "direct-heuristic"
	default:
		return fmt.Sprintf("strategy(%d)", uint8(s))
	}
}

// Limits carries the waypoint-count ceilings the strategy selector
// steers by.
type Limits struct {
	// ExhaustiveCeiling is the largest waypoint count the factorial
	// search will take on.
	ExhaustiveCeiling int

	// MatrixCeiling is the largest waypoint count worth a full leg
	// table; above it every request degrades to the direct heuristic.
	MatrixCeiling int
}

// DefaultLimits returns the stock ceilings: 8 waypoints for exhaustive
// enumeration (8! ≈ 40k orders), 10 for the leg-table heuristic.
func DefaultLimits() Limits {
	return Limits{ExhaustiveCeiling: 8, MatrixCeiling: 10}
}

// Option configures Plan via functional arguments. An invalid Option
// is recorded internally and surfaced as ErrOptionViolation when Plan
// is invoked.
type Option func(*Options)

// Options holds the tunables of a single Plan invocation.
type Options struct {
	// Cache memoizes point-to-point legs across requests. Nil means
	// every leg is computed from scratch; results are identical either
	// way.
	Cache *pathcache.Cache

	// Limits are the selector ceilings; see DefaultLimits.
	Limits Limits

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no cache and the stock ceilings.
func DefaultOptions() Options {
	return Options{Limits: DefaultLimits()}
}

// WithCache routes leg computations through c. A nil c is accepted and
// leaves caching off.
func WithCache(c *pathcache.Cache) Option {
	return func(o *Options) {
		o.Cache = c
	}
}

// WithLimits overrides the selector ceilings.
//
//	ExhaustiveCeiling must be ≥ 1.
//	MatrixCeiling must be ≥ ExhaustiveCeiling, so every waypoint count
//	has exactly one applicable rule.
func WithLimits(l Limits) Option {
	return func(o *Options) {
		switch {
		case l.ExhaustiveCeiling < 1:
			o.err = fmt.Errorf("%w: ExhaustiveCeiling must be positive (%d)", ErrOptionViolation, l.ExhaustiveCeiling)
		case l.MatrixCeiling < l.ExhaustiveCeiling:
			o.err = fmt.Errorf("%w: MatrixCeiling (%d) below ExhaustiveCeiling (%d)", ErrOptionViolation, l.MatrixCeiling, l.ExhaustiveCeiling)
		default:
			o.Limits = l
		}
	}
}

// Result is the outcome of one planning request.
type Result struct {
	// Path is the full route: start, every waypoint in the chosen
	// order, end, with all intermediate cells in between.
	Path grid.Path

	// TotalDistance is the number of moves along Path, len(Path)−1.
	TotalDistance int

	// Strategy is the ordering algorithm the selector chose for this
	// request.
	Strategy Strategy
}
