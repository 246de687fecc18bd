// Package planner: strategy selection.
package planner

// Select picks the ordering strategy for a request. It is a pure
// function of the requested mode, the waypoint count, and the
// configured ceilings; Plan calls it once per request and reports the
// choice in Result.Strategy.
//
// First matching rule wins:
//
//  1. count > MatrixCeiling            → StrategyDirect
//     (too many stops for a full leg table, regardless of mode)
//  2. mode == ModeFast                 → StrategyDirect
//  3. mode == ModeBalanced             → StrategyMatrix
//  4. count ≤ ExhaustiveCeiling        → StrategyExhaustive
//     (optimal mode within the factorial ceiling)
//  5. otherwise                        → StrategyMatrix
//     (optimal mode above the factorial ceiling degrades gracefully)
//
// The rules are disjoint by construction: WithLimits enforces
// ExhaustiveCeiling ≤ MatrixCeiling, so exactly one rule applies to
// every (mode, count) pair and an out-of-range waypoint count is never
// an error.
func Select(mode Mode, count int, lim Limits) Strategy {
	switch {
	case count > lim.MatrixCeiling:
		return StrategyDirect
	case mode == ModeFast:
		return StrategyDirect
	case mode == ModeBalanced:
		return StrategyMatrix
	case count <= lim.ExhaustiveCeiling:
		return StrategyExhaustive
	default:
		return StrategyMatrix
	}
}
