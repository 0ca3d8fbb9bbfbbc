// SPDX-License-Identifier: MIT

// Package lu: functional configuration for the SolveReport wrapper.
//
// Design goals:
//   - Deterministic behavior: no global state, documented defaults.
//   - No dead switches: each option changes behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error); user-input failures stay sentinel errors.
package lu

import "fmt"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultCondWarnThreshold is the κ(A) above which SolveReport flags the
	// solution as ill-conditioned. With double precision (ε ≈ 1e-16),
	// κ(A) ≈ 1e8 already means roughly half the significant digits of x are
	// noise — the conventional "start worrying" line.
	DefaultCondWarnThreshold = 1e8
)

// Option mutates the internal solve configuration.
// Public APIs consume ...Option; the Options struct stays unexported.
type Option func(*solveOptions)

// solveOptions is the gathered configuration of one SolveReport call.
type solveOptions struct {
	condThreshold float64 // κ warning threshold (≥ 1)
	skipCond      bool    // skip the condition-number computation entirely
}

// defaultSolveOptions returns the documented defaults.
func defaultSolveOptions() solveOptions {
	return solveOptions{
		condThreshold: DefaultCondWarnThreshold,
		skipCond:      false,
	}
}

// WithCondWarnThreshold overrides the κ(A) warning threshold.
// Panics if t < 1: κ(A) ≥ 1 always, so a lower threshold is a programmer
// error, not a tunable.
func WithCondWarnThreshold(t float64) Option {
	if t < 1 {
		panic(fmt.Sprintf("lu: condition threshold must be >= 1, got %g", t))
	}

	return func(o *solveOptions) { o.condThreshold = t }
}

// WithoutConditionCheck disables the condition-number computation in
// SolveReport (Solution.Cond reports 0, IllConditioned stays false).
// Useful when the caller has already analyzed A, or in tight loops where the
// extra O(n³) spectral work is unwanted.
func WithoutConditionCheck() Option {
	return func(o *solveOptions) { o.skipCond = true }
}

// gatherOptions folds opts over the defaults in call order.
func gatherOptions(opts ...Option) solveOptions {
	o := defaultSolveOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
