// SPDX-License-Identifier: MIT

// Package linalg: functional configuration for the factorization entry points.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, the jitter sequence depends only on A and options.
//   - No dead switches: each option is consumed by at least one entry point and covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package linalg

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMaxTries bounds the number of regularized attempts in JitterCholesky
	// (the unperturbed attempt is not counted).
	DefaultMaxTries = 5

	// DefaultJitterScale is the first jitter as a fraction of |mean(diag A)|.
	DefaultJitterScale = 1e-6

	// DefaultJitterGrowth multiplies the jitter after every failed attempt.
	DefaultJitterGrowth = 10.0

	// DefaultSymmetryTolerance is the allowed |A[i,j]-A[j,i]|; 0 demands exact symmetry.
	DefaultSymmetryTolerance = 0.0

	// AutoPivotTolerance asks the pivoted kernel to derive its stopping threshold
	// as n · ε · max(diag A), the LAPACK pstrf default.
	AutoPivotTolerance = -1.0

	// DefaultPivotTolerance is the stopping threshold used by PivotCholesky.
	DefaultPivotTolerance = AutoPivotTolerance
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicMaxTriesInvalid     = "linalg: WithMaxTries: n must be >= 1"
	panicJitterScaleInvalid  = "linalg: WithJitterScale: scale must be finite and > 0"
	panicJitterGrowthInvalid = "linalg: WithJitterGrowth: growth must be finite and > 1"
	panicSymmetryTolInvalid  = "linalg: WithSymmetryTolerance: tol must be finite and >= 0"
	panicPivotTolInvalid     = "linalg: WithPivotTolerance: tol must be finite"
)

// Option mutates internal options. Safe to apply repeatedly (last writer wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; entry points resolve them per call via gatherOptions,
// so concurrent calls never share configuration state.
type Options struct {
	maxTries     int                           // DefaultMaxTries
	jitterScale  float64                       // DefaultJitterScale
	jitterGrowth float64                       // DefaultJitterGrowth
	symTol       float64                       // DefaultSymmetryTolerance
	pivotTol     float64                       // DefaultPivotTolerance
	onRetry      func(try int, jitter float64) // optional observer, nil by default
}

// WithMaxTries sets the number of regularized attempts JitterCholesky may make.
// Panics when n < 1.
func WithMaxTries(n int) Option {
	if n < 1 {
		panic(panicMaxTriesInvalid)
	}

	return func(o *Options) { o.maxTries = n }
}

// WithJitterScale sets the initial jitter as a fraction of |mean(diag A)|.
// Panics when scale is not finite or not strictly positive.
func WithJitterScale(scale float64) Option {
	if math.IsNaN(scale) || math.IsInf(scale, 0) || scale <= 0 {
		panic(panicJitterScaleInvalid)
	}

	return func(o *Options) { o.jitterScale = scale }
}

// WithJitterGrowth sets the factor applied to the jitter after each failure.
// Panics unless growth is finite and > 1 (the sequence must strictly increase).
func WithJitterGrowth(growth float64) Option {
	if math.IsNaN(growth) || math.IsInf(growth, 0) || growth <= 1 {
		panic(panicJitterGrowthInvalid)
	}

	return func(o *Options) { o.jitterGrowth = growth }
}

// WithSymmetryTolerance relaxes the symmetry check for matrices assembled with
// round-off in the mirrored halves. Panics on a negative or non-finite tol.
//
// Notes:
//   - The gonum factorization reads one triangle only; a relaxed tolerance
//     means the other triangle is silently ignored.
func WithSymmetryTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicSymmetryTolInvalid)
	}

	return func(o *Options) { o.symTol = tol }
}

// WithPivotTolerance sets the pivoted kernel's numerical-zero threshold.
// A negative tol (AutoPivotTolerance) selects n · ε · max(diag A).
// Panics on NaN or ±Inf.
func WithPivotTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicPivotTolInvalid)
	}

	return func(o *Options) { o.pivotTol = tol }
}

// WithOnRetry registers an observer called before every regularized attempt
// of JitterCholesky with the 1-based attempt number and the jitter about to be
// tried. A nil fn disables the hook.
func WithOnRetry(fn func(try int, jitter float64)) Option {
	return func(o *Options) { o.onRetry = fn }
}

// gatherOptions resolves user setters on top of documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		maxTries:     DefaultMaxTries,
		jitterScale:  DefaultJitterScale,
		jitterGrowth: DefaultJitterGrowth,
		symTol:       DefaultSymmetryTolerance,
		pivotTol:     DefaultPivotTolerance,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
