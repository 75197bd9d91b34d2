// SPDX-License-Identifier: MIT
// Package linalg - standard Cholesky with progressive diagonal regularization.
//
// Purpose:
//   - Factor covariance matrices that are positive definite in exact arithmetic
//     but fail numerically (duplicated design points, long length-scales).
//
// Jitter sequence (deterministic):
//
//	attempt 0      : A
//	attempt k ≥ 1  : A + s·g^(k-1)·|mean(diag A)|·I,   k = 1..maxTries
//
// with s = DefaultJitterScale (1e-6) and g = DefaultJitterGrowth (10) unless overridden.

package linalg

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/covchol/matrix"
)

// JitterCholesky computes the lower Cholesky factor L of A, adding the smallest
// jitter of the sequence above that makes the factorization succeed.
// MAIN DESCRIPTION:
//   - Returns (L, jitter) with L·Lᵀ ≈ A + jitter·I; jitter == 0 when A factors as is.
//
// Implementation:
//   - Stage 1: structural checks (non-nil, square, finite, symmetric) on a private copy.
//   - Stage 2: unperturbed attempt.
//   - Stage 3: a non-positive diagonal entry fails at once, without retries.
//   - Stage 4: bounded retry loop on A + jitter·I, growing jitter after each failure.
//
// Behavior highlights:
//   - Pure: A is never mutated, no state survives the call.
//   - The loop also stops when the jitter stops being finite.
//   - WithOnRetry observers see every regularized attempt before it runs.
//
// Inputs:
//   - a: symmetric n×n matrix.
//   - opts: WithMaxTries, WithJitterScale, WithJitterGrowth, WithSymmetryTolerance, WithOnRetry.
//
// Returns:
//   - *matrix.Dense: lower-triangular factor (strict upper triangle is 0).
//   - float64: jitter actually added (0 for the unperturbed success).
//
// Errors:
//   - ErrContractViolation (joined with the matrix sentinel) on structural failures.
//   - ErrNotPositiveDefinite for a non-positive diagonal entry or once the retry
//     budget is exhausted.
//
// Complexity:
//   - Time O((maxTries+1)·n³) worst case, Space O(n²).
func JitterCholesky(a matrix.Matrix, opts ...Option) (*matrix.Dense, float64, error) {
	o := gatherOptions(opts...)
	d, err := checkInputs(opJitterCholesky, a, o)
	if err != nil {
		return nil, 0, err
	}

	l, ok, err := choleskyLower(d)
	if err != nil {
		return nil, 0, linalgErrorf(opJitterCholesky, err)
	}
	if ok {
		return l, 0, nil
	}

	diag, err := matrix.Diagonal(d)
	if err != nil {
		return nil, 0, linalgErrorf(opJitterCholesky, err)
	}
	// A shift of order 1e-6·mean(diag) cannot lift a non-positive diagonal.
	if floats.Min(diag) <= 0 {
		return nil, 0, linalgErrorf(opJitterCholesky,
			fmt.Errorf("%w: non-positive diagonal entry %g", ErrNotPositiveDefinite, floats.Min(diag)))
	}
	jitter := math.Abs(floats.Sum(diag)/float64(len(diag))) * o.jitterScale

	var (
		shifted *matrix.Dense
		last    float64
	)
	for try := 1; try <= o.maxTries; try++ {
		if jitter == 0 || math.IsInf(jitter, 0) {
			break
		}
		if o.onRetry != nil {
			o.onRetry(try, jitter)
		}
		if shifted, err = matrix.AddDiagonal(d, jitter); err != nil {
			return nil, 0, linalgErrorf(opJitterCholesky, err)
		}
		if l, ok, err = choleskyLower(shifted); err != nil {
			return nil, 0, linalgErrorf(opJitterCholesky, err)
		}
		if ok {
			return l, jitter, nil
		}
		last = jitter
		jitter *= o.jitterGrowth
	}

	return nil, 0, linalgErrorf(opJitterCholesky,
		fmt.Errorf("%w even with jitter (tries=%d, last jitter=%g)", ErrNotPositiveDefinite, o.maxTries, last))
}
