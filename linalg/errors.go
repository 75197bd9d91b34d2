// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set for the factorization layer.
// Every public entry point returns these sentinels (possibly wrapped with an
// operation tag); tests check them via errors.Is. Shape problems additionally
// carry the precise matrix sentinel (matrix.ErrNonSquare, matrix.ErrAsymmetry, ...).

package linalg

import (
	"errors"
	"fmt"
)

// ERROR CATEGORIES
// ----------------
//   - ErrContractViolation: the caller broke an input contract (shape, symmetry,
//     finiteness, pivot buffer, permutation). Never retried.
//   - ErrNotPositiveDefinite: a trial factorization failed, or the jitter budget
//     ran out. Recoverable by the caller (e.g. switch to PivotCholesky).
//   - Rank deficiency of the pivoted kernel is NOT an error (see PivotedFactor.Info).

var (
	// ErrContractViolation marks every input-contract failure. It is always
	// joined with a more precise cause.
	ErrContractViolation = errors.New("linalg: contract violation")

	// ErrNotPositiveDefinite is returned when a Cholesky factorization fails
	// and no further regularization is permitted.
	ErrNotPositiveDefinite = errors.New("linalg: matrix is not positive definite")

	// ErrInvalidPermutation signals a pivot vector that is not a permutation of {1..n}.
	ErrInvalidPermutation = errors.New("linalg: invalid permutation vector")

	// ErrPivotLength signals a pivot buffer whose length differs from the matrix order.
	ErrPivotLength = errors.New("linalg: pivot buffer length mismatch")
)

// linalgErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func linalgErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// contractErrorf tags cause as a contract violation for operation op.
// Both ErrContractViolation and cause satisfy errors.Is on the result.
func contractErrorf(op string, cause error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrContractViolation, cause)
}
