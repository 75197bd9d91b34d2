// SPDX-License-Identifier: MIT
// Package linalg - input validation shared by every factorization entry point.
//
// Purpose:
//   - One place that decides whether a candidate covariance matrix satisfies
//     the structural contract (non-nil, square, finite, symmetric).
//   - Validate adds the strict positive-definiteness trial on top.
//
// Determinism:
//   - Checks run in the fixed order nil → square → non-empty → finite → symmetric → trial,
//     so the reported cause is stable for inputs violating several rules.

package linalg

import (
	"github.com/katalvlaran/covchol/matrix"
)

// Operation tags for uniform error wrapping.
const (
	opValidate       = "Validate"
	opJitterCholesky = "JitterCholesky"
	opPivotKernel    = "PivotCholeskyInPlace"
	opPivotCholesky  = "PivotCholesky"
	opPermutation    = "PermutationMatrix"
	opUnpivot        = "Unpivot"
	opReconstruct    = "Reconstruct"
)

// Validate checks that a is a square, finite, symmetric and strictly positive
// definite matrix and returns a private copy of it.
// MAIN DESCRIPTION:
//   - The InputValidator of the factorization layer: callers that need a
//     guaranteed full-rank covariance run it before any downstream solve.
//
// Implementation:
//   - Stage 1: structural checks via checkInputs (copying a).
//   - Stage 2: trial Cholesky factorization (gonum mat.Cholesky) of the copy.
//
// Behavior highlights:
//   - The caller's matrix is never mutated; the returned *Dense is independent.
//   - No jitter is applied: a matrix that needs regularization fails here.
//
// Errors:
//   - ErrContractViolation joined with matrix.ErrNilMatrix, matrix.ErrNonSquare,
//     matrix.ErrInvalidDimensions (0×0), matrix.ErrNaNInf or matrix.ErrAsymmetry.
//   - ErrNotPositiveDefinite if the trial factorization fails.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Validate(a matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	o := gatherOptions(opts...)
	d, err := checkInputs(opValidate, a, o)
	if err != nil {
		return nil, err
	}
	_, ok, err := choleskyLower(d)
	if err != nil {
		return nil, linalgErrorf(opValidate, err)
	}
	if !ok {
		return nil, linalgErrorf(opValidate, ErrNotPositiveDefinite)
	}

	return d, nil
}

// checkInputs enforces the structural contract and returns a private *Dense copy.
// Every failure is reported as a contract violation tagged with op.
// Complexity: O(n²).
func checkInputs(op string, a matrix.Matrix, o Options) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, contractErrorf(op, err)
	}
	if err := matrix.ValidateNonEmpty(a); err != nil {
		return nil, contractErrorf(op, err)
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return nil, contractErrorf(op, err)
	}
	if err := matrix.ValidateSymmetric(a, o.symTol); err != nil {
		return nil, contractErrorf(op, err)
	}
	d, err := matrix.DenseOf(a)
	if err != nil {
		return nil, linalgErrorf(op, err)
	}

	return d, nil
}
