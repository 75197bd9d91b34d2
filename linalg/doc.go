// Package linalg factors the covariance matrices of statistical emulators.
//
// Likelihood evaluation, linear solves and predictive variances all reduce to
// a triangular factor of a covariance matrix. Those matrices are positive
// definite in theory and often not in floating point: duplicated design
// points, nearly collinear inputs or long length-scales push eigenvalues to
// (or just below) zero. This package offers two entry points for that reality:
//
//   - JitterCholesky: ordinary Cholesky (gonum mat.Cholesky) retried on
//     A + jitter·I with a bounded, geometrically growing jitter. Returns the
//     factor and the jitter actually used (0 if none was needed), or
//     ErrNotPositiveDefinite once the budget is spent.
//   - PivotCholesky / PivotDecompose: symmetric-pivoting Cholesky that stops at
//     the numerical rank of a positive semi-definite matrix instead of failing,
//     and reports the pivot order needed to map rows back to the original indices.
//
// Supporting pieces:
//
//   - Validate: square, finite, symmetric and strictly positive definite check
//     returning a private copy.
//   - PivotCholeskyInPlace: the kernel behind PivotCholesky, running gonum's
//     lapack64.Pstrf on caller-owned buffers (pstrf-style (A_inout, piv_out) -> info).
//   - PermutationMatrix, ValidatePermutation, Unpivot, Reconstruct: permutation
//     utilities for turning a pivoted factor back into the original ordering.
//
// Errors:
//
//	ErrContractViolation    bad shape, asymmetry, NaN/Inf, bad buffers or pivots (never retried)
//	ErrNotPositiveDefinite  failed trial factorization, non-positive diagonal or exhausted jitter budget
//	info > 0                rank deficiency; NOT an error, inspect PivotedFactor.Info
//
// Usage:
//
//	l, jitter, err := linalg.JitterCholesky(k)
//	if errors.Is(err, linalg.ErrNotPositiveDefinite) {
//	    f, err := linalg.PivotDecompose(k)
//	    // f.Rank() < n: drop redundant design points, or accept the truncated factor
//	}
//
// Concurrency: all functions are synchronous and keep no shared state; calls on
// distinct matrices may run in parallel. Buffers passed to PivotCholeskyInPlace
// must not be shared between concurrent calls.
package linalg
