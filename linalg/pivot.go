// SPDX-License-Identifier: MIT
// Package linalg - copying wrapper around the pivoted kernel.

package linalg

import "github.com/katalvlaran/covchol/matrix"

// PivotedFactor is the result of a pivoted Cholesky factorization.
//   - L is lower triangular; row i belongs to original index Piv[i].
//   - Piv is a 1-indexed permutation of {1..n}.
//   - Info is the kernel's info code: 0 at full numerical rank, otherwise the
//     1-indexed step at which the remaining pivots fell below tolerance.
type PivotedFactor struct {
	L    *matrix.Dense
	Piv  []int
	Info int
}

// Rank returns the detected numerical rank.
func (f PivotedFactor) Rank() int {
	if f.Info == 0 {
		return len(f.Piv)
	}

	return f.Info - 1
}

// FullRank reports whether every pivot exceeded the tolerance.
func (f PivotedFactor) FullRank() bool { return f.Info == 0 }

// PermutationMatrix builds the explicit permutation matrix of f.Piv.
func (f PivotedFactor) PermutationMatrix() (*matrix.Dense, error) {
	return PermutationMatrix(f.Piv)
}

// Reconstruct returns Mᵀ·L·Lᵀ·M, which approximates the factored matrix up to its rank.
func (f PivotedFactor) Reconstruct() (*matrix.Dense, error) {
	return Reconstruct(f.L, f.Piv)
}

// PivotCholesky factors a symmetric positive semi-definite matrix with
// symmetric pivoting and returns (L, piv).
// MAIN DESCRIPTION:
//   - The PivotedCholeskyWrapper: copies a, allocates the buffers, runs
//     PivotCholeskyInPlace and hands back buffers nobody else references.
//
// Behavior highlights:
//   - a is never mutated (the kernel only ever sees a private copy).
//   - A rank-deficient result is returned normally; use PivotDecompose to
//     inspect the info code / rank.
//
// Errors:
//   - ErrContractViolation joined with the matrix sentinel on structural failures.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func PivotCholesky(a matrix.Matrix, opts ...Option) (*matrix.Dense, []int, error) {
	f, err := PivotDecompose(a, opts...)
	if err != nil {
		return nil, nil, err
	}

	return f.L, f.Piv, nil
}

// PivotDecompose is PivotCholesky returning the full PivotedFactor, including Info.
// The stopping threshold comes from WithPivotTolerance (default AutoPivotTolerance).
func PivotDecompose(a matrix.Matrix, opts ...Option) (PivotedFactor, error) {
	o := gatherOptions(opts...)
	l, err := checkInputs(opPivotCholesky, a, o)
	if err != nil {
		return PivotedFactor{}, err
	}

	piv := make([]int, l.Rows())
	info, err := PivotCholeskyInPlace(l, piv, o.pivotTol)
	if err != nil {
		return PivotedFactor{}, linalgErrorf(opPivotCholesky, err)
	}

	return PivotedFactor{L: l, Piv: piv, Info: info}, nil
}
