// SPDX-License-Identifier: MIT
// Package linalg - symmetric-pivoting Cholesky kernel (in place).
//
// Purpose:
//   - Factor symmetric positive SEMI-definite matrices, P·Aₚ·Pᵀ = L·Lᵀ, stopping
//     cleanly at the numerical rank instead of failing.
//
// Algorithm (LAPACK pstrf via gonum lapack64.Pstrf, lower triangle):
//
//	for j = 0..n-1:
//	    p  = argmax_{i≥j} S[i,i]           (first index on ties)
//	    if S[p,p] ≤ tol or NaN: stop, info = j+1
//	    swap row/column j ↔ p
//	    L[j,j] = √S[j,j];  L[i,j] = (A[i,j] - Σₖ L[i,k]·L[j,k]) / L[j,j]   (i > j)
//
// where S[i,i] = A[i,i] - Σₖ L[i,k]² is the running Schur-complement diagonal.
//
// Buffer contract:
//   - The caller owns a and piv; the kernel adds one 2n scratch slice for the
//     running dot products and keeps no state.
//   - Concurrent calls must not share buffers.

package linalg

import (
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"

	"github.com/katalvlaran/covchol/matrix"
)

// PivotCholeskyInPlace factors the symmetric matrix held in a, overwriting a
// with the lower-triangular factor L and piv with the 1-indexed pivot order.
// MAIN DESCRIPTION:
//   - Low-level kernel with the pstrf calling convention: (A_inout, piv_out) -> info.
//   - Row i of L belongs to original index piv[i]; A ≈ Mᵀ·L·Lᵀ·M with M = PermutationMatrix(piv).
//
// Implementation:
//   - Stage 1: validate buffers (non-nil, non-empty, square, len(piv) == n).
//   - Stage 2: an explicit tol above every diagonal stops before the first step (info = 1).
//   - Stage 3: lapack64.Pstrf on the row-major buffer viewed as blas64.Symmetric{Lower}.
//   - Stage 4: piv to 1-based; rank < n maps to info = rank+1.
//   - Stage 5: zero the strict upper triangle (and the unfactored trailing block on early stop).
//
// Behavior highlights:
//   - Only the lower triangle of a is read; the upper triangle is overwritten with zeros.
//   - On early stop at step j, columns j..n-1 of rows j..n-1 are zero, columns < j keep
//     their values and piv[j..n-1] lists the unfactored indices, so piv is always a
//     permutation of {1..n}.
//   - Rank deficiency is not an error.
//
// Inputs:
//   - a: n×n buffer holding A on entry, L on return.
//   - piv: length-n buffer; previous contents are ignored.
//   - tol: numerical-zero threshold for candidate pivots; negative selects n·ε·max(diag A).
//
// Returns:
//   - info: 0 on full numerical rank; otherwise k > 0 meaning the leading (k−1)×(k−1)
//     block of L is a valid factor and the remaining pivots fell below tol.
//
// Errors:
//   - ErrContractViolation joined with matrix.ErrNilMatrix, matrix.ErrInvalidDimensions,
//     matrix.ErrNonSquare or ErrPivotLength.
//
// Complexity:
//   - Time O(n³/3) at full rank, O(n²·r) for rank r; Space O(n) scratch beyond the buffers.
func PivotCholeskyInPlace(a *matrix.Dense, piv []int, tol float64) (int, error) {
	if a == nil {
		return 0, contractErrorf(opPivotKernel, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateNonEmpty(a); err != nil {
		return 0, contractErrorf(opPivotKernel, err)
	}
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, contractErrorf(opPivotKernel, err)
	}
	n := a.Rows()
	if len(piv) != n {
		return 0, contractErrorf(opPivotKernel, ErrPivotLength)
	}

	data := a.RawData()
	var i, k, rank int

	// pstrf tests tol only from the second step on.
	stopAtFirst := false
	if tol >= 0 {
		maxDiag := data[0]
		for i = 1; i < n; i++ {
			if data[i*n+i] > maxDiag {
				maxDiag = data[i*n+i]
			}
		}
		stopAtFirst = maxDiag <= tol || math.IsNaN(maxDiag)
	}

	if stopAtFirst {
		for i = 0; i < n; i++ {
			piv[i] = i
		}
	} else {
		sym := blas64.Symmetric{Uplo: blas.Lower, N: n, Stride: n, Data: data}
		_, rank, _ = lapack64.Pstrf(sym, piv, tol, make([]float64, 2*n))
	}
	for i = 0; i < n; i++ {
		piv[i]++
	}

	info := 0
	if rank < n {
		info = rank + 1
		zeroFrom(data, n, rank)
	}
	for i = 0; i < n; i++ {
		for k = i + 1; k < n; k++ {
			data[i*n+k] = 0
		}
	}

	return info, nil
}

// zeroFrom clears the lower trailing block rows/columns j..n-1 of a row-major order-n buffer.
func zeroFrom(data []float64, n, j int) {
	for i := j; i < n; i++ {
		for k := j; k <= i; k++ {
			data[i*n+k] = 0
		}
	}
}
