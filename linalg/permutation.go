// SPDX-License-Identifier: MIT
// Package linalg - permutation utilities for pivoted factors.
//
// Conventions:
//   - Pivot vectors are 1-indexed, as produced by PivotCholeskyInPlace.
//   - PermutationMatrix(piv) has M[i][piv[i]-1] = 1.
//   - The pivoted factor satisfies L·Lᵀ = M·A·Mᵀ, hence A = Mᵀ·L·Lᵀ·M.
//     For involutive pivots (M = Mᵀ) this is the same as M·L·Lᵀ·Mᵀ.

package linalg

import (
	"fmt"

	"github.com/katalvlaran/covchol/matrix"
)

// ValidatePermutation checks that piv is a permutation of {1..len(piv)}.
//
// Errors:
//   - ErrContractViolation joined with ErrInvalidPermutation for an empty vector,
//     an out-of-range entry or a duplicate entry.
//
// Complexity:
//   - Time O(n), Space O(n).
func ValidatePermutation(piv []int) error {
	n := len(piv)
	if n == 0 {
		return contractErrorf(opPermutation, fmt.Errorf("%w: empty", ErrInvalidPermutation))
	}
	seen := make([]bool, n)
	for i, p := range piv {
		if p < 1 || p > n {
			return contractErrorf(opPermutation,
				fmt.Errorf("%w: piv[%d]=%d outside [1,%d]", ErrInvalidPermutation, i, p, n))
		}
		if seen[p-1] {
			return contractErrorf(opPermutation,
				fmt.Errorf("%w: duplicate entry %d at piv[%d]", ErrInvalidPermutation, p, i))
		}
		seen[p-1] = true
	}

	return nil
}

// PermutationMatrix converts a 1-indexed pivot vector into the dense 0/1 matrix M
// with M[i][piv[i]-1] = 1 and zeros elsewhere.
//
// Errors:
//   - See ValidatePermutation.
//
// Complexity:
//   - Time O(n²) (zero fill), Space O(n²).
func PermutationMatrix(piv []int) (*matrix.Dense, error) {
	if err := ValidatePermutation(piv); err != nil {
		return nil, err
	}
	n := len(piv)
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, linalgErrorf(opPermutation, err)
	}
	for i, p := range piv {
		if err = m.Set(i, p-1, 1); err != nil {
			return nil, linalgErrorf(opPermutation, err)
		}
	}

	return m, nil
}

// Unpivot returns Mᵀ·L: row piv[i]-1 of the result is row i of l, i.e. the
// factor rows restored to the original index order. M is never formed.
//
// Errors:
//   - ErrContractViolation joined with matrix.ErrNilMatrix, matrix.ErrDimensionMismatch
//     (l.Rows() != len(piv)) or ErrInvalidPermutation.
//
// Complexity:
//   - Time O(n·c), Space O(n·c).
func Unpivot(l *matrix.Dense, piv []int) (*matrix.Dense, error) {
	if l == nil {
		return nil, contractErrorf(opUnpivot, matrix.ErrNilMatrix)
	}
	if l.Rows() != len(piv) {
		return nil, contractErrorf(opUnpivot, matrix.ErrDimensionMismatch)
	}
	if err := ValidatePermutation(piv); err != nil {
		return nil, linalgErrorf(opUnpivot, err)
	}

	n, c := l.Shape()
	out, err := matrix.NewDense(n, c)
	if err != nil {
		return nil, linalgErrorf(opUnpivot, err)
	}
	src, dst := l.RawData(), out.RawData()
	for i, p := range piv {
		copy(dst[(p-1)*c:p*c], src[i*c:(i+1)*c])
	}

	return out, nil
}

// Reconstruct returns Mᵀ·L·Lᵀ·M ≈ A for a pivoted factor (L, piv).
// Rank-deficient factors reproduce A up to the detected numerical rank.
//
// Errors:
//   - See Unpivot.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Reconstruct(l *matrix.Dense, piv []int) (*matrix.Dense, error) {
	u, err := Unpivot(l, piv)
	if err != nil {
		return nil, linalgErrorf(opReconstruct, err)
	}
	ut, err := matrix.Transpose(u)
	if err != nil {
		return nil, linalgErrorf(opReconstruct, err)
	}
	a, err := matrix.Mul(u, ut)
	if err != nil {
		return nil, linalgErrorf(opReconstruct, err)
	}

	return a.(*matrix.Dense), nil
}
