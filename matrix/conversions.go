// SPDX-License-Identifier: MIT
// Package matrix provides converters between Dense and gonum.org/v1/gonum/mat,
// so LAPACK-backed routines (mat.Cholesky) can run on the same values.

package matrix

import "gonum.org/v1/gonum/mat"

const (
	opToSymDense = "ToSymDense"
	opFromGonum  = "FromGonum"
)

// ToSymDense copies a square matrix into a fresh *mat.SymDense.
//
// Notes:
//   - gonum reads only the upper triangle of a SymDense; callers that need the
//     lower triangle to agree must check symmetry first (ValidateSymmetric).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, wrapped At errors.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func ToSymDense(m Matrix) (*mat.SymDense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opToSymDense, err)
	}
	d, err := DenseOf(m)
	if err != nil {
		return nil, matrixErrorf(opToSymDense, err)
	}

	// DenseOf already produced a private buffer; gonum may own it.
	return mat.NewSymDense(d.r, d.data), nil
}

// FromGonum copies any gonum mat.Matrix (Dense, SymDense, TriDense, ...) into a fresh *Dense.
//
// Errors:
//   - ErrNilMatrix for a nil argument, ErrInvalidDimensions for empty matrices.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(m mat.Matrix) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := m.Dims()
	res, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			res.data[base+j] = m.At(i, j)
		}
	}

	return res, nil
}
