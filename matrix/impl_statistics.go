// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Build sample covariance matrices from design matrices, the typical input
//     of the factorizations in package linalg (duplicate or collinear design
//     columns give exactly the rank-deficient matrices pivoting is meant for).
//
// Exposed API:
//   - CenterColumns(X) -> (Xc, means)   // subtract per-column mean
//   - Covariance(X)    -> (Cov, means)  // sample covariance of columns: (Xcᵀ Xc)/(r-1)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

const (
	opCenterColumns = "CenterColumns"
	opCovariance    = "Covariance"
)

// CenterColumns returns a centered copy Xc = X − mean(X, by columns) and the column means.
// Implementation:
//   - Stage 1: Validate X (non-nil) and copy it via DenseOf.
//   - Stage 2: Accumulate column sums in a deterministic pass, divide by r.
//   - Stage 3: Subtract the means in place on the copy.
//
// Errors:
//   - ErrNilMatrix from validation; wrapped At errors from the fallback copy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterColumns(X Matrix) (Matrix, []float64, error) {
	xc, err := DenseOf(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	r, c := xc.r, xc.c
	means := make([]float64, c)
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			means[j] += xc.data[base+j]
		}
	}
	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			xc.data[base+j] -= means[j]
		}
	}

	return xc, means, nil
}

// Covariance computes sample covariance of columns: Cov = (Xcᵀ Xc)/(r-1).
// Returns Cov and column means.
//
// Notes:
//   - Requires r >= 2 to avoid division by zero; else ErrDimensionMismatch.
//   - Uses CenterColumns then reuses canonical kernels (Transpose/Mul/Scale).
//   - The result is exactly symmetric: entry (i,j) and (j,i) are accumulated
//     in the same order, then mirrored from the upper triangle.
//
// Complexity:
//   - Time O(r*c²), Space O(r*c + c²).
func Covariance(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	if X.Rows() < 2 {
		return nil, nil, matrixErrorf(opCovariance, ErrDimensionMismatch)
	}

	xc, means, err := CenterColumns(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	xct, err := Transpose(xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	g, err := Mul(xct, xc)
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}
	cov, err := Scale(g, 1.0/float64(X.Rows()-1))
	if err != nil {
		return nil, nil, matrixErrorf(opCovariance, err)
	}

	// Mirror the upper triangle so downstream symmetry checks can be exact.
	d := cov.(*Dense)
	n := d.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d.data[j*n+i] = d.data[i*n+j]
		}
	}

	return d, means, nil
}
