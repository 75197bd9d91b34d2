// SPDX-License-Identifier: MIT
// Package matrix provides the dense kernels the factorization layer relies on:
// materialization (DenseOf), multiplication, transpose, scaling, diagonal
// access and diagonal shifts. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches.
//
// Purpose:
//   - Keep the kernels that checking L·Lᵀ and building A + s·I need in one place.
//   - Define operation tags and shared constants for determinism and error reporting.
//
// Notes:
//   - Every kernel has a *Dense fast-path over the flat buffer and a generic
//     At/Set fallback with identical loop order.

package matrix

import "fmt"

// ZeroSum is the initial sum value for dot products and accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opDenseOf     = "DenseOf"
	opMul         = "Mul"
	opTranspose   = "Transpose"
	opScale       = "Scale"
	opAddDiagonal = "AddDiagonal"
	opDiagonal    = "Diagonal"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across facades.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// DenseOf materializes any Matrix into a fresh *Dense with the same values.
// MAIN DESCRIPTION:
//   - The single copying entry point used by factorization wrappers so the caller's
//     matrix is never aliased or mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m).
//   - Stage 2: *Dense → Copy (flat copy); otherwise At-driven i→j copy written
//     straight into the flat buffer (finiteness is a caller concern).
//
// Errors:
//   - ErrNilMatrix, ErrInvalidDimensions, wrapped At errors.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func DenseOf(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDenseOf, err)
	}
	if d, ok := m.(*Dense); ok {
		return d.Copy(), nil
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opDenseOf, err)
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opDenseOf, err)
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols == b.Rows.
//   - Stage 2: Dense fast-path (i-k-j order, skipping zero a[i,k]); generic i-j-k fallback.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c*k), Space O(r*k).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // triangular factors are half zeros
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Scale returns a new matrix whose elements are alpha * m[i,j].
// The original matrix is never mutated; alpha = 0 yields an explicit zero matrix.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (Matrix, error) {
	src, err := DenseOf(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	for idx := range src.data {
		src.data[idx] *= alpha
	}

	return src, nil
}

// AddDiagonal returns a fresh copy of m with s added to every diagonal entry,
// i.e. A + s·I. This is the regularization step of jittered factorizations.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n²) for the copy, O(n) for the shift.
func AddDiagonal(m Matrix, s float64) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opAddDiagonal, err)
	}
	res, err := DenseOf(m)
	if err != nil {
		return nil, matrixErrorf(opAddDiagonal, err)
	}
	n := res.r
	for i := 0; i < n; i++ {
		res.data[i*n+i] += s
	}

	return res, nil
}

// Diagonal returns a fresh slice with the diagonal entries of a square matrix.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, wrapped At errors (fallback path).
//
// Complexity:
//   - Time O(n), Space O(n).
func Diagonal(m Matrix) ([]float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	n := m.Rows()
	out := make([]float64, n)
	if d, ok := m.(*Dense); ok {
		for i := 0; i < n; i++ {
			out[i] = d.data[i*n+i]
		}
		return out, nil
	}

	var err error
	for i := 0; i < n; i++ {
		if out[i], err = m.At(i, i); err != nil {
			return nil, matrixErrorf(opDiagonal, err)
		}
	}

	return out, nil
}
