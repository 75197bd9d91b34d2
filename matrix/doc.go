// Package matrix offers the dense storage and numeric policy underneath the
// covariance factorizations in package linalg.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set that return
//     errors instead of panicking, and optional NaN/Inf rejection on Set.
//   - Shared validators (ValidateNotNil, ValidateSquare, ValidateSymmetric,
//     ValidateFinite, ValidateNonEmpty) returning plain sentinels for uniform wrapping upstream.
//   - The handful of kernels factor checks need: Mul, Transpose, Scale,
//     AddDiagonal, AllClose, Diagonal and the sample Covariance of a design.
//   - Conversions to and from gonum.org/v1/gonum/mat (ToSymDense, FromGonum)
//     so LAPACK-backed routines can run on the same data.
//
// Dense matrices are best for the small-to-medium covariance matrices of
// emulator fitting, where O(n²) memory and O(n³) factorization are expected.
//
// See the examples in this package and in linalg for usage patterns.
package matrix
