// Package covchol is a small toolkit for factoring the covariance matrices
// that statistical emulators (Gaussian-process surrogates of expensive
// simulators) depend on.
//
// What is inside?
//
//	matrix/   row-major Dense storage, validators (square, finite, symmetric),
//	          the dense kernels the factorizations need (Mul, Transpose,
//	          AddDiagonal, ...), sample covariance of a design, gonum converters
//	linalg/   JitterCholesky (Cholesky with bounded diagonal regularization),
//	          PivotCholesky / PivotDecompose (rank-revealing symmetric pivoting),
//	          PivotCholeskyInPlace (the buffer-owning kernel) and permutation utilities
//
// Quick example:
//
//	k, _ := matrix.NewDenseFrom(rows)
//	l, jitter, err := linalg.JitterCholesky(k)
//	switch {
//	case err == nil:
//	    // L·Lᵀ ≈ K + jitter·I
//	case errors.Is(err, linalg.ErrNotPositiveDefinite):
//	    f, _ := linalg.PivotDecompose(k)
//	    // f.Rank() tells how many design points carry information
//	}
//
// The heavy lifting of the unpivoted path is done by gonum's LAPACK port
// (gonum.org/v1/gonum/mat); the pivoted kernel runs gonum's pstrf
// (lapack64.Pstrf: largest remaining diagonal, first index on ties).
//
// See examples/ for a runnable emulator scenario.
package covchol
