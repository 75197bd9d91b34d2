// SPDX-License-Identifier: MIT

package linalg

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/covchol/matrix"
)

// choleskyLower runs the unpivoted LAPACK-style factorization (gonum potrf)
// on a and returns the lower factor as a fresh *Dense.
//
// Returns ok=false (and a nil factor) when a is not numerically positive
// definite; err is reserved for conversion failures.
// Complexity: O(n³).
func choleskyLower(a *matrix.Dense) (*matrix.Dense, bool, error) {
	sym, err := matrix.ToSymDense(a)
	if err != nil {
		return nil, false, err
	}

	var chol mat.Cholesky
	if !chol.Factorize(sym) {
		return nil, false, nil
	}
	var l mat.TriDense
	chol.LTo(&l)

	out, err := matrix.FromGonum(&l)
	if err != nil {
		return nil, false, err
	}

	return out, true, nil
}
