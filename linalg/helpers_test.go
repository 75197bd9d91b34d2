// SPDX-License-Identifier: MIT
// Package linalg_test contains shared fixtures for the factorization tests.

package linalg_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/covchol/matrix"
)

// hide masks *matrix.Dense so the code under test takes its generic paths.
type hide struct{ matrix.Matrix }

// Fixtures shared across files (row-major literals; never mutated by tests).
var (
	// spdTextbook is the classic 3×3 SPD example with an integer Cholesky factor.
	spdTextbook = [][]float64{{4, 12, -16}, {12, 37, -43}, {-16, -43, 98}}

	// almostSingular has two identical rows: PD only after a 1e-6 jitter.
	almostSingular = [][]float64{
		{1, 1, 0.0067379469990855},
		{1, 1, 0.0067379469990855},
		{0.0067379469990855, 0.0067379469990855, 1},
	}

	// indefinite keeps a large negative eigenvalue under any affordable jitter.
	indefinite = [][]float64{{1e-6, 1, 0}, {1, 1, 1}, {0, 1, 1e-10}}

	// psdRank2 is positive semi-definite of rank 2 (rows 0 and 1 coincide).
	psdRank2 = [][]float64{{1, 1, 1e-6}, {1, 1, 1e-6}, {1e-6, 1e-6, 1}}
)

// mustDenseFrom builds a *matrix.Dense from rows or fails the test.
func mustDenseFrom(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// randomSPD returns Gᵀ·G + n·I for a deterministic n×n U(-1,1) matrix G.
func randomSPD(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	g, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := range g.RawData() {
		g.RawData()[i] = rng.Float64()*2 - 1
	}
	gt, err := matrix.Transpose(g)
	require.NoError(t, err)
	gram, err := matrix.Mul(gt, g)
	require.NoError(t, err)
	spd, err := matrix.AddDiagonal(gram, float64(n))
	require.NoError(t, err)
	mirrorUpper(spd)

	return spd
}

// duplicatedDesignCovariance returns the sample covariance of an r×c random
// design extended by a copy of its first column, a (c+1)×(c+1) matrix of rank c.
func duplicatedDesignCovariance(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	x, err := matrix.NewDense(r, c+1)
	require.NoError(t, err)
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v = rng.Float64()*2 - 1
			require.NoError(t, x.Set(i, j, v))
			if j == 0 {
				require.NoError(t, x.Set(i, c, v))
			}
		}
	}
	cov, _, err := matrix.Covariance(x)
	require.NoError(t, err)

	return cov.(*matrix.Dense)
}

// mirrorUpper copies the upper triangle of a square *Dense onto its lower triangle.
func mirrorUpper(m *matrix.Dense) {
	n, data := m.Rows(), m.RawData()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			data[j*n+i] = data[i*n+j]
		}
	}
}

// lowerTimesTranspose returns L·Lᵀ.
func lowerTimesTranspose(t testing.TB, l *matrix.Dense) matrix.Matrix {
	t.Helper()
	lt, err := matrix.Transpose(l)
	require.NoError(t, err)
	p, err := matrix.Mul(l, lt)
	require.NoError(t, err)

	return p
}

// requireClose fails unless a and b agree element-wise within atol.
func requireClose(t testing.TB, a, b matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond %g:\n%v\nvs\n%v", atol, a, b)
}

// requireRowsClose fails unless m matches want row by row within atol.
func requireRowsClose(t testing.TB, want [][]float64, m *matrix.Dense, atol float64) {
	t.Helper()
	got := m.ToRows()
	require.Len(t, got, len(want))
	for i := range want {
		require.Truef(t, floats.EqualApprox(got[i], want[i], atol),
			"row %d: got %v, want %v", i, got[i], want[i])
	}
}

// requireLowerTriangular fails if any strict upper entry of l is non-zero.
func requireLowerTriangular(t testing.TB, l *matrix.Dense) {
	t.Helper()
	n, data := l.Rows(), l.RawData()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			require.Zerof(t, data[i*n+j], "L[%d][%d] must be zero", i, j)
		}
	}
}

// requirePermutation fails unless piv is a permutation of {1..n}.
func requirePermutation(t testing.TB, piv []int, n int) {
	t.Helper()
	require.Len(t, piv, n)
	seen := make(map[int]bool, n)
	for _, p := range piv {
		require.GreaterOrEqual(t, p, 1)
		require.LessOrEqual(t, p, n)
		require.False(t, seen[p], "duplicate pivot %d", p)
		seen[p] = true
	}
}
