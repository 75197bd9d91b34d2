// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/covchol/matrix"
)

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"equal 2x3", MustDense(t, 2, 3), MustDense(t, 2, 3), nil},
		{"row mismatch", MustDense(t, 2, 3), MustDense(t, 3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", MustDense(t, 2, 3), MustDense(t, 2, 4), matrix.ErrDimensionMismatch},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateNonEmpty covers the zero-value Dense and a 1×1 matrix.
func TestValidateNonEmpty(t *testing.T) {
	t.Parallel()

	require.ErrorIs(t, matrix.ValidateNonEmpty(&matrix.Dense{}), matrix.ErrInvalidDimensions)
	require.NoError(t, matrix.ValidateNonEmpty(MustDense(t, 1, 1)))
	require.NoError(t, matrix.ValidateNonEmpty(MustDense(t, 2, 3)))
}

// TestValidateSquareNonNil covers nil (untyped and typed), square and non-square inputs.
func TestValidateSquareNonNil(t *testing.T) {
	t.Parallel()

	var typedNil *matrix.Dense
	tests := []struct {
		name string
		m    matrix.Matrix
		want error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"typed nil", typedNil, matrix.ErrNilMatrix},
		{"1x1", MustDense(t, 1, 1), nil},
		{"3x3", MustDense(t, 3, 3), nil},
		{"2x3", MustDense(t, 2, 3), matrix.ErrNonSquare},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSquareNonNil(tc.m)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateFinite(t *testing.T) {
	t.Parallel()

	ok := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, matrix.ValidateFinite(ok))
	require.NoError(t, matrix.ValidateFinite(hide{ok}))

	bad, err := matrix.NewDenseFrom([][]float64{{1, 2}, {math.Inf(1), 4}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateFinite(bad), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(hide{bad}), matrix.ErrNaNInf)
}

func TestValidateSymmetric(t *testing.T) {
	t.Parallel()

	sym := NewFilledDense(t, 2, 2, []float64{2, 1, 1, 2})
	asym := NewFilledDense(t, 2, 2, []float64{1, 2, 1, 2})
	near := NewFilledDense(t, 2, 2, []float64{1, 1 + 1e-12, 1, 1})
	nan, err := matrix.NewDenseFrom([][]float64{{1, math.NaN()}, {math.NaN(), 1}}, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)

	tests := []struct {
		name string
		m    matrix.Matrix
		tol  float64
		want error
	}{
		{"nil", nil, 0, matrix.ErrNilMatrix},
		{"non-square", MustDense(t, 2, 3), 0, matrix.ErrNonSquare},
		{"1x1", MustDense(t, 1, 1), 0, nil},
		{"symmetric exact", sym, 0, nil},
		{"symmetric fallback", hide{sym}, 0, nil},
		{"asymmetric", asym, 0, matrix.ErrAsymmetry},
		{"asymmetric fallback", hide{asym}, 0.5, matrix.ErrAsymmetry},
		{"near exact", near, 0, matrix.ErrAsymmetry},
		{"near within tol", near, 1e-9, nil},
		{"nan entries", nan, 1, matrix.ErrAsymmetry},
		{"nan tol", sym, math.NaN(), matrix.ErrNaNInf},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSymmetric(tc.m, tc.tol)
			if tc.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.want)
		})
	}
}
