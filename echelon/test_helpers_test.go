// SPDX-License-Identifier: MIT
// Package echelon_test contains shared fixtures and assertions.

package echelon_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/echelon/echelon"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for comparing recovered solutions.
const tol = 1e-9

// MustSystem BUILDS a System or fails the test.
func MustSystem(t testing.TB, a [][]float64, b []float64, opts ...echelon.Option) *echelon.System {
	t.Helper()
	s, err := echelon.New(a, b, opts...)
	require.NoError(t, err)

	return s
}

// copyRows deep-copies a fixture so tests can keep the original equations.
func copyRows(a [][]float64) [][]float64 {
	out := make([][]float64, len(a))
	for i := range a {
		out[i] = append([]float64(nil), a[i]...)
	}

	return out
}

// requireSolves ASSERTS x satisfies a·x = b within tol.
func requireSolves(t *testing.T, a [][]float64, b, x []float64) {
	t.Helper()
	res, err := echelon.Residual(a, b, x)
	require.NoError(t, err)
	for i, r := range res {
		require.LessOrEqualf(t, math.Abs(r), tol, "equation %d residual %g", i+1, r)
	}
}

// opLines RENDERS the row-operation records of s as trace lines.
func opLines(s *echelon.System) []string {
	ops := s.Operations()
	out := make([]string, len(ops))
	for i, r := range ops {
		out[i] = r.String()
	}

	return out
}

// requireReducedForm ASSERTS every pivot is exactly 1 and alone in its column.
func requireReducedForm(t *testing.T, s *echelon.System) {
	t.Helper()
	m := s.Matrix()
	for i, c := range s.Leading() {
		if c == echelon.NoPivot {
			continue
		}
		require.Equalf(t, 1.0, m[i][c], "pivot [%d,%d]", i, c)
		for r := range m {
			if r != i {
				require.Equalf(t, 0.0, m[r][c], "cell [%d,%d] in pivot column", r, c)
			}
		}
	}
}
