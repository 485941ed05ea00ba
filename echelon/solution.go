// SPDX-License-Identifier: MIT

package echelon

import (
	"fmt"

	"github.com/katalvlaran/echelon/matrix"
)

// Solution is read off a system in reduced row-echelon form.
//   - Values: one entry per unknown; free unknowns are set to 0, so Values is
//     a particular solution.
//   - Pivots: the pivot column of each non-zero row, top to bottom.
//   - Free:   the columns without a pivot (free unknowns), ascending.
type Solution struct {
	Values []float64
	Pivots []int
	Free   []int
}

// Unique reports whether the system has exactly one solution.
func (sol Solution) Unique() bool { return len(sol.Free) == 0 }

// Solution reduces the system if it is not already in reduced row-echelon
// form and reads off a solution.
// Errors:
//   - ErrInconsistent when the system has no solution.
func (s *System) Solution() (Solution, error) {
	if !s.IsReducedTriangular() {
		if _, err := s.ToReducedTriangular(); err != nil {
			return Solution{}, echelonErrorf(opSolution, err)
		}
	} else if err := s.checkConsistent(); err != nil {
		return Solution{}, echelonErrorf(opSolution, err)
	}

	cols := s.a.Cols()
	sol := Solution{Values: make([]float64, cols)}
	isPivot := make([]bool, cols)
	for r, c := range s.leading {
		if c == NoPivot {
			continue
		}
		sol.Values[c] = s.b[r]
		sol.Pivots = append(sol.Pivots, c)
		isPivot[c] = true
	}
	for j := 0; j < cols; j++ {
		if !isPivot[j] {
			sol.Free = append(sol.Free, j)
		}
	}

	return sol, nil
}

// Residual returns a·x − b, the per-equation error of candidate x against the
// original system. A solution of the system has a residual of zeros up to
// rounding.
// Errors: ErrEmptySystem, ErrDimensionMismatch, ErrNaNInf.
func Residual(a [][]float64, b, x []float64) ([]float64, error) {
	dense, err := matrix.NewDenseFromRows(a)
	if err != nil {
		return nil, echelonErrorf(opResidual, err)
	}
	if len(b) != dense.Rows() {
		return nil, echelonErrorf(opResidual,
			fmt.Errorf("vector has %d entries for %d rows: %w", len(b), dense.Rows(), ErrDimensionMismatch))
	}
	y, err := matrix.MatVec(dense, x)
	if err != nil {
		return nil, echelonErrorf(opResidual, err)
	}
	for i := range y {
		y[i] -= b[i]
	}

	return y, nil
}
