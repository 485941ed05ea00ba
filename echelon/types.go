// SPDX-License-Identifier: MIT

package echelon

import (
	"fmt"
	"math"

	"github.com/katalvlaran/echelon/matrix"
)

// NoPivot is the leading index of an all-zero row.
const NoPivot = -1

// System is a linear system A·x = b under reduction, together with the log of
// every operation applied to it.
//
// Invariants:
//   - len(b) == a.Rows(); both are permuted and updated in lockstep.
//   - leading always matches the current content of a (recomputed after every
//     row operation) and has length a.Rows().
//   - log only grows.
//   - Every coefficient in row i is exactly 0 or larger than tol[i] in
//     magnitude; the same holds for b[i] and rhsTol[i].
type System struct {
	a       *matrix.Dense // coefficient matrix, row arena with O(1) swaps
	b       []float64     // right-hand side, index-aligned with a
	leading []int         // cached leading index per row
	tol     []float64     // zero tolerance of each coefficient row
	rhsTol  []float64     // zero tolerance of each right-hand-side entry
	log     []Record      // append-only trace
	opts    Options
}

// New builds a System from a rectangular coefficient matrix a and a
// right-hand side b with one entry per row. Inputs are copied.
// Implementation:
//   - Stage 1: copy and validate a (rectangular, non-empty, finite).
//   - Stage 2: validate b (length == rows, finite) and copy it.
//   - Stage 3: derive the zero tolerance of every row from its own magnitude
//     (eps·max|a_ij|, eps·|b_i|) unless WithTolerance fixed it; snap cells
//     within tolerance to exact 0.
//   - Stage 4: compute the leading index and open the log with a snapshot.
//
// Errors:
//   - ErrEmptySystem, ErrDimensionMismatch, ErrNaNInf.
func New(a [][]float64, b []float64, opts ...Option) (*System, error) {
	o := gatherOptions(opts...)

	dense, err := matrix.NewDenseFromRows(a)
	if err != nil {
		return nil, echelonErrorf(opNew, err)
	}
	if len(b) != dense.Rows() {
		return nil, echelonErrorf(opNew,
			fmt.Errorf("vector has %d entries for %d rows: %w", len(b), dense.Rows(), ErrDimensionMismatch))
	}
	if err = matrix.ValidateFinite(b); err != nil {
		return nil, echelonErrorf(opNew, err)
	}

	s := &System{
		a:    dense,
		b:    append([]float64(nil), b...),
		opts: o,
	}
	s.initTolerances()
	s.computeLeading()
	s.log = append(s.log, Record{Op: OpStart, Snapshot: s.String()})

	return s, nil
}

// Rows returns the number of equations.
func (s *System) Rows() int { return s.a.Rows() }

// Cols returns the number of unknowns.
func (s *System) Cols() int { return s.a.Cols() }

// Matrix returns a copy of the current coefficient matrix.
func (s *System) Matrix() [][]float64 { return s.a.RawRows() }

// Vector returns a copy of the current right-hand side.
func (s *System) Vector() []float64 { return append([]float64(nil), s.b...) }

// initTolerances sizes the per-row tolerances and snaps the input to them.
func (s *System) initTolerances() {
	rows := s.a.Rows()
	s.tol = make([]float64, rows)
	s.rhsTol = make([]float64, rows)
	for i := 0; i < rows; i++ {
		r := s.row(i)
		if s.opts.fixedTol {
			s.tol[i], s.rhsTol[i] = s.opts.tolerance, s.opts.tolerance
		} else {
			eps := s.opts.numeric.Epsilon()
			s.tol[i], s.rhsTol[i] = eps*maxAbs(r), eps*math.Abs(s.b[i])
		}
		for j := range r {
			r[j] = s.snap(i, r[j])
		}
		s.b[i] = s.snapRHS(i, s.b[i])
	}
}

// growTol carries the tolerance of pivot row p, scaled by |m|, into row t
// after t -= m·p.
func (s *System) growTol(t, p int, m float64) {
	if s.opts.fixedTol {
		return
	}
	s.tol[t] = math.Max(s.tol[t], math.Abs(m)*s.tol[p])
	s.rhsTol[t] = math.Max(s.rhsTol[t], math.Abs(m)*s.rhsTol[p])
}

// scaleTol follows row r being multiplied by m.
func (s *System) scaleTol(r int, m float64) {
	if s.opts.fixedTol {
		return
	}
	s.tol[r] *= math.Abs(m)
	s.rhsTol[r] *= math.Abs(m)
}

// isZero reports whether coefficient v of row i counts as zero.
func (s *System) isZero(i int, v float64) bool { return math.Abs(v) <= s.tol[i] }

// isZeroRHS reports whether right-hand-side value v of row i counts as zero.
func (s *System) isZeroRHS(i int, v float64) bool { return math.Abs(v) <= s.rhsTol[i] }

// snap maps a coefficient of row i within tolerance to an exact (positive) zero.
func (s *System) snap(i int, v float64) float64 {
	if s.isZero(i, v) {
		return 0
	}

	return v
}

// snapRHS is snap for the right-hand side.
func (s *System) snapRHS(i int, v float64) float64 {
	if s.isZeroRHS(i, v) {
		return 0
	}

	return v
}

func maxAbs(v []float64) float64 {
	var m float64
	for _, x := range v {
		m = math.Max(m, math.Abs(x))
	}

	return m
}

// row returns the live slice of row i; i must already be validated.
func (s *System) row(i int) []float64 {
	r, _ := s.a.Row(i)

	return r
}

// checkRow validates a row index.
func (s *System) checkRow(i int) error {
	if i < 0 || i >= s.a.Rows() {
		return fmt.Errorf("row %d: %w", i, ErrOutOfRange)
	}

	return nil
}

// checkCol validates a column index.
func (s *System) checkCol(j int) error {
	if j < 0 || j >= s.a.Cols() {
		return fmt.Errorf("column %d: %w", j, ErrOutOfRange)
	}

	return nil
}
