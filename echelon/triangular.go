// SPDX-License-Identifier: MIT

package echelon

import "fmt"

// Stage markers appended to the log when a target form is reached.
const (
	msgTriangular        = "Now in triangular form."
	msgReducedTriangular = "Now in reduced triangular form."
)

// ToTriangular drives the system to row-echelon form and returns it, so
// calls chain after the error check.
// Implementation:
//   - Stage 1: run the pivot/eliminate passes until Check accepts the matrix.
//   - Stage 2: append the "Now in triangular form." marker; print the log if configured.
//   - Stage 3: report ErrInconsistent if a zero coefficient row has b ≠ 0.
//
// Behavior highlights:
//   - A system already in row-echelon form is not mutated.
//   - On ErrInconsistent the reduced state is still returned for inspection.
//
// Complexity:
//   - Time O(r²·c).
func (s *System) ToTriangular() (*System, error) {
	if err := s.triangular(true); err != nil {
		return s, echelonErrorf(opToTriangular, err)
	}
	if err := s.checkConsistent(); err != nil {
		return s, echelonErrorf(opToTriangular, err)
	}

	return s, nil
}

// triangular is the elimination loop. printLog=false is used when the reduced
// reducer needs triangular form first: its records still go to the log, only
// printing is skipped.
func (s *System) triangular(printLog bool) error {
	rows := s.a.Rows()
	maxPasses := 2*rows + 1 // rows passes always suffice
	working := 0

	for pass := 1; ; pass++ {
		if pass > maxPasses {
			return fmt.Errorf("after %d passes: %w", maxPasses, ErrNotConverged)
		}
		if working < rows {
			if err := s.pivotPass(working); err != nil {
				return err
			}
			working++
		}

		rep := s.Check()
		if rep.InForm {
			break
		}
		s.note(rep.String())
		if err := s.correctZeroRowOrder(rep); err != nil {
			return err
		}
	}

	s.stage(msgTriangular)
	if printLog {
		return s.flushLog()
	}

	return nil
}

// pivotPass performs one pass for the working row: choose the pivot column,
// bring a row that starts there into the working position, and clear the
// pivot column below it.
func (s *System) pivotPass(working int) error {
	s.computeLeading()
	rows := s.a.Rows()

	pivotCol := NoPivot
	for r := working; r < rows; r++ {
		c := s.leading[r]
		if c != NoPivot && (pivotCol == NoPivot || c < pivotCol) {
			pivotCol = c
		}
	}
	if pivotCol == NoPivot {
		s.note(fmt.Sprintf("Rows %d to %d are all zero.", working+1, rows))
		return nil
	}

	if s.leading[working] != pivotCol {
		for r := working + 1; r < rows; r++ {
			if s.leading[r] == pivotCol {
				s.note(fmt.Sprintf("The pivot position [%d, %d] is zero, swapping rows.", working+1, pivotCol+1))
				if err := s.Swap(working, r); err != nil {
					return err
				}
				break
			}
		}
	}

	for r := working + 1; r < rows; r++ {
		if s.isZero(r, s.row(r)[pivotCol]) {
			continue
		}
		s.note(fmt.Sprintf("Improving row %d using the pivot of row %d.", r+1, working+1))
		if err := s.Eliminate(working, r, pivotCol); err != nil {
			return err
		}
	}

	return nil
}

// checkConsistent returns ErrInconsistent for the first all-zero coefficient
// row whose right-hand side is not zero.
func (s *System) checkConsistent() error {
	s.computeLeading()
	for r, c := range s.leading {
		if c == NoPivot && !s.isZeroRHS(r, s.b[r]) {
			return fmt.Errorf("row %d reads 0 = %g: %w", r+1, s.b[r], ErrInconsistent)
		}
	}

	return nil
}
