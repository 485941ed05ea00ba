// SPDX-License-Identifier: MIT

package echelon

import "fmt"

// ToReducedTriangular drives the system to reduced row-echelon form.
// Implementation:
//   - Stage 1: if Check rejects the matrix, run the triangular loop first
//     (its records are logged, its printing is suppressed).
//   - Stage 2: from the last row up, Scale every pivot that is not exactly 1.
//   - Stage 3: from the last pivot row up, Eliminate the pivot column in
//     every row above it.
//   - Stage 4: append the stage marker, print if configured, check consistency.
//
// Behavior highlights:
//   - Idempotent: a second call performs no row operation.
//   - All-zero rows have no pivot and are never scaled.
//
// Errors:
//   - ErrInconsistent when a zero coefficient row keeps b ≠ 0.
//
// Complexity:
//   - Time O(r²·c).
func (s *System) ToReducedTriangular() (*System, error) {
	if !s.IsTriangular() {
		s.note("Has to be in triangular form before it can be reduced.")
		if err := s.triangular(false); err != nil {
			return s, echelonErrorf(opToReducedTriangular, err)
		}
	}

	if err := s.normalizePivots(); err != nil {
		return s, echelonErrorf(opToReducedTriangular, err)
	}
	if err := s.eliminateAbove(); err != nil {
		return s, echelonErrorf(opToReducedTriangular, err)
	}

	s.stage(msgReducedTriangular)
	if err := s.flushLog(); err != nil {
		return s, echelonErrorf(opToReducedTriangular, err)
	}
	if err := s.checkConsistent(); err != nil {
		return s, echelonErrorf(opToReducedTriangular, err)
	}

	return s, nil
}

// normalizePivots scales each pivot to 1, last row first.
func (s *System) normalizePivots() error {
	s.computeLeading()
	for r := s.a.Rows() - 1; r >= 0; r-- {
		c := s.leading[r]
		if c == NoPivot || s.row(r)[c] == 1 {
			continue
		}
		s.note(fmt.Sprintf("The leading coefficient of Row %d is not 1.", r+1))
		if err := s.Scale(r, c); err != nil {
			return err
		}
	}

	return nil
}

// eliminateAbove clears every pivot column above its pivot, last pivot first.
// Rows above pivot row i lead strictly left of column c, so their leading
// index is unchanged by these eliminations.
func (s *System) eliminateAbove() error {
	s.computeLeading()
	for i := s.a.Rows() - 1; i >= 0; i-- {
		c := s.leading[i]
		if c == NoPivot {
			continue
		}
		for r := i - 1; r >= 0; r-- {
			if s.isZero(r, s.row(r)[c]) {
				continue
			}
			s.note(fmt.Sprintf("The leading coefficient at [%d, %d] is not the only one in its column (Row %d).", i+1, c+1, r+1))
			if err := s.Eliminate(i, r, c); err != nil {
				return err
			}
		}
	}

	return nil
}
