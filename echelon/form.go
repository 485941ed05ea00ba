// SPDX-License-Identifier: MIT

// Package echelon: row-echelon predicate.
//
// Check is read-only: it reports the first violated condition and where.
// Fixing a zero-row ordering violation is a separate step
// (correctZeroRowOrder) that the triangular reducer invokes explicitly.

package echelon

import "fmt"

// Violation names the row-echelon condition a FormReport failed on.
type Violation int

const (
	// ViolationNone means the matrix is in row-echelon form.
	ViolationNone Violation = iota

	// ViolationZeroRowOrder: an all-zero row sits above a non-zero row.
	ViolationZeroRowOrder

	// ViolationBelowPivot: a row below a pivot has a non-zero in the pivot column.
	ViolationBelowPivot

	// ViolationPivotOrder: a pivot is not strictly right of every pivot above it.
	ViolationPivotOrder
)

// String returns a short name of the violation.
func (v Violation) String() string {
	switch v {
	case ViolationNone:
		return "none"
	case ViolationZeroRowOrder:
		return "zero-row-order"
	case ViolationBelowPivot:
		return "below-pivot"
	case ViolationPivotOrder:
		return "pivot-order"
	default:
		return fmt.Sprintf("Violation(%d)", int(v))
	}
}

// FormReport is the result of Check. Row and Col are 0-based and locate the
// offending zero row or pivot; Col is NoPivot for ViolationZeroRowOrder.
type FormReport struct {
	InForm    bool
	Violation Violation
	Row       int
	Col       int
}

// String explains the report in the words used by the trace.
func (r FormReport) String() string {
	switch r.Violation {
	case ViolationNone:
		return "The system is in triangular form."
	case ViolationZeroRowOrder:
		return fmt.Sprintf("There's a nonzero row below a zero row (Row %d).", r.Row+1)
	case ViolationBelowPivot:
		return fmt.Sprintf("Not all coefficients below the leading coefficient [%d, %d] are zero.", r.Row+1, r.Col+1)
	case ViolationPivotOrder:
		return fmt.Sprintf("The leading coefficient at [%d, %d] is not to the right of all leading coefficients above.", r.Row+1, r.Col+1)
	default:
		return r.Violation.String()
	}
}

// Check evaluates the row-echelon conditions in order against a freshly
// computed leading index:
//  1. all-zero rows come after every non-zero row;
//  2. below every pivot (r, c) each row has 0 in column c;
//  3. every pivot is strictly right of all pivots above it.
//
// It never mutates the System.
// Complexity: O(r²).
func (s *System) Check() FormReport {
	rows := s.a.Rows()
	leading := make([]int, rows)
	for i := 0; i < rows; i++ {
		leading[i] = s.leadingOf(i)
	}

	// condition 1
	firstZero := NoPivot
	for i, c := range leading {
		if c == NoPivot {
			if firstZero == NoPivot {
				firstZero = i
			}
			continue
		}
		if firstZero != NoPivot {
			return FormReport{Violation: ViolationZeroRowOrder, Row: firstZero, Col: NoPivot}
		}
	}

	var r, x, c int
	for r = 0; r < rows; r++ {
		c = leading[r]
		if c == NoPivot {
			continue
		}
		// condition 2
		for x = r + 1; x < rows; x++ {
			if !s.isZero(x, s.row(x)[c]) {
				return FormReport{Violation: ViolationBelowPivot, Row: r, Col: c}
			}
		}
		// condition 3
		for x = 0; x < r; x++ {
			if leading[x] >= c {
				return FormReport{Violation: ViolationPivotOrder, Row: r, Col: c}
			}
		}
	}

	return FormReport{InForm: true, Violation: ViolationNone, Row: NoPivot, Col: NoPivot}
}

// IsTriangular reports whether the system is in row-echelon form.
func (s *System) IsTriangular() bool { return s.Check().InForm }

// IsReducedTriangular reports whether the system is in reduced row-echelon
// form: row-echelon, every pivot exactly 1 and alone in its column.
func (s *System) IsReducedTriangular() bool {
	if !s.IsTriangular() {
		return false
	}
	s.computeLeading()
	rows := s.a.Rows()
	for i, c := range s.leading {
		if c == NoPivot {
			continue
		}
		if s.row(i)[c] != 1 {
			return false
		}
		for r := 0; r < rows; r++ {
			if r != i && !s.isZero(r, s.row(r)[c]) {
				return false
			}
		}
	}

	return true
}

// correctZeroRowOrder moves the offending zero row of a ViolationZeroRowOrder
// report to the last row position.
func (s *System) correctZeroRowOrder(rep FormReport) error {
	if rep.Violation != ViolationZeroRowOrder {
		return nil
	}

	return s.Swap(rep.Row, s.a.Rows()-1)
}
