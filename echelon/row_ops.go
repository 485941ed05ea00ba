// SPDX-License-Identifier: MIT

// Package echelon: the three row-equivalence-preserving operations.
//
// Each operation applies to the coefficient row and its right-hand-side entry
// together, refreshes the leading index and appends exactly one record.
// Swapping, adding a multiple of another row, and scaling by a non-zero
// factor never change the solution set of A·x = b.

package echelon

import "fmt"

// Swap exchanges rows i and j of the matrix and of the right-hand side.
// Swapping a row with itself is a no-op and is not logged.
// Errors: ErrOutOfRange.
// Complexity: O(c) for the leading refresh; the rows themselves move in O(1).
func (s *System) Swap(i, j int) error {
	if err := s.checkRow(i); err != nil {
		return echelonErrorf(opSwap, err)
	}
	if err := s.checkRow(j); err != nil {
		return echelonErrorf(opSwap, err)
	}
	if i == j {
		return nil
	}
	if err := s.a.SwapRows(i, j); err != nil {
		return echelonErrorf(opSwap, err)
	}
	s.b[i], s.b[j] = s.b[j], s.b[i]
	s.tol[i], s.tol[j] = s.tol[j], s.tol[i]
	s.rhsTol[i], s.rhsTol[j] = s.rhsTol[j], s.rhsTol[i]
	s.computeLeading()
	s.record(Record{Op: OpSwap, Row: i, Source: j})

	return nil
}

// Eliminate subtracts m times pivotRow from targetRow, with
// m = target[pivotCol] / pivot[pivotCol], so that target[pivotCol] becomes 0.
// Implementation:
//   - Stage 1: validate indices, distinct rows and a non-zero pivot cell.
//   - Stage 2: t[j] -= m·p[j] for every column, b[t] -= m·b[p]. Row t takes
//     over |m| times the tolerance of row p; results within tolerance snap
//     to 0 and t[pivotCol] is set to exactly 0.
//   - Stage 3: refresh the leading index and log "Row t -> Row t - m * Row p".
//
// Errors:
//   - ErrOutOfRange, ErrSameRow, ErrZeroPivot (pivot[pivotCol] within the row tolerance).
//
// Complexity:
//   - Time O(c).
func (s *System) Eliminate(pivotRow, targetRow, pivotCol int) error {
	if err := s.checkRow(pivotRow); err != nil {
		return echelonErrorf(opEliminate, err)
	}
	if err := s.checkRow(targetRow); err != nil {
		return echelonErrorf(opEliminate, err)
	}
	if err := s.checkCol(pivotCol); err != nil {
		return echelonErrorf(opEliminate, err)
	}
	if pivotRow == targetRow {
		return echelonErrorf(opEliminate, fmt.Errorf("row %d: %w", pivotRow, ErrSameRow))
	}

	p, t := s.row(pivotRow), s.row(targetRow)
	if s.isZero(pivotRow, p[pivotCol]) {
		return echelonErrorf(opEliminate, fmt.Errorf("cell [%d, %d]: %w", pivotRow, pivotCol, ErrZeroPivot))
	}

	m := t[pivotCol] / p[pivotCol]
	s.growTol(targetRow, pivotRow, m)
	for j := range t {
		t[j] = s.snap(targetRow, t[j]-m*p[j])
	}
	t[pivotCol] = 0 // exact by construction
	s.b[targetRow] = s.snapRHS(targetRow, s.b[targetRow]-m*s.b[pivotRow])

	s.computeLeading()
	s.record(Record{Op: OpEliminate, Row: targetRow, Source: pivotRow, Multiplier: m})

	return nil
}

// Scale multiplies row and its right-hand-side entry by m = 1 / row[pivotCol],
// turning the pivot cell into exactly 1. The row tolerance scales with it.
// Errors: ErrOutOfRange, ErrZeroPivot.
// Complexity: O(c).
func (s *System) Scale(row, pivotCol int) error {
	if err := s.checkRow(row); err != nil {
		return echelonErrorf(opScale, err)
	}
	if err := s.checkCol(pivotCol); err != nil {
		return echelonErrorf(opScale, err)
	}

	r := s.row(row)
	if s.isZero(row, r[pivotCol]) {
		return echelonErrorf(opScale, fmt.Errorf("cell [%d, %d]: %w", row, pivotCol, ErrZeroPivot))
	}

	m := 1 / r[pivotCol]
	s.scaleTol(row, m)
	for j := range r {
		r[j] = s.snap(row, r[j]*m)
	}
	r[pivotCol] = 1
	s.b[row] = s.snapRHS(row, s.b[row]*m)

	s.computeLeading()
	s.record(Record{Op: OpScale, Row: row, Source: row, Multiplier: m})

	return nil
}
