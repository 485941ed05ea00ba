// SPDX-License-Identifier: MIT

package echelon

// Leading returns, for every row, the column of its first non-zero cell, or
// NoPivot for an all-zero row. The result is a fresh copy; mutating it does
// not affect the System.
// Complexity: O(r·c).
func (s *System) Leading() []int {
	s.computeLeading()

	return append([]int(nil), s.leading...)
}

// computeLeading refreshes the cached leading index from the current matrix.
// Every row operation calls it before returning.
func (s *System) computeLeading() {
	rows := s.a.Rows()
	if len(s.leading) != rows {
		s.leading = make([]int, rows)
	}
	for i := 0; i < rows; i++ {
		s.leading[i] = s.leadingOf(i)
	}
}

// leadingOf scans row i left to right for the first cell that is not zero.
func (s *System) leadingOf(i int) int {
	for j, v := range s.row(i) {
		if !s.isZero(i, v) {
			return j
		}
	}

	return NoPivot
}
