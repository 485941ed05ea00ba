// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row arena) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly arena of row slots: one flat buffer, each slot
//     holding one row contiguously (offset slot*cols + j).
//   - Keep the logical row order in a separate permutation, so a row swap is
//     O(1) and allocation-free: only two permutation entries change.
//   - Guarantee safety at the public surface: At/Set/Row/SwapRows return errors
//     instead of panicking.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Hints:
//   - Use Row(i) in hot loops: it returns the live slice of logical row i, so
//     writes land directly in the arena.
//   - Row slices stay valid across SwapRows (they follow the slot, not the index).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row/SwapRows: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxSwapRows = "SwapRows" // method tag used in error wrappers
	ctxFromRows = "NewDenseFromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; preserves the sentinel via %w.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete matrix stored as an arena of row slots.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c; slot s occupies data[s*c:(s+1)*c].
//   - order maps logical row i to its slot; it is always a permutation of 0..r-1.
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (>0)
	data           []float64 // contiguous slot storage (len == r*c)
	order          []int     // logical row -> slot
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil) // *Dense implements our public Matrix interface
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and the identity row order.
//   - Stage 3: set numeric policy from defaults.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Determinism:
//   - Always allocates the same layout for given (rows, cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	return newDenseWithPolicy(rows, cols, DefaultValidateNaNInf)
}

// NewDenseFromRows copies a rectangular [][]float64 into a new Dense.
// MAIN DESCRIPTION:
//   - Ingestion constructor: the caller's slices are never retained or mutated.
//
// Implementation:
//   - Stage 1: resolve options; validate shape (non-empty, rectangular).
//   - Stage 2: allocate via newDenseWithPolicy.
//   - Stage 3: copy row by row through Set, so the numeric policy applies to every cell.
//
// Inputs:
//   - rows: slice of equally long rows.
//   - opts: WithNoValidateNaNInf relaxes the finite-only policy.
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or no columns.
//   - ErrDimensionMismatch when rows have unequal lengths.
//   - ErrNaNInf when a cell is non-finite under the default policy.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateRectangular(rows); err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}
	m, err := newDenseWithPolicy(len(rows), len(rows[0]), o.validateNaNInf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
	}

	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
			}
		}
	}

	return m, nil
}

// newDenseWithPolicy is the single allocation path: shape check, zero buffer,
// identity order, explicit numeric policy.
func newDenseWithPolicy(rows, cols int, validateNaNInf bool) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	order := make([]int, rows)
	for i := range order {
		order[i] = i // identity permutation
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		order:          order,
		validateNaNInf: validateNaNInf,
	}, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the arena offset of logical (row, col) or returns ErrOutOfRange.
// Implementation:
//   - Stage 1: validate 0 ≤ row < m.r and 0 ≤ col < m.c.
//   - Stage 2: resolve the slot through order and compute slot*m.c + col.
//
// Notes:
//   - Returns the bare sentinel; public methods wrap with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return m.order[row]*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel error.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into the arena.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns the live slice backing logical row i.
// Writes through the slice mutate the matrix directly and bypass the numeric
// policy; callers doing arithmetic on finite data keep results finite.
// The slice keeps pointing at the same slot after SwapRows.
// Complexity: O(1), no allocation.
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := m.order[i] * m.c

	return m.data[base : base+m.c : base+m.c], nil
}

// SwapRows exchanges logical rows i and j.
// MAIN DESCRIPTION:
//   - Permutation swap: only two entries of order change; no cell is copied.
//
// Errors:
//   - ErrOutOfRange when i or j is outside [0, Rows()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxSwapRows, i, j, ErrOutOfRange)
	}
	if j < 0 || j >= m.r {
		return denseErrorf(ctxSwapRows, i, j, ErrOutOfRange)
	}
	m.order[i], m.order[j] = m.order[j], m.order[i]

	return nil
}

// RawRows returns a deep copy of the matrix as [][]float64 in logical row order.
// Complexity: O(r*c) time and memory.
func (m *Dense) RawRows() [][]float64 {
	out := make([][]float64, m.r)
	var i, base int
	for i = 0; i < m.r; i++ {
		base = m.order[i] * m.c
		out[i] = append([]float64(nil), m.data[base:base+m.c]...)
	}

	return out
}

// Clone returns a deep copy (new buffer, compacted row order, same numeric policy).
// Implementation:
//   - Stage 1: allocate a fresh arena.
//   - Stage 2: copy slots in logical order so the clone starts with the identity order.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	cp, _ := newDenseWithPolicy(m.r, m.c, m.validateNaNInf) // shape already valid
	var i, src int
	for i = 0; i < m.r; i++ {
		src = m.order[i] * m.c
		copy(cp.data[i*m.c:(i+1)*m.c], m.data[src:src+m.c])
	}

	return cp
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Fixed traversal order; not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate logical rows deterministically
		b.WriteString(_fmtRowOpen)
		base = m.order[i] * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
