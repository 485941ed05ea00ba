// SPDX-License-Identifier: MIT

// Package echelon: sentinel error set.
// Algorithms return these sentinels wrapped with an operation tag via
// echelonErrorf; callers match with errors.Is. No method panics on
// user-triggered conditions; option constructors panic on nonsensical values.

package echelon

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/echelon/matrix"
)

var (
	// ErrEmptySystem is returned when the coefficient matrix has no rows or no columns.
	ErrEmptySystem = matrix.ErrInvalidDimensions

	// ErrDimensionMismatch is returned when matrix rows are ragged or the
	// right-hand side length differs from the row count.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrNaNInf is returned when an input cell or right-hand-side entry is not finite.
	ErrNaNInf = matrix.ErrNaNInf

	// ErrOutOfRange is returned when a row or column index is outside the system.
	ErrOutOfRange = matrix.ErrOutOfRange

	// ErrSameRow is returned by Eliminate when the pivot and target rows coincide.
	ErrSameRow = errors.New("echelon: pivot and target rows must differ")

	// ErrZeroPivot is returned by Eliminate/Scale when the pivot cell is zero
	// (within eps). Inside the reducers this never happens: the pivot column
	// is always taken from a row's leading entry.
	ErrZeroPivot = errors.New("echelon: zero pivot")

	// ErrSingular marks a system without a valid pivot for some equation.
	ErrSingular = errors.New("echelon: singular system")

	// ErrInconsistent is the singular case in which an all-zero coefficient
	// row keeps a non-zero right-hand side (0 = b, b ≠ 0). errors.Is(err,
	// ErrSingular) holds for it.
	ErrInconsistent = fmt.Errorf("%w: no valid pivot, equations are inconsistent", ErrSingular)

	// ErrNotConverged guards the triangular loop against a pivoting bug; a
	// correct run never returns it.
	ErrNotConverged = errors.New("echelon: row-echelon form not reached")
)

// Operation tags used in error wrapping.
const (
	opNew                 = "New"
	opSwap                = "Swap"
	opEliminate           = "Eliminate"
	opScale               = "Scale"
	opToTriangular        = "ToTriangular"
	opToReducedTriangular = "ToReducedTriangular"
	opSolution            = "Solution"
	opResidual            = "Residual"
)

// echelonErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func echelonErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
