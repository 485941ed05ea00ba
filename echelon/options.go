// SPDX-License-Identifier: MIT

// Package echelon: functional configuration of a System.
//
// Design goals:
//   - No global flags: every switch lives in the Options value captured by New.
//   - Trace output goes through the record log; nothing is printed unless
//     WithPrintLog supplies a writer.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package echelon

import (
	"io"
	"math"

	"github.com/katalvlaran/echelon/matrix"
)

// Defaults (single source of truth).
const (
	// DefaultDebug appends diagnostic OpNote records explaining each decision.
	DefaultDebug = false

	// DefaultFullLog attaches a matrix snapshot to every row-operation record.
	DefaultFullLog = false

	// DefaultCirclePivots wraps pivot cells in parentheses in snapshots.
	DefaultCirclePivots = false

	// DefaultEpsilon is the relative zero tolerance: a cell of row i counts as
	// zero when |v| ≤ eps·max|a_ij| over that row.
	DefaultEpsilon = matrix.DefaultEpsilon
)

const (
	panicPrintLogNil      = "echelon: WithPrintLog: writer must not be nil"
	panicToleranceInvalid = "echelon: WithTolerance: tol must be finite, non-negative"
)

// Option mutates internal options.
type Option func(*Options)

// Options is the resolved configuration of a System.
type Options struct {
	debug        bool
	fullLog      bool
	circlePivots bool
	printLog     io.Writer      // nil: never print
	numeric      matrix.Options // relative zero tolerance
	tolerance    float64        // absolute zero tolerance, when fixedTol
	fixedTol     bool
}

// WithDebug records a diagnostic OpNote before every decision the reducers take
// (why a swap happened, which form condition failed).
func WithDebug() Option {
	return func(o *Options) { o.debug = true }
}

// WithPrintLog writes the full trace (Text) to w each time a reduction
// reaches its target form. Panics if w is nil.
func WithPrintLog(w io.Writer) Option {
	if w == nil {
		panic(panicPrintLogNil)
	}

	return func(o *Options) { o.printLog = w }
}

// WithFullLog attaches a snapshot of the system to every row-operation record.
func WithFullLog() Option {
	return func(o *Options) { o.fullLog = true }
}

// WithCirclePivots renders pivot cells as "(v)" in snapshots.
func WithCirclePivots() Option {
	return func(o *Options) { o.circlePivots = true }
}

// WithEpsilon sets the relative zero tolerance. Each row gets the tolerance
// eps·max|a_ij| over its cells (eps·|b_i| for its right-hand side), so the
// decision does not depend on the units of an equation. Row operations carry
// the tolerance along: Scale multiplies it by |m|, Eliminate passes |m| times
// the pivot row's tolerance on to the target row. Values within tolerance are
// snapped to exactly 0, at construction and after every row operation.
// WithEpsilon(0) gives exact comparisons. Panics when eps is negative or not
// finite.
func WithEpsilon(eps float64) Option {
	set := matrix.WithEpsilon(eps) // validates eps, panics on nonsense

	return func(o *Options) {
		o.numeric = matrix.NewMatrixOptions(set)
		o.fixedTol = false
	}
}

// WithTolerance replaces the relative tolerance by one absolute tolerance for
// every cell: |v| ≤ tol counts as zero, whatever the scale of the row.
// Panics when tol is negative or not finite.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) {
		o.tolerance = tol
		o.fixedTol = true
	}
}

// gatherOptions applies setters on top of the defaults, last-writer-wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		debug:        DefaultDebug,
		fullLog:      DefaultFullLog,
		circlePivots: DefaultCirclePivots,
		numeric:      matrix.NewMatrixOptions(),
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
