// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 storage used by the echelon engine.
//
// The matrix package provides:
//
//   - Dense: an arena of row slots with a logical row order, so SwapRows is an
//     O(1) permutation update instead of a copy.
//   - Safe accessors (At/Set/Row) that return sentinel errors rather than panic.
//   - A numeric policy (NaN/Inf rejection, zero tolerance) configured through
//     functional options.
//   - Validators and MatVec for checking candidate solutions.
//
// Errors are package sentinels (errors.go); match them with errors.Is.
package matrix
