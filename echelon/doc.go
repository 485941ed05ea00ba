// SPDX-License-Identifier: MIT

// Package echelon solves small dense linear systems A·x = b by Gaussian
// elimination and records every step, so the derivation can be read back.
//
// What & Why:
//
//	A learner supplies a coefficient matrix and a right-hand side. The engine
//	drives the system to row-echelon form (ToTriangular) and then to reduced
//	row-echelon form (ToReducedTriangular) using only the three
//	row-equivalence-preserving operations:
//
//	  - Swap(i, j)                           Row i <-> Row j
//	  - Eliminate(pivotRow, targetRow, col)  Row t -> Row t - m * Row p
//	  - Scale(row, col)                      Row r -> Row r * m
//
//	Every operation is appended to an ordered, append-only log of Records.
//	Rendering the log is left to the caller (Text, Record.String), unless
//	WithPrintLog names a writer.
//
// Pivoting policy:
//
//	The working row takes the smallest leading column found among the
//	remaining rows; if the working row does not start there, the first row
//	that does is swapped up. All-zero rows sink to the bottom. The policy is
//	deterministic: identical input and options give identical logs.
//
// Zero tolerance:
//
//	Each row carries its own tolerance, eps times its largest magnitude
//	(WithEpsilon), so an equation written in nanounits reduces exactly like
//	the same equation in units. Cells within tolerance are stored as exact
//	zeros. WithTolerance fixes one absolute tolerance instead.
//
// Errors:
//
//	ErrDimensionMismatch / ErrEmptySystem / ErrNaNInf at construction,
//	ErrZeroPivot and ErrOutOfRange for direct misuse of row operations,
//	ErrInconsistent (errors.Is ErrSingular) when a zero coefficient row keeps
//	a non-zero right-hand side.
//
// Concurrency:
//
//	A System is a single unit of mutable state. It is not safe for
//	concurrent use; guard a whole reduction with one lock if it is shared.
//
// Complexity:
//
//	ToTriangular and ToReducedTriangular are O(r²·c) for an r×c system.
package echelon
