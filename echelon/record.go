// SPDX-License-Identifier: MIT

package echelon

import (
	"fmt"
	"math"
)

// Op identifies the kind of a log Record.
type Op int

const (
	// OpStart opens every log and carries the initial snapshot.
	OpStart Op = iota

	// OpSwap is Row i <-> Row j.
	OpSwap

	// OpEliminate is Row t -> Row t - m * Row p.
	OpEliminate

	// OpScale is Row r -> Row r * m.
	OpScale

	// OpStage marks that a target form was reached; it carries a snapshot.
	OpStage

	// OpNote is a diagnostic message, recorded only WithDebug.
	OpNote
)

// String returns the lower-case name of the op.
func (op Op) String() string {
	switch op {
	case OpStart:
		return "start"
	case OpSwap:
		return "swap"
	case OpEliminate:
		return "eliminate"
	case OpScale:
		return "scale"
	case OpStage:
		return "stage"
	case OpNote:
		return "note"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Record is one entry of the operation log. Row indices are 0-based; String
// renders them 1-based, as a learner would write them.
//   - OpSwap: Row and Source are the swapped rows.
//   - OpEliminate: Row is the target, Source the pivot row, Multiplier the m subtracted.
//   - OpScale: Row == Source, Multiplier the factor applied.
//   - OpStage / OpNote: Message holds the text.
//
// Snapshot is the rendered system after the entry, when one was captured
// (always for OpStart and OpStage, for row operations only WithFullLog).
type Record struct {
	Op         Op
	Row        int
	Source     int
	Multiplier float64
	Message    string
	Snapshot   string
}

// IsRowOp reports whether the record is a Swap, Eliminate or Scale.
func (r Record) IsRowOp() bool {
	return r.Op == OpSwap || r.Op == OpEliminate || r.Op == OpScale
}

// String renders the record as one trace line, e.g. "Row 2 -> Row 2 - 5.000 * Row 1".
func (r Record) String() string {
	switch r.Op {
	case OpStart:
		return "Initial system."
	case OpSwap:
		return fmt.Sprintf("Row %d <-> Row %d", r.Row+1, r.Source+1)
	case OpEliminate:
		sign := "-"
		if r.Multiplier < 0 {
			sign = "+"
		}
		return fmt.Sprintf("Row %d -> Row %d %s %.3f * Row %d", r.Row+1, r.Row+1, sign, math.Abs(r.Multiplier), r.Source+1)
	case OpScale:
		return fmt.Sprintf("Row %d -> Row %d * %.3f", r.Row+1, r.Row+1, r.Multiplier)
	default:
		return r.Message
	}
}
