// SPDX-License-Identifier: MIT

// Package echelon: operation log and textual trace.
//
// The System owns a single append-only record sequence. Nothing here decides
// whether the trace is shown; Text renders it and flushLog writes it only to
// the writer passed WithPrintLog.

package echelon

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Formatting literals of the snapshot layout "|  a,  b |  rhs |".
const (
	_cellWidth   = 6
	_fmtRowOpen  = "|"
	_fmtSep      = ","
	_fmtRHSOpen  = " |"
	_fmtRowClose = " |"
	_logHeader   = "=========================== LOG ================================="
)

// Log returns a copy of every record, in order.
func (s *System) Log() []Record {
	return append([]Record(nil), s.log...)
}

// Operations returns only the row-operation records (Swap, Eliminate, Scale).
func (s *System) Operations() []Record {
	out := make([]Record, 0, len(s.log))
	for _, r := range s.log {
		if r.IsRowOp() {
			out = append(out, r)
		}
	}

	return out
}

// Text renders the whole log: the initial snapshot, one line per record and
// every captured snapshot after its record.
func (s *System) Text() string {
	var b strings.Builder
	for _, r := range s.log {
		if r.Op != OpStart {
			b.WriteString(r.String())
			b.WriteByte('\n')
		}
		if r.Snapshot != "" {
			b.WriteString(r.Snapshot)
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// String renders the current system one equation per line, coefficients
// first and the right-hand side last. Integer-valued cells print without a
// fraction; WithCirclePivots wraps pivot cells in parentheses.
func (s *System) String() string {
	s.computeLeading()
	var b strings.Builder
	rows := s.a.Rows()
	for i := 0; i < rows; i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(_fmtRowOpen)
		for j, v := range s.row(i) {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			cell := formatCell(v)
			if s.opts.circlePivots && j == s.leading[i] {
				cell = "(" + cell + ")"
			}
			b.WriteString(padLeft(cell))
		}
		b.WriteString(_fmtRHSOpen)
		b.WriteString(padLeft(formatCell(s.b[i])))
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// formatCell prints whole numbers as integers and everything else with three
// significant digits.
func formatCell(v float64) string {
	if v == 0 {
		return "0" // also folds -0
	}
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}

	return strconv.FormatFloat(v, 'g', 3, 64)
}

func padLeft(cell string) string {
	if len(cell) >= _cellWidth {
		return cell
	}

	return strings.Repeat(" ", _cellWidth-len(cell)) + cell
}

// record appends a row-operation record, with a snapshot WithFullLog.
func (s *System) record(r Record) {
	if s.opts.fullLog {
		r.Snapshot = s.String()
	}
	s.log = append(s.log, r)
}

// note appends a diagnostic record when debugging is enabled.
func (s *System) note(msg string) {
	if !s.opts.debug {
		return
	}
	s.log = append(s.log, Record{Op: OpNote, Message: msg})
}

// stage appends a form marker together with the current snapshot.
func (s *System) stage(msg string) {
	s.log = append(s.log, Record{Op: OpStage, Message: msg, Snapshot: s.String()})
}

// flushLog writes the trace to the WithPrintLog writer, if any.
func (s *System) flushLog() error {
	if s.opts.printLog == nil {
		return nil
	}
	if _, err := io.WriteString(s.opts.printLog, _logHeader+"\n"+s.Text()); err != nil {
		return fmt.Errorf("print log: %w", err)
	}

	return nil
}
