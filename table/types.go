// Package table declares the Value, Row and Table types and the
// constructors that build the per-test index.
package table

import "math"

// Column selects one numeric column of the table.
//
// The recognized selectors are Time, Displacement and Force; anything else
// yields ErrUnknownColumn from the operations that take a Column.
type Column string

const (
	// Time selects elapsed seconds since the start of a test.
	Time Column = "time"
	// Displacement selects the displacement column (length unit of the export).
	Displacement Column = "displacement"
	// Force selects the force column (force unit of the export).
	Force Column = "force"
)

// Value is one nullable numeric cell.
//
// A cell that was blank or failed numeric parsing in the source file is
// Missing: distinct from zero, excluded from range selection, and skipped by
// the work integral. Valid reports whether F carries a measurement.
type Value struct {
	// F is the measured number; meaningless when Valid is false.
	F float64
	// Valid is true when F was parsed from a real cell.
	Valid bool
}

// Val wraps a parsed measurement.
func Val(f float64) Value { return Value{F: f, Valid: true} }

// Missing is the cell for a blank or unparseable source field.
func Missing() Value { return Value{} }

// Float returns the measurement, or NaN for a missing cell.
// NaN keeps plotting collaborators honest: gaps stay gaps.
func (v Value) Float() float64 {
	if !v.Valid {
		return math.NaN()
	}
	return v.F
}

// Row is one sample as exported by the tensometer control software.
//
// Seconds is always present (the loader drops block rows without a
// timestamp); Displacement and Force may be Missing. Event carries the
// export's per-sample event marker.
type Row struct {
	Test         string
	Seconds      float64
	Displacement Value
	Force        Value
	Event        bool
}

// cell returns the Row's value for col and whether it is usable.
func (r Row) cell(col Column) (float64, bool) {
	switch col {
	case Time:
		return r.Seconds, true
	case Displacement:
		return r.Displacement.F, r.Displacement.Valid
	case Force:
		return r.Force.F, r.Force.Valid
	default:
		return 0, false
	}
}

// Table is the sole owner of the loaded rows.
//
// Rows stay in file order; tests records test names in order of first
// appearance; index maps each test name to the positions of its rows, so
// per-test views share the one arena instead of copying rows.
type Table struct {
	rows  []Row
	tests []string
	index map[string][]int
}

// New builds a Table from rows in file order.
// Complexity: O(len(rows)) time and index space.
func New(rows []Row) *Table {
	t := &Table{
		rows:  rows,
		index: make(map[string][]int),
	}
	for i, r := range rows {
		if _, seen := t.index[r.Test]; !seen {
			t.tests = append(t.tests, r.Test)
		}
		t.index[r.Test] = append(t.index[r.Test], i)
	}
	return t
}

// Len reports the total number of rows across all tests.
func (t *Table) Len() int { return len(t.rows) }

// Tests returns the test names in order of first appearance.
// The slice is a copy; mutating it does not affect the table.
func (t *Table) Tests() []string {
	out := make([]string, len(t.tests))
	copy(out, t.tests)
	return out
}

// All returns a view over every row, in file order.
func (t *Table) All() View {
	idx := make([]int, len(t.rows))
	for i := range idx {
		idx[i] = i
	}
	return View{tab: t, idx: idx}
}

// Test returns the view of one test's rows, or ErrUnknownTest.
func (t *Table) Test(name string) (View, error) {
	idx, ok := t.index[name]
	if !ok {
		return View{}, ErrUnknownTest
	}
	return View{tab: t, idx: idx}, nil
}
