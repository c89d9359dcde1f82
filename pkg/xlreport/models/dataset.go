// Package models defines data structures for report generation.
package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrRowArity indicates a row with a cell count different from the
// declared column count.
var ErrRowArity = errors.New("row arity mismatch")

// Dataset represents ordered tabular input with named columns.
// Every row holds one value (possibly nil) per declared column, in
// declared order. Cell values are string, int, int64, float64 or
// time.Time.
type Dataset struct {
	// Columns is the ordered list of column names.
	Columns []string
	// Rows contains the data rows, each aligned to Columns.
	Rows [][]any
}

// NewDataset creates an empty dataset with the given column names.
func NewDataset(columns ...string) *Dataset {
	return &Dataset{Columns: columns}
}

// Append adds a row to the dataset. The number of cells must match the
// number of declared columns.
func (d *Dataset) Append(cells ...any) error {
	if len(cells) != len(d.Columns) {
		return fmt.Errorf("%w: got %d cells, want %d", ErrRowArity, len(cells), len(d.Columns))
	}
	d.Rows = append(d.Rows, cells)
	return nil
}

// ColumnIndex returns the position of a column by name, or -1 if the
// column is not declared.
func (d *Dataset) ColumnIndex(name string) int {
	for i, c := range d.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Column returns all values of a named column in row order. The second
// return value is false when the column is not declared.
func (d *Dataset) Column(name string) ([]any, bool) {
	idx := d.ColumnIndex(name)
	if idx < 0 {
		return nil, false
	}
	values := make([]any, 0, len(d.Rows))
	for _, row := range d.Rows {
		values = append(values, row[idx])
	}
	return values, true
}

// Float converts a cell value to float64. The second return value is
// false for nil cells and non-numeric types.
func Float(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// Time converts a cell value to time.Time. The second return value is
// false for nil cells and non-date types.
func Time(v any) (time.Time, bool) {
	t, ok := v.(time.Time)
	return t, ok
}

// String renders a cell value for display and width measurement.
// Nil cells render as the empty string.
func String(v any) string {
	if v == nil {
		return ""
	}
	if t, ok := v.(time.Time); ok {
		return t.Format("2006-01-02 15:04:05")
	}
	return fmt.Sprintf("%v", v)
}
