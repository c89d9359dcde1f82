package models

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// MaxSheetNameLength is the sheet name limit imposed by the xlsx format.
const MaxSheetNameLength = 31

// ErrDuplicateSheet indicates a sheet name already used in the workbook.
var ErrDuplicateSheet = errors.New("duplicate sheet name")

// ErrSheetNameInvalid indicates an empty or over-long sheet name.
var ErrSheetNameInvalid = errors.New("invalid sheet name")

// SheetTitle is a merged title cell on a freeform sheet.
type SheetTitle struct {
	// Text is the title content.
	Text string
	// Span is the number of columns the title merges across.
	Span int
	// Size is the font size in points.
	Size float64
}

// StyleState records which formatting has been applied to a sheet.
type StyleState struct {
	// HeaderStyled is true once the header row styling is applied.
	HeaderStyled bool
	// BordersApplied is true once cell borders are applied.
	BordersApplied bool
	// ColWidths maps 1-based column number to width in character units.
	ColWidths map[int]float64
}

// Worksheet represents one named tab of the output document.
// Dataset sheets carry a header row plus body rows; freeform sheets
// (no Header) carry labeled lines written directly, an optional merged
// title, and bold label rows.
type Worksheet struct {
	// Name is the sheet name, unique within a workbook.
	Name string
	// Header contains the ordered column labels for row 1.
	Header []string
	// Rows contains the body rows, written starting at row 2 (or row 1
	// on freeform sheets).
	Rows [][]any
	// Title is the merged title cell, if any.
	Title *SheetTitle
	// BoldRows lists 1-based rows rendered bold on freeform sheets.
	BoldRows []int
	// Charts contains chart specifications bound to this sheet.
	Charts []Chart
	// Style is the applied formatting state.
	Style StyleState
}

// Freeform reports whether the sheet bypasses the uniform header-row
// layout.
func (w *Worksheet) Freeform() bool {
	return len(w.Header) == 0
}

// ColumnCount returns the widest populated row, counting the header.
func (w *Worksheet) ColumnCount() int {
	n := len(w.Header)
	for _, row := range w.Rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// RowCount returns the number of populated sheet rows, counting the
// header row when present.
func (w *Worksheet) RowCount() int {
	if w.Freeform() {
		return len(w.Rows)
	}
	return len(w.Rows) + 1
}

// Workbook is the assembled artifact: an ordered sequence of worksheets
// with unique names.
type Workbook struct {
	sheets []*Worksheet
	byName map[string]*Worksheet
}

// NewWorkbook creates an empty workbook with no default sheet.
func NewWorkbook() *Workbook {
	return &Workbook{byName: make(map[string]*Worksheet)}
}

// AddSheet appends a new empty worksheet. Names must be non-empty,
// unique, and at most MaxSheetNameLength characters.
func (wb *Workbook) AddSheet(name string) (*Worksheet, error) {
	if name == "" || utf8.RuneCountInString(name) > MaxSheetNameLength {
		return nil, fmt.Errorf("%w: %q", ErrSheetNameInvalid, name)
	}
	if _, exists := wb.byName[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateSheet, name)
	}
	ws := &Worksheet{Name: name}
	wb.sheets = append(wb.sheets, ws)
	wb.byName[name] = ws
	return ws, nil
}

// Sheet returns a worksheet by name, or nil if not present.
func (wb *Workbook) Sheet(name string) *Worksheet {
	return wb.byName[name]
}

// Sheets returns the worksheets in insertion order.
func (wb *Workbook) Sheets() []*Worksheet {
	return wb.sheets
}

// Len returns the number of worksheets.
func (wb *Workbook) Len() int {
	return len(wb.sheets)
}
