package compose

import (
	"unicode/utf8"

	"github.com/reportforge/xlreport/pkg/xlreport/models"
)

// Styling constants shared with the xlsx renderer.
const (
	// HeaderFillColor is the header row accent background.
	HeaderFillColor = "366092"
	// HeaderFontColor is the header row text color.
	HeaderFontColor = "FFFFFF"
	// MaxColumnWidth caps the computed column width in character units.
	MaxColumnWidth = 50
	// WidthPadding is added to the longest value of each column.
	WidthPadding = 2
)

// Format applies the styling policy to a worksheet: header row styling
// (skipped on freeform sheets), borders on all populated cells, and
// per-column widths. Calling it twice yields the same style state.
func Format(ws *models.Worksheet) {
	ws.Style.HeaderStyled = !ws.Freeform()
	ws.Style.BordersApplied = true
	ws.Style.ColWidths = columnWidths(ws)
}

// columnWidths computes width = min(longest stringified length + padding,
// MaxColumnWidth) per column, never below the header label's own length.
// Cells that cannot be stringified count as zero-length.
func columnWidths(ws *models.Worksheet) map[int]float64 {
	widths := make(map[int]float64, ws.ColumnCount())
	for col := 1; col <= ws.ColumnCount(); col++ {
		longest := 0
		floor := 0
		if col <= len(ws.Header) {
			floor = utf8.RuneCountInString(ws.Header[col-1])
			longest = floor
		}
		for _, row := range ws.Rows {
			if col > len(row) {
				continue
			}
			if n := cellLength(row[col-1]); n > longest {
				longest = n
			}
		}
		width := longest + WidthPadding
		if width > MaxColumnWidth {
			width = MaxColumnWidth
		}
		if width < floor {
			width = floor
		}
		widths[col] = float64(width)
	}
	return widths
}

// cellLength measures a cell's stringified length. Nil and otherwise
// unrenderable cells fall back to the empty string, so a malformed
// cell never aborts formatting.
func cellLength(v any) int {
	return utf8.RuneCountInString(models.String(v))
}
