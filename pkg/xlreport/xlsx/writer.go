// Package xlsx renders assembled workbooks to xlsx files through
// excelize.
package xlsx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/reportforge/xlreport/pkg/xlreport/models"
)

// defaultSheet is the sheet excelize creates in a new file.
const defaultSheet = "Sheet1"

// Writer serializes workbooks to xlsx files. The zero value is not
// usable; use NewWriter.
type Writer struct {
	log zerolog.Logger
}

// NewWriter creates an xlsx writer.
func NewWriter(log zerolog.Logger) *Writer {
	return &Writer{log: log}
}

// Save renders the workbook and writes it to path, creating missing
// parent directories first. An empty workbook is written as a file
// with a single blank sheet, since the format requires at least one.
func (w *Writer) Save(wb *models.Workbook, path string) error {
	f, err := w.render(wb)
	if err != nil {
		return NewSaveError(path, StageRender, err)
	}
	defer f.Close()

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return NewSaveError(path, StageMkdir, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return NewSaveError(path, StageWrite, err)
	}

	w.log.Debug().Str("path", path).Int("sheets", wb.Len()).Msg("workbook written")
	return nil
}

func (w *Writer) render(wb *models.Workbook) (*excelize.File, error) {
	f := excelize.NewFile()
	styles := newStyleSet(f)

	for i, ws := range wb.Sheets() {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, ws.Name); err != nil {
				f.Close()
				return nil, err
			}
		} else if _, err := f.NewSheet(ws.Name); err != nil {
			f.Close()
			return nil, err
		}

		if err := w.renderSheet(f, styles, ws); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", ws.Name, err)
		}
	}

	return f, nil
}

func (w *Writer) renderSheet(f *excelize.File, styles *styleSet, ws *models.Worksheet) error {
	bodyStart := 1
	if !ws.Freeform() {
		bodyStart = 2
		for col, label := range ws.Header {
			cell, _ := excelize.CoordinatesToCellName(col+1, 1)
			if err := f.SetCellValue(ws.Name, cell, label); err != nil {
				return err
			}
		}
	}

	for r, row := range ws.Rows {
		for c, value := range row {
			if value == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, bodyStart+r)
			if err := f.SetCellValue(ws.Name, cell, cellValue(value)); err != nil {
				return err
			}
		}
	}

	if err := w.applyStyles(f, styles, ws); err != nil {
		return err
	}

	for _, chart := range ws.Charts {
		if err := addChart(f, ws, chart); err != nil {
			return err
		}
	}
	return nil
}

// cellValue keeps numeric and string cells native; dates are rendered
// as text the way record exports do.
func cellValue(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.Format("2006-01-02 15:04:05")
	}
	return v
}

func (w *Writer) applyStyles(f *excelize.File, styles *styleSet, ws *models.Worksheet) error {
	if ws.Title != nil && ws.Title.Span > 1 {
		end, _ := excelize.CoordinatesToCellName(ws.Title.Span, 1)
		if err := f.MergeCell(ws.Name, "A1", end); err != nil {
			return err
		}
	}

	if ws.Style.BordersApplied {
		bold := make(map[int]bool, len(ws.BoldRows))
		for _, r := range ws.BoldRows {
			bold[r] = true
		}

		bodyStart := 1
		if !ws.Freeform() {
			bodyStart = 2
		}
		cols := ws.ColumnCount()
		for r := 1; r < bodyStart+len(ws.Rows); r++ {
			id, err := styles.rowStyle(ws, r, bold[r])
			if err != nil {
				return err
			}
			first, _ := excelize.CoordinatesToCellName(1, r)
			last, _ := excelize.CoordinatesToCellName(cols, r)
			if err := f.SetCellStyle(ws.Name, first, last, id); err != nil {
				return err
			}
		}
	}

	for col, width := range ws.Style.ColWidths {
		name, _ := excelize.ColumnNumberToName(col)
		if err := f.SetColWidth(ws.Name, name, name, width); err != nil {
			return err
		}
	}
	return nil
}

func addChart(f *excelize.File, ws *models.Worksheet, chart models.Chart) error {
	var chartType excelize.ChartType
	switch chart.Kind {
	case models.ChartBar:
		chartType = excelize.Col
	case models.ChartLine:
		chartType = excelize.Line
	default:
		// unsupported kinds never reach the renderer
		return nil
	}

	r := chart.Range
	series := excelize.ChartSeries{
		Name:       rangeRef(ws.Name, r.ToCol, r.FromRow, r.ToCol, r.FromRow),
		Categories: rangeRef(ws.Name, r.FromCol, r.FromRow+1, r.FromCol, r.ToRow),
		Values:     rangeRef(ws.Name, r.ToCol, r.FromRow+1, r.ToCol, r.ToRow),
	}
	return f.AddChart(ws.Name, chart.Anchor, &excelize.Chart{
		Type:   chartType,
		Series: []excelize.ChartSeries{series},
		Title:  []excelize.RichTextRun{{Text: chart.Title}},
	})
}

// rangeRef builds an absolute range reference like 'Sheet'!$A$2:$A$10.
func rangeRef(sheet string, fromCol, fromRow, toCol, toRow int) string {
	from, _ := excelize.CoordinatesToCellName(fromCol, fromRow, true)
	to, _ := excelize.CoordinatesToCellName(toCol, toRow, true)
	quoted := "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
	if from == to {
		return fmt.Sprintf("%s!%s", quoted, from)
	}
	return fmt.Sprintf("%s!%s:%s", quoted, from, to)
}

// styleSet lazily builds the fixed styles used by the renderer, one id
// per file.
type styleSet struct {
	f     *excelize.File
	cache map[string]int
}

func newStyleSet(f *excelize.File) *styleSet {
	return &styleSet{f: f, cache: make(map[string]int)}
}

func (s *styleSet) rowStyle(ws *models.Worksheet, row int, bold bool) (int, error) {
	switch {
	case !ws.Freeform() && row == 1:
		return s.build("header", &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"366092"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorder(),
		})
	case ws.Title != nil && row == 1:
		return s.build("title", &excelize.Style{
			Font:   &excelize.Font{Bold: true, Size: ws.Title.Size},
			Border: thinBorder(),
		})
	case bold:
		return s.build("label", &excelize.Style{
			Font:   &excelize.Font{Bold: true},
			Border: thinBorder(),
		})
	default:
		return s.build("body", &excelize.Style{Border: thinBorder()})
	}
}

func (s *styleSet) build(key string, style *excelize.Style) (int, error) {
	if id, ok := s.cache[key]; ok {
		return id, nil
	}
	id, err := s.f.NewStyle(style)
	if err != nil {
		return 0, err
	}
	s.cache[key] = id
	return id, nil
}

func thinBorder() []excelize.Border {
	sides := []string{"left", "right", "top", "bottom"}
	borders := make([]excelize.Border, 0, len(sides))
	for _, side := range sides {
		borders = append(borders, excelize.Border{Type: side, Color: "000000", Style: 1})
	}
	return borders
}
