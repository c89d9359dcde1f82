package compose

import (
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/reportforge/xlreport/pkg/xlreport/models"
)

// BindResult reports the outcome of a chart binding attempt. Chart
// support is best-effort decoration: an unsupported kind yields a
// skipped result, never an error.
type BindResult struct {
	// Chart is the bound specification, nil when skipped.
	Chart *models.Chart
	// Skipped is true when no chart was bound.
	Skipped bool
	// Reason explains why the binding was skipped.
	Reason string
}

// BindChart attaches a chart of the given kind to a populated sheet.
// The source range covers the first two columns including the header
// row; the header cell of the value column names the series. The chart
// is anchored two rows below the header and one column right of the
// data so it does not overlap populated cells.
func BindChart(ws *models.Worksheet, kind models.ChartKind, title string, log zerolog.Logger) BindResult {
	if !kind.Supported() {
		log.Warn().
			Str("sheet", ws.Name).
			Str("kind", string(kind)).
			Msg("unsupported chart kind, skipping")
		return BindResult{Skipped: true, Reason: "unsupported chart kind: " + string(kind)}
	}
	if len(ws.Rows) == 0 || ws.ColumnCount() < 2 {
		log.Warn().
			Str("sheet", ws.Name).
			Msg("not enough data for a chart, skipping")
		return BindResult{Skipped: true, Reason: "not enough data for a chart"}
	}

	anchor, _ := excelize.CoordinatesToCellName(ws.ColumnCount()+2, 3)
	chart := models.Chart{
		Kind:  kind,
		Title: title,
		Range: models.ChartRange{
			FromCol: 1,
			FromRow: 1,
			ToCol:   2,
			ToRow:   ws.RowCount(),
		},
		Anchor: anchor,
	}
	ws.Charts = append(ws.Charts, chart)

	log.Info().
		Str("sheet", ws.Name).
		Str("kind", string(kind)).
		Msg("chart bound")
	return BindResult{Chart: &ws.Charts[len(ws.Charts)-1]}
}
