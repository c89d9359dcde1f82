// Package compose builds worksheet content: dataset population, the
// styling policy, chart binding and the executive summary layout.
package compose

import "github.com/reportforge/xlreport/pkg/xlreport/models"

// Populate writes a dataset into a worksheet: column names as row 1,
// data rows from row 2, preserving column order and cell types. The
// resulting sheet has len(ds.Rows)+1 rows and len(ds.Columns) columns.
func Populate(ws *models.Worksheet, ds *models.Dataset) {
	ws.Header = append([]string(nil), ds.Columns...)
	ws.Rows = make([][]any, 0, len(ds.Rows))
	for _, row := range ds.Rows {
		ws.Rows = append(ws.Rows, append([]any(nil), row...))
	}
}
