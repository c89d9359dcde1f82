package compose

import (
	"fmt"
	"time"

	"github.com/reportforge/xlreport/pkg/xlreport/models"
)

// SummarySheetName is the name of the executive summary sheet.
const SummarySheetName = "Executive Summary"

const (
	summaryTitleSpan = 5
	summaryTitleSize = 16
	dateLayout       = "02/01/2006"
	timestampLayout  = "02/01/2006 15:04"
)

// Summary fills a worksheet with the executive summary content: a
// merged title, the generation timestamp, and a general statistics
// block built from the aggregated stats. The sheet is freeform — it
// has no header row — but still receives border and width formatting
// through Format.
func Summary(ws *models.Worksheet, stats models.SummaryStats, company string, generatedAt time.Time) {
	ws.Title = &models.SheetTitle{
		Text: fmt.Sprintf("EXECUTIVE REPORT - %s", company),
		Span: summaryTitleSpan,
		Size: summaryTitleSize,
	}

	rows := [][]any{
		{ws.Title.Text},
		{},
		{fmt.Sprintf("Generated at: %s", generatedAt.Format(timestampLayout))},
		{},
		{"GENERAL STATISTICS"},
		{fmt.Sprintf("Total Records: %d", stats.TotalRecords)},
	}
	if stats.DateRange != nil {
		rows = append(rows, []any{fmt.Sprintf("Period: %s to %s",
			stats.DateRange.Start.Format(dateLayout),
			stats.DateRange.End.Format(dateLayout))})
	}

	ws.Rows = rows
	ws.BoldRows = []int{5}
}
