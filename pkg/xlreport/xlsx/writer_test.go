package xlsx

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/reportforge/xlreport/pkg/xlreport/compose"
	"github.com/reportforge/xlreport/pkg/xlreport/models"
)

func testWorkbook(t *testing.T) *models.Workbook {
	t.Helper()
	wb := models.NewWorkbook()

	ws, err := wb.AddSheet("Sales")
	require.NoError(t, err)
	ds := models.NewDataset("region", "amount")
	require.NoError(t, ds.Append("North", 100))
	require.NoError(t, ds.Append("South", 50))
	compose.Populate(ws, ds)
	compose.Format(ws)

	return wb
}

func TestWriterSave(t *testing.T) {
	w := NewWriter(zerolog.Nop())

	t.Run("round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.xlsx")
		require.NoError(t, w.Save(testWorkbook(t), path))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()

		assert.Equal(t, []string{"Sales"}, f.GetSheetList())

		rows, err := f.GetRows("Sales")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"region", "amount"}, rows[0])
		assert.Equal(t, []string{"North", "100"}, rows[1])
		assert.Equal(t, []string{"South", "50"}, rows[2])

		// the styling policy ran: header gets a style, widths are set
		styleID, err := f.GetCellStyle("Sales", "A1")
		require.NoError(t, err)
		assert.NotZero(t, styleID)
		width, err := f.GetColWidth("Sales", "A")
		require.NoError(t, err)
		assert.Equal(t, float64(len("region")+compose.WidthPadding), width)
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "deeply", "nested", "out", "report.xlsx")
		require.NoError(t, w.Save(testWorkbook(t), path))

		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("multiple sheets keep insertion order", func(t *testing.T) {
		wb := testWorkbook(t)
		ws, err := wb.AddSheet("Second")
		require.NoError(t, err)
		ds := models.NewDataset("k", "v")
		require.NoError(t, ds.Append("a", 1))
		compose.Populate(ws, ds)

		path := filepath.Join(t.TempDir(), "multi.xlsx")
		require.NoError(t, w.Save(wb, path))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, []string{"Sales", "Second"}, f.GetSheetList())
	})

	t.Run("empty workbook still writes a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.xlsx")
		require.NoError(t, w.Save(models.NewWorkbook(), path))

		f, err := excelize.OpenFile(path)
		require.NoError(t, err)
		defer f.Close()
		assert.Len(t, f.GetSheetList(), 1)
	})

	t.Run("unwritable parent is a mkdir failure", func(t *testing.T) {
		dir := t.TempDir()
		blocker := filepath.Join(dir, "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

		err := w.Save(testWorkbook(t), filepath.Join(blocker, "sub", "report.xlsx"))
		var saveErr *SaveError
		require.ErrorAs(t, err, &saveErr)
		assert.Equal(t, StageMkdir, saveErr.Stage)
	})

	t.Run("write failure carries the write stage", func(t *testing.T) {
		dir := t.TempDir()
		target := filepath.Join(dir, "report.xlsx")
		require.NoError(t, os.Mkdir(target, 0o755))

		err := w.Save(testWorkbook(t), target)
		var saveErr *SaveError
		require.ErrorAs(t, err, &saveErr)
		assert.Equal(t, StageWrite, saveErr.Stage)
		assert.NotNil(t, errors.Unwrap(err))
	})
}

func TestWriterSaveSummarySheet(t *testing.T) {
	wb := models.NewWorkbook()
	ws, err := wb.AddSheet("Executive Summary")
	require.NoError(t, err)
	ws.Title = &models.SheetTitle{Text: "EXECUTIVE REPORT - Acme", Span: 5, Size: 16}
	ws.Rows = [][]any{
		{"EXECUTIVE REPORT - Acme"},
		{},
		{"Generated at: 30/08/2026 14:05"},
		{},
		{"GENERAL STATISTICS"},
		{"Total Records: 2"},
	}
	ws.BoldRows = []int{5}
	compose.Format(ws)

	w := NewWriter(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "summary.xlsx")
	require.NoError(t, w.Save(wb, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	value, err := f.GetCellValue("Executive Summary", "A1")
	require.NoError(t, err)
	assert.Equal(t, "EXECUTIVE REPORT - Acme", value)

	merged, err := f.GetMergeCells("Executive Summary")
	require.NoError(t, err)
	require.Len(t, merged, 1)
	assert.Equal(t, "A1", merged[0].GetStartAxis())
	assert.Equal(t, "E1", merged[0].GetEndAxis())
}

func TestWriterSaveChart(t *testing.T) {
	wb := testWorkbook(t)
	ws := wb.Sheet("Sales")
	ws.Charts = append(ws.Charts, models.Chart{
		Kind:   models.ChartBar,
		Title:  "Sales by Region",
		Range:  models.ChartRange{FromCol: 1, FromRow: 1, ToCol: 2, ToRow: 3},
		Anchor: "D3",
	})

	w := NewWriter(zerolog.Nop())
	path := filepath.Join(t.TempDir(), "chart.xlsx")
	require.NoError(t, w.Save(wb, path))

	// the file with the embedded chart still opens cleanly
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Sales")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestRangeRef(t *testing.T) {
	assert.Equal(t, "'Sales'!$A$2:$A$3", rangeRef("Sales", 1, 2, 1, 3))
	assert.Equal(t, "'Sales'!$B$1", rangeRef("Sales", 2, 1, 2, 1))
	assert.Equal(t, "'Top Sellers'!$A$1:$B$6", rangeRef("Top Sellers", 1, 1, 2, 6))
}
