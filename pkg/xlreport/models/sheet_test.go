package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkbookAddSheet(t *testing.T) {
	wb := NewWorkbook()

	first, err := wb.AddSheet("Sales")
	require.NoError(t, err)
	second, err := wb.AddSheet("Finance")
	require.NoError(t, err)

	assert.Equal(t, 2, wb.Len())
	assert.Equal(t, []*Worksheet{first, second}, wb.Sheets())
	assert.Same(t, first, wb.Sheet("Sales"))
	assert.Nil(t, wb.Sheet("missing"))

	t.Run("duplicate name", func(t *testing.T) {
		_, err := wb.AddSheet("Sales")
		assert.ErrorIs(t, err, ErrDuplicateSheet)
		assert.Equal(t, 2, wb.Len())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := wb.AddSheet("")
		assert.ErrorIs(t, err, ErrSheetNameInvalid)
	})

	t.Run("name too long", func(t *testing.T) {
		_, err := wb.AddSheet(strings.Repeat("x", MaxSheetNameLength+1))
		assert.ErrorIs(t, err, ErrSheetNameInvalid)
	})

	t.Run("name at limit", func(t *testing.T) {
		_, err := wb.AddSheet(strings.Repeat("x", MaxSheetNameLength))
		assert.NoError(t, err)
	})
}

func TestWorksheetShape(t *testing.T) {
	ws := &Worksheet{
		Name:   "Sales",
		Header: []string{"region", "amount"},
		Rows:   [][]any{{"North", 100}, {"South", 50}},
	}

	assert.False(t, ws.Freeform())
	assert.Equal(t, 3, ws.RowCount())
	assert.Equal(t, 2, ws.ColumnCount())
}

func TestWorksheetFreeform(t *testing.T) {
	ws := &Worksheet{
		Name: "Summary",
		Rows: [][]any{{"TITLE"}, {}, {"Total Records: 3"}},
	}

	assert.True(t, ws.Freeform())
	assert.Equal(t, 3, ws.RowCount())
	assert.Equal(t, 1, ws.ColumnCount())
}
