package sampledata

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportforge/xlreport/pkg/xlreport/models"
)

var end = time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

func TestSalesDeterministic(t *testing.T) {
	first := Sales(end, 30)
	second := Sales(end, 30)

	assert.Equal(t, first.Columns, second.Columns)
	assert.Equal(t, first.Rows, second.Rows)
	assert.NotEmpty(t, first.Rows)
}

func TestSalesShape(t *testing.T) {
	ds := Sales(end, 30)

	require.Equal(t, 11, len(ds.Columns))
	for _, row := range ds.Rows {
		require.Len(t, row, len(ds.Columns))

		date, ok := models.Time(row[0])
		require.True(t, ok)
		assert.False(t, date.After(end))

		gross, _ := models.Float(row[8])
		discount, _ := models.Float(row[9])
		net, _ := models.Float(row[10])
		assert.InDelta(t, gross-discount, net, 0.0001)
	}
}

func TestFinancial(t *testing.T) {
	ds := Financial(end, 12)

	assert.Len(t, ds.Rows, 12)
	assert.Equal(t, "2025-09", ds.Rows[0][0])
	assert.Equal(t, "2026-08", ds.Rows[11][0])

	for _, row := range ds.Rows {
		revenue, _ := models.Float(row[1])
		netProfit, _ := models.Float(row[8])
		margin, _ := models.Float(row[9])
		assert.InDelta(t, netProfit/revenue*100, margin, 0.0001)
	}
}

func TestRegionSummary(t *testing.T) {
	sales := models.NewDataset("region", "net_amount", "quantity")
	require.NoError(t, sales.Append("North", 100.0, 2))
	require.NoError(t, sales.Append("South", 50.0, 1))
	require.NoError(t, sales.Append("North", 25.0, 3))

	summary := RegionSummary(sales)
	require.Len(t, summary.Rows, 2)
	assert.Equal(t, []any{"North", 125.0, 5}, summary.Rows[0])
	assert.Equal(t, []any{"South", 50.0, 1}, summary.Rows[1])
}
