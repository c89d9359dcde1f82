package compose

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reportforge/xlreport/pkg/xlreport/models"
)

func chartSheet() *models.Worksheet {
	return &models.Worksheet{
		Name:   "Sales",
		Header: []string{"region", "amount"},
		Rows:   [][]any{{"North", 100}, {"South", 50}},
	}
}

func TestBindChart(t *testing.T) {
	log := zerolog.Nop()

	t.Run("bar chart", func(t *testing.T) {
		ws := chartSheet()
		result := BindChart(ws, models.ChartBar, "Sales by Region", log)

		require.False(t, result.Skipped)
		require.NotNil(t, result.Chart)
		require.Len(t, ws.Charts, 1)

		chart := ws.Charts[0]
		assert.Equal(t, models.ChartBar, chart.Kind)
		assert.Equal(t, "Sales by Region", chart.Title)
		assert.Equal(t, models.ChartRange{FromCol: 1, FromRow: 1, ToCol: 2, ToRow: 3}, chart.Range)
		// two rows below the header, one column right of the data
		assert.Equal(t, "D3", chart.Anchor)
	})

	t.Run("unsupported kind is a no-op", func(t *testing.T) {
		ws := chartSheet()
		result := BindChart(ws, models.ChartKind("pie"), "Nope", log)

		assert.True(t, result.Skipped)
		assert.Contains(t, result.Reason, "unsupported chart kind")
		assert.Empty(t, ws.Charts)
	})

	t.Run("empty sheet is skipped", func(t *testing.T) {
		ws := &models.Worksheet{Name: "Empty", Header: []string{"a", "b"}}
		result := BindChart(ws, models.ChartLine, "Nothing", log)

		assert.True(t, result.Skipped)
		assert.Empty(t, ws.Charts)
	})

	t.Run("single-column sheet is skipped", func(t *testing.T) {
		ws := &models.Worksheet{Name: "One", Header: []string{"a"}, Rows: [][]any{{"x"}}}
		result := BindChart(ws, models.ChartLine, "Nothing", log)

		assert.True(t, result.Skipped)
	})
}
