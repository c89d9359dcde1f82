package models

// ChartKind identifies a supported chart type.
type ChartKind string

const (
	// ChartBar is a vertical bar chart.
	ChartBar ChartKind = "bar"
	// ChartLine is a line chart.
	ChartLine ChartKind = "line"
)

// Supported reports whether the kind can be rendered.
func (k ChartKind) Supported() bool {
	return k == ChartBar || k == ChartLine
}

// ChartRange is the source cell range of a chart, expressed in 1-based
// sheet coordinates on the chart's own sheet.
type ChartRange struct {
	FromCol int
	FromRow int
	ToCol   int
	ToRow   int
}

// Chart represents a chart bound to a worksheet. The first row of the
// source range is treated as the series title.
type Chart struct {
	// Kind is the chart type.
	Kind ChartKind
	// Title is the chart title.
	Title string
	// Range is the source data range.
	Range ChartRange
	// Anchor is the top-left cell the chart is placed at.
	Anchor string
}
