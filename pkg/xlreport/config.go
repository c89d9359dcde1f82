// Package xlreport generates styled multi-sheet xlsx reports from
// tabular datasets.
package xlreport

// Config describes a report. It is not mutated by the engine.
type Config struct {
	// Title is the report title.
	Title string
	// OutputPath is the artifact location. Missing parent directories
	// are created on save.
	OutputPath string
	// IncludeCharts enables chart binding for inputs that request one.
	IncludeCharts bool
	// IncludeSummary enables the executive summary sheet.
	IncludeSummary bool
	// AutoFormat applies the styling policy to every data sheet.
	AutoFormat bool
	// CompanyName is the display name used on the summary sheet.
	CompanyName string
	// DateColumn is the designated date column for the summary date
	// range.
	DateColumn string
	// SummarySource names the sheet whose dataset feeds the summary
	// analysis. Empty means the first supplied dataset.
	SummarySource string
}

// DefaultConfig returns a configuration with charts, summary and
// formatting enabled.
func DefaultConfig() Config {
	return Config{
		Title:          "Report",
		IncludeCharts:  true,
		IncludeSummary: true,
		AutoFormat:     true,
		CompanyName:    "Company XYZ",
		DateColumn:     "date",
	}
}
