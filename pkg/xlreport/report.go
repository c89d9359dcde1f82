package xlreport

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/reportforge/xlreport/pkg/xlreport/analyze"
	"github.com/reportforge/xlreport/pkg/xlreport/compose"
	"github.com/reportforge/xlreport/pkg/xlreport/models"
	"github.com/reportforge/xlreport/pkg/xlreport/xlsx"
)

// Persistence writes an assembled workbook to a path, creating missing
// parent directories.
type Persistence interface {
	Save(wb *models.Workbook, path string) error
}

// ChartRequest asks for a chart on a data sheet.
type ChartRequest struct {
	// Kind is the chart type. Unsupported kinds are skipped, not
	// fatal.
	Kind models.ChartKind
	// Title is the chart title.
	Title string
}

// Input is one (sheet name, dataset) pair. Inputs become sheets in
// slice order, with the summary sheet last.
type Input struct {
	Name  string
	Data  *models.Dataset
	Chart *ChartRequest
}

// Generator assembles complete reports. It is safe to run concurrent
// generations targeting different output paths; writes to the same
// path must be serialized by the caller.
type Generator struct {
	cfg   Config
	log   zerolog.Logger
	sink  Persistence
	clock func() time.Time
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the generator's logger.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Generator) { g.log = log }
}

// WithPersistence replaces the default xlsx writer.
func WithPersistence(sink Persistence) Option {
	return func(g *Generator) { g.sink = sink }
}

// WithClock overrides the generation timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(g *Generator) { g.clock = clock }
}

// New creates a Generator for the given configuration.
func New(cfg Config, opts ...Option) *Generator {
	g := &Generator{
		cfg:   cfg,
		log:   zerolog.Nop(),
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.sink == nil {
		g.sink = xlsx.NewWriter(g.log)
	}
	return g
}

// Generate assembles the full report and persists it. Each input
// becomes one populated sheet; when enabled, the executive summary is
// appended last and built from the summary-source dataset. Persistence
// happens once, at the end; any failure aborts the remaining steps.
func (g *Generator) Generate(inputs []Input) error {
	if g.cfg.OutputPath == "" {
		return ErrNoOutputPath
	}

	wb := models.NewWorkbook()

	for _, input := range inputs {
		ws, err := wb.AddSheet(input.Name)
		if err != nil {
			return err
		}
		compose.Populate(ws, input.Data)
		if g.cfg.AutoFormat {
			compose.Format(ws)
		}
		if g.cfg.IncludeCharts && input.Chart != nil {
			compose.BindChart(ws, input.Chart.Kind, input.Chart.Title, g.log)
		}
		g.log.Info().
			Str("sheet", input.Name).
			Int("records", len(input.Data.Rows)).
			Msg("sheet populated")
	}

	if g.cfg.IncludeSummary && len(inputs) > 0 {
		source := g.summarySource(inputs)
		ws, err := wb.AddSheet(compose.SummarySheetName)
		if err != nil {
			return err
		}
		stats := analyze.Describe(source, g.cfg.DateColumn)
		compose.Summary(ws, stats, g.cfg.CompanyName, g.clock())
		compose.Format(ws)
		g.log.Info().Msg("summary sheet composed")
	}

	if err := g.sink.Save(wb, g.cfg.OutputPath); err != nil {
		g.log.Error().Err(err).Msg("report generation failed")
		return err
	}

	g.log.Info().
		Str("path", g.cfg.OutputPath).
		Int("sheets", wb.Len()).
		Msg("report saved")
	return nil
}

// summarySource picks the dataset the summary analyzes: the sheet
// named by SummarySource, falling back to the first supplied dataset.
func (g *Generator) summarySource(inputs []Input) *models.Dataset {
	if g.cfg.SummarySource != "" {
		for _, input := range inputs {
			if input.Name == g.cfg.SummarySource {
				return input.Data
			}
		}
	}
	return inputs[0].Data
}
