// Package main provides the CLI entry point for xlreport.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reportforge/xlreport/internal/sampledata"
	"github.com/reportforge/xlreport/pkg/xlreport"
	"github.com/reportforge/xlreport/pkg/xlreport/analyze"
	"github.com/reportforge/xlreport/pkg/xlreport/models"
)

var (
	cfgPath    string
	outputPath string
	title      string
	company    string
	charts     bool
	summary    bool
	autoFormat bool
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlreport",
		Short: "Generate a styled multi-sheet Excel report",
		Long: `xlreport generates a demo sales and financial report: one formatted
sheet per dataset, top-N rankings, and an executive summary sheet.`,
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to a YAML report profile")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: report_<timestamp>.xlsx)")
	rootCmd.Flags().StringVar(&title, "title", "Sales and Financial Report", "Report title")
	rootCmd.Flags().StringVar(&company, "company", "Demo Company", "Company name shown on the summary sheet")
	rootCmd.Flags().BoolVar(&charts, "charts", true, "Include charts")
	rootCmd.Flags().BoolVar(&summary, "summary", true, "Include the executive summary sheet")
	rootCmd.Flags().BoolVar(&autoFormat, "format", true, "Apply styling to data sheets")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger.Info().Msg("generating sample sales data")
	now := time.Now()
	sales := sampledata.Sales(now, 90)

	logger.Info().Msg("generating sample financial data")
	financial := sampledata.Financial(now, 12)

	logger.Info().Msg("computing rankings")
	topSellers := analyze.TopPerformers(sales, "seller", "net_amount", 5)
	topProducts := analyze.TopPerformers(sales, "product", "net_amount", 5)
	regionSummary := sampledata.RegionSummary(sales)

	inputs := []xlreport.Input{
		{
			Name: "Detailed Sales",
			Data: sales,
		},
		{
			Name:  "Financial Data",
			Data:  financial,
			Chart: &xlreport.ChartRequest{Kind: models.ChartLine, Title: "Monthly Revenue"},
		},
		{
			Name:  "Top Sellers",
			Data:  rankingDataset(topSellers, "seller", "net_amount"),
			Chart: &xlreport.ChartRequest{Kind: models.ChartBar, Title: "Top Sellers"},
		},
		{
			Name:  "Top Products",
			Data:  rankingDataset(topProducts, "product", "net_amount"),
			Chart: &xlreport.ChartRequest{Kind: models.ChartBar, Title: "Top Products"},
		},
		{
			Name: "Region Summary",
			Data: regionSummary,
		},
	}

	generator := xlreport.New(cfg, xlreport.WithLogger(logger))
	if err := generator.Generate(inputs); err != nil {
		return fmt.Errorf("report generation failed: %w", err)
	}

	var totalSales float64
	if values, ok := sales.Column("net_amount"); ok {
		for _, v := range values {
			if f, ok := models.Float(v); ok {
				totalSales += f
			}
		}
	}

	fmt.Printf("Report saved: %s\n", cfg.OutputPath)
	fmt.Printf("Sheets created: %d\n", len(inputs))
	fmt.Printf("Sales records: %d\n", len(sales.Rows))
	fmt.Printf("Total net sales: %.2f\n", totalSales)
	return nil
}

// buildConfig layers the report configuration: defaults, then an
// optional YAML profile, then explicit flags.
func buildConfig(cmd *cobra.Command) (xlreport.Config, error) {
	cfg := xlreport.DefaultConfig()
	cfg.Title = title
	cfg.CompanyName = company
	cfg.IncludeCharts = charts
	cfg.IncludeSummary = summary
	cfg.AutoFormat = autoFormat

	if cfgPath != "" {
		v := viper.New()
		v.SetConfigFile(cfgPath)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", cfgPath, err)
		}
		applyProfile(cmd, v, &cfg)
	}

	cfg.OutputPath = outputPath
	if cfg.OutputPath == "" {
		dir := os.Getenv("XLREPORT_OUTPUT_DIR")
		name := fmt.Sprintf("report_%s.xlsx", time.Now().Format("20060102_150405"))
		cfg.OutputPath = filepath.Join(dir, name)
	}
	return cfg, nil
}

// applyProfile copies profile values into the config, keeping values
// the user set explicitly on the command line.
func applyProfile(cmd *cobra.Command, v *viper.Viper, cfg *xlreport.Config) {
	set := func(flag string) bool { return cmd.Flags().Changed(flag) }

	if v.IsSet("title") && !set("title") {
		cfg.Title = v.GetString("title")
	}
	if v.IsSet("company") && !set("company") {
		cfg.CompanyName = v.GetString("company")
	}
	if v.IsSet("charts") && !set("charts") {
		cfg.IncludeCharts = v.GetBool("charts")
	}
	if v.IsSet("summary") && !set("summary") {
		cfg.IncludeSummary = v.GetBool("summary")
	}
	if v.IsSet("format") && !set("format") {
		cfg.AutoFormat = v.GetBool("format")
	}
	if v.IsSet("date_column") {
		cfg.DateColumn = v.GetString("date_column")
	}
	if v.IsSet("summary_source") {
		cfg.SummarySource = v.GetString("summary_source")
	}
}

// rankingDataset converts a ranking into a two-column dataset so it can
// be rendered as a sheet.
func rankingDataset(ranking models.Ranking, keyColumn, valueColumn string) *models.Dataset {
	ds := models.NewDataset(keyColumn, valueColumn)
	for _, entry := range ranking {
		_ = ds.Append(entry.Key, entry.Value)
	}
	return ds
}
