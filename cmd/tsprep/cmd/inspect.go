package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsprep/tsprep/internal/config"
	"github.com/tsprep/tsprep/internal/dataset"
	"github.com/tsprep/tsprep/internal/inspect"
	"github.com/tsprep/tsprep/internal/logger"
	"github.com/tsprep/tsprep/internal/render"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Inspect a dataset and print its data-quality report",
	Long: `Inspect loads a CSV or XLSX file, normalizes the designated date
column, and prints a multi-section data-quality report.

The file argument overrides input.path from the configuration file.

Report sections:
  - Dimensions (rows, columns)
  - Data types per column
  - Missing values per column
  - Unique values per column
  - Duplicate-row count
  - Summary statistics for numeric columns
  - Correlation matrix
  - Outlier counts (IQR rule)

Example:
  tsprep inspect prices.csv --date-column Date`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	path := cfg.Input.Path
	if len(args) == 1 {
		path = args[0]
	}
	if path == "" {
		return fmt.Errorf("no input file: pass a file argument or set input.path in %s", GetConfigFile())
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	log = log.WithDataset(path)
	log.Info("loading dataset")

	ds, err := dataset.Load(path, loadOptions(cfg))
	if err != nil {
		log.Errorw("dataset load failed", "error", err)
		return err
	}
	log.Infow("dataset loaded", "rows", ds.Rows(), "columns", ds.Cols())

	inspector := inspect.New(log, inspect.WithIQRMultiplier(cfg.Inspection.IQRMultiplier))
	report, err := inspector.Inspect(ds)
	if err != nil {
		log.Errorw("inspection failed", "error", err)
		return err
	}

	renderCfg := render.DefaultConfig()
	renderCfg.Color = !noColor
	renderCfg.Correlation = cfg.Inspection.Correlation
	cmd.Print(render.Report(report, renderCfg))

	return nil
}

// loadOptions maps the input configuration onto dataset parsing options.
func loadOptions(cfg *config.Config) dataset.Options {
	return dataset.Options{
		DateColumn:    cfg.Input.DateColumn,
		DateFormats:   cfg.Input.DateFormats,
		MissingValues: cfg.Input.MissingValues,
	}
}
