package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tsprep/tsprep/internal/dataset"
	"github.com/tsprep/tsprep/internal/logger"
)

var prepareOutput string

var prepareCmd = &cobra.Command{
	Use:   "prepare [file]",
	Short: "Load a dataset, normalize its date column, and write it back out",
	Long: `Prepare loads a CSV or XLSX file, coerces the designated date column
to a normalized date format, and writes the cleaned dataset as CSV to the
configured output location (output.dir/output.file).

Cells that fail date or numeric coercion are written as empty (missing)
rather than aborting the run.

Example:
  tsprep prepare raw/prices.csv --output data/data.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPrepare,
}

func init() {
	prepareCmd.Flags().StringVarP(&prepareOutput, "output", "o", "",
		"Output file path (overrides output.dir/output.file)")
	rootCmd.AddCommand(prepareCmd)
}

func runPrepare(cmd *cobra.Command, args []string) error {
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

	outPath := prepareOutput
	if outPath == "" {
		outPath = filepath.Join(cfg.Output.Dir, cfg.Output.File)
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

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := dataset.WriteCSV(ds, outPath); err != nil {
		log.Errorw("write failed", "error", err)
		return err
	}

	log.Infow("dataset written", "path", outPath, "rows", ds.Rows())
	cmd.Printf("Wrote %d rows to %s\n", ds.Rows(), outPath)
	return nil
}
