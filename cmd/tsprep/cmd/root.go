package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/tsprep/tsprep/internal/config"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile       string
	logLevel      string
	logFormat     string
	dateColumn    string
	iqrMultiplier float64
	noColor       bool
)

var rootCmd = &cobra.Command{
	Use:   "tsprep",
	Short: "Time-series dataset preparation & inspection",
	Long: `A CLI tool for preparing a time-indexed CSV or XLSX dataset before
statistical modeling: it normalizes the date column and produces a
structured data-quality report.

Report sections:
  - Dimensions and per-column data types
  - Missing-value and unique-value counts
  - Duplicate-row count
  - Summary statistics for numeric columns
  - Pairwise Pearson correlation matrix
  - IQR-rule outlier counts`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "tsprep.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Parsing and inspection overrides
	rootCmd.PersistentFlags().StringVar(&dateColumn, "date-column", "",
		"Override the designated date column name")
	rootCmd.PersistentFlags().Float64Var(&iqrMultiplier, "iqr-multiplier", 0,
		"Override the outlier fence width in IQR units")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored report output")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel      string
	LogFormat     string
	DateColumn    string
	IQRMultiplier float64
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:      logLevel,
		LogFormat:     logFormat,
		DateColumn:    dateColumn,
		IQRMultiplier: iqrMultiplier,
	}
}

// loadConfig loads the configuration file and applies CLI overrides. When the
// default config file is absent and the user never pointed at one, built-in
// defaults are used instead of failing.
func loadConfig() (*config.Config, error) {
	configFile := GetConfigFile()

	var cfg *config.Config
	if _, err := os.Stat(configFile); os.IsNotExist(err) && !rootCmd.PersistentFlags().Changed("config") {
		cfg = config.DefaultConfig()
	} else {
		cfg, err = config.Load(configFile)
		if err != nil {
			return nil, err
		}
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.DateColumn, overrides.IQRMultiplier)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
