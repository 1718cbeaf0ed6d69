// Package config provides configuration structures and loading for tsprep.
package config

// Config represents the complete application configuration.
type Config struct {
	Input      InputConfig      `yaml:"input" mapstructure:"input"`
	Output     OutputConfig     `yaml:"output" mapstructure:"output"`
	Inspection InspectionConfig `yaml:"inspection" mapstructure:"inspection"`
	Logging    LoggingConfig    `yaml:"logging" mapstructure:"logging"`
}

// InputConfig describes the tabular source file and how it is parsed.
type InputConfig struct {
	Path          string   `yaml:"path" mapstructure:"path"`
	DateColumn    string   `yaml:"date_column" mapstructure:"date_column"`
	DateFormats   []string `yaml:"date_formats" mapstructure:"date_formats"`     // Go reference layouts, tried in order
	MissingValues []string `yaml:"missing_values" mapstructure:"missing_values"` // cell tokens treated as missing
}

// OutputConfig describes where the prepare command writes the cleaned dataset.
type OutputConfig struct {
	Dir  string `yaml:"dir" mapstructure:"dir"`
	File string `yaml:"file" mapstructure:"file"`
}

// InspectionConfig holds tunables for the inspection report.
type InspectionConfig struct {
	IQRMultiplier float64 `yaml:"iqr_multiplier" mapstructure:"iqr_multiplier"` // fence width in IQR units
	Correlation   bool    `yaml:"correlation" mapstructure:"correlation"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			DateColumn: "Date",
			DateFormats: []string{
				"2006-01-02",
				"2006-01-02 15:04:05",
				"2006-01-02T15:04:05",
				"2006/01/02",
				"01/02/2006",
				"02-Jan-2006",
			},
			MissingValues: []string{"", "NA", "N/A", "NaN", "nan", "null"},
		},
		Output: OutputConfig{
			Dir:  "data",
			File: "data.csv",
		},
		Inspection: InspectionConfig{
			IQRMultiplier: 1.5,
			Correlation:   true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}
