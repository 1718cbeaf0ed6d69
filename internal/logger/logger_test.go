package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsprep/tsprep/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected string // String representation of zapcore.Level
	}{
		{"debug", "debug"},
		{"info", "info"},
		{"", "info"}, // empty defaults to info
		{"warn", "warn"},
		{"error", "error"},
		{"unknown", "info"}, // unknown defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level := parseLevel(tt.input)
			if level.String() != tt.expected {
				t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, level.String(), tt.expected)
			}
		})
	}
}

func TestNew(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "test-log.json")

	tests := []struct {
		name    string
		cfg     *config.LoggingConfig
		wantErr bool
	}{
		{
			name: "json format info level",
			cfg: &config.LoggingConfig{
				Level:  "info",
				Format: "json",
				Output: "stdout",
			},
			wantErr: false,
		},
		{
			name: "text format debug level",
			cfg: &config.LoggingConfig{
				Level:  "debug",
				Format: "text",
				Output: "stderr",
			},
			wantErr: false,
		},
		{
			name: "file output",
			cfg: &config.LoggingConfig{
				Level:  "warn",
				Format: "json",
				Output: logFile,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if logger == nil && !tt.wantErr {
				t.Error("New() returned nil logger without error")
			}
			if logger != nil {
				_ = logger.Sync()
			}
		})
	}
}

func TestFileOutput(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "out.log")

	logger, err := New(&config.LoggingConfig{
		Level:  "info",
		Format: "json",
		Output: logFile,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.Infow("inspection started", "rows", 42)
	_ = logger.Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "inspection started") {
		t.Errorf("log file missing expected message, got: %s", data)
	}
	if !strings.Contains(string(data), `"rows":42`) {
		t.Errorf("log file missing structured field, got: %s", data)
	}
}

func TestNewDefault(t *testing.T) {
	logger := NewDefault()
	if logger == nil {
		t.Fatal("NewDefault() returned nil")
	}
	_ = logger.Sync()
}

func TestNewNop(t *testing.T) {
	logger := NewNop()
	if logger == nil {
		t.Fatal("NewNop() returned nil")
	}
	// Must be safe to log at any level without side effects.
	logger.Debugw("ignored")
	logger.Infow("ignored")
	logger.Errorw("ignored")
}

func TestWithContext(t *testing.T) {
	logger := NewNop()

	if l := logger.WithDataset("data/prices.csv"); l == nil {
		t.Error("WithDataset returned nil")
	}
	if l := logger.WithColumn("Close"); l == nil {
		t.Error("WithColumn returned nil")
	}
	if l := logger.WithSection("summary"); l == nil {
		t.Error("WithSection returned nil")
	}
}

func TestWithContextFields(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "ctx.log")

	logger, err := New(&config.LoggingConfig{
		Level:  "info",
		Format: "json",
		Output: logFile,
	})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	logger.WithColumn("Volume").Infow("computed")
	_ = logger.Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), `"column":"Volume"`) {
		t.Errorf("expected column field in log output, got: %s", data)
	}
}
