package config

import (
	"strings"
	"testing"
)

func TestValidateRejectsEmptyDateColumn(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input.DateColumn = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "input.date_column") {
		t.Errorf("expected input.date_column in error, got: %v", err)
	}
}

func TestValidateRejectsNoDateFormats(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input.DateFormats = nil

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "input.date_formats") {
		t.Errorf("expected input.date_formats error, got: %v", err)
	}
}

func TestValidateRejectsEmptyOutputFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Output.File = ""

	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "output.file") {
		t.Errorf("expected output.file error, got: %v", err)
	}
}

func TestValidateRejectsNonPositiveIQRMultiplier(t *testing.T) {
	for _, m := range []float64{0, -1.5} {
		cfg := DefaultConfig()
		cfg.Inspection.IQRMultiplier = m

		err := cfg.Validate()
		if err == nil || !strings.Contains(err.Error(), "inspection.iqr_multiplier") {
			t.Errorf("multiplier %v: expected inspection.iqr_multiplier error, got: %v", m, err)
		}
	}
}

func TestValidateRejectsBadLoggingValues(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Logging.Level = "verbose"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "logging.level") {
		t.Errorf("expected logging.level in error, got: %v", err)
	}
	if !strings.Contains(err.Error(), "logging.format") {
		t.Errorf("expected logging.format in error, got: %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Input.DateColumn = ""
	cfg.Output.File = ""
	cfg.Inspection.IQRMultiplier = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	verrs, ok := err.(ValidationErrors)
	if !ok {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 3 {
		t.Errorf("expected 3 errors, got %d: %v", len(verrs), verrs)
	}
}

func TestValidationErrorMessage(t *testing.T) {
	e := ValidationError{Field: "input.date_column", Message: "date column name is required"}
	if e.Error() != "input.date_column: date column name is required" {
		t.Errorf("unexpected error string: %s", e.Error())
	}
}
