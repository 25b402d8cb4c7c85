package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_FILE", "DATA_SHEET", "IQR_FACTOR", "IQR_FLOOR_AT_ZERO", "HISTOGRAM_BINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want \"8080\"", cfg.Server.Port)
	}
	if cfg.Audit.Factor != 1.5 {
		t.Errorf("Factor = %v, want 1.5", cfg.Audit.Factor)
	}
	if !cfg.Audit.FloorAtZero {
		t.Error("FloorAtZero should default to true")
	}
	if cfg.Audit.HistogramBins != 10 {
		t.Errorf("HistogramBins = %d, want 10", cfg.Audit.HistogramBins)
	}
	if cfg.Data.SheetName != "Sheet1" {
		t.Errorf("SheetName = %q, want \"Sheet1\"", cfg.Data.SheetName)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("IQR_FACTOR", "3.0")
	t.Setenv("IQR_FLOOR_AT_ZERO", "false")
	t.Setenv("HISTOGRAM_BINS", "25")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Audit.Factor != 3.0 {
		t.Errorf("Factor = %v, want 3.0", cfg.Audit.Factor)
	}
	if cfg.Audit.FloorAtZero {
		t.Error("FloorAtZero should be overridable to false")
	}
	if cfg.Audit.HistogramBins != 25 {
		t.Errorf("HistogramBins = %d, want 25", cfg.Audit.HistogramBins)
	}
}

func TestLoad_InvalidFactor(t *testing.T) {
	t.Setenv("IQR_FACTOR", "-1")

	if _, err := Load(); err == nil {
		t.Fatal("expected a validation error for a negative factor")
	}
}
