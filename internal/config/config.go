package config

import (
	"os"
	"strconv"

	"goeda/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Audit  AuditConfig
}

// ServerConfig holds reporting server settings
type ServerConfig struct {
	Port string
}

// DataConfig holds data source settings
type DataConfig struct {
	// File is the CSV or XLSX file loaded at startup. Empty means the
	// seeded demo dataset is used instead.
	File string
	// SheetName selects the worksheet for XLSX sources
	SheetName string
}

// AuditConfig holds the default audit parameters
type AuditConfig struct {
	// Factor scales the IQR when deriving outlier bounds
	Factor float64
	// FloorAtZero clamps the lower outlier bound to zero
	FloorAtZero bool
	// HistogramBins is the default bin count for histogram reports
	HistogramBins int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Data: DataConfig{
			File:      getEnvOrDefault("DATA_FILE", ""),
			SheetName: getEnvOrDefault("DATA_SHEET", "Sheet1"),
		},
		Audit: AuditConfig{
			Factor:        getEnvFloatOrDefault("IQR_FACTOR", 1.5),
			FloorAtZero:   getEnvBoolOrDefault("IQR_FLOOR_AT_ZERO", true),
			HistogramBins: getEnvIntOrDefault("HISTOGRAM_BINS", 10),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Audit.Factor <= 0 {
		return errors.ConfigInvalid("IQR_FACTOR must be positive")
	}
	if config.Audit.HistogramBins < 1 {
		return errors.ConfigInvalid("HISTOGRAM_BINS must be at least 1")
	}
	if config.Server.Port == "" {
		return errors.ConfigInvalid("PORT cannot be empty")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
