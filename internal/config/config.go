package config

import (
	"os"
	"strconv"

	"esgboard/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	Report ReportConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// UploadConfig holds file upload limits
type UploadConfig struct {
	// MaxBytes caps the size of one uploaded file
	MaxBytes int64
}

// ReportConfig holds reporting parameter bounds and defaults
type ReportConfig struct {
	MinYear     int
	MaxYear     int
	DefaultYear int
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Upload: UploadConfig{
			MaxBytes: getEnvInt64("UPLOAD_MAX_BYTES", 32<<20),
		},
		Report: ReportConfig{
			MinYear:     getEnvInt("REPORT_MIN_YEAR", 2020),
			MaxYear:     getEnvInt("REPORT_MAX_YEAR", 2030),
			DefaultYear: getEnvInt("REPORT_DEFAULT_YEAR", 2024),
		},
	}

	if cfg.Report.MinYear > cfg.Report.MaxYear {
		return nil, errors.ConfigInvalid("REPORT_MIN_YEAR must not exceed REPORT_MAX_YEAR")
	}
	if cfg.Report.DefaultYear < cfg.Report.MinYear || cfg.Report.DefaultYear > cfg.Report.MaxYear {
		return nil, errors.ConfigInvalid("REPORT_DEFAULT_YEAR must be inside the year bounds")
	}
	if cfg.Upload.MaxBytes <= 0 {
		return nil, errors.ConfigInvalid("UPLOAD_MAX_BYTES must be positive")
	}
	return cfg, nil
}

// ClampYear forces a requested year inside the configured bounds
func (c ReportConfig) ClampYear(year int) int {
	if year < c.MinYear {
		return c.MinYear
	}
	if year > c.MaxYear {
		return c.MaxYear
	}
	return year
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
