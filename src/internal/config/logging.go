// FILE: srunauth/src/internal/config/logging.go
package config

import "fmt"

// LogConfig represents logging configuration for srunauth
type LogConfig struct {
	// Output mode: "file", "stdout", "stderr", "both", "none"
	Output string `toml:"output"`

	// Log level: "debug", "info", "warn", "error"
	Level string `toml:"level"`

	// Directory for log files
	Directory string `toml:"directory"`

	// Base name for log files
	Name string `toml:"name"`

	// Maximum size per log file in MB
	MaxSizeMB int64 `toml:"max_size_mb"`
}

// DefaultLogConfig returns sensible logging defaults
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Output:    "stderr",
		Level:     "info",
		Directory: "./log",
		Name:      "srunauth",
		MaxSizeMB: 10,
	}
}

func validateLogConfig(cfg *LogConfig) error {
	if cfg == nil {
		return fmt.Errorf("logging config is nil")
	}

	validOutputs := map[string]bool{
		"file": true, "stdout": true, "stderr": true,
		"both": true, "none": true,
	}
	if !validOutputs[cfg.Output] {
		return fmt.Errorf("invalid log output mode: %s", cfg.Output)
	}

	validLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[cfg.Level] {
		return fmt.Errorf("invalid log level: %s", cfg.Level)
	}

	if cfg.Output == "file" || cfg.Output == "both" {
		if cfg.Directory == "" || cfg.Name == "" {
			return fmt.Errorf("file logging requires directory and name")
		}
		if cfg.MaxSizeMB < 0 {
			return fmt.Errorf("max_size_mb cannot be negative: %d", cfg.MaxSizeMB)
		}
	}

	return nil
}
