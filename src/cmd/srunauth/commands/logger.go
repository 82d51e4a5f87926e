// FILE: srunauth/src/cmd/srunauth/commands/logger.go
package commands

import (
	"fmt"
	"os"
	"strings"

	"srunauth/src/internal/config"

	"github.com/lixenwraith/log"
)

// initializeLogger sets up the logger based on the logging config section
func initializeLogger(cfg *config.LogConfig, quiet, debug bool) (*log.Logger, error) {
	if cfg == nil {
		cfg = config.DefaultLogConfig()
	}

	level, err := parseLogLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if debug {
		level = int64(log.LevelDebug)
	}

	logCfg := log.DefaultConfig()
	logCfg.Level = level
	logCfg.Directory = cfg.Directory
	logCfg.Name = cfg.Name
	if cfg.MaxSizeMB > 0 {
		logCfg.MaxSizeKB = cfg.MaxSizeMB * 1000
	}

	output := cfg.Output
	if quiet {
		// In quiet mode only file logging survives
		switch output {
		case "both":
			output = "file"
		case "stdout", "stderr":
			output = "none"
		}
	}

	switch output {
	case "none":
		logCfg.EnableConsole = false
		logCfg.DisableFile = true
	case "stdout", "stderr":
		logCfg.EnableConsole = true
		logCfg.ConsoleTarget = output
		logCfg.DisableFile = true
	case "file":
		logCfg.EnableConsole = false
		logCfg.DisableFile = false
	case "both":
		logCfg.EnableConsole = true
		logCfg.ConsoleTarget = "stderr"
		logCfg.DisableFile = false
	default:
		return nil, fmt.Errorf("invalid log output mode: %s", cfg.Output)
	}

	// The writer creates its directory even with file output off
	if logCfg.DisableFile {
		logCfg.Directory = os.TempDir()
	}

	logger := log.NewLogger()
	if err := logger.ApplyConfig(logCfg); err != nil {
		return nil, fmt.Errorf("failed to configure logger: %w", err)
	}
	if err := logger.Start(); err != nil {
		return nil, fmt.Errorf("failed to start logger: %w", err)
	}
	return logger, nil
}

func parseLogLevel(level string) (int64, error) {
	switch strings.ToLower(level) {
	case "debug":
		return int64(log.LevelDebug), nil
	case "info":
		return int64(log.LevelInfo), nil
	case "warn", "warning":
		return int64(log.LevelWarn), nil
	case "error":
		return int64(log.LevelError), nil
	default:
		return 0, fmt.Errorf("unknown log level: %s", level)
	}
}
