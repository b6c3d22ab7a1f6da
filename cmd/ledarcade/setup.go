package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
)

// loadConfig loads the config file and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	return cfg, cfg.Validate()
}

// runtimeConfig extracts the pipeline timing from cfg.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	return core.RuntimeConfig{TickRate: cfg.TickRate}
}

// newLogger creates the process logger writing to w.
func newLogger(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		Prefix:          "ledarcade",
	}), nil
}

// openLogFile opens ~/.ledarcade/ledarcade.log for appending. While the
// emulator owns the terminal, logs cannot go to stderr.
func openLogFile() (*os.File, error) {
	path := config.UserPath("ledarcade.log")
	if path == "" {
		return nil, fmt.Errorf("no home directory for the log file")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
