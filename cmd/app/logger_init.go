package main

import (
	"log/slog"
	"os"

	"github.com/osse101/MindQuest_Go/internal/bootstrap"
	"github.com/osse101/MindQuest_Go/internal/config"
)

// initLogger installs the application logger and reports configuration problems through it
func initLogger(cfg *config.Config) (*os.File, error) {
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return nil, err
	}

	if err := config.ValidateEnv(); err != nil {
		slog.Warn("Environment validation failed", "error", err)
	}
	for _, w := range cfg.Warnings() {
		slog.Warn("Configuration warning", "warning", w)
	}
	return logFile, nil
}
