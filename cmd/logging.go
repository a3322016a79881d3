package cmd

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// SetupLogging configures slog with charmbracelet/log for colorful output.
// Unknown level strings fall back to info.
func SetupLogging(levelStr string) {
	level, err := log.ParseLevel(levelStr)
	if err != nil {
		level = log.InfoLevel
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})

	slog.SetDefault(slog.New(logger))
}
