package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init initializes the logging system, writing logs to
// <user config dir>/quado/logs/quado.log. Uses text format for human
// readability. Everything goes to the file because stdout belongs to the
// terminal UI.
func Init() error {
	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return err
	}

	logDir := filepath.Join(cfgDir, "quado", "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return err
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, "quado.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// Redirect standard log package output to the same file so nothing
	// prints over the TUI
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return nil
}
