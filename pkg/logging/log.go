package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/phsym/console-slog"
)

// Preinit installs a debug console logger so that anything logged before the
// configuration is loaded still reaches stderr.
func Preinit() {
	slog.SetDefault(New(os.Stderr, slog.LevelDebug))
}

func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(console.NewHandler(w, &console.HandlerOptions{
		AddSource: level == slog.LevelDebug,
		Level:     level,
	}))
}

// Init replaces the default logger with one at the configured level.
func Init(level slog.Level) *slog.Logger {
	logger := New(os.Stderr, level)
	slog.SetDefault(logger)
	return logger
}
