package logger

import (
	"log/slog"
	"os"
)

// Log defaults to the process-wide slog logger until Init swaps in the
// JSON handler, so packages can log safely even before main runs Init.
var Log = slog.Default()

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
