package observability

import (
	"io"
	"log/slog"
	"os"
)

// NoOpLogger discards everything. Tests inject it so services can log freely
// without polluting output.
var NoOpLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// NewLogger builds the process logger. Production environments log JSON at
// info; anything else logs text at debug for local work.
func NewLogger(environment string) *slog.Logger {
	if environment == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
