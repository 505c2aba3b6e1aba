package telemetry

import (
	"log/slog"
	"os"
)

// InitSlog installs the default text handler used by all binaries in
// this repo. debug toggles slog.LevelDebug, everything goes to stderr
// so table output on stdout stays machine-readable.
func InitSlog(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
