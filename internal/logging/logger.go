package logging

import (
	"log/slog"
	"os"
)

// Setup installs the global JSON logger. Development gets debug-level
// output, everything else info and above.
func Setup(env string) {
	level := slog.LevelInfo
	if env == "development" {
		level = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
