package config

import (
	"log/slog"
	"os"
)

// slogLevel maps the validated level string onto slog's levels. Unknown
// values never reach here; Validate rejects them at load time.
func (c *LoggerConfig) slogLevel() slog.Level {
	switch c.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process-wide JSON logger on stderr. Debug level also
// records source positions.
func (c *LoggerConfig) NewLogger() *slog.Logger {
	level := c.slogLevel()

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}))
}
