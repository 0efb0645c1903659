package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/0xalexb/greina/diag"
)

// FormatJSON and FormatText select the log output encoding.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config holds configuration for the logger.
type Config struct {
	// Level is one of "debug", "info", "warn", "error"; defaults to info.
	Level string
	// Format is "json" or "text"; defaults to JSON.
	Format string
}

// New creates a slog.Logger with the configured handler and output. Invalid
// or empty level and format fall back to info and JSON.
func New(config Config, w io.Writer) *slog.Logger {
	options := &slog.HandlerOptions{
		AddSource:   false,
		Level:       parseLevel(config.Level),
		ReplaceAttr: nil,
	}

	if strings.EqualFold(config.Format, FormatText) {
		return slog.New(slog.NewTextHandler(w, options))
	}

	return slog.New(slog.NewJSONHandler(w, options))
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Emit logs one diagnostic through the logger, mapping Error severity to the
// error level and everything else to warn. The source name, category, and
// line (when known) become attributes.
func Emit(logger *slog.Logger, source string, d diag.Diagnostic) {
	attrs := []any{
		slog.String("source", source),
		slog.String("category", string(d.Category)),
	}

	if d.Line > 0 {
		attrs = append(attrs, slog.Int("line", d.Line))
	}

	if d.Severity == diag.SeverityError {
		logger.Error(d.Message, attrs...)

		return
	}

	logger.Warn(d.Message, attrs...)
}
