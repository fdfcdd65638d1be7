package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/richhaase/context-monkey/internal/errors"
)

// Format specifies the output format for log messages.
type Format string

const (
	// FormatText produces the colorized terminal format of [Handler].
	FormatText Format = "text"
	// FormatJSON produces one JSON object per record.
	FormatJSON Format = "json"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown log format")

// ParseFormat maps a --log-format value to a Format. The empty string is text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q (valid: text, json)", s)
	}
}

// Config holds the configuration for creating a new logger.
type Config struct {
	// Level sets the minimum log level for every sink.
	Level slog.Level
	// Format applies to Output only.
	Format Format
	// Output defaults to os.Stderr.
	Output io.Writer
	// File, when set, receives a JSON copy of every record.
	File io.Writer
}

// New creates a logger with the given configuration. Unknown formats fall
// back to text.
func New(cfg Config) *slog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}

	var primary slog.Handler
	switch cfg.Format {
	case FormatJSON:
		primary = slog.NewJSONHandler(output, opts)
	default:
		primary = NewHandler(output, opts)
	}

	if cfg.File == nil {
		return slog.New(primary)
	}
	return slog.New(NewMultiHandler(primary, slog.NewJSONHandler(cfg.File, opts)))
}

// NewDiscard creates a logger that discards all output.
func NewDiscard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type testWriter struct {
	t *testing.T
}

func (w *testWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

// ForTest creates a Debug level logger that writes through t.Log, so output
// only shows for failing tests or with -v.
func ForTest(t *testing.T) *slog.Logger {
	t.Helper()
	return New(Config{
		Level:  slog.LevelDebug,
		Format: FormatText,
		Output: &testWriter{t: t},
	})
}
