package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

// New creates a logger writing to stderr with optional context extractors.
// On a terminal it uses the human-readable text handler; otherwise JSON.
func New(extractors ...ContextExtractor) *slog.Logger {
	return slog.New(WithExtractors(newBaseHandler(os.Stderr), extractors...))
}

// NewWithWriter creates a JSON logger writing to w.
func NewWithWriter(w io.Writer, extractors ...ContextExtractor) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return slog.New(WithExtractors(h, extractors...))
}

func newBaseHandler(f *os.File) slog.Handler {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return slog.NewTextHandler(f, opts)
	}
	return slog.NewJSONHandler(f, opts)
}
