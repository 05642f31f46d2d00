package logger

import "log/slog"

var nope = slog.New(slog.DiscardHandler)

// NewNope returns a logger that discards every record. ErrorHandler uses it
// when given a nil logger.
func NewNope() *slog.Logger {
	return nope
}
