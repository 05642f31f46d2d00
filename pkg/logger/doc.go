// Package logger provides the structured logging used for formatter
// diagnostics.
//
// It wraps log/slog with context-based attribute injection, a terminal-aware
// handler choice and optional Sentry reporting.
//
// # Basic Usage
//
//	log := logger.New(logger.LocaleExtractor)
//	f, err := intlfmt.New("en", intlfmt.WithLogger(log))
//
// New writes text records on a terminal and JSON records otherwise, both to
// stderr.
//
// # Diagnostics Hook
//
// ErrorHandler turns a *slog.Logger into the func(msg string, err error)
// hook the formatter calls for missing messages, unknown presets and
// formatting failures:
//
//	onError := logger.ErrorHandler(log)
//	onError("Missing message: \"greeting\" for locale: \"de\"", nil)
//	// level=ERROR msg="Missing message: ..." sys=intlfmt
//
// # Sentry Integration
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:      os.Getenv("SENTRY_DSN"),
//		MinLevel: slog.LevelError,
//	})
//
// If DSN is empty the logger falls back to stderr only.
//
// # Context Extractors
//
// A ContextExtractor is called on every log call. LocaleExtractor reports
// the locale stored by WithLocale, which the HTTP middleware sets for each
// request.
package logger
