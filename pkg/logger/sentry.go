package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig configures Sentry reporting of formatter diagnostics.
type SentryConfig struct {
	DSN         string `env:"SENTRY_DSN"`
	Environment string `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	Release     string `env:"SENTRY_RELEASE"`
	// MinLevel is the lowest level shipped as a Sentry log. Errors always
	// become Sentry events.
	MinLevel slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"WARN"`
}

// sentryLevels lists the levels at or above min that Sentry knows.
func sentryLevels(min slog.Level) []slog.Level {
	var out []slog.Level
	for _, l := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l >= min {
			out = append(out, l)
		}
	}
	return out
}

func newSentryHandler(cfg SentryConfig) (slog.Handler, error) {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		EnableLogs:  true,
	}); err != nil {
		return nil, err
	}
	return sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   sentryLevels(cfg.MinLevel),
	}.NewSentryHandler(context.Background()), nil
}

// NewWithSentry creates a logger writing to stderr and, when cfg.DSN is set,
// to Sentry. Extractors apply to both outputs. A failed Sentry init is logged
// and the logger falls back to stderr only.
func NewWithSentry(cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	base := newBaseHandler(os.Stderr)
	if cfg.DSN == "" {
		return slog.New(WithExtractors(base, extractors...))
	}

	sh, err := newSentryHandler(cfg)
	if err != nil {
		slog.New(base).Error("logger: sentry init", slog.Any("error", err))
		return slog.New(WithExtractors(base, extractors...))
	}
	return slog.New(WithExtractors(fanout{base, sh}, extractors...))
}
