package logger

import (
	"context"
	"log/slog"
)

// ErrorHandler adapts a logger to the formatter's diagnostic hook.
// Each diagnostic is logged at error level with the cause attached.
// A nil logger yields a handler that discards everything.
func ErrorHandler(l *slog.Logger) func(msg string, err error) {
	return ErrorHandlerContext(context.Background(), l)
}

type localeKey struct{}

// WithLocale stores the negotiated locale in ctx for LocaleExtractor.
func WithLocale(ctx context.Context, locale string) context.Context {
	return context.WithValue(ctx, localeKey{}, locale)
}

// LocaleExtractor adds the request locale stored by WithLocale to log records.
func LocaleExtractor(ctx context.Context) (slog.Attr, bool) {
	if v, ok := ctx.Value(localeKey{}).(string); ok && v != "" {
		return slog.String("locale", v), true
	}
	return slog.Attr{}, false
}

// ErrorHandlerContext is ErrorHandler bound to a request context, so context
// extractors such as LocaleExtractor annotate each diagnostic.
func ErrorHandlerContext(ctx context.Context, l *slog.Logger) func(msg string, err error) {
	if l == nil {
		l = NewNope()
	}
	l = l.With(slog.String("sys", "intlfmt"))
	return func(msg string, err error) {
		if err != nil {
			l.ErrorContext(ctx, msg, slog.Any("error", err))
			return
		}
		l.ErrorContext(ctx, msg)
	}
}
