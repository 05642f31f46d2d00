package middlewares

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/intlfmt"
	"github.com/dmitrymomot/intlfmt/internal"
	"github.com/dmitrymomot/intlfmt/pkg/i18n"
	"github.com/dmitrymomot/intlfmt/pkg/logger"
)

type formatterKey struct{}

// IntlConfig configures the Intl middleware.
type IntlConfig struct {
	Extractor    internal.Extractor
	Logger       *slog.Logger
	Options      []intlfmt.Option
	Catalogs     i18n.Catalogs
	Clock        func() time.Time
	extractorSet bool
}

// IntlOption configures IntlConfig.
type IntlOption func(*IntlConfig)

// WithIntlExtractor sets a custom locale extractor chain.
func WithIntlExtractor(ext internal.Extractor) IntlOption {
	return func(cfg *IntlConfig) {
		cfg.Extractor = ext
		cfg.extractorSet = true
	}
}

// WithIntlLogger reports diagnostics of request formatters to l, with the
// request context attached.
func WithIntlLogger(l *slog.Logger) IntlOption {
	return func(cfg *IntlConfig) {
		cfg.Logger = l
	}
}

// WithIntlOptions adds options applied to every request formatter.
func WithIntlOptions(opts ...intlfmt.Option) IntlOption {
	return func(cfg *IntlConfig) {
		cfg.Options = append(cfg.Options, opts...)
	}
}

// WithIntlCatalogs sets per-locale message catalogs. The catalog of the
// negotiated locale, or of its dash-truncated parent, becomes the messages
// of the request formatter.
func WithIntlCatalogs(catalogs i18n.Catalogs) IntlOption {
	return func(cfg *IntlConfig) {
		cfg.Catalogs = catalogs
	}
}

// WithIntlClock sets the clock read once per request to freeze the request
// formatter's now. Defaults to time.Now.
func WithIntlClock(fn func() time.Time) IntlOption {
	return func(cfg *IntlConfig) {
		if fn != nil {
			cfg.Clock = fn
		}
	}
}

// FromAcceptLanguage returns an ExtractorSource that parses the Accept-Language
// header and matches against the available locales.
func FromAcceptLanguage(available []string) internal.ExtractorSource {
	return func(r *http.Request) (string, bool) {
		header := r.Header.Get("Accept-Language")
		if header == "" || len(available) == 0 {
			return "", false
		}
		return i18n.ParseAcceptLanguage(header, available), true
	}
}

// Intl returns middleware that negotiates the request locale and stores a
// formatter for it in the request context.
//
// The default extractor chain is query "lang", cookie "lang", then the
// Accept-Language header matched against the locales of base's registry.
// Request formatters are derived with ChangeLocale, so they share base's
// engine cache, and their clock is frozen at the start of the request.
func Intl(base *intlfmt.Formatter, opts ...IntlOption) func(http.Handler) http.Handler {
	cfg := &IntlConfig{Clock: time.Now}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.extractorSet {
		cfg.Extractor = internal.NewExtractor(
			internal.FromQuery("lang"),
			internal.FromCookie("lang"),
			FromAcceptLanguage(availableLocales(base)),
		)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang, ok := cfg.Extractor.Extract(r)
			if !ok {
				lang = base.Locale()
			}

			ctx := r.Context()
			fopts := make([]intlfmt.Option, 0, len(cfg.Options)+3)
			if messages, ok := cfg.catalog(lang); ok {
				fopts = append(fopts, intlfmt.WithMessages(messages))
			}
			fopts = append(fopts, cfg.Options...)
			fopts = append(fopts, intlfmt.WithInitialNow(cfg.Clock()))
			if cfg.Logger != nil {
				fopts = append(fopts, intlfmt.WithErrorHandler(logger.ErrorHandlerContext(ctx, cfg.Logger)))
			}

			f, err := base.ChangeLocale(lang, fopts...)
			if err != nil {
				if cfg.Logger != nil {
					cfg.Logger.ErrorContext(ctx, "intl: derive request formatter", slog.String("locale", lang), slog.Any("error", err))
				}
				f = base
			}

			ctx = logger.WithLocale(ctx, f.Locale())
			ctx = WithFormatter(ctx, f)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithFormatter stores f in ctx.
func WithFormatter(ctx context.Context, f *intlfmt.Formatter) context.Context {
	return context.WithValue(ctx, formatterKey{}, f)
}

// FromContext returns the formatter stored by Intl or WithFormatter.
// Returns nil if there is none.
func FromContext(ctx context.Context) *intlfmt.Formatter {
	if f, ok := ctx.Value(formatterKey{}).(*intlfmt.Formatter); ok {
		return f
	}
	return nil
}

func (cfg *IntlConfig) catalog(locale string) (map[string]string, bool) {
	for locale != "" {
		if m, ok := cfg.Catalogs[locale]; ok {
			return m, true
		}
		i := strings.LastIndex(locale, "-")
		if i < 0 {
			break
		}
		locale = locale[:i]
	}
	return nil, false
}

// availableLocales lists the registry locales with base's default locale
// first, so unmatched Accept-Language headers negotiate to it.
func availableLocales(base *intlfmt.Formatter) []string {
	cfg := base.Config()
	out := []string{cfg.DefaultLocale}
	for _, l := range cfg.Registry.Locales() {
		if l != cfg.DefaultLocale {
			out = append(out, l)
		}
	}
	return out
}
