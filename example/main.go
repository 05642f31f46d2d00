package main

import (
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/intlfmt"
	"github.com/dmitrymomot/intlfmt/middlewares"
	"github.com/dmitrymomot/intlfmt/pkg/i18n"
	"github.com/dmitrymomot/intlfmt/pkg/logger"
	"github.com/dmitrymomot/intlfmt/pkg/markup"
)

//go:embed locales page.html
var assets embed.FS

type serverConfig struct {
	Address string `env:"ADDRESS" envDefault:":8080"`
	Sentry  logger.SentryConfig
}

func main() {
	var cfg serverConfig
	if err := env.Parse(&cfg); err != nil {
		logger.New().Error("parse server config", "error", err)
		os.Exit(1)
	}
	log := logger.NewWithSentry(cfg.Sentry, logger.LocaleExtractor)

	intlCfg, err := intlfmt.LoadConfig()
	if err != nil {
		log.Error("parse intl config", "error", err)
		os.Exit(1)
	}

	locales, err := fs.Sub(assets, "locales")
	if err != nil {
		log.Error("open locales", "error", err)
		os.Exit(1)
	}
	catalogs, err := i18n.LoadCatalogs(locales)
	if err != nil {
		log.Error("load catalogs", "error", err)
		os.Exit(1)
	}

	opts := append(intlCfg.Options(),
		intlfmt.WithLogger(log),
		intlfmt.WithDefaultMessages(catalogs[intlCfg.DefaultLocale]),
		intlfmt.WithFormats(intlfmt.Formats{
			intlfmt.KindNumber: {
				"usd": {"style": "currency", "currency": "USD"},
				"eur": {"style": "currency", "currency": "EUR"},
			},
		}),
	)
	base, err := intlfmt.New(intlCfg.DefaultLocale, opts...)
	if err != nil {
		log.Error("create formatter", "error", err)
		os.Exit(1)
	}

	// Parse against the base formatter's methods; each request rebinds them.
	baseHTML, err := markup.New(base)
	if err != nil {
		log.Error("create html formatter", "error", err)
		os.Exit(1)
	}
	baseFuncs, err := baseHTML.Extend(markup.DefaultAliases)
	if err != nil {
		log.Error("extend formatter", "error", err)
		os.Exit(1)
	}
	page, err := template.New("page.html").
		Funcs(baseFuncs.FuncMap()).
		Funcs(template.FuncMap{"plain": markup.PlainText}).
		ParseFS(assets, "page.html")
	if err != nil {
		log.Error("parse page", "error", err)
		os.Exit(1)
	}

	r := chi.NewRouter()
	r.Use(middlewares.Intl(base,
		middlewares.WithIntlCatalogs(catalogs),
		middlewares.WithIntlLogger(log),
	))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		h, err := markup.New(middlewares.FromContext(r.Context()))
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		funcs, err := h.Extend(markup.DefaultAliases)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		data := map[string]any{
			"Locale": h.Locale(),
			"Placed": h.Now().Add(-26 * time.Hour),
			"Values": intlfmt.M{"name": r.URL.Query().Get("name"), "count": 3, "amount": 42.5},
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := template.Must(page.Clone()).Funcs(funcs.FuncMap()).Execute(w, data); err != nil {
			log.ErrorContext(r.Context(), "render page", "error", err)
		}
	})

	log.Info("listening", "address", cfg.Address)
	if err := http.ListenAndServe(cfg.Address, r); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
