// Package intlfmt formats dates, times, numbers, relative times, plural
// categories and ICU messages for a locale.
//
// A Formatter is created once per locale and is immutable afterwards. It
// resolves the requested locale against the locale data registry, falls
// back to the default locale when no data exists, and caches the
// locale-sensitive engines it builds.
//
// # Quick Start
//
//	f, err := intlfmt.New("en-US",
//	    intlfmt.WithMessages(map[string]string{
//	        "cart.items": "{count, plural, one {# item} other {# items}}",
//	    }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	f.Date(time.Now())                                   // "3/15/2024"
//	f.Number(0.25, intlfmt.Options{"style": "percent"}) // "25%"
//	f.Relative(time.Now().Add(-time.Hour))               // "1 hour ago"
//	f.T("cart.items", intlfmt.M{"count": 3})             // "3 items"
//
// # Presets
//
// Named presets are referenced with the "format" option. Per-call options
// win over preset values:
//
//	f, _ := intlfmt.New("en", intlfmt.WithFormats(intlfmt.Formats{
//	    intlfmt.KindNumber: {"usd": {"style": "currency", "currency": "USD"}},
//	}))
//	f.Number(9.5, intlfmt.Options{"format": "usd"}) // "$9.50"
//
// # Messages
//
// Message looks up the id in the catalog, then in the default catalog, then
// uses the descriptor's default message and finally the id itself. Failures
// never panic; they are reported to the error hook (see WithErrorHandler and
// WithLogger) outside production mode and replaced by a fallback string.
//
// # Deriving formatters
//
// ChangeLocale returns a new Formatter for another locale. It inherits the
// configuration, merges presets by name and shares the engine cache, so a
// per-request formatter is cheap:
//
//	de, err := f.ChangeLocale("de")
//
// The middlewares package does this per HTTP request and stores the result
// in the request context.
//
// # Locale data
//
// Datasets for en, de, es and fr are built in. More can be loaded with
// i18n.LoadLocaleData and registered with AddLocaleData, or kept in a
// private registry passed through WithRegistry.
package intlfmt
