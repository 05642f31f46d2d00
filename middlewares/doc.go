// Package middlewares provides HTTP middleware for intlfmt formatters.
//
// # Intl
//
// Intl negotiates the locale of each request and stores a formatter for it
// in the request context. Handlers read it back with FromContext:
//
//	base, _ := intlfmt.New("en", intlfmt.WithLogger(log))
//
//	r := chi.NewRouter()
//	r.Use(middlewares.Intl(base, middlewares.WithIntlLogger(log)))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    f := middlewares.FromContext(r.Context())
//	    io.WriteString(w, f.Number(1234.5))
//	})
//
// The default extractor chain checks the "lang" query parameter, the "lang"
// cookie and the Accept-Language header. Locales in the URL path are read
// with a custom chain:
//
//	middlewares.Intl(base, middlewares.WithIntlExtractor(
//	    intlfmt.NewExtractor(intlfmt.FromParam("lang"), intlfmt.FromCookie("lang")),
//	))
//
// Each request formatter is derived from base with ChangeLocale. It shares
// base's engine cache and its clock is frozen when the request starts, so
// relative times are consistent within one render.
package middlewares
