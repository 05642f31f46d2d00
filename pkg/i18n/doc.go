// Package i18n provides the locale-sensitive engines behind intlfmt: date and
// time, number, relative time, plural category and ICU message formatting,
// plus the locale data registry they read from.
//
// Engines are immutable once built and safe for concurrent use. Building one
// validates its options, so a constructor error is the place where bad input
// (unknown style, out-of-range digits, unknown time zone, syntax errors in a
// message) surfaces.
//
// # Engines
//
//	reg := i18n.DefaultRegistry()
//
//	nf, _ := i18n.NewNumberFormat(reg, "de", i18n.Options{"style": "currency", "currency": "EUR"})
//	nf.Format(1234.5) // "1.234,50 €"
//
//	df, _ := i18n.NewDateTimeFormat(reg, "en", i18n.Options{"month": "long", "day": "numeric", "year": "numeric"})
//	df.Format(t) // "January 2, 2006"
//
//	rf, _ := i18n.NewRelativeFormat(reg, "en", nil)
//	rf.Format(t.Add(-24*time.Hour), t) // "yesterday"
//
//	pf, _ := i18n.NewPluralFormat("en", i18n.Options{"style": "ordinal"})
//	pf.Format(2) // "two"
//
// # Messages
//
// MessageFormat compiles the ICU subset used by catalogs: simple arguments,
// number/date/time arguments with styles, plural, selectordinal and select
// with # and offsets, apostrophe quoting and <tag> nodes:
//
//	mf, _ := i18n.NewMessageFormat(reg, "{n, plural, one {# photo} other {# photos}}", "en", nil,
//		i18n.MessageOptions{RequireOther: true})
//	out, _ := mf.Format(i18n.M{"n": 1000}, nil) // "1,000 photos"
//
// The output is assembled by a Builder. StringBuilder yields a string;
// ArrayBuilder yields a []any that keeps non-string values intact.
//
// # Locale Data
//
// A Registry maps lowercase locale tags to LocaleData (calendar names and
// patterns, currency placement, relative-time strings). Lookups walk the
// dash-truncation chain, so "en-US" is served by "en". DefaultRegistry is
// preloaded with de, en, es and fr; more datasets can be read with
// LoadLocaleData and added with AddLocaleData. Plural rules and digit
// formatting come from golang.org/x/text and cover every CLDR locale.
//
// # Catalogs
//
// LoadCatalogs reads {lang}/{namespace}.{json,yaml,yml,po} files into
// per-locale message maps. ParseAcceptLanguage negotiates a request locale
// against the available ones.
//
// # Relative Thresholds
//
// Unit selection for relative time uses process-wide thresholds.
// WithRelativeThresholds installs a set for the duration of a call and
// restores the previous set afterwards.
package i18n
