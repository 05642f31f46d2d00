// Package internal provides the core types and implementation for intlfmt.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/intlfmt" instead, which re-exports the public API.
//
// # Core Types
//
//   - Formatter: immutable facade holding a resolved Config, a Factories
//     cache and a clock; exposes one method per format kind
//   - Config: the resolved configuration (locale, catalogs, presets, hooks)
//   - Factories: memoized constructors for the locale-sensitive engines,
//     shared by formatters derived through ChangeLocale
//   - Option: functional option applied at construction or derivation
//   - Extractor: ordered chain of request sources used to pick a locale
//
// # Resolution
//
// A requested locale is checked against the locale data registry using
// dash truncation ("en-US" falls back to "en"). When no data exists the
// formatter uses the default locale, the default presets and a shared empty
// catalog, and reports the fallback through the error hook outside
// production mode.
//
// # Derivation
//
// ChangeLocale builds a new Formatter from the current settings. Each field
// follows a merge strategy: most fields are replaced when overridden, preset
// tables merge by preset name and default messages merge by id.
package internal
