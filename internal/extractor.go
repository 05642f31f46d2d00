package internal

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"
)

// ExtractorSource reads a raw locale hint from the request.
type ExtractorSource = func(*http.Request) (string, bool)

// Extractor negotiates a request locale from an ordered list of sources.
type Extractor struct {
	sources []ExtractorSource
}

// NewExtractor creates an Extractor that asks sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract returns the first hint that parses as a BCP 47 tag, in canonical
// form ("pt_br" becomes "pt-BR"). Malformed hints are skipped, so a bad
// cookie never hides a later source.
func (e Extractor) Extract(r *http.Request) (string, bool) {
	for _, src := range e.sources {
		v, ok := src(r)
		if !ok {
			continue
		}
		if tag, ok := canonicalTag(v); ok {
			return tag, true
		}
	}
	return "", false
}

func canonicalTag(v string) (string, bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", false
	}
	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil || tag == language.Und {
		return "", false
	}
	return tag.String(), true
}

// FromHeader reads a header holding a single tag, e.g. "X-Locale".
// Use FromAcceptLanguage in middlewares for weighted lists.
func FromHeader(name string) ExtractorSource {
	return func(r *http.Request) (string, bool) {
		v := r.Header.Get(name)
		return v, v != ""
	}
}

// FromQuery reads a query parameter such as ?lang=de.
func FromQuery(name string) ExtractorSource {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		return v, v != ""
	}
}

// FromCookie reads a cookie holding the user's chosen locale.
func FromCookie(name string) ExtractorSource {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil {
			return "", false
		}
		return c.Value, c.Value != ""
	}
}

// FromParam reads a chi URL parameter, e.g. {lang} in "/{lang}/docs".
func FromParam(name string) ExtractorSource {
	return func(r *http.Request) (string, bool) {
		v := chi.URLParam(r, name)
		return v, v != ""
	}
}
