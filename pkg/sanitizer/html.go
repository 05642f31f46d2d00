package sanitizer

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strictPolicy *bluemonday.Policy
	markupPolicy *bluemonday.Policy
	initOnce     sync.Once
)

// htmlEscaper maps exactly the five characters that are unsafe inside HTML
// text and attribute values.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// markupElements are the inline elements a formatted message may render.
var markupElements = []string{
	"span", "time", "data", "abbr",
	"strong", "b", "em", "i", "u", "s", "small", "mark", "sub", "sup",
	"code", "kbd", "br", "p", "a",
}

func initPolicies() {
	initOnce.Do(func() {
		// StrictPolicy strips ALL HTML, returns plain text
		strictPolicy = bluemonday.StrictPolicy()

		// markupPolicy keeps inline formatting produced by message tags and
		// element wrappers.
		markupPolicy = bluemonday.NewPolicy()
		markupPolicy.AllowStandardURLs()
		markupPolicy.AllowElements(markupElements...)
		markupPolicy.AllowAttrs("href").OnElements("a")
		markupPolicy.AllowAttrs("datetime").OnElements("time")
		markupPolicy.AllowAttrs("value").OnElements("data")
		markupPolicy.AllowAttrs("title").OnElements("abbr")
		markupPolicy.AllowAttrs("class", "lang").Globally()
		markupPolicy.RequireNoFollowOnLinks(true)
	})
}

// EscapeHTML replaces & < > " ' with &amp; &lt; &gt; &quot; &#x27;.
// No other characters are touched.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// StripHTML removes all markup and returns plain text.
func StripHTML(s string) string {
	initPolicies()
	return strictPolicy.Sanitize(s)
}

// SanitizeMarkup keeps inline formatting elements (span, strong, em, a, time
// and similar) and strips everything else, including scripts, event handlers
// and javascript: URLs.
func SanitizeMarkup(s string) string {
	initPolicies()
	return markupPolicy.Sanitize(s)
}

// MarkupPolicy returns a new policy with the markup allow-list
// plus extra elements. Use it with SanitizeHTMLCustom when a renderer emits
// tags beyond the default inline set.
func MarkupPolicy(extraElements ...string) *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowStandardURLs()
	p.AllowElements(markupElements...)
	if len(extraElements) > 0 {
		p.AllowElements(extraElements...)
	}
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("class", "lang").Globally()
	p.RequireNoFollowOnLinks(true)
	return p
}

// SanitizeHTMLCustom applies a custom bluemonday policy.
// Returns input unchanged if policy is nil.
func SanitizeHTMLCustom(s string, policy *bluemonday.Policy) string {
	if policy == nil {
		return s
	}
	return policy.Sanitize(s)
}
