package i18n

import (
	"golang.org/x/text/language"
)

// maxAcceptLanguageLength prevents DoS attacks through oversized Accept-Language headers.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage parses the Accept-Language header and returns the best
// match among the available locales, using CLDR matching (so "en-GB" is
// served by "en" and "zh-Hant" is not served by "zh-Hans"). If nothing
// matches or the header is malformed, it returns the first available locale.
//
// Example header: "en-US,en;q=0.9,pl;q=0.8"
// Available: ["pl", "en", "de"]
// Returns: "en"
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if header == "" {
		return available[0]
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return available[0]
	}

	supported := make([]language.Tag, 0, len(available))
	index := make([]int, 0, len(available))
	for i, a := range available {
		t, err := language.Parse(a)
		if err != nil {
			continue
		}
		supported = append(supported, t)
		index = append(index, i)
	}
	if len(supported) == 0 {
		return available[0]
	}

	_, idx, conf := language.NewMatcher(supported).Match(tags...)
	if conf == language.No {
		return available[0]
	}
	return available[index[idx]]
}
