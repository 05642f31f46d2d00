package i18n_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intlfmt/pkg/i18n"
)

func TestParseAcceptLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		header    string
		available []string
		expected  string
	}{
		{
			name:      "empty header returns first available",
			header:    "",
			available: []string{"en", "pl", "de"},
			expected:  "en",
		},
		{
			name:      "empty available returns empty",
			header:    "en-US,en;q=0.9",
			available: []string{},
			expected:  "",
		},
		{
			name:      "exact match",
			header:    "pl",
			available: []string{"en", "pl", "de"},
			expected:  "pl",
		},
		{
			name:      "highest quality wins",
			header:    "de;q=0.5,fr;q=0.9",
			available: []string{"en", "de", "fr"},
			expected:  "fr",
		},
		{
			name:      "regional request served by base language",
			header:    "fr-CA",
			available: []string{"en", "fr"},
			expected:  "fr",
		},
		{
			name:      "no match returns first available",
			header:    "ja",
			available: []string{"en", "de"},
			expected:  "en",
		},
		{
			name:      "malformed header returns first available",
			header:    ";;;q=abc",
			available: []string{"es", "en"},
			expected:  "es",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, i18n.ParseAcceptLanguage(tt.header, tt.available))
		})
	}

	t.Run("oversized header is truncated", func(t *testing.T) {
		t.Parallel()
		header := "de," + strings.Repeat("x", 10000)
		require.NotPanics(t, func() {
			_ = i18n.ParseAcceptLanguage(header, []string{"en", "de"})
		})
	})
}
