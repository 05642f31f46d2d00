package i18n_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intlfmt/pkg/i18n"
)

func TestPluralFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		locale   string
		style    string
		value    float64
		expected string
	}{
		{name: "en one", locale: "en", value: 1, expected: i18n.PluralOne},
		{name: "en other zero", locale: "en", value: 0, expected: i18n.PluralOther},
		{name: "en other many", locale: "en", value: 5, expected: i18n.PluralOther},
		{name: "en fraction is other", locale: "en", value: 1.5, expected: i18n.PluralOther},
		{name: "en negative one", locale: "en", value: -1, expected: i18n.PluralOne},
		{name: "fr zero is one", locale: "fr", value: 0, expected: i18n.PluralOne},
		{name: "fr one point five is one", locale: "fr", value: 1.5, expected: i18n.PluralOne},
		{name: "pl few", locale: "pl", value: 3, expected: i18n.PluralFew},
		{name: "pl many", locale: "pl", value: 5, expected: i18n.PluralMany},
		{name: "ar two", locale: "ar", value: 2, expected: i18n.PluralTwo},
		{name: "ja other", locale: "ja", value: 1, expected: i18n.PluralOther},
		{name: "regional locale", locale: "en-US", value: 1, expected: i18n.PluralOne},
		{name: "en ordinal one", locale: "en", style: "ordinal", value: 21, expected: i18n.PluralOne},
		{name: "en ordinal two", locale: "en", style: "ordinal", value: 2, expected: i18n.PluralTwo},
		{name: "en ordinal few", locale: "en", style: "ordinal", value: 23, expected: i18n.PluralFew},
		{name: "en ordinal other", locale: "en", style: "ordinal", value: 11, expected: i18n.PluralOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var opts i18n.Options
			if tt.style != "" {
				opts = i18n.Options{"style": tt.style}
			}
			pf, err := i18n.NewPluralFormat(tt.locale, opts)
			require.NoError(t, err)

			got, err := pf.Format(tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}

	t.Run("invalid style", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewPluralFormat("en", i18n.Options{"style": "bogus"})
		require.ErrorIs(t, err, i18n.ErrInvalidOption)
	})

	t.Run("wrong option type", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewPluralFormat("en", i18n.Options{"style": 42})
		require.ErrorIs(t, err, i18n.ErrInvalidOption)
	})

	t.Run("empty locale", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.NewPluralFormat("", nil)
		require.ErrorIs(t, err, i18n.ErrEmptyLanguage)
	})

	t.Run("non-finite value", func(t *testing.T) {
		t.Parallel()
		pf, err := i18n.NewPluralFormat("en", nil)
		require.NoError(t, err)
		_, err = pf.Format(math.Inf(1))
		require.ErrorIs(t, err, i18n.ErrInvalidValue)
	})
}
