package i18n_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intlfmt/pkg/i18n"
)

func formatMessage(t *testing.T, locale, pattern string, values i18n.M) string {
	t.Helper()

	mf, err := i18n.NewMessageFormat(i18n.DefaultRegistry(), pattern, locale, nil, i18n.MessageOptions{RequireOther: true})
	require.NoError(t, err)

	out, err := mf.Format(values, nil)
	require.NoError(t, err)

	s, ok := out.(string)
	require.True(t, ok, "default builder yields a string")
	return s
}

func TestMessageFormat(t *testing.T) {
	t.Parallel()

	ref := time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name     string
		locale   string
		pattern  string
		values   i18n.M
		expected string
	}{
		{name: "plain text", locale: "en", pattern: "Hello, World!", expected: "Hello, World!"},
		{name: "simple argument", locale: "en", pattern: "Hello, {name}!", values: i18n.M{"name": "Eric"}, expected: "Hello, Eric!"},
		{name: "number argument", locale: "en", pattern: "{n, number} items", values: i18n.M{"n": 1234}, expected: "1,234 items"},
		{name: "number argument de", locale: "de", pattern: "{n, number}", values: i18n.M{"n": 1234.5}, expected: "1.234,5"},
		{name: "integer style", locale: "en", pattern: "{n, number, integer}", values: i18n.M{"n": 2.7}, expected: "3"},
		{name: "date argument", locale: "en", pattern: "on {d, date, long}", values: i18n.M{"d": ref}, expected: "on January 2, 2006"},
		{name: "time argument", locale: "de", pattern: "um {d, time, short}", values: i18n.M{"d": ref}, expected: "um 15:04"},
		{
			name:     "plural with pound",
			locale:   "en",
			pattern:  "{n, plural, one {# photo} other {# photos}}",
			values:   i18n.M{"n": 1000},
			expected: "1,000 photos",
		},
		{
			name:     "plural exact match",
			locale:   "en",
			pattern:  "{n, plural, =0 {no photos} one {one photo} other {# photos}}",
			values:   i18n.M{"n": 0},
			expected: "no photos",
		},
		{
			name:     "plural offset",
			locale:   "en",
			pattern:  "{n, plural, offset:1 =0 {nobody} =1 {just you} one {you and # other} other {you and # others}}",
			values:   i18n.M{"n": 3},
			expected: "you and 2 others",
		},
		{
			name:     "selectordinal",
			locale:   "en",
			pattern:  "{n, selectordinal, one {#st} two {#nd} few {#rd} other {#th}}",
			values:   i18n.M{"n": 22},
			expected: "22nd",
		},
		{
			name:     "select",
			locale:   "en",
			pattern:  "{g, select, female {she} male {he} other {they}} replied",
			values:   i18n.M{"g": "female"},
			expected: "she replied",
		},
		{
			name:     "select falls back to other",
			locale:   "en",
			pattern:  "{g, select, female {she} other {they}}",
			values:   i18n.M{"g": "robot"},
			expected: "they",
		},
		{
			name:     "nested select in plural keeps pound",
			locale:   "en",
			pattern:  "{n, plural, other {{g, select, other {# items}}}}",
			values:   i18n.M{"n": 4, "g": "x"},
			expected: "4 items",
		},
		{name: "tags pass through", locale: "en", pattern: "Read the <b>docs</b>", expected: "Read the <b>docs</b>"},
		{name: "lone angle bracket is text", locale: "en", pattern: "a < b", expected: "a < b"},
		{name: "quoted braces", locale: "en", pattern: "'{literal}' text", expected: "{literal} text"},
		{name: "escaped apostrophe", locale: "en", pattern: "It''s {x}", values: i18n.M{"x": "ok"}, expected: "It's ok"},
		{name: "lone apostrophe", locale: "en", pattern: "It's fine", expected: "It's fine"},
		{name: "pound outside plural", locale: "en", pattern: "Issue #1", expected: "Issue #1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, formatMessage(t, tt.locale, tt.pattern, tt.values))
		})
	}
}

func TestMessageFormat_Errors(t *testing.T) {
	t.Parallel()

	reg := i18n.DefaultRegistry()

	t.Run("syntax errors", func(t *testing.T) {
		t.Parallel()

		for _, pattern := range []string{
			"Hello {name",
			"Hello name}",
			"{n, plural, one {x}",
			"{n, bogus}",
			"<b>unclosed",
			"{}",
		} {
			_, err := i18n.NewMessageFormat(reg, pattern, "en", nil, i18n.MessageOptions{})
			require.ErrorIs(t, err, i18n.ErrSyntax, pattern)
		}
	})

	t.Run("require other", func(t *testing.T) {
		t.Parallel()

		pattern := "{n, plural, one {x}}"
		_, err := i18n.NewMessageFormat(reg, pattern, "en", nil, i18n.MessageOptions{RequireOther: true})
		require.ErrorIs(t, err, i18n.ErrMissingOther)

		mf, err := i18n.NewMessageFormat(reg, pattern, "en", nil, i18n.MessageOptions{RequireOther: false})
		require.NoError(t, err)

		out, err := mf.Format(i18n.M{"n": 1}, nil)
		require.NoError(t, err)
		require.Equal(t, "x", out)

		_, err = mf.Format(i18n.M{"n": 5}, nil)
		require.ErrorIs(t, err, i18n.ErrNoOption)
	})

	t.Run("missing value", func(t *testing.T) {
		t.Parallel()

		mf, err := i18n.NewMessageFormat(reg, "Hello, {name}!", "en", nil, i18n.MessageOptions{})
		require.NoError(t, err)

		_, err = mf.Format(nil, nil)
		require.ErrorIs(t, err, i18n.ErrMissingValue)
	})

	t.Run("non numeric plural value", func(t *testing.T) {
		t.Parallel()

		mf, err := i18n.NewMessageFormat(reg, "{n, plural, other {#}}", "en", nil, i18n.MessageOptions{})
		require.NoError(t, err)

		_, err = mf.Format(i18n.M{"n": "many"}, nil)
		require.ErrorIs(t, err, i18n.ErrInvalidValue)
	})
}

func TestMessageFormat_CustomFormats(t *testing.T) {
	t.Parallel()

	formats := i18n.Formats{
		i18n.KindNumber: {"usd": {"style": "currency", "currency": "USD", "currencyDisplay": "code"}},
	}
	mf, err := i18n.NewMessageFormat(i18n.DefaultRegistry(), "Total: {amount, number, usd}", "en", formats, i18n.MessageOptions{})
	require.NoError(t, err)

	out, err := mf.Format(i18n.M{"amount": 9.5}, nil)
	require.NoError(t, err)
	require.Equal(t, "Total: USD 9.50", out)
}

func TestMessageFormat_ArrayBuilder(t *testing.T) {
	t.Parallel()

	type link struct{ href string }

	mf, err := i18n.NewMessageFormat(i18n.DefaultRegistry(), "Hi {name}, see {link} or <b>help</b>", "en", nil, i18n.MessageOptions{})
	require.NoError(t, err)

	l := link{href: "/docs"}
	out, err := mf.Format(i18n.M{"name": "Ann", "link": l}, i18n.ArrayBuilderFactory)
	require.NoError(t, err)
	require.Equal(t, []any{"Hi Ann, see ", l, " or <b>help</b>"}, out)
}
