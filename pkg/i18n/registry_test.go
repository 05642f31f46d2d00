package i18n_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intlfmt/pkg/i18n"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	complete := func(locale string) i18n.LocaleData {
		return i18n.LocaleData{
			Locale:   locale,
			Relative: &i18n.RelativeData{Units: map[string]i18n.RelativeUnit{}},
		}
	}

	t.Run("has locale data after add", func(t *testing.T) {
		t.Parallel()

		reg := i18n.NewRegistry()
		require.False(t, reg.HasLocaleData("fr"))

		reg.AddLocaleData(complete("fr"))
		require.True(t, reg.HasLocaleData("fr"))
	})

	t.Run("lookup is case insensitive", func(t *testing.T) {
		t.Parallel()

		reg := i18n.NewRegistry(complete("EN"))
		require.True(t, reg.HasLocaleData("en"))
		require.True(t, reg.HasLocaleData("En"))
	})

	t.Run("dash truncation fallback", func(t *testing.T) {
		t.Parallel()

		reg := i18n.NewRegistry(complete("en"))
		require.True(t, reg.HasLocaleData("en-US"))
		require.True(t, reg.HasLocaleData("en-Latn-US"))
		require.False(t, reg.HasLocaleData("fr-FR"))
	})

	t.Run("empty locale has no data", func(t *testing.T) {
		t.Parallel()

		reg := i18n.NewRegistry(complete("en"))
		require.False(t, reg.HasLocaleData(""))
	})

	t.Run("dataset without relative data is incomplete", func(t *testing.T) {
		t.Parallel()

		reg := i18n.NewRegistry(i18n.LocaleData{Locale: "xx", Calendar: &i18n.CalendarData{}})
		require.False(t, reg.HasLocaleData("xx"))

		d, ok := reg.Lookup("xx-YY")
		require.True(t, ok)
		require.Equal(t, "xx", d.Locale)
	})

	t.Run("later registration replaces earlier", func(t *testing.T) {
		t.Parallel()

		reg := i18n.NewRegistry(complete("en"))
		reg.AddLocaleData(i18n.LocaleData{Locale: "en", Parent: "root"})

		d, ok := reg.Lookup("en")
		require.True(t, ok)
		require.Equal(t, "root", d.Parent)
		require.False(t, reg.HasLocaleData("en"))
	})

	t.Run("explicit parent serves missing sections", func(t *testing.T) {
		t.Parallel()

		reg := i18n.NewRegistry(append(i18n.BuiltinLocaleData(),
			i18n.LocaleData{Locale: "es-419", Parent: "es", Number: &i18n.NumberData{CurrencyPattern: "{symbol}{amount}"}},
		)...)

		df, err := i18n.NewDateTimeFormat(reg, "es-419", i18n.Options{"month": "long"})
		require.NoError(t, err)
		require.NotNil(t, df)
	})

	t.Run("builtin datasets", func(t *testing.T) {
		t.Parallel()

		reg := i18n.DefaultRegistry()
		for _, locale := range []string{"en", "de", "es", "fr", "en-GB", "fr-CA"} {
			require.True(t, reg.HasLocaleData(locale), locale)
		}
		require.Equal(t, []string{"de", "en", "es", "fr"}, i18n.NewRegistry(i18n.BuiltinLocaleData()...).Locales())
	})
}
