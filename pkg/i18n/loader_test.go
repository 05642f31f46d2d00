package i18n_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intlfmt/pkg/i18n"
)

func TestLoadCatalogs(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"en/app.json": {Data: []byte(`{
			"hello": "Hello",
			"welcome": "Welcome, {name}!",
			"buttons": {"save": "Save", "cancel": "Cancel"},
			"limit": 10
		}`)},
		"en/errors.yaml": {Data: []byte("not_found: Resource not found\nvalidation:\n  required: Field {field} is required\n")},
		"fr/app.yml":     {Data: []byte("hello: Bonjour\nbuttons:\n  save: Enregistrer\n")},
		"de/app.po": {Data: []byte(`msgid ""
msgstr ""
"Language: de\n"
"Content-Type: text/plain; charset=UTF-8\n"

msgid "hello"
msgstr "Hallo"

msgid "welcome"
msgstr "Willkommen, {name}!"

msgid "untranslated"
msgstr ""
`)},
		"README.md": {Data: []byte("ignored")},
	}

	catalogs, err := i18n.LoadCatalogs(fsys)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"en", "fr", "de"}, catalogs.Locales())

	t.Run("json flattened with namespace", func(t *testing.T) {
		t.Parallel()

		en := catalogs["en"]
		require.Equal(t, "Hello", en["app.hello"])
		require.Equal(t, "Welcome, {name}!", en["app.welcome"])
		require.Equal(t, "Save", en["app.buttons.save"])
		require.Equal(t, "Cancel", en["app.buttons.cancel"])
		require.Equal(t, "10", en["app.limit"])
	})

	t.Run("yaml namespaces merge per locale", func(t *testing.T) {
		t.Parallel()

		require.Equal(t, "Resource not found", catalogs["en"]["errors.not_found"])
		require.Equal(t, "Field {field} is required", catalogs["en"]["errors.validation.required"])
		require.Equal(t, "Enregistrer", catalogs["fr"]["app.buttons.save"])
	})

	t.Run("po entries", func(t *testing.T) {
		t.Parallel()

		de := catalogs["de"]
		require.Equal(t, "Hallo", de["app.hello"])
		require.Equal(t, "Willkommen, {name}!", de["app.welcome"])
		require.NotContains(t, de, "app.untranslated")
	})
}

func TestLoadCatalogs_Errors(t *testing.T) {
	t.Parallel()

	t.Run("file outside language directory", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.LoadCatalogs(fstest.MapFS{"app.json": {Data: []byte(`{}`)}})
		require.ErrorIs(t, err, i18n.ErrInvalidFile)
	})

	t.Run("malformed json", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.LoadCatalogs(fstest.MapFS{"en/app.json": {Data: []byte(`{"a":`)}})
		require.ErrorIs(t, err, i18n.ErrInvalidFile)
	})

	t.Run("missing po file", func(t *testing.T) {
		t.Parallel()

		_, err := i18n.LoadPOCatalog(fstest.MapFS{}, "en/app.po")
		require.Error(t, err)
	})
}

func TestLoadLocaleData(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"pt-br.yaml": {Data: []byte(`
parent: pt
number:
  currency_pattern: "{symbol} {amount}"
relative:
  units:
    day:
      relative:
        "0": hoje
        "1": amanhã
      future:
        one: em {0} dia
        other: em {0} dias
      past:
        one: há {0} dia
        other: há {0} dias
`)},
		"custom.json": {Data: []byte(`{"locale": "xx", "parent": "en"}`)},
	}

	data, err := i18n.LoadLocaleData(fsys)
	require.NoError(t, err)
	require.Len(t, data, 2)

	reg := i18n.NewRegistry(data...)
	require.True(t, reg.HasLocaleData("pt-BR"))
	require.False(t, reg.HasLocaleData("xx"))

	pt, ok := reg.Lookup("pt-br")
	require.True(t, ok)
	require.Equal(t, "pt", pt.Parent)
	require.Equal(t, "hoje", pt.Relative.Units["day"].Relative["0"])

	_, err = i18n.LoadLocaleData(fstest.MapFS{"bad.yaml": {Data: []byte("relative: [")}})
	require.ErrorIs(t, err, i18n.ErrInvalidFile)
}
