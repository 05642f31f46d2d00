package markup_test

import (
	"html/template"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intlfmt/pkg/i18n"
	"github.com/dmitrymomot/intlfmt/pkg/markup"
)

func TestExtend(t *testing.T) {
	t.Parallel()

	h := newHTML(t)

	t.Run("default aliases delegate", func(t *testing.T) {
		t.Parallel()

		ext, err := h.Extend(markup.DefaultAliases)
		require.NoError(t, err)
		require.Len(t, ext.FuncMap(), len(markup.DefaultAliases))

		n, ok := ext.Func("n")
		require.True(t, ok)
		assert.Equal(t, h.Number(0), n.(func(any, ...i18n.Options) string)(0))

		ne, ok := ext.Func("ne")
		require.True(t, ok)
		assert.Equal(t, h.NumberElement(0), ne.(func(any, ...i18n.Options) any)(0))

		p, ok := ext.Func("p")
		require.True(t, ok)
		assert.Equal(t, "one", p.(func(any, ...i18n.Options) string)(1))

		m, ok := ext.Func("m")
		require.True(t, ok)
		got, err := m.(func(any, ...i18n.M) (any, error))("no_args")
		require.NoError(t, err)
		assert.Equal(t, h.Message(i18n.MessageDescriptor{ID: "no_args"}), got)

		_, err = m.(func(any, ...i18n.M) (any, error))(42)
		require.Error(t, err)
	})

	t.Run("only chosen aliases", func(t *testing.T) {
		t.Parallel()

		ext, err := h.Extend(markup.Aliases{markup.MethodDate: "formatDate"})
		require.NoError(t, err)

		_, ok := ext.Func("formatDate")
		require.True(t, ok)
		_, ok = ext.Func("d")
		require.False(t, ok)
		require.Len(t, ext.FuncMap(), 1)
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()

		_, err := h.Extend(markup.Aliases{"format": "f"})
		require.ErrorIs(t, err, markup.ErrUnknownMethod)

		_, err = h.Extend(markup.Aliases{markup.MethodDate: ""})
		require.ErrorIs(t, err, markup.ErrInvalidAlias)

		_, err = h.Extend(markup.Aliases{markup.MethodDate: "x", markup.MethodTime: "x"})
		require.ErrorIs(t, err, markup.ErrDuplicateAlias)
	})
}

func TestExtend_Template(t *testing.T) {
	t.Parallel()

	ext, err := newHTML(t).Extend(markup.DefaultAliases)
	require.NoError(t, err)

	tmpl, err := template.New("page").Funcs(ext.FuncMap()).Parse(
		`{{ n .Total }}|{{ ne .Total }}|{{ m "greeting" .Values }}|{{ he "greeting" .Values }}|{{ me "bold" .Values }}|{{ h "bold" .Values }}|{{ ne .Script }}`,
	)
	require.NoError(t, err)

	var out strings.Builder
	err = tmpl.Execute(&out, map[string]any{
		"Total":  1234.5,
		"Values": i18n.M{"name": "<i>A</i>"},
		"Script": "<script>alert(1)</script>",
	})
	require.NoError(t, err)

	got := strings.Split(out.String(), "|")
	require.Len(t, got, 7)
	assert.Equal(t, "1,234.5", got[0])
	assert.Equal(t, "<span>1,234.5</span>", got[1])
	assert.Equal(t, "Hello, &lt;i&gt;A&lt;/i&gt;!", got[2])
	assert.Equal(t, "<span>Hello, &lt;i&gt;A&lt;/i&gt;!</span>", got[3])
	assert.Equal(t, "<span>Hello, &lt;b&gt;&lt;i&gt;A&lt;/i&gt;&lt;/b&gt;!</span>", got[4])
	assert.Equal(t, "Hello, <b>&lt;i&gt;A&lt;/i&gt;</b>!", got[5])
	assert.Equal(t, "<span>&lt;script&gt;alert(1)&lt;/script&gt;</span>", got[6])
	assert.NotContains(t, out.String(), "<script>")
	assert.NotContains(t, out.String(), "<i>")
}
