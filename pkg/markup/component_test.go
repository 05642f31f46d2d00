package markup_test

import (
	"context"
	"html/template"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intlfmt"
	"github.com/dmitrymomot/intlfmt/pkg/i18n"
	"github.com/dmitrymomot/intlfmt/pkg/markup"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()

	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func TestComponent(t *testing.T) {
	t.Parallel()

	badge := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<b class="badge">3</b>`)
		return err
	})

	tests := []struct {
		name     string
		value    any
		expected string
	}{
		{name: "nil", value: nil, expected: ""},
		{name: "string is escaped", value: "<i>A</i> & B", expected: "&lt;i&gt;A&lt;/i&gt; &amp; B"},
		{name: "html is raw", value: template.HTML("<span>1</span>"), expected: "<span>1</span>"},
		{name: "number", value: 42, expected: "42"},
		{name: "component", value: badge, expected: `<b class="badge">3</b>`},
		{name: "parts", value: []any{"a<", badge, template.HTML("<br>")}, expected: `a&lt;<b class="badge">3</b><br>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, render(t, markup.Component(tt.value)))
		})
	}
}

func TestComponentBuilderFactory(t *testing.T) {
	t.Parallel()

	badge := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<b class="badge">3</b>`)
		return err
	})

	f := newFormatter(t,
		intlfmt.WithMessageBuilder(markup.ComponentBuilderFactory),
		intlfmt.WithMessages(map[string]string{
			"inbox": "Hi <em>{name}</em>, you have {count} new",
		}),
	)

	out := f.Message(i18n.MessageDescriptor{ID: "inbox"}, i18n.M{"name": "<Ann>", "count": badge})
	c, ok := out.(templ.Component)
	require.True(t, ok, "got %T", out)
	assert.Equal(t, `Hi <em>&lt;Ann&gt;</em>, you have <b class="badge">3</b> new`, render(t, c))

	h, err := markup.New(f)
	require.NoError(t, err)
	el := h.MessageElement(i18n.MessageDescriptor{ID: "inbox"}, i18n.M{"name": "Ann", "count": 2}, i18n.Options{
		"tagName": markup.RenderFunc(func(v any, _ string) any {
			return markup.Component(v)
		}),
	})
	assert.Equal(t, `Hi <em>Ann</em>, you have 2 new`, render(t, el.(templ.Component)))
}
