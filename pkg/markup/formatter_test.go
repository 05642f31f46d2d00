package markup_test

import (
	"fmt"
	"html/template"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intlfmt"
	"github.com/dmitrymomot/intlfmt/pkg/i18n"
	"github.com/dmitrymomot/intlfmt/pkg/markup"
	"github.com/dmitrymomot/intlfmt/pkg/sanitizer"
)

var ref = time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

func newFormatter(t *testing.T, opts ...intlfmt.Option) *intlfmt.Formatter {
	t.Helper()

	base := []intlfmt.Option{
		intlfmt.WithRegistry(i18n.NewRegistry(i18n.BuiltinLocaleData()...)),
		intlfmt.WithInitialNow(ref),
		intlfmt.WithErrorHandler(func(string, error) {}),
		intlfmt.WithMessages(map[string]string{
			"no_args":  "Hello, World!",
			"greeting": "Hello, {name}!",
			"bold":     "Hello, <b>{name}</b>!",
		}),
	}
	f, err := intlfmt.New("en", append(base, opts...)...)
	require.NoError(t, err)
	return f
}

func newHTML(t *testing.T, opts ...markup.Option) *markup.HTMLFormatter {
	t.Helper()

	h, err := markup.New(newFormatter(t), opts...)
	require.NoError(t, err)
	return h
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil formatter", func(t *testing.T) {
		t.Parallel()

		_, err := markup.New(nil)
		require.ErrorIs(t, err, markup.ErrNilFormatter)
	})

	t.Run("invalid elements", func(t *testing.T) {
		t.Parallel()

		for _, el := range []any{0, ref, struct{}{}, []string{"span"}, ""} {
			_, err := markup.New(newFormatter(t), markup.WithDefaultElement(el))
			require.ErrorIs(t, err, markup.ErrInvalidElement, "element %#v", el)

			_, err = markup.New(newFormatter(t), markup.WithElement(markup.KindDate, el))
			require.ErrorIs(t, err, markup.ErrInvalidElement, "element %#v", el)
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()

		_, err := markup.New(newFormatter(t), markup.WithElement("plural", "span"))
		require.ErrorIs(t, err, markup.ErrUnknownKind)
	})

	t.Run("nil element builder", func(t *testing.T) {
		t.Parallel()

		_, err := markup.New(newFormatter(t), markup.WithElementBuilder(nil))
		require.ErrorIs(t, err, markup.ErrNilElementBuilder)
	})

	t.Run("embedded formatter methods", func(t *testing.T) {
		t.Parallel()

		h := newHTML(t)
		assert.Equal(t, "1,234.5", h.Number(1234.5))
		assert.Equal(t, "Hello, World!", h.Message(i18n.MessageDescriptor{ID: "no_args"}))
	})
}

func TestHTMLFormatter_StringElements(t *testing.T) {
	t.Parallel()

	h := newHTML(t)

	assert.Equal(t, template.HTML("<span>Hello, World!</span>"), h.MessageElement(i18n.MessageDescriptor{ID: "no_args"}, nil))
	assert.Equal(t, template.HTML("<span>Hello, World!</span>"), h.HTMLMessageElement(i18n.MessageDescriptor{ID: "no_args"}, nil))
	assert.Equal(t, template.HTML("<span>3/15/2024</span>"), h.DateElement(ref))
	assert.Equal(t, template.HTML("<span>"+h.Time(ref)+"</span>"), h.TimeElement(ref))
	assert.Equal(t, template.HTML("<span>now</span>"), h.RelativeElement(ref))
	assert.Equal(t, template.HTML("<span>1</span>"), h.NumberElement(1))
}

func TestHTMLFormatter_ElementPriority(t *testing.T) {
	t.Parallel()

	h := newHTML(t,
		markup.WithDefaultElement("em"),
		markup.WithElements(map[string]any{
			markup.KindNumber: "data",
		}),
	)

	t.Run("kind element", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, template.HTML("<data>1</data>"), h.NumberElement(1))
	})

	t.Run("formatter default", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, template.HTML("<em>3/15/2024</em>"), h.DateElement(ref))
	})

	t.Run("call tag name wins", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, template.HTML("<strong>1</strong>"), h.NumberElement(1, i18n.Options{"tagName": "strong"}))
		assert.Equal(t, template.HTML("<b>Hello, World!</b>"),
			h.MessageElement(i18n.MessageDescriptor{ID: "no_args"}, nil, i18n.Options{"tagName": "b"}))
	})

	t.Run("tag name is not a format option", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, template.HTML("<strong>1</strong>"),
			h.NumberElement(1.4, i18n.Options{"tagName": "strong", "maximumFractionDigits": 0}))
	})

	t.Run("invalid tag name is reported", func(t *testing.T) {
		t.Parallel()

		var reported []string
		f := newFormatter(t, intlfmt.WithErrorHandler(func(msg string, err error) {
			require.ErrorIs(t, err, markup.ErrInvalidElement)
			reported = append(reported, msg)
		}))
		h, err := markup.New(f)
		require.NoError(t, err)

		assert.Equal(t, template.HTML("<span>1</span>"), h.NumberElement(1, i18n.Options{"tagName": 42}))
		assert.Len(t, reported, 1)
	})
}

func TestHTMLFormatter_RenderFunc(t *testing.T) {
	t.Parallel()

	var calls []string
	render := markup.RenderFunc(func(v any, kind string) any {
		calls = append(calls, kind)
		return fmt.Sprintf("!%v!", v)
	})

	h := newHTML(t, markup.WithDefaultElement(render))

	assert.Equal(t, "!Hello, World!!", h.MessageElement(i18n.MessageDescriptor{ID: "no_args"}, nil))
	assert.Equal(t, "!Hello, World!!", h.HTMLMessageElement(i18n.MessageDescriptor{ID: "no_args"}, nil))
	assert.Equal(t, "!3/15/2024!", h.DateElement(ref))
	assert.Equal(t, "!now!", h.RelativeElement(ref))
	assert.Equal(t, "!1!", h.NumberElement(1))
	assert.Equal(t, []string{"message", "htmlMessage", "date", "relative", "number"}, calls)

	plain := func(v any, _ string) any { return v }
	h = newHTML(t, markup.WithElement(markup.KindNumber, plain))
	assert.Equal(t, "1", h.NumberElement(1))
}

func TestHTMLFormatter_HTMLMessageElement(t *testing.T) {
	t.Parallel()

	h := newHTML(t)
	got := h.HTMLMessageElement(i18n.MessageDescriptor{ID: "greeting"}, i18n.M{"name": "<i>A</i>"})
	assert.Equal(t, template.HTML("<span>Hello, &lt;i&gt;A&lt;/i&gt;!</span>"), got)
}

func TestHTMLFormatter_Policy(t *testing.T) {
	t.Parallel()

	h := newHTML(t, markup.WithPolicy(sanitizer.MarkupPolicy()))

	got := h.HTMLMessageElement(i18n.MessageDescriptor{ID: "bold"}, i18n.M{"name": template.HTML(`<script>alert(1)</script>Ann`)})
	assert.Equal(t, template.HTML("<span>Hello, <b>Ann</b>!</span>"), got)
}

func TestHTMLFormatter_Escaping(t *testing.T) {
	t.Parallel()

	h := newHTML(t)
	script := "<script>alert(1)</script>"

	t.Run("message values and markup are escaped", func(t *testing.T) {
		t.Parallel()

		got := h.MessageElement(i18n.MessageDescriptor{ID: "bold"}, i18n.M{"name": script})
		assert.Equal(t, template.HTML("<span>Hello, &lt;b&gt;&lt;script&gt;alert(1)&lt;/script&gt;&lt;/b&gt;!</span>"), got)
	})

	t.Run("html message keeps its own tags only", func(t *testing.T) {
		t.Parallel()

		got := h.HTMLMessageElement(i18n.MessageDescriptor{ID: "bold"}, i18n.M{"name": script})
		assert.Equal(t, template.HTML("<span>Hello, <b>&lt;script&gt;alert(1)&lt;/script&gt;</b>!</span>"), got)
	})

	t.Run("fallback values are escaped", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, template.HTML("<span>&lt;script&gt;alert(1)&lt;/script&gt;</span>"), h.NumberElement(script))
		assert.Equal(t, template.HTML("<span>&lt;script&gt;alert(1)&lt;/script&gt;</span>"), h.DateElement(script))
	})

	t.Run("tag names must be plain", func(t *testing.T) {
		t.Parallel()

		_, err := markup.New(newFormatter(t), markup.WithDefaultElement(`span onclick="x"`))
		require.ErrorIs(t, err, markup.ErrInvalidElement)

		got := h.NumberElement(1, i18n.Options{"tagName": "b><script"})
		assert.Equal(t, template.HTML("<span>1</span>"), got)
	})
}

type arrayElementBuilder struct {
	parts []any
}

func (a *arrayElementBuilder) OpenTag(name string)  { a.parts = append(a.parts, "<"+name+">") }
func (a *arrayElementBuilder) AppendChildren(v any) { a.parts = append(a.parts, v) }
func (a *arrayElementBuilder) CloseTag(name string) { a.parts = append(a.parts, "</"+name+">") }
func (a *arrayElementBuilder) Build() any           { return a.parts }

func TestHTMLFormatter_ElementBuilder(t *testing.T) {
	t.Parallel()

	f := newFormatter(t, intlfmt.WithMessageBuilder(i18n.ArrayBuilderFactory))
	h, err := markup.New(f, markup.WithElementBuilder(func() markup.ElementBuilder {
		return &arrayElementBuilder{}
	}))
	require.NoError(t, err)

	got := h.MessageElement(i18n.MessageDescriptor{ID: "no_args"}, nil)
	assert.Equal(t, []any{"<span>", []any{"Hello, World!"}, "</span>"}, got)
}

func TestHTMLFormatter_ChangeLocale(t *testing.T) {
	t.Parallel()

	h := newHTML(t, markup.WithElement(markup.KindNumber, "data"))

	de, err := h.ChangeLocale("de")
	require.NoError(t, err)
	assert.Equal(t, "de", de.Locale())
	assert.Equal(t, template.HTML("<data>1.234,5</data>"), de.NumberElement(1234.5))
	assert.Equal(t, ref, de.Now())

	_, err = h.ChangeLocale("")
	require.ErrorIs(t, err, intlfmt.ErrInvalidLocale)
}

// Mutates the process-wide default element; not parallel.
func TestSetDefaultElement(t *testing.T) {
	require.Equal(t, "span", markup.DefaultElement())
	t.Cleanup(func() {
		require.NoError(t, markup.SetDefaultElement("span"))
	})

	require.ErrorIs(t, markup.SetDefaultElement(3), markup.ErrInvalidElement)
	require.Equal(t, "span", markup.DefaultElement())

	require.NoError(t, markup.SetDefaultElement("div"))
	h := newHTML(t, markup.WithElement(markup.KindDate, "time"))
	assert.Equal(t, template.HTML("<div>1</div>"), h.NumberElement(1))
	assert.Equal(t, template.HTML("<time>3/15/2024</time>"), h.DateElement(ref))

	own := newHTML(t, markup.WithDefaultElement("p"))
	assert.Equal(t, template.HTML("<p>1</p>"), own.NumberElement(1))
}

func TestHTMLFormatter_SanitizedMarkup(t *testing.T) {
	t.Parallel()

	h := newHTML(t, markup.WithSanitizedMarkup())
	got := h.HTMLMessageElement(i18n.MessageDescriptor{ID: "bold"}, i18n.M{"name": template.HTML(`<img src=x onerror=alert(1)>Ann`)})
	assert.Equal(t, template.HTML("<span>Hello, <b>Ann</b>!</span>"), got)
}

func TestPlainText(t *testing.T) {
	t.Parallel()

	h := newHTML(t)

	assert.Equal(t, "", markup.PlainText(nil))
	assert.Equal(t, "1", markup.PlainText(h.NumberElement(1)))
	assert.Equal(t, "Hello, Ann!", markup.PlainText(h.HTMLMessageElement(i18n.MessageDescriptor{ID: "bold"}, i18n.M{"name": "Ann"})))
	assert.Equal(t, "a b", markup.PlainText([]any{"<i>a</i>", template.HTML(" "), "b"}))
	assert.Equal(t, "42", markup.PlainText(42))
}
