package markup

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/dmitrymomot/intlfmt/pkg/sanitizer"
)

// markdownElements are rendered by goldmark on top of the default markup
// allow-list.
var markdownElements = []string{"del", "ul", "ol", "li", "blockquote", "pre", "h1", "h2", "h3", "h4", "h5", "h6"}

// MarkdownRenderer returns a text renderer for intlfmt.WithTextRenderer.
// It converts message text written in markdown to sanitized HTML. A single
// paragraph is unwrapped so short messages stay inline:
//
//	f, _ := intlfmt.New("en",
//	    intlfmt.WithMessages(map[string]string{"hi": "Hello **{name}**"}),
//	    intlfmt.WithTextRenderer(markup.MarkdownRenderer()),
//	)
//	f.Message(intlfmt.MessageDescriptor{ID: "hi"}, intlfmt.M{"name": "Ann"})
//	// template.HTML("Hello <strong>Ann</strong>")
//
// Values that are not strings are returned unchanged.
func MarkdownRenderer(extensions ...goldmark.Extender) func(any) any {
	md := goldmark.New(
		goldmark.WithExtensions(append([]goldmark.Extender{extension.Strikethrough, extension.Linkify}, extensions...)...),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	policy := sanitizer.MarkupPolicy(markdownElements...)

	return func(v any) any {
		var src string
		switch s := v.(type) {
		case string:
			src = s
		case template.HTML:
			src = string(s)
		case fmt.Stringer:
			src = s.String()
		default:
			return v
		}

		var buf bytes.Buffer
		if err := md.Convert([]byte(src), &buf); err != nil {
			return v
		}
		out := strings.TrimSpace(buf.String())
		if inner, ok := strings.CutPrefix(out, "<p>"); ok && strings.Count(out, "<p>") == 1 {
			out = strings.TrimSuffix(inner, "</p>")
		}
		return template.HTML(sanitizer.SanitizeHTMLCustom(out, policy))
	}
}
