// Package markup renders formatter output as HTML.
//
// HTMLFormatter wraps an intlfmt.Formatter and adds *Element methods that
// place each formatted value inside an element. The element for a call is
// picked in this order: the "tagName" option of the call, the element set
// for the format kind with WithElement or WithElements, the formatter's
// WithDefaultElement, and finally the process-wide default returned by
// DefaultElement ("span" unless changed with SetDefaultElement).
//
// An element is either a tag name or a RenderFunc:
//
//	h, err := markup.New(f,
//	    markup.WithElement(markup.KindNumber, "data"),
//	    markup.WithElement(markup.KindRelative, markup.RenderFunc(func(v any, kind string) any {
//	        return template.HTML(`<time class="ago">` + fmt.Sprint(v) + `</time>`)
//	    })),
//	)
//	h.NumberElement(1234.5) // <data>1,234.5</data>
//
// Tag name elements are written as markup, so message values are not
// escaped. Use HTMLMessageElement for untrusted values, or sanitize the
// rendered element with WithSanitizedMarkup or WithPolicy. PlainText strips
// the markup again where only text fits, such as a <title>.
//
// Extend exposes the formatter methods under short aliases and builds an
// html/template FuncMap from them:
//
//	funcs, err := h.Extend(markup.DefaultAliases)
//	tmpl := template.New("page").Funcs(funcs.FuncMap())
//	// {{ n .Total }} {{ me "cart.title" }}
//
// ComponentBuilderFactory makes Message return a templ.Component, and
// Component adapts any formatter result for use inside templ templates.
// MarkdownRenderer is a text renderer (intlfmt.WithTextRenderer) that
// renders messages written in inline markdown.
package markup
