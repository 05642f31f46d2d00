package markup

import (
	"fmt"
	"html/template"
	"maps"
	"slices"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/intlfmt"
	"github.com/dmitrymomot/intlfmt/pkg/i18n"
	"github.com/dmitrymomot/intlfmt/pkg/sanitizer"
)

// HTMLFormatter adds element rendering to a Formatter. The embedded
// Formatter methods (Date, Number, Message, ...) stay available.
type HTMLFormatter struct {
	*intlfmt.Formatter

	elements   map[string]any
	fallback   any
	newBuilder ElementBuilderFactory
	sanitize   func(string) string
	opts       []Option
}

// Option configures an HTMLFormatter.
type Option func(*HTMLFormatter) error

// WithElement sets the element of one kind.
func WithElement(kind string, el any) Option {
	return func(h *HTMLFormatter) error {
		if !slices.Contains(elementKinds, kind) {
			return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
		}
		el, err := checkElement(el)
		if err != nil {
			return fmt.Errorf("%s element: %w", kind, err)
		}
		h.elements[kind] = el
		return nil
	}
}

// WithElements sets elements for several kinds.
func WithElements(elements map[string]any) Option {
	return func(h *HTMLFormatter) error {
		for kind, el := range elements {
			if err := WithElement(kind, el)(h); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithDefaultElement sets the element used for kinds without their own.
// It takes precedence over the process-wide DefaultElement.
func WithDefaultElement(el any) Option {
	return func(h *HTMLFormatter) error {
		el, err := checkElement(el)
		if err != nil {
			return err
		}
		h.fallback = el
		return nil
	}
}

// WithElementBuilder replaces the builder used for tag name elements.
func WithElementBuilder(factory ElementBuilderFactory) Option {
	return func(h *HTMLFormatter) error {
		if factory == nil {
			return ErrNilElementBuilder
		}
		h.newBuilder = factory
		return nil
	}
}

// WithPolicy sanitizes rendered tag name elements with policy, e.g.
// sanitizer.MarkupPolicy("section").
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(h *HTMLFormatter) error {
		if policy == nil {
			h.sanitize = nil
			return nil
		}
		h.sanitize = func(s string) string {
			return sanitizer.SanitizeHTMLCustom(s, policy)
		}
		return nil
	}
}

// WithSanitizedMarkup sanitizes rendered tag name elements with the default
// inline markup allow-list.
func WithSanitizedMarkup() Option {
	return func(h *HTMLFormatter) error {
		h.sanitize = sanitizer.SanitizeMarkup
		return nil
	}
}

// New wraps f.
func New(f *intlfmt.Formatter, opts ...Option) (*HTMLFormatter, error) {
	if f == nil {
		return nil, ErrNilFormatter
	}

	h := &HTMLFormatter{
		Formatter:  f,
		elements:   make(map[string]any, len(elementKinds)),
		newBuilder: HTMLElementBuilderFactory,
		opts:       opts,
	}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	return h, nil
}

// ChangeLocale derives an HTMLFormatter for locale with the same element
// configuration. formatterOpts are passed to Formatter.ChangeLocale.
func (h *HTMLFormatter) ChangeLocale(locale string, formatterOpts ...intlfmt.Option) (*HTMLFormatter, error) {
	f, err := h.Formatter.ChangeLocale(locale, formatterOpts...)
	if err != nil {
		return nil, err
	}
	return New(f, h.opts...)
}

// Element returns the element a call of kind uses when it has no tagName.
func (h *HTMLFormatter) Element(kind string) any {
	if el, ok := h.elements[kind]; ok {
		return el
	}
	if h.fallback != nil {
		return h.fallback
	}
	return DefaultElement()
}

// DateElement formats value with Date and wraps it.
func (h *HTMLFormatter) DateElement(value any, opts ...i18n.Options) any {
	el, fmtOpts := h.split(KindDate, opts)
	return h.render(el, KindDate, h.Date(value, fmtOpts))
}

// TimeElement formats value with Time and wraps it.
func (h *HTMLFormatter) TimeElement(value any, opts ...i18n.Options) any {
	el, fmtOpts := h.split(KindTime, opts)
	return h.render(el, KindTime, h.Time(value, fmtOpts))
}

// NumberElement formats value with Number and wraps it.
func (h *HTMLFormatter) NumberElement(value any, opts ...i18n.Options) any {
	el, fmtOpts := h.split(KindNumber, opts)
	return h.render(el, KindNumber, h.Number(value, fmtOpts))
}

// RelativeElement formats value with Relative and wraps it.
func (h *HTMLFormatter) RelativeElement(value any, opts ...i18n.Options) any {
	el, fmtOpts := h.split(KindRelative, opts)
	return h.render(el, KindRelative, h.Relative(value, fmtOpts))
}

// MessageElement formats a message and wraps it. Only the "tagName"
// option is read from opts. String output is escaped by the default element
// builder; use HTMLMessageElement for messages carrying markup.
func (h *HTMLFormatter) MessageElement(desc i18n.MessageDescriptor, values i18n.M, opts ...i18n.Options) any {
	el, _ := h.split(KindMessage, opts)
	return h.render(el, KindMessage, h.Message(desc, values))
}

// HTMLMessageElement formats a message with escaped values and wraps it.
// The message text is trusted, so its own tags are kept.
func (h *HTMLFormatter) HTMLMessageElement(desc i18n.MessageDescriptor, values i18n.M, opts ...i18n.Options) any {
	el, _ := h.split(KindHTMLMessage, opts)
	return h.render(el, KindHTMLMessage, trusted(h.HTMLMessage(desc, values)))
}

// trusted marks the text of an HTMLMessage result as markup. Values were
// escaped before formatting.
func trusted(v any) any {
	switch c := v.(type) {
	case string:
		return template.HTML(c)
	case []any:
		out := make([]any, len(c))
		for i, p := range c {
			out[i] = trusted(p)
		}
		return out
	default:
		return v
	}
}

// split removes the tagName option and returns the element for the call.
// An invalid tagName is reported and the kind element is used instead.
func (h *HTMLFormatter) split(kind string, opts []i18n.Options) (any, i18n.Options) {
	merged := make(i18n.Options)
	for _, o := range opts {
		maps.Copy(merged, o)
	}

	el := h.Element(kind)
	if tag, ok := merged[tagNameOption]; ok {
		delete(merged, tagNameOption)
		if tag != nil {
			if checked, err := checkElement(tag); err == nil {
				el = checked
			} else if cfg := h.Config(); !cfg.Production {
				cfg.OnError(fmt.Sprintf("Ignoring %s option for %s element.", tagNameOption, kind), err)
			}
		}
	}
	return el, merged
}

func (h *HTMLFormatter) render(el any, kind string, content any) any {
	switch e := el.(type) {
	case RenderFunc:
		return e(content, kind)
	case string:
		b := h.newBuilder()
		b.OpenTag(e)
		b.AppendChildren(content)
		b.CloseTag(e)
		return h.clean(b.Build())
	default:
		return content
	}
}

func (h *HTMLFormatter) clean(out any) any {
	if h.sanitize == nil {
		return out
	}
	switch v := out.(type) {
	case template.HTML:
		return template.HTML(h.sanitize(string(v)))
	case string:
		return h.sanitize(v)
	default:
		return out
	}
}

// PlainText returns the text of a formatter result with all markup removed,
// for places that cannot hold HTML such as a page title or a mail subject.
func PlainText(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return sanitizer.StripHTML(c)
	case template.HTML:
		return sanitizer.StripHTML(string(c))
	case []any:
		var b strings.Builder
		for _, p := range c {
			b.WriteString(PlainText(p))
		}
		return b.String()
	default:
		return sanitizer.StripHTML(fmt.Sprint(c))
	}
}
