package markup

import (
	"context"
	"fmt"
	"html/template"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/intlfmt/pkg/i18n"
)

// ComponentBuilder collects message parts into a templ.Component. Text and
// plain values are escaped; templ components and template.HTML values are
// rendered as they are. Tags from the message pattern are written as markup.
type ComponentBuilder struct {
	parts []templ.Component
}

// ComponentBuilderFactory is an i18n.BuilderFactory for use with
// intlfmt.WithMessageBuilder. Message then returns a templ.Component.
func ComponentBuilderFactory() i18n.Builder {
	return &ComponentBuilder{}
}

func (c *ComponentBuilder) AppendText(s string) {
	if s != "" {
		c.parts = append(c.parts, text(s))
	}
}

func (c *ComponentBuilder) AppendValue(v any) {
	c.parts = append(c.parts, Component(v))
}

func (c *ComponentBuilder) OpenTag(name string) {
	c.parts = append(c.parts, templ.Raw("<"+name+">"))
}

func (c *ComponentBuilder) CloseTag(name string) {
	c.parts = append(c.parts, templ.Raw("</"+name+">"))
}

// Build returns a component rendering every part in order.
func (c *ComponentBuilder) Build() any {
	return join(c.parts)
}

// Component adapts a formatter result for templ. Strings are escaped,
// template.HTML is written raw, slices render each element in order and
// components pass through.
//
// Example:
//
//	@markup.Component(h.NumberElement(order.Total))
func Component(v any) templ.Component {
	switch c := v.(type) {
	case nil:
		return templ.NopComponent
	case templ.Component:
		return c
	case template.HTML:
		return templ.Raw(string(c))
	case string:
		return text(c)
	case []any:
		parts := make([]templ.Component, 0, len(c))
		for _, p := range c {
			parts = append(parts, Component(p))
		}
		return join(parts)
	default:
		return text(fmt.Sprint(c))
	}
}

func text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

func join(parts []templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, p := range parts {
			if err := p.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
