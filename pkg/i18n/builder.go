package i18n

import (
	"fmt"
	"strings"
)

// Builder assembles the output of a formatted message. Message formatting
// feeds it literal text, argument values and the open/close events of
// <tag> nodes, then calls Build once.
type Builder interface {
	AppendText(s string)
	AppendValue(v any)
	OpenTag(name string)
	CloseTag(name string)
	Build() any
}

// BuilderFactory creates a fresh Builder for one Format call.
type BuilderFactory func() Builder

// StringBuilder concatenates everything into a string. Tags are written
// back as <name> and </name>.
type StringBuilder struct {
	b strings.Builder
}

// StringBuilderFactory is the default BuilderFactory.
func StringBuilderFactory() Builder {
	return &StringBuilder{}
}

func (s *StringBuilder) AppendText(text string) { s.b.WriteString(text) }

func (s *StringBuilder) AppendValue(v any) {
	if str, ok := v.(string); ok {
		s.b.WriteString(str)
		return
	}
	fmt.Fprint(&s.b, v)
}

func (s *StringBuilder) OpenTag(name string)  { s.b.WriteString("<" + name + ">") }
func (s *StringBuilder) CloseTag(name string) { s.b.WriteString("</" + name + ">") }

// Build returns the accumulated string.
func (s *StringBuilder) Build() any { return s.b.String() }

// ArrayBuilder collects message parts into a []any. Adjacent text is merged
// into one string; non-string values are kept as separate elements, so
// callers can interleave rich values (components, elements) with text.
type ArrayBuilder struct {
	parts []any
}

// ArrayBuilderFactory returns a BuilderFactory producing ArrayBuilders.
func ArrayBuilderFactory() Builder {
	return &ArrayBuilder{}
}

func (a *ArrayBuilder) AppendText(text string) {
	if text == "" {
		return
	}
	if n := len(a.parts); n > 0 {
		if last, ok := a.parts[n-1].(string); ok {
			a.parts[n-1] = last + text
			return
		}
	}
	a.parts = append(a.parts, text)
}

func (a *ArrayBuilder) AppendValue(v any) {
	if s, ok := v.(string); ok {
		a.AppendText(s)
		return
	}
	a.parts = append(a.parts, v)
}

func (a *ArrayBuilder) OpenTag(name string)  { a.AppendText("<" + name + ">") }
func (a *ArrayBuilder) CloseTag(name string) { a.AppendText("</" + name + ">") }

// Build returns the collected parts.
func (a *ArrayBuilder) Build() any {
	if a.parts == nil {
		return []any{}
	}
	return a.parts
}
