package markup

import (
	"fmt"
	"html/template"
	"regexp"
	"strings"
	"sync"

	"github.com/dmitrymomot/intlfmt/pkg/sanitizer"
)

// Element kinds.
const (
	KindDate        = "date"
	KindTime        = "time"
	KindNumber      = "number"
	KindRelative    = "relative"
	KindMessage     = "message"
	KindHTMLMessage = "htmlMessage"
)

// elementKinds are the kinds that render through an element. Plural has no
// element form.
var elementKinds = []string{KindDate, KindTime, KindNumber, KindRelative, KindMessage, KindHTMLMessage}

// tagNameOption selects the element of a single call.
const tagNameOption = "tagName"

// RenderFunc renders formatted content of the given kind.
type RenderFunc func(content any, kind string) any

// ElementBuilder assembles one element around formatted content.
type ElementBuilder interface {
	OpenTag(name string)
	AppendChildren(v any)
	CloseTag(name string)
	Build() any
}

// ElementBuilderFactory creates a fresh ElementBuilder per element.
type ElementBuilderFactory func() ElementBuilder

// HTMLElementBuilder writes <name>content</name>. Plain strings are escaped;
// template.HTML content, such as HTMLMessageElement output, is written as is.
type HTMLElementBuilder struct {
	b strings.Builder
}

// HTMLElementBuilderFactory is the default ElementBuilderFactory.
func HTMLElementBuilderFactory() ElementBuilder {
	return &HTMLElementBuilder{}
}

func (h *HTMLElementBuilder) OpenTag(name string) { h.b.WriteString("<" + name + ">") }

func (h *HTMLElementBuilder) AppendChildren(v any) {
	switch c := v.(type) {
	case nil:
	case string:
		h.b.WriteString(sanitizer.EscapeHTML(c))
	case template.HTML:
		h.b.WriteString(string(c))
	case []any:
		for _, part := range c {
			h.AppendChildren(part)
		}
	default:
		h.b.WriteString(sanitizer.EscapeHTML(fmt.Sprint(c)))
	}
}

func (h *HTMLElementBuilder) CloseTag(name string) { h.b.WriteString("</" + name + ">") }

// Build returns the element as template.HTML.
func (h *HTMLElementBuilder) Build() any { return template.HTML(h.b.String()) }

var (
	defaultElementMu sync.RWMutex
	defaultElement   any = "span"
)

// DefaultElement returns the process-wide fallback element.
func DefaultElement() any {
	defaultElementMu.RLock()
	defer defaultElementMu.RUnlock()
	return defaultElement
}

// SetDefaultElement replaces the process-wide fallback element. It affects
// every HTMLFormatter without its own element for a kind.
func SetDefaultElement(el any) error {
	el, err := checkElement(el)
	if err != nil {
		return err
	}
	defaultElementMu.Lock()
	defaultElement = el
	defaultElementMu.Unlock()
	return nil
}

var tagName = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]*$`)

// checkElement normalizes el to a tag name or RenderFunc.
func checkElement(el any) (any, error) {
	switch e := el.(type) {
	case string:
		if e == "" {
			return nil, fmt.Errorf("%w: empty tag name", ErrInvalidElement)
		}
		if !tagName.MatchString(e) {
			return nil, fmt.Errorf("%w: bad tag name %q", ErrInvalidElement, e)
		}
		return e, nil
	case RenderFunc:
		if e == nil {
			return nil, fmt.Errorf("%w: nil render func", ErrInvalidElement)
		}
		return e, nil
	case func(any, string) any:
		if e == nil {
			return nil, fmt.Errorf("%w: nil render func", ErrInvalidElement)
		}
		return RenderFunc(e), nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidElement, el)
	}
}
