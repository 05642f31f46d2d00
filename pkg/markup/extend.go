package markup

import (
	"fmt"
	"html/template"
	"maps"

	"github.com/dmitrymomot/intlfmt/pkg/i18n"
)

// Method names accepted as keys of Aliases.
const (
	MethodDate               = "date"
	MethodDateElement        = "dateElement"
	MethodTime               = "time"
	MethodTimeElement        = "timeElement"
	MethodNumber             = "number"
	MethodNumberElement      = "numberElement"
	MethodRelative           = "relative"
	MethodRelativeElement    = "relativeElement"
	MethodPlural             = "plural"
	MethodMessage            = "message"
	MethodMessageElement     = "messageElement"
	MethodHTMLMessage        = "htmlMessage"
	MethodHTMLMessageElement = "htmlMessageElement"
)

// Aliases maps a method name to the name it is exposed under.
type Aliases map[string]string

// DefaultAliases are the short names commonly used in templates.
var DefaultAliases = Aliases{
	MethodDate:               "d",
	MethodDateElement:        "de",
	MethodTime:               "t",
	MethodTimeElement:        "te",
	MethodNumber:             "n",
	MethodNumberElement:      "ne",
	MethodRelative:           "r",
	MethodRelativeElement:    "re",
	MethodPlural:             "p",
	MethodMessage:            "m",
	MethodMessageElement:     "me",
	MethodHTMLMessage:        "h",
	MethodHTMLMessageElement: "he",
}

// Extended exposes a chosen set of formatter methods under aliases.
type Extended struct {
	*HTMLFormatter

	funcs template.FuncMap
}

// Extend returns a facade exposing exactly the methods named in aliases.
// Unknown method names, empty aliases and aliases used twice are errors.
func (h *HTMLFormatter) Extend(aliases Aliases) (*Extended, error) {
	methods := h.Methods()
	funcs := make(template.FuncMap, len(aliases))
	for method, alias := range aliases {
		fn, ok := methods[method]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
		}
		if alias == "" {
			return nil, fmt.Errorf("%w: empty alias for %q", ErrInvalidAlias, method)
		}
		if _, dup := funcs[alias]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateAlias, alias)
		}
		funcs[alias] = fn
	}
	return &Extended{HTMLFormatter: h, funcs: funcs}, nil
}

// Func returns the method exposed under alias.
func (e *Extended) Func(alias string) (any, bool) {
	fn, ok := e.funcs[alias]
	return fn, ok
}

// FuncMap returns the aliased methods for html/template.
func (e *Extended) FuncMap() template.FuncMap {
	return maps.Clone(e.funcs)
}

// Methods returns every formatter method under its method name, in the
// shape html/template expects. HTML messages and elements built by the
// default builder are template.HTML; anything else, including plain
// messages, is escaped by the template. Message arguments accept an id or a
// MessageDescriptor.
func (h *HTMLFormatter) Methods() template.FuncMap {
	return template.FuncMap{
		MethodDate: func(v any, opts ...i18n.Options) string { return h.Date(v, opts...) },
		MethodDateElement: func(v any, opts ...i18n.Options) any {
			return h.DateElement(v, opts...)
		},
		MethodTime: func(v any, opts ...i18n.Options) string { return h.Time(v, opts...) },
		MethodTimeElement: func(v any, opts ...i18n.Options) any {
			return h.TimeElement(v, opts...)
		},
		MethodNumber: func(v any, opts ...i18n.Options) string { return h.Number(v, opts...) },
		MethodNumberElement: func(v any, opts ...i18n.Options) any {
			return h.NumberElement(v, opts...)
		},
		MethodRelative: func(v any, opts ...i18n.Options) string { return h.Relative(v, opts...) },
		MethodRelativeElement: func(v any, opts ...i18n.Options) any {
			return h.RelativeElement(v, opts...)
		},
		MethodPlural: func(v any, opts ...i18n.Options) string { return h.Plural(v, opts...) },
		MethodMessage: func(desc any, values ...i18n.M) (any, error) {
			d, err := descriptor(desc)
			if err != nil {
				return nil, err
			}
			return h.Message(d, values...), nil
		},
		MethodMessageElement: func(desc any, values ...i18n.M) (any, error) {
			d, err := descriptor(desc)
			if err != nil {
				return nil, err
			}
			return h.MessageElement(d, merge(values)), nil
		},
		MethodHTMLMessage: func(desc any, values ...i18n.M) (any, error) {
			d, err := descriptor(desc)
			if err != nil {
				return nil, err
			}
			return trusted(h.HTMLMessage(d, values...)), nil
		},
		MethodHTMLMessageElement: func(desc any, values ...i18n.M) (any, error) {
			d, err := descriptor(desc)
			if err != nil {
				return nil, err
			}
			return h.HTMLMessageElement(d, merge(values)), nil
		},
	}
}

func descriptor(v any) (i18n.MessageDescriptor, error) {
	switch d := v.(type) {
	case string:
		return i18n.MessageDescriptor{ID: d}, nil
	case i18n.MessageDescriptor:
		return d, nil
	case *i18n.MessageDescriptor:
		if d != nil {
			return *d, nil
		}
	}
	return i18n.MessageDescriptor{}, fmt.Errorf("markup: message descriptor must be an id or MessageDescriptor, got %T", v)
}

func merge(values []i18n.M) i18n.M {
	if len(values) == 1 {
		return values[0]
	}
	out := make(i18n.M)
	for _, m := range values {
		maps.Copy(out, m)
	}
	return out
}
