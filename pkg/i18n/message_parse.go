package i18n

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type nodeKind uint8

const (
	nodeText nodeKind = iota
	nodeArg
	nodePlural
	nodeSelect
	nodePound
	nodeTag
)

// node is one element of a parsed message pattern.
type node struct {
	text     string // nodeText
	name     string // argument or tag name
	argType  string // nodeArg: "", number, date, time
	style    string // nodeArg style or preset name
	options  []option
	children []node // nodeTag
	offset   float64
	kind     nodeKind
	ordinal  bool
}

type option struct {
	selector string
	nodes    []node
}

type parser struct {
	src          []rune
	pos          int
	requireOther bool
}

// parsePattern parses an ICU MessageFormat pattern:
//
//	Hello, {name}!
//	{count, plural, offset:1 =0 {nobody} one {# guest} other {# guests}}
//	{gender, select, female {she} male {he} other {they}}
//	{n, selectordinal, one {#st} two {#nd} few {#rd} other {#th}}
//	{amount, number, currency} {when, date, long} {when, time, short}
//	Read the <b>docs</b>
//
// An apostrophe quotes syntax characters ('{' → {) and '' is a literal
// apostrophe.
func parsePattern(pattern string, requireOther bool) ([]node, error) {
	p := &parser{src: []rune(pattern), requireOther: requireOther}
	return p.parseNodes(false, "", false)
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s at offset %d", ErrSyntax, fmt.Sprintf(format, args...), p.pos)
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

// parseNodes reads nodes until end of input, a '}' closing an enclosing
// option body (nested) or the closing tag of tag.
func (p *parser) parseNodes(inPlural bool, tag string, nested bool) ([]node, error) {
	var (
		nodes []node
		text  strings.Builder
	)
	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, node{kind: nodeText, text: text.String()})
			text.Reset()
		}
	}

	for !p.eof() {
		c := p.src[p.pos]
		switch {
		case c == '{':
			flush()
			n, err := p.parseArgument(inPlural)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, n)

		case c == '}':
			if !nested || tag != "" {
				return nil, p.errorf("unexpected '}'")
			}
			flush()
			return nodes, nil

		case c == '#' && inPlural:
			flush()
			nodes = append(nodes, node{kind: nodePound})
			p.pos++

		case c == '<':
			name, closing, selfClosing, end, ok := p.scanTag()
			if !ok {
				text.WriteRune(c)
				p.pos++
				continue
			}
			flush()
			p.pos = end
			if closing {
				if name != tag {
					return nil, p.errorf("unexpected closing tag </%s>", name)
				}
				return nodes, nil
			}
			n := node{kind: nodeTag, name: name}
			if !selfClosing {
				children, err := p.parseNodes(inPlural, name, false)
				if err != nil {
					return nil, err
				}
				n.children = children
			}
			nodes = append(nodes, n)

		case c == '\'':
			p.parseApostrophe(&text, inPlural)

		default:
			text.WriteRune(c)
			p.pos++
		}
	}

	if tag != "" {
		return nil, p.errorf("unclosed tag <%s>", tag)
	}
	if nested {
		return nil, p.errorf("unclosed '{'")
	}
	flush()
	return nodes, nil
}

// scanTag recognises <name>, </name> and <name/> at the current position
// without consuming input. Anything else is plain text.
func (p *parser) scanTag() (name string, closing, selfClosing bool, end int, ok bool) {
	i := p.pos + 1
	if i < len(p.src) && p.src[i] == '/' {
		closing = true
		i++
	}
	start := i
	for i < len(p.src) && isTagRune(p.src[i], i == start) {
		i++
	}
	if i == start {
		return "", false, false, 0, false
	}
	name = string(p.src[start:i])
	if !closing && i+1 < len(p.src) && p.src[i] == '/' && p.src[i+1] == '>' {
		return name, false, true, i + 2, true
	}
	if i >= len(p.src) || p.src[i] != '>' {
		return "", false, false, 0, false
	}
	return name, closing, false, i + 1, true
}

func isTagRune(r rune, first bool) bool {
	if first {
		return unicode.IsLetter(r)
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}

func isSyntaxRune(r rune, inPlural bool) bool {
	switch r {
	case '{', '}', '<', '>':
		return true
	case '#':
		return inPlural
	}
	return false
}

func (p *parser) parseApostrophe(text *strings.Builder, inPlural bool) {
	p.pos++ // opening apostrophe
	if p.eof() {
		text.WriteRune('\'')
		return
	}
	next := p.src[p.pos]
	if next == '\'' {
		text.WriteRune('\'')
		p.pos++
		return
	}
	if !isSyntaxRune(next, inPlural) {
		text.WriteRune('\'')
		return
	}
	for !p.eof() {
		c := p.src[p.pos]
		p.pos++
		if c != '\'' {
			text.WriteRune(c)
			continue
		}
		if p.peek() == '\'' {
			text.WriteRune('\'')
			p.pos++
			continue
		}
		return
	}
}

func (p *parser) readWord() string {
	start := p.pos
	for !p.eof() {
		c := p.src[p.pos]
		if unicode.IsSpace(c) || c == ',' || c == '{' || c == '}' {
			break
		}
		p.pos++
	}
	return string(p.src[start:p.pos])
}

func (p *parser) expect(r rune) error {
	p.skipSpace()
	if p.peek() != r {
		if p.eof() {
			return p.errorf("expected %q, got end of pattern", r)
		}
		return p.errorf("expected %q, got %q", r, p.peek())
	}
	p.pos++
	return nil
}

func (p *parser) parseArgument(inPlural bool) (node, error) {
	p.pos++ // '{'
	p.skipSpace()
	name := p.readWord()
	if name == "" {
		return node{}, p.errorf("expected argument name")
	}
	p.skipSpace()

	switch p.peek() {
	case '}':
		p.pos++
		return node{kind: nodeArg, name: name}, nil
	case ',':
		p.pos++
	default:
		return node{}, p.errorf("expected ',' or '}' after argument %q", name)
	}

	p.skipSpace()
	typ := p.readWord()
	p.skipSpace()

	switch typ {
	case KindNumber, KindDate, KindTime:
		n := node{kind: nodeArg, name: name, argType: typ}
		if p.peek() == '}' {
			p.pos++
			return n, nil
		}
		if err := p.expect(','); err != nil {
			return node{}, err
		}
		start := p.pos
		for !p.eof() && p.src[p.pos] != '}' {
			p.pos++
		}
		if p.eof() {
			return node{}, p.errorf("unclosed argument %q", name)
		}
		n.style = strings.TrimSpace(string(p.src[start:p.pos]))
		p.pos++
		return n, nil

	case "plural", "selectordinal":
		if err := p.expect(','); err != nil {
			return node{}, err
		}
		n := node{kind: nodePlural, name: name, ordinal: typ == "selectordinal"}
		p.skipSpace()
		if strings.HasPrefix(string(p.src[p.pos:]), "offset:") {
			p.pos += len("offset:")
			p.skipSpace()
			raw := p.readWord()
			off, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return node{}, p.errorf("invalid offset %q", raw)
			}
			n.offset = off
		}
		opts, err := p.parseOptions(name, true)
		if err != nil {
			return node{}, err
		}
		n.options = opts
		return n, nil

	case "select":
		if err := p.expect(','); err != nil {
			return node{}, err
		}
		opts, err := p.parseOptions(name, inPlural)
		if err != nil {
			return node{}, err
		}
		return node{kind: nodeSelect, name: name, options: opts}, nil
	}

	return node{}, p.errorf("unknown argument type %q", typ)
}

func (p *parser) parseOptions(name string, inPlural bool) ([]option, error) {
	var (
		opts     []option
		hasOther bool
	)
	for {
		p.skipSpace()
		if p.eof() {
			return nil, p.errorf("unclosed argument %q", name)
		}
		if p.peek() == '}' {
			p.pos++
			break
		}
		selector := p.readWord()
		if selector == "" {
			return nil, p.errorf("expected option selector in %q", name)
		}
		if err := p.expect('{'); err != nil {
			return nil, err
		}
		body, err := p.parseNodes(inPlural, "", true)
		if err != nil {
			return nil, err
		}
		p.pos++ // '}' closing the option body
		if selector == PluralOther {
			hasOther = true
		}
		opts = append(opts, option{selector: selector, nodes: body})
	}

	if len(opts) == 0 {
		return nil, p.errorf("argument %q has no options", name)
	}
	if p.requireOther && !hasOther {
		return nil, fmt.Errorf("%w: argument %q", ErrMissingOther, name)
	}
	return opts, nil
}
