// Package selectortest builds selector trees from short CSS strings for use
// in tests. It understands only the subset of selector syntax needed for
// fixtures and panics on anything else.
package selectortest

import (
	"fmt"
	"strings"

	"sassext/selector"
)

// pseudos whose argument is a selector list
var selectorPseudos = map[string]bool{
	"not":          true,
	"is":           true,
	"matches":      true,
	"any":          true,
	"where":        true,
	"has":          true,
	"host":         true,
	"host-context": true,
	"slotted":      true,
	"current":      true,
}

// List parses a comma separated selector list.
func List(text string) *selector.List {
	p := &parser{src: text}
	list := p.list()
	p.skipSpace()
	if !p.eof() {
		p.fail("unexpected input")
	}
	return list
}

// Complex parses a single complex selector.
func Complex(text string) *selector.Complex {
	list := List(text)
	if list.Len() != 1 {
		panic(fmt.Sprintf("selectortest: %q is not a single complex selector", text))
	}
	return list.Components[0]
}

// Compound parses a single compound selector.
func Compound(text string) *selector.Compound {
	c, ok := Complex(text).SingleCompound()
	if !ok {
		panic(fmt.Sprintf("selectortest: %q is not a single compound selector", text))
	}
	return c
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) fail(msg string) {
	panic(fmt.Sprintf("selectortest: %s at %d in %q", msg, p.pos, p.src))
}

func (p *parser) skipSpace() bool {
	start := p.pos
	for !p.eof() && (p.peek() == ' ' || p.peek() == '\n' || p.peek() == '\t') {
		p.pos++
	}
	return p.pos > start
}

func (p *parser) list() *selector.List {
	list := &selector.List{}
	for {
		p.skipSpace()
		list.Components = append(list.Components, p.complex())
		p.skipSpace()
		if p.peek() != ',' {
			return list
		}
		p.pos++
	}
}

func (p *parser) complex() *selector.Complex {
	c := &selector.Complex{}
	for {
		p.skipSpace()
		switch p.peek() {
		case '>':
			p.pos++
			c.Components = append(c.Components, selector.CombinatorComponent(selector.CombinatorChild))
			continue
		case '~':
			p.pos++
			c.Components = append(c.Components, selector.CombinatorComponent(selector.CombinatorGeneral))
			continue
		case '+':
			p.pos++
			c.Components = append(c.Components, selector.CombinatorComponent(selector.CombinatorAdjacent))
			continue
		case 0, ',', ')':
			if len(c.Components) == 0 {
				p.fail("empty selector")
			}
			return c
		}
		c.Components = append(c.Components, selector.CompoundComponent(p.compound()))
	}
}

func (p *parser) compound() *selector.Compound {
	c := &selector.Compound{}
	for {
		switch ch := p.peek(); {
		case ch == '&':
			p.pos++
			c.HasRealParent = true
		case ch == '.':
			p.pos++
			c.Components = append(c.Components, selector.Class(p.ident()))
		case ch == '#':
			p.pos++
			c.Components = append(c.Components, selector.ID(p.ident()))
		case ch == '%':
			p.pos++
			c.Components = append(c.Components, selector.Placeholder(p.ident()))
		case ch == '[':
			p.pos++
			c.Components = append(c.Components, p.attribute())
		case ch == ':':
			p.pos++
			c.Components = append(c.Components, p.pseudo())
		case ch == '*' || ch == '|' || isIdentByte(ch):
			c.Components = append(c.Components, p.typeSelector())
		default:
			if len(c.Components) == 0 && !c.HasRealParent {
				p.fail("expected simple selector")
			}
			return c
		}
	}
}

func (p *parser) typeSelector() selector.Simple {
	name := p.nameOrStar()
	if p.peek() == '|' {
		p.pos++
		return selector.Type(name, p.nameOrStar())
	}
	return selector.Type("", name)
}

func (p *parser) nameOrStar() string {
	if p.peek() == '*' {
		p.pos++
		return "*"
	}
	if p.peek() == '|' {
		return ""
	}
	return p.ident()
}

func (p *parser) attribute() selector.Simple {
	p.skipSpace()
	name := p.ident()
	namespace := ""
	if p.peek() == '|' && p.pos+1 < len(p.src) && p.src[p.pos+1] != '=' {
		p.pos++
		namespace, name = name, p.ident()
	}
	p.skipSpace()
	var op, value, modifier string
	if p.peek() != ']' {
		start := p.pos
		for !p.eof() && p.peek() != '=' {
			p.pos++
		}
		p.pos++
		op = p.src[start:p.pos]
		p.skipSpace()
		if q := p.peek(); q == '"' || q == '\'' {
			p.pos++
			end := strings.IndexByte(p.src[p.pos:], q)
			if end < 0 {
				p.fail("unterminated string")
			}
			value = p.src[p.pos : p.pos+end]
			p.pos += end + 1
		} else {
			value = p.ident()
		}
		if p.skipSpace() && p.peek() != ']' {
			modifier = p.ident()
			p.skipSpace()
		}
	}
	if p.peek() != ']' {
		p.fail("expected ]")
	}
	p.pos++
	sel := selector.Attribute(name, op, value, modifier)
	sel.Namespace = namespace
	return sel
}

func (p *parser) pseudo() selector.Simple {
	element := false
	if p.peek() == ':' {
		p.pos++
		element = true
	}
	name := p.ident()
	if p.peek() != '(' {
		if element {
			return selector.PseudoElement(name, "")
		}
		return selector.PseudoClass(name, "")
	}
	p.pos++

	lower := strings.ToLower(name)
	var (
		argument string
		sel      *selector.List
	)
	switch {
	case selectorPseudos[lower]:
		sel = p.list()
		p.skipSpace()
	case lower == "nth-child" || lower == "nth-last-child":
		start := p.pos
		for !p.eof() && p.peek() != ')' && !strings.HasPrefix(p.src[p.pos:], " of ") {
			p.pos++
		}
		argument = strings.TrimSpace(p.src[start:p.pos])
		if strings.HasPrefix(p.src[p.pos:], " of ") {
			p.pos += len(" of ")
			sel = p.list()
			p.skipSpace()
		}
	default:
		end := strings.IndexByte(p.src[p.pos:], ')')
		if end < 0 {
			p.fail("unterminated argument")
		}
		argument = p.src[p.pos : p.pos+end]
		p.pos += end
	}
	if p.peek() != ')' {
		p.fail("expected )")
	}
	p.pos++
	if sel != nil {
		return selector.SelectorPseudo(name, element, argument, sel)
	}
	if element {
		return selector.PseudoElement(name, argument)
	}
	return selector.PseudoClass(name, argument)
}

func (p *parser) ident() string {
	start := p.pos
	for !p.eof() && isIdentByte(p.peek()) {
		p.pos++
	}
	if start == p.pos {
		p.fail("expected identifier")
	}
	return p.src[start:p.pos]
}

func isIdentByte(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' ||
		ch == '-' || ch == '_' || ch >= 0x80
}
