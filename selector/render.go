package selector

import (
	"strings"

	"github.com/tdewolff/parse/v2/css"
)

// String returns the CSS text of the simple selector.
func (s Simple) String() string {
	var sb strings.Builder
	s.writeTo(&sb)
	return sb.String()
}

func (s Simple) writeTo(sb *strings.Builder) {
	switch s.Kind {
	case KindType:
		writeNamespaced(sb, s.Namespace, s.Name)
	case KindClass:
		sb.WriteByte('.')
		sb.WriteString(s.Name)
	case KindID:
		sb.WriteByte('#')
		sb.WriteString(s.Name)
	case KindPlaceholder:
		sb.WriteByte('%')
		sb.WriteString(s.Name)
	case KindAttribute:
		sb.WriteByte('[')
		writeNamespaced(sb, s.Namespace, s.Name)
		if s.Op != "" {
			sb.WriteString(s.Op)
			writeAttributeValue(sb, s.Value)
			if s.Modifier != "" {
				sb.WriteByte(' ')
				sb.WriteString(s.Modifier)
			}
		}
		sb.WriteByte(']')
	case KindPseudo:
		sb.WriteByte(':')
		if s.Element {
			sb.WriteByte(':')
		}
		sb.WriteString(s.Name)
		if s.Argument == "" && s.Selector == nil {
			return
		}
		sb.WriteByte('(')
		sb.WriteString(s.Argument)
		if s.Selector != nil {
			if s.Argument != "" {
				sb.WriteString(" of ")
			}
			s.Selector.writeTo(sb)
		}
		sb.WriteByte(')')
	}
}

func writeNamespaced(sb *strings.Builder, namespace, name string) {
	if namespace != "" {
		sb.WriteString(namespace)
		sb.WriteByte('|')
	}
	sb.WriteString(name)
}

// writeAttributeValue emits value bare when it is a valid CSS identifier and
// double-quoted otherwise.
func writeAttributeValue(sb *strings.Builder, value string) {
	if value != "" && css.IsIdent([]byte(value)) {
		sb.WriteString(value)
		return
	}
	sb.WriteByte('"')
	for _, r := range value {
		switch r {
		case '"', '\\':
			sb.WriteByte('\\')
			sb.WriteRune(r)
		case '\n':
			sb.WriteString(`\a `)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
}

// String returns the CSS text of the compound selector.
func (c *Compound) String() string {
	var sb strings.Builder
	c.writeTo(&sb)
	return sb.String()
}

func (c *Compound) writeTo(sb *strings.Builder) {
	if c == nil {
		return
	}
	for _, s := range c.Components {
		s.writeTo(sb)
	}
}

// String returns the CSS text of the complex selector.
func (c *Complex) String() string {
	var sb strings.Builder
	c.writeTo(&sb)
	return sb.String()
}

func (c *Complex) writeTo(sb *strings.Builder) {
	if c == nil {
		return
	}
	writeComponents(sb, c.Components)
}

func writeComponents(sb *strings.Builder, components []Component) {
	for i, comp := range components {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if comp.IsCompound() {
			comp.Compound.writeTo(sb)
		} else {
			sb.WriteString(comp.Combinator.String())
		}
	}
}

// String returns the CSS text of the selector list.
func (l *List) String() string {
	var sb strings.Builder
	l.writeTo(&sb)
	return sb.String()
}

func (l *List) writeTo(sb *strings.Builder) {
	for i, c := range l.components() {
		if i > 0 {
			sb.WriteString(", ")
		}
		c.writeTo(sb)
	}
}
