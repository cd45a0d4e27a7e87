package selector

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Kind identifies the variant of a simple selector.
type Kind int

const (
	KindType        Kind = iota // div, *, ns|div
	KindClass                   // .name
	KindID                      // #name
	KindAttribute               // [name op value modifier]
	KindPseudo                  // :name, ::name, :name(arg)
	KindPlaceholder             // %name
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindType:
		return "type"
	case KindClass:
		return "class"
	case KindID:
		return "id"
	case KindAttribute:
		return "attribute"
	case KindPseudo:
		return "pseudo"
	case KindPlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Simple is a single atomic selector test. Only the fields relevant to Kind
// are set, the rest stay zero.
type Simple struct {
	Kind Kind
	Name string
	// Namespace is empty when no namespace is asserted, "*" for any namespace.
	// Used by type and attribute selectors.
	Namespace string

	// Attribute payload. Op is empty for a presence test ([href]), otherwise
	// one of "=", "~=", "|=", "^=", "$=", "*=".
	Op       string
	Value    string
	Modifier string

	// Pseudo payload. Element is true for pseudo-elements (::before).
	// Argument holds the raw argument text, Selector the argument when it is
	// itself a selector (:not(.a), :nth-child(2n of .a)).
	Element  bool
	Argument string
	Selector *List
}

// Type returns a type selector. Use "*" as name for the universal selector.
func Type(namespace, name string) Simple {
	return Simple{Kind: KindType, Name: name, Namespace: namespace}
}

// Universal returns the universal selector with an optional namespace.
func Universal(namespace string) Simple {
	return Type(namespace, "*")
}

func Class(name string) Simple {
	return Simple{Kind: KindClass, Name: name}
}

func ID(name string) Simple {
	return Simple{Kind: KindID, Name: name}
}

func Placeholder(name string) Simple {
	return Simple{Kind: KindPlaceholder, Name: name}
}

// Attribute returns an attribute selector. Pass an empty op for a presence test.
func Attribute(name, op, value, modifier string) Simple {
	return Simple{Kind: KindAttribute, Name: name, Op: op, Value: value, Modifier: modifier}
}

// PseudoClass returns a pseudo-class with an optional raw argument.
func PseudoClass(name, argument string) Simple {
	return Simple{Kind: KindPseudo, Name: name, Argument: argument}
}

// PseudoElement returns a pseudo-element with an optional raw argument.
func PseudoElement(name, argument string) Simple {
	return Simple{Kind: KindPseudo, Name: name, Argument: argument, Element: true}
}

// SelectorPseudo returns a pseudo selector whose argument is a selector list,
// for example :not(.a) or ::slotted(span).
func SelectorPseudo(name string, element bool, argument string, sel *List) Simple {
	return Simple{Kind: KindPseudo, Name: name, Element: element, Argument: argument, Selector: sel}
}

// IsUniversal reports whether s is the universal type selector (with any namespace).
func (s Simple) IsUniversal() bool {
	return s.Kind == KindType && s.Name == "*"
}

// anyNamespace reports whether s places no constraint on the namespace.
func (s Simple) anyNamespace() bool {
	return s.Namespace == "" || s.Namespace == "*"
}

// IsPseudoElement reports whether s selects a pseudo-element. The four CSS2
// pseudo-elements are recognized in their single colon form too.
func (s Simple) IsPseudoElement() bool {
	if s.Kind != KindPseudo {
		return false
	}
	if s.Element {
		return true
	}
	switch s.NormalizedName() {
	case "before", "after", "first-line", "first-letter":
		return true
	}
	return false
}

// IsPseudoClass reports whether s is a pseudo selector that is not a pseudo-element.
func (s Simple) IsPseudoClass() bool {
	return s.Kind == KindPseudo && !s.IsPseudoElement()
}

// NormalizedName returns the pseudo name case folded and without vendor
// prefix (-moz-any becomes any). For other kinds it returns Name.
func (s Simple) NormalizedName() string {
	if s.Kind != KindPseudo {
		return s.Name
	}
	return unvendor(foldName(s.Name))
}

// WithSelector returns a copy of the pseudo selector s with a new argument selector.
func (s Simple) WithSelector(sel *List) Simple {
	s.Selector = sel
	return s
}

// Equal reports structural equality. Pseudo names compare case insensitively.
func (s Simple) Equal(o Simple) bool {
	if s.Kind != o.Kind {
		return false
	}
	switch s.Kind {
	case KindType:
		return s.Name == o.Name && s.Namespace == o.Namespace
	case KindAttribute:
		return s.Name == o.Name && s.Namespace == o.Namespace &&
			s.Op == o.Op && s.Value == o.Value && s.Modifier == o.Modifier
	case KindPseudo:
		if s.Element != o.Element || s.Argument != o.Argument || foldName(s.Name) != foldName(o.Name) {
			return false
		}
		if s.Selector == nil || o.Selector == nil {
			return s.Selector == nil && o.Selector == nil
		}
		return s.Selector.Equal(o.Selector)
	default:
		return s.Name == o.Name
	}
}

// Key returns a string that is identical for structurally equal selectors:
// pseudo names are folded and selector arguments are written in a canonical
// order, so that Equal always implies equal keys.
func (s Simple) Key() string {
	if s.Kind != KindPseudo {
		return s.String()
	}
	var sb strings.Builder
	sb.WriteByte(':')
	if s.Element {
		sb.WriteByte(':')
	}
	sb.WriteString(foldName(s.Name))
	if s.Argument == "" && s.Selector == nil {
		return sb.String()
	}
	sb.WriteByte('(')
	sb.WriteString(s.Argument)
	if s.Selector != nil {
		if s.Argument != "" {
			sb.WriteString(" of ")
		}
		sb.WriteString(s.Selector.key())
	}
	sb.WriteByte(')')
	return sb.String()
}

// key joins the sorted distinct keys of the complexes, lists being sets.
func (l *List) key() string {
	keys := make([]string, 0, l.Len())
	for _, c := range l.components() {
		keys = append(keys, c.key())
	}
	return joinSorted(keys, ", ")
}

func (c *Complex) key() string {
	keys := make([]string, 0, c.Len())
	for _, comp := range c.Components {
		if comp.IsCompound() {
			keys = append(keys, comp.Compound.key())
		} else {
			keys = append(keys, comp.Combinator.String())
		}
	}
	return strings.Join(keys, " ")
}

// key joins the sorted distinct keys of the simples, compounds being sets.
func (c *Compound) key() string {
	keys := make([]string, 0, c.Len())
	for _, s := range c.Components {
		keys = append(keys, s.Key())
	}
	return joinSorted(keys, "")
}

func joinSorted(keys []string, sep string) string {
	slices.Sort(keys)
	return strings.Join(slices.Compact(keys), sep)
}

func foldName(name string) string {
	if isASCIILower(name) {
		return name
	}
	return cases.Fold().String(name)
}

func isASCIILower(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'A' && c <= 'Z' || c >= 0x80 {
			return false
		}
	}
	return true
}

func unvendor(name string) string {
	if len(name) < 2 || name[0] != '-' || name[1] == '-' {
		return name
	}
	if i := strings.IndexByte(name[2:], '-'); i >= 0 {
		return name[i+3:]
	}
	return name
}

// hasSimple reports whether simples contains s.
func hasSimple(simples []Simple, s Simple) bool {
	for _, x := range simples {
		if x.Equal(s) {
			return true
		}
	}
	return false
}
