package selector

import "fmt"

// Combinator is an explicit relation between two adjacent compounds. The
// descendant combinator is implicit: two compounds next to each other.
type Combinator int

const (
	CombinatorChild    Combinator = iota + 1 // >
	CombinatorGeneral                        // ~
	CombinatorAdjacent                       // +
)

// String returns the CSS text of the combinator.
func (c Combinator) String() string {
	switch c {
	case CombinatorChild:
		return ">"
	case CombinatorGeneral:
		return "~"
	case CombinatorAdjacent:
		return "+"
	default:
		return fmt.Sprintf("Combinator(%d)", int(c))
	}
}

// Component is one step of a complex selector: either a compound or a
// combinator, never both.
type Component struct {
	Compound   *Compound
	Combinator Combinator
}

// CompoundComponent wraps a compound selector.
func CompoundComponent(c *Compound) Component {
	return Component{Compound: c}
}

// CombinatorComponent wraps a combinator.
func CombinatorComponent(c Combinator) Component {
	return Component{Combinator: c}
}

func (c Component) IsCompound() bool {
	return c.Compound != nil
}

func (c Component) IsCombinator() bool {
	return c.Compound == nil
}

func (c Component) Equal(o Component) bool {
	if c.IsCompound() != o.IsCompound() {
		return false
	}
	if c.IsCompound() {
		return c.Compound.Equal(o.Compound)
	}
	return c.Combinator == o.Combinator
}

// Complex is a path of compounds and combinators, one comma-free selector.
type Complex struct {
	Components []Component
	// LineBreak is set when the selector was preceded by a line break in the
	// enclosing list.
	LineBreak bool
}

// NewComplex returns a complex selector made of components.
func NewComplex(components ...Component) *Complex {
	return &Complex{Components: components}
}

func (c *Complex) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Components)
}

// Base returns the trailing compound, or nil when the selector is empty or
// ends with a combinator.
func (c *Complex) Base() *Compound {
	if c.Len() == 0 {
		return nil
	}
	return c.Components[len(c.Components)-1].Compound
}

// SingleCompound returns the only compound of a one-component selector.
func (c *Complex) SingleCompound() (*Compound, bool) {
	if c.Len() != 1 || !c.Components[0].IsCompound() {
		return nil, false
	}
	return c.Components[0].Compound, true
}

// IsInvisible reports whether any compound of c is invisible.
func (c *Complex) IsInvisible() bool {
	if c == nil {
		return false
	}
	for _, comp := range c.Components {
		if comp.IsCompound() && comp.Compound.IsInvisible() {
			return true
		}
	}
	return false
}

// IsImpossible reports whether c has no compound left at all.
func (c *Complex) IsImpossible() bool {
	if c == nil {
		return true
	}
	for _, comp := range c.Components {
		if comp.IsCompound() {
			return false
		}
	}
	return true
}

func (c *Complex) Equal(o *Complex) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return componentsEqual(c.Components, o.Components)
}

func componentsEqual(a, b []Component) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
