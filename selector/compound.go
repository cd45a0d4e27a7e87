package selector

// Compound is an AND of simple selectors applied to a single element.
// An empty compound matches anything and only shows up inside unification.
type Compound struct {
	Components []Simple
	// HasRealParent is set when the compound was written with an explicit
	// parent reference (&).
	HasRealParent bool
	// Extended is set on compounds produced by @extend resolution.
	Extended bool
}

// NewCompound returns a compound selector made of simples.
func NewCompound(simples ...Simple) *Compound {
	return &Compound{Components: simples}
}

func (c *Compound) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Components)
}

func (c *Compound) IsEmpty() bool {
	return c.Len() == 0
}

// Contains reports whether c has a simple selector structurally equal to s.
func (c *Compound) Contains(s Simple) bool {
	if c == nil {
		return false
	}
	return hasSimple(c.Components, s)
}

// Equal compares compounds as sets of simple selectors.
func (c *Compound) Equal(o *Compound) bool {
	if c == o {
		return true
	}
	if c.Len() != o.Len() {
		return false
	}
	for _, s := range o.Components {
		if !c.Contains(s) {
			return false
		}
	}
	for _, s := range c.Components {
		if !o.Contains(s) {
			return false
		}
	}
	return true
}

// IsInvisible reports whether c can never be emitted: it holds a placeholder,
// or a selector pseudo other than :not whose argument is invisible.
func (c *Compound) IsInvisible() bool {
	if c == nil {
		return false
	}
	for _, s := range c.Components {
		if s.isInvisible() {
			return true
		}
	}
	return false
}

func (s Simple) isInvisible() bool {
	switch s.Kind {
	case KindPlaceholder:
		return true
	case KindPseudo:
		return s.Selector != nil && s.NormalizedName() != "not" && s.Selector.IsInvisible()
	}
	return false
}

// with returns a copy of c holding components.
func (c *Compound) with(components []Simple) *Compound {
	return &Compound{Components: components, HasRealParent: c.HasRealParent, Extended: c.Extended}
}

// id returns the first ID selector of c.
func (c *Compound) id() (Simple, bool) {
	for _, s := range c.Components {
		if s.Kind == KindID {
			return s, true
		}
	}
	return Simple{}, false
}
