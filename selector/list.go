package selector

// List is an OR of complex selectors. Storage keeps insertion order for
// deterministic output, equality ignores it.
type List struct {
	Components []*Complex
}

// NewList returns a selector list made of complexes.
func NewList(complexes ...*Complex) *List {
	return &List{Components: complexes}
}

func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Components)
}

func (l *List) IsEmpty() bool {
	return l.Len() == 0
}

// Contains reports whether l holds a complex selector equal to c.
func (l *List) Contains(c *Complex) bool {
	if l == nil {
		return false
	}
	for _, x := range l.Components {
		if x.Equal(c) {
			return true
		}
	}
	return false
}

// Equal compares lists as sets of complex selectors.
func (l *List) Equal(o *List) bool {
	if l == o {
		return true
	}
	for _, c := range l.components() {
		if !o.Contains(c) {
			return false
		}
	}
	for _, c := range o.components() {
		if !l.Contains(c) {
			return false
		}
	}
	return true
}

// IsInvisible reports whether every complex selector of l is invisible.
func (l *List) IsInvisible() bool {
	for _, c := range l.components() {
		if !c.IsInvisible() {
			return false
		}
	}
	return true
}

func (l *List) components() []*Complex {
	if l == nil {
		return nil
	}
	return l.Components
}
