package selector

// Action tells RewriteList what to do with a simple selector.
type Action int

const (
	// Keep leaves the simple selector in place.
	Keep Action = iota
	// Remove drops the simple selector from its compound. A compound left
	// without simples becomes the universal selector.
	Remove
	// Drop discards the whole complex selector holding the simple.
	Drop
)

// Visitor decides the fate of a single simple selector.
type Visitor func(s Simple) Action

// RewriteList rebuilds list applying visit to every simple selector,
// including those nested in selector pseudo arguments. A selector pseudo
// whose argument ends up empty is removed when it is :not and drops its
// complex selector otherwise. Subtrees that did not change are shared with
// the input, which is never modified. The result is never nil.
func RewriteList(list *List, visit Visitor) *List {
	result, _ := rewriteList(list, visit)
	return result
}

// RemovePlaceholders drops every complex selector that references a
// placeholder, so nothing invisible reaches the output.
func RemovePlaceholders(list *List) *List {
	return RewriteList(list, func(s Simple) Action {
		if s.Kind == KindPlaceholder {
			return Drop
		}
		return Keep
	})
}

func rewriteList(list *List, visit Visitor) (*List, bool) {
	if list == nil {
		return &List{}, false
	}
	var (
		complexes []*Complex
		changed   bool
	)
	for _, c := range list.Components {
		rewritten, ok := rewriteComplex(c, visit)
		if !ok {
			changed = true
			continue
		}
		if rewritten != c {
			changed = true
		}
		complexes = append(complexes, rewritten)
	}
	if !changed {
		return list, false
	}
	return &List{Components: complexes}, true
}

// rewriteComplex returns false when the complex selector has to be dropped.
func rewriteComplex(c *Complex, visit Visitor) (*Complex, bool) {
	if c.IsImpossible() {
		return nil, false
	}
	var components []Component
	for i, comp := range c.Components {
		if comp.IsCombinator() {
			if components != nil {
				components = append(components, comp)
			}
			continue
		}
		rewritten, ok := rewriteCompound(comp.Compound, visit)
		if !ok {
			return nil, false
		}
		if rewritten != comp.Compound && components == nil {
			components = make([]Component, i, len(c.Components))
			copy(components, c.Components[:i])
		}
		if components != nil {
			components = append(components, CompoundComponent(rewritten))
		}
	}
	if components == nil {
		return c, true
	}
	return &Complex{Components: components, LineBreak: c.LineBreak}, true
}

// rewriteCompound returns false when the enclosing complex has to be dropped.
func rewriteCompound(c *Compound, visit Visitor) (*Compound, bool) {
	var (
		simples []Simple
		changed bool
	)
	for i, s := range c.Components {
		keep := true
		if s.Kind == KindPseudo && s.Selector != nil {
			inner, innerChanged := rewriteList(s.Selector, visit)
			switch {
			case inner.IsEmpty() && s.NormalizedName() == "not":
				keep = false
			case inner.IsEmpty():
				return nil, false
			case innerChanged:
				s = s.WithSelector(inner)
			}
		}
		if keep {
			switch visit(s) {
			case Drop:
				return nil, false
			case Remove:
				keep = false
			}
		}
		if !changed && (!keep || s.Selector != c.Components[i].Selector) {
			changed = true
			simples = make([]Simple, i, len(c.Components))
			copy(simples, c.Components[:i])
		}
		if changed && keep {
			simples = append(simples, s)
		}
	}
	if !changed {
		return c, true
	}
	if len(simples) == 0 {
		simples = []Simple{Universal("")}
	}
	return c.with(simples), true
}
