package selector

// unifySimple adds s to the simples of one compound. It returns false when no
// element can match both s and into. The input slice is never modified.
func unifySimple(s Simple, into []Simple) ([]Simple, bool) {
	if s.Kind == KindType {
		return unifyType(s, into)
	}
	if len(into) == 1 && into[0].IsUniversal() {
		// *.a is .a, but ns|*.a keeps its namespace constraint.
		return unifyType(into[0], []Simple{s})
	}
	switch s.Kind {
	case KindID:
		for _, x := range into {
			if x.Kind == KindID && x.Name != s.Name {
				return nil, false
			}
		}
	case KindPseudo:
		if s.IsPseudoElement() {
			for _, x := range into {
				if x.IsPseudoElement() && !x.Equal(s) {
					// only one pseudo-element per compound
					return nil, false
				}
			}
		}
	}
	if hasSimple(into, s) {
		return into, true
	}
	return insertBeforePseudoElement(s, into), true
}

// insertBeforePseudoElement keeps pseudo-elements at the end of the compound.
func insertBeforePseudoElement(s Simple, into []Simple) []Simple {
	result := make([]Simple, 0, len(into)+1)
	added := false
	for _, x := range into {
		if !added && x.IsPseudoElement() {
			result = append(result, s)
			added = true
		}
		result = append(result, x)
	}
	if !added {
		result = append(result, s)
	}
	return result
}

// unifyType merges the type selector t into the simples of one compound.
// Type selectors always lead their compound.
func unifyType(t Simple, into []Simple) ([]Simple, bool) {
	if len(into) == 0 {
		return []Simple{t}, true
	}
	if into[0].Kind == KindType {
		unified, ok := unifyTypes(t, into[0])
		if !ok {
			return nil, false
		}
		result := make([]Simple, len(into))
		copy(result, into)
		result[0] = unified
		return result, true
	}
	if !t.IsUniversal() || !t.anyNamespace() {
		result := make([]Simple, 0, len(into)+1)
		result = append(result, t)
		return append(result, into...), true
	}
	return into, true
}

// unifyTypes reconciles two type selectors: concrete namespaces and names win
// over universal ones, two different concrete values fail.
func unifyTypes(a, b Simple) (Simple, bool) {
	namespace := a.Namespace
	if a.Namespace != b.Namespace && !b.anyNamespace() {
		if !a.anyNamespace() {
			return Simple{}, false
		}
		namespace = b.Namespace
	}
	name := a.Name
	if a.Name != b.Name && b.Name != "*" {
		if a.Name != "*" {
			return Simple{}, false
		}
		name = b.Name
	}
	return Type(namespace, name), true
}

// UnifyType reconciles two type selectors, see unifyTypes. It returns false
// when either argument is not a type selector.
func UnifyType(a, b Simple) (Simple, bool) {
	if a.Kind != KindType || b.Kind != KindType {
		return Simple{}, false
	}
	return unifyTypes(a, b)
}

// UnifySimple returns a compound matching elements matched by both s and c,
// or nil when there is none.
func UnifySimple(s Simple, c *Compound) *Compound {
	if c == nil {
		return NewCompound(s)
	}
	simples, ok := unifySimple(s, c.Components)
	if !ok {
		return nil
	}
	return c.with(simples)
}

// UnifyCompound returns a compound matching elements matched by both a and b,
// or nil when there is none. Simples of b are folded into a, so the result
// keeps the order of a followed by what b adds. An empty compound is the
// identity.
func UnifyCompound(a, b *Compound) *Compound {
	if a.IsEmpty() {
		return b
	}
	if b.IsEmpty() {
		return a
	}
	result := a.Components
	for _, s := range b.Components {
		var ok bool
		if result, ok = unifySimple(s, result); !ok {
			return nil
		}
	}
	return a.with(result)
}

// unifyComplex unifies the bases of several selector paths and weaves their
// prefixes. It returns nil when the bases cannot be unified or when any path
// does not end in a compound.
func unifyComplex(complexes [][]Component) [][]Component {
	switch len(complexes) {
	case 0:
		return nil
	case 1:
		return complexes
	}

	var base *Compound
	for i, complex := range complexes {
		if len(complex) == 0 || !complex[len(complex)-1].IsCompound() {
			return nil
		}
		last := complex[len(complex)-1].Compound
		if i == 0 {
			base = last
			continue
		}
		if base = UnifyCompound(base, last); base == nil {
			return nil
		}
	}

	prefixes := make([][]Component, len(complexes))
	for i, complex := range complexes {
		prefixes[i] = cloneComponents(complex[:len(complex)-1])
	}
	last := len(prefixes) - 1
	prefixes[last] = append(prefixes[last], CompoundComponent(base))
	return Weave(prefixes)
}

// UnifyWith returns every selector path matching elements matched by both c
// and o. The result is empty when they cannot be unified.
func (c *Complex) UnifyWith(o *Complex) *List {
	list := &List{}
	for _, path := range unifyComplex([][]Component{c.Components, o.Components}) {
		list.Components = append(list.Components, &Complex{Components: path})
	}
	return list
}

// UnifyWith unifies every complex selector of l with every complex selector
// of o and collects the non-empty results.
func (l *List) UnifyWith(o *List) *List {
	list := &List{}
	for _, c1 := range l.components() {
		for _, c2 := range o.components() {
			list.Components = append(list.Components, c1.UnifyWith(c2).Components...)
		}
	}
	return list
}

func cloneComponents(components []Component) []Component {
	result := make([]Component, len(components), len(components)+1)
	copy(result, components)
	return result
}
