package selector

// pseudo-classes whose selector argument matches a subset of what a bare
// simple selector from that argument matches
var subselectorPseudos = map[string]bool{
	"is":             true,
	"matches":        true,
	"where":          true,
	"any":            true,
	"nth-child":      true,
	"nth-last-child": true,
}

// IsSuperselectorOf reports whether every element matched by o is also
// matched by c.
func (c *Compound) IsSuperselectorOf(o *Compound) bool {
	return compoundIsSuperselector(c, o, nil)
}

// IsSuperselectorOf reports whether every element matched by o is also
// matched by c, taking combinators into account.
func (c *Complex) IsSuperselectorOf(o *Complex) bool {
	if c == nil || o == nil {
		return false
	}
	return complexIsSuperselector(c.Components, o.Components)
}

// IsSuperselectorOf reports whether every complex selector of o has a
// superselector in l.
func (l *List) IsSuperselectorOf(o *List) bool {
	return listIsSuperselector(l.components(), o.components())
}

func listIsSuperselector(list1, list2 []*Complex) bool {
	for _, c2 := range list2 {
		found := false
		for _, c1 := range list1 {
			if c1.IsSuperselectorOf(c2) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// complexIsParentSuperselector is like complexIsSuperselector, but compares
// parent sequences: both are given a shared temporary base before comparison.
func complexIsParentSuperselector(complex1, complex2 []Component) bool {
	if len(complex1) == 0 || len(complex2) == 0 {
		return false
	}
	if complex1[0].IsCombinator() || complex2[0].IsCombinator() {
		return false
	}
	if len(complex1) > len(complex2) {
		return false
	}
	base := CompoundComponent(NewCompound(Placeholder("<temp>")))
	return complexIsSuperselector(
		append(cloneComponents(complex1), base),
		append(cloneComponents(complex2), base),
	)
}

func complexIsSuperselector(complex1, complex2 []Component) bool {
	if len(complex1) == 0 || len(complex2) == 0 {
		return false
	}
	// trailing combinators make a selector neither super- nor subselector
	if endsWithCombinator(complex1) || endsWithCombinator(complex2) {
		return false
	}

	i1, i2 := 0, 0
	for {
		remaining1 := len(complex1) - i1
		remaining2 := len(complex2) - i2
		if remaining1 == 0 || remaining2 == 0 {
			return false
		}
		// a longer path is never a superselector of a shorter one
		if remaining1 > remaining2 {
			return false
		}
		if complex1[i1].IsCombinator() || complex2[i2].IsCombinator() {
			return false
		}
		compound1 := complex1[i1].Compound

		if remaining1 == 1 {
			return compoundIsSuperselector(compound1, complex2[len(complex2)-1].Compound,
				complex2[i2:len(complex2)-1])
		}

		// Find the first position where complex2[i2:after] is a subselector
		// of compound1. Consuming all of complex2 would leave nothing for the
		// rest of complex1, so stop before that.
		after := i2 + 1
		for ; after < len(complex2); after++ {
			compound2 := complex2[after-1]
			if compound2.IsCompound() &&
				compoundIsSuperselector(compound1, compound2.Compound, complex2[i2:after-1]) {
				break
			}
		}
		if after == len(complex2) {
			return false
		}

		next1 := complex1[i1+1]
		next2 := complex2[after]
		switch {
		case next1.IsCombinator():
			if next2.IsCompound() {
				return false
			}
			// .a ~ .b is a superselector of .a + .b, other combinators
			// have to match exactly
			if next1.Combinator == CombinatorGeneral {
				if next2.Combinator == CombinatorChild {
					return false
				}
			} else if next2.Combinator != next1.Combinator {
				return false
			}
			// .a > .c is not a superselector of .a > .b > .c or .a > .b .c
			if remaining1 == 3 && remaining2 > 3 {
				return false
			}
			i1 += 2
			i2 = after + 1
		case next2.IsCombinator():
			if next2.Combinator != CombinatorChild {
				return false
			}
			i1++
			i2 = after + 1
		default:
			i1++
			i2 = after
		}
	}
}

// compoundIsSuperselector reports whether compound1 matches everything
// compound2 matches. parents are the components preceding compound2, they
// let selector pseudos in compound1 match against the ancestry of compound2.
func compoundIsSuperselector(compound1, compound2 *Compound, parents []Component) bool {
	if compound1 == nil || compound2 == nil {
		return false
	}

	// A pseudo-element changes the subject instead of narrowing it, so both
	// compounds need the same one and both halves have to match separately.
	index1 := pseudoElementIndex(compound1.Components)
	index2 := pseudoElementIndex(compound2.Components)
	switch {
	case index1 >= 0 && index2 >= 0:
		element1 := compound1.Components[index1]
		element2 := compound2.Components[index2]
		if !simpleIsSuperselector(element1, element2) {
			return false
		}
		return simplesAreSuperselector(compound1.Components[:index1], compound2.Components[:index2], parents) &&
			simplesAreSuperselector(compound1.Components[index1+1:], compound2.Components[index2+1:], parents)
	case index1 >= 0 || index2 >= 0:
		return false
	}
	return simplesAreSuperselector(compound1.Components, compound2.Components, parents)
}

// simplesAreSuperselector requires every simple of simples1 to be matched by
// the compound made of simples2.
func simplesAreSuperselector(simples1, simples2 []Simple, parents []Component) bool {
	compound2 := NewCompound(simples2...)
	for _, s1 := range simples1 {
		if s1.Kind == KindPseudo && s1.Selector != nil {
			if !selectorPseudoIsSuperselector(s1, compound2, parents) {
				return false
			}
			continue
		}
		if !simpleIsSuperselectorOfCompound(s1, compound2) {
			return false
		}
	}
	return true
}

func pseudoElementIndex(simples []Simple) int {
	for i, s := range simples {
		if s.IsPseudoElement() {
			return i
		}
	}
	return -1
}

// simpleIsSuperselector reports whether s1 alone matches everything s2
// matches.
func simpleIsSuperselector(s1, s2 Simple) bool {
	if s1.Equal(s2) {
		return true
	}
	if s1.Kind != KindType {
		return false
	}
	if s1.IsUniversal() && s1.anyNamespace() {
		return true
	}
	if s2.Kind != KindType {
		return false
	}
	if !s1.anyNamespace() && s1.Namespace != s2.Namespace {
		return false
	}
	return s1.IsUniversal() || s1.Name == s2.Name
}

func simpleIsSuperselectorOfCompound(s Simple, compound *Compound) bool {
	for _, theirs := range compound.Components {
		if simpleIsSuperselector(s, theirs) {
			return true
		}
		// :is(.a) and friends only match elements matched by .a
		if theirs.Kind != KindPseudo || theirs.Selector == nil || !subselectorPseudos[theirs.NormalizedName()] {
			continue
		}
		all := !theirs.Selector.IsEmpty()
		for _, complex := range theirs.Selector.Components {
			single, ok := complex.SingleCompound()
			if !ok || !single.Contains(s) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

// selectorPseudoIsSuperselector reports whether the selector pseudo pseudo1
// matches everything compound2 (preceded by parents) matches.
func selectorPseudoIsSuperselector(pseudo1 Simple, compound2 *Compound, parents []Component) bool {
	selector1 := pseudo1.Selector
	name := pseudo1.NormalizedName()
	switch name {
	case "is", "matches", "any", "where":
		for _, selector2 := range selectorPseudoArgs(compound2, name, true) {
			if selector1.IsSuperselectorOf(selector2) {
				return true
			}
		}
		path := append(cloneComponents(parents), CompoundComponent(compound2))
		for _, complex1 := range selector1.components() {
			if complexIsSuperselector(complex1.Components, path) {
				return true
			}
		}
		return false

	case "has", "host", "host-context":
		for _, selector2 := range selectorPseudoArgs(compound2, name, true) {
			if selector1.IsSuperselectorOf(selector2) {
				return true
			}
		}
		return false

	case "slotted":
		for _, selector2 := range selectorPseudoArgs(compound2, name, false) {
			if selector1.IsSuperselectorOf(selector2) {
				return true
			}
		}
		return false

	case "not":
		// :not(A) matches everything compound2 matches when compound2
		// excludes every branch of A
		for _, complex := range selector1.components() {
			base := complex.Base()
			if base == nil || !notExcludes(base, complex, compound2, name) {
				return false
			}
		}
		return true

	case "current":
		for _, selector2 := range selectorPseudoArgs(compound2, name, true) {
			if selector1.Equal(selector2) {
				return true
			}
		}
		return false

	case "nth-child", "nth-last-child":
		for _, pseudo2 := range compound2.Components {
			if pseudo2.Kind == KindPseudo && pseudo2.NormalizedName() == name &&
				pseudo2.Argument == pseudo1.Argument && pseudo2.Selector != nil &&
				selector1.IsSuperselectorOf(pseudo2.Selector) {
				return true
			}
		}
		return false
	}
	return compound2.Contains(pseudo1)
}

// notExcludes reports whether compound2 can never match complex, the branch
// of a :not whose trailing compound is base.
func notExcludes(base *Compound, complex *Complex, compound2 *Compound, name string) bool {
	for _, simple2 := range compound2.Components {
		switch {
		case simple2.Kind == KindType:
			for _, simple1 := range base.Components {
				if simple1.Kind == KindType && typesExclusive(simple1, simple2) {
					return true
				}
			}
		case simple2.Kind == KindID:
			for _, simple1 := range base.Components {
				if simple1.Kind == KindID && !simple1.Equal(simple2) {
					return true
				}
			}
		case simple2.Kind == KindPseudo && simple2.NormalizedName() == name && simple2.Selector != nil:
			if listIsSuperselector(simple2.Selector.Components, []*Complex{complex}) {
				return true
			}
		}
	}
	return false
}

// typesExclusive reports whether no element can match both type selectors.
// A universal name or an unconstrained namespace never excludes anything.
func typesExclusive(a, b Simple) bool {
	if !a.IsUniversal() && !b.IsUniversal() && a.Name != b.Name {
		return true
	}
	return !a.anyNamespace() && !b.anyNamespace() && a.Namespace != b.Namespace
}

// selectorPseudoArgs returns the selector arguments of the pseudos in
// compound named name.
func selectorPseudoArgs(compound *Compound, name string, isClass bool) []*List {
	var result []*List
	for _, s := range compound.Components {
		if s.Kind != KindPseudo || s.Selector == nil || s.IsPseudoClass() != isClass {
			continue
		}
		if s.NormalizedName() == name {
			result = append(result, s.Selector)
		}
	}
	return result
}
