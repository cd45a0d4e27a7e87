package selector

// Weave combines selector paths that must all match the same element.
// Every path but the first is split into its parents and its trailing
// component; the parents are interleaved with everything woven so far in all
// orders combinator semantics allow, and the trailing component is appended.
// Each returned path matches a subset of what every input matches. An empty
// result means no DOM arrangement satisfies all inputs.
func Weave(complexes [][]Component) [][]Component {
	if len(complexes) == 0 {
		return nil
	}
	prefixes := [][]Component{cloneComponents(complexes[0])}
	for _, complex := range complexes[1:] {
		if len(complex) == 0 {
			continue
		}
		target := complex[len(complex)-1]
		if len(complex) == 1 {
			for i, prefix := range prefixes {
				prefixes[i] = append(cloneComponents(prefix), target)
			}
			continue
		}
		parents := complex[:len(complex)-1]
		var next [][]Component
		for _, prefix := range prefixes {
			for _, woven := range weaveParents(prefix, parents) {
				next = append(next, append(woven, target))
			}
		}
		prefixes = next
	}
	return prefixes
}

// weaveParents interleaves two parent sequences. Runs joined by explicit
// combinators stay together; descendant-separated runs from the two inputs
// may appear in either order. It returns nil when the parents contradict
// each other.
func weaveParents(parents1, parents2 []Component) [][]Component {
	queue1 := cloneComponents(parents1)
	queue2 := cloneComponents(parents2)

	initial, ok := mergeInitialCombinators(&queue1, &queue2)
	if !ok {
		return nil
	}
	final, ok := mergeFinalCombinators(&queue1, &queue2)
	if !ok {
		return nil
	}

	// at most one :root in the output
	root1 := firstIfRoot(&queue1)
	root2 := firstIfRoot(&queue2)
	switch {
	case root1 != nil && root2 != nil:
		root := UnifyCompound(root1, root2)
		if root == nil {
			return nil
		}
		queue1 = prependComponent(CompoundComponent(root), queue1)
		queue2 = prependComponent(CompoundComponent(root), queue2)
	case root1 != nil:
		queue2 = prependComponent(CompoundComponent(root1), queue2)
	case root2 != nil:
		queue1 = prependComponent(CompoundComponent(root2), queue1)
	}

	groups1 := groupSelectors(queue1)
	groups2 := groupSelectors(queue2)
	common := lcs(groups2, groups1, func(group1, group2 []Component) ([]Component, bool) {
		if componentsEqual(group1, group2) {
			return group1, true
		}
		if !group1[0].IsCompound() || !group2[0].IsCompound() {
			return nil, false
		}
		if complexIsParentSuperselector(group1, group2) {
			return group2, true
		}
		if complexIsParentSuperselector(group2, group1) {
			return group1, true
		}
		if !mustUnify(group1, group2) {
			return nil, false
		}
		unified := unifyComplex([][]Component{group1, group2})
		if len(unified) != 1 {
			return nil, false
		}
		return unified[0], true
	})

	choices := [][][]Component{{combinatorComponents(initial)}}
	for _, group := range common {
		before := chunks(&groups1, &groups2, func(queue [][]Component) bool {
			return complexIsParentSuperselector(queue[0], group)
		})
		choices = append(choices, flattenGroups(before), [][]Component{group})
		if len(groups1) > 0 {
			groups1 = groups1[1:]
		}
		if len(groups2) > 0 {
			groups2 = groups2[1:]
		}
	}
	rest := chunks(&groups1, &groups2, func(queue [][]Component) bool { return len(queue) == 0 })
	choices = append(choices, flattenGroups(rest))
	choices = append(choices, final...)

	nonEmpty := choices[:0]
	for _, choice := range choices {
		if len(choice) > 0 {
			nonEmpty = append(nonEmpty, choice)
		}
	}

	var result [][]Component
	for _, path := range Paths(nonEmpty) {
		var woven []Component
		for _, part := range path {
			woven = append(woven, part...)
		}
		result = append(result, woven)
	}
	return result
}

// mergeInitialCombinators strips leading combinators from both queues. It
// fails unless one sequence of combinators is a subsequence of the other, in
// which case the longer one is returned.
func mergeInitialCombinators(queue1, queue2 *[]Component) ([]Combinator, bool) {
	combinators1 := takeLeadingCombinators(queue1)
	combinators2 := takeLeadingCombinators(queue2)
	common := lcs(combinators1, combinators2, equalCombinators)
	switch {
	case combinatorsEqual(common, combinators1):
		return combinators2, true
	case combinatorsEqual(common, combinators2):
		return combinators1, true
	}
	return nil, false
}

// mergeFinalCombinators strips trailing combinators and the compounds they
// bind from both queues. Each returned choice lists the alternative
// sequences for one trailing position, outermost first.
func mergeFinalCombinators(queue1, queue2 *[]Component) ([][][]Component, bool) {
	var result [][][]Component
	prepend := func(choice ...[]Component) {
		result = append([][][]Component{choice}, result...)
	}

	for {
		if !endsWithCombinator(*queue1) && !endsWithCombinator(*queue2) {
			return result, true
		}

		combinators1 := takeTrailingCombinators(queue1)
		combinators2 := takeTrailingCombinators(queue2)
		if len(combinators1) > 1 || len(combinators2) > 1 {
			// Doubled combinators are not valid CSS; keep the longer
			// sequence when one contains the other.
			common := lcs(combinators1, combinators2, equalCombinators)
			switch {
			case combinatorsEqual(common, combinators1):
				prepend(combinatorComponents(reverseCombinators(combinators2)))
			case combinatorsEqual(common, combinators2):
				prepend(combinatorComponents(reverseCombinators(combinators1)))
			default:
				return nil, false
			}
			return result, true
		}

		switch {
		case len(combinators1) == 1 && len(combinators2) == 1:
			combinator1, combinator2 := combinators1[0], combinators2[0]
			compound1, ok1 := popCompound(queue1)
			compound2, ok2 := popCompound(queue2)
			if !ok1 || !ok2 {
				return nil, false
			}

			switch {
			case combinator1 == CombinatorGeneral && combinator2 == CombinatorGeneral:
				switch {
				case compound1.IsSuperselectorOf(compound2):
					prepend(pair(compound2, CombinatorGeneral))
				case compound2.IsSuperselectorOf(compound1):
					prepend(pair(compound1, CombinatorGeneral))
				default:
					choice := [][]Component{
						append(pair(compound1, CombinatorGeneral), pair(compound2, CombinatorGeneral)...),
						append(pair(compound2, CombinatorGeneral), pair(compound1, CombinatorGeneral)...),
					}
					if unified := UnifyCompound(compound1, compound2); unified != nil {
						choice = append(choice, pair(unified, CombinatorGeneral))
					}
					prepend(choice...)
				}

			case combinator1 == CombinatorGeneral && combinator2 == CombinatorAdjacent,
				combinator1 == CombinatorAdjacent && combinator2 == CombinatorGeneral:
				general, adjacent := compound1, compound2
				if combinator1 == CombinatorAdjacent {
					general, adjacent = compound2, compound1
				}
				if general.IsSuperselectorOf(adjacent) {
					prepend(pair(adjacent, CombinatorAdjacent))
				} else {
					choice := [][]Component{
						append(pair(general, CombinatorGeneral), pair(adjacent, CombinatorAdjacent)...),
					}
					if unified := UnifyCompound(compound1, compound2); unified != nil {
						choice = append(choice, pair(unified, CombinatorAdjacent))
					}
					prepend(choice...)
				}

			case combinator1 == CombinatorChild && combinator2 != CombinatorChild:
				// the sibling step is outermost; the child step is merged
				// on the next round
				prepend(pair(compound2, combinator2))
				*queue1 = append(*queue1, CompoundComponent(compound1), CombinatorComponent(CombinatorChild))

			case combinator2 == CombinatorChild && combinator1 != CombinatorChild:
				prepend(pair(compound1, combinator1))
				*queue2 = append(*queue2, CompoundComponent(compound2), CombinatorComponent(CombinatorChild))

			case combinator1 == combinator2:
				unified := UnifyCompound(compound1, compound2)
				if unified == nil {
					return nil, false
				}
				prepend(pair(unified, combinator1))

			default:
				return nil, false
			}

		case len(combinators1) == 1:
			combinator1 := combinators1[0]
			if combinator1 == CombinatorChild && len(*queue2) > 0 && len(*queue1) > 0 {
				last1 := (*queue1)[len(*queue1)-1]
				last2 := (*queue2)[len(*queue2)-1]
				if last1.IsCompound() && last2.IsCompound() && last2.Compound.IsSuperselectorOf(last1.Compound) {
					*queue2 = (*queue2)[:len(*queue2)-1]
				}
			}
			compound1, ok := popCompound(queue1)
			if !ok {
				return nil, false
			}
			prepend(pair(compound1, combinator1))

		default:
			combinator2 := combinators2[0]
			if combinator2 == CombinatorChild && len(*queue1) > 0 && len(*queue2) > 0 {
				last1 := (*queue1)[len(*queue1)-1]
				last2 := (*queue2)[len(*queue2)-1]
				if last1.IsCompound() && last2.IsCompound() && last1.Compound.IsSuperselectorOf(last2.Compound) {
					*queue1 = (*queue1)[:len(*queue1)-1]
				}
			}
			compound2, ok := popCompound(queue2)
			if !ok {
				return nil, false
			}
			prepend(pair(compound2, combinator2))
		}
	}
}

// groupSelectors splits components into runs joined by explicit
// combinators: a > b c + d ~ e becomes [a > b] [c + d ~ e].
func groupSelectors(components []Component) [][]Component {
	if len(components) == 0 {
		return nil
	}
	var groups [][]Component
	group := []Component{components[0]}
	for _, c := range components[1:] {
		if group[len(group)-1].IsCombinator() || c.IsCombinator() {
			group = append(group, c)
			continue
		}
		groups = append(groups, group)
		group = []Component{c}
	}
	return append(groups, group)
}

// mustUnify reports whether both sequences contain the same selector that
// can match at most one element (an ID or a pseudo-element). Such groups
// describe the same element and have to be unified instead of interleaved.
func mustUnify(complex1, complex2 []Component) bool {
	var unique []Simple
	for _, c := range complex1 {
		if !c.IsCompound() {
			continue
		}
		for _, s := range c.Compound.Components {
			if isUnique(s) {
				unique = append(unique, s)
			}
		}
	}
	if len(unique) == 0 {
		return false
	}
	for _, c := range complex2 {
		if !c.IsCompound() {
			continue
		}
		for _, s := range c.Compound.Components {
			if isUnique(s) && hasSimple(unique, s) {
				return true
			}
		}
	}
	return false
}

func isUnique(s Simple) bool {
	return s.Kind == KindID || s.IsPseudoElement()
}

func firstIfRoot(queue *[]Component) *Compound {
	if len(*queue) == 0 || !(*queue)[0].IsCompound() {
		return nil
	}
	first := (*queue)[0].Compound
	if !hasRoot(first) {
		return nil
	}
	*queue = (*queue)[1:]
	return first
}

func hasRoot(c *Compound) bool {
	for _, s := range c.Components {
		if s.IsPseudoClass() && s.NormalizedName() == "root" {
			return true
		}
	}
	return false
}

func takeLeadingCombinators(queue *[]Component) []Combinator {
	var combinators []Combinator
	for len(*queue) > 0 && (*queue)[0].IsCombinator() {
		combinators = append(combinators, (*queue)[0].Combinator)
		*queue = (*queue)[1:]
	}
	return combinators
}

// takeTrailingCombinators removes trailing combinators, last one first.
func takeTrailingCombinators(queue *[]Component) []Combinator {
	var combinators []Combinator
	for endsWithCombinator(*queue) {
		combinators = append(combinators, (*queue)[len(*queue)-1].Combinator)
		*queue = (*queue)[:len(*queue)-1]
	}
	return combinators
}

func endsWithCombinator(queue []Component) bool {
	return len(queue) > 0 && queue[len(queue)-1].IsCombinator()
}

func popCompound(queue *[]Component) (*Compound, bool) {
	if len(*queue) == 0 || !(*queue)[len(*queue)-1].IsCompound() {
		return nil, false
	}
	last := (*queue)[len(*queue)-1].Compound
	*queue = (*queue)[:len(*queue)-1]
	return last, true
}

func pair(c *Compound, combinator Combinator) []Component {
	return []Component{CompoundComponent(c), CombinatorComponent(combinator)}
}

func prependComponent(c Component, components []Component) []Component {
	result := make([]Component, 0, len(components)+1)
	result = append(result, c)
	return append(result, components...)
}

func combinatorComponents(combinators []Combinator) []Component {
	result := make([]Component, len(combinators))
	for i, c := range combinators {
		result[i] = CombinatorComponent(c)
	}
	return result
}

func reverseCombinators(combinators []Combinator) []Combinator {
	result := make([]Combinator, len(combinators))
	for i, c := range combinators {
		result[len(combinators)-1-i] = c
	}
	return result
}

func equalCombinators(a, b Combinator) (Combinator, bool) {
	return a, a == b
}

func combinatorsEqual(a, b []Combinator) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func flattenGroups(options [][][]Component) [][]Component {
	result := make([][]Component, len(options))
	for i, option := range options {
		for _, group := range option {
			result[i] = append(result[i], group...)
		}
	}
	return result
}
