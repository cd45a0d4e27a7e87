package extend

import (
	"go.uber.org/zap"

	"sassext/selector"
)

// trim removes generated selectors that are redundant with another selector
// of the same list. A generated selector is redundant when some other
// selector is its superselector and is at least as specific as the
// selectors it was generated from. Originals are never removed, only
// deduplicated.
func (e *Extender) trim(selectors []*selector.Complex, isOriginal func(*selector.Complex) bool) []*selector.Complex {
	if len(selectors) > e.trimLimit {
		e.log.Debug("Too many selectors to trim", zap.Int("selectors", len(selectors)), zap.Int("limit", e.trimLimit))
		return selectors
	}

	// built back to front, reversed at the end
	var result []*selector.Complex
	var originals []*selector.Complex

outer:
	for i := len(selectors) - 1; i >= 0; i-- {
		c1 := selectors[i]
		if isOriginal(c1) {
			for _, o := range originals {
				if o.Equal(c1) {
					continue outer
				}
			}
			originals = append(originals, c1)
			result = append(result, c1)
			continue
		}

		maxSpecificity := 0
		for _, comp := range c1.Components {
			if comp.IsCompound() {
				maxSpecificity = max(maxSpecificity, e.sourceSpecificityFor(comp.Compound))
			}
		}

		// compare against what is already kept after i and everything
		// before i, so only one of two identical selectors goes away
		for _, c2 := range result {
			if c2.Specificity().Min >= maxSpecificity && c2.IsSuperselectorOf(c1) {
				e.log.Debug("Selector trimmed", zap.Stringer("selector", c1), zap.Stringer("by", c2))
				continue outer
			}
		}
		for _, c2 := range selectors[:i] {
			if c2.Specificity().Min >= maxSpecificity && c2.IsSuperselectorOf(c1) {
				e.log.Debug("Selector trimmed", zap.Stringer("selector", c1), zap.Stringer("by", c2))
				continue outer
			}
		}
		result = append(result, c1)
	}

	for l, r := 0, len(result)-1; l < r; l, r = l+1, r-1 {
		result[l], result[r] = result[r], result[l]
	}
	return result
}

func (e *Extender) sourceSpecificityFor(compound *selector.Compound) int {
	specificity := 0
	for _, s := range compound.Components {
		specificity = max(specificity, e.sourceSpecificity[s.Key()])
	}
	return specificity
}
