package extend

import (
	"fmt"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"sassext/selector"
)

func (e *Extender) extendList(list *selector.List, media []string, seen seenTargets) (*selector.List, bool, error) {
	var (
		result   = &selector.List{}
		modified bool
		errs     error
	)
	for _, c := range list.Components {
		extended, mod, err := e.extendComplex(c, media, seen)
		errs = multierr.Append(errs, err)
		modified = modified || mod
		for _, x := range extended {
			if !result.Contains(x) {
				result.Components = append(result.Components, x)
			}
		}
	}
	if !modified {
		return list, false, errs
	}
	return result, true, errs
}

// extendComplex returns every selector c turns into. The first return is
// the original alone when nothing applied.
func (e *Extender) extendComplex(c *selector.Complex, media []string, seen seenTargets) ([]*selector.Complex, bool, error) {
	var (
		choices  [][][]selector.Component
		modified bool
		errs     error
	)
	for _, comp := range c.Components {
		if comp.IsCombinator() {
			choices = append(choices, [][]selector.Component{{comp}})
			continue
		}
		options, err := e.extendCompound(comp.Compound, media, seen)
		errs = multierr.Append(errs, err)
		if options == nil {
			choices = append(choices, [][]selector.Component{{comp}})
			continue
		}
		modified = true
		choices = append(choices, options)
	}
	if !modified {
		return []*selector.Complex{c}, false, errs
	}

	var woven []*selector.Complex
	for _, path := range selector.Paths(choices) {
		for _, components := range selector.Weave(path) {
			x := &selector.Complex{Components: components, LineBreak: c.LineBreak}
			if !slices.ContainsFunc(woven, x.Equal) {
				woven = append(woven, x)
			}
		}
	}
	return e.trim(woven, c.Equal), true, errs
}

// extendCompound returns the alternative paths compound can be replaced
// with, or nil when no extension applies to it.
func (e *Extender) extendCompound(compound *selector.Compound, media []string, seen seenTargets) ([][]selector.Component, error) {
	current, pseudoModified, errs := e.extendPseudos(compound, media, seen)

	var options [][]selector.Component
	for _, group := range groupByExtender(e.extensions.Get(current)) {
		var targets []selector.Simple
		for _, ext := range group {
			for _, s := range ext.Target.Components {
				if !slices.ContainsFunc(targets, s.Equal) {
					targets = append(targets, s)
				}
			}
		}
		key := targetsKey(targets)
		if seen[key] {
			continue
		}

		if err := e.checkMediaContext(group, media); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		for _, ext := range group {
			ext.matched = true
		}

		var without []selector.Simple
		for _, s := range current.Components {
			if !slices.ContainsFunc(targets, s.Equal) {
				without = append(without, s)
			}
		}
		extender := group[0].Extender
		base := extender.Base()
		if base == nil {
			continue
		}
		unified := selector.UnifyCompound(selector.NewCompound(without...), base)
		if unified == nil {
			e.log.Debug("Extension does not unify",
				zap.Stringer("selector", current),
				zap.Stringer("extender", extender))
			continue
		}
		unified = &selector.Compound{Components: unified.Components, HasRealParent: compound.HasRealParent, Extended: true}

		path := make([]selector.Component, 0, extender.Len())
		path = append(path, extender.Components[:extender.Len()-1]...)
		path = append(path, selector.CompoundComponent(unified))

		// extenders may be extended themselves
		extended, _, err := e.extendComplex(&selector.Complex{Components: path}, media, seen.with(key))
		errs = multierr.Append(errs, err)
		for _, x := range extended {
			options = appendOption(options, x.Components)
		}
	}

	if len(options) == 0 && !pseudoModified {
		return nil, errs
	}
	if pseudoModified || e.mode.KeepOriginal() || len(options) == 0 {
		options = append([][]selector.Component{{selector.CompoundComponent(current)}}, options...)
	}
	return options, errs
}

func appendOption(options [][]selector.Component, option []selector.Component) [][]selector.Component {
	candidate := &selector.Complex{Components: option}
	for _, o := range options {
		if candidate.Equal(&selector.Complex{Components: o}) {
			return options
		}
	}
	return append(options, option)
}

// groupByExtender splits extensions into groups sharing the same extender,
// keeping the order in which each extender first appears.
func groupByExtender(extensions []*Extension) [][]*Extension {
	var groups [][]*Extension
	for _, ext := range extensions {
		i := slices.IndexFunc(groups, func(g []*Extension) bool { return g[0].Extender == ext.Extender })
		if i < 0 {
			groups = append(groups, []*Extension{ext})
			continue
		}
		groups[i] = append(groups[i], ext)
	}
	return groups
}

// checkMediaContext fails when an extension declared inside a media query
// would reach a rule outside of it.
func (e *Extender) checkMediaContext(group []*Extension, media []string) error {
	if !e.checkMedia {
		return nil
	}
	for _, ext := range group {
		if !isSubsequence(ext.Media, media) {
			e.log.Debug("Extension crosses media context",
				zap.Stringer("target", ext.Target),
				zap.Strings("declared", ext.Media),
				zap.Strings("rule", media))
			return fmt.Errorf("%s extending %s from @media %q into %q: %w",
				ext.Extender, ext.Target, ext.Media, media, ErrMediaContext)
		}
	}
	return nil
}

// isSubsequence reports whether the media context sub encloses seq: a rule
// nested deeper inside the same queries is still reachable.
func isSubsequence(sub, seq []string) bool {
	i := 0
	for _, s := range seq {
		if i < len(sub) && sub[i] == s {
			i++
		}
	}
	return i == len(sub)
}

// extendPseudos extends the selector arguments of the selector pseudos of
// compound. It returns compound itself when none of them changed.
func (e *Extender) extendPseudos(compound *selector.Compound, media []string, seen seenTargets) (*selector.Compound, bool, error) {
	var (
		simples  []selector.Simple
		modified bool
		errs     error
	)
	for i, s := range compound.Components {
		var replacement []selector.Simple
		if s.Kind == selector.KindPseudo && s.Selector != nil {
			extended, mod, err := e.extendList(s.Selector, media, seen)
			errs = multierr.Append(errs, err)
			if mod {
				replacement = extendedPseudo(s, extended)
			}
		}
		if replacement == nil {
			if modified {
				simples = append(simples, s)
			}
			continue
		}
		if !modified {
			modified = true
			simples = append(simples, compound.Components[:i]...)
		}
		for _, r := range replacement {
			if !slices.ContainsFunc(simples, r.Equal) {
				simples = append(simples, r)
			}
		}
	}
	if !modified {
		return compound, false, errs
	}
	return &selector.Compound{Components: simples, HasRealParent: compound.HasRealParent, Extended: compound.Extended}, true, errs
}

// extendedPseudo rebuilds pseudo around its extended argument. Nested
// :is() style pseudos of the same name are flattened. A :not() with a single
// argument becomes one :not() per resulting selector, and a :not() that only
// held compounds drops complex results.
func extendedPseudo(pseudo selector.Simple, extended *selector.List) []selector.Simple {
	name := pseudo.NormalizedName()
	compoundOnly := name == "not" && allSingleCompounds(pseudo.Selector)

	var complexes []*selector.Complex
	for _, c := range extended.Components {
		if inner, ok := c.SingleCompound(); ok && inner.Len() == 1 {
			s := inner.Components[0]
			if s.Kind == selector.KindPseudo && s.Selector != nil && s.NormalizedName() == name && isMatchingPseudo(name) {
				complexes = append(complexes, s.Selector.Components...)
				continue
			}
		}
		if compoundOnly {
			if _, ok := c.SingleCompound(); !ok {
				continue
			}
		}
		complexes = append(complexes, c)
	}
	if len(complexes) == 0 {
		return nil
	}

	if name == "not" && pseudo.Selector.Len() == 1 {
		result := make([]selector.Simple, len(complexes))
		for i, c := range complexes {
			result[i] = pseudo.WithSelector(selector.NewList(c))
		}
		return result
	}
	return []selector.Simple{pseudo.WithSelector(&selector.List{Components: complexes})}
}

func isMatchingPseudo(name string) bool {
	switch name {
	case "is", "matches", "any", "where":
		return true
	}
	return false
}

func allSingleCompounds(list *selector.List) bool {
	for _, c := range list.Components {
		if _, ok := c.SingleCompound(); !ok {
			return false
		}
	}
	return true
}
