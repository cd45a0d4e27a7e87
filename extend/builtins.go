package extend

import (
	"fmt"

	"sassext/common"
	"sassext/selector"
)

// Extend returns sel with extender added wherever extendee matches, as the
// selector-extend stylesheet function does. Every complex selector of
// extendee has to be a single compound.
func Extend(sel, extendee, extender *selector.List) (*selector.List, error) {
	return extendOrReplace(sel, extendee, extender, common.ExtendModeNormal)
}

// Replace is like Extend but drops the parts of sel that were extended, as
// the selector-replace stylesheet function does.
func Replace(sel, extendee, original *selector.List) (*selector.List, error) {
	return extendOrReplace(sel, extendee, original, common.ExtendModeReplace)
}

func extendOrReplace(sel, extendee, extender *selector.List, mode common.ExtendMode) (*selector.List, error) {
	for _, c := range extendee.Components {
		if _, ok := c.SingleCompound(); !ok {
			return nil, fmt.Errorf("can't extend %s: %w", c, ErrComplexTarget)
		}
	}
	e := NewExtender(nil, WithMode(mode), WithPlaceholderCleanup(false), WithMediaCheck(false))
	if err := e.AddExtension(extender, extendee, true, nil); err != nil {
		return nil, err
	}
	return e.ExtendList(sel, nil)
}

// Unify returns a selector matching only elements matched by both a and b,
// or nil when there is none.
func Unify(a, b *selector.List) *selector.List {
	result := a.UnifyWith(b)
	if result.IsEmpty() {
		return nil
	}
	return result
}

// IsSuperselector reports whether a matches every element b matches.
func IsSuperselector(a, b *selector.List) bool {
	return a.IsSuperselectorOf(b)
}
