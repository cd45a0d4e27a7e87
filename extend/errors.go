package extend

import "errors"

var (
	// ErrEmptyKey is returned when an empty compound is used as a subset map
	// key. It signals a bug in the caller.
	ErrEmptyKey = errors.New("empty compound selector used as key")
	// ErrComplexTarget is returned for an extend target that is not a single
	// compound selector.
	ErrComplexTarget = errors.New("complex selectors may not be extended")
	// ErrUnsatisfied is returned for a mandatory extension whose target
	// never matched.
	ErrUnsatisfied = errors.New("extend target not found")
	// ErrMediaContext is returned when an extension declared in one media
	// context would apply to a rule in another.
	ErrMediaContext = errors.New("may not extend across media contexts")
)
