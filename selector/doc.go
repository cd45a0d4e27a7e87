// Package selector implements the selector algebra behind Sass @extend.
//
// Selectors are modelled as immutable trees: a List is an OR of Complex
// selectors, a Complex selector is a path of Compound selectors joined by
// combinators, and a Compound selector is an AND of Simple selectors. Trees
// are shared freely between results; every operation builds new nodes instead
// of changing existing ones.
//
// # Operations
//
//   - Unification: UnifyCompound, Complex.UnifyWith and List.UnifyWith compute
//     selectors matching the intersection of their inputs. Failure is reported
//     as a nil (or empty) result, never as an error.
//   - Weaving: Weave combines several selector paths that must all hold for
//     the same element into every DOM-valid combined path.
//   - Superselectors: IsSuperselectorOf at compound, complex and list level
//     decides whether one selector matches everything another one matches.
//   - Cleanup: RemovePlaceholders strips placeholder selectors (%name) and the
//     selectors that can no longer match because of them.
//
// # Usage
//
//	a := selector.NewCompound(selector.Class("a"), selector.Class("b"))
//	b := selector.NewCompound(selector.Class("b"), selector.Class("c"))
//	unified := selector.UnifyCompound(a, b) // .a.b.c
//
// Parsing selector text and formatting CSS output are left to the caller;
// String methods exist for diagnostics and map keys only.
package selector
