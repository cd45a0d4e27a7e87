// Package extend resolves @extend directives over selector trees.
//
// An [Extender] collects extensions (an extender selector that should also
// match wherever a target compound selector matches) in a [SubsetMap], then
// rewrites style rule selectors: every compound that contains a target is
// unified with the extender, the resulting paths are woven into the
// surrounding selector and redundant results are trimmed using the
// superselector relation. Placeholder selectors are removed once all rules
// have been resolved.
//
// Extend, Replace, Unify and IsSuperselector implement the selector-extend,
// selector-replace, selector-unify and is-superselector stylesheet functions
// on top of the same machinery.
package extend
