package extend

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"sassext/common"
	"sassext/config"
	"sassext/selector"
)

const defaultTrimLimit = 100

// Extension is a single @extend: Extender should also match wherever Target
// matches.
type Extension struct {
	Extender *selector.Complex
	Target   *selector.Compound
	// Optional extensions do not fail resolution when Target is never found.
	Optional bool
	// Media is the media query context the extension was declared in,
	// outermost first. Empty at the top level.
	Media []string

	matched bool
}

// Rule is a style rule as far as extension is concerned.
type Rule struct {
	Selector *selector.List
	Media    []string
}

// Extender registers extensions and applies them to selectors. It is not
// safe for concurrent use.
type Extender struct {
	log               *zap.Logger
	mode              common.ExtendMode
	trimLimit         int
	checkMedia        bool
	stripPlaceholders bool

	extensions *SubsetMap[*Extension]
	all        []*Extension
	// highest specificity of any complex selector each simple selector
	// appeared in, keyed by Simple.Key
	sourceSpecificity map[string]int
}

type Option func(*Extender)

func WithMode(mode common.ExtendMode) Option {
	return func(e *Extender) { e.mode = mode }
}

// WithTrimLimit sets how many generated selectors are still checked against
// each other for redundancy.
func WithTrimLimit(limit int) Option {
	return func(e *Extender) { e.trimLimit = limit }
}

func WithMediaCheck(on bool) Option {
	return func(e *Extender) { e.checkMedia = on }
}

func WithPlaceholderCleanup(on bool) Option {
	return func(e *Extender) { e.stripPlaceholders = on }
}

// WithConfig applies the extend section of the configuration.
func WithConfig(cfg *config.ExtendConfig) Option {
	return func(e *Extender) {
		e.mode = cfg.Mode
		e.trimLimit = cfg.TrimLimit
		e.checkMedia = cfg.CheckMedia
		e.stripPlaceholders = cfg.StripPlaceholders
	}
}

// NewExtender creates an extender with no extensions registered.
func NewExtender(log *zap.Logger, opts ...Option) *Extender {
	if log == nil {
		log = zap.NewNop()
	}
	e := &Extender{
		log:               log.Named("extender"),
		mode:              common.ExtendModeNormal,
		trimLimit:         defaultTrimLimit,
		checkMedia:        true,
		stripPlaceholders: true,
		extensions:        NewSubsetMap[*Extension](),
		sourceSpecificity: make(map[string]int),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddExtension registers every complex selector of extender as an extension
// of every compound in target. Targets that are not single compounds are
// reported and skipped, the rest are still registered.
func (e *Extender) AddExtension(extender, target *selector.List, optional bool, media []string) error {
	var errs error
	for _, c := range extender.Components {
		e.registerSource(c)
	}
	for _, t := range target.Components {
		compound, ok := t.SingleCompound()
		if !ok {
			errs = multierr.Append(errs, fmt.Errorf("can't extend %s: %w", t, ErrComplexTarget))
			continue
		}
		for _, c := range extender.Components {
			ext := &Extension{
				Extender: c,
				Target:   compound,
				Optional: optional,
				Media:    slices.Clone(media),
			}
			if err := e.extensions.Put(compound, ext); err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			e.all = append(e.all, ext)
			e.log.Debug("Extension registered",
				zap.Stringer("target", compound),
				zap.Stringer("extender", c),
				zap.Bool("optional", optional),
				zap.Strings("media", media))
		}
	}
	return errs
}

// ExtendList applies all registered extensions to list, a selector found in
// the given media context. The input is never modified, when nothing applies
// it is returned as is.
func (e *Extender) ExtendList(list *selector.List, media []string) (*selector.List, error) {
	for _, c := range list.Components {
		e.registerSource(c)
	}
	result, modified, err := e.extendList(list, media, nil)
	if !modified {
		return list, err
	}
	e.log.Debug("Selector extended",
		zap.Stringer("from", list),
		zap.Stringer("to", result),
		zap.Int("selectors", result.Len()))
	if ce := e.log.Check(zap.DebugLevel, "Extended selector tree"); ce != nil {
		ce.Write(zap.String("tree", selector.Dump(result)))
	}
	return result, err
}

// ResolveRules extends the selector of every rule, replacing it wholesale,
// and drops the rules whose selector ended up empty after placeholder
// cleanup. Mandatory extensions that matched nothing are reported together
// with any other resolution errors.
func (e *Extender) ResolveRules(rules []*Rule) ([]*Rule, error) {
	for _, r := range rules {
		for _, c := range r.Selector.Components {
			e.registerSource(c)
		}
	}

	var (
		errs    error
		kept    = make([]*Rule, 0, len(rules))
		dropped int
	)
	for _, r := range rules {
		extended, err := e.ExtendList(r.Selector, r.Media)
		errs = multierr.Append(errs, err)
		if e.stripPlaceholders {
			extended = selector.RemovePlaceholders(extended)
		}
		r.Selector = extended
		if r.Selector.IsEmpty() {
			dropped++
			continue
		}
		kept = append(kept, r)
	}
	if e.stripPlaceholders {
		e.log.Debug("Placeholders removed", zap.Int("rules", len(rules)), zap.Int("dropped", dropped))
	}
	return kept, multierr.Append(errs, e.Unsatisfied())
}

// Unsatisfied reports every mandatory extension whose target has not been
// found by any ExtendList call so far.
func (e *Extender) Unsatisfied() error {
	var errs error
	for _, ext := range e.all {
		if ext.Optional || ext.matched {
			continue
		}
		errs = multierr.Append(errs, fmt.Errorf("%s failed to @extend %s: %w", ext.Extender, ext.Target, ErrUnsatisfied))
	}
	return errs
}

// Extensions returns all registered extensions in registration order.
func (e *Extender) Extensions() []*Extension {
	return slices.Clone(e.all)
}

func (e *Extender) registerSource(c *selector.Complex) {
	spec := c.Specificity().Max
	for _, comp := range c.Components {
		if !comp.IsCompound() {
			continue
		}
		for _, s := range comp.Compound.Components {
			k := s.Key()
			if spec > e.sourceSpecificity[k] {
				e.sourceSpecificity[k] = spec
			}
		}
	}
}

// seenTargets guards against extension loops: a set of target groups
// already applied on the current recursion path.
type seenTargets map[string]bool

func (s seenTargets) with(key string) seenTargets {
	next := maps.Clone(s)
	if next == nil {
		next = make(seenTargets)
	}
	next[key] = true
	return next
}

func targetsKey(targets []selector.Simple) string {
	keys := make([]string, len(targets))
	for i, t := range targets {
		keys[i] = t.Key()
	}
	slices.Sort(keys)
	return strings.Join(keys, "\x00")
}
