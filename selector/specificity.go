package selector

// Specificity weights. A single ID outweighs any realistic number of classes.
const (
	SpecificityID    = 1000000
	SpecificityClass = 1000
	SpecificityType  = 1
)

// Specificity is the range of specificities a selector can have. Selector
// pseudos such as :is() take the specificity of whichever argument matched,
// so Min and Max differ for them.
type Specificity struct {
	Min int
	Max int
}

func (a Specificity) add(b Specificity) Specificity {
	return Specificity{Min: a.Min + b.Min, Max: a.Max + b.Max}
}

// Specificity returns the specificity range of s.
func (s Simple) Specificity() Specificity {
	switch s.Kind {
	case KindType:
		if s.IsUniversal() {
			return Specificity{}
		}
		return Specificity{Min: SpecificityType, Max: SpecificityType}
	case KindID:
		return Specificity{Min: SpecificityID, Max: SpecificityID}
	case KindPseudo:
		return s.pseudoSpecificity()
	default:
		return Specificity{Min: SpecificityClass, Max: SpecificityClass}
	}
}

func (s Simple) pseudoSpecificity() Specificity {
	if s.IsPseudoElement() {
		return Specificity{Min: SpecificityType, Max: SpecificityType}
	}
	if s.Selector == nil {
		return Specificity{Min: SpecificityClass, Max: SpecificityClass}
	}
	name := s.NormalizedName()
	if name == "where" {
		return Specificity{}
	}

	var result Specificity
	for i, complex := range s.Selector.components() {
		spec := complex.Specificity()
		if i == 0 {
			result = spec
			continue
		}
		if name == "not" {
			// :not() is as specific as its most specific argument
			result.Min = max(result.Min, spec.Min)
		} else {
			result.Min = min(result.Min, spec.Min)
		}
		result.Max = max(result.Max, spec.Max)
	}
	if name == "nth-child" || name == "nth-last-child" {
		result = result.add(Specificity{Min: SpecificityClass, Max: SpecificityClass})
	}
	return result
}

// Specificity returns the sum of the specificities of the simples of c.
func (c *Compound) Specificity() Specificity {
	var result Specificity
	if c == nil {
		return result
	}
	for _, s := range c.Components {
		result = result.add(s.Specificity())
	}
	return result
}

// Specificity returns the sum of the specificities of the compounds of c.
func (c *Complex) Specificity() Specificity {
	var result Specificity
	if c == nil {
		return result
	}
	for _, comp := range c.Components {
		if comp.IsCompound() {
			result = result.add(comp.Compound.Specificity())
		}
	}
	return result
}
