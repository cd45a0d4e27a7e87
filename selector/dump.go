package selector

import (
	"sassext/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// Dump returns a readable tree of the selector list with every flag and
// payload field. It exists solely for debugging and test failure output.
func Dump(list *List) string {
	if list == nil {
		return "<nil List>"
	}
	tw := treeWriter{debug.NewTreeWriter()}
	tw.list(0, list)
	return tw.String()
}

func (tw treeWriter) list(depth int, list *List) {
	tw.Line(depth, "List (%d)", list.Len())
	for _, c := range list.components() {
		tw.complex(depth+1, c)
	}
}

func (tw treeWriter) complex(depth int, c *Complex) {
	tw.Flags(depth, "Complex "+c.String(), map[string]bool{"linebreak": c.LineBreak}, "linebreak")
	for _, comp := range c.Components {
		if comp.IsCombinator() {
			tw.Line(depth+1, "Combinator %q", comp.Combinator.String())
			continue
		}
		tw.compound(depth+1, comp.Compound)
	}
}

func (tw treeWriter) compound(depth int, c *Compound) {
	tw.Flags(depth, "Compound", map[string]bool{
		"parent":   c.HasRealParent,
		"extended": c.Extended,
	}, "parent", "extended")
	for _, s := range c.Components {
		tw.simple(depth+1, s)
	}
}

func (tw treeWriter) simple(depth int, s Simple) {
	switch s.Kind {
	case KindType:
		tw.Line(depth, "%s name=%q namespace=%q", s.Kind, s.Name, s.Namespace)
	case KindAttribute:
		tw.Line(depth, "%s name=%q namespace=%q op=%q", s.Kind, s.Name, s.Namespace, s.Op)
		if s.Op != "" {
			tw.TextBlock(depth+1, "value", s.Value)
		}
		if s.Modifier != "" {
			tw.TextBlock(depth+1, "modifier", s.Modifier)
		}
	case KindPseudo:
		tw.Flags(depth, s.Kind.String()+" name="+s.Name, map[string]bool{"element": s.IsPseudoElement()}, "element")
		if s.Argument != "" {
			tw.TextBlock(depth+1, "argument", s.Argument)
		}
		if s.Selector != nil {
			tw.list(depth+1, s.Selector)
		}
	default:
		tw.Line(depth, "%s name=%q", s.Kind, s.Name)
	}
}
