package selector_test

import (
	"testing"

	"sassext/selector"
)

func TestSimple_String(t *testing.T) {
	tests := []struct {
		sel  selector.Simple
		want string
	}{
		{selector.Type("", "div"), "div"},
		{selector.Universal("ns"), "ns|*"},
		{selector.Class("a"), ".a"},
		{selector.ID("x"), "#x"},
		{selector.Placeholder("p"), "%p"},
		{selector.Attribute("href", "", "", ""), "[href]"},
		{selector.Attribute("lang", "|=", "en", ""), "[lang|=en]"},
		{selector.Attribute("title", "=", "two words", "i"), `[title="two words" i]`},
		{selector.Attribute("data", "=", `say "hi"`, ""), `[data="say \"hi\""]`},
		{selector.Attribute("data", "=", "", ""), `[data=""]`},
		{selector.PseudoClass("hover", ""), ":hover"},
		{selector.PseudoClass("nth-child", "2n+1"), ":nth-child(2n+1)"},
		{selector.PseudoElement("before", ""), "::before"},
		{selector.SelectorPseudo("not", false, "", parseList(".a, .b")), ":not(.a, .b)"},
		{selector.SelectorPseudo("nth-child", false, "2n", parseList(".a")), ":nth-child(2n of .a)"},
	}
	for _, tt := range tests {
		if got := tt.sel.String(); got != tt.want {
			t.Errorf("String() = %s, want %s", got, tt.want)
		}
	}
}

func TestSimple_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b selector.Simple
		want bool
	}{
		{"same class", selector.Class("a"), selector.Class("a"), true},
		{"class vs id", selector.Class("a"), selector.ID("a"), false},
		{"pseudo case", selector.PseudoClass("HOVER", ""), selector.PseudoClass("hover", ""), true},
		{"element flag", selector.PseudoClass("before", ""), selector.PseudoElement("before", ""), false},
		{"namespace", selector.Type("ns", "div"), selector.Type("", "div"), false},
		{"attribute modifier", selector.Attribute("a", "=", "b", "i"), selector.Attribute("a", "=", "b", ""), false},
		{
			"selector argument as set",
			selector.SelectorPseudo("is", false, "", parseList(".a, .b")),
			selector.SelectorPseudo("is", false, "", parseList(".b, .a")),
			true,
		},
		{
			"compound argument as set",
			selector.SelectorPseudo("not", false, "", parseList(".a.b")),
			selector.SelectorPseudo("NOT", false, "", parseList(".b.a")),
			true,
		},
		{
			"nested argument order",
			selector.SelectorPseudo("is", false, "", parseList(".x :not(.a, .b) > p")),
			selector.SelectorPseudo("is", false, "", parseList(".x :not(.b, .a) > p")),
			true,
		},
		{
			"nth argument",
			selector.SelectorPseudo("nth-child", false, "2n", parseList(".a, .b")),
			selector.SelectorPseudo("nth-child", false, "2n", parseList(".b, .a")),
			true,
		},
		{
			"complex order matters",
			selector.SelectorPseudo("is", false, "", parseList(".a .b")),
			selector.SelectorPseudo("is", false, "", parseList(".b .a")),
			false,
		},
		{
			"missing selector argument",
			selector.SelectorPseudo("is", false, "", parseList(".a")),
			selector.PseudoClass("is", ""),
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("%s.Equal(%s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if tt.want && tt.a.Key() != tt.b.Key() {
				t.Errorf("equal selectors have different keys: %q, %q", tt.a.Key(), tt.b.Key())
			}
		})
	}
}

func TestSimple_Key(t *testing.T) {
	tests := []struct {
		sel  selector.Simple
		want string
	}{
		{selector.Class("a"), ".a"},
		{selector.PseudoClass("Hover", ""), ":hover"},
		{selector.SelectorPseudo("is", false, "", parseList(".b, .a")), ":is(.a, .b)"},
		{selector.SelectorPseudo("not", false, "", parseList(".b.a, .a.b")), ":not(.a.b)"},
		{selector.SelectorPseudo("is", false, "", parseList("p > .b.a")), ":is(p > .a.b)"},
		{selector.SelectorPseudo("nth-child", false, "2n+1", parseList(".b, .a")), ":nth-child(2n+1 of .a, .b)"},
	}
	for _, tt := range tests {
		if got := tt.sel.Key(); got != tt.want {
			t.Errorf("%s.Key() = %q, want %q", tt.sel, got, tt.want)
		}
	}
}

func TestSimple_NormalizedName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"any", "any"},
		{"-moz-any", "any"},
		{"-WEBKIT-Any", "any"},
		{"Not", "not"},
		{"--custom", "--custom"},
	}
	for _, tt := range tests {
		if got := selector.PseudoClass(tt.name, "").NormalizedName(); got != tt.want {
			t.Errorf("NormalizedName(%s) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestSimple_IsPseudoElement(t *testing.T) {
	tests := []struct {
		sel  selector.Simple
		want bool
	}{
		{selector.PseudoElement("selection", ""), true},
		{selector.PseudoClass("before", ""), true},
		{selector.PseudoClass("First-Line", ""), true},
		{selector.PseudoClass("hover", ""), false},
		{selector.Class("before"), false},
	}
	for _, tt := range tests {
		if got := tt.sel.IsPseudoElement(); got != tt.want {
			t.Errorf("%s.IsPseudoElement() = %v, want %v", tt.sel, got, tt.want)
		}
	}
}

func TestCompound_Equal(t *testing.T) {
	if !parseCompound(".a.b").Equal(parseCompound(".b.a")) {
		t.Error(".a.b != .b.a")
	}
	if parseCompound(".a.b").Equal(parseCompound(".a")) {
		t.Error(".a.b == .a")
	}
	if !parseList(".a, .b").Equal(parseList(".b, .a")) {
		t.Error("lists compare in order")
	}
	if parseComplex(".a .b").Equal(parseComplex(".b .a")) {
		t.Error("complex selectors compare out of order")
	}
}

func TestKind_String(t *testing.T) {
	if s := selector.KindPlaceholder.String(); s != "placeholder" {
		t.Errorf("KindPlaceholder.String() = %s", s)
	}
	if s := selector.Kind(42).String(); s != "unknown" {
		t.Errorf("Kind(42).String() = %s", s)
	}
	if s := selector.Combinator(42).String(); s != "Combinator(42)" {
		t.Errorf("Combinator(42).String() = %s", s)
	}
}
