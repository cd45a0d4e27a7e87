package selector

import (
	"slices"
	"testing"
)

func cls(names ...string) *Compound {
	simples := make([]Simple, len(names))
	for i, n := range names {
		simples[i] = Class(n)
	}
	return NewCompound(simples...)
}

func path(parts ...any) []Component {
	var result []Component
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			result = append(result, CompoundComponent(cls(v)))
		case *Compound:
			result = append(result, CompoundComponent(v))
		case Combinator:
			result = append(result, CombinatorComponent(v))
		}
	}
	return result
}

func pathString(components []Component) string {
	return (&Complex{Components: components}).String()
}

func pathStrings(paths [][]Component) []string {
	result := make([]string, len(paths))
	for i, p := range paths {
		result[i] = pathString(p)
	}
	return result
}

func TestPaths(t *testing.T) {
	got := Paths([][]int{{1, 2}, {3}, {4, 5}})
	want := [][]int{{1, 3, 4}, {2, 3, 4}, {1, 3, 5}, {2, 3, 5}}
	if len(got) != len(want) {
		t.Fatalf("Paths() = %v, want %v", got, want)
	}
	for i := range want {
		if !slices.Equal(got[i], want[i]) {
			t.Errorf("Paths()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if got := Paths([][]int{{1}, {}}); len(got) != 0 {
		t.Errorf("Paths with an empty choice = %v, want none", got)
	}
	if got := Paths[int](nil); len(got) != 1 || len(got[0]) != 0 {
		t.Errorf("Paths(nil) = %v, want one empty path", got)
	}
}

func TestLCS(t *testing.T) {
	equal := func(a, b int) (int, bool) { return a, a == b }

	tests := []struct {
		a, b, want []int
	}{
		{[]int{1, 2, 3, 4}, []int{2, 4}, []int{2, 4}},
		{[]int{1, 2, 3}, []int{4, 5}, nil},
		{[]int{1, 3, 2, 3}, []int{3, 2, 3, 1}, []int{3, 2, 3}},
		{nil, []int{1}, nil},
	}
	for _, tt := range tests {
		if got := lcs(tt.a, tt.b, equal); !slices.Equal(got, tt.want) {
			t.Errorf("lcs(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}

	// the selected value replaces both elements
	sum := func(a, b int) (int, bool) { return a + b, a%2 == b%2 }
	if got := lcs([]int{1, 2}, []int{3, 4}, sum); !slices.Equal(got, []int{4, 6}) {
		t.Errorf("lcs with selection = %v, want [4 6]", got)
	}
}

func TestChunks(t *testing.T) {
	q1 := []int{1, 2, 0, 3}
	q2 := []int{4, 0, 5}
	atZero := func(q []int) bool { return q[0] == 0 }

	got := chunks(&q1, &q2, atZero)
	want := [][]int{{1, 2, 4}, {4, 1, 2}}
	if len(got) != len(want) || !slices.Equal(got[0], want[0]) || !slices.Equal(got[1], want[1]) {
		t.Errorf("chunks() = %v, want %v", got, want)
	}
	if !slices.Equal(q1, []int{0, 3}) || !slices.Equal(q2, []int{0, 5}) {
		t.Errorf("queues left as %v and %v", q1, q2)
	}

	q1, q2 = []int{0}, []int{7}
	if got := chunks(&q1, &q2, atZero); len(got) != 1 || !slices.Equal(got[0], []int{7}) {
		t.Errorf("chunks() with one empty run = %v, want [[7]]", got)
	}

	q1, q2 = nil, nil
	if got := chunks(&q1, &q2, atZero); got != nil {
		t.Errorf("chunks() of empty queues = %v, want nil", got)
	}
}

func TestGroupSelectors(t *testing.T) {
	components := path("a", CombinatorChild, "b", "c", CombinatorAdjacent, "d", CombinatorGeneral, "e", "f")
	got := groupSelectors(components)
	want := []string{".a > .b", ".c + .d ~ .e", ".f"}
	if len(got) != len(want) {
		t.Fatalf("groupSelectors() = %q, want %q", pathStrings(got), want)
	}
	for i := range want {
		if s := pathString(got[i]); s != want[i] {
			t.Errorf("group %d = %q, want %q", i, s, want[i])
		}
	}
}

func TestMergeInitialCombinators(t *testing.T) {
	q1 := path(CombinatorChild, "a")
	q2 := path(CombinatorChild, CombinatorAdjacent, "b")
	got, ok := mergeInitialCombinators(&q1, &q2)
	if !ok || !slices.Equal(got, []Combinator{CombinatorChild, CombinatorAdjacent}) {
		t.Errorf("mergeInitialCombinators() = %v, %v", got, ok)
	}
	if len(q1) != 1 || len(q2) != 1 {
		t.Errorf("combinators not consumed: %q, %q", pathString(q1), pathString(q2))
	}

	q1 = path(CombinatorGeneral, "a")
	q2 = path(CombinatorChild, "b")
	if _, ok := mergeInitialCombinators(&q1, &q2); ok {
		t.Error("mergeInitialCombinators() succeeded on incompatible combinators")
	}
}

func TestMergeFinalCombinators(t *testing.T) {
	tests := []struct {
		name   string
		q1, q2 []Component
		want   [][]string // options per choice
	}{
		{
			name: "same child combinator",
			q1:   path("a", CombinatorChild),
			q2:   path("b", CombinatorChild),
			want: [][]string{{".a.b >"}},
		},
		{
			name: "general and adjacent",
			q1:   path("a", CombinatorGeneral),
			q2:   path("b", CombinatorAdjacent),
			want: [][]string{{".a ~ .b +", ".a.b +"}},
		},
		{
			name: "general superselector",
			q1:   path("a", CombinatorGeneral),
			q2:   path(cls("a", "b"), CombinatorGeneral),
			want: [][]string{{".a.b ~"}},
		},
		{
			name: "two general",
			q1:   path("a", CombinatorGeneral),
			q2:   path("b", CombinatorGeneral),
			want: [][]string{{".a ~ .b ~", ".b ~ .a ~", ".a.b ~"}},
		},
		{
			name: "child and sibling",
			q1:   path("x", "a", CombinatorChild),
			q2:   path("b", CombinatorAdjacent),
			want: [][]string{{".a >"}, {".b +"}},
		},
		{
			name: "no combinators",
			q1:   path("a"),
			q2:   path("b"),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q1, q2 := tt.q1, tt.q2
			got, ok := mergeFinalCombinators(&q1, &q2)
			if !ok {
				t.Fatal("mergeFinalCombinators() failed")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("mergeFinalCombinators() returned %d choices, want %d", len(got), len(tt.want))
			}
			for i, choice := range got {
				if s := pathStrings(choice); !slices.Equal(s, tt.want[i]) {
					t.Errorf("choice %d = %q, want %q", i, s, tt.want[i])
				}
			}
		})
	}
}

func TestMergeFinalCombinators_Conflict(t *testing.T) {
	q1 := path(NewCompound(ID("y")), CombinatorAdjacent)
	q2 := path(NewCompound(ID("x")), CombinatorAdjacent)
	if _, ok := mergeFinalCombinators(&q1, &q2); ok {
		t.Error("mergeFinalCombinators() merged #y + with #x +")
	}
}

func TestWeave(t *testing.T) {
	tests := []struct {
		name  string
		paths [][]Component
		want  []string
	}{
		{
			name:  "single path",
			paths: [][]Component{path("a", "b")},
			want:  []string{".a .b"},
		},
		{
			name:  "descendants interleave",
			paths: [][]Component{path("a"), path("c", cls("b", "d"))},
			want:  []string{".a .c .b.d", ".c .a .b.d"},
		},
		{
			name:  "common ancestor",
			paths: [][]Component{path("a", "x"), path("a", "y", "z")},
			want:  []string{".a .x .y .z", ".a .y .x .z"},
		},
		{
			name:  "root goes first",
			paths: [][]Component{path(NewCompound(PseudoClass("root", ""))), path("c", "z")},
			want:  []string{":root .c .z"},
		},
		{
			name:  "leading combinators",
			paths: [][]Component{path(CombinatorChild, "a"), path(CombinatorGeneral, "b", "z")},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pathStrings(Weave(tt.paths))
			if !slices.Equal(got, tt.want) {
				t.Errorf("Weave() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMustUnify(t *testing.T) {
	withID := path(NewCompound(ID("x"), Class("a")))
	sameID := path(NewCompound(ID("x")))
	otherID := path(NewCompound(ID("y")))
	if !mustUnify(withID, sameID) {
		t.Error("mustUnify() = false for a shared id")
	}
	if mustUnify(withID, otherID) {
		t.Error("mustUnify() = true for different ids")
	}
	if mustUnify(path("a"), path("a")) {
		t.Error("mustUnify() = true for plain classes")
	}
}
