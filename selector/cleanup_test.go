package selector_test

import (
	"testing"

	"sassext/selector"
)

func TestRemovePlaceholders(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{".a, %p", ".a"},
		{".a %p .b, .c", ".c"},
		{"%p", ""},
		{".a:not(%p)", ".a"},
		{":not(%p)", "*"},
		{".a:not(%p, .b)", ".a:not(.b)"},
		{".a:is(%p), .b", ".b"},
		{".a:is(%p, .c)", ".a:is(.c)"},
		{".x > .a:has(.b %p)", ""},
		{".a .b, .c > .d", ".a .b, .c > .d"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := selector.RemovePlaceholders(parseList(tt.in))
			if got == nil {
				t.Fatal("RemovePlaceholders returned nil")
			}
			if got.String() != tt.want {
				t.Errorf("RemovePlaceholders(%s) = %q, want %q", tt.in, got.String(), tt.want)
			}
			if got.IsInvisible() && !got.IsEmpty() {
				t.Errorf("RemovePlaceholders(%s) left invisible selectors: %s", tt.in, got)
			}
		})
	}
}

func TestRemovePlaceholders_SharesUnchanged(t *testing.T) {
	in := parseList(".a .b, .c")
	if got := selector.RemovePlaceholders(in); got != in {
		t.Error("unchanged list was rebuilt")
	}

	in = parseList(".a .b, %p")
	got := selector.RemovePlaceholders(in)
	if got == in {
		t.Fatal("changed list was not rebuilt")
	}
	if got.Components[0] != in.Components[0] {
		t.Error("unchanged complex selector was not shared")
	}
	if in.Len() != 2 {
		t.Error("input list modified")
	}
}

func TestRewriteList_Remove(t *testing.T) {
	in := parseList(".a.tmp .b, .tmp")
	got := selector.RewriteList(in, func(s selector.Simple) selector.Action {
		if s.Kind == selector.KindClass && s.Name == "tmp" {
			return selector.Remove
		}
		return selector.Keep
	})
	if want := ".a .b, *"; got.String() != want {
		t.Errorf("RewriteList() = %q, want %q", got.String(), want)
	}
	if in.String() != ".a.tmp .b, .tmp" {
		t.Errorf("input modified: %s", in)
	}
}

func TestRewriteList_Nil(t *testing.T) {
	got := selector.RewriteList(nil, func(selector.Simple) selector.Action { return selector.Keep })
	if got == nil || !got.IsEmpty() {
		t.Errorf("RewriteList(nil) = %v, want empty list", got)
	}
}

func TestIsInvisible(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{".a", false},
		{"%p", true},
		{".a %p", true},
		{".a, %p", false},
		{"%p, %q", true},
		{":is(%p)", true},
		{":not(%p)", false},
	}
	for _, tt := range tests {
		if got := parseList(tt.in).IsInvisible(); got != tt.want {
			t.Errorf("%s.IsInvisible() = %v, want %v", tt.in, got, tt.want)
		}
	}
}
