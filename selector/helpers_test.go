package selector_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"sassext/selector"
	"sassext/selector/selectortest"
)

var (
	parseList     = selectortest.List
	parseComplex  = selectortest.Complex
	parseCompound = selectortest.Compound
)

// fixtureHTML has enough structure to tell apart descendant, child and
// sibling relations between the classes used in the tests.
const fixtureHTML = `<!DOCTYPE html>
<html><body>
<div id="x" class="a b">
  <p class="a c"><span id="y" class="b c" lang="en">one</span><em class="a">two</em></p>
  <span class="c"></span>
  <p class="b"><em class="a b c"></em><em class="d"></em></p>
  <ul class="c d"><li class="a"></li><li class="b d"></li><li class="a b d"></li></ul>
</div>
<section class="a d">
  <p class="c b"><span class="a"></span></p>
  <div class="b"><p class="a c d"><span class="b d"></span></p></div>
</section>
</body></html>`

func fixture(t *testing.T) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(fixtureHTML))
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return doc
}

// matches returns the fixture nodes matched by sel. An empty selector list
// matches nothing.
func matches(t *testing.T, doc *html.Node, sel fmtSelector) []*html.Node {
	t.Helper()
	text := sel.String()
	if text == "" {
		return nil
	}
	compiled, err := cascadia.Compile(text)
	if err != nil {
		t.Fatalf("cascadia cannot compile %q: %v", text, err)
	}
	return compiled.MatchAll(doc)
}

type fmtSelector interface {
	String() string
}

func intersect(a, b []*html.Node) []*html.Node {
	var result []*html.Node
	for _, n := range a {
		if slices.Contains(b, n) {
			result = append(result, n)
		}
	}
	return result
}

func isSubset(sub, super []*html.Node) bool {
	for _, n := range sub {
		if !slices.Contains(super, n) {
			return false
		}
	}
	return true
}

func sameNodes(a, b []*html.Node) bool {
	return isSubset(a, b) && isSubset(b, a)
}

func listString(l *selector.List) string {
	if l == nil {
		return "<nil>"
	}
	return l.String()
}
