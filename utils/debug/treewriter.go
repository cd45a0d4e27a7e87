package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter builds an indented text rendering of a tree, two spaces per
// level. It exists for debug logging and test failure output.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes label followed by the quoted value.
func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// Flags writes label followed by the names of the flags that are set, in
// brackets. Nothing but the label is written when no flag is set.
func (tw TreeWriter) Flags(depth int, label string, flags map[string]bool, order ...string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	var set []string
	for _, name := range order {
		if flags[name] {
			set = append(set, name)
		}
	}
	if len(set) > 0 {
		tw.w.WriteString(" [")
		tw.w.WriteString(strings.Join(set, " "))
		tw.w.WriteByte(']')
	}
	tw.w.WriteByte('\n')
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
