// Package dialog implements the indent-aware `KEY=body` text record format
// used for in-game dialog and other multi-line string tables. It is a
// smaller sibling of the binary element format: records are newline- and
// tab-delimited instead of length-prefixed, but the same idea of a named
// entry with an opaque body applies.
package dialog

import (
	"strings"
)

// Entry is one dialog record's body, still carrying its original
// indentation. Call Unindent to get the logical (un-indented) text.
type Entry struct {
	IndentedStr string
	Level       int
}

// Unindent strips the continuation-line indentation from the entry's
// stored text, returning the body as the author wrote it.
func (e Entry) Unindent() string {
	isLine := func(s string) bool { return s != "" }

	lines := splitLines(e.IndentedStr)
	nonEmpty := 0
	for _, l := range lines {
		if isLine(l) {
			nonEmpty++
		}
	}

	if e.Level == 0 || nonEmpty <= 1 {
		switch {
		case strings.HasPrefix(e.IndentedStr, "\r\n"):
			return sliceFrom(e.IndentedStr, e.Level+2)
		case strings.HasPrefix(e.IndentedStr, "\n"):
			return sliceFrom(e.IndentedStr, e.Level+1)
		default:
			return sliceFrom(e.IndentedStr, e.Level)
		}
	}

	out := make([]string, 0, len(lines))
	for i, l := range lines {
		s := l
		if i != 0 {
			if len(s) > e.Level {
				s = s[e.Level:]
			} else {
				s = ""
			}
		}
		if isLine(s) {
			out = append(out, s)
		}
	}
	return strings.Join(out, "\n")
}

// sliceFrom returns s[n:], clamped so n past len(s) yields "".
func sliceFrom(s string, n int) string {
	if n >= len(s) {
		return ""
	}
	return s[n:]
}

// splitLines splits s the way Rust's str::lines() does: on "\n" or "\r\n",
// with the terminator stripped and no trailing empty element for a final
// newline.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	trimmed := strings.TrimSuffix(s, "\n")
	return strings.Split(trimmed, "\n")
}

// Dialog is an ordered collection of named entries, preserving the order
// entries were first inserted so String round-trips predictably.
type Dialog struct {
	order   []string
	entries map[string]Entry
}

// New returns an empty Dialog.
func New() *Dialog {
	return &Dialog{entries: make(map[string]Entry)}
}

// Insert adds or replaces the entry named name, returning the entry it
// replaced, if any.
func (d *Dialog) Insert(name string, e Entry) (previous Entry, replaced bool) {
	previous, replaced = d.entries[name]
	if !replaced {
		d.order = append(d.order, name)
	}
	d.entries[name] = e
	return previous, replaced
}

// Get returns the entry named name.
func (d *Dialog) Get(name string) (Entry, bool) {
	e, ok := d.entries[name]
	return e, ok
}

// Names returns every entry name in insertion order.
func (d *Dialog) Names() []string {
	return append([]string(nil), d.order...)
}

// Len returns the number of entries.
func (d *Dialog) Len() int {
	return len(d.entries)
}

// String serializes the dialog back to its indented text form: each entry
// as `level-1` tabs followed by `name=indented_str`, entries separated by
// a blank line.
func (d *Dialog) String() string {
	var b strings.Builder
	for _, name := range d.order {
		e := d.entries[name]
		for i := 0; i < e.Level-1; i++ {
			b.WriteByte('\t')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(e.IndentedStr)
		b.WriteString("\n\n")
	}
	return b.String()
}
