package dialog

import "fmt"

// Parse reads a dialog file's text into a Dialog. Entries are separated by
// their indentation: the leading run of spaces, tabs, and line endings
// before a `KEY=` sets that entry's nesting level, and the body continues
// onto following lines as long as each one is indented by at least one
// more space/tab character than that level.
func Parse(input string) (*Dialog, error) {
	d := New()
	i := 0
	n := len(input)

	for i < n {
		level, rest := skipIndentRun(input, i)
		i = rest
		if i >= n {
			break
		}

		name, bodyStart, err := scanName(input, i)
		if err != nil {
			return nil, fmt.Errorf("dialog: %w (offset %d)", err, i)
		}

		entry, next := scanEntryText(input, bodyStart, level+1)
		d.Insert(name, entry)
		i = next
	}

	return d, nil
}

// skipIndentRun consumes a run of ' ', '\t', '\r', and '\n' starting at i,
// returning the number of space/tab characters seen (the level) and the
// offset just past the run. Line endings are consumed but don't count
// toward the level or reset the count, matching the reference grammar.
func skipIndentRun(s string, i int) (level, next int) {
	for i < len(s) {
		switch s[i] {
		case ' ', '\t':
			level++
			i++
		case '\r', '\n':
			i++
		default:
			return level, i
		}
	}
	return level, i
}

// scanName reads up to (not including) the next '=', returning the key
// name and the offset of the first byte after the '='.
func scanName(s string, i int) (name string, next int, err error) {
	start := i
	for i < len(s) && s[i] != '=' {
		i++
	}
	if i >= len(s) {
		return "", 0, fmt.Errorf("entry name missing '='")
	}
	return s[start:i], i + 1, nil
}

// scanEntryText reads one entry's (possibly multi-line) body, stopping at
// the first following line that isn't indented by at least level
// characters, or at end of input. level is the number of leading
// spaces/tabs required on continuation lines, one more than the entry's
// own nesting level.
func scanEntryText(s string, i, level int) (Entry, int) {
	start := i
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	start = i

	taken := i
	n := len(s)
	for {
		for taken < n && s[taken] != '\r' && s[taken] != '\n' {
			taken++
		}
		if taken >= n {
			break
		}
		if s[taken] == '\r' {
			taken += 2
		} else {
			taken++
		}

		ok := true
		for k := 0; k < level; k++ {
			if taken >= n || (s[taken] != ' ' && s[taken] != '\t') {
				ok = false
				break
			}
			taken++
		}
		if !ok {
			break
		}
	}

	indentedStr := s[start:taken]
	if len(indentedStr) > 0 && indentedStr[len(indentedStr)-1] == '\n' {
		indentedStr = indentedStr[:len(indentedStr)-1]
	}
	return Entry{IndentedStr: indentedStr, Level: level}, taken
}
