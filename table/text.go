package table

import (
	"strings"

	"github.com/young1lin/consolegrid/internal/render"
)

// MultilineText is an immutable sequence of physical lines.
type MultilineText struct {
	lines []string
}

// Empty has no lines.
var Empty = MultilineText{}

// NewMultilineText splits s on "\r\n", "\r" and "\n". Each terminator is
// recognised on its own, so mixed line endings are fine. A trailing
// terminator yields a trailing empty line; the empty string yields Empty.
func NewMultilineText(s string) MultilineText {
	if s == "" {
		return Empty
	}

	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			lines = append(lines, s[start:i])
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			start = i + 1
		case '\n':
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return MultilineText{lines: lines}
}

// NewMultilineTextFromLines builds a text from already split lines
func NewMultilineTextFromLines(lines ...string) MultilineText {
	if len(lines) == 0 {
		return Empty
	}
	return MultilineText{lines: append([]string(nil), lines...)}
}

// LineCount returns the number of lines
func (t MultilineText) LineCount() int {
	return len(t.lines)
}

// IsEmpty reports whether the text has no lines
func (t MultilineText) IsEmpty() bool {
	return len(t.lines) == 0
}

// Width returns the display width of the longest line
func (t MultilineText) Width() int {
	width := 0
	for _, line := range t.lines {
		if w := render.Measure(line); w > width {
			width = w
		}
	}
	return width
}

// Lines returns a copy of the lines
func (t MultilineText) Lines() []string {
	return append([]string(nil), t.lines...)
}

// Equal reports whether both texts have the same lines
func (t MultilineText) Equal(other MultilineText) bool {
	if len(t.lines) != len(other.lines) {
		return false
	}
	for i := range t.lines {
		if t.lines[i] != other.lines[i] {
			return false
		}
	}
	return true
}

func (t MultilineText) String() string {
	return strings.Join(t.lines, "\n")
}
