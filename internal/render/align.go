// Package render provides the text primitives used by the table engine:
// measuring, padding, alignment, cutting and wrapping of single lines.
package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// cond measures ambiguous-width runes as one column regardless of the
// locale, so a grid lays out the same on every machine
var cond = &runewidth.Condition{EastAsianWidth: false}

// Align provides text alignment utilities
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Measure returns the display width of a string
func Measure(s string) int {
	return cond.StringWidth(s)
}

// Spaces returns a run of n spaces (empty for n <= 0)
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// PadLeft adds padding to the left of a string
func PadLeft(s string, width int) string {
	currentWidth := Measure(s)
	if currentWidth >= width {
		return s
	}
	return Spaces(width-currentWidth) + s
}

// PadRight adds padding to the right of a string
func PadRight(s string, width int) string {
	currentWidth := Measure(s)
	if currentWidth >= width {
		return s
	}
	return s + Spaces(width-currentWidth)
}

// PadCenter centers a string within the given width.
// When the remaining space is odd the extra space goes to the right.
func PadCenter(s string, width int) string {
	currentWidth := Measure(s)
	if currentWidth >= width {
		return s
	}
	padding := width - currentWidth
	leftPadding := padding / 2
	rightPadding := padding - leftPadding
	return Spaces(leftPadding) + s + Spaces(rightPadding)
}

// AlignText pads s to width according to a. Text wider than width is
// returned unchanged.
func AlignText(s string, width int, a Align) string {
	switch a {
	case AlignCenter:
		return PadCenter(s, width)
	case AlignRight:
		return PadLeft(s, width)
	default:
		return PadRight(s, width)
	}
}

// Truncate truncates a string to the given display width
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return cond.Truncate(s, width, "")
}
