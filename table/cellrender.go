package table

import (
	"github.com/young1lin/consolegrid/display"
	"github.com/young1lin/consolegrid/internal/render"
)

// overflowFunc turns one content line into the physical lines it occupies
// at the given width
type overflowFunc func(line string, width int) []string

func single(s string) []string { return []string{s} }

// overflowStrategies is indexed by OverflowBehavior. OverflowDefault never
// reaches it: resolution always produces a concrete behavior.
var overflowStrategies = [...]overflowFunc{
	OverflowDefault:             render.WrapWord,
	OverflowVisible:             func(line string, _ int) []string { return single(line) },
	OverflowCutChar:             func(line string, w int) []string { return single(render.CutChar(line, w, false)) },
	OverflowCutCharWithEllipsis: func(line string, w int) []string { return single(render.CutChar(line, w, true)) },
	OverflowCutWord:             func(line string, w int) []string { return single(render.CutWord(line, w, false)) },
	OverflowCutWordWithEllipsis: func(line string, w int) []string { return single(render.CutWord(line, w, true)) },
	OverflowWrapChar:            render.WrapChar,
	OverflowWrapWord:            render.WrapWord,
}

// formatLines applies an overflow behavior to every line of text
func formatLines(text MultilineText, width int, behavior OverflowBehavior) []string {
	fn := overflowStrategies[OverflowDefault]
	if behavior >= 0 && int(behavior) < len(overflowStrategies) {
		fn = overflowStrategies[behavior]
	}

	var out []string
	for _, line := range text.lines {
		out = append(out, fn(line, width)...)
	}
	return out
}

// formattedWidth is the width text occupies once formatted at width.
// Visible overflow is never modified, so it reports at most width.
func formattedWidth(text MultilineText, width int, behavior OverflowBehavior) int {
	if behavior == OverflowVisible {
		return min(text.Width(), width)
	}
	w := 0
	for _, line := range formatLines(text, width, behavior) {
		w = max(w, render.Measure(line))
	}
	return w
}

// renderCell produces the physical lines of a cell allocated width columns:
// top padding, aligned content and bottom padding.
func renderCell(c *bandCell, width int) [][]display.Segment {
	contentWidth := max(width-c.pad.horizontal(), 0)
	blank := []display.Segment{{Text: render.Spaces(width), Foreground: c.fg, Background: c.bg}}

	var lines [][]display.Segment
	for i := 0; i < c.pad.top; i++ {
		lines = append(lines, blank)
	}

	before := len(lines)
	if c.isNested {
		for _, inner := range c.nested {
			lines = append(lines, c.alignNested(inner, contentWidth))
		}
	} else {
		for _, line := range formatLines(c.content, contentWidth, c.overflow) {
			text := render.Spaces(c.pad.left) +
				render.AlignText(line, contentWidth, c.align.textAlign()) +
				render.Spaces(c.pad.right)
			lines = append(lines, []display.Segment{{Text: text, Foreground: c.fg, Background: c.bg}})
		}
	}
	if len(lines) == before {
		lines = append(lines, blank)
	}

	for i := 0; i < c.pad.bottom; i++ {
		lines = append(lines, blank)
	}
	return lines
}

// alignNested positions one line of a nested grid, keeping its own colors
func (c *bandCell) alignNested(inner []display.Segment, contentWidth int) []display.Segment {
	remainder := max(contentWidth-render.Measure(display.PlainText(inner)), 0)

	left, right := 0, remainder
	switch c.align {
	case AlignCenter:
		left = remainder / 2
		right = remainder - left
	case AlignRight:
		left, right = remainder, 0
	}

	var out []display.Segment
	out = appendSegment(out, render.Spaces(c.pad.left+left), c.fg, c.bg)
	for _, s := range inner {
		out = appendSegment(out, s.Text, s.Foreground, s.Background)
	}
	return appendSegment(out, render.Spaces(right+c.pad.right), c.fg, c.bg)
}

// appendSegment appends text, merging it into the last segment when the
// colors match
func appendSegment(segs []display.Segment, text string, fg, bg display.Color) []display.Segment {
	if text == "" {
		return segs
	}
	if n := len(segs); n > 0 && segs[n-1].Foreground == fg && segs[n-1].Background == bg {
		segs[n-1].Text += text
		return segs
	}
	return append(segs, display.Segment{Text: text, Foreground: fg, Background: bg})
}
