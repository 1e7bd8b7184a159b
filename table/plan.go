package table

import (
	"strings"

	"github.com/young1lin/consolegrid/display"
	"github.com/young1lin/consolegrid/internal/render"
)

// PlanLine is one physical output line
type PlanLine struct {
	Segments []display.Segment
}

// Text returns the line without colors
func (l PlanLine) Text() string {
	return display.PlainText(l.Segments)
}

// LayoutPlan is the computed, immutable result of laying out a grid.
type LayoutPlan struct {
	columnWidths []int
	totalWidth   int
	lines        []PlanLine
}

// ColumnWidths returns the final width of each column, padding included
func (p *LayoutPlan) ColumnWidths() []int {
	return append([]int(nil), p.columnWidths...)
}

// TotalWidth returns the width of every output line
func (p *LayoutPlan) TotalWidth() int {
	return p.totalWidth
}

// Lines returns the output lines
func (p *LayoutPlan) Lines() []PlanLine {
	return append([]PlanLine(nil), p.lines...)
}

// Render writes the plan to d, one line at a time, then flushes it
func (p *LayoutPlan) Render(d display.Display) error {
	for _, line := range p.lines {
		if err := display.WriteLine(d, line.Segments); err != nil {
			return err
		}
	}
	return d.Flush()
}

// String returns the plan as text, each line terminated by a newline
func (p *LayoutPlan) String() string {
	var sb strings.Builder
	for _, line := range p.lines {
		sb.WriteString(line.Text())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// build walks the bands top to bottom, interleaving border lines with the
// content lines of each band
func (p *planner) build(widths []int, total int) *LayoutPlan {
	lp := &LayoutPlan{columnWidths: widths, totalWidth: total}
	fg, bg := p.g.BorderForeground, p.g.BorderBackground

	addBorder := func(above, below *band) {
		if !p.bordered || !p.separatorBetween(above, below) {
			return
		}
		text := p.borderLine(above, below, widths, total)
		lp.lines = append(lp.lines, PlanLine{Segments: []display.Segment{{Text: text, Foreground: fg, Background: bg}}})
	}

	var previous *band
	for _, b := range p.bands {
		addBorder(previous, b)
		lp.lines = append(lp.lines, p.contentLines(b, widths, total)...)
		previous = b
	}
	addBorder(previous, nil)

	return lp
}

// contentLines renders every cell of a band and stitches the cells together
// with vertical borders. Cells shorter than the band are padded at the bottom.
func (p *planner) contentLines(b *band, widths []int, total int) []PlanLine {
	inner := p.innerBorder()
	fg, bg := p.g.BorderForeground, p.g.BorderBackground

	blocks := make([][][]display.Segment, len(b.cells))
	cellWidths := make([]int, len(b.cells))
	height := 0
	for i, c := range b.cells {
		w := total - 2*inner
		if !c.full {
			w = spanWidth(widths, c.col, c.span, inner)
		}
		cellWidths[i] = w
		blocks[i] = renderCell(c, w)
		height = max(height, len(blocks[i]))
	}

	lines := make([]PlanLine, height)
	for row := 0; row < height; row++ {
		var segs []display.Segment
		if p.bordered {
			segs = appendSegment(segs, string(p.border.Left()), fg, bg)
		}
		for i, c := range b.cells {
			if i > 0 && p.bordered {
				segs = appendSegment(segs, string(p.border.Vertical()), fg, bg)
			}
			if row < len(blocks[i]) {
				for _, s := range blocks[i][row] {
					segs = appendSegment(segs, s.Text, s.Foreground, s.Background)
				}
			} else {
				segs = appendSegment(segs, render.Spaces(cellWidths[i]), c.fg, c.bg)
			}
		}
		if p.bordered {
			segs = appendSegment(segs, string(p.border.Right()), fg, bg)
		}
		lines[row] = PlanLine{Segments: segs}
	}
	return lines
}
