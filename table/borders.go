package table

import "strings"

// separatorBetween decides whether a horizontal border is drawn between two
// bands (above is nil for the top line, below is nil for the bottom line).
// A row with explicit BorderVisibility can force its own edge on anywhere,
// but can only hide it at the table edge or between two data rows. The
// separators around the title, header and footer always stay.
func (p *planner) separatorBetween(above, below *band) bool {
	aVis, bVis := above.visibility(), below.visibility()
	if (aVis != nil && aVis.Bottom) || (bVis != nil && bVis.Top) {
		return true
	}

	edge := above == nil || below == nil
	between := !edge && above.kind == bandData && below.kind == bandData
	if !edge && !between {
		return true
	}
	if aVis != nil || bVis != nil {
		return false
	}
	if between {
		return p.g.DisplayBorderBetweenRows
	}
	return true
}

// borderLine synthesizes one horizontal border between two bands. A column
// boundary gets a junction only where a vertical border arrives from above
// or below; boundaries swallowed by spans on both sides become straight runs.
func (p *planner) borderLine(above, below *band, widths []int, total int) string {
	pos := LineMiddle
	switch {
	case above == nil:
		pos = LineTop
	case below == nil:
		pos = LineBottom
	}

	run := string(p.border.HorizontalGlyph(pos))
	var sb strings.Builder
	sb.WriteRune(p.junction(pos, above != nil, below != nil, false, true))

	if p.n == 0 {
		sb.WriteString(strings.Repeat(run, max(total-2, 0)))
	} else {
		for j, w := range widths {
			if j > 0 {
				sb.WriteRune(p.junction(pos, above.hasBoundary(j), below.hasBoundary(j), true, true))
			}
			sb.WriteString(strings.Repeat(run, w))
		}
	}

	sb.WriteRune(p.junction(pos, above != nil, below != nil, true, false))
	return sb.String()
}

// junction picks the glyph for a point on a border line. Straight
// horizontal runs use the top, bottom or inner variant of the line.
func (p *planner) junction(pos LinePosition, top, bottom, left, right bool) rune {
	if !top && !bottom && (left || right) {
		return p.border.HorizontalGlyph(pos)
	}
	return p.border.GetIntersection(top, bottom, left, right)
}
