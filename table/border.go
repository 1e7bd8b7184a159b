package table

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Glyph positions inside a border template string: clockwise around the
// outside starting at the top-left corner, then the inner glyphs.
const (
	glyphTopLeft = iota
	glyphTop
	glyphTopRight
	glyphRight
	glyphBottomRight
	glyphBottom
	glyphBottomLeft
	glyphLeft
	glyphTopIntersection
	glyphVertical
	glyphBottomIntersection
	glyphHorizontal
	glyphLeftIntersection
	glyphCross
	glyphRightIntersection
	glyphFill

	templateLength = glyphFill
)

// LinePosition tells which horizontal border line a glyph is drawn on
type LinePosition int

const (
	LineTop LinePosition = iota
	LineMiddle
	LineBottom
)

// BorderTemplate is a palette of border glyphs.
//
// A template string has 15 runes, in this order:
//
//	top-left, top, top-right, right, bottom-right, bottom, bottom-left, left,
//	top-intersection, vertical, bottom-intersection, horizontal,
//	left-intersection, cross, right-intersection
//
// An optional 16th rune is drawn where no line meets; it defaults to a space.
type BorderTemplate struct {
	glyphs [templateLength + 1]rune
}

var (
	// PlusMinusBorderTemplate draws with ASCII '+', '-' and '|'. It is the default.
	PlusMinusBorderTemplate = MustBorderTemplate("+-+|+-+|+|+-+++")
	// SingleLineBorderTemplate draws with light box-drawing characters.
	SingleLineBorderTemplate = MustBorderTemplate("┌─┐│┘─└│┬│┴─├┼┤")
	// DoubleLineBorderTemplate draws with double box-drawing characters.
	DoubleLineBorderTemplate = MustBorderTemplate("╔═╗║╝═╚║╦║╩═╠╬╣")
	// NoBorderTemplate draws spaces everywhere.
	NoBorderTemplate = MustBorderTemplate(strings.Repeat(" ", templateLength))
)

// NewBorderTemplate parses a 15 or 16 rune template string
func NewBorderTemplate(chars string) (BorderTemplate, error) {
	n := utf8.RuneCountInString(chars)
	if n != templateLength && n != templateLength+1 {
		return BorderTemplate{}, fmt.Errorf("%w: expected %d or %d characters, got %d",
			ErrInvalidBorderTemplate, templateLength, templateLength+1, n)
	}

	var b BorderTemplate
	b.glyphs[glyphFill] = ' '
	i := 0
	for _, r := range chars {
		b.glyphs[i] = r
		i++
	}
	return b, nil
}

// MustBorderTemplate is like NewBorderTemplate but panics on error
func MustBorderTemplate(chars string) BorderTemplate {
	b, err := NewBorderTemplate(chars)
	if err != nil {
		panic(err)
	}
	return b
}

// BorderTemplateByName returns a preset by name: "plusminus" (or "ascii"),
// "single", "double" or "none".
func BorderTemplateByName(name string) (BorderTemplate, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "plusminus", "plus-minus", "ascii":
		return PlusMinusBorderTemplate, nil
	case "single", "single-line":
		return SingleLineBorderTemplate, nil
	case "double", "double-line":
		return DoubleLineBorderTemplate, nil
	case "none":
		return NoBorderTemplate, nil
	}
	return BorderTemplate{}, fmt.Errorf("%w: unknown preset %q", ErrInvalidBorderTemplate, name)
}

// IsZero reports whether the template was never initialised
func (b BorderTemplate) IsZero() bool {
	return b == BorderTemplate{}
}

// String returns the template in its 16 rune form
func (b BorderTemplate) String() string {
	return string(b.glyphs[:])
}

func (b BorderTemplate) TopLeft() rune            { return b.glyphs[glyphTopLeft] }
func (b BorderTemplate) Top() rune                { return b.glyphs[glyphTop] }
func (b BorderTemplate) TopRight() rune           { return b.glyphs[glyphTopRight] }
func (b BorderTemplate) Right() rune              { return b.glyphs[glyphRight] }
func (b BorderTemplate) BottomRight() rune        { return b.glyphs[glyphBottomRight] }
func (b BorderTemplate) Bottom() rune             { return b.glyphs[glyphBottom] }
func (b BorderTemplate) BottomLeft() rune         { return b.glyphs[glyphBottomLeft] }
func (b BorderTemplate) Left() rune               { return b.glyphs[glyphLeft] }
func (b BorderTemplate) TopIntersection() rune    { return b.glyphs[glyphTopIntersection] }
func (b BorderTemplate) Vertical() rune           { return b.glyphs[glyphVertical] }
func (b BorderTemplate) BottomIntersection() rune { return b.glyphs[glyphBottomIntersection] }
func (b BorderTemplate) Horizontal() rune         { return b.glyphs[glyphHorizontal] }
func (b BorderTemplate) LeftIntersection() rune   { return b.glyphs[glyphLeftIntersection] }
func (b BorderTemplate) Cross() rune              { return b.glyphs[glyphCross] }
func (b BorderTemplate) RightIntersection() rune  { return b.glyphs[glyphRightIntersection] }
func (b BorderTemplate) Fill() rune               { return b.glyphs[glyphFill] }

// GetIntersection returns the glyph for a point where lines arrive from the
// given directions. Straight runs and single stubs return the inner
// horizontal or vertical glyph; no direction returns the fill glyph.
func (b BorderTemplate) GetIntersection(hasTop, hasBottom, hasLeft, hasRight bool) rune {
	switch {
	case hasTop && hasBottom && hasLeft && hasRight:
		return b.glyphs[glyphCross]
	case !hasTop && hasBottom && hasLeft && hasRight:
		return b.glyphs[glyphTopIntersection]
	case hasTop && !hasBottom && hasLeft && hasRight:
		return b.glyphs[glyphBottomIntersection]
	case hasTop && hasBottom && !hasLeft && hasRight:
		return b.glyphs[glyphLeftIntersection]
	case hasTop && hasBottom && hasLeft && !hasRight:
		return b.glyphs[glyphRightIntersection]
	case !hasTop && hasBottom && !hasLeft && hasRight:
		return b.glyphs[glyphTopLeft]
	case !hasTop && hasBottom && hasLeft && !hasRight:
		return b.glyphs[glyphTopRight]
	case hasTop && !hasBottom && hasLeft && !hasRight:
		return b.glyphs[glyphBottomRight]
	case hasTop && !hasBottom && !hasLeft && hasRight:
		return b.glyphs[glyphBottomLeft]
	case (hasTop || hasBottom) && !hasLeft && !hasRight:
		return b.glyphs[glyphVertical]
	case hasLeft || hasRight:
		return b.glyphs[glyphHorizontal]
	default:
		return b.glyphs[glyphFill]
	}
}

// HorizontalGlyph returns the straight horizontal glyph for a line position
func (b BorderTemplate) HorizontalGlyph(pos LinePosition) rune {
	switch pos {
	case LineTop:
		return b.glyphs[glyphTop]
	case LineBottom:
		return b.glyphs[glyphBottom]
	default:
		return b.glyphs[glyphHorizontal]
	}
}
