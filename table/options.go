package table

import (
	"fmt"
	"strings"

	"github.com/young1lin/consolegrid/internal/render"
)

// HorizontalAlignment positions content inside a cell
type HorizontalAlignment int

const (
	// AlignDefault inherits the alignment from the column, row or grid.
	AlignDefault HorizontalAlignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

var alignmentNames = [...]string{
	AlignDefault: "default",
	AlignLeft:    "left",
	AlignCenter:  "center",
	AlignRight:   "right",
}

func (a HorizontalAlignment) String() string {
	if a < 0 || int(a) >= len(alignmentNames) {
		return fmt.Sprintf("HorizontalAlignment(%d)", int(a))
	}
	return alignmentNames[a]
}

// ParseAlignment parses "left", "center", "right" or "default" (case-insensitive).
// The empty string parses as AlignDefault.
func ParseAlignment(s string) (HorizontalAlignment, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return AlignDefault, nil
	}
	for i, name := range alignmentNames {
		if name == s {
			return HorizontalAlignment(i), nil
		}
	}
	return AlignDefault, fmt.Errorf("unknown alignment %q", s)
}

func (a HorizontalAlignment) textAlign() render.Align {
	switch a {
	case AlignCenter:
		return render.AlignCenter
	case AlignRight:
		return render.AlignRight
	default:
		return render.AlignLeft
	}
}

// OverflowBehavior controls what happens to content wider than its cell
type OverflowBehavior int

const (
	// OverflowDefault inherits the behavior from the column, row or grid.
	OverflowDefault OverflowBehavior = iota
	// OverflowVisible never cuts or wraps; the line spills past the cell.
	OverflowVisible
	OverflowCutChar
	OverflowCutCharWithEllipsis
	OverflowCutWord
	OverflowCutWordWithEllipsis
	OverflowWrapChar
	OverflowWrapWord
)

var overflowNames = [...]string{
	OverflowDefault:             "default",
	OverflowVisible:             "overflow",
	OverflowCutChar:             "cut-char",
	OverflowCutCharWithEllipsis: "cut-char-ellipsis",
	OverflowCutWord:             "cut-word",
	OverflowCutWordWithEllipsis: "cut-word-ellipsis",
	OverflowWrapChar:            "wrap-char",
	OverflowWrapWord:            "wrap-word",
}

func (o OverflowBehavior) String() string {
	if o < 0 || int(o) >= len(overflowNames) {
		return fmt.Sprintf("OverflowBehavior(%d)", int(o))
	}
	return overflowNames[o]
}

// ParseOverflow parses an overflow behavior name such as "wrap-word".
// The empty string parses as OverflowDefault.
func ParseOverflow(s string) (OverflowBehavior, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return OverflowDefault, nil
	}
	for i, name := range overflowNames {
		if name == s {
			return OverflowBehavior(i), nil
		}
	}
	return OverflowDefault, fmt.Errorf("unknown overflow behavior %q", s)
}

// Padding holds the four padding values of a cell, row, column or grid.
// Unset sides inherit from the next level.
type Padding struct {
	left, right, top, bottom *int
}

func setPadding(dst **int, v int, side string) error {
	if v < 0 {
		return fmt.Errorf("%s padding %d: %w", side, v, ErrInvalidPadding)
	}
	*dst = &v
	return nil
}

// SetLeft sets the left padding
func (p *Padding) SetLeft(v int) error { return setPadding(&p.left, v, "left") }

// SetRight sets the right padding
func (p *Padding) SetRight(v int) error { return setPadding(&p.right, v, "right") }

// SetTop sets the top padding
func (p *Padding) SetTop(v int) error { return setPadding(&p.top, v, "top") }

// SetBottom sets the bottom padding
func (p *Padding) SetBottom(v int) error { return setPadding(&p.bottom, v, "bottom") }

// SetHorizontal sets left and right padding
func (p *Padding) SetHorizontal(v int) error {
	if err := p.SetLeft(v); err != nil {
		return err
	}
	return p.SetRight(v)
}

// SetVertical sets top and bottom padding
func (p *Padding) SetVertical(v int) error {
	if err := p.SetTop(v); err != nil {
		return err
	}
	return p.SetBottom(v)
}

// Clear unsets all four sides
func (p *Padding) Clear() {
	*p = Padding{}
}

// Left returns the left padding and whether it is set
func (p Padding) Left() (int, bool) { return deref(p.left) }

// Right returns the right padding and whether it is set
func (p Padding) Right() (int, bool) { return deref(p.right) }

// Top returns the top padding and whether it is set
func (p Padding) Top() (int, bool) { return deref(p.top) }

// Bottom returns the bottom padding and whether it is set
func (p Padding) Bottom() (int, bool) { return deref(p.bottom) }

func deref(v *int) (int, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

// BorderVisibility controls the horizontal borders around one row.
// Left and Right are reserved; vertical edges are always drawn.
type BorderVisibility struct {
	Left   bool
	Top    bool
	Right  bool
	Bottom bool
}

// NewBorderVisibility creates a border visibility value
func NewBorderVisibility(left, top, right, bottom bool) *BorderVisibility {
	return &BorderVisibility{Left: left, Top: top, Right: right, Bottom: bottom}
}
