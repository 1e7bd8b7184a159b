package table

import (
	"fmt"

	"github.com/young1lin/consolegrid/display"
)

// Column describes one logical grid column: its header cell, width
// constraints and the defaults its cells inherit.
type Column struct {
	Header *Cell

	Alignment       HorizontalAlignment
	Overflow        OverflowBehavior
	Padding         Padding
	ForegroundColor display.Color
	BackgroundColor display.Color

	minWidth int
	maxWidth int
}

// NewColumn creates a column with a header
func NewColumn(header string) *Column {
	return &Column{Header: NewCell(header)}
}

// MinWidth returns the minimum width including padding, 0 when unset
func (c *Column) MinWidth() int { return c.minWidth }

// MaxWidth returns the maximum width including padding, 0 when unset
func (c *Column) MaxWidth() int { return c.maxWidth }

// SetMinWidth sets the minimum column width (0 clears it)
func (c *Column) SetMinWidth(w int) error {
	if err := checkWidths(w, c.maxWidth); err != nil {
		return fmt.Errorf("column min width: %w", err)
	}
	c.minWidth = w
	return nil
}

// SetMaxWidth sets the maximum column width (0 clears it)
func (c *Column) SetMaxWidth(w int) error {
	if err := checkWidths(c.minWidth, w); err != nil {
		return fmt.Errorf("column max width: %w", err)
	}
	c.maxWidth = w
	return nil
}

// checkWidths validates a min/max pair where 0 means unset
func checkWidths(minWidth, maxWidth int) error {
	if minWidth < 0 {
		return fmt.Errorf("%w: min width %d is negative", ErrInvalidWidth, minWidth)
	}
	if maxWidth < 0 {
		return fmt.Errorf("%w: max width %d is negative", ErrInvalidWidth, maxWidth)
	}
	if minWidth > 0 && maxWidth > 0 && minWidth > maxWidth {
		return fmt.Errorf("%w: min width %d exceeds max width %d", ErrInvalidWidth, minWidth, maxWidth)
	}
	return nil
}
