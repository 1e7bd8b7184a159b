package table

import (
	"fmt"

	"github.com/young1lin/consolegrid/display"
)

// Cell is the atomic content unit of a grid.
type Cell struct {
	// Content is the text of the cell. When it is empty DefaultContent is shown.
	Content        MultilineText
	DefaultContent MultilineText

	// Nested, when set, replaces the text content with a rendered inner grid.
	// Nested content is never cut or wrapped.
	Nested *Grid

	Alignment       HorizontalAlignment
	Overflow        OverflowBehavior
	Padding         Padding
	ForegroundColor display.Color
	BackgroundColor display.Color

	columnSpan int
}

// NewCell creates a cell holding text
func NewCell(text string) *Cell {
	return &Cell{Content: NewMultilineText(text), columnSpan: 1}
}

// NewNestedCell creates a cell that renders an inner grid
func NewNestedCell(inner *Grid) *Cell {
	return &Cell{Nested: inner, columnSpan: 1}
}

// ColumnSpan returns the number of columns the cell covers
func (c *Cell) ColumnSpan() int {
	if c.columnSpan < 1 {
		return 1
	}
	return c.columnSpan
}

// SetColumnSpan sets the number of columns the cell covers
func (c *Cell) SetColumnSpan(n int) error {
	if n < 1 {
		return fmt.Errorf("span %d: %w", n, ErrInvalidColumnSpan)
	}
	c.columnSpan = n
	return nil
}

// effectiveContent returns Content, or DefaultContent when Content is empty
func (c *Cell) effectiveContent() MultilineText {
	if c.Content.IsEmpty() {
		return c.DefaultContent
	}
	return c.Content
}

// hasContent reports whether the cell would render anything
func (c *Cell) hasContent() bool {
	return c.Nested != nil || !c.effectiveContent().IsEmpty()
}
