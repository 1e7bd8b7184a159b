// Package table lays out and renders tabular data as a fixed-width
// character grid with box-drawing borders.
//
// A Grid owns an optional title, a header row derived from its columns, data
// rows, an optional footer and an empty message. Every render recomputes the
// layout from scratch: Plan builds an immutable LayoutPlan (column widths and
// every output line) and Render writes that plan through a display.Display.
//
//	g := table.NewGrid()
//	g.SetTitle("Inventory")
//	g.AddColumn("Item")
//	g.AddColumn("Qty").Alignment = table.AlignRight
//	g.AddRow("apples", "3")
//	fmt.Print(g.String())
//
// Alignment, overflow and colors inherit cell → column → row → grid; padding
// inherits cell → row → column → grid. The built-in defaults are left
// alignment, word wrapping, one space of left/right padding and no
// top/bottom padding.
package table

import (
	"fmt"
	"os"

	"github.com/young1lin/consolegrid/display"
)

// Grid is a table of rows and columns.
type Grid struct {
	// Title and Footer render their first cell across the full table width.
	Title  *Row
	Footer *Row

	// HeaderRow supplies defaults and visibility for the header cells,
	// which come from Columns.
	HeaderRow *Row
	Columns   []*Column
	Rows      []*Row

	// EmptyMessage replaces the data area when there are no data rows.
	EmptyMessage MultilineText

	// Border draws as PlusMinusBorderTemplate when zero.
	Border           BorderTemplate
	HideBorder       bool
	BorderForeground display.Color
	BorderBackground display.Color

	// DisplayBorderBetweenRows draws a separator between data rows.
	DisplayBorderBetweenRows bool

	Alignment       HorizontalAlignment
	Overflow        OverflowBehavior
	Padding         Padding
	ForegroundColor display.Color
	BackgroundColor display.Color

	minWidth int
	maxWidth int
}

// NewGrid creates an empty grid. The zero Border draws with
// PlusMinusBorderTemplate.
func NewGrid() *Grid {
	return &Grid{
		Title:     &Row{},
		HeaderRow: &Row{},
		Footer:    &Row{},
	}
}

// SetTitle replaces the title text
func (g *Grid) SetTitle(text string) *Cell {
	if g.Title == nil {
		g.Title = &Row{}
	}
	c := NewCell(text)
	g.Title.Cells = []*Cell{c}
	return c
}

// SetFooter replaces the footer text
func (g *Grid) SetFooter(text string) *Cell {
	if g.Footer == nil {
		g.Footer = &Row{}
	}
	c := NewCell(text)
	g.Footer.Cells = []*Cell{c}
	return c
}

// AddColumn appends a column with the given header text
func (g *Grid) AddColumn(header string) *Column {
	c := NewColumn(header)
	g.Columns = append(g.Columns, c)
	return c
}

// AddRow appends a data row with one cell per text
func (g *Grid) AddRow(texts ...string) *Row {
	r := NewRow(texts...)
	g.Rows = append(g.Rows, r)
	return r
}

// MinWidth returns the minimum total width, 0 when unset
func (g *Grid) MinWidth() int { return g.minWidth }

// MaxWidth returns the maximum total width, 0 when unset
func (g *Grid) MaxWidth() int { return g.maxWidth }

// SetMinWidth sets the minimum total width (0 clears it)
func (g *Grid) SetMinWidth(w int) error {
	if err := checkWidths(w, g.maxWidth); err != nil {
		return fmt.Errorf("grid min width: %w", err)
	}
	g.minWidth = w
	return nil
}

// SetMaxWidth sets the maximum total width (0 clears it)
func (g *Grid) SetMaxWidth(w int) error {
	if err := checkWidths(g.minWidth, w); err != nil {
		return fmt.Errorf("grid max width: %w", err)
	}
	g.maxWidth = w
	return nil
}

// Plan computes the layout for the current grid state
func (g *Grid) Plan() (*LayoutPlan, error) {
	return newPlanner(g, display.NewBuffer(), 0).plan()
}

// Render lays the grid out and writes it to d
func (g *Grid) Render(d display.Display) error {
	p, err := newPlanner(g, d, 0).plan()
	if err != nil {
		return err
	}
	return p.Render(d)
}

// String renders the grid into memory. Every line ends with a newline;
// an empty grid renders as the empty string. A grid that fails to lay out
// (ErrNestingTooDeep) also yields the empty string; use Plan or Render to
// get the error.
func (g *Grid) String() string {
	buf := display.NewBuffer()
	if err := g.Render(buf); err != nil {
		return ""
	}
	return buf.String()
}

// Display renders the grid to standard output
func (g *Grid) Display() error {
	return g.Render(display.NewConsole(os.Stdout))
}

func (g *Grid) border() BorderTemplate {
	if g.Border.IsZero() {
		return PlusMinusBorderTemplate
	}
	return g.Border
}

func (g *Grid) bordered() bool {
	return !g.HideBorder
}
