package table

import "github.com/young1lin/consolegrid/display"

// Row is an ordered sequence of cells plus defaults its cells inherit.
type Row struct {
	Cells []*Cell

	Alignment       HorizontalAlignment
	Overflow        OverflowBehavior
	Padding         Padding
	ForegroundColor display.Color
	BackgroundColor display.Color

	// BorderVisibility overrides the default horizontal border policy above
	// and below this row. Nil keeps the grid's policy.
	BorderVisibility *BorderVisibility

	// Hidden rows are neither measured nor rendered.
	Hidden bool
}

// NewRow creates a row with one cell per text
func NewRow(texts ...string) *Row {
	r := &Row{}
	r.AddCells(texts...)
	return r
}

// AddCell appends a cell and returns the row
func (r *Row) AddCell(c *Cell) *Row {
	r.Cells = append(r.Cells, c)
	return r
}

// AddCells appends one cell per text
func (r *Row) AddCells(texts ...string) *Row {
	for _, t := range texts {
		r.Cells = append(r.Cells, NewCell(t))
	}
	return r
}

// Cell returns the cell at index i, or nil
func (r *Row) Cell(i int) *Cell {
	if r == nil || i < 0 || i >= len(r.Cells) {
		return nil
	}
	return r.Cells[i]
}

func (r *Row) visible() bool {
	return r != nil && !r.Hidden
}
