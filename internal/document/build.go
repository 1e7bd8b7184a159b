package document

import (
	"fmt"

	"github.com/young1lin/consolegrid/display"
	"github.com/young1lin/consolegrid/table"
)

// Build converts the document into a grid
func (d *Document) Build() (*table.Grid, error) {
	g := table.NewGrid()

	if d.Border != "" {
		border, err := parseBorder(d.Border)
		if err != nil {
			return nil, err
		}
		g.Border = border
	}
	g.HideBorder = d.HideBorder
	g.DisplayBorderBetweenRows = d.RowBorders
	g.BorderForeground = display.Color(d.BorderColor)

	if err := g.SetMinWidth(d.MinWidth); err != nil {
		return nil, err
	}
	if err := g.SetMaxWidth(d.MaxWidth); err != nil {
		return nil, err
	}

	var err error
	if g.Alignment, g.Overflow, err = parseModes(d.Align, d.Overflow); err != nil {
		return nil, err
	}
	if err := applyPadding(&g.Padding, d.Padding); err != nil {
		return nil, err
	}
	g.ForegroundColor = display.Color(d.Foreground)
	g.BackgroundColor = display.Color(d.Background)

	if d.Title != "" {
		g.SetTitle(d.Title)
	}
	if d.Footer != "" {
		g.SetFooter(d.Footer)
	}
	g.EmptyMessage = table.NewMultilineText(d.EmptyMessage)
	g.HeaderRow.Hidden = d.HideHeader

	for i, c := range d.Columns {
		col, err := c.build()
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		g.Columns = append(g.Columns, col)
	}

	for i, r := range d.Rows {
		row, err := r.build()
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		g.Rows = append(g.Rows, row)
	}
	return g, nil
}

func (c Column) build() (*table.Column, error) {
	col := table.NewColumn(c.Header)
	if err := col.SetMinWidth(c.MinWidth); err != nil {
		return nil, err
	}
	if err := col.SetMaxWidth(c.MaxWidth); err != nil {
		return nil, err
	}

	var err error
	if col.Alignment, col.Overflow, err = parseModes(c.Align, c.Overflow); err != nil {
		return nil, err
	}
	if err := applyPadding(&col.Padding, c.Padding); err != nil {
		return nil, err
	}
	col.ForegroundColor = display.Color(c.Foreground)
	col.BackgroundColor = display.Color(c.Background)
	return col, nil
}

func (r Row) build() (*table.Row, error) {
	row := &table.Row{Hidden: r.Hidden}

	var err error
	if row.Alignment, row.Overflow, err = parseModes(r.Align, r.Overflow); err != nil {
		return nil, err
	}
	if err := applyPadding(&row.Padding, r.Padding); err != nil {
		return nil, err
	}
	row.ForegroundColor = display.Color(r.Foreground)
	row.BackgroundColor = display.Color(r.Background)
	if b := r.Borders; b != nil {
		row.BorderVisibility = table.NewBorderVisibility(b.Left, b.Top, b.Right, b.Bottom)
	}

	for i, c := range r.Cells {
		cell, err := c.build()
		if err != nil {
			return nil, fmt.Errorf("cell %d: %w", i, err)
		}
		row.AddCell(cell)
	}
	return row, nil
}

func (c Cell) build() (*table.Cell, error) {
	var cell *table.Cell
	if c.Grid != nil {
		inner, err := c.Grid.Build()
		if err != nil {
			return nil, fmt.Errorf("nested grid: %w", err)
		}
		cell = table.NewNestedCell(inner)
	} else {
		cell = table.NewCell(c.Text)
		cell.DefaultContent = table.NewMultilineText(c.Default)
	}

	if c.Span != 0 {
		if err := cell.SetColumnSpan(c.Span); err != nil {
			return nil, err
		}
	}

	var err error
	if cell.Alignment, cell.Overflow, err = parseModes(c.Align, c.Overflow); err != nil {
		return nil, err
	}
	if err := applyPadding(&cell.Padding, c.Padding); err != nil {
		return nil, err
	}
	cell.ForegroundColor = display.Color(c.Foreground)
	cell.BackgroundColor = display.Color(c.Background)
	return cell, nil
}

func parseBorder(s string) (table.BorderTemplate, error) {
	if b, err := table.BorderTemplateByName(s); err == nil {
		return b, nil
	}
	return table.NewBorderTemplate(s)
}

func parseModes(align, overflow string) (table.HorizontalAlignment, table.OverflowBehavior, error) {
	a, err := table.ParseAlignment(align)
	if err != nil {
		return a, table.OverflowDefault, err
	}
	o, err := table.ParseOverflow(overflow)
	return a, o, err
}

func applyPadding(dst *table.Padding, p *Padding) error {
	if p == nil {
		return nil
	}
	for _, side := range []struct {
		v   *int
		set func(int) error
	}{
		{p.Left, dst.SetLeft},
		{p.Right, dst.SetRight},
		{p.Top, dst.SetTop},
		{p.Bottom, dst.SetBottom},
	} {
		if side.v == nil {
			continue
		}
		if err := side.set(*side.v); err != nil {
			return err
		}
	}
	return nil
}
