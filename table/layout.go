package table

import (
	"fmt"

	"github.com/young1lin/consolegrid/display"
	"github.com/young1lin/consolegrid/internal/render"
)

const maxNestingDepth = 8

type bandKind int

const (
	bandTitle bandKind = iota
	bandHeader
	bandData
	bandEmpty
	bandFooter
)

// band is one horizontal slice of the table: the title, the header, a data
// row, the empty message or the footer.
type band struct {
	kind  bandKind
	row   *Row
	full  bool
	cells []*bandCell
}

func (b *band) visibility() *BorderVisibility {
	if b == nil || b.row == nil {
		return nil
	}
	return b.row.BorderVisibility
}

// hasBoundary reports whether a vertical border starts at column j inside the band
func (b *band) hasBoundary(j int) bool {
	if b == nil || b.full || j <= 0 {
		return false
	}
	for _, c := range b.cells {
		if c.col == j {
			return true
		}
	}
	return false
}

// bandCell is a cell with every inherited property resolved
type bandCell struct {
	col, span int
	full      bool

	pad      resolvedPadding
	align    HorizontalAlignment
	overflow OverflowBehavior
	fg, bg   display.Color

	content  MultilineText
	nested   [][]display.Segment
	isNested bool

	// columnCap is the owning column's max width for span-1 cells, 0 when unset
	columnCap int
	// pref is the preferred width including padding, set by measure
	pref int
}

func (c *bandCell) naturalWidth() int {
	if !c.isNested {
		return c.content.Width()
	}
	width := 0
	for _, line := range c.nested {
		if w := render.Measure(display.PlainText(line)); w > width {
			width = w
		}
	}
	return width
}

// level is one step of the property inheritance chain
type level struct {
	align    HorizontalAlignment
	overflow OverflowBehavior
	pad      *Padding
	fg, bg   display.Color
}

func cellLevel(c *Cell) level {
	return level{c.Alignment, c.Overflow, &c.Padding, c.ForegroundColor, c.BackgroundColor}
}

func rowLevel(r *Row) level {
	if r == nil {
		return level{}
	}
	return level{r.Alignment, r.Overflow, &r.Padding, r.ForegroundColor, r.BackgroundColor}
}

func columnLevel(c *Column) level {
	if c == nil {
		return level{}
	}
	return level{c.Alignment, c.Overflow, &c.Padding, c.ForegroundColor, c.BackgroundColor}
}

func gridLevel(g *Grid) level {
	return level{g.Alignment, g.Overflow, &g.Padding, g.ForegroundColor, g.BackgroundColor}
}

// planner computes a LayoutPlan from a grid snapshot
type planner struct {
	g        *Grid
	parent   display.Display
	depth    int
	bordered bool
	border   BorderTemplate
	n        int
	bands    []*band
}

func newPlanner(g *Grid, parent display.Display, depth int) *planner {
	return &planner{
		g:        g,
		parent:   parent,
		depth:    depth,
		bordered: g.bordered(),
		border:   g.border(),
	}
}

func (p *planner) plan() (*LayoutPlan, error) {
	if p.depth > maxNestingDepth {
		return nil, fmt.Errorf("depth %d: %w", p.depth, ErrNestingTooDeep)
	}

	p.n = p.columnCount()
	if err := p.collectBands(); err != nil {
		return nil, err
	}
	if len(p.bands) == 0 {
		return &LayoutPlan{}, nil
	}

	p.measure(nil, 0)
	widths, total := p.negotiate()

	if maxWidth := p.g.maxWidth; maxWidth > 0 && total > maxWidth {
		caps := p.shrink(widths, total, maxWidth)
		p.measure(caps, maxWidth-2*p.innerBorder())
		widths, total = p.negotiate()
	}

	return p.build(widths, total), nil
}

// columnCount returns the number of logical columns. Declared columns are
// authoritative; otherwise the widest visible data row decides.
func (p *planner) columnCount() int {
	if len(p.g.Columns) > 0 {
		return len(p.g.Columns)
	}
	n := 0
	for _, r := range p.g.Rows {
		if !r.visible() {
			continue
		}
		count := 0
		for _, c := range r.Cells {
			if c == nil {
				count++
				continue
			}
			count += c.ColumnSpan()
		}
		if count > n {
			n = count
		}
	}
	return n
}

func (p *planner) innerBorder() int {
	if p.bordered {
		return 1
	}
	return 0
}

func (p *planner) collectBands() error {
	g := p.g

	if err := p.addFullWidth(bandTitle, g.Title, g.Title.Cell(0)); err != nil {
		return err
	}

	if p.n > 0 && len(g.Columns) > 0 && (g.HeaderRow == nil || !g.HeaderRow.Hidden) {
		b := &band{kind: bandHeader, row: g.HeaderRow}
		for j := 0; j < p.n; {
			c := g.Columns[j].Header
			if c == nil {
				c = &Cell{}
			}
			span := min(c.ColumnSpan(), p.n-j)
			bc, err := p.newCell(c, j, span, g.HeaderRow, false)
			if err != nil {
				return err
			}
			b.cells = append(b.cells, bc)
			j += span
		}
		p.bands = append(p.bands, b)
	}

	visibleRows := 0
	for _, r := range g.Rows {
		if !r.visible() {
			continue
		}
		visibleRows++
		if p.n == 0 {
			continue
		}

		b := &band{kind: bandData, row: r}
		j := 0
		for _, c := range r.Cells {
			// Cells past the last declared column are ignored
			if j >= p.n {
				break
			}
			if c == nil {
				c = &Cell{}
			}
			span := min(c.ColumnSpan(), p.n-j)
			bc, err := p.newCell(c, j, span, r, false)
			if err != nil {
				return err
			}
			b.cells = append(b.cells, bc)
			j += span
		}
		for ; j < p.n; j++ {
			bc, err := p.newCell(&Cell{}, j, 1, r, false)
			if err != nil {
				return err
			}
			b.cells = append(b.cells, bc)
		}
		p.bands = append(p.bands, b)
	}

	if visibleRows == 0 && !g.EmptyMessage.IsEmpty() {
		msg := &Cell{Content: g.EmptyMessage}
		if err := p.addFullWidth(bandEmpty, nil, msg); err != nil {
			return err
		}
	}

	return p.addFullWidth(bandFooter, g.Footer, g.Footer.Cell(0))
}

func (p *planner) addFullWidth(kind bandKind, r *Row, c *Cell) error {
	if c == nil || !c.hasContent() {
		return nil
	}
	if r != nil && r.Hidden {
		return nil
	}
	bc, err := p.newCell(c, 0, max(p.n, 1), r, true)
	if err != nil {
		return err
	}
	p.bands = append(p.bands, &band{kind: kind, row: r, full: true, cells: []*bandCell{bc}})
	return nil
}

// newCell resolves a cell's inherited properties
func (p *planner) newCell(c *Cell, col, span int, r *Row, full bool) (*bandCell, error) {
	var column *Column
	if !full && col < len(p.g.Columns) {
		column = p.g.Columns[col]
	}

	cl, rl, coll, gl := cellLevel(c), rowLevel(r), columnLevel(column), gridLevel(p.g)

	bc := &bandCell{
		col:      col,
		span:     span,
		full:     full,
		pad:      resolvePadding(cl.pad, rl.pad, coll.pad, gl.pad),
		align:    resolveAlignment(cl.align, coll.align, rl.align, gl.align),
		overflow: resolveOverflow(cl.overflow, coll.overflow, rl.overflow, gl.overflow),
		fg:       resolveColor(cl.fg, coll.fg, rl.fg, gl.fg),
		bg:       resolveColor(cl.bg, coll.bg, rl.bg, gl.bg),
	}
	if column != nil && span == 1 {
		bc.columnCap = column.maxWidth
	}

	if c.Nested == nil {
		bc.content = c.effectiveContent()
		return bc, nil
	}

	child := p.parent.CreateChild()
	inner, err := newPlanner(c.Nested, child, p.depth+1).plan()
	if err != nil {
		return nil, fmt.Errorf("nested grid: %w", err)
	}
	if err := inner.Render(child); err != nil {
		return nil, fmt.Errorf("nested grid: %w", err)
	}
	bc.nested = child.Lines()
	bc.isNested = true
	return bc, nil
}

// measure sets every cell's preferred width. caps limits column widths
// (nil for none) and fullCap limits full-width bands (0 for none). Content
// wider than its cap is pre-formatted with the cell's overflow behavior.
func (p *planner) measure(caps []int, fullCap int) {
	inner := p.innerBorder()
	for _, b := range p.bands {
		for _, c := range b.cells {
			limit, limited := 0, false
			switch {
			case c.full:
				if fullCap > 0 {
					limit, limited = fullCap-c.pad.horizontal(), true
				}
			case caps != nil:
				limit, limited = spanWidth(caps, c.col, c.span, inner)-c.pad.horizontal(), true
			}
			if c.columnCap > 0 {
				colLimit := c.columnCap - c.pad.horizontal()
				if !limited || colLimit < limit {
					limit, limited = colLimit, true
				}
			}

			width := c.naturalWidth()
			if limited && !c.isNested && width > max(limit, 1) {
				width = formattedWidth(c.content, max(limit, 1), c.overflow)
			}
			c.pref = width + c.pad.horizontal()
		}
	}
}

// negotiate computes column widths and the total width from preferred widths
func (p *planner) negotiate() ([]int, int) {
	inner := p.innerBorder()
	widths := make([]int, p.n)
	for j := 0; j < p.n && j < len(p.g.Columns); j++ {
		widths[j] = p.g.Columns[j].minWidth
	}

	// Single-column cells set the column minimums
	for _, b := range p.bands {
		if b.full {
			continue
		}
		for _, c := range b.cells {
			if c.span == 1 && c.pref > widths[c.col] {
				widths[c.col] = c.pref
			}
		}
	}

	// Spanning cells widen the columns they cover, round-robin from the left
	for _, b := range p.bands {
		if b.full {
			continue
		}
		for _, c := range b.cells {
			if c.span < 2 {
				continue
			}
			have := spanWidth(widths, c.col, c.span, inner)
			for i := 0; have < c.pref; i++ {
				widths[c.col+i%c.span]++
				have++
			}
		}
	}

	total := 0
	for _, w := range widths {
		total += w
	}
	if p.n > 0 {
		total += (p.n + 1) * inner
	}

	if p.g.minWidth > total {
		total = stretch(widths, total, p.g.minWidth)
	}

	for _, b := range p.bands {
		if !b.full {
			continue
		}
		if need := b.cells[0].pref + 2*inner; need > total {
			total = stretch(widths, total, need)
		}
	}

	return widths, total
}

// shrink derives column caps by narrowing the widest column (lowest index
// on ties) until the total fits maxWidth or every column is at its floor.
func (p *planner) shrink(widths []int, total, maxWidth int) []int {
	caps := append([]int(nil), widths...)
	floors := p.columnFloors()
	for total > maxWidth {
		idx := -1
		for j := range caps {
			if caps[j] > floors[j] && (idx < 0 || caps[j] > caps[idx]) {
				idx = j
			}
		}
		if idx < 0 {
			break
		}
		caps[idx]--
		total--
	}
	return caps
}

// columnFloors returns the narrowest width each column may be shrunk to:
// one character of content plus the widest padding of its cells.
func (p *planner) columnFloors() []int {
	floors := make([]int, p.n)
	for j := range floors {
		floors[j] = 1
		if j < len(p.g.Columns) {
			floors[j] = max(floors[j], p.g.Columns[j].minWidth)
		}
	}
	for _, b := range p.bands {
		if b.full {
			continue
		}
		for _, c := range b.cells {
			if c.span == 1 {
				floors[c.col] = max(floors[c.col], c.pad.horizontal()+1)
			}
		}
	}
	return floors
}

// stretch widens columns one character at a time, round-robin from column
// 0, until total reaches target. Without columns the total simply grows.
func stretch(widths []int, total, target int) int {
	if len(widths) == 0 {
		return max(total, target)
	}
	for i := 0; total < target; i++ {
		widths[i%len(widths)]++
		total++
	}
	return total
}

// spanWidth is the rendered width of span columns starting at col,
// including the vertical borders between them.
func spanWidth(widths []int, col, span, inner int) int {
	w := 0
	for j := col; j < col+span && j < len(widths); j++ {
		w += widths[j]
	}
	return w + (span-1)*inner
}
