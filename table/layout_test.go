package table

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/young1lin/consolegrid/display"
	"github.com/young1lin/consolegrid/internal/mocks"
)

var cutOrWrap = []OverflowBehavior{
	OverflowDefault,
	OverflowCutChar,
	OverflowCutCharWithEllipsis,
	OverflowCutWord,
	OverflowCutWordWithEllipsis,
	OverflowWrapChar,
	OverflowWrapWord,
}

// drawGrid builds a random ASCII grid whose cells never use visible overflow
func drawGrid(t *rapid.T) *Grid {
	g := NewGrid()
	if rapid.Bool().Draw(t, "title") {
		g.SetTitle(rapid.StringMatching(`[a-z]{1,10}( [a-z]{1,10}){0,3}`).Draw(t, "titleText"))
	}
	g.DisplayBorderBetweenRows = rapid.Bool().Draw(t, "rowBorders")
	g.HideBorder = rapid.Bool().Draw(t, "hideBorder")

	cols := rapid.IntRange(1, 4).Draw(t, "cols")
	if rapid.Bool().Draw(t, "headers") {
		for j := 0; j < cols; j++ {
			g.AddColumn(rapid.StringMatching(`[A-Z][a-z]{0,8}`).Draw(t, "header"))
		}
	}

	rows := rapid.IntRange(0, 5).Draw(t, "rows")
	for i := 0; i < rows; i++ {
		r := &Row{}
		for j := 0; j < cols; {
			c := NewCell(rapid.StringMatching(`[a-z]{0,12}( [a-z]{1,12}){0,4}`).Draw(t, "text"))
			c.Alignment = HorizontalAlignment(rapid.IntRange(0, 3).Draw(t, "align"))
			c.Overflow = rapid.SampledFrom(cutOrWrap).Draw(t, "overflow")
			if span := rapid.IntRange(1, 2).Draw(t, "span"); span > 1 {
				_ = c.SetColumnSpan(span)
			}
			r.AddCell(c)
			j += c.ColumnSpan()
		}
		g.Rows = append(g.Rows, r)
	}

	if rapid.Bool().Draw(t, "minWidth") {
		_ = g.SetMinWidth(rapid.IntRange(0, 80).Draw(t, "min"))
	}
	if rapid.Bool().Draw(t, "maxWidth") {
		_ = g.SetMaxWidth(rapid.IntRange(g.MinWidth(), 100).Draw(t, "max"))
	}
	return g
}

func TestPlan_EveryLineHasTotalWidth(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := drawGrid(rt)
		plan, err := g.Plan()
		if err != nil {
			rt.Fatalf("plan: %v", err)
		}
		for i, line := range plan.Lines() {
			if w := utf8.RuneCountInString(line.Text()); w != plan.TotalWidth() {
				rt.Fatalf("line %d %q has width %d, want %d", i, line.Text(), w, plan.TotalWidth())
			}
		}
		if g.MinWidth() > 0 && len(plan.Lines()) > 0 && plan.TotalWidth() < g.MinWidth() {
			rt.Fatalf("total width %d below min width %d", plan.TotalWidth(), g.MinWidth())
		}
	})
}

func TestPlan_Deterministic(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := drawGrid(rt)
		first := g.String()
		if second := g.String(); first != second {
			rt.Fatalf("renders differ:\n%s\n%s", first, second)
		}
	})
}

func TestPlan_ColumnWidthsCoverPreferredWidths(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := NewGrid()
		cols := rapid.IntRange(1, 4).Draw(rt, "cols")
		rows := rapid.IntRange(1, 4).Draw(rt, "rows")
		for i := 0; i < rows; i++ {
			r := &Row{}
			for j := 0; j < cols; j++ {
				r.AddCell(NewCell(rapid.StringMatching(`[a-z]{0,15}`).Draw(rt, "text")))
			}
			g.Rows = append(g.Rows, r)
		}

		plan, err := g.Plan()
		if err != nil {
			rt.Fatalf("plan: %v", err)
		}
		widths := plan.ColumnWidths()
		for _, r := range g.Rows {
			for j, c := range r.Cells {
				if need := c.Content.Width() + 2; widths[j] < need {
					rt.Fatalf("column %d width %d narrower than cell %q", j, widths[j], c.Content.String())
				}
			}
		}
	})
}

func TestResolution_Order(t *testing.T) {
	g := NewGrid()
	col := g.AddColumn("A")
	col.Alignment = AlignRight
	require.NoError(t, col.Padding.SetLeft(3))
	r := g.AddRow("x")
	r.Alignment = AlignCenter
	require.NoError(t, r.Padding.SetLeft(2))

	p := newPlanner(g, display.NewBuffer(), 0)
	p.n = p.columnCount()
	require.NoError(t, p.collectBands())
	require.Len(t, p.bands, 2)

	data := p.bands[1].cells[0]
	// Alignment prefers the column, padding prefers the row
	assert.Equal(t, AlignRight, data.align)
	assert.Equal(t, 2, data.pad.left)
	assert.Equal(t, 1, data.pad.right)

	g.Rows[0].Cells[0].Alignment = AlignLeft
	require.NoError(t, g.Rows[0].Cells[0].Padding.SetLeft(0))
	p = newPlanner(g, display.NewBuffer(), 0)
	p.n = p.columnCount()
	require.NoError(t, p.collectBands())
	data = p.bands[1].cells[0]
	assert.Equal(t, AlignLeft, data.align)
	assert.Equal(t, 0, data.pad.left)
}

func TestResolution_Defaults(t *testing.T) {
	var none Padding
	got := resolvePadding(&none, nil, &none)
	assert.Equal(t, resolvedPadding{left: 1, right: 1}, got)
	assert.Equal(t, AlignLeft, resolveAlignment(AlignDefault, AlignDefault))
	assert.Equal(t, OverflowWrapWord, resolveOverflow(OverflowDefault))
	assert.Equal(t, display.NoColor, resolveColor("", ""))
}

func TestRender_WritesEveryLineInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	d := mocks.NewMockDisplay(ctrl)
	g := alignmentGrid()

	var calls []*gomock.Call
	for _, line := range []string{
		"+----------------------+",
		"| Cell Alignment Tests |",
		"+-------+-------+------+",
		"| 1     | 2     | 3    |",
		"+-------+-------+------+",
	} {
		calls = append(calls,
			d.EXPECT().Write(line, display.NoColor, display.NoColor).Return(nil),
			d.EXPECT().EndLine().Return(nil),
		)
	}
	calls = append(calls, d.EXPECT().Flush().Return(nil))
	gomock.InOrder(calls...)

	require.NoError(t, g.Render(d))
}

func TestRender_PropagatesSinkErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sinkErr := errors.New("device gone")
	d := mocks.NewMockDisplay(ctrl)
	d.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Return(sinkErr)

	err := alignmentGrid().Render(d)
	assert.ErrorIs(t, err, sinkErr)
}

func TestRender_NestedGridUsesChildContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := NewGrid()
	inner.AddRow("x")
	g := NewGrid()
	g.Rows = append(g.Rows, (&Row{}).AddCell(NewNestedCell(inner)))

	child := display.NewBuffer()
	d := mocks.NewMockDisplay(ctrl)
	d.EXPECT().CreateChild().Return(child).Times(1)
	d.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(5)
	d.EXPECT().EndLine().Return(nil).Times(5)
	d.EXPECT().Flush().Return(nil)

	require.NoError(t, g.Render(d))
	assert.Equal(t, []string{"+---+", "| x |", "+---+"}, child.PlainLines())
}

func TestRender_NestedGridErrorFromChild(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	inner := NewGrid()
	inner.AddRow("x")
	g := NewGrid()
	g.Rows = append(g.Rows, (&Row{}).AddCell(NewNestedCell(inner)))

	childErr := errors.New("child full")
	child := mocks.NewMockChild(ctrl)
	child.EXPECT().Write(gomock.Any(), gomock.Any(), gomock.Any()).Return(childErr)

	d := mocks.NewMockDisplay(ctrl)
	d.EXPECT().CreateChild().Return(child)

	err := g.Render(d)
	assert.ErrorIs(t, err, childErr)
}
