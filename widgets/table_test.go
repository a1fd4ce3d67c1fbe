package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/germtb/cellgrid"
)

func TestTableColumnWidths(t *testing.T) {
	tests := []struct {
		name     string
		table    Table
		width    uint16
		selWidth uint16
		expected [][2]uint16
	}{
		{"lengths", Table{Widths: cellgrid.Lengths(4, 4), ColumnSpacing: 1}, 20, 0, [][2]uint16{{0, 4}, {5, 4}}},
		{"lengths after selection", Table{Widths: cellgrid.Lengths(4, 4), ColumnSpacing: 1}, 20, 3, [][2]uint16{{3, 4}, {8, 4}}},
		{"lengths shrink", Table{Widths: cellgrid.Lengths(4, 4), ColumnSpacing: 1}, 7, 0, [][2]uint16{{0, 4}, {5, 2}}},
		{"spacing kept before columns", Table{Widths: cellgrid.Lengths(4, 4), ColumnSpacing: 1}, 7, 3, [][2]uint16{{3, 3}, {7, 0}}},
		{"percentages", Table{Widths: cellgrid.Percentages(30, 30), ColumnSpacing: 1}, 20, 0, [][2]uint16{{0, 6}, {7, 6}}},
		{"fills", Table{Widths: cellgrid.Fills(1, 1), ColumnSpacing: 1}, 11, 0, [][2]uint16{{0, 5}, {6, 5}}},
		{"max stops growing", Table{Widths: []cellgrid.Constraint{cellgrid.Max(3), cellgrid.Fill(1)}, ColumnSpacing: 2}, 12, 0, [][2]uint16{{0, 3}, {5, 7}}},
		{"even split from widest row", Table{Rows: []Row{{Cells: []string{"a"}}, {Cells: []string{"a", "b", "c"}}}}, 9, 0, [][2]uint16{{0, 3}, {3, 3}, {6, 3}}},
		{"header counts", Table{Header: &Row{Cells: []string{"a", "b"}}}, 8, 0, [][2]uint16{{0, 4}, {4, 4}}},
		{"no columns", Table{}, 8, 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.table.columnWidths(tt.width, tt.selWidth))
		})
	}
}

func TestTableRender(t *testing.T) {
	table := Table{
		Header: &Row{Cells: []string{"id", "name"}},
		Rows: []Row{
			{Cells: []string{"1", "ann"}},
			{Cells: []string{"2", "bob"}},
			{Cells: []string{"3", "cy"}},
		},
		Footer:        &Row{Cells: []string{"n", "3"}},
		Widths:        cellgrid.Lengths(2, 4),
		ColumnSpacing: 1,
	}

	buf := render(table, 7, 4)
	expected := "id name\n" +
		"1  ann \n" +
		"2  bob \n" +
		"n  3   \n"
	assert.Equal(t, expected, buf.String())
}

func TestTableRenderWithBlock(t *testing.T) {
	table := Table{
		Block: &Block{Border: BorderSingle},
		Rows:  []Row{{Cells: []string{"x"}}},
	}
	assert.Equal(t, "┌──┐\n│x │\n└──┘\n", render(table, 4, 3).String())
}

func TestTableRenderEmptyArea(t *testing.T) {
	table := Table{Rows: []Row{{Cells: []string{"x"}}}, Header: &Row{Cells: []string{"h"}}}
	assert.NotPanics(t, func() { render(table, 0, 0) })
	assert.Equal(t, "h \n", render(table, 2, 1).String())
}

func TestTableRenderSelected(t *testing.T) {
	table := Table{
		Rows: []Row{
			{Cells: []string{"r0"}},
			{Cells: []string{"r1"}},
			{Cells: []string{"r2"}},
			{Cells: []string{"r3"}},
		},
		Widths:          cellgrid.Lengths(3),
		HighlightSymbol: ">>",
		HighlightStyle:  cellgrid.Style{Fg: cellgrid.ColorRed},
	}

	var state TableState
	state.Select(2)
	buf := cellgrid.NewBuffer(cellgrid.NewRect(0, 0, 6, 2))
	table.RenderState(buf.Area(), buf, &state)

	assert.Equal(t, "  r1  \n>>r2  \n", buf.String())
	assert.Equal(t, 1, state.Offset)

	for _, x := range []uint16{0, 5} {
		c, ok := buf.Cell(x, 1)
		require.True(t, ok)
		assert.Equal(t, cellgrid.ColorRed, c.Fg)
	}
	c, _ := buf.Cell(2, 0)
	assert.NotEqual(t, cellgrid.ColorRed, c.Fg)

	state.Select(0)
	buf = cellgrid.NewBuffer(cellgrid.NewRect(0, 0, 6, 2))
	table.RenderState(buf.Area(), buf, &state)
	assert.Equal(t, ">>r0  \n  r1  \n", buf.String())
	assert.Equal(t, 0, state.Offset)
}

func TestTableHighlightSpacing(t *testing.T) {
	rows := []Row{{Cells: []string{"a"}}}
	tests := []struct {
		name     string
		spacing  HighlightSpacing
		selected bool
		expected string
	}{
		{"when selected without selection", HighlightWhenSelected, false, "a   \n"},
		{"when selected with selection", HighlightWhenSelected, true, ">>a \n"},
		{"always without selection", HighlightAlways, false, "  a \n"},
		{"never with selection", HighlightNever, true, "a   \n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := Table{
				Rows:             rows,
				Widths:           cellgrid.Lengths(2),
				HighlightSymbol:  ">>",
				HighlightSpacing: tt.spacing,
			}
			var state TableState
			if tt.selected {
				state.Select(0)
			}
			buf := cellgrid.NewBuffer(cellgrid.NewRect(0, 0, 4, 1))
			table.RenderState(buf.Area(), buf, &state)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestTableRowBounds(t *testing.T) {
	rows := []Row{{}, {Height: 2}, {}, {BottomMargin: 1}, {}}
	tests := []struct {
		name       string
		offset     int
		selected   int
		height     int
		start, end int
	}{
		{"fits from top", 0, 0, 3, 0, 2},
		{"scrolls down to selection", 0, 4, 3, 3, 5},
		{"scrolls up to selection", 4, 1, 3, 1, 3},
		{"offset past end clamps", 10, 4, 2, 4, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := TableState{Offset: tt.offset}
			state.Select(tt.selected)
			start, end := Table{Rows: rows}.rowBounds(&state, tt.height)
			assert.Equal(t, tt.start, start)
			assert.Equal(t, tt.end, end)
		})
	}
}
