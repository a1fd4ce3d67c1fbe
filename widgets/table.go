package widgets

import (
	"github.com/germtb/cellgrid"
)

// Row is one table row. Each cell is drawn like a Paragraph, so it may hold
// SGR escape sequences and "\n" separated lines.
type Row struct {
	Cells []string
	Style cellgrid.Style
	// Height is the number of lines the row occupies; zero means one.
	Height       uint16
	BottomMargin uint16
}

func (r Row) height() int { return max(1, int(r.Height)) }

func (r Row) heightWithMargin() int { return r.height() + int(r.BottomMargin) }

// HighlightSpacing decides when the column holding HighlightSymbol is
// reserved in front of the rows.
type HighlightSpacing uint8

const (
	// HighlightWhenSelected reserves the column only while a row is
	// selected.
	HighlightWhenSelected HighlightSpacing = iota
	HighlightAlways
	HighlightNever
)

// TableState is the part of a table that survives between frames: the
// selected row and the first row shown.
type TableState struct {
	Offset   int
	selected int
	hasSel   bool
}

// Select marks row i as selected.
func (s *TableState) Select(i int) {
	s.selected, s.hasSel = max(0, i), true
}

// Deselect clears the selection.
func (s *TableState) Deselect() { s.selected, s.hasSel = 0, false }

// Selected returns the selected row, if any.
func (s TableState) Selected() (int, bool) { return s.selected, s.hasSel }

// Table lays rows out in columns whose widths are solved from Widths with
// ColumnSpacing cells between neighbours. Without Widths the columns split
// the width evenly.
type Table struct {
	Rows   []Row
	Header *Row
	Footer *Row
	// Widths must pass Constraint.Validate; Render panics otherwise.
	Widths        []cellgrid.Constraint
	ColumnSpacing uint16
	Block         *Block
	Style         cellgrid.Style
	// HighlightStyle is patched over the selected row after its cells.
	HighlightStyle   cellgrid.Style
	HighlightSymbol  string
	HighlightSpacing HighlightSpacing
}

func (t Table) Render(area cellgrid.Rect, buf *cellgrid.Buffer) {
	var state TableState
	t.RenderState(area, buf, &state)
}

// RenderState draws the table scrolled so the selected row is visible and
// stores the first visible row back into state.Offset.
func (t Table) RenderState(area cellgrid.Rect, buf *cellgrid.Buffer, state *TableState) {
	buf.SetStyle(area, t.Style)
	if t.Block != nil {
		t.Block.Render(area, buf)
		area = t.Block.Inner(area)
	}
	area = area.Intersection(buf.Area())
	if area.IsEmpty() {
		return
	}

	selWidth := t.selectionWidth(state)
	cols := t.columnWidths(area.Width, selWidth)
	header, rows, footer := t.sections(area)

	if t.Header != nil {
		buf.SetStyle(header, t.Header.Style)
		renderCells(header, t.Header.Cells, cols, buf)
	}
	t.renderRows(rows, buf, state, selWidth, cols)
	if t.Footer != nil {
		buf.SetStyle(footer, t.Footer.Style)
		renderCells(footer, t.Footer.Cells, cols, buf)
	}
}

// sections splits area into the header, body and footer.
func (t Table) sections(area cellgrid.Rect) (header, rows, footer cellgrid.Rect) {
	var headerHeight, headerMargin, footerHeight uint16
	if t.Header != nil {
		headerHeight, headerMargin = uint16(t.Header.height()), t.Header.BottomMargin
	}
	if t.Footer != nil {
		footerHeight = uint16(t.Footer.height())
	}
	parts := cellgrid.Solve(area, cellgrid.Vertical, []cellgrid.Constraint{
		cellgrid.Length(headerHeight),
		cellgrid.Length(headerMargin),
		cellgrid.Min(0),
		cellgrid.Length(footerHeight),
	}, cellgrid.FlexStart, 0)
	return parts[0], parts[2], parts[3]
}

func (t Table) selectionWidth(state *TableState) uint16 {
	_, selected := state.Selected()
	switch t.HighlightSpacing {
	case HighlightAlways:
	case HighlightWhenSelected:
		if !selected {
			return 0
		}
	default:
		return 0
	}
	return uint16(cellgrid.StringWidth(t.HighlightSymbol))
}

// columnWidths returns each column's x offset from the table's left edge
// and its width. The selection column comes first and is always kept.
func (t Table) columnWidths(width, selWidth uint16) [][2]uint16 {
	widths := t.Widths
	if len(widths) == 0 {
		n := 0
		for _, r := range t.allRows() {
			n = max(n, len(r.Cells))
		}
		if n == 0 {
			return nil
		}
		widths = make([]cellgrid.Constraint, n)
		for i := range widths {
			widths[i] = cellgrid.Length(width / uint16(n))
		}
	}
	selWidth = min(selWidth, width)
	columns := cellgrid.NewRect(selWidth, 0, width-selWidth, 1)
	rects := cellgrid.Solve(columns, cellgrid.Horizontal, widths, cellgrid.FlexStart, t.ColumnSpacing)
	out := make([][2]uint16, len(rects))
	for i, r := range rects {
		out[i] = [2]uint16{r.X, r.Width}
	}
	return out
}

func (t Table) allRows() []Row {
	rows := t.Rows
	if t.Header != nil {
		rows = append(rows[:len(rows):len(rows)], *t.Header)
	}
	if t.Footer != nil {
		rows = append(rows[:len(rows):len(rows)], *t.Footer)
	}
	return rows
}

func (t Table) renderRows(area cellgrid.Rect, buf *cellgrid.Buffer, state *TableState, selWidth uint16, cols [][2]uint16) {
	if len(t.Rows) == 0 || area.IsEmpty() {
		return
	}
	start, end := t.rowBounds(state, int(area.Height))
	state.Offset = start
	selected, hasSel := state.Selected()

	y := int(area.Y)
	for i := start; i < end; i++ {
		row := t.Rows[i]
		h := min(row.height(), int(area.Bottom())-y)
		if h <= 0 {
			break
		}
		rowArea := cellgrid.Rect{X: area.X, Y: uint16(y), Width: area.Width, Height: uint16(h)}
		buf.SetStyle(rowArea, row.Style)

		isSelected := hasSel && i == selected
		if isSelected && selWidth > 0 {
			buf.SetStringN(rowArea.X, rowArea.Y, t.HighlightSymbol, int(selWidth), row.Style)
		}
		renderCells(rowArea, row.Cells, cols, buf)
		if isSelected {
			buf.SetStyle(rowArea, t.HighlightStyle)
		}
		y += row.heightWithMargin()
	}
}

// rowBounds returns the half-open range of rows that fit in height,
// starting from state.Offset and scrolled just enough to show the
// selected row.
func (t Table) rowBounds(state *TableState, height int) (start, end int) {
	start = min(max(0, state.Offset), len(t.Rows)-1)
	end = start
	used := 0
	for _, r := range t.Rows[start:] {
		if used+r.height() > height {
			break
		}
		used += r.heightWithMargin()
		end++
	}

	selected, _ := state.Selected()
	selected = min(selected, len(t.Rows)-1)
	for selected >= end {
		used += t.Rows[end].heightWithMargin()
		end++
		for used > height {
			used -= t.Rows[start].heightWithMargin()
			start++
		}
	}
	for selected < start {
		start--
		used += t.Rows[start].heightWithMargin()
		for used > height {
			end--
			used -= t.Rows[end].heightWithMargin()
		}
	}
	return start, end
}

func renderCells(area cellgrid.Rect, cells []string, cols [][2]uint16, buf *cellgrid.Buffer) {
	for i, text := range cells {
		if i >= len(cols) {
			break
		}
		col := cols[i]
		Paragraph{Text: text}.Render(cellgrid.Rect{
			X:      area.X + col[0],
			Y:      area.Y,
			Width:  col[1],
			Height: area.Height,
		}, buf)
	}
}
