package cellgrid

import (
	"fmt"
	"math"
	"strings"
)

// Buffer is a dense row-major grid of cells covering Area. Reads and writes
// through the public API are bounds checked; out-of-bounds writes are
// dropped.
type Buffer struct {
	area    Rect
	content []Cell
}

// NewBuffer returns a buffer over area filled with EmptyCell.
func NewBuffer(area Rect) *Buffer {
	return NewBufferFilled(area, EmptyCell)
}

// NewBufferFilled returns a buffer over area with every cell set to c.
func NewBufferFilled(area Rect, c Cell) *Buffer {
	content := make([]Cell, area.Area())
	for i := range content {
		content[i] = c
	}
	return &Buffer{area: area, content: content}
}

// NewBufferWithLines builds a buffer at the origin just wide enough for the
// widest line. Handy in tests.
func NewBufferWithLines(lines ...string) *Buffer {
	width := 0
	for _, line := range lines {
		width = max(width, StringWidth(line))
	}
	b := NewBuffer(NewRect(0, 0, uint16(width), uint16(len(lines))))
	for y, line := range lines {
		b.SetString(0, uint16(y), line, Style{})
	}
	return b
}

// Area is the region the buffer covers.
func (b *Buffer) Area() Rect { return b.area }

// Content exposes the cells in row-major order. Callers must not change its
// length.
func (b *Buffer) Content() []Cell { return b.content }

// IndexOf returns the content index of (x, y). It panics when the position
// lies outside the buffer.
func (b *Buffer) IndexOf(x, y uint16) int {
	if !b.area.Contains(Position{X: x, Y: y}) {
		panic(fmt.Sprintf("cellgrid: index outside buffer: (%d, %d) not in %s", x, y, b.area))
	}
	return int(y-b.area.Y)*int(b.area.Width) + int(x-b.area.X)
}

// PosOf is the inverse of IndexOf.
func (b *Buffer) PosOf(i int) Position {
	if i < 0 || i >= len(b.content) {
		panic(fmt.Sprintf("cellgrid: index %d outside buffer of %d cells", i, len(b.content)))
	}
	w := int(b.area.Width)
	return Position{X: b.area.X + uint16(i%w), Y: b.area.Y + uint16(i/w)}
}

// Cell returns the cell at (x, y) and whether the position is inside the
// buffer.
func (b *Buffer) Cell(x, y uint16) (Cell, bool) {
	if !b.area.Contains(Position{X: x, Y: y}) {
		return Cell{}, false
	}
	return b.content[b.IndexOf(x, y)], true
}

// Set writes symbol at (x, y), patching the existing cell's style with
// style.
func (b *Buffer) Set(x, y uint16, symbol string, style Style) {
	if !b.area.Contains(Position{X: x, Y: y}) {
		return
	}
	c := b.content[b.IndexOf(x, y)]
	c.Symbol = symbol
	c.Skip = false
	b.put(x, y, c.SetStyle(style))
}

// SetCell replaces the cell at (x, y).
func (b *Buffer) SetCell(x, y uint16, c Cell) {
	if !b.area.Contains(Position{X: x, Y: y}) {
		return
	}
	c.Skip = false
	b.put(x, y, c)
}

// SetString writes s starting at (x, y) and returns the position after the
// last written grapheme. Text past the right edge is dropped.
func (b *Buffer) SetString(x, y uint16, s string, style Style) Position {
	return b.SetStringN(x, y, s, math.MaxUint16, style)
}

// SetStringN is SetString limited to maxWidth columns. A wide grapheme that
// would straddle the limit is not written.
func (b *Buffer) SetStringN(x, y uint16, s string, maxWidth int, style Style) Position {
	if !b.area.Contains(Position{X: x, Y: y}) {
		return Position{X: x, Y: y}
	}
	remaining := min(maxWidth, int(b.area.Right()-x))
	for g, w := range Graphemes(s) {
		if w == 0 {
			continue
		}
		if w > remaining {
			break
		}
		b.Set(x, y, g, style)
		x += uint16(w)
		remaining -= w
	}
	return Position{X: x, Y: y}
}

// SetStyle patches the style of every cell in area.
func (b *Buffer) SetStyle(area Rect, style Style) {
	area = area.Intersection(b.area)
	if area.IsEmpty() {
		return
	}
	for pos := range area.Positions() {
		i := b.IndexOf(pos.X, pos.Y)
		b.content[i] = b.content[i].SetStyle(style)
	}
	// masks follow their glyph, including the one just past the right edge
	right := min(area.Right(), b.area.Right()-1)
	for y := area.Top(); y < area.Bottom(); y++ {
		for x := max(area.Left(), b.area.Left()+1); x <= right; x++ {
			i := b.IndexOf(x, y)
			if b.content[i].Skip {
				b.content[i] = maskOf(b.content[i-1])
			}
		}
	}
}

// Fill sets every cell in area to c. A wide symbol is repeated every
// width columns; a column too narrow for it at the right edge gets a blank
// with c's style.
func (b *Buffer) Fill(area Rect, c Cell) {
	area = area.Intersection(b.area)
	c.Skip = false
	w := max(1, SymbolWidth(c.Symbol))
	blank := c
	blank.Symbol = " "
	right := int(area.Right())
	for y := area.Top(); y < area.Bottom(); y++ {
		for x := int(area.Left()); x < right; x += w {
			if right-x < w {
				b.put(uint16(x), y, blank)
				continue
			}
			b.put(uint16(x), y, c)
		}
	}
}

// Reset fills the whole buffer with EmptyCell.
func (b *Buffer) Reset() {
	for i := range b.content {
		b.content[i] = EmptyCell
	}
}

// Resize changes the covered area. Cells at positions present in both the
// old and the new area are kept; the rest are reset.
func (b *Buffer) Resize(area Rect) {
	if area == b.area {
		return
	}
	old := &Buffer{area: b.area, content: b.content}
	b.area = area
	b.content = make([]Cell, area.Area())
	b.Reset()
	for pos := range area.Intersection(old.area).Positions() {
		if c := old.content[old.IndexOf(pos.X, pos.Y)]; !c.Skip {
			b.put(pos.X, pos.Y, c)
		}
	}
}

// Merge overlays other onto b with other's top-left corner at at. Cells of
// other equal to EmptyCell are transparent, as are reset colors: the
// destination keeps its own color there. Parts falling outside b are
// dropped.
func (b *Buffer) Merge(other *Buffer, at Position) {
	for i, src := range other.content {
		if src.Skip || src == EmptyCell {
			continue
		}
		pos := other.PosOf(i)
		x := int(at.X) + int(pos.X-other.area.X)
		y := int(at.Y) + int(pos.Y-other.area.Y)
		if x > math.MaxUint16 || y > math.MaxUint16 {
			continue
		}
		tx, ty := uint16(x), uint16(y)
		if !b.area.Contains(Position{X: tx, Y: ty}) {
			continue
		}
		dst := b.content[b.IndexOf(tx, ty)]
		dst.Symbol = src.Symbol
		dst.Skip = false
		if src.Fg != ColorReset {
			dst.Fg = src.Fg
		}
		if src.Bg != ColorReset {
			dst.Bg = src.Bg
		}
		dst.Modifier |= src.Modifier
		b.put(tx, ty, dst)
	}
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	content := make([]Cell, len(b.content))
	copy(content, b.content)
	return &Buffer{area: b.area, content: content}
}

// Equal reports whether two buffers cover the same area with the same cells.
func (b *Buffer) Equal(other *Buffer) bool {
	if b.area != other.area || len(b.content) != len(other.content) {
		return false
	}
	for i := range b.content {
		if b.content[i] != other.content[i] {
			return false
		}
	}
	return true
}

// put stores c at (x, y) keeping wide glyphs consistent: the stale half of a
// glyph being overwritten is cleared and a new wide glyph masks its right
// neighbour. The position must be inside the buffer.
func (b *Buffer) put(x, y uint16, c Cell) {
	i := b.IndexOf(x, y)
	old := b.content[i]
	lastCol := b.area.Right() - 1

	if old.Skip && x > b.area.Left() {
		b.content[i-1].Symbol = " "
	}
	if !old.Skip && x < lastCol && b.content[i+1].Skip {
		b.content[i+1] = unmask(b.content[i+1])
	}

	if SymbolWidth(c.Symbol) > 1 {
		if x >= lastCol {
			c.Symbol = " "
		} else {
			next := b.content[i+1]
			if !next.Skip && x+1 < lastCol && b.content[i+2].Skip {
				b.content[i+2] = unmask(b.content[i+2])
			}
			b.content[i+1] = maskOf(c)
		}
	}
	b.content[i] = c
}

func unmask(c Cell) Cell {
	c.Skip = false
	c.Symbol = " "
	return c
}

// String renders the symbols row by row, one line per row, for debugging
// and golden files.
func (b *Buffer) String() string {
	var sb strings.Builder
	w := int(b.area.Width)
	for i, c := range b.content {
		if !c.Skip {
			sb.WriteString(c.Symbol)
		}
		if w > 0 && (i+1)%w == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
