// Package widgets provides the bordered block, text paragraph and table
// widgets.
package widgets

import (
	"github.com/germtb/cellgrid"
)

// BorderStyle specifies the border appearance.
type BorderStyle string

const (
	BorderNone    BorderStyle = "none"
	BorderSingle  BorderStyle = "single"
	BorderDouble  BorderStyle = "double"
	BorderRounded BorderStyle = "rounded"
	BorderBold    BorderStyle = "bold"
)

// BorderChars holds the characters for drawing a border.
type BorderChars struct {
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
	Horizontal  rune
	Vertical    rune
}

// Border character sets for different styles.
var BorderCharSets = map[BorderStyle]BorderChars{
	BorderSingle: {
		TopLeft:     '┌',
		TopRight:    '┐',
		BottomLeft:  '└',
		BottomRight: '┘',
		Horizontal:  '─',
		Vertical:    '│',
	},
	BorderDouble: {
		TopLeft:     '╔',
		TopRight:    '╗',
		BottomLeft:  '╚',
		BottomRight: '╝',
		Horizontal:  '═',
		Vertical:    '║',
	},
	BorderRounded: {
		TopLeft:     '╭',
		TopRight:    '╮',
		BottomLeft:  '╰',
		BottomRight: '╯',
		Horizontal:  '─',
		Vertical:    '│',
	},
	BorderBold: {
		TopLeft:     '┏',
		TopRight:    '┓',
		BottomLeft:  '┗',
		BottomRight: '┛',
		Horizontal:  '━',
		Vertical:    '┃',
	},
}

// Block frames an area with an optional border and a title on its top edge.
// Other widgets render inside Block.Inner.
type Block struct {
	Title      string
	TitleStyle cellgrid.Style
	Border     BorderStyle
	// BorderColor is the border foreground; ColorNone keeps what is there.
	BorderColor cellgrid.Color
	// Style is patched over the whole area before the border is drawn.
	Style   cellgrid.Style
	Padding cellgrid.Margin
}

func (b Block) hasBorder() bool {
	_, ok := BorderCharSets[b.Border]
	return ok
}

// Inner is the area left for content once the border, title row and
// padding are taken out.
func (b Block) Inner(area cellgrid.Rect) cellgrid.Rect {
	inner := area
	switch {
	case b.hasBorder():
		inner = inner.Inner(cellgrid.Margin{Horizontal: 1, Vertical: 1})
	case b.Title != "":
		if inner.Height == 0 {
			return cellgrid.Rect{X: inner.X, Y: inner.Y}
		}
		inner.Y++
		inner.Height--
	}
	return inner.Inner(b.Padding)
}

func (b Block) Render(area cellgrid.Rect, buf *cellgrid.Buffer) {
	if area.Intersection(buf.Area()).IsEmpty() {
		return
	}
	buf.SetStyle(area, b.Style)

	titleX, titleWidth := area.X, int(area.Width)
	if b.hasBorder() {
		b.renderBorder(area, buf)
		titleX, titleWidth = area.X+1, int(area.Width)-2
	}
	if b.Title != "" && titleWidth > 0 {
		buf.SetStringN(titleX, area.Y, b.Title, titleWidth, b.TitleStyle)
	}
}

func (b Block) renderBorder(area cellgrid.Rect, buf *cellgrid.Buffer) {
	chars := BorderCharSets[b.Border]
	style := cellgrid.Style{Fg: b.BorderColor}
	left, top := area.Left(), area.Top()
	right, bottom := area.Right()-1, area.Bottom()-1

	for x := left + 1; x < right; x++ {
		buf.Set(x, top, string(chars.Horizontal), style)
		buf.Set(x, bottom, string(chars.Horizontal), style)
	}
	for y := top + 1; y < bottom; y++ {
		buf.Set(left, y, string(chars.Vertical), style)
		buf.Set(right, y, string(chars.Vertical), style)
	}
	buf.Set(right, top, string(chars.TopRight), style)
	buf.Set(left, bottom, string(chars.BottomLeft), style)
	buf.Set(right, bottom, string(chars.BottomRight), style)
	buf.Set(left, top, string(chars.TopLeft), style)
}
