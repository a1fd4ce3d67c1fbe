package canvas

import (
	"github.com/germtb/cellgrid"
	"github.com/germtb/cellgrid/widgets"
)

// Canvas is a widget that runs Paint on a fresh Context sized to its area,
// then copies every layer and label into the buffer. Blank points leave the
// buffer underneath visible.
type Canvas struct {
	Block   *widgets.Block
	XBounds [2]float64
	YBounds [2]float64
	// Marker defaults to Braille.
	Marker Marker
	// Background is patched over the canvas area; ColorNone resets it.
	Background cellgrid.Color
	Paint      func(ctx *Context)
}

func (c Canvas) Render(area cellgrid.Rect, buf *cellgrid.Buffer) {
	if c.Block != nil {
		c.Block.Render(area, buf)
		area = c.Block.Inner(area)
	}
	area = area.Intersection(buf.Area())
	buf.SetStyle(area, cellgrid.Style{Bg: c.Background.Or(cellgrid.ColorReset)})
	if area.IsEmpty() || c.Paint == nil {
		return
	}

	ctx := NewContext(area.Width, area.Height, c.XBounds, c.YBounds, c.Marker)
	c.Paint(ctx)

	width := int(area.Width)
	for _, layer := range ctx.Layers() {
		for i, lc := range layer {
			if lc.Symbol == ' ' || lc.Symbol == brailleBlank {
				continue
			}
			x := area.X + uint16(i%width)
			y := area.Y + uint16(i/width)
			cell, _ := buf.Cell(x, y)
			cell.Symbol = string(lc.Symbol)
			if lc.Fg != cellgrid.ColorReset {
				cell.Fg = lc.Fg
			}
			if lc.Bg != cellgrid.ColorReset {
				cell.Bg = lc.Bg
			}
			buf.SetCell(x, y, cell)
		}
	}

	c.renderLabels(ctx.Labels(), area, buf)
}

func (c Canvas) renderLabels(labels []Label, area cellgrid.Rect, buf *cellgrid.Buffer) {
	left, right := c.XBounds[0], c.XBounds[1]
	bottom, top := c.YBounds[0], c.YBounds[1]
	width, height := right-left, top-bottom
	if width == 0 || height == 0 {
		return
	}
	resX, resY := float64(area.Width-1), float64(area.Height-1)
	for _, l := range labels {
		if l.X < left || l.X > right || l.Y < bottom || l.Y > top {
			continue
		}
		x := area.X + uint16((l.X-left)*resX/width)
		y := area.Y + uint16((top-l.Y)*resY/height)
		buf.SetStringN(x, y, l.Text, int(area.Right()-x), l.Style)
	}
}
