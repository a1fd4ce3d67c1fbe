package canvas

import (
	"github.com/germtb/cellgrid"
)

// Shape is anything that can draw itself through a Painter.
type Shape interface {
	Draw(p *Painter)
}

// ShapeFunc adapts a function to Shape.
type ShapeFunc func(p *Painter)

func (f ShapeFunc) Draw(p *Painter) { f(p) }

// Label is text printed over the canvas at canvas coordinates.
type Label struct {
	X, Y  float64
	Text  string
	Style cellgrid.Style
}

// Context collects what a paint function draws: finished layers, the grid
// currently being drawn on, and labels.
type Context struct {
	xBounds [2]float64
	yBounds [2]float64
	grid    *Grid
	dirty   bool
	layers  []Layer
	labels  []Label
}

// NewContext returns a context for a width x height cell area showing the
// region xBounds (left, right) by yBounds (bottom, top).
func NewContext(width, height uint16, xBounds, yBounds [2]float64, marker Marker) *Context {
	return &Context{
		xBounds: xBounds,
		yBounds: yBounds,
		grid:    NewGrid(width, height, marker),
	}
}

// Draw paints s onto the current layer.
func (c *Context) Draw(s Shape) {
	c.dirty = true
	s.Draw(c.painter())
}

// Layer finishes the current layer; later shapes are drawn over it.
func (c *Context) Layer() {
	c.layers = append(c.layers, c.grid.Save())
	c.grid.Reset()
	c.dirty = false
}

// Print places a label at (x, y). Labels are drawn above every layer.
func (c *Context) Print(x, y float64, text string, style cellgrid.Style) {
	c.labels = append(c.labels, Label{X: x, Y: y, Text: text, Style: style})
}

// Layers returns the finished layers, saving the current one if anything
// was drawn on it.
func (c *Context) Layers() []Layer {
	c.finish()
	return c.layers
}

// Labels returns the labels in the order they were printed.
func (c *Context) Labels() []Label { return c.labels }

func (c *Context) finish() {
	if c.dirty {
		c.Layer()
	}
}

func (c *Context) painter() *Painter {
	resX, resY := c.grid.Resolution()
	return &Painter{ctx: c, resX: resX, resY: resY}
}

// Painter maps canvas coordinates to grid points.
type Painter struct {
	ctx  *Context
	resX float64
	resY float64
}

// NewPainter returns a painter drawing on ctx's current layer.
func NewPainter(ctx *Context) *Painter { return ctx.painter() }

// GetPoint converts canvas coordinates, with the origin at the bottom left,
// to grid points counted from the top left. ok is false outside the bounds
// or when a bound has zero extent.
func (p *Painter) GetPoint(x, y float64) (px, py int, ok bool) {
	left, right := p.ctx.xBounds[0], p.ctx.xBounds[1]
	bottom, top := p.ctx.yBounds[0], p.ctx.yBounds[1]
	if x < left || x > right || y < bottom || y > top {
		return 0, 0, false
	}
	width := right - left
	height := top - bottom
	if width == 0 || height == 0 {
		return 0, 0, false
	}
	px = int((x - left) * (p.resX - 1) / width)
	py = int((top - y) * (p.resY - 1) / height)
	return px, py, true
}

// Paint sets a grid point.
func (p *Painter) Paint(x, y int, color cellgrid.Color) {
	p.ctx.grid.Paint(x, y, color)
}

// Bounds returns the x and y bounds of the canvas.
func (p *Painter) Bounds() (xBounds, yBounds [2]float64) {
	return p.ctx.xBounds, p.ctx.yBounds
}
