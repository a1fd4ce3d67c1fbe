package canvas

import (
	"math"

	"github.com/germtb/cellgrid"
)

// Points draws each coordinate as a single point.
type Points struct {
	Coords [][2]float64
	Color  cellgrid.Color
}

func (s Points) Draw(p *Painter) {
	for _, c := range s.Coords {
		if x, y, ok := p.GetPoint(c[0], c[1]); ok {
			p.Paint(x, y, s.Color)
		}
	}
}

// Line is a segment between (X1, Y1) and (X2, Y2). Both ends must be inside
// the canvas bounds for it to be drawn.
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
	Color  cellgrid.Color
}

func (l Line) Draw(p *Painter) {
	x1, y1, ok1 := p.GetPoint(l.X1, l.Y1)
	x2, y2, ok2 := p.GetPoint(l.X2, l.Y2)
	if !ok1 || !ok2 {
		return
	}
	dx, dy := x2-x1, y2-y1
	switch {
	case dx == 0:
		for y := min(y1, y2); y <= max(y1, y2); y++ {
			p.Paint(x1, y, l.Color)
		}
	case dy == 0:
		for x := min(x1, x2); x <= max(x1, x2); x++ {
			p.Paint(x, y1, l.Color)
		}
	case abs(dy) < abs(dx):
		if x1 > x2 {
			x1, y1, x2, y2 = x2, y2, x1, y1
		}
		drawLineLow(p, x1, y1, x2, y2, l.Color)
	default:
		if y1 > y2 {
			x1, y1, x2, y2 = x2, y2, x1, y1
		}
		drawLineHigh(p, x1, y1, x2, y2, l.Color)
	}
}

// drawLineLow is Bresenham for slopes in [-1, 1], stepping along x.
func drawLineLow(p *Painter, x1, y1, x2, y2 int, color cellgrid.Color) {
	dx, dy := x2-x1, y2-y1
	step := 1
	if dy < 0 {
		step, dy = -1, -dy
	}
	d := 2*dy - dx
	y := y1
	for x := x1; x <= x2; x++ {
		p.Paint(x, y, color)
		if d > 0 {
			y += step
			d -= 2 * dx
		}
		d += 2 * dy
	}
}

// drawLineHigh is Bresenham for steep slopes, stepping along y.
func drawLineHigh(p *Painter, x1, y1, x2, y2 int, color cellgrid.Color) {
	dx, dy := x2-x1, y2-y1
	step := 1
	if dx < 0 {
		step, dx = -1, -dx
	}
	d := 2*dx - dy
	x := x1
	for y := y1; y <= y2; y++ {
		p.Paint(x, y, color)
		if d > 0 {
			x += step
			d -= 2 * dy
		}
		d += 2 * dx
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Rectangle is an outline whose bottom left corner is (X, Y).
type Rectangle struct {
	X, Y          float64
	Width, Height float64
	Color         cellgrid.Color
}

func (r Rectangle) Draw(p *Painter) {
	left, right := r.X, r.X+r.Width
	bottom, top := r.Y, r.Y+r.Height
	for _, l := range []Line{
		{X1: left, Y1: bottom, X2: right, Y2: bottom, Color: r.Color},
		{X1: left, Y1: top, X2: right, Y2: top, Color: r.Color},
		{X1: left, Y1: bottom, X2: left, Y2: top, Color: r.Color},
		{X1: right, Y1: bottom, X2: right, Y2: top, Color: r.Color},
	} {
		l.Draw(p)
	}
}

// Circle is an outline centered on (X, Y), sampled once per degree.
type Circle struct {
	X, Y   float64
	Radius float64
	Color  cellgrid.Color
}

func (c Circle) Draw(p *Painter) {
	for deg := range 360 {
		rad := float64(deg) * math.Pi / 180
		x := c.Radius*math.Cos(rad) + c.X
		y := c.Radius*math.Sin(rad) + c.Y
		if px, py, ok := p.GetPoint(x, y); ok {
			p.Paint(px, py, c.Color)
		}
	}
}
