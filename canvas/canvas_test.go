package canvas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/germtb/cellgrid"
	"github.com/germtb/cellgrid/widgets"
)

func lines(ls ...string) string {
	return strings.Join(ls, "\n") + "\n"
}

// crossOnX draws a vertical and a horizontal line through the bottom left
// corner of a 5x5 buffer filled with 'x'.
func crossOnX(t *testing.T, marker Marker, color cellgrid.Color) *cellgrid.Buffer {
	t.Helper()
	area := cellgrid.NewRect(0, 0, 5, 5)
	buf := cellgrid.NewBufferFilled(area, cellgrid.NewCell("x", cellgrid.Style{}))
	Canvas{
		XBounds: [2]float64{0, 10},
		YBounds: [2]float64{0, 10},
		Marker:  marker,
		Paint: func(ctx *Context) {
			ctx.Draw(Line{X1: 0, Y1: 0, X2: 0, Y2: 10, Color: color})
			ctx.Draw(Line{X1: 0, Y1: 0, X2: 10, Y2: 0, Color: color})
		},
	}.Render(area, buf)
	return buf
}

func TestMarkers(t *testing.T) {
	tests := []struct {
		marker   Marker
		expected string
	}{
		{Bar, lines("▄xxxx", "▄xxxx", "▄xxxx", "▄xxxx", "▄▄▄▄▄")},
		{Block, lines("█xxxx", "█xxxx", "█xxxx", "█xxxx", "█████")},
		{Braille, lines("⡇xxxx", "⡇xxxx", "⡇xxxx", "⡇xxxx", "⣇⣀⣀⣀⣀")},
		{Dot, lines("•xxxx", "•xxxx", "•xxxx", "•xxxx", "•••••")},
	}

	for _, tt := range tests {
		t.Run(tt.marker.String(), func(t *testing.T) {
			buf := crossOnX(t, tt.marker, cellgrid.ColorReset)
			assert.Equal(t, tt.expected, buf.String())

			untouched, _ := buf.Cell(4, 0)
			assert.Equal(t, cellgrid.NewCell("x", cellgrid.Style{}), untouched)
		})
	}
}

func TestHalfBlockMarker(t *testing.T) {
	buf := crossOnX(t, HalfBlock, cellgrid.ColorRed)
	assert.Equal(t, lines("█xxxx", "█xxxx", "█xxxx", "█xxxx", "█▄▄▄▄"), buf.String())

	full, _ := buf.Cell(0, 0)
	assert.Equal(t, cellgrid.ColorRed, full.Fg)
	assert.Equal(t, cellgrid.ColorRed, full.Bg)

	lower, _ := buf.Cell(2, 4)
	assert.Equal(t, cellgrid.ColorRed, lower.Fg)
	assert.Equal(t, cellgrid.ColorReset, lower.Bg)
}

func TestHalfBlockSave(t *testing.T) {
	red, blue := cellgrid.ColorRed, cellgrid.ColorBlue
	reset := cellgrid.ColorReset
	tests := []struct {
		name         string
		upper, lower cellgrid.Color
		expected     LayerCell
	}{
		{"empty", reset, reset, LayerCell{Symbol: ' ', Fg: reset, Bg: reset}},
		{"upper only", red, reset, LayerCell{Symbol: '▀', Fg: red, Bg: reset}},
		{"lower only", reset, blue, LayerCell{Symbol: '▄', Fg: blue, Bg: reset}},
		{"different", red, blue, LayerCell{Symbol: '▀', Fg: red, Bg: blue}},
		{"same", blue, blue, LayerCell{Symbol: '█', Fg: blue, Bg: blue}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(1, 1, HalfBlock)
			g.Paint(0, 0, tt.upper)
			g.Paint(0, 1, tt.lower)
			assert.Equal(t, Layer{tt.expected}, g.Save())
		})
	}
}

func TestBrailleGrid(t *testing.T) {
	g := NewGrid(2, 1, Braille)
	w, h := g.Resolution()
	assert.Equal(t, [2]float64{4, 4}, [2]float64{w, h})

	g.Paint(1, 3, cellgrid.ColorGreen)
	g.Paint(2, 0, cellgrid.ColorRed)
	g.Paint(3, 1, cellgrid.ColorBlue)
	g.Paint(4, 0, cellgrid.ColorRed) // outside
	g.Paint(-1, 0, cellgrid.ColorRed)

	assert.Equal(t, Layer{
		{Symbol: '⢀', Fg: cellgrid.ColorGreen, Bg: cellgrid.ColorReset},
		{Symbol: rune(0x2800 | 0x01 | 0x10), Fg: cellgrid.ColorBlue, Bg: cellgrid.ColorReset},
	}, g.Save())

	g.Reset()
	assert.Equal(t, rune(0x2800), g.Save()[0].Symbol)
}

func TestCharGridResolution(t *testing.T) {
	for _, m := range []Marker{Dot, Block, Bar} {
		g := NewGrid(3, 2, m)
		w, h := g.Resolution()
		assert.Equal(t, [2]float64{3, 2}, [2]float64{w, h}, m.String())
	}
	g := NewGrid(3, 2, HalfBlock)
	w, h := g.Resolution()
	assert.Equal(t, [2]float64{3, 4}, [2]float64{w, h})
}

func TestPainterGetPoint(t *testing.T) {
	ctx := NewContext(2, 2, [2]float64{1, 2}, [2]float64{0, 2}, Braille)
	p := NewPainter(ctx)

	tests := []struct {
		x, y   float64
		px, py int
		ok     bool
	}{
		{1, 0, 0, 7, true},
		{1.5, 1, 1, 3, true},
		{0, 0, 0, 0, false},
		{2, 2, 3, 0, true},
		{1, 2, 0, 0, true},
		{2.5, 1, 0, 0, false},
	}
	for _, tt := range tests {
		px, py, ok := p.GetPoint(tt.x, tt.y)
		assert.Equal(t, tt.ok, ok, "(%v, %v)", tt.x, tt.y)
		if tt.ok {
			assert.Equal(t, [2]int{tt.px, tt.py}, [2]int{px, py}, "(%v, %v)", tt.x, tt.y)
		}
	}

	flat := NewPainter(NewContext(2, 2, [2]float64{1, 1}, [2]float64{0, 2}, Braille))
	_, _, ok := flat.GetPoint(1, 1)
	assert.False(t, ok, "zero-width bounds")
}

func TestContextLayers(t *testing.T) {
	ctx := NewContext(1, 1, [2]float64{0, 1}, [2]float64{0, 1}, Block)
	ctx.Draw(Points{Coords: [][2]float64{{0, 0}}, Color: cellgrid.ColorRed})
	ctx.Layer()
	ctx.Draw(Points{Coords: [][2]float64{{0, 0}}, Color: cellgrid.ColorBlue})

	layers := ctx.Layers()
	require.Len(t, layers, 2)
	assert.Equal(t, cellgrid.ColorRed, layers[0][0].Fg)
	assert.Equal(t, cellgrid.ColorBlue, layers[1][0].Fg)
	assert.Len(t, ctx.Layers(), 2, "finishing twice adds nothing")
}

func TestCanvasLayersStack(t *testing.T) {
	buf := cellgrid.NewBuffer(cellgrid.NewRect(0, 0, 2, 1))
	Canvas{
		XBounds: [2]float64{0, 1},
		YBounds: [2]float64{0, 1},
		Marker:  Block,
		Paint: func(ctx *Context) {
			ctx.Draw(Points{Coords: [][2]float64{{0, 0}, {1, 0}}, Color: cellgrid.ColorRed})
			ctx.Layer()
			ctx.Draw(Points{Coords: [][2]float64{{1, 0}}, Color: cellgrid.ColorBlue})
		},
	}.Render(buf.Area(), buf)

	left, _ := buf.Cell(0, 0)
	right, _ := buf.Cell(1, 0)
	assert.Equal(t, cellgrid.ColorRed, left.Fg)
	assert.Equal(t, cellgrid.ColorBlue, right.Fg)
}

func TestShapes(t *testing.T) {
	tests := []struct {
		name     string
		shape    Shape
		width    uint16
		height   uint16
		bound    float64
		expected string
	}{
		{
			name:     "rectangle",
			shape:    Rectangle{X: 0, Y: 0, Width: 4, Height: 4},
			width:    5,
			height:   5,
			bound:    4,
			expected: lines("█████", "█   █", "█   █", "█   █", "█████"),
		},
		{
			name:     "diagonal",
			shape:    Line{X1: 0, Y1: 0, X2: 2, Y2: 2},
			width:    3,
			height:   3,
			bound:    2,
			expected: lines("  █", " █ ", "█  "),
		},
		{
			name:     "shallow",
			shape:    Line{X1: 0, Y1: 0, X2: 4, Y2: 2},
			width:    5,
			height:   3,
			bound:    0,
			expected: lines("    █", "  ██ ", "██   "),
		},
		{
			name:     "points outside are dropped",
			shape:    Points{Coords: [][2]float64{{1, 1}, {9, 9}, {-1, 0}}},
			width:    3,
			height:   3,
			bound:    2,
			expected: lines("   ", " █ ", "   "),
		},
		{
			name:     "line with an end outside is dropped",
			shape:    Line{X1: 0, Y1: 0, X2: 5, Y2: 0},
			width:    3,
			height:   1,
			bound:    2,
			expected: lines("   "),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			xb := [2]float64{0, tt.bound}
			yb := [2]float64{0, tt.bound}
			if tt.bound == 0 {
				xb = [2]float64{0, float64(tt.width - 1)}
				yb = [2]float64{0, float64(tt.height - 1)}
			}
			buf := cellgrid.NewBuffer(cellgrid.NewRect(0, 0, tt.width, tt.height))
			Canvas{
				XBounds: xb,
				YBounds: yb,
				Marker:  Block,
				Paint:   func(ctx *Context) { ctx.Draw(tt.shape) },
			}.Render(buf.Area(), buf)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestCircle(t *testing.T) {
	ctx := NewContext(5, 5, [2]float64{-2, 2}, [2]float64{-2, 2}, Block)
	ctx.Draw(Circle{X: 0, Y: 0, Radius: 2, Color: cellgrid.ColorGreen})
	layer := ctx.Layers()[0]

	at := func(x, y int) rune { return layer[y*5+x].Symbol }
	assert.Equal(t, '█', at(4, 2), "east")
	assert.Equal(t, '█', at(0, 2), "west")
	assert.Equal(t, '█', at(2, 0), "north")
	assert.Equal(t, ' ', at(2, 2), "center")
}

func TestCanvasLabels(t *testing.T) {
	buf := cellgrid.NewBuffer(cellgrid.NewRect(0, 0, 10, 3))
	Canvas{
		XBounds: [2]float64{0, 10},
		YBounds: [2]float64{0, 10},
		Paint: func(ctx *Context) {
			ctx.Print(0, 10, "hi", cellgrid.Style{Fg: cellgrid.ColorYellow})
			ctx.Print(10, 0, "end", cellgrid.Style{})
			ctx.Print(11, 0, "gone", cellgrid.Style{})
		},
	}.Render(buf.Area(), buf)

	assert.Equal(t, lines("hi        ", "          ", "         e"), buf.String())
	c, _ := buf.Cell(0, 0)
	assert.Equal(t, cellgrid.ColorYellow, c.Fg)
}

func TestCanvasBackgroundAndBlock(t *testing.T) {
	buf := cellgrid.NewBuffer(cellgrid.NewRect(0, 0, 4, 3))
	Canvas{
		Block:      &widgets.Block{Border: widgets.BorderSingle},
		XBounds:    [2]float64{0, 1},
		YBounds:    [2]float64{0, 1},
		Marker:     Dot,
		Background: cellgrid.ColorBlue,
		Paint: func(ctx *Context) {
			ctx.Draw(Points{Coords: [][2]float64{{1, 1}}})
		},
	}.Render(buf.Area(), buf)

	assert.Equal(t, lines("┌──┐", "│ •│", "└──┘"), buf.String())
	inside, _ := buf.Cell(1, 1)
	assert.Equal(t, cellgrid.ColorBlue, inside.Bg)
	border, _ := buf.Cell(0, 0)
	assert.Equal(t, cellgrid.ColorReset, border.Bg)
}

func TestCanvasWithoutPaint(t *testing.T) {
	buf := cellgrid.NewBufferFilled(cellgrid.NewRect(0, 0, 2, 1), cellgrid.NewCell("x", cellgrid.Style{}))
	Canvas{}.Render(buf.Area(), buf)
	assert.Equal(t, "xx\n", buf.String())
}

func TestMarkerUnmarshalText(t *testing.T) {
	tests := map[string]Marker{
		"braille":    Braille,
		"half-block": HalfBlock,
		"half_block": HalfBlock,
		"HalfBlock":  HalfBlock,
		"DOT":        Dot,
		"block":      Block,
		"bar":        Bar,
	}
	for text, want := range tests {
		var m Marker
		require.NoError(t, m.UnmarshalText([]byte(text)), text)
		assert.Equal(t, want, m, text)
	}

	var m Marker
	assert.Error(t, m.UnmarshalText([]byte("pixel")))
}
