// Package canvas draws shapes at sub-cell resolution using braille
// patterns, half blocks or plain marker characters.
package canvas

import (
	"fmt"
	"strings"

	"github.com/germtb/cellgrid"
)

// Marker selects the symbols a canvas is drawn with.
type Marker uint8

const (
	// Braille packs 2x4 dots into each cell, one foreground color per cell.
	Braille Marker = iota
	// HalfBlock splits each cell into an upper and a lower pixel with their
	// own colors.
	HalfBlock
	Dot
	Block
	Bar
)

var markerNames = [...]string{
	Braille:   "braille",
	HalfBlock: "half-block",
	Dot:       "dot",
	Block:     "block",
	Bar:       "bar",
}

func (m Marker) String() string {
	if int(m) < len(markerNames) {
		return markerNames[m]
	}
	return fmt.Sprintf("Marker(%d)", uint8(m))
}

func (m *Marker) UnmarshalText(text []byte) error {
	name := strings.ReplaceAll(strings.ToLower(string(text)), "_", "-")
	if name == "halfblock" {
		name = "half-block"
	}
	for i, n := range markerNames {
		if n == name {
			*m = Marker(i)
			return nil
		}
	}
	return fmt.Errorf("unknown marker %q", text)
}

const (
	brailleBlank = 0x2800
	dotChar      = '•'
	blockChar    = '█'
	barChar      = '▄'
	upperHalf    = '▀'
	lowerHalf    = '▄'
)

// brailleDots[y][x] is the bit of the dot at (x, y) inside a braille cell.
var brailleDots = [4][2]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

type gridKind uint8

const (
	charGrid gridKind = iota
	brailleGrid
	halfBlockGrid
)

// Grid is a paintable surface of Width x Height terminal cells. Its
// resolution depends on the marker: 1x1 points per cell for character
// markers, 2x4 for braille and 1x2 for half blocks.
type Grid struct {
	kind     gridKind
	width    uint16
	height   uint16
	cellChar rune
	// symbols holds one rune per cell for char and braille grids.
	symbols []rune
	// colors holds one color per cell for char and braille grids, and one
	// per pixel (width x 2*height) for half-block grids.
	colors []cellgrid.Color
}

// NewGrid returns a blank grid for marker.
func NewGrid(width, height uint16, marker Marker) *Grid {
	g := &Grid{width: width, height: height}
	n := int(width) * int(height)
	switch marker {
	case Braille:
		g.kind = brailleGrid
		g.symbols = make([]rune, n)
		g.colors = make([]cellgrid.Color, n)
	case HalfBlock:
		g.kind = halfBlockGrid
		g.colors = make([]cellgrid.Color, 2*n)
	default:
		g.kind = charGrid
		g.cellChar = markerChar(marker)
		g.symbols = make([]rune, n)
		g.colors = make([]cellgrid.Color, n)
	}
	g.Reset()
	return g
}

func markerChar(m Marker) rune {
	switch m {
	case Block:
		return blockChar
	case Bar:
		return barChar
	}
	return dotChar
}

func (g *Grid) Width() uint16 { return g.width }

func (g *Grid) Height() uint16 { return g.height }

// Resolution is the number of paintable points across and down.
func (g *Grid) Resolution() (float64, float64) {
	w, h := float64(g.width), float64(g.height)
	switch g.kind {
	case brailleGrid:
		return w * 2, h * 4
	case halfBlockGrid:
		return w, h * 2
	}
	return w, h
}

// Paint sets the point (x, y), counted in points from the top left corner.
// Points outside the grid are ignored.
func (g *Grid) Paint(x, y int, color cellgrid.Color) {
	resX, resY := g.Resolution()
	if x < 0 || y < 0 || x >= int(resX) || y >= int(resY) {
		return
	}
	color = color.Or(cellgrid.ColorReset)
	switch g.kind {
	case brailleGrid:
		i := y/4*int(g.width) + x/2
		g.symbols[i] |= brailleDots[y%4][x%2]
		g.colors[i] = color
	case halfBlockGrid:
		g.colors[y*int(g.width)+x] = color
	default:
		i := y*int(g.width) + x
		g.symbols[i] = g.cellChar
		g.colors[i] = color
	}
}

// Reset blanks every point.
func (g *Grid) Reset() {
	blank := ' '
	if g.kind == brailleGrid {
		blank = brailleBlank
	}
	for i := range g.symbols {
		g.symbols[i] = blank
	}
	for i := range g.colors {
		g.colors[i] = cellgrid.ColorReset
	}
}

// LayerCell is one cell of a saved layer.
type LayerCell struct {
	Symbol rune
	Fg     cellgrid.Color
	Bg     cellgrid.Color
}

// Layer is a snapshot of a grid, one cell per terminal cell in row order.
type Layer []LayerCell

// Save snapshots the grid.
func (g *Grid) Save() Layer {
	if g.kind == halfBlockGrid {
		return g.saveHalfBlocks()
	}
	layer := make(Layer, len(g.symbols))
	for i, s := range g.symbols {
		layer[i] = LayerCell{Symbol: s, Fg: g.colors[i], Bg: cellgrid.ColorReset}
	}
	return layer
}

// saveHalfBlocks folds vertical pixel pairs into one cell each. Equal upper
// and lower colors become a full block so the cell reads as one glyph.
func (g *Grid) saveHalfBlocks() Layer {
	w := int(g.width)
	layer := make(Layer, 0, w*int(g.height))
	for row := 0; row < int(g.height); row++ {
		upperRow := g.colors[2*row*w : (2*row+1)*w]
		lowerRow := g.colors[(2*row+1)*w : (2*row+2)*w]
		for x := range w {
			upper, lower := upperRow[x], lowerRow[x]
			cell := LayerCell{Fg: cellgrid.ColorReset, Bg: cellgrid.ColorReset}
			switch {
			case upper == cellgrid.ColorReset && lower == cellgrid.ColorReset:
				cell.Symbol = ' '
			case upper == cellgrid.ColorReset:
				cell.Symbol, cell.Fg = lowerHalf, lower
			case lower == cellgrid.ColorReset:
				cell.Symbol, cell.Fg = upperHalf, upper
			case upper == lower:
				cell.Symbol, cell.Fg, cell.Bg = blockChar, upper, lower
			default:
				cell.Symbol, cell.Fg, cell.Bg = upperHalf, upper, lower
			}
			layer = append(layer, cell)
		}
	}
	return layer
}
