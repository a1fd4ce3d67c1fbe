package cellgrid

import "strings"

// Style is a partial set of cell attributes. Unset colors (ColorNone) leave
// the target cell's colors alone; SubModifier clears attributes.
type Style struct {
	Fg          Color
	Bg          Color
	AddModifier Modifier
	SubModifier Modifier
}

// Patch returns s overlaid with other. Set colors in other win and its
// modifier changes are applied on top of those in s.
func (s Style) Patch(other Style) Style {
	s.Fg = other.Fg.Or(s.Fg)
	s.Bg = other.Bg.Or(s.Bg)
	s.AddModifier = (s.AddModifier &^ other.SubModifier) | other.AddModifier
	s.SubModifier = (s.SubModifier &^ other.AddModifier) | other.SubModifier
	return s
}

// Cell is one terminal position. Skip marks the right half of a two-column
// glyph whose left half is the preceding cell.
type Cell struct {
	Symbol   string
	Fg       Color
	Bg       Color
	Modifier Modifier
	Skip     bool
}

// EmptyCell is what a fresh Buffer is filled with.
var EmptyCell = Cell{Symbol: " ", Fg: ColorReset, Bg: ColorReset}

// NewCell returns a cell showing symbol with style applied to the defaults.
func NewCell(symbol string, style Style) Cell {
	c := EmptyCell
	c.Symbol = symbol
	return c.SetStyle(style)
}

// SetStyle returns c with style applied.
func (c Cell) SetStyle(style Style) Cell {
	c.Fg = style.Fg.Or(c.Fg)
	c.Bg = style.Bg.Or(c.Bg)
	c.Modifier = (c.Modifier | style.AddModifier) &^ style.SubModifier
	return c
}

// Style returns the cell's attributes as a Style.
func (c Cell) Style() Style {
	return Style{Fg: c.Fg, Bg: c.Bg, AddModifier: c.Modifier}
}

// Width is the number of columns the symbol occupies.
func (c Cell) Width() int {
	return SymbolWidth(c.Symbol)
}

// maskOf is the companion placed right of a wide glyph.
func maskOf(c Cell) Cell {
	return Cell{Symbol: " ", Fg: c.Fg, Bg: c.Bg, Modifier: c.Modifier, Skip: true}
}

func (c Cell) String() string {
	var sb strings.Builder
	sb.WriteString("Cell{")
	sb.WriteString(quoteSymbol(c.Symbol))
	if c.Fg != ColorReset {
		sb.WriteString(" fg=" + c.Fg.String())
	}
	if c.Bg != ColorReset {
		sb.WriteString(" bg=" + c.Bg.String())
	}
	if c.Modifier != 0 {
		sb.WriteString(" mod=" + c.Modifier.String())
	}
	if c.Skip {
		sb.WriteString(" skip")
	}
	sb.WriteString("}")
	return sb.String()
}

func quoteSymbol(s string) string {
	return "\"" + strings.ReplaceAll(s, "\"", "\\\"") + "\""
}
