package cellgrid

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// TcellBackend draws through a tcell Screen. tcell does its own diffing on
// Show, so Draw only forwards the patches.
type TcellBackend struct {
	screen tcell.Screen
	inited bool
}

// NewTcellBackend wraps screen. Pass nil to open the real terminal.
func NewTcellBackend(screen tcell.Screen) (*TcellBackend, error) {
	if screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return nil, fmt.Errorf("tcell backend: %w", err)
		}
		screen = s
	}
	return &TcellBackend{screen: screen}, nil
}

// Screen exposes the wrapped screen, e.g. for polling events.
func (b *TcellBackend) Screen() tcell.Screen { return b.screen }

func (b *TcellBackend) Size() (Size, error) {
	w, h := b.screen.Size()
	return Size{Width: uint16(w), Height: uint16(h)}, nil
}

func (b *TcellBackend) Draw(patches []Patch) error {
	for _, p := range patches {
		primary, combining := splitSymbol(p.Cell.Symbol)
		b.screen.SetContent(int(p.X), int(p.Y), primary, combining, TcellStyle(p.Cell))
	}
	return nil
}

func (b *TcellBackend) Clear() error {
	b.screen.Clear()
	return nil
}

func (b *TcellBackend) Flush() error {
	b.screen.Show()
	return nil
}

func (b *TcellBackend) HideCursor() error {
	b.screen.HideCursor()
	return nil
}

func (b *TcellBackend) ShowCursor() error { return nil }

func (b *TcellBackend) SetCursor(pos Position) error {
	b.screen.ShowCursor(int(pos.X), int(pos.Y))
	return nil
}

func (b *TcellBackend) Enter() error {
	if b.inited {
		return nil
	}
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("tcell backend: init: %w", err)
	}
	b.inited = true
	b.screen.HideCursor()
	b.screen.Clear()
	return nil
}

func (b *TcellBackend) Leave() error {
	if b.inited {
		b.screen.Fini()
		b.inited = false
	}
	return nil
}

func splitSymbol(s string) (rune, []rune) {
	runes := []rune(s)
	if len(runes) == 0 {
		return ' ', nil
	}
	return runes[0], runes[1:]
}

// TcellStyle converts a cell's attributes to a tcell style.
func TcellStyle(c Cell) tcell.Style {
	st := tcell.StyleDefault.
		Foreground(TcellColor(c.Fg)).
		Background(TcellColor(c.Bg)).
		Bold(c.Modifier&Bold != 0).
		Dim(c.Modifier&Dim != 0).
		Italic(c.Modifier&Italic != 0).
		Underline(c.Modifier&Underlined != 0).
		Blink(c.Modifier&(SlowBlink|RapidBlink) != 0).
		Reverse(c.Modifier&Reversed != 0).
		StrikeThrough(c.Modifier&CrossedOut != 0)
	return st
}

// TcellColor maps a Color onto tcell's palette.
func TcellColor(c Color) tcell.Color {
	switch {
	case c == ColorNone, c == ColorReset:
		return tcell.ColorReset
	case c.IsRGB():
		r, g, b := c.RGBValues()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	case c.IsIndexed():
		return tcell.PaletteColor(int(c.Index()))
	case c.IsNamed():
		return tcell.PaletteColor(int(c - ColorBlack))
	}
	return tcell.ColorReset
}
