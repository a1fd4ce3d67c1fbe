package widgets

import (
	"strings"

	"github.com/germtb/cellgrid"
)

// Alignment positions each line horizontally inside a Paragraph.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Paragraph renders text that may contain SGR escape sequences. Lines are
// split on "\n" and, with Wrap set, wrapped at word boundaries.
type Paragraph struct {
	Text      string
	Style     cellgrid.Style
	Block     *Block
	Wrap      bool
	Alignment Alignment
	// Scroll is the number of lines skipped from the top.
	Scroll int
}

// Lines returns the styled lines the paragraph draws at the given width.
func (p Paragraph) Lines(width int) [][]cellgrid.Span {
	var out [][]cellgrid.Span
	for _, line := range strings.Split(p.Text, "\n") {
		gs := graphemesOf(cellgrid.ParseAnsiLine(line, p.Style))
		if !p.Wrap || width <= 0 {
			out = append(out, spansOf(gs))
			continue
		}
		for _, wrapped := range wrapGraphemes(gs, width) {
			out = append(out, spansOf(wrapped))
		}
	}
	return out
}

func spansOf(gs []grapheme) []cellgrid.Span {
	var spans []cellgrid.Span
	for _, g := range gs {
		if n := len(spans); n > 0 && spans[n-1].Style == g.style {
			spans[n-1].Text += g.text
			continue
		}
		spans = append(spans, cellgrid.Span{Text: g.text, Style: g.style})
	}
	return spans
}

func spansWidth(spans []cellgrid.Span) int {
	w := 0
	for _, s := range spans {
		w += cellgrid.StringWidth(s.Text)
	}
	return w
}

func (p Paragraph) Render(area cellgrid.Rect, buf *cellgrid.Buffer) {
	if p.Block != nil {
		p.Block.Render(area, buf)
		area = p.Block.Inner(area)
	}
	area = area.Intersection(buf.Area())
	if area.IsEmpty() {
		return
	}
	buf.SetStyle(area, p.Style)

	lines := p.Lines(int(area.Width))
	if p.Scroll > 0 {
		lines = lines[min(p.Scroll, len(lines)):]
	}
	for i, spans := range lines {
		if i >= int(area.Height) {
			break
		}
		y := area.Y + uint16(i)
		x := area.X
		switch slack := int(area.Width) - spansWidth(spans); {
		case slack <= 0:
		case p.Alignment == AlignCenter:
			x += uint16(slack / 2)
		case p.Alignment == AlignRight:
			x += uint16(slack)
		}
		for _, span := range spans {
			remaining := int(area.Right()) - int(x)
			if remaining <= 0 {
				break
			}
			x = buf.SetStringN(x, y, span.Text, remaining, span.Style).X
		}
	}
}
