package widgets

import (
	"strings"

	"github.com/germtb/cellgrid"
)

// grapheme is one display cluster with the style it is drawn in.
type grapheme struct {
	text  string
	width int
	style cellgrid.Style
}

func graphemesOf(spans []cellgrid.Span) []grapheme {
	var out []grapheme
	for _, span := range spans {
		for g, w := range cellgrid.Graphemes(span.Text) {
			if w == 0 {
				continue
			}
			out = append(out, grapheme{text: g, width: w, style: span.Style})
		}
	}
	return out
}

func widthOf(gs []grapheme) int {
	w := 0
	for _, g := range gs {
		w += g.width
	}
	return w
}

// wrapGraphemes breaks a line greedily at the last space that fits. A break
// point in the first half of the line is ignored in favor of a hard break,
// so long words do not leave mostly empty lines behind.
func wrapGraphemes(line []grapheme, maxWidth int) [][]grapheme {
	var out [][]grapheme
	remaining := line
	for widthOf(remaining) > maxWidth {
		fit, w := 0, 0
		for fit < len(remaining) && w+remaining[fit].width <= maxWidth {
			w += remaining[fit].width
			fit++
		}
		if fit == 0 {
			// A single cluster wider than the line still has to go somewhere.
			fit = 1
		}

		breakPoint := -1
		for i := min(fit, len(remaining)-1); i > 0; i-- {
			if remaining[i].text == " " {
				breakPoint = i
				break
			}
		}
		if breakPoint <= 0 || widthOf(remaining[:breakPoint]) < maxWidth/2 {
			breakPoint = fit
		}

		out = append(out, remaining[:breakPoint])
		remaining = remaining[breakPoint:]
		for len(remaining) > 0 && remaining[0].text == " " {
			remaining = remaining[1:]
		}
	}
	if len(remaining) > 0 || len(out) == 0 {
		out = append(out, remaining)
	}
	return out
}

// WrapText wraps plain text to maxWidth columns, preserving explicit line
// breaks. Widths are measured in terminal cells.
func WrapText(text string, maxWidth int) []string {
	if maxWidth <= 0 {
		return []string{text}
	}

	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if cellgrid.StringWidth(line) <= maxWidth {
			lines = append(lines, line)
			continue
		}
		for _, wrapped := range wrapGraphemes(graphemesOf([]cellgrid.Span{{Text: line}}), maxWidth) {
			var sb strings.Builder
			for _, g := range wrapped {
				sb.WriteString(g.text)
			}
			lines = append(lines, sb.String())
		}
	}
	return lines
}
