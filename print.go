package cellgrid

import (
	"io"
	"os"
	"strings"
)

// PrintOptions configures dimensions for Fprint.
type PrintOptions struct {
	Width  int // 0 = terminal width (default 80)
	Height int // 0 = terminal height (default 24)
}

// Print renders a widget to stdout with ANSI styling.
func Print(w Widget) {
	Fprint(os.Stdout, w, PrintOptions{})
}

// Sprint renders a widget to a string with ANSI styling.
func Sprint(w Widget, opts PrintOptions) string {
	var sb strings.Builder
	Fprint(&sb, w, opts)
	return sb.String()
}

// Fprint renders a widget into scrollback: plain lines without cursor
// addressing, with trailing blank rows dropped.
func Fprint(out io.Writer, w Widget, opts PrintOptions) {
	width, height := opts.Width, opts.Height
	if width == 0 || height == 0 {
		tw, th, err := GetSize(Stdout())
		if err == nil {
			if width == 0 {
				width = tw
			}
			if height == 0 {
				height = th
			}
		}
	}
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 24
	}

	area := NewRect(0, 0, uint16(min(width, MaxArea)), uint16(min(height, MaxArea)))
	buf := NewBuffer(area)
	w.Render(area, buf)

	lastRow := 0
	content := buf.Content()
	for i := len(content) - 1; i >= 0; i-- {
		if content[i] != EmptyCell {
			lastRow = int(buf.PosOf(i).Y)
			break
		}
	}

	io.WriteString(out, BufferToAnsiLines(buf, lastRow+1))
	io.WriteString(out, "\n")
}
