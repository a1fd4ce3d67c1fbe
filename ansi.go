package cellgrid

import (
	"strconv"
	"strings"
)

const (
	ESC = "\x1b"
	CSI = ESC + "["
)

const (
	resetStr        = CSI + "0m"
	hideCursorStr   = CSI + "?25l"
	showCursorStr   = CSI + "?25h"
	clearScreenStr  = CSI + "2J" + CSI + "H"
	enterAltScreen  = CSI + "?1049h"
	leaveAltScreen  = CSI + "?1049l"
	modifierSGRBase = 1
)

// MoveCursor returns the sequence moving the cursor to (x, y). ANSI
// coordinates are 1-based.
func MoveCursor(x, y uint16) string {
	return CSI + strconv.Itoa(int(y)+1) + ";" + strconv.Itoa(int(x)+1) + "H"
}

func HideCursor() string { return hideCursorStr }

func ShowCursor() string { return showCursorStr }

func ClearScreen() string { return clearScreenStr }

// namedSGR maps the sixteen named colors to their foreground SGR code; the
// background code is 10 higher.
var namedSGR = [...]int{
	ColorBlack:        30,
	ColorRed:          31,
	ColorGreen:        32,
	ColorYellow:       33,
	ColorBlue:         34,
	ColorMagenta:      35,
	ColorCyan:         36,
	ColorGray:         37,
	ColorDarkGray:     90,
	ColorLightRed:     91,
	ColorLightGreen:   92,
	ColorLightYellow:  93,
	ColorLightBlue:    94,
	ColorLightMagenta: 95,
	ColorLightCyan:    96,
	ColorWhite:        97,
}

// writeColor appends the SGR sequence selecting c as foreground or
// background.
func writeColor(sb *strings.Builder, c Color, fg bool) {
	base := 30
	if !fg {
		base = 40
	}
	switch {
	case c == ColorNone:
		return
	case c == ColorReset:
		sb.WriteString(CSI + strconv.Itoa(base+9) + "m")
	case c.IsRGB():
		r, g, b := c.RGBValues()
		sb.WriteString(CSI + strconv.Itoa(base+8) + ";2;" +
			strconv.Itoa(int(r)) + ";" + strconv.Itoa(int(g)) + ";" + strconv.Itoa(int(b)) + "m")
	case c.IsIndexed():
		sb.WriteString(CSI + strconv.Itoa(base+8) + ";5;" + strconv.Itoa(int(c.Index())) + "m")
	case c.IsNamed():
		sb.WriteString(CSI + strconv.Itoa(namedSGR[c]+base-30) + "m")
	}
}

// writeCellStyle appends the sequences selecting the cell's attributes. It
// assumes the terminal was reset beforehand.
func writeCellStyle(sb *strings.Builder, c Cell) {
	for i := range modifierNames {
		if c.Modifier&(1<<i) != 0 {
			sb.WriteString(CSI + strconv.Itoa(modifierSGRBase+i) + "m")
		}
	}
	if c.Fg != ColorReset {
		writeColor(sb, c.Fg, true)
	}
	if c.Bg != ColorReset {
		writeColor(sb, c.Bg, false)
	}
}

func sameStyle(a, b Cell) bool {
	return a.Fg == b.Fg && a.Bg == b.Bg && a.Modifier == b.Modifier
}

// RunToAnsi renders one run: a cursor move followed by its cells, emitting
// style changes only where the style changes.
func RunToAnsi(run CellRun, sb *strings.Builder) {
	sb.WriteString(MoveCursor(run.X, run.Y))
	var current *Cell
	for i := range run.Cells {
		c := run.Cells[i]
		if current == nil || !sameStyle(*current, c) {
			sb.WriteString(resetStr)
			writeCellStyle(sb, c)
			current = &run.Cells[i]
		}
		sb.WriteString(c.Symbol)
	}
}

// RunsToAnsi renders runs to a single string ending with a style reset.
func RunsToAnsi(runs []CellRun) string {
	var sb strings.Builder
	RunsToAnsiBuilder(runs, &sb)
	return sb.String()
}

// RunsToAnsiBuilder is RunsToAnsi writing into a caller-owned builder.
func RunsToAnsiBuilder(runs []CellRun, sb *strings.Builder) {
	totalCells := 0
	for _, run := range runs {
		totalCells += len(run.Cells)
	}
	sb.Grow(totalCells*20 + len(runs)*15)
	for _, run := range runs {
		RunToAnsi(run, sb)
	}
	sb.WriteString(resetStr)
}

// BufferToAnsiLines renders the first rows of b as plain lines, without
// cursor addressing, for printing into scrollback. Trailing default cells
// are trimmed from each line.
func BufferToAnsiLines(b *Buffer, rows int) string {
	var sb strings.Builder
	area := b.Area()
	rows = min(rows, int(area.Height))
	for y := 0; y < rows; y++ {
		row := b.content[y*int(area.Width) : (y+1)*int(area.Width)]
		end := len(row)
		for end > 0 && row[end-1] == EmptyCell {
			end--
		}
		var current *Cell
		for i := 0; i < end; i++ {
			c := row[i]
			if c.Skip {
				continue
			}
			if current == nil || !sameStyle(*current, c) {
				sb.WriteString(resetStr)
				writeCellStyle(&sb, c)
				current = &row[i]
			}
			sb.WriteString(c.Symbol)
		}
		sb.WriteString(resetStr)
		if y < rows-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
