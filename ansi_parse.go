package cellgrid

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ContainsAnsi reports whether s carries CSI escape sequences.
func ContainsAnsi(s string) bool {
	return strings.Contains(s, CSI)
}

// StripAnsi removes escape sequences, keeping only visible text.
func StripAnsi(s string) string {
	if !ContainsAnsi(s) && !strings.Contains(s, ESC) {
		return s
	}
	return ansi.Strip(s)
}

// Span is a piece of text drawn with a single style.
type Span struct {
	Text  string
	Style Style
}

// ParseAnsiLine splits a line carrying SGR sequences into styled spans.
// base is the style in effect before the first sequence and what a reset
// returns to. Other escape sequences are dropped.
func ParseAnsiLine(line string, base Style) []Span {
	if !ContainsAnsi(line) {
		return []Span{{Text: line, Style: base}}
	}

	var spans []Span
	current := base
	var text strings.Builder
	flush := func() {
		if text.Len() == 0 {
			return
		}
		if n := len(spans); n > 0 && spans[n-1].Style == current {
			spans[n-1].Text += text.String()
		} else {
			spans = append(spans, Span{Text: text.String(), Style: current})
		}
		text.Reset()
	}

	for i := 0; i < len(line); {
		switch {
		case line[i] == '\x1b' && i+1 < len(line) && line[i+1] == '[':
			flush()
			i += 2
			paramStart := i
			for i < len(line) && !(line[i] >= 0x40 && line[i] <= 0x7E) {
				i++
			}
			if i < len(line) {
				if line[i] == 'm' {
					applySGR(line[paramStart:i], &current, base)
				}
				i++
			}
		case line[i] == '\x1b':
			i += 2
		default:
			text.WriteByte(line[i])
			i++
		}
	}
	flush()
	return spans
}

var sgrModifiers = map[int]Modifier{
	1: Bold,
	2: Dim,
	3: Italic,
	4: Underlined,
	5: SlowBlink,
	6: RapidBlink,
	7: Reversed,
	8: Hidden,
	9: CrossedOut,
}

// sgrClears maps the "off" codes to the modifiers they clear.
var sgrClears = map[int]Modifier{
	22: Bold | Dim,
	23: Italic,
	24: Underlined,
	25: SlowBlink | RapidBlink,
	27: Reversed,
	28: Hidden,
	29: CrossedOut,
}

// applySGR applies one SGR parameter list to style.
func applySGR(paramStr string, style *Style, base Style) {
	if paramStr == "" {
		*style = base
		return
	}

	params := parseSGRParams(paramStr)
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			*style = base
		case sgrModifiers[p] != 0:
			m := sgrModifiers[p]
			style.AddModifier |= m
			style.SubModifier &^= m
		case sgrClears[p] != 0:
			m := sgrClears[p]
			style.AddModifier &^= m
			style.SubModifier |= m &^ base.AddModifier
		case p >= 30 && p <= 37:
			style.Fg = ColorBlack + Color(p-30)
		case p == 39:
			style.Fg = base.Fg
		case p >= 40 && p <= 47:
			style.Bg = ColorBlack + Color(p-40)
		case p == 49:
			style.Bg = base.Bg
		case p >= 90 && p <= 97:
			style.Fg = ColorDarkGray + Color(p-90)
		case p >= 100 && p <= 107:
			style.Bg = ColorDarkGray + Color(p-100)
		case p == 38 || p == 48:
			c, n := extendedColor(params[i+1:])
			i += n
			if c == ColorNone {
				continue
			}
			if p == 38 {
				style.Fg = c
			} else {
				style.Bg = c
			}
		}
	}
}

// extendedColor decodes the arguments following 38 or 48 and returns the
// color plus the number of parameters consumed.
func extendedColor(args []int) (Color, int) {
	switch {
	case len(args) >= 2 && args[0] == 5:
		return Indexed(uint8(args[1])), 2
	case len(args) >= 4 && args[0] == 2:
		return RGB(uint8(args[1]), uint8(args[2]), uint8(args[3])), 4
	}
	return ColorNone, 0
}

// parseSGRParams splits a semicolon separated parameter string.
func parseSGRParams(s string) []int {
	var params []int
	n := 0
	hasDigit := false
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			n = n*10 + int(s[i]-'0')
			hasDigit = true
		case s[i] == ';':
			params = append(params, n)
			n = 0
			hasDigit = false
		}
	}
	if hasDigit {
		params = append(params, n)
	}
	return params
}
