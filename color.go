package cellgrid

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a terminal color. The zero value, ColorNone, means "not set" and
// is only meaningful inside a Style; cells always hold a concrete color.
// Indexed and RGB colors carry their payload in the low 24 bits.
type Color uint32

const (
	ColorNone  Color = iota // unset, leaves the target color alone
	ColorReset              // terminal default
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorGray
	ColorDarkGray
	ColorLightRed
	ColorLightGreen
	ColorLightYellow
	ColorLightBlue
	ColorLightMagenta
	ColorLightCyan
	ColorWhite
)

const (
	indexedFlag Color = 1 << 24
	rgbFlag     Color = 1 << 25
	payloadMask Color = 1<<24 - 1
)

// Indexed returns a color from the 256-color palette.
func Indexed(n uint8) Color { return indexedFlag | Color(n) }

// RGB returns a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return rgbFlag | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// FromColorful converts a go-colorful color, clamping it into gamut.
func FromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return RGB(r, g, b)
}

// IsNamed reports whether c is one of the sixteen ANSI colors.
func (c Color) IsNamed() bool { return c >= ColorBlack && c <= ColorWhite }

func (c Color) IsIndexed() bool { return c&indexedFlag != 0 }

func (c Color) IsRGB() bool { return c&rgbFlag != 0 }

// Index returns the palette slot of an indexed color.
func (c Color) Index() uint8 { return uint8(c & payloadMask) }

// RGBValues returns the channels of a true color.
func (c Color) RGBValues() (r, g, b uint8) {
	v := c & payloadMask
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}

// Or returns c unless it is ColorNone, in which case fallback is returned.
func (c Color) Or(fallback Color) Color {
	if c == ColorNone {
		return fallback
	}
	return c
}

var colorNames = map[string]Color{
	"reset":        ColorReset,
	"default":      ColorReset,
	"black":        ColorBlack,
	"red":          ColorRed,
	"green":        ColorGreen,
	"yellow":       ColorYellow,
	"blue":         ColorBlue,
	"magenta":      ColorMagenta,
	"cyan":         ColorCyan,
	"gray":         ColorGray,
	"darkgray":     ColorDarkGray,
	"lightred":     ColorLightRed,
	"lightgreen":   ColorLightGreen,
	"lightyellow":  ColorLightYellow,
	"lightblue":    ColorLightBlue,
	"lightmagenta": ColorLightMagenta,
	"lightcyan":    ColorLightCyan,
	"white":        ColorWhite,
}

var namedStrings = func() map[Color]string {
	m := make(map[Color]string, len(colorNames))
	for name, c := range colorNames {
		if name != "default" {
			m[c] = name
		}
	}
	return m
}()

func (c Color) String() string {
	switch {
	case c == ColorNone:
		return ""
	case c.IsRGB():
		r, g, b := c.RGBValues()
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	case c.IsIndexed():
		return strconv.Itoa(int(c.Index()))
	}
	if name, ok := namedStrings[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", uint32(c))
}

// ParseColor accepts a color name ("red", "light-blue", "dark_gray"), a
// palette index ("208") or a hex triplet ("#ff8800").
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ColorNone, nil
	}
	if strings.HasPrefix(s, "#") {
		hc, err := colorful.Hex(s)
		if err != nil {
			return ColorNone, fmt.Errorf("color %q: %w", s, err)
		}
		return FromColorful(hc), nil
	}
	if n, err := strconv.ParseUint(s, 10, 8); err == nil {
		return Indexed(uint8(n)), nil
	}
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(s))
	key = strings.Replace(key, "grey", "gray", 1)
	if c, ok := colorNames[key]; ok {
		return c, nil
	}
	return ColorNone, fmt.Errorf("unknown color %q", s)
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Modifier is a bitset of text attributes.
type Modifier uint16

const (
	Bold Modifier = 1 << iota
	Dim
	Italic
	Underlined
	SlowBlink
	RapidBlink
	Reversed
	Hidden
	CrossedOut
)

var modifierNames = [...]string{
	"bold", "dim", "italic", "underlined", "slow_blink",
	"rapid_blink", "reversed", "hidden", "crossed_out",
}

func (m Modifier) String() string {
	if m == 0 {
		return ""
	}
	var parts []string
	for i, name := range modifierNames {
		if m&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}
