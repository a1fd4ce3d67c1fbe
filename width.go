package cellgrid

import (
	"iter"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// SymbolWidth returns the number of columns s occupies: 0, 1 or 2 for a
// single grapheme.
func SymbolWidth(s string) int {
	switch len(s) {
	case 0:
		return 0
	case 1:
		return 1
	}
	if r, size := utf8.DecodeRuneInString(s); size == len(s) {
		return runewidth.RuneWidth(r)
	}
	return ansi.StringWidth(s)
}

// StringWidth is the display width of s, ignoring escape sequences.
func StringWidth(s string) int {
	return ansi.StringWidth(s)
}

// Graphemes yields each grapheme cluster of s with its display width.
// Control characters are reported with width 0.
func Graphemes(s string) iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		for len(s) > 0 {
			cluster, width := ansi.FirstGraphemeCluster(s, ansi.GraphemeWidth)
			if cluster == "" {
				return
			}
			s = s[len(cluster):]
			if isControl(cluster) {
				width = 0
			}
			if !yield(cluster, width) {
				return
			}
		}
	}
}

func isControl(cluster string) bool {
	r, _ := utf8.DecodeRuneInString(cluster)
	return r < 0x20 || r == 0x7f
}
