package cellgrid

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// DebugLayout prints how l splits area to stdout.
func DebugLayout(l Layout, area Rect) {
	FprintLayout(os.Stdout, l, area)
}

// SprintLayout returns how l splits area as a string.
func SprintLayout(l Layout, area Rect) string {
	var sb strings.Builder
	FprintLayout(&sb, l, area)
	return sb.String()
}

// FprintLayout writes the layout header followed by one line per segment.
func FprintLayout(w io.Writer, l Layout, area Rect) {
	line := fmt.Sprintf("%s %s flex=%s", l.Direction, area, l.Flex)
	if l.Spacing > 0 {
		line += fmt.Sprintf(" spacing=%d", l.Spacing)
	}
	if l.Margin != (Margin{}) {
		line += fmt.Sprintf(" margin=%d,%d", l.Margin.Horizontal, l.Margin.Vertical)
	}
	fmt.Fprintln(w, line)

	for i, r := range l.Split(area) {
		fmt.Fprintf(w, "  %-8s %s\n", l.Constraints[i], r)
	}
}
