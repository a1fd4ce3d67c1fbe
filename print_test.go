package cellgrid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func textWidget(lines ...string) Widget {
	return WidgetFunc(func(area Rect, buf *Buffer) {
		for i, line := range lines {
			buf.SetString(area.X, area.Y+uint16(i), line, Style{})
		}
	})
}

func TestSprint(t *testing.T) {
	result := Sprint(textWidget("Hello"), PrintOptions{Width: 10, Height: 1})
	assert.Equal(t, resetStr+"Hello"+resetStr+"\n", result)
}

func TestSprint_WithStyles(t *testing.T) {
	w := WidgetFunc(func(area Rect, buf *Buffer) {
		buf.SetString(0, 0, "Bold", Style{AddModifier: Bold})
	})
	result := Sprint(w, PrintOptions{Width: 10, Height: 1})

	assert.Contains(t, result, "\x1b[1mBold")
	assert.True(t, strings.HasSuffix(result, resetStr+"\n"))
}

func TestSprint_WideCharacters(t *testing.T) {
	result := Sprint(textWidget("Hi🌐!"), PrintOptions{Width: 10, Height: 1})
	assert.Contains(t, result, "Hi🌐!")
}

func TestSprint_MultiLine(t *testing.T) {
	result := Sprint(textWidget("Line1", "Line2", "Line3"), PrintOptions{Width: 10, Height: 3})

	assert.Equal(t, "Line1\nLine2\nLine3\n", StripAnsi(result))
	assert.NotContains(t, result, "\r\n")
	assert.NotContains(t, result, MoveCursor(0, 0))
}

func TestSprint_TrimsEmptyRows(t *testing.T) {
	result := Sprint(textWidget("Hi"), PrintOptions{Width: 10, Height: 10})

	lines := strings.Split(strings.TrimSuffix(result, "\n"), "\n")
	assert.Len(t, lines, 1)
}

func TestSprint_KeepsInnerBlankRows(t *testing.T) {
	result := Sprint(textWidget("a", "", "c"), PrintOptions{Width: 3, Height: 5})
	assert.Equal(t, "a\n\nc\n", StripAnsi(result))
}

func TestFprint_CustomDimensions(t *testing.T) {
	var sb strings.Builder
	var got Rect
	w := WidgetFunc(func(area Rect, buf *Buffer) {
		got = area
		buf.SetString(0, 0, "Custom", Style{})
	})
	Fprint(&sb, w, PrintOptions{Width: 20, Height: 2})

	assert.Equal(t, NewRect(0, 0, 20, 2), got)
	assert.Contains(t, sb.String(), "Custom")
}
