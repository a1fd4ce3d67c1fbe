package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/germtb/cellgrid"
)

func render(w cellgrid.Widget, width, height uint16) *cellgrid.Buffer {
	buf := cellgrid.NewBuffer(cellgrid.NewRect(0, 0, width, height))
	w.Render(buf.Area(), buf)
	return buf
}

func TestBlockRender(t *testing.T) {
	tests := []struct {
		name     string
		block    Block
		width    uint16
		height   uint16
		expected string
	}{
		{
			name:     "single with title",
			block:    Block{Title: "Hi", Border: BorderSingle},
			width:    6,
			height:   3,
			expected: "┌Hi──┐\n│    │\n└────┘\n",
		},
		{
			name:     "rounded",
			block:    Block{Border: BorderRounded},
			width:    4,
			height:   2,
			expected: "╭──╮\n╰──╯\n",
		},
		{
			name:     "double",
			block:    Block{Border: BorderDouble},
			width:    3,
			height:   3,
			expected: "╔═╗\n║ ║\n╚═╝\n",
		},
		{
			name:     "title truncated inside border",
			block:    Block{Title: "Hello World", Border: BorderBold},
			width:    6,
			height:   2,
			expected: "┏Hell┓\n┗━━━━┛\n",
		},
		{
			name:     "title without border",
			block:    Block{Title: "Logs"},
			width:    6,
			height:   2,
			expected: "Logs  \n      \n",
		},
		{
			name:     "no border no title",
			block:    Block{Border: BorderNone},
			width:    2,
			height:   1,
			expected: "  \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, render(tt.block, tt.width, tt.height).String())
		})
	}
}

func TestBlockStyles(t *testing.T) {
	b := Block{
		Title:       "T",
		TitleStyle:  cellgrid.Style{AddModifier: cellgrid.Bold},
		Border:      BorderSingle,
		BorderColor: cellgrid.ColorBlue,
		Style:       cellgrid.Style{Bg: cellgrid.ColorBlack},
	}
	buf := render(b, 4, 3)

	corner, _ := buf.Cell(0, 0)
	assert.Equal(t, cellgrid.ColorBlue, corner.Fg)
	assert.Equal(t, cellgrid.ColorBlack, corner.Bg)

	title, _ := buf.Cell(1, 0)
	assert.Equal(t, "T", title.Symbol)
	assert.Equal(t, cellgrid.Bold, title.Modifier)
	assert.Equal(t, cellgrid.ColorBlack, title.Bg)

	inside, _ := buf.Cell(1, 1)
	assert.Equal(t, cellgrid.ColorBlack, inside.Bg)
	assert.Equal(t, cellgrid.ColorReset, inside.Fg)
}

func TestBlockInner(t *testing.T) {
	area := cellgrid.NewRect(0, 0, 10, 5)
	tests := []struct {
		name     string
		block    Block
		expected cellgrid.Rect
	}{
		{"plain", Block{}, area},
		{"border", Block{Border: BorderSingle}, cellgrid.NewRect(1, 1, 8, 3)},
		{"title only", Block{Title: "x"}, cellgrid.NewRect(0, 1, 10, 4)},
		{"border and title", Block{Title: "x", Border: BorderSingle}, cellgrid.NewRect(1, 1, 8, 3)},
		{
			"border and padding",
			Block{Border: BorderRounded, Padding: cellgrid.Margin{Horizontal: 1}},
			cellgrid.NewRect(2, 1, 6, 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.block.Inner(area))
		})
	}
}

func TestBlockClipsToBuffer(t *testing.T) {
	buf := cellgrid.NewBuffer(cellgrid.NewRect(0, 0, 3, 2))
	Block{Border: BorderSingle}.Render(cellgrid.NewRect(1, 0, 5, 5), buf)
	assert.Equal(t, " ┌─\n │ \n", buf.String())
}
