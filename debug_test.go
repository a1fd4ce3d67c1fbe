package cellgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSprintLayout(t *testing.T) {
	l := HorizontalLayout(Length(3), Fill(1))
	l.Spacing = 1

	expected := "horizontal 10x1+0+0 flex=start spacing=1\n" +
		"  3        3x1+0+0\n" +
		"  fill:1   6x1+4+0\n"
	assert.Equal(t, expected, SprintLayout(l, NewRect(0, 0, 10, 1)))
}

func TestSprintLayout_Margin(t *testing.T) {
	l := Layout{Constraints: Percentages(50, 50), Margin: Margin{Horizontal: 1, Vertical: 1}}

	expected := "vertical 4x6+0+0 flex=start margin=1,1\n" +
		"  50%      2x2+1+1\n" +
		"  50%      2x2+1+3\n"
	assert.Equal(t, expected, SprintLayout(l, NewRect(0, 0, 4, 6)))
}
