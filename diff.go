package cellgrid

import (
	"fmt"
	"strings"
)

// Patch says the terminal cell at Position must become Cell.
type Patch struct {
	Position
	Cell Cell
}

// CellRun is a sequence of patches that can be written after a single cursor
// move: each cell starts where the previous one ended.
type CellRun struct {
	Position
	Cells []Cell
}

// Diff returns the patches that turn previous into current, in row-major
// order. Cells masked by a wide glyph in current are never emitted. It panics
// if the buffers cover different areas.
func Diff(previous, current *Buffer) []Patch {
	return DiffInto(previous, current, nil)
}

// DiffInto is Diff appending to patches, letting callers reuse a slice
// between frames.
func DiffInto(previous, current *Buffer, patches []Patch) []Patch {
	if previous.area != current.area {
		panic(fmt.Sprintf("cellgrid: diff of mismatched areas %s and %s", previous.area, current.area))
	}
	for i, next := range current.content {
		if next.Skip || next == previous.content[i] {
			continue
		}
		patches = append(patches, Patch{Position: current.PosOf(i), Cell: next})
	}
	return patches
}

// Runs groups row-major patches into runs of adjacent cells. A wide cell
// advances the run by its width.
func Runs(patches []Patch) []CellRun {
	if len(patches) == 0 {
		return nil
	}
	runs := make([]CellRun, 0, len(patches)/4+1)
	var cur *CellRun
	var nextX uint16
	for _, p := range patches {
		if cur != nil && p.Y == cur.Y && p.X == nextX {
			cur.Cells = append(cur.Cells, p.Cell)
		} else {
			runs = append(runs, CellRun{Position: p.Position, Cells: make([]Cell, 1, 16)})
			cur = &runs[len(runs)-1]
			cur.Cells[0] = p.Cell
		}
		nextX = p.X + uint16(max(1, p.Cell.Width()))
	}
	return runs
}

// Apply replays patches onto b, following the same wide glyph rules as
// Set. Applying Diff(a, c) to a yields c.
func (b *Buffer) Apply(patches []Patch) {
	for _, p := range patches {
		if b.area.Contains(p.Position) {
			c := p.Cell
			c.Skip = false
			b.put(p.X, p.Y, c)
		}
	}
}

// FormatPatches renders patches one per line for logs and golden files.
func FormatPatches(patches []Patch) string {
	var sb strings.Builder
	for _, p := range patches {
		fmt.Fprintf(&sb, "%d,%d %s\n", p.X, p.Y, p.Cell)
	}
	return sb.String()
}
