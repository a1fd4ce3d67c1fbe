// Package cellgrid provides constraint layout, a styled cell buffer and the
// diff engine that keeps a terminal in sync with it.
package cellgrid

import (
	"fmt"
	"iter"
	"math"
)

// MaxArea is the largest cell count a Rect may cover.
const MaxArea = math.MaxUint16

// Position is a cell coordinate, origin top-left.
type Position struct {
	X uint16
	Y uint16
}

// Size is a width/height pair in cells.
type Size struct {
	Width  uint16
	Height uint16
}

// Margin is the amount trimmed from each side by Rect.Inner.
type Margin struct {
	Horizontal uint16
	Vertical   uint16
}

// Offset is a signed displacement used by Rect.Offset.
type Offset struct {
	X int32
	Y int32
}

// Rect is a rectangular cell region.
type Rect struct {
	X      uint16
	Y      uint16
	Width  uint16
	Height uint16
}

// NewRect returns a Rect whose area does not exceed MaxArea. Oversized
// dimensions are scaled down keeping the aspect ratio.
func NewRect(x, y, width, height uint16) Rect {
	w, h := clampArea(width, height)
	return Rect{X: x, Y: y, Width: w, Height: h}
}

func clampArea(width, height uint16) (uint16, uint16) {
	if uint32(width)*uint32(height) <= MaxArea {
		return width, height
	}
	aspect := float64(width) / float64(height)
	maxH := math.Sqrt(float64(MaxArea) / aspect)
	maxW := maxH * aspect
	w, h := uint16(maxW), uint16(maxH)
	// float truncation can still leave us one cell over
	for uint32(w)*uint32(h) > MaxArea {
		if w >= h {
			w--
		} else {
			h--
		}
	}
	return w, h
}

// RectFrom builds a Rect from a top-left position and a size.
func RectFrom(pos Position, size Size) Rect {
	return NewRect(pos.X, pos.Y, size.Width, size.Height)
}

// Area returns the number of cells covered.
func (r Rect) Area() uint32 {
	return uint32(r.Width) * uint32(r.Height)
}

// IsEmpty reports whether the rect covers no cells.
func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Left is the inclusive left edge.
func (r Rect) Left() uint16 { return r.X }

// Right is the exclusive right edge, saturating at math.MaxUint16.
func (r Rect) Right() uint16 { return satAdd(r.X, r.Width) }

// Top is the inclusive top edge.
func (r Rect) Top() uint16 { return r.Y }

// Bottom is the exclusive bottom edge, saturating at math.MaxUint16.
func (r Rect) Bottom() uint16 { return satAdd(r.Y, r.Height) }

// AsPosition returns the top-left corner.
func (r Rect) AsPosition() Position { return Position{X: r.X, Y: r.Y} }

// AsSize returns the width and height.
func (r Rect) AsSize() Size { return Size{Width: r.Width, Height: r.Height} }

// Contains reports whether pos lies inside the rect.
func (r Rect) Contains(pos Position) bool {
	return pos.X >= r.Left() && pos.X < r.Right() && pos.Y >= r.Top() && pos.Y < r.Bottom()
}

// Inner shrinks the rect by m on every side. If the margin does not fit the
// zero Rect is returned.
func (r Rect) Inner(m Margin) Rect {
	doubleH := uint32(m.Horizontal) * 2
	doubleV := uint32(m.Vertical) * 2
	if uint32(r.Width) < doubleH || uint32(r.Height) < doubleV {
		return Rect{}
	}
	return Rect{
		X:      satAdd(r.X, m.Horizontal),
		Y:      satAdd(r.Y, m.Vertical),
		Width:  r.Width - uint16(doubleH),
		Height: r.Height - uint16(doubleV),
	}
}

// Offset moves the rect, keeping its size and clamping the position so the
// rect stays within the coordinate space.
func (r Rect) Offset(o Offset) Rect {
	x := clampInt(int64(r.X)+int64(o.X), 0, int64(math.MaxUint16-r.Width))
	y := clampInt(int64(r.Y)+int64(o.Y), 0, int64(math.MaxUint16-r.Height))
	return Rect{X: uint16(x), Y: uint16(y), Width: r.Width, Height: r.Height}
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	x1 := min(r.X, other.X)
	y1 := min(r.Y, other.Y)
	x2 := max(r.Right(), other.Right())
	y2 := max(r.Bottom(), other.Bottom())
	return Rect{X: x1, Y: y1, Width: satSub(x2, x1), Height: satSub(y2, y1)}
}

// Intersection returns the overlap of r and other. Disjoint rects yield a
// zero-sized rect.
func (r Rect) Intersection(other Rect) Rect {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.Right(), other.Right())
	y2 := min(r.Bottom(), other.Bottom())
	return Rect{X: x1, Y: y1, Width: satSub(x2, x1), Height: satSub(y2, y1)}
}

// Intersects reports whether the two rects overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X && r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Clamp moves and shrinks r so that it fits inside other.
func (r Rect) Clamp(other Rect) Rect {
	w := min(r.Width, other.Width)
	h := min(r.Height, other.Height)
	x := clampU16(r.X, other.X, satSub(other.Right(), w))
	y := clampU16(r.Y, other.Y, satSub(other.Bottom(), h))
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Rows yields each one-cell-high row of the rect, top to bottom.
func (r Rect) Rows() iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		for y := r.Top(); y < r.Bottom(); y++ {
			if !yield(Rect{X: r.X, Y: y, Width: r.Width, Height: 1}) {
				return
			}
		}
	}
}

// Columns yields each one-cell-wide column of the rect, left to right.
func (r Rect) Columns() iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		for x := r.Left(); x < r.Right(); x++ {
			if !yield(Rect{X: x, Y: r.Y, Width: 1, Height: r.Height}) {
				return
			}
		}
	}
}

// Positions yields every cell position in row-major order.
func (r Rect) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for y := r.Top(); y < r.Bottom(); y++ {
			for x := r.Left(); x < r.Right(); x++ {
				if !yield(Position{X: x, Y: y}) {
					return
				}
			}
		}
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", r.Width, r.Height, r.X, r.Y)
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

func satAdd(a, b uint16) uint16 {
	if s := uint32(a) + uint32(b); s <= math.MaxUint16 {
		return uint16(s)
	}
	return math.MaxUint16
}

func satSub(a, b uint16) uint16 {
	if a < b {
		return 0
	}
	return a - b
}

func clampU16(v, lo, hi uint16) uint16 {
	// hi < lo happens when other is degenerate; lo wins
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func clampInt(v, lo, hi int64) int64 {
	return max(lo, min(v, hi))
}
