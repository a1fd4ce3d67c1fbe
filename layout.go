package cellgrid

import (
	"fmt"
	"math"
	"strings"
)

// Direction is the main axis a Layout splits along.
type Direction uint8

const (
	Vertical Direction = iota
	Horizontal
)

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// UnmarshalText accepts "horizontal"/"row" and "vertical"/"column".
func (d *Direction) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "horizontal", "row", "h":
		*d = Horizontal
	case "vertical", "column", "v", "":
		*d = Vertical
	default:
		return fmt.Errorf("unknown direction %q", text)
	}
	return nil
}

// Flex decides where leftover space goes once constraints are resolved.
type Flex uint8

const (
	FlexStart Flex = iota
	FlexEnd
	FlexCenter
	FlexSpaceBetween
	FlexSpaceAround
	// FlexLegacy grows every segment instead of inserting gaps.
	FlexLegacy
)

var flexNames = [...]string{
	FlexStart:        "start",
	FlexEnd:          "end",
	FlexCenter:       "center",
	FlexSpaceBetween: "space-between",
	FlexSpaceAround:  "space-around",
	FlexLegacy:       "legacy",
}

func (f Flex) String() string {
	if int(f) < len(flexNames) {
		return flexNames[f]
	}
	return fmt.Sprintf("Flex(%d)", uint8(f))
}

func (f *Flex) UnmarshalText(text []byte) error {
	name := strings.ToLower(string(text))
	if name == "" {
		*f = FlexStart
		return nil
	}
	for i, n := range flexNames {
		if n == name {
			*f = Flex(i)
			return nil
		}
	}
	if name == "stretch" {
		*f = FlexLegacy
		return nil
	}
	return fmt.Errorf("unknown flex mode %q", text)
}

// Layout splits an area into segments along one axis. The zero value is a
// vertical, Start-aligned layout with no constraints.
type Layout struct {
	Direction   Direction
	Constraints []Constraint
	Flex        Flex
	Spacing     uint16
	Margin      Margin
}

// VerticalLayout and HorizontalLayout are shorthands for the common case.
func VerticalLayout(cs ...Constraint) Layout {
	return Layout{Direction: Vertical, Constraints: cs}
}

func HorizontalLayout(cs ...Constraint) Layout {
	return Layout{Direction: Horizontal, Constraints: cs}
}

// Split shrinks area by the layout margin and solves the constraints in it.
func (l Layout) Split(area Rect) []Rect {
	return Solve(area.Inner(l.Margin), l.Direction, l.Constraints, l.Flex, l.Spacing)
}

// SplitN is Split for callers that destructure a fixed number of segments.
// It panics if n does not match the number of constraints.
func (l Layout) SplitN(area Rect, n int) []Rect {
	if n != len(l.Constraints) {
		panic(fmt.Sprintf("cellgrid: invalid number of rects: want %d, layout has %d constraints", n, len(l.Constraints)))
	}
	return l.Split(area)
}

// Solve partitions area along dir, one Rect per constraint in declaration
// order. Every Rect keeps the cross-axis extent of area. It panics on a
// constraint that fails Validate.
func Solve(area Rect, dir Direction, constraints []Constraint, flex Flex, spacing uint16) []Rect {
	n := len(constraints)
	if n == 0 {
		return []Rect{}
	}
	for i, c := range constraints {
		if err := c.Validate(); err != nil {
			panic(fmt.Sprintf("cellgrid: constraint %d: %v", i, err))
		}
	}

	start, length := int(area.X), int(area.Width)
	if dir == Vertical {
		start, length = int(area.Y), int(area.Height)
	}

	gaps := int(spacing) * (n - 1)
	available := max(0, length-gaps)

	sizes := resolve(constraints, available)
	slack := available - sum(sizes)
	if flex == FlexLegacy {
		stretch(sizes, slack)
		slack = 0
	}
	lead, between := distributeSlack(flex, slack, n)

	end := min(start+length, math.MaxUint16)
	pos := start + lead
	rects := make([]Rect, n)
	for i, size := range sizes {
		p := min(pos, end)
		s := min(size, end-p)
		if dir == Horizontal {
			rects[i] = Rect{X: uint16(p), Y: area.Y, Width: uint16(s), Height: area.Height}
		} else {
			rects[i] = Rect{X: area.X, Y: uint16(p), Width: area.Width, Height: uint16(s)}
		}
		pos += size + int(spacing)
		if i < len(between) {
			pos += between[i]
		}
	}
	return rects
}

// resolve computes segment lengths summing to at most available.
func resolve(constraints []Constraint, available int) []int {
	sizes := make([]int, len(constraints))
	for i, c := range constraints {
		switch c.Kind {
		case KindLength, KindMin:
			sizes[i] = int(c.Value)
		case KindPercentage:
			sizes[i] = (available*int(c.Value) + 50) / 100
		case KindRatio:
			sizes[i] = ratioOf(available, c.Num, c.Den)
		}
	}

	if total := sum(sizes); total > available {
		shrink(constraints, sizes, total-available)
		return sizes
	}
	grow(constraints, sizes, available-sum(sizes))
	return sizes
}

// ratioOf returns available*num/den rounded half-up.
func ratioOf(available int, num, den uint32) int {
	if den == 0 {
		return 0
	}
	return int((2*uint64(available)*uint64(num) + uint64(den)) / (2 * uint64(den)))
}

// shrinkOrder lists constraint kinds from first to last shrunk.
var shrinkOrder = [...][]ConstraintKind{
	{KindFill},
	{KindMax},
	{KindMin},
	{KindRatio, KindPercentage},
	{KindLength},
}

func shrink(constraints []Constraint, sizes []int, deficit int) {
	for _, class := range shrinkOrder {
		for i := len(sizes) - 1; i >= 0 && deficit > 0; i-- {
			if !kindIn(constraints[i].Kind, class) {
				continue
			}
			take := min(sizes[i], deficit)
			sizes[i] -= take
			deficit -= take
		}
		if deficit == 0 {
			return
		}
	}
}

func kindIn(k ConstraintKind, class []ConstraintKind) bool {
	for _, c := range class {
		if c == k {
			return true
		}
	}
	return false
}

// grow hands extra out to Fill, Min and Max segments by weight. Max segments
// stop at their bound and what they would have taken is shared again among
// the rest.
func grow(constraints []Constraint, sizes []int, extra int) {
	weights := make([]int, len(constraints))
	caps := make([]int, len(constraints))
	for i, c := range constraints {
		caps[i] = -1
		switch c.Kind {
		case KindFill:
			weights[i] = int(c.Value)
		case KindMin:
			weights[i] = 1
		case KindMax:
			weights[i] = 1
			caps[i] = int(c.Value)
		}
	}

	for extra > 0 {
		active := make([]int, len(weights))
		for i, w := range weights {
			if w > 0 && (caps[i] < 0 || sizes[i] < caps[i]) {
				active[i] = w
			}
		}
		shares := weightedShares(extra, active)
		if shares == nil {
			return
		}
		leftover := 0
		for i, share := range shares {
			if caps[i] >= 0 && sizes[i]+share > caps[i] {
				leftover += sizes[i] + share - caps[i]
				share = caps[i] - sizes[i]
			}
			sizes[i] += share
		}
		extra = leftover
	}
}

// stretch grows every segment in proportion to its size, or equally when all
// segments are empty.
func stretch(sizes []int, slack int) {
	if slack <= 0 {
		return
	}
	weights := make([]int, len(sizes))
	copy(weights, sizes)
	if sum(weights) == 0 {
		for i := range weights {
			weights[i] = 1
		}
	}
	for i, share := range weightedShares(slack, weights) {
		sizes[i] += share
	}
}

// distributeSlack returns the leading gap and the extra gap after each
// segment but the last.
func distributeSlack(flex Flex, slack, n int) (int, []int) {
	if slack <= 0 {
		return 0, nil
	}
	switch flex {
	case FlexEnd:
		return slack, nil
	case FlexCenter:
		return slack / 2, nil
	case FlexSpaceBetween:
		if n < 2 {
			return 0, nil
		}
		weights := make([]int, n-1)
		for i := range weights {
			weights[i] = 1
		}
		return 0, weightedShares(slack, weights)
	case FlexSpaceAround:
		// edges weigh 1, inner gaps 2
		weights := make([]int, n+1)
		for i := range weights {
			weights[i] = 2
		}
		weights[0], weights[n] = 1, 1
		shares := weightedShares(slack, weights)
		return shares[0], shares[1:n]
	}
	return 0, nil
}

// weightedShares splits total by weight: floor shares first, then one extra
// unit to each weighted entry in order until the remainder is gone. It
// returns nil when no entry has weight.
func weightedShares(total int, weights []int) []int {
	totalWeight := sum(weights)
	if totalWeight == 0 {
		return nil
	}
	shares := make([]int, len(weights))
	remaining := total
	for i, w := range weights {
		if w > 0 {
			shares[i] = total * w / totalWeight
			remaining -= shares[i]
		}
	}
	for remaining > 0 {
		for i, w := range weights {
			if remaining == 0 {
				break
			}
			if w > 0 {
				shares[i]++
				remaining--
			}
		}
	}
	return shares
}

func sum(vals []int) int {
	total := 0
	for _, v := range vals {
		total += v
	}
	return total
}
