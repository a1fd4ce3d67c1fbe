package cellgrid

import (
	"fmt"
	"strconv"
	"strings"
)

// ConstraintKind tags the variant held by a Constraint.
type ConstraintKind uint8

const (
	KindLength ConstraintKind = iota
	KindPercentage
	KindRatio
	KindMin
	KindMax
	KindFill
)

var kindNames = [...]string{
	KindLength:     "Length",
	KindPercentage: "Percentage",
	KindRatio:      "Ratio",
	KindMin:        "Min",
	KindMax:        "Max",
	KindFill:       "Fill",
}

func (k ConstraintKind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "ConstraintKind(" + strconv.Itoa(int(k)) + ")"
}

// Constraint is a size requirement for one segment of a layout. Value holds
// the length, percentage, bound or fill weight; Ratio uses Num and Den.
type Constraint struct {
	Kind  ConstraintKind
	Value uint16
	Num   uint32
	Den   uint32
}

// Length requests exactly n cells.
func Length(n uint16) Constraint { return Constraint{Kind: KindLength, Value: n} }

// Percentage requests p percent of the available length. It panics if p
// exceeds 100.
func Percentage(p uint16) Constraint {
	if p > 100 {
		panic(fmt.Sprintf("cellgrid: percentage %d exceeds 100", p))
	}
	return Constraint{Kind: KindPercentage, Value: p}
}

// Ratio requests num/den of the available length.
func Ratio(num, den uint32) Constraint { return Constraint{Kind: KindRatio, Num: num, Den: den} }

// Min requests at least n cells and takes a share of any excess.
func Min(n uint16) Constraint { return Constraint{Kind: KindMin, Value: n} }

// Max requests at most n cells.
func Max(n uint16) Constraint { return Constraint{Kind: KindMax, Value: n} }

// Fill takes a share of the excess proportional to weight.
func Fill(weight uint16) Constraint { return Constraint{Kind: KindFill, Value: weight} }

// Lengths builds one Length constraint per value.
func Lengths(ns ...uint16) []Constraint { return mapConstraints(ns, Length) }

// Percentages builds one Percentage constraint per value.
func Percentages(ps ...uint16) []Constraint { return mapConstraints(ps, Percentage) }

// Mins builds one Min constraint per value.
func Mins(ns ...uint16) []Constraint { return mapConstraints(ns, Min) }

// Maxes builds one Max constraint per value.
func Maxes(ns ...uint16) []Constraint { return mapConstraints(ns, Max) }

// Fills builds one Fill constraint per weight.
func Fills(ws ...uint16) []Constraint { return mapConstraints(ws, Fill) }

func mapConstraints(vals []uint16, fn func(uint16) Constraint) []Constraint {
	out := make([]Constraint, len(vals))
	for i, v := range vals {
		out[i] = fn(v)
	}
	return out
}

// Validate reports an out-of-range percentage.
func (c Constraint) Validate() error {
	if c.Kind == KindPercentage && c.Value > 100 {
		return fmt.Errorf("percentage %d exceeds 100", c.Value)
	}
	if c.Kind > KindFill {
		return fmt.Errorf("unknown constraint kind %d", c.Kind)
	}
	return nil
}

func (c Constraint) String() string {
	switch c.Kind {
	case KindLength:
		return strconv.Itoa(int(c.Value))
	case KindPercentage:
		return strconv.Itoa(int(c.Value)) + "%"
	case KindRatio:
		return fmt.Sprintf("%d/%d", c.Num, c.Den)
	case KindMin:
		return "min:" + strconv.Itoa(int(c.Value))
	case KindMax:
		return "max:" + strconv.Itoa(int(c.Value))
	case KindFill:
		return "fill:" + strconv.Itoa(int(c.Value))
	}
	return c.Kind.String()
}

// ParseConstraint reads the textual form produced by Constraint.String:
// "5" or "len:5", "50%", "1/3", "min:5", "max:5" and "fill:2".
func ParseConstraint(s string) (Constraint, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Constraint{}, fmt.Errorf("empty constraint")
	}

	if pct, ok := strings.CutSuffix(s, "%"); ok {
		n, err := parseU16(pct)
		if err != nil {
			return Constraint{}, fmt.Errorf("percentage %q: %w", s, err)
		}
		c := Constraint{Kind: KindPercentage, Value: n}
		if err := c.Validate(); err != nil {
			return Constraint{}, err
		}
		return c, nil
	}

	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseUint(strings.TrimSpace(num), 10, 32)
		if err != nil {
			return Constraint{}, fmt.Errorf("ratio %q: %w", s, err)
		}
		d, err := strconv.ParseUint(strings.TrimSpace(den), 10, 32)
		if err != nil {
			return Constraint{}, fmt.Errorf("ratio %q: %w", s, err)
		}
		return Ratio(uint32(n), uint32(d)), nil
	}

	kind, val, ok := strings.Cut(s, ":")
	if !ok {
		kind, val = "len", s
	}
	n, err := parseU16(val)
	if err != nil {
		return Constraint{}, fmt.Errorf("constraint %q: %w", s, err)
	}
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "len", "length":
		return Length(n), nil
	case "min":
		return Min(n), nil
	case "max":
		return Max(n), nil
	case "fill":
		return Fill(n), nil
	}
	return Constraint{}, fmt.Errorf("constraint %q: unknown kind %q", s, kind)
}

// ParseConstraints parses each element with ParseConstraint.
func ParseConstraints(ss []string) ([]Constraint, error) {
	out := make([]Constraint, 0, len(ss))
	for _, s := range ss {
		c, err := ParseConstraint(s)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// UnmarshalText lets constraints be decoded directly from config files.
func (c *Constraint) UnmarshalText(text []byte) error {
	parsed, err := ParseConstraint(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Constraint) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func parseU16(s string) (uint16, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, err
	}
	return uint16(n), nil
}
