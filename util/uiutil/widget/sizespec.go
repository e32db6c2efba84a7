package widget

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type SizeKind uint8

const (
	Absolute SizeKind = iota
	Relative
)

func (k SizeKind) String() string {
	switch k {
	case Absolute:
		return "absolute"
	case Relative:
		return "relative"
	}
	return fmt.Sprintf("SizeKind(%d)", uint8(k))
}

//----------

// Declared size of a widget on one axis. An absolute value is in pixels,
// with a negative value meaning "auto" (measured from the content). A
// relative value is a weight that shares the space left over by the
// absolute tracks.
type SizeSpec struct {
	kind  SizeKind
	value float64
}

// NaN is taken as zero.
func Abs(v float64) SizeSpec {
	if math.IsNaN(v) {
		v = 0
	}
	return SizeSpec{kind: Absolute, value: v}
}

func Auto() SizeSpec {
	return Abs(-1)
}

// Negative and non-finite weights are taken as zero.
func Rel(w float64) SizeSpec {
	if w < 0 || math.IsInf(w, 0) || math.IsNaN(w) {
		w = 0
	}
	return SizeSpec{kind: Relative, value: w}
}

func (s SizeSpec) Kind() SizeKind   { return s.kind }
func (s SizeSpec) Value() float64   { return s.value }
func (s SizeSpec) IsAbsolute() bool { return s.kind == Absolute }
func (s SizeSpec) IsRelative() bool { return s.kind == Relative }
func (s SizeSpec) IsAuto() bool     { return s.kind == Absolute && s.value < 0 }

// Fixed pixel value, if the size is absolute and not auto. Huge values
// are capped so the conversion does not overflow.
func (s SizeSpec) fixed() (int, bool) {
	if s.kind != Absolute || s.value < 0 {
		return 0, false
	}
	return int(math.Min(s.value, math.MaxInt32)), true
}

func (s SizeSpec) String() string {
	if s.IsAuto() {
		return "auto"
	}
	v := strconv.FormatFloat(s.value, 'f', -1, 64)
	if s.kind == Relative {
		return v + "*"
	}
	return v
}

//----------

// Accepted formats: "auto", "<n>", "<n>px", "<w>*", "*".
func ParseSizeSpec(s string) (SizeSpec, error) {
	u := strings.TrimSpace(strings.ToLower(s))
	switch {
	case u == "auto" || u == "":
		return Auto(), nil
	case u == "*":
		return Rel(1), nil
	case strings.HasSuffix(u, "*"):
		w, err := strconv.ParseFloat(strings.TrimSuffix(u, "*"), 64)
		if err != nil {
			return SizeSpec{}, fmt.Errorf("bad relative size %q: %w", s, err)
		}
		if w < 0 || math.IsInf(w, 0) || math.IsNaN(w) {
			return SizeSpec{}, fmt.Errorf("bad relative size: %q", s)
		}
		return Rel(w), nil
	default:
		v, err := strconv.ParseFloat(strings.TrimSuffix(u, "px"), 64)
		if err != nil {
			return SizeSpec{}, fmt.Errorf("bad absolute size %q: %w", s, err)
		}
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return SizeSpec{}, fmt.Errorf("bad absolute size: %q", s)
		}
		return Abs(v), nil
	}
}

//----------

type Size struct {
	Width, Height SizeSpec
}

var (
	// Fills whatever the parent gives.
	SizeParent = Size{Rel(1), Rel(1)}
	// Measured from the content on both axes.
	SizeContent = Size{Auto(), Auto()}
)

func (s Size) Axis(axis Axis) SizeSpec {
	if axis == YAxis {
		return s.Height
	}
	return s.Width
}

func (s Size) String() string {
	return fmt.Sprintf("%vx%v", s.Width, s.Height)
}
