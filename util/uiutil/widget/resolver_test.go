package widget

import (
	"image"
	"math"
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// Content with an intrinsic size, counting measurements.
type stubContent struct {
	EmbedContent
	intrinsic image.Point

	nMeasureW, nMeasureH int
	availW, availH       int // last available extents given to measure
	drawn                []image.Rectangle
}

func newStub(w, h SizeSpec) *stubContent {
	s := &stubContent{}
	s.Sz = Size{w, h}
	return s
}

func newAutoStub(iw, ih int) *stubContent {
	s := newStub(Auto(), Auto())
	s.intrinsic = image.Point{iw, ih}
	return s
}

func (s *stubContent) MeasureWidth(avail int, correction float64) int {
	s.nMeasureW++
	s.availW = avail
	return measureFixed(s.Sz.Width, s.intrinsic.X)
}
func (s *stubContent) MeasureHeight(avail int, correction float64) int {
	s.nMeasureH++
	s.availH = avail
	return measureFixed(s.Sz.Height, s.intrinsic.Y)
}
func (s *stubContent) Draw(r image.Rectangle) {
	s.drawn = append(s.drawn, r)
}

//----------

// Width-only stubs, for column tracks.
func wAbs(v float64) Content { return newStub(Abs(v), Abs(0)) }
func wRel(v float64) Content { return newStub(Rel(v), Abs(0)) }
func hAbs(v float64) Content { return newStub(Abs(0), Abs(v)) }
func hRel(v float64) Content { return newStub(Abs(0), Rel(v)) }

func testSizes(t *testing.T, sizes, exp []int) {
	t.Helper()
	if len(sizes) != len(exp) {
		t.Fatalf("len: %v, expected %v", spew.Sdump(sizes), exp)
	}
	for i := range exp {
		if sizes[i] != exp[i] {
			t.Fatalf("sizes %v, expected %v", sizes, exp)
		}
	}
}

//----------

func TestResolveAbsAndRel(t *testing.T) {
	tracks := [][]Content{{wAbs(50)}, {wRel(1)}}
	sizes := ResolveTracks(tracks, XAxis, 200, 10, 1)
	testSizes(t, sizes, []int{50, 140})
}

func TestResolveAutoAndRelRows(t *testing.T) {
	auto := newAutoStub(0, 20)
	tracks := [][]Content{{auto}, {hRel(1)}, {hRel(2)}}
	sizes := ResolveTracks(tracks, YAxis, 100, 0, 1)
	testSizes(t, sizes, []int{20, 26, 54})
	if sizes[1]+sizes[2] != 80 {
		t.Fatal(sizes)
	}
	// auto content is measured with the full extent
	if auto.availH != 100 {
		t.Fatal(auto.availH)
	}
}

func TestResolveNilContent(t *testing.T) {
	tracks := [][]Content{{nil, wAbs(30), wAbs(30)}, {nil, nil}}
	sizes := ResolveTracks(tracks, XAxis, 200, 0, 1)
	testSizes(t, sizes, []int{30, 0})
}

func TestResolveFixed(t *testing.T) {
	tracks := [][]Content{{wAbs(30)}, {wAbs(40)}, {wAbs(50)}}
	sizes := ResolveTracks(tracks, XAxis, 1000, 5, 1)
	testSizes(t, sizes, []int{30, 40, 50})

	// not enough space: clamped in declaration order
	sizes = ResolveTracks(tracks, XAxis, 60, 0, 1)
	testSizes(t, sizes, []int{30, 30, 0})
}

func TestResolveProportional(t *testing.T) {
	tracks := [][]Content{{wRel(1)}, {wRel(2)}, {wRel(3)}, {wRel(4)}}
	sizes := ResolveTracks(tracks, XAxis, 115, 5, 1)
	testSizes(t, sizes, []int{10, 20, 30, 40})

	// rounding remainder goes to the last track
	sizes = ResolveTracks(tracks[:3], XAxis, 100, 0, 1)
	testSizes(t, sizes, []int{16, 33, 51})
	if s := sizes[0] + sizes[1] + sizes[2]; s != 100 {
		t.Fatal(s)
	}
}

func TestResolveMaxWeightInTrack(t *testing.T) {
	tracks := [][]Content{{wRel(1), wRel(3)}, {wRel(1), nil}}
	sizes := ResolveTracks(tracks, XAxis, 100, 0, 1)
	testSizes(t, sizes, []int{75, 25})
}

func TestResolveMixedTrack(t *testing.T) {
	// any absolute cell makes the track absolute
	tracks := [][]Content{{wAbs(30), wRel(5)}, {wRel(1), wRel(1)}}
	sizes := ResolveTracks(tracks, XAxis, 100, 0, 1)
	testSizes(t, sizes, []int{30, 70})

	// pure absolute tracks are resolved before mixed tracks
	tracks = [][]Content{{wAbs(60), wRel(1)}, {wAbs(60), nil}}
	sizes = ResolveTracks(tracks, XAxis, 100, 0, 1)
	testSizes(t, sizes, []int{40, 60})
}

func TestResolveDegenerate(t *testing.T) {
	if sizes := ResolveTracks(nil, XAxis, 100, 10, 1); len(sizes) != 0 {
		t.Fatal(sizes)
	}

	// empty track doesn't use the budget
	sizes := ResolveTracks([][]Content{{}, {wRel(1)}}, XAxis, 100, 0, 1)
	testSizes(t, sizes, []int{0, 100})

	// negative extent
	sizes = ResolveTracks([][]Content{{wAbs(50)}, {wRel(1)}}, XAxis, -10, 0, 1)
	testSizes(t, sizes, []int{0, 0})

	// spacing bigger than the extent
	sizes = ResolveTracks([][]Content{{wAbs(50)}, {wRel(1)}}, XAxis, 10, 20, 1)
	testSizes(t, sizes, []int{0, 0})

	// relative tracks with zero weight
	sizes = ResolveTracks([][]Content{{wRel(0)}, {wRel(0)}}, XAxis, 100, 0, 1)
	testSizes(t, sizes, []int{0, 0})
}

func TestResolveCorrection(t *testing.T) {
	sizes := ResolveTracks([][]Content{{wRel(1)}}, XAxis, 100, 0, 0.5)
	testSizes(t, sizes, []int{50})
}

func TestResolveNonFinite(t *testing.T) {
	inf, nan := math.Inf(1), math.NaN()

	// non finite weights have zero weight
	sizes := ResolveTracks([][]Content{{wRel(inf)}, {wRel(1)}}, XAxis, 100, 0, 1)
	testSizes(t, sizes, []int{0, 100})
	sizes = ResolveTracks([][]Content{{wRel(nan)}, {wRel(1)}}, XAxis, 100, 0, 1)
	testSizes(t, sizes, []int{0, 100})

	// huge fixed size is limited to the available extent
	sizes = ResolveTracks([][]Content{{wAbs(1e20)}, {wRel(1)}}, XAxis, 100, 0, 1)
	testSizes(t, sizes, []int{100, 0})
	sizes = ResolveTracks([][]Content{{wAbs(inf)}, {wRel(1)}}, XAxis, 100, 0, 1)
	testSizes(t, sizes, []int{100, 0})
	sizes = ResolveTracks([][]Content{{wAbs(nan)}, {wRel(1)}}, XAxis, 100, 0, 1)
	testSizes(t, sizes, []int{0, 100})

	// huge weights whose sum overflows
	sizes = ResolveTracks([][]Content{{wRel(1e308)}, {wRel(1e308)}}, XAxis, 100, 0, 1)
	testSizes(t, sizes, []int{50, 50})
	w1, w2 := math.Ldexp(1, 1022), math.Ldexp(1, 1023)
	sizes = ResolveTracks([][]Content{{wRel(w1)}, {wRel(w2)}}, XAxis, 100, 0, 1)
	testSizes(t, sizes, []int{33, 67})
}

func TestResolveSumWithinExtent(t *testing.T) {
	tracks := [][]Content{
		{wAbs(25), wRel(1)},
		{wRel(2)},
		{newAutoStub(33, 0)},
		{wRel(1), nil},
		{nil},
	}
	for _, extent := range []int{0, 7, 50, 99, 150, 1000} {
		sizes := ResolveTracks(tracks, XAxis, extent, 3, 1)
		if e := tracksExtent(sizes, 3); extent >= 4*3+25+33 && e > extent {
			t.Fatalf("extent %v: %v", extent, spew.Sdump(sizes))
		}
		for _, s := range sizes {
			if s < 0 {
				t.Fatalf("extent %v: %v", extent, sizes)
			}
		}
	}
}
