package widget

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"testing"

	"golang.org/x/image/colornames"
)

type testImageContext struct {
	img *image.RGBA
}

func newTestImageContext(w, h int) *testImageContext {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(colornames.White), image.Point{}, draw.Src)
	return &testImageContext{img: img}
}

func (ctx *testImageContext) Image() draw.Image {
	return ctx.img
}

//----------

func TestSizeSpecParse(t *testing.T) {
	type in struct {
		s   string
		exp SizeSpec
	}
	for _, u := range []in{
		{"auto", Auto()},
		{"", Auto()},
		{"50", Abs(50)},
		{"50px", Abs(50)},
		{"*", Rel(1)},
		{"2.5*", Rel(2.5)},
	} {
		s, err := ParseSizeSpec(u.s)
		if err != nil {
			t.Fatal(err)
		}
		if s != u.exp {
			t.Fatalf("%q: %v, expected %v", u.s, s, u.exp)
		}
		// string form parses back to the same spec
		s2, err := ParseSizeSpec(s.String())
		if err != nil || s2 != s {
			t.Fatal(s, s2, err)
		}
	}
	for _, s := range []string{"abc", "-1*", "x*", "inf*", "nan*", "+Inf*", "inf", "nan", "-inf"} {
		if _, err := ParseSizeSpec(s); err == nil {
			t.Fatalf("%q: expecting error", s)
		}
	}
}

func TestSizeSpecKinds(t *testing.T) {
	if !Auto().IsAuto() || !Auto().IsAbsolute() || Abs(0).IsAuto() {
		t.Fatal()
	}
	if Rel(-2).Value() != 0 || !Rel(1).IsRelative() {
		t.Fatal()
	}
	if Rel(math.Inf(1)).Value() != 0 || Rel(math.NaN()).Value() != 0 {
		t.Fatal()
	}
	if v, ok := Abs(1e20).fixed(); !ok || v != math.MaxInt32 {
		t.Fatal(v, ok)
	}
	if v, ok := Abs(math.NaN()).fixed(); !ok || v != 0 {
		t.Fatal(v, ok)
	}
	if s := (Size{Abs(1), Rel(2)}); s.Axis(XAxis) != Abs(1) || s.Axis(YAxis) != Rel(2) {
		t.Fatal(s)
	}
}

func TestAlignParse(t *testing.T) {
	h, err := ParseHAlign("Center")
	if err != nil || h != AlignHCenter {
		t.Fatal(h, err)
	}
	v, err := ParseVAlign("bottom")
	if err != nil || v != AlignBottom {
		t.Fatal(v, err)
	}
	if _, err := ParseHAlign("top"); err == nil {
		t.Fatal("expecting error")
	}
	if o := AlignHCenter.offset(11, 4); o != 3 {
		t.Fatal(o)
	}
}

//----------

func TestRectangleDraw(t *testing.T) {
	ctx := newTestImageContext(20, 20)
	r := NewRectangle(ctx)
	r.Color = colornames.Red
	r.Draw(image.Rect(5, 5, 10, 10))

	red := color.RGBA{255, 0, 0, 255}
	if c := ctx.img.RGBAAt(5, 5); c != red {
		t.Fatal(c)
	}
	if c := ctx.img.RGBAAt(10, 10); c == red {
		t.Fatal(c)
	}

	// no context
	NewRectangle(nil).Draw(image.Rect(0, 0, 5, 5))
}

func TestPadSize(t *testing.T) {
	p := NewPad(nil, newStub(Abs(20), Rel(1)))
	p.Set(1, 2, 3, 4)
	sz := p.Size()
	if sz.Width != Abs(26) || sz.Height != Rel(1) {
		t.Fatal(sz)
	}
	if m := p.MeasureWidth(100, 1); m != 26 {
		t.Fatal(m)
	}
	// limited to the available extent
	if m := p.MeasureWidth(10, 1); m != 10 {
		t.Fatal(m)
	}

	a := NewPad(nil, newAutoStub(10, 10))
	a.SetAll(5)
	if !a.Size().Width.IsAuto() {
		t.Fatal(a.Size())
	}
	if m := a.MeasureHeight(100, 1); m != 20 {
		t.Fatal(m)
	}

	// nil child is only padding
	n := NewPad(nil, nil)
	n.SetAll(3)
	if sz := n.Size(); sz.Width != Abs(6) {
		t.Fatal(sz)
	}
}

func TestPadDraw(t *testing.T) {
	ctx := newTestImageContext(40, 40)
	s := newStub(Rel(1), Rel(1))
	p := NewPad(ctx, s)
	p.SetAll(4)
	p.Color = colornames.Blue
	p.Draw(image.Rect(0, 0, 20, 20))

	if len(s.drawn) != 1 || s.drawn[0] != image.Rect(4, 4, 16, 16) {
		t.Fatal(s.drawn)
	}
	blue := color.RGBA{0, 0, 255, 255}
	if c := ctx.img.RGBAAt(1, 10); c != blue {
		t.Fatal(c)
	}
	if c := ctx.img.RGBAAt(10, 10); c == blue {
		t.Fatal(c)
	}

	// too much padding: child not drawn
	p.SetAll(15)
	p.Draw(image.Rect(0, 0, 20, 20))
	if len(s.drawn) != 1 {
		t.Fatal(s.drawn)
	}
}

func TestLabelMeasure(t *testing.T) {
	l := NewLabel(nil, "hello")
	w, h := l.MeasureWidth(1000, 1), l.MeasureHeight(1000, 1)
	if w <= 0 || h <= 0 {
		t.Fatal(w, h)
	}

	l.Text = "hello\nhello"
	if h2 := l.MeasureHeight(1000, 1); h2 != 2*h {
		t.Fatal(h2, h)
	}

	l.Sz.Width = Abs(7)
	if w := l.MeasureWidth(1000, 1); w != 7 {
		t.Fatal(w)
	}
}

func TestLabelInTable(t *testing.T) {
	ctx := newTestImageContext(200, 100)
	l := NewLabel(ctx, "W")
	t1 := NewTable(NewContentRow(l, newStub(Rel(1), Rel(1))))
	t1.Draw(ctx.img.Bounds())

	lw, lh := l.MeasureWidth(200, 1), l.MeasureHeight(100, 1)
	testSizes(t, t1.Widths(200), []int{lw, 200 - lw})
	testSizes(t, t1.Heights(100), []int{lh})

	// some pixel in the label bounds was painted
	white := color.RGBA{255, 255, 255, 255}
	painted := false
	for y := 0; y < lh && !painted; y++ {
		for x := 0; x < lw; x++ {
			if ctx.img.RGBAAt(x, y) != white {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Fatal("label not drawn")
	}
}
