package widget

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/jmigpin/tableui/util/imageutil"
	"github.com/jmigpin/tableui/util/mathutil"
)

// Padding around a child. Keeps the child's size kind: fixed sizes grow by the
// padding, auto and relative sizes stay as they are.
type Pad struct {
	Top, Right, Bottom, Left int
	Color                    color.Color // padding area, not painted if nil

	child Content
	ctx   ImageContext
}

func NewPad(ctx ImageContext, child Content) *Pad {
	return &Pad{ctx: ctx, child: child}
}

func (p *Pad) Set(t, r, b, l int) {
	p.Top = t
	p.Right = r
	p.Bottom = b
	p.Left = l
}
func (p *Pad) SetAll(v int) {
	p.Set(v, v, v, v)
}

func (p *Pad) Child() Content {
	return p.child
}

//----------

func (p *Pad) padding(axis Axis) int {
	if axis == YAxis {
		return p.Top + p.Bottom
	}
	return p.Left + p.Right
}

func (p *Pad) Size() Size {
	return Size{p.sizeSpec(XAxis), p.sizeSpec(YAxis)}
}

func (p *Pad) sizeSpec(axis Axis) SizeSpec {
	s := axis.spec(p.child)
	if v, ok := s.fixed(); ok {
		return Abs(float64(v + p.padding(axis)))
	}
	return s
}

func (p *Pad) MeasureWidth(avail int, correction float64) int {
	return p.measure(XAxis, avail, correction)
}

func (p *Pad) MeasureHeight(avail int, correction float64) int {
	return p.measure(YAxis, avail, correction)
}

func (p *Pad) measure(axis Axis, avail int, correction float64) int {
	pad := p.padding(axis)
	inner := mathutil.LimitPositive(avail-pad, avail)
	m := axis.measure(p.child, inner, correction) + pad
	return mathutil.LimitPositive(m, correctedExtent(avail, correction))
}

//----------

func (p *Pad) Draw(b image.Rectangle) {
	if p.ctx != nil && p.Color != nil {
		p.paint(p.ctx.Image(), b)
	}

	u := b
	u.Min = u.Min.Add(image.Point{p.Left, p.Top})
	u.Max = u.Max.Sub(image.Point{p.Right, p.Bottom})
	u = u.Intersect(b)
	if p.child != nil && !u.Empty() {
		p.child.Draw(u)
	}
}

func (p *Pad) paint(img draw.Image, b image.Rectangle) {
	// top
	u := b
	u.Max.Y = u.Min.Y + p.Top
	imageutil.FillRectangle(img, u.Intersect(b), p.Color)
	// bottom
	u = b
	u.Min.Y = u.Max.Y - p.Bottom
	imageutil.FillRectangle(img, u.Intersect(b), p.Color)
	// right
	u = b
	u.Min.X = u.Max.X - p.Right
	imageutil.FillRectangle(img, u.Intersect(b), p.Color)
	// left
	u = b
	u.Max.X = u.Min.X + p.Left
	imageutil.FillRectangle(img, u.Intersect(b), p.Color)
}
