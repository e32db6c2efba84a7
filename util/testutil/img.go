package testutil

import (
	"fmt"
	"image"
	"image/color"
)

func CompareImgs(img1, img2 image.Image) error {
	if img1.Bounds() != img2.Bounds() {
		return fmt.Errorf("bounds: %v %v", img1.Bounds(), img2.Bounds())
	}
	b1 := img1.Bounds()
	nFails := 0
	firstFail := image.Point{}
	for y := b1.Min.Y; y < b1.Max.Y; y++ {
		for x := b1.Min.X; x < b1.Max.X; x++ {
			c1 := color.RGBAModel.Convert(img1.At(x, y))
			c2 := color.RGBAModel.Convert(img2.At(x, y))
			if c1 != c2 {
				nFails++
				if nFails == 1 {
					firstFail = image.Point{x, y}
				}
			}
		}
	}
	if nFails > 0 {
		x, y := firstFail.X, firstFail.Y
		c1 := color.RGBAModel.Convert(img1.At(x, y))
		c2 := color.RGBAModel.Convert(img2.At(x, y))
		return fmt.Errorf("colors: xy=(%v,%v): %v %v (nfails: %v)", x, y, c1, c2, nFails)
	}
	return nil
}

// Color of every pixel in r is c.
func UniformIn(img image.Image, r image.Rectangle, c color.Color) error {
	want := color.RGBAModel.Convert(c)
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if u := color.RGBAModel.Convert(img.At(x, y)); u != want {
				return fmt.Errorf("xy=(%v,%v): %v, expected %v", x, y, u, want)
			}
		}
	}
	return nil
}
