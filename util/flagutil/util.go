package flagutil

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

type StringFuncFlag func(string) error

func (v StringFuncFlag) String() string     { return "" }
func (v StringFuncFlag) Set(s string) error { return v(s) }

//----------

type BoolFuncFlag func(string) error

func (v BoolFuncFlag) String() string     { return "" }
func (v BoolFuncFlag) Set(s string) error { return v(s) }
func (v BoolFuncFlag) IsBoolFlag() bool   { return true }

//----------

// Parses "WxH" (ex: "640x480").
func ParsePoint(s string) (image.Point, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return image.Point{}, fmt.Errorf("bad size: %q", s)
	}
	w, err1 := strconv.Atoi(ws)
	h, err2 := strconv.Atoi(hs)
	if err1 != nil || err2 != nil || w < 0 || h < 0 {
		return image.Point{}, fmt.Errorf("bad size: %q", s)
	}
	return image.Point{w, h}, nil
}
