package widget

import (
	"fmt"
	"strings"
)

type HAlign uint8

const (
	AlignLeft HAlign = iota
	AlignHCenter
	AlignRight
)

type VAlign uint8

const (
	AlignTop VAlign = iota
	AlignVCenter
	AlignBottom
)

//----------

func (a HAlign) offset(track, content int) int {
	return alignOffset(uint8(a), track, content)
}

func (a VAlign) offset(track, content int) int {
	return alignOffset(uint8(a), track, content)
}

// 0: start, 1: center, 2: end
func alignOffset(a uint8, track, content int) int {
	switch a {
	case 1:
		return (track - content) / 2
	case 2:
		return track - content
	}
	return 0
}

//----------

func (a HAlign) String() string {
	switch a {
	case AlignHCenter:
		return "center"
	case AlignRight:
		return "right"
	}
	return "left"
}

func (a VAlign) String() string {
	switch a {
	case AlignVCenter:
		return "center"
	case AlignBottom:
		return "bottom"
	}
	return "top"
}

func ParseHAlign(s string) (HAlign, error) {
	switch strings.ToLower(s) {
	case "", "left":
		return AlignLeft, nil
	case "center":
		return AlignHCenter, nil
	case "right":
		return AlignRight, nil
	}
	return 0, fmt.Errorf("bad horizontal alignment: %q", s)
}

func ParseVAlign(s string) (VAlign, error) {
	switch strings.ToLower(s) {
	case "", "top":
		return AlignTop, nil
	case "center":
		return AlignVCenter, nil
	case "bottom":
		return AlignBottom, nil
	}
	return 0, fmt.Errorf("bad vertical alignment: %q", s)
}
