package mathutil

import (
	"golang.org/x/exp/constraints"
)

func Limit[T constraints.Ordered](v, min, max T) T {
	if v < min {
		return min
	} else if v > max {
		return max
	}
	return v
}

// Limits v to [0, max], with a negative max behaving as zero.
func LimitPositive[T constraints.Integer | constraints.Float](v, max T) T {
	if max < 0 {
		max = 0
	}
	return Limit(v, 0, max)
}

//----------

func Sum[T constraints.Integer | constraints.Float](s ...T) T {
	var t T
	for _, v := range s {
		t += v
	}
	return t
}
