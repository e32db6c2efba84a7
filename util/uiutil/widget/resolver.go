package widget

import (
	"math"

	"github.com/jmigpin/tableui/util/mathutil"
)

// Resolves the size of every track (column or row) along one axis.
//
// Each track is the list of cells that share the column (XAxis) or the row
// (YAxis); nil entries are empty cells. The extent is the space given by the
// parent, scaled by the correction factor, minus the spacing between tracks.
//
// Tracks are resolved in three passes:
//  1. tracks where every cell is absolute (fixed or auto) take the biggest
//     demand of their cells, in declaration order, each demand limited to
//     what is still available.
//  2. tracks that mix absolute and relative cells are resolved by their
//     absolute demand (any absolute cell makes the track absolute).
//  3. the remaining (relative only) tracks share what is left, proportionally
//     to the biggest weight in each track. The last weighted track takes the
//     rounding remainder.
func ResolveTracks(tracks [][]Content, axis Axis, extent, spacing int, correction float64) []int {
	n := len(tracks)
	sizes := make([]int, n)
	if n == 0 {
		return sizes
	}

	available := correctedExtent(extent, correction) - (n-1)*spacing

	resolved := make([]bool, n)
	weights := make([]float64, n)
	for i, track := range tracks {
		weights[i] = maxRelativeWeight(track, axis)
	}

	// absolute demand of a cell, limited to what is still available
	demand := func(c Content) int {
		spec := axis.spec(c)
		v, ok := spec.fixed()
		if !ok {
			v = axis.measure(c, extent, correction)
		}
		return mathutil.LimitPositive(v, available)
	}
	resolve := func(i, size int) {
		sizes[i] = size
		resolved[i] = true
		weights[i] = 0
		available -= size
	}

	// pass 1: pure absolute tracks
	for i, track := range tracks {
		if len(track) == 0 {
			resolved[i] = true
			weights[i] = 0
			continue
		}
		if !allAbsolute(track, axis) {
			continue
		}
		max := 0
		for _, c := range track {
			if c == nil {
				continue
			}
			if d := demand(c); d > max {
				max = d
			}
		}
		resolve(i, max)
	}

	// pass 2: mixed tracks, resolved by their absolute cells
	for i, track := range tracks {
		if resolved[i] {
			continue
		}
		max, hasAbs := 0, false
		for _, c := range track {
			if c == nil || !axis.spec(c).IsAbsolute() {
				continue
			}
			hasAbs = true
			if d := demand(c); d > max {
				max = d
			}
		}
		if hasAbs {
			resolve(i, max)
		}
	}

	// pass 3: relative tracks share the remaining space
	remaining := available
	if remaining < 0 {
		remaining = 0
	}
	sum, maxW := 0.0, 0.0
	last := -1
	for i := range tracks {
		if !resolved[i] && weights[i] > 0 {
			sum += weights[i]
			maxW = math.Max(maxW, weights[i])
			last = i
		}
	}
	// huge weights: scale by the biggest one to keep the products finite
	if math.IsInf(sum, 0) || math.IsInf(float64(remaining)*maxW, 0) {
		sum = 0
		for i := range tracks {
			if !resolved[i] && weights[i] > 0 {
				weights[i] /= maxW
				sum += weights[i]
			}
		}
	}
	norm := 1.0
	if sum != 0 {
		norm = 1 / sum
	}
	used := 0
	for i := range tracks {
		if resolved[i] {
			continue
		}
		switch {
		case weights[i] <= 0:
			sizes[i] = 0
		case i == last:
			// correct rounding errors on last track
			sizes[i] = remaining - used
		default:
			sizes[i] = int(float64(remaining) * weights[i] * norm)
			used += sizes[i]
		}
	}

	return sizes
}

//----------

// Nil (empty) cells count as absolute.
func allAbsolute(track []Content, axis Axis) bool {
	for _, c := range track {
		if !axis.spec(c).IsAbsolute() {
			return false
		}
	}
	return true
}

func maxRelativeWeight(track []Content, axis Axis) float64 {
	max := 0.0
	for _, c := range track {
		s := axis.spec(c)
		if s.IsRelative() && s.Value() > max {
			max = s.Value()
		}
	}
	return max
}

// Total size taken by the tracks, including the spacing between them.
func tracksExtent(sizes []int, spacing int) int {
	if len(sizes) == 0 {
		return 0
	}
	return mathutil.Sum(sizes...) + (len(sizes)-1)*spacing
}
