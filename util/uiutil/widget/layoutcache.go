package widget

// Resolved track sizes, per axis. Axes are cached and invalidated
// independently.
type layoutCache struct {
	axes [2]axisCache
}

type axisCache struct {
	valid      bool
	extent     int
	correction float64
	sizes      []int
}

//----------

// Column widths for the available width. The returned slice is shared with
// the cache and must not be modified.
func (t *Table) Widths(avail int) []int {
	return t.sizes(XAxis, avail, 1)
}

// Row heights for the available height. The returned slice is shared with
// the cache and must not be modified.
func (t *Table) Heights(avail int) []int {
	return t.sizes(YAxis, avail, 1)
}

func (t *Table) sizes(axis Axis, extent int, correction float64) []int {
	ac := &t.cache.axes[axis]
	if !ac.valid || ac.extent != extent || ac.correction != correction {
		t.resolve(axis, extent, correction)
	}
	return ac.sizes
}

func (t *Table) resolve(axis Axis, extent int, correction float64) {
	ac := &t.cache.axes[axis]
	spacing := axis.Point(t.Spacing)
	ac.sizes = ResolveTracks(t.tracks(axis), axis, extent, spacing, correction)
	ac.extent = extent
	ac.correction = correction
	ac.valid = true
}

//----------

// Recomputes the axes that were already laid out, using their last extent.
// Should be called when a content's declared size changes; structural
// changes (rows/cells) call it automatically. Propagates to the parent
// table when nested.
func (t *Table) Invalidate() {
	for i := range t.cache.axes {
		ac := &t.cache.axes[i]
		if ac.valid && ac.extent != 0 {
			t.resolve(Axis(i), ac.extent, ac.correction)
		} else {
			ac.valid = false
		}
	}
	if t.parent != nil {
		t.parent.contentChanged()
	}
}

func (t *Table) structureChanged() {
	t.placements = nil
	t.Invalidate()
}
