package navgrid

// lineIterator walks the cells of a 2D Bresenham line, start and end included.
type lineIterator struct {
	x, z    int
	tx, tz  int
	dx, dz  int
	sx, sz  int
	err     int
	started bool
}

func newLineIterator(x0, z0, x1, z1 int) *lineIterator {
	it := &lineIterator{x: x0, z: z0, tx: x1, tz: z1, sx: 1, sz: 1}
	it.dx = abs(x1 - x0)
	it.dz = -abs(z1 - z0)
	if x0 > x1 {
		it.sx = -1
	}
	if z0 > z1 {
		it.sz = -1
	}
	it.err = it.dx + it.dz
	return it
}

// next advances to the next cell. Returns false past the end.
func (it *lineIterator) next() bool {
	if !it.started {
		it.started = true
		return true
	}
	if it.x == it.tx && it.z == it.tz {
		return false
	}
	e2 := 2 * it.err
	if e2 >= it.dz {
		it.err += it.dz
		it.x += it.sx
	}
	if e2 <= it.dx {
		it.err += it.dx
		it.z += it.sz
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
