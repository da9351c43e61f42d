package model

// bresenham walks the discrete line from (x0, y0) to (x1, y1), both ends included,
// calling visit for every point until visit returns false.
func bresenham(x0, y0, x1, y1 int, visit func(x, y int) bool) {
	dx, sx := abs(x1-x0), sign(x1-x0)
	dy, sy := -abs(y1-y0), sign(y1-y0)
	err := dx + dy

	for {
		if !visit(x0, y0) {
			return
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// SetLine paints the cells on the line from (x0, y0) to (x1, y1) with alive.
// x is the column and y the row. The start point is clamped onto the board and
// painting stops at the first point that leaves the board; the line is not resumed
// if it would re-enter further along.
func (b *Board) SetLine(x0, y0, x1, y1 int, alive bool) {
	x0 = min(max(x0, 0), b.width-1)
	y0 = min(max(y0, 0), b.height-1)

	bresenham(x0, y0, x1, y1, func(x, y int) bool {
		if !b.Contains(y, x) {
			return false
		}
		b.cells[y*b.width+x] = alive
		return true
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
