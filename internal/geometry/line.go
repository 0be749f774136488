package geometry

// Line returns the cells of the Bresenham line from a to b, both endpoints included.
// When |dx| == |dy| the y axis drives, which is what the integer-only formulation does;
// for diagonals that makes no difference to the cells visited.
// Line is not symmetric: Line(b, a) can visit different cells than Line(a, b) on slopes
// other than 0, 45 and 90 degrees.
func Line(a, b Point) []Point {
	cells := make([]Point, 0, max(abs(b.X-a.X), abs(b.Y-a.Y))+1)
	VisitLine(a, b, func(p Point) {
		cells = append(cells, p)
	})
	return cells
}

// VisitLine calls fn for every cell of Line(a, b), in order from a to b.
func VisitLine(a, b Point, fn func(Point)) {
	w := b.X - a.X
	h := b.Y - a.Y
	dx1, dy1 := sign(w), sign(h)
	dx2, dy2 := dx1, 0

	longest, shortest := abs(w), abs(h)
	if longest <= shortest {
		longest, shortest = abs(h), abs(w)
		dx2, dy2 = 0, sign(h)
	}

	x, y := a.X, a.Y
	numerator := longest >> 1
	for i := 0; i <= longest; i++ {
		fn(Point{X: x, Y: y})
		numerator += shortest
		if numerator >= longest {
			numerator -= longest
			x += dx1
			y += dy1
		} else {
			x += dx2
			y += dy2
		}
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
