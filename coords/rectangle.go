package coords

// IsRectangle returns true if `points` are the 4 corners of an
// axis-aligned rectangle, given in traversal order.
//
// The corners must use exactly two x values and two y values, each shared
// by two points, and each point must share its x or its y with the previous
// one. The closing edge, from the last point back to the first, is not checked.
func IsRectangle(points []Point) bool {
	if len(points) != 4 {
		return false
	}
	xs := make(map[float64]int, 2)
	ys := make(map[float64]int, 2)
	for i, p := range points {
		xs[p.X]++
		ys[p.Y]++
		if i > 0 {
			prev := points[i-1]
			if p.X != prev.X && p.Y != prev.Y {
				return false
			}
		}
	}
	return pairedValues(xs) && pairedValues(ys)
}

// pairedValues checks for exactly two values, each seen twice.
func pairedValues(freqs map[float64]int) bool {
	if len(freqs) != 2 {
		return false
	}
	for _, n := range freqs {
		if n != 2 {
			return false
		}
	}
	return true
}
