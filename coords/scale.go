package coords

import "math"

// ToRelative maps absolute coordinates to the relative space:
// every coordinate is multiplied by NormalizedWidth and divided by `reference`
// (typically the image width). The result is not rounded.
// An empty slice is returned if `reference` is not strictly positive.
func ToRelative(coords []Point, reference float64) []Point {
	return scale(coords, reference, func(v float64) float64 {
		return v * NormalizedWidth / reference
	})
}

// ToAbsolute is the inverse of ToRelative: every coordinate is multiplied
// by `reference` and divided by NormalizedWidth, then rounded to the nearest
// integer, halfway values away from zero (see math.Round).
// An empty slice is returned if `reference` is not strictly positive.
func ToAbsolute(coords []Point, reference float64) []Point {
	return scale(coords, reference, func(v float64) float64 {
		return math.Round(v * reference / NormalizedWidth)
	})
}

func scale(coords []Point, reference float64, f func(float64) float64) []Point {
	if !(reference > 0) { // also catches NaN
		return []Point{}
	}
	out := make([]Point, len(coords))
	for i, p := range coords {
		out[i] = Point{X: f(p.X), Y: f(p.Y)}
	}
	return out
}
