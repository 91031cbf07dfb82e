// Implements the coordinate math used by annotations:
// conversion between absolute (pixel) coordinates and the
// normalized relative space, rectangle detection,
// rotation angle of a view transform and IIIF region strings.
//
// All the functions are pure and never fail: malformed input
// gives an empty or degenerate result instead of an error.
package coords

// NormalizedWidth is the width of the relative coordinate space,
// whatever the dimensions of the underlying image.
const NormalizedWidth = 1000

// Point is a 2D point, in absolute or relative units.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Polygon is an ordered list of points.
type Polygon []Point
