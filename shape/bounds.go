package shape

import (
	"github.com/benoitkugler/xrxsvg/coords"
	"github.com/golang/geo/r2"
)

func toR2(p coords.Point) r2.Point { return r2.Point{X: p.X, Y: p.Y} }

func fromR2(p r2.Point) coords.Point { return coords.Point{X: p.X, Y: p.Y} }

// Bounds returns the axis-aligned bounding box of the shape.
// Circles and ellipses extend by their radii around the center.
// The result is empty (see r2.Rect.IsEmpty) for nil shapes and
// shapes without points.
func Bounds(s Shape) r2.Rect {
	switch s := s.(type) {
	case nil:
		return r2.EmptyRect()
	case *Circle:
		return r2.RectFromPoints(
			r2.Point{X: s.Center.X - s.Radius, Y: s.Center.Y - s.Radius},
			r2.Point{X: s.Center.X + s.Radius, Y: s.Center.Y + s.Radius},
		)
	case *Ellipse:
		return r2.RectFromPoints(
			r2.Point{X: s.Center.X - s.RadiusX, Y: s.Center.Y - s.RadiusY},
			r2.Point{X: s.Center.X + s.RadiusX, Y: s.Center.Y + s.RadiusY},
		)
	case *Group:
		out := r2.EmptyRect()
		for _, child := range s.Children {
			out = out.Union(Bounds(child))
		}
		return out
	default:
		out := r2.EmptyRect()
		for _, p := range s.Coords() {
			out = out.AddPoint(toR2(p))
		}
		return out
	}
}

// IsRectangular returns true for rectangles, and for polygons
// whose points are the corners of an axis-aligned rectangle
// (see coords.IsRectangle). Such shapes are exported as <rect> elements.
func IsRectangular(s Shape) bool {
	switch s := s.(type) {
	case *Rect:
		return true
	case *Polygon:
		return coords.IsRectangle(s.Points)
	default:
		return false
	}
}

// Outline returns the polygon enclosing the shape:
// its points for rectangles, polygons, polylines and lines,
// and the corners of the bounding box for the other shapes.
// It is nil for nil or empty shapes.
func Outline(s Shape) coords.Polygon {
	switch s.(type) {
	case *Rect, *Polygon, *Polyline, *Line:
		return coords.Polygon(s.Coords())
	}
	b := Bounds(s)
	if b.IsEmpty() {
		return nil
	}
	vs := b.Vertices()
	out := make(coords.Polygon, len(vs))
	for i, v := range vs {
		out[i] = fromR2(v)
	}
	return out
}
