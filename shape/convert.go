package shape

import (
	"fmt"

	"github.com/benoitkugler/xrxsvg/coords"
)

// ToRelative returns a copy of `s` with its geometry expressed in the
// relative space, using `reference` (usually the image width) as the
// absolute size of coords.NormalizedWidth units (see coords.ToRelative).
// Radii are scaled like coordinates. Styles are copied.
func ToRelative(s Shape, reference float64) (Shape, error) {
	return convert(s, reference, coords.ToRelative)
}

// ToAbsolute is the inverse of ToRelative. As with coords.ToAbsolute,
// coordinates and radii are rounded to whole pixels.
func ToAbsolute(s Shape, reference float64) (Shape, error) {
	return convert(s, reference, coords.ToAbsolute)
}

type conversion = func([]coords.Point, float64) []coords.Point

func convert(s Shape, reference float64, conv conversion) (Shape, error) {
	if !(reference > 0) {
		return nil, fmt.Errorf("%w (got %v)", ErrInvalidReference, reference)
	}
	return convertShape(s, func(pts []coords.Point) []coords.Point {
		return conv(pts, reference)
	}), nil
}

func convertShape(s Shape, conv func([]coords.Point) []coords.Point) Shape {
	length := func(v float64) float64 {
		return conv([]coords.Point{{X: v, Y: v}})[0].X
	}
	switch s := s.(type) {
	case *Rect:
		return &Rect{Styled: s.Styled.clone(), Points: conv(s.Points)}
	case *Polygon:
		return &Polygon{Styled: s.Styled.clone(), Points: conv(s.Points)}
	case *Polyline:
		return &Polyline{Styled: s.Styled.clone(), Points: conv(s.Points)}
	case *Line:
		pts := conv([]coords.Point{s.From, s.To})
		return &Line{Styled: s.Styled.clone(), From: pts[0], To: pts[1]}
	case *Circle:
		return &Circle{Styled: s.Styled.clone(), Center: conv([]coords.Point{s.Center})[0], Radius: length(s.Radius)}
	case *Ellipse:
		return &Ellipse{
			Styled:  s.Styled.clone(),
			Center:  conv([]coords.Point{s.Center})[0],
			RadiusX: length(s.RadiusX),
			RadiusY: length(s.RadiusY),
		}
	case *Group:
		out := &Group{Styled: s.Styled.clone(), Children: make([]Shape, len(s.Children))}
		for i, child := range s.Children {
			out.Children[i] = convertShape(child, conv)
		}
		return out
	default:
		return s
	}
}

// clone deep copies the state styles.
func (s Styled) clone() Styled {
	return Styled{
		Style:      s.Style,
		Hoverable:  cloneStyle(s.Hoverable),
		Selectable: cloneStyle(s.Selectable),
		Modifiable: cloneStyle(s.Modifiable),
	}
}

func cloneStyle(s *Style) *Style {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}
