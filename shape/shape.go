// Describes the annotation shapes exchanged with a drawing:
// rectangles, polygons, polylines, lines, circles, ellipses and groups,
// along with their style.
// Shapes are plain values: they carry geometry and style but know
// nothing about how they are displayed.
package shape

import (
	"fmt"

	"github.com/benoitkugler/xrxsvg/coords"
)

// Kind identifies the type of a shape.
type Kind uint8

const (
	RectKind Kind = iota
	PolygonKind
	PolylineKind
	LineKind
	CircleKind
	EllipseKind
	GroupKind
)

// String returns the name of the shape type, as used by the drawing library.
func (k Kind) String() string {
	switch k {
	case RectKind:
		return "Rect"
	case PolygonKind:
		return "Polygon"
	case PolylineKind:
		return "Polyline"
	case LineKind:
		return "Line"
	case CircleKind:
		return "Circle"
	case EllipseKind:
		return "Ellipse"
	case GroupKind:
		return "ShapeGroup"
	default:
		return "<unknown Kind>"
	}
}

// Shape is implemented by *Rect, *Polygon, *Polyline, *Line,
// *Circle, *Ellipse and *Group.
type Shape interface {
	Kind() Kind
	// Coords returns the defining points of the shape.
	// For circles and ellipses, this is the center only.
	Coords() []coords.Point
	// Styling gives access to the style of the shape.
	Styling() *Styled
}

// Styled holds the style of a shape, and the optional styles
// used when the shape is hovered, selected or modified.
type Styled struct {
	Style Style

	Hoverable, Selectable, Modifiable *Style
}

// Styling returns `s` itself.
func (s *Styled) Styling() *Styled { return s }

// Rect is an axis-aligned rectangle, given by its 4 corners.
type Rect struct {
	Styled
	Points []coords.Point
}

// NewRect returns the rectangle with top left corner (x, y),
// with corners listed clockwise.
func NewRect(x, y, width, height float64) *Rect {
	return &Rect{
		Styled: Styled{Style: DefaultStyle},
		Points: []coords.Point{
			{X: x, Y: y},
			{X: x + width, Y: y},
			{X: x + width, Y: y + height},
			{X: x, Y: y + height},
		},
	}
}

// Polygon is a closed path.
type Polygon struct {
	Styled
	Points []coords.Point
}

// Polyline is an open path.
type Polyline struct {
	Styled
	Points []coords.Point
}

// Line is a segment.
type Line struct {
	Styled
	From, To coords.Point
}

type Circle struct {
	Styled
	Center coords.Point
	Radius float64
}

type Ellipse struct {
	Styled
	Center           coords.Point
	RadiusX, RadiusY float64
}

// Group binds shapes together.
type Group struct {
	Styled
	Children []Shape
}

func (*Rect) Kind() Kind     { return RectKind }
func (*Polygon) Kind() Kind  { return PolygonKind }
func (*Polyline) Kind() Kind { return PolylineKind }
func (*Line) Kind() Kind     { return LineKind }
func (*Circle) Kind() Kind   { return CircleKind }
func (*Ellipse) Kind() Kind  { return EllipseKind }
func (*Group) Kind() Kind    { return GroupKind }

func (r *Rect) Coords() []coords.Point     { return r.Points }
func (p *Polygon) Coords() []coords.Point  { return p.Points }
func (p *Polyline) Coords() []coords.Point { return p.Points }
func (l *Line) Coords() []coords.Point     { return []coords.Point{l.From, l.To} }
func (c *Circle) Coords() []coords.Point   { return []coords.Point{c.Center} }
func (e *Ellipse) Coords() []coords.Point  { return []coords.Point{e.Center} }

// Coords returns the points of all the children. Nil children are skipped.
func (g *Group) Coords() []coords.Point {
	var out []coords.Point
	for _, child := range g.Children {
		if child == nil {
			continue
		}
		out = append(out, child.Coords()...)
	}
	return out
}

// New returns an empty shape of the type named `name`
// (see Kind.String), with the default style.
func New(name string) (Shape, error) {
	st := Styled{Style: DefaultStyle}
	switch name {
	case RectKind.String():
		return &Rect{Styled: st}, nil
	case PolygonKind.String():
		return &Polygon{Styled: st}, nil
	case PolylineKind.String():
		return &Polyline{Styled: st}, nil
	case LineKind.String():
		return &Line{Styled: st}, nil
	case CircleKind.String():
		return &Circle{Styled: st}, nil
	case EllipseKind.String():
		return &Ellipse{Styled: st}, nil
	case GroupKind.String():
		return &Group{Styled: st}, nil
	default:
		return nil, fmt.Errorf("%w %s", ErrNoSuchShape, name)
	}
}
