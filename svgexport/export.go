// Writes annotation shapes as SVG documents, sized after the
// annotated image. Coordinates are written with a fixed number of decimals.
package svgexport

import (
	"errors"
	"fmt"
	"io"
	"strings"

	svg "github.com/ajstarks/svgo/float"
	"github.com/benoitkugler/xrxsvg"
	"github.com/benoitkugler/xrxsvg/coords"
	"github.com/benoitkugler/xrxsvg/shape"
)

// ErrUnsupportedShape is returned in StrictErrorMode
// for shapes without an SVG equivalent.
var ErrUnsupportedShape = errors.New("SVG export not implemented for shape")

// ErrorMode determines what happens with shapes which can't be exported.
type ErrorMode uint8

const (
	// WarnErrorMode skips the shape and logs a warning.
	WarnErrorMode ErrorMode = iota
	// IgnoreErrorMode silently skips the shape.
	IgnoreErrorMode
	// StrictErrorMode aborts the export.
	StrictErrorMode
)

// DefaultDecimals is the precision used when Options.Decimals is zero.
const DefaultDecimals = 2

// Options parametrize the export. The zero value is ready to use.
type Options struct {
	ErrorMode ErrorMode
	// Decimals is the number of digits written after the decimal point.
	// Zero selects DefaultDecimals, negative values write whole numbers.
	Decimals int
}

func (opts Options) decimals() int {
	switch {
	case opts.Decimals == 0:
		return DefaultDecimals
	case opts.Decimals < 0:
		return 0
	default:
		return opts.Decimals
	}
}

// WriteShapes writes an SVG document containing `shapes`, for an image of
// size `image`. A single group is replaced by its children.
// Rectangles, and polygons with the shape of an axis-aligned rectangle,
// are written as <rect> elements.
func WriteShapes(w io.Writer, image shape.Size, shapes []shape.Shape, opts Options) error {
	if len(shapes) == 1 {
		if g, ok := shapes[0].(*shape.Group); ok {
			shapes = g.Children
		}
	}

	ew := &errWriter{w: w}
	e := exporter{canvas: svg.New(ew), opts: opts}
	e.canvas.Decimals = opts.decimals()

	if len(shapes) == 0 {
		xrxsvg.Logger().Warn("no shapes to export: the SVG document will be empty")
	}
	e.canvas.Start(image.Width, image.Height)
	for _, s := range shapes {
		if err := e.writeShape(s); err != nil {
			return err
		}
	}
	e.canvas.End()
	return ew.err
}

// WriteDrawing writes all the shapes of `d`.
func WriteDrawing(w io.Writer, d *shape.Drawing, opts Options) error {
	return WriteShapes(w, d.Image, d.Shapes, opts)
}

// String returns the SVG document written by WriteShapes.
func String(image shape.Size, shapes []shape.Shape, opts Options) (string, error) {
	var sb strings.Builder
	err := WriteShapes(&sb, image, shapes, opts)
	return sb.String(), err
}

type exporter struct {
	canvas *svg.SVG
	opts   Options
}

func (e exporter) writeShape(s shape.Shape) error {
	if s == nil {
		return nil
	}
	style := s.Styling().Style.CSS()
	if shape.IsRectangular(s) {
		b := shape.Bounds(s)
		if !b.IsEmpty() {
			size := b.Size()
			e.canvas.Rect(b.X.Lo, b.Y.Lo, size.X, size.Y, style)
		}
		return nil
	}
	switch s := s.(type) {
	case *shape.Polygon, *shape.Polyline:
		if len(s.Coords()) == 0 {
			return nil
		}
	}
	switch s := s.(type) {
	case *shape.Polygon:
		xs, ys := split(s.Points)
		e.canvas.Polygon(xs, ys, style)
	case *shape.Polyline:
		xs, ys := split(s.Points)
		e.canvas.Polyline(xs, ys, style)
	case *shape.Line:
		e.canvas.Line(s.From.X, s.From.Y, s.To.X, s.To.Y, style)
	case *shape.Ellipse:
		e.canvas.Ellipse(s.Center.X, s.Center.Y, s.RadiusX, s.RadiusY, style)
	case *shape.Circle:
		e.canvas.Circle(s.Center.X, s.Center.Y, s.Radius, style)
	case *shape.Group:
		e.canvas.Group(style)
		for _, child := range s.Children {
			if err := e.writeShape(child); err != nil {
				return err
			}
		}
		e.canvas.Gend()
	default:
		return e.unsupported(s)
	}
	return nil
}

func (e exporter) unsupported(s shape.Shape) error {
	switch e.opts.ErrorMode {
	case StrictErrorMode:
		return fmt.Errorf("%w %s (%T)", ErrUnsupportedShape, s.Kind(), s)
	case WarnErrorMode:
		xrxsvg.Logger().Warn("skipping shape", "kind", s.Kind(), "type", fmt.Sprintf("%T", s))
	}
	return nil
}

func split(pts []coords.Point) (xs, ys []float64) {
	xs, ys = make([]float64, len(pts)), make([]float64, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = p.X, p.Y
	}
	return xs, ys
}

// errWriter keeps the first write error, and then discards the output,
// since svgo ignores write errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
