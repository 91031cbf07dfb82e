// Computes the rectangle showing, in a thumbnail of an
// image, the part of the image currently visible in the main view.
package navthumb

import (
	"errors"
	"image/color"
	"math"

	"github.com/benoitkugler/xrxsvg"
	"github.com/benoitkugler/xrxsvg/coords"
	"github.com/benoitkugler/xrxsvg/shape"
	"github.com/srwiley/rasterx"
)

var (
	// ErrMissingCanvas is returned when the thumbnail or the image has no size.
	ErrMissingCanvas = errors.New("navigation thumb requires the thumbnail and image sizes")
	// ErrDegenerateView is returned for a view transform collapsing an axis.
	ErrDegenerateView = errors.New("view transform has a zero scale")
)

// IndicatorColor is the default stroke and fill color of the indicator.
var IndicatorColor color.Color = color.NRGBA{R: 0xa0, A: 0xff}

// IndicatorStyle returns the style of the indicator rectangle
// drawn with color `c`.
func IndicatorStyle(c color.Color) shape.Style {
	return shape.Style{
		FillColor:     c,
		FillOpacity:   0.15,
		StrokeColor:   c,
		StrokeWidth:   1.5,
		StrokeOpacity: 1,
	}
}

type config struct {
	color color.Color
}

// Option customizes the indicator.
type Option func(*config)

// WithColor replaces IndicatorColor.
func WithColor(c color.Color) Option {
	return func(cf *config) { cf.color = c }
}

// Indicator returns the rectangle, in thumbnail coordinates, covering the
// part of the image visible in the main view.
// `view` maps image coordinates to the canvas of the main view, whose size is
// `canvas`; `thumb` and `image` are the sizes of the thumbnail and of the
// full image. Only rotations by multiples of 90 degrees are supported:
// other angles are handled as no rotation.
func Indicator(view rasterx.Matrix2D, thumb, image, canvas shape.Size, opts ...Option) (*shape.Rect, error) {
	if thumb.Width == 0 || thumb.Height == 0 || image.Width == 0 || image.Height == 0 {
		return nil, ErrMissingCanvas
	}
	cf := config{color: IndicatorColor}
	for _, opt := range opts {
		opt(&cf)
	}

	scaleX := math.Hypot(view.A, view.C)
	scaleY := math.Hypot(view.D, view.B)
	if scaleX == 0 || scaleY == 0 {
		return nil, ErrDegenerateView
	}
	fx := thumb.Width / (image.Width * scaleX)
	fy := thumb.Height / (image.Height * scaleY)

	// top left corner of the image, in canvas space
	ox, oy := view.Transform(0, 0)
	w, h := canvas.Width, canvas.Height

	angle := coords.AngleFromMatrix(view.A, view.B)
	xrxsvg.Logger().Debug("navigation thumb", "angle", angle, "scaleX", scaleX, "scaleY", scaleY)

	var corners []coords.Point
	switch angle {
	case 270: // quarter turn clockwise
		corners = []coords.Point{
			{X: -oy * fy, Y: (ox - w) * fx},
			{X: (h - oy) * fy, Y: (ox - w) * fx},
			{X: (h - oy) * fy, Y: ox * fx},
			{X: -oy * fy, Y: ox * fx},
		}
	case 180:
		corners = []coords.Point{
			{X: (ox - w) * fx, Y: (oy - h) * fy},
			{X: ox * fx, Y: (oy - h) * fy},
			{X: ox * fx, Y: oy * fy},
			{X: (ox - w) * fx, Y: oy * fy},
		}
	case 90: // quarter turn counter clockwise
		corners = []coords.Point{
			{X: (oy - h) * fy, Y: -ox * fx},
			{X: oy * fy, Y: -ox * fx},
			{X: oy * fy, Y: (w - ox) * fx},
			{X: (oy - h) * fy, Y: (w - ox) * fx},
		}
	default:
		corners = []coords.Point{
			{X: -ox * fx, Y: -oy * fy},
			{X: (w - ox) * fx, Y: -oy * fy},
			{X: (w - ox) * fx, Y: (h - oy) * fy},
			{X: -ox * fx, Y: (h - oy) * fy},
		}
	}

	return &shape.Rect{
		Styled: shape.Styled{Style: IndicatorStyle(cf.color)},
		Points: corners,
	}, nil
}

// Update replaces the shapes of the `thumb` drawing by the indicator
// computed for its image size.
func Update(thumb *shape.Drawing, view rasterx.Matrix2D, image, canvas shape.Size, opts ...Option) error {
	if thumb == nil {
		return ErrMissingCanvas
	}
	rect, err := Indicator(view, thumb.Image, image, canvas, opts...)
	if err != nil {
		return err
	}
	thumb.Clear()
	thumb.Add(rect)
	return nil
}
