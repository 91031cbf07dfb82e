package navthumb

import (
	"image/color"
	"math"
	"testing"

	"github.com/benoitkugler/xrxsvg/coords"
	"github.com/benoitkugler/xrxsvg/shape"
	"github.com/srwiley/rasterx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	thumbSize  = shape.Size{Width: 100, Height: 50}
	imageSize  = shape.Size{Width: 1000, Height: 500}
	canvasSize = shape.Size{Width: 400, Height: 300}
)

func assertCorners(t *testing.T, expected, got []coords.Point) {
	t.Helper()
	require.Len(t, got, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i].X, got[i].X, 1e-9, "corner %d", i)
		assert.InDelta(t, expected[i].Y, got[i].Y, 1e-9, "corner %d", i)
	}
}

func TestIndicator(t *testing.T) {
	for _, test := range []struct {
		name     string
		view     rasterx.Matrix2D
		expected []coords.Point
	}{
		{
			"identity",
			rasterx.Identity,
			[]coords.Point{{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 40, Y: 30}, {X: 0, Y: 30}},
		},
		{
			"zoomed and panned",
			rasterx.Matrix2D{A: 2, D: 2, E: -100, F: -50},
			[]coords.Point{{X: 5, Y: 2.5}, {X: 25, Y: 2.5}, {X: 25, Y: 17.5}, {X: 5, Y: 17.5}},
		},
		{
			"angle 90",
			rasterx.Matrix2D{A: 0, B: -1, C: 1, D: 0, E: 0, F: 400},
			[]coords.Point{{X: 10, Y: 0}, {X: 40, Y: 0}, {X: 40, Y: 40}, {X: 10, Y: 40}},
		},
		{
			"angle 180",
			rasterx.Matrix2D{A: -1, B: 0, C: 0, D: -1, E: 1000, F: 500},
			[]coords.Point{{X: 60, Y: 20}, {X: 100, Y: 20}, {X: 100, Y: 50}, {X: 60, Y: 50}},
		},
		{
			// not a multiple of 90 degrees: corners computed without rotation
			"angle 45",
			rasterx.Matrix2D{A: math.Sqrt2 / 2, B: -math.Sqrt2 / 2, C: math.Sqrt2 / 2, D: math.Sqrt2 / 2, E: 100, F: 50},
			[]coords.Point{{X: -10, Y: -5}, {X: 30, Y: -5}, {X: 30, Y: 25}, {X: -10, Y: 25}},
		},
		{
			"angle 270",
			rasterx.Matrix2D{A: 0, B: 1, C: -1, D: 0, E: 500, F: 0},
			[]coords.Point{{X: 0, Y: 10}, {X: 30, Y: 10}, {X: 30, Y: 50}, {X: 0, Y: 50}},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			rect, err := Indicator(test.view, thumbSize, imageSize, canvasSize)
			require.NoError(t, err)
			assertCorners(t, test.expected, rect.Points)
			assert.Equal(t, IndicatorStyle(IndicatorColor), rect.Style)
		})
	}
}

func TestIndicatorAngles(t *testing.T) {
	view := rasterx.Matrix2D{A: math.Sqrt2 / 2, B: -math.Sqrt2 / 2, C: math.Sqrt2 / 2, D: math.Sqrt2 / 2}
	if got := coords.AngleFromMatrix(view.A, view.B); got != 45 {
		t.Fatalf("unexpected angle %d", got)
	}
	rotated, err := Indicator(view, thumbSize, imageSize, canvasSize)
	require.NoError(t, err)
	plain, err := Indicator(rasterx.Identity, thumbSize, imageSize, canvasSize)
	require.NoError(t, err)
	assertCorners(t, plain.Points, rotated.Points)
}

func TestIndicatorStyle(t *testing.T) {
	rect, err := Indicator(rasterx.Identity, thumbSize, imageSize, canvasSize)
	require.NoError(t, err)
	assert.Equal(t, "fill:#a00000;fill-opacity:0.15;stroke:#a00000;stroke-width:1.5;stroke-opacity:1", rect.Style.CSS())

	blue := color.NRGBA{B: 0xff, A: 0xff}
	rect, err = Indicator(rasterx.Identity, thumbSize, imageSize, canvasSize, WithColor(blue))
	require.NoError(t, err)
	assert.Equal(t, blue, rect.Style.FillColor)
	assert.Equal(t, blue, rect.Style.StrokeColor)
}

func TestIndicatorErrors(t *testing.T) {
	_, err := Indicator(rasterx.Identity, shape.Size{}, imageSize, canvasSize)
	assert.ErrorIs(t, err, ErrMissingCanvas)

	_, err = Indicator(rasterx.Identity, thumbSize, shape.Size{Width: 10}, canvasSize)
	assert.ErrorIs(t, err, ErrMissingCanvas)

	_, err = Indicator(rasterx.Matrix2D{}, thumbSize, imageSize, canvasSize)
	assert.ErrorIs(t, err, ErrDegenerateView)
}

func TestUpdate(t *testing.T) {
	thumb := shape.NewDrawing(thumbSize.Width, thumbSize.Height)
	thumb.Add(shape.NewRect(1, 1, 1, 1), shape.NewRect(2, 2, 2, 2))

	require.NoError(t, Update(thumb, rasterx.Identity, imageSize, canvasSize))
	require.Len(t, thumb.Shapes, 1)
	rect, ok := thumb.Shapes[0].(*shape.Rect)
	require.True(t, ok)
	assertCorners(t, []coords.Point{{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 40, Y: 30}, {X: 0, Y: 30}}, rect.Points)
	assert.True(t, shape.IsRectangular(rect))

	// the previous indicator is replaced
	require.NoError(t, Update(thumb, rasterx.Matrix2D{A: 2, D: 2}, imageSize, canvasSize))
	require.Len(t, thumb.Shapes, 1)

	assert.ErrorIs(t, Update(nil, rasterx.Identity, imageSize, canvasSize), ErrMissingCanvas)
	assert.ErrorIs(t, Update(shape.NewDrawing(0, 0), rasterx.Identity, imageSize, canvasSize), ErrMissingCanvas)
}
