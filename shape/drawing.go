package shape

import "github.com/benoitkugler/xrxsvg/coords"

// Size is the pixel size of an image or a canvas.
type Size struct {
	Width, Height float64
}

// Drawing is a set of shapes, in absolute coordinates,
// annotating a background image.
type Drawing struct {
	Image  Size
	Shapes []Shape
}

// NewDrawing returns an empty drawing over an image of the given size.
func NewDrawing(width, height float64) *Drawing {
	return &Drawing{Image: Size{Width: width, Height: height}}
}

// Add appends shapes to the drawing.
func (d *Drawing) Add(shapes ...Shape) { d.Shapes = append(d.Shapes, shapes...) }

// Clear removes all the shapes.
func (d *Drawing) Clear() { d.Shapes = nil }

// Relative returns the shapes of the drawing converted to the relative
// space, using the image width as reference.
func (d *Drawing) Relative() ([]Shape, error) {
	out := make([]Shape, len(d.Shapes))
	for i, s := range d.Shapes {
		var err error
		out[i], err = ToRelative(s, d.Image.Width)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

// RegionString returns the IIIF region enclosing all the shapes of the drawing.
func (d *Drawing) RegionString() (string, error) {
	rel, err := d.Relative()
	if err != nil {
		return "", err
	}
	return RegionString(d.Image, rel...), nil
}

// RegionString returns the IIIF region enclosing `shapes`, which must be
// in relative coordinates, for an image of size `image`.
// See coords.RegionString for the details.
func RegionString(image Size, shapes ...Shape) string {
	polygons := make([]coords.Polygon, 0, len(shapes))
	for _, s := range shapes {
		polygons = append(polygons, Outline(s))
	}
	return coords.RegionString(polygons, image.Width, image.Height)
}
