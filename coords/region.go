package coords

import (
	"fmt"
	"math"
)

// RegionString returns the bounding box of `polygons`, given in relative
// coordinates, as an IIIF Image API region "x,y,w,h" in pixels.
//
// Both axes are scaled by imgWidth/NormalizedWidth: the height of the image
// only serves as the initial lower bound for y. x and y are truncated
// toward zero, w and h are rounded.
// With no points at all, the box stays at its initial bounds
// (min at the image size, max at 0), so the result is degenerate.
func RegionString(polygons []Polygon, imgWidth, imgHeight float64) string {
	minX, maxX := imgWidth, 0.
	minY, maxY := imgHeight, 0.
	for _, polygon := range polygons {
		for _, p := range polygon {
			if p.X > maxX {
				maxX = p.X
			}
			if p.X < minX {
				minX = p.X
			}
			if p.Y > maxY {
				maxY = p.Y
			}
			if p.Y < minY {
				minY = p.Y
			}
		}
	}
	ratio := imgWidth / NormalizedWidth
	minX *= ratio
	maxX *= ratio
	minY *= ratio
	maxY *= ratio
	return fmt.Sprintf("%d,%d,%d,%d",
		int64(math.Trunc(minX)), int64(math.Trunc(minY)),
		int64(math.Round(maxX-minX)), int64(math.Round(maxY-minY)))
}
