package coords

import "math"

// AngleFromMatrix returns the rotation, in whole degrees in [0, 360),
// of an affine transform whose first coefficients are m00 and m01.
// Only the direction of (m00, -m01) matters: scale and shear are ignored.
func AngleFromMatrix(m00, m01 float64) int {
	deg := math.Atan2(-m01, m00) * 180 / math.Pi
	if deg < 0 {
		deg += 360
	}
	angle := int(math.Round(deg))
	if angle >= 360 { // tiny negative angles round up to a full turn
		angle -= 360
	}
	return angle
}
