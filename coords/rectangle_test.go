package coords

import (
	"testing"
)

func TestIsRectangle(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   bool
	}{
		{"clockwise", []Point{{0, 0}, {10, 0}, {10, 5}, {0, 5}}, true},
		{"counter clockwise", []Point{{0, 0}, {0, 5}, {10, 5}, {10, 0}}, true},
		{"starting elsewhere", []Point{{10, 5}, {0, 5}, {0, 0}, {10, 0}}, true},
		{"negative coordinates", []Point{{-3, -2}, {4, -2}, {4, 8}, {-3, 8}}, true},
		{"fractional coordinates", []Point{{0.5, 0.25}, {10.5, 0.25}, {10.5, 5.75}, {0.5, 5.75}}, true},
		{"square", []Point{{0, 0}, {5, 0}, {5, 5}, {0, 5}}, true},
		{"three points", []Point{{0, 0}, {10, 0}, {10, 5}}, false},
		{"five points", []Point{{0, 0}, {10, 0}, {10, 5}, {0, 5}, {0, 0}}, false},
		{"no points", nil, false},
		// the multiset of corners is right, but the second point is diagonal
		// to the first: the points must be given in traversal order
		{"diagonal first", []Point{{0, 0}, {10, 5}, {10, 0}, {0, 5}}, false},
		{"rotated square", []Point{{5, 0}, {10, 5}, {5, 10}, {0, 5}}, false},
		{"three x values", []Point{{0, 0}, {10, 0}, {10, 5}, {3, 5}}, false},
		{"degenerate line", []Point{{0, 0}, {10, 0}, {10, 0}, {0, 0}}, false},
		{"repeated corners", []Point{{0, 0}, {0, 0}, {10, 5}, {10, 5}}, false},
		{"one x value three times", []Point{{0, 0}, {0, 5}, {0, 10}, {10, 10}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRectangle(tt.points); got != tt.want {
				t.Errorf("IsRectangle(%v) = %v", tt.points, got)
			}
		})
	}
}
