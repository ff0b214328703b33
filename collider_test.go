package mintcrate

import "testing"

func TestColliderBoundsRectangle(t *testing.T) {
	c := Collider{Shape: ColliderRectangle, OffsetX: 2, OffsetY: 3, Width: 16, Height: 24}
	got := c.Bounds(100, 200)
	want := Rect{X: 102, Y: 203, Width: 16, Height: 24}
	if got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
}

func TestColliderBoundsCircle(t *testing.T) {
	c := Collider{Shape: ColliderCircle, OffsetX: 8, OffsetY: 8, Radius: 8}
	got := c.Bounds(100, 100)
	want := Rect{X: 100, Y: 100, Width: 16, Height: 16}
	if got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name       string
		x1, y1, r1 float64
		x2, y2, r2 float64
		want       bool
	}{
		{"overlapping", 0, 0, 10, 5, 0, 10, true},
		{"concentric", 0, 0, 10, 0, 0, 2, true},
		{"tangent externally", 0, 0, 10, 20, 0, 10, false},
		{"separate", 0, 0, 5, 100, 0, 5, false},
		{"diagonal near miss", 0, 0, 5, 8, 8, 5, false}, // dist ~11.31 > 10
		{"diagonal overlap", 0, 0, 6, 8, 8, 6, true},    // dist ~11.31 < 12
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := circlesOverlap(tt.x1, tt.y1, tt.r1, tt.x2, tt.y2, tt.r2)
			if got != tt.want {
				t.Errorf("circlesOverlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectCircleOverlap(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name   string
		cx, cy float64
		radius float64
		want   bool
	}{
		{"center inside", 5, 5, 1, true},
		{"overlapping edge", 12, 5, 3, true},
		{"tangent to edge", 13, 5, 3, false},
		{"near corner inside radius", 12, 12, 3, true},  // corner dist ~2.83 < 3
		{"near corner outside radius", 13, 13, 3, false}, // corner dist ~4.24 > 3
		{"far away", 50, 50, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rectCircleOverlap(r, tt.cx, tt.cy, tt.radius)
			if got != tt.want {
				t.Errorf("rectCircleOverlap = %v, want %v", got, tt.want)
			}
		})
	}
}
