package mintcrate

// ColliderShape distinguishes collider geometry.
type ColliderShape uint8

const (
	ColliderRectangle ColliderShape = iota // axis-aligned rectangle
	ColliderCircle                         // circle
)

// Collider describes an entity's collision geometry, independent of its
// visual sprite. The offset is relative to the entity position. Width and
// Height apply to rectangles; Radius applies to circles.
type Collider struct {
	Shape   ColliderShape
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
	Radius  float64
}

// worldRect returns the collider's world-space rectangle for an entity at
// (x, y). Only meaningful for ColliderRectangle.
func (c Collider) worldRect(x, y float64) Rect {
	return Rect{
		X:      x + c.OffsetX,
		Y:      y + c.OffsetY,
		Width:  c.Width,
		Height: c.Height,
	}
}

// worldCenter returns the circle center in world space for an entity at
// (x, y). Only meaningful for ColliderCircle.
func (c Collider) worldCenter(x, y float64) (float64, float64) {
	return x + c.OffsetX, y + c.OffsetY
}

// Bounds returns the collider's world-space AABB for an entity at (x, y).
// A circle collider yields its bounding box. Tile-grid queries operate on
// this box.
func (c Collider) Bounds(x, y float64) Rect {
	if c.Shape == ColliderCircle {
		cx, cy := c.worldCenter(x, y)
		return Rect{
			X:      cx - c.Radius,
			Y:      cy - c.Radius,
			Width:  c.Radius * 2,
			Height: c.Radius * 2,
		}
	}
	return c.worldRect(x, y)
}

// rectsOverlap is Rect.Overlaps spelled out for the collision hot path.
// Strict inequalities: touching edges do not collide.
func rectsOverlap(a, b Rect) bool {
	return a.X < b.X+b.Width &&
		a.X+a.Width > b.X &&
		a.Y < b.Y+b.Height &&
		a.Y+a.Height > b.Y
}

// circlesOverlap compares squared center distance against the squared sum
// of radii. Tangent circles do not collide.
func circlesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	dx := x2 - x1
	dy := y2 - y1
	rr := r1 + r2
	return dx*dx+dy*dy < rr*rr
}

// rectCircleOverlap clamps the circle center into the rectangle and compares
// the clamped point's distance to the radius.
func rectCircleOverlap(r Rect, cx, cy, radius float64) bool {
	px := cx
	if px < r.X {
		px = r.X
	} else if px > r.X+r.Width {
		px = r.X + r.Width
	}
	py := cy
	if py < r.Y {
		py = r.Y
	} else if py > r.Y+r.Height {
		py = r.Y + r.Height
	}
	dx := cx - px
	dy := cy - py
	return dx*dx+dy*dy < radius*radius
}
