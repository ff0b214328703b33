package mintcrate

// The collision engine is a set of pure query functions. Nothing here
// mutates entity state; resolving an overlap (push-out, velocity zeroing)
// is game logic built on top.

// Collides reports whether the world-space colliders of a and b overlap.
// The test is symmetric. Touching but not overlapping shapes report false.
func Collides(a, b *Active) bool {
	if a == nil || b == nil {
		return false
	}
	ca, cb := a.Collider, b.Collider
	switch {
	case ca.Shape == ColliderRectangle && cb.Shape == ColliderRectangle:
		return rectsOverlap(ca.worldRect(a.X, a.Y), cb.worldRect(b.X, b.Y))
	case ca.Shape == ColliderCircle && cb.Shape == ColliderCircle:
		x1, y1 := ca.worldCenter(a.X, a.Y)
		x2, y2 := cb.worldCenter(b.X, b.Y)
		return circlesOverlap(x1, y1, ca.Radius, x2, y2, cb.Radius)
	case ca.Shape == ColliderRectangle:
		cx, cy := cb.worldCenter(b.X, b.Y)
		return rectCircleOverlap(ca.worldRect(a.X, a.Y), cx, cy, cb.Radius)
	default:
		cx, cy := ca.worldCenter(a.X, a.Y)
		return rectCircleOverlap(cb.worldRect(b.X, b.Y), cx, cy, ca.Radius)
	}
}

// CollidesAt reports whether a, moved to position (x, y), would overlap b.
// Useful for probing a move before committing it.
func CollidesAt(a *Active, x, y float64, b *Active) bool {
	if a == nil || b == nil {
		return false
	}
	ca, cb := a.Collider, b.Collider
	switch {
	case ca.Shape == ColliderRectangle && cb.Shape == ColliderRectangle:
		return rectsOverlap(ca.worldRect(x, y), cb.worldRect(b.X, b.Y))
	case ca.Shape == ColliderCircle && cb.Shape == ColliderCircle:
		x1, y1 := ca.worldCenter(x, y)
		x2, y2 := cb.worldCenter(b.X, b.Y)
		return circlesOverlap(x1, y1, ca.Radius, x2, y2, cb.Radius)
	case ca.Shape == ColliderRectangle:
		cx, cy := cb.worldCenter(b.X, b.Y)
		return rectCircleOverlap(ca.worldRect(x, y), cx, cy, cb.Radius)
	default:
		cx, cy := ca.worldCenter(x, y)
		return rectCircleOverlap(cb.worldRect(b.X, b.Y), cx, cy, ca.Radius)
	}
}

// CollisionRecord describes one tile cell an entity's bounding box overlaps.
// Edges are the cell's fixed world-space edges.
type CollisionRecord struct {
	Left   float64 // c * tileWidth
	Right  float64 // Left + tileWidth
	Top    float64 // r * tileHeight
	Bottom float64 // Top + tileHeight
}

// CollideTilemap returns the tile cells on the given layer that overlap the
// entity's collider bounding box, in row-major scan order (top-to-bottom,
// then left-to-right). Callers that resolve against only the first record
// rely on that order. A missing or empty layer yields an empty result; game
// logic commonly probes layers a map does not define.
func CollideTilemap(a *Active, m *Tilemap, layer int) []CollisionRecord {
	if a == nil || m == nil {
		return nil
	}
	return m.Collisions(a.Collider.Bounds(a.X, a.Y), layer)
}
