package mintcrate

// Entity is the state shared by all three entity kinds. A created entity
// lives in exactly one of the registry's ordered kind-collections until it
// is explicitly destroyed; nothing is ever reclaimed implicitly.
type Entity struct {
	// ID is unique across all entities created by one registry.
	ID uint32

	// X, Y is the world position.
	X, Y float64

	// Visible toggles the draw pass for this entity. Logic still runs.
	Visible bool

	room      *Room
	reg       *Registry
	destroyed bool
}

// Room returns the room that owns this entity. The reference is weak: when
// the room is torn down the entity is destroyed with it, never the other
// way around.
func (e *Entity) Room() *Room {
	return e.room
}

// IsDestroyed reports whether the handle has been invalidated by Destroy or
// by its room's teardown.
func (e *Entity) IsDestroyed() bool {
	return e.destroyed
}

// SetPosition moves the entity to (x, y).
func (e *Entity) SetPosition(x, y float64) {
	if checkDestroyed(e, "SetPosition") {
		return
	}
	e.X = x
	e.Y = y
}

// Move offsets the entity position by (dx, dy).
func (e *Entity) Move(dx, dy float64) {
	if checkDestroyed(e, "Move") {
		return
	}
	e.X += dx
	e.Y += dy
}
